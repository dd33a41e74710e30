package spreadsheet

import (
	"fmt"

	"github.com/vogtb/go-spreadsheet/packages/address"
)

// Stats receives cache instrumentation events from a Sheet.
type Stats interface {
	CacheHit(pos address.Position)
	CacheMiss(pos address.Position)
	CacheInvalidated(pos address.Position)
}

type noopStats struct{}

func (noopStats) CacheHit(address.Position) {}
func (noopStats) CacheMiss(address.Position) {}
func (noopStats) CacheInvalidated(address.Position) {}

// Counters is a Stats that tallies events
type Counters struct {
	Hits          int `json:"hits"`
	Misses        int `json:"misses"`
	Invalidations int `json:"invalidations"`
}

func (c *Counters) CacheHit(address.Position) {
	c.Hits++
}

func (c *Counters) CacheMiss(address.Position) {
	c.Misses++
}

func (c *Counters) CacheInvalidated(address.Position) {
	c.Invalidations++
}

func (c *Counters) Reset() {
	*c = Counters{}
}

func (c *Counters) String() string {
	return fmt.Sprintf("hits=%d misses=%d invalidations=%d", c.Hits, c.Misses, c.Invalidations)
}
