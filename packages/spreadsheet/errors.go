package spreadsheet

import (
	"errors"
	"fmt"

	"github.com/vogtb/go-spreadsheet/packages/address"
)

// AppErrorCode represents gRPC-style error codes for application-level errors.
// note that we are skipping error codes that don't make sense for a single
// in-memory sheet, like not found, or already exists.
type AppErrorCode int

const (
	// OK indicates the operation completed successfully.
	OK AppErrorCode = 0

	// InvalidArgument indicates client specified an invalid argument, such
	// as formula text that does not compile.
	InvalidArgument AppErrorCode = 3

	// FailedPrecondition indicates operation was rejected because the
	// sheet is not in a state required for the operation's execution.
	FailedPrecondition AppErrorCode = 9

	// OutOfRange means operation was attempted past the valid range.
	OutOfRange AppErrorCode = 11

	// Internal errors. Means some invariants expected by underlying
	// system has been broken.
	Internal AppErrorCode = 13
)

// AppError represents errors at the application level (not
// formula value errors, which are carried in CellValue)
type AppError struct {
	Code    AppErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewApplicationError creates a new application error
func NewApplicationError(code AppErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

var (
	ErrInvalidPosition    = errors.New("invalid position")
	ErrCircularDependency = errors.New("circular dependency")
	ErrFormulaCompile     = errors.New("formula compile failure")
)

func invalidPositionError(pos address.Position) *AppError {
	return NewApplicationError(
		OutOfRange,
		fmt.Sprintf("position %#v is outside of the sheet", pos),
		ErrInvalidPosition,
	)
}

func circularDependencyError(pos address.Position) *AppError {
	return NewApplicationError(
		FailedPrecondition,
		fmt.Sprintf("formula at %s would create a circular dependency", pos),
		ErrCircularDependency,
	)
}

func formulaCompileError(pos address.Position, err error) *AppError {
	return NewApplicationError(
		InvalidArgument,
		fmt.Sprintf("formula at %s: %v", pos, err),
		fmt.Errorf("%w: %w", ErrFormulaCompile, err),
	)
}

// indexCorruption panics; the dependency index no longer mirrors the
// stored cells.
func indexCorruption(format string, args ...any) {
	panic(NewApplicationError(Internal, fmt.Sprintf(format, args...), nil))
}
