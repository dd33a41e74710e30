package formula

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/expr-lang/expr/ast"
	"github.com/expr-lang/expr/file"
	"github.com/expr-lang/expr/parser"

	"github.com/vogtb/go-spreadsheet/packages/address"
)

var cellRefPattern = regexp.MustCompile(`^[A-Z]+[0-9]+$`)

// Compile parses formula text (without the leading '=') into an
// evaluable Formula. Syntax outside of the arithmetic grammar yields an
// error wrapping ErrParse.
func Compile(text string) (*Formula, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: empty expression", ErrParse)
	}

	tree, err := parser.Parse(text)
	if err != nil {
		var syntaxErr *file.Error
		if errors.As(err, &syntaxErr) {
			return nil, fmt.Errorf("%w: %s at column %d", ErrParse, syntaxErr.Message, syntaxErr.Column+1)
		}
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	b := &builder{}
	ast.Walk(&tree.Node, b)
	if b.err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, b.err)
	}
	if len(b.stack) != 1 {
		return nil, fmt.Errorf("%w: malformed expression", ErrParse)
	}

	return &Formula{
		root: b.stack[0],
		refs: b.refs,
	}, nil
}

// builder converts an expr syntax tree into formula nodes. ast.Walk
// visits children before their parent, so operands are already on the
// stack when an operator is reached.
type builder struct {
	stack []Node
	refs  []address.Position
	err   error
}

func (b *builder) Visit(node *ast.Node) {
	if b.err != nil {
		return
	}

	switch n := (*node).(type) {
	case *ast.IntegerNode:
		b.push(&NumberNode{Value: float64(n.Value)})
	case *ast.FloatNode:
		b.push(&NumberNode{Value: n.Value})
	case *ast.IdentifierNode:
		if !cellRefPattern.MatchString(n.Value) {
			b.err = fmt.Errorf("unknown name %q", n.Value)
			return
		}
		pos := address.FromString(n.Value)
		b.refs = append(b.refs, pos)
		b.push(&CellRefNode{Name: n.Value, Position: pos})
	case *ast.UnaryNode:
		op, ok := unaryOps[n.Operator]
		if !ok {
			b.err = fmt.Errorf("unsupported operator %q", n.Operator)
			return
		}
		operand, ok := b.pop(1)
		if !ok {
			return
		}
		b.push(&UnaryOpNode{Op: op, Operand: operand[0]})
	case *ast.BinaryNode:
		op, ok := binaryOps[n.Operator]
		if !ok {
			b.err = fmt.Errorf("unsupported operator %q", n.Operator)
			return
		}
		operands, ok := b.pop(2)
		if !ok {
			return
		}
		b.push(&BinaryOpNode{Op: op, Left: operands[0], Right: operands[1]})
	default:
		b.err = fmt.Errorf("unsupported expression %q", (*node).String())
	}
}

func (b *builder) push(n Node) {
	b.stack = append(b.stack, n)
}

func (b *builder) pop(count int) ([]Node, bool) {
	if len(b.stack) < count {
		b.err = errors.New("missing operand")
		return nil, false
	}
	start := len(b.stack) - count
	nodes := make([]Node, count)
	copy(nodes, b.stack[start:])
	b.stack = b.stack[:start]
	return nodes, true
}

var unaryOps = map[string]UnaryOp{
	"+": UnaryOpPlus,
	"-": UnaryOpMinus,
}

var binaryOps = map[string]BinaryOp{
	"+": BinOpAdd,
	"-": BinOpSubtract,
	"*": BinOpMultiply,
	"/": BinOpDivide,
}
