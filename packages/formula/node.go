package formula

import (
	"math"
	"strconv"
	"strings"

	"github.com/vogtb/go-spreadsheet/packages/address"
)

// BinaryOp identifies an arithmetic operator
type BinaryOp byte

const (
	BinOpAdd      BinaryOp = '+'
	BinOpSubtract BinaryOp = '-'
	BinOpMultiply BinaryOp = '*'
	BinOpDivide   BinaryOp = '/'
)

// UnaryOp identifies a sign operator
type UnaryOp byte

const (
	UnaryOpPlus  UnaryOp = '+'
	UnaryOpMinus UnaryOp = '-'
)

// binding strength used when rendering the canonical expression
const (
	precedenceAdditive = iota + 1
	precedenceMultiplicative
	precedenceUnary
	precedenceAtom
)

// Node is a compiled expression tree node.
type Node interface {
	Eval(lookup CellLookup) (float64, error)
	ToString() string
	precedence() int
}

// NumberNode represents a numeric literal
type NumberNode struct {
	Value float64
}

func (n *NumberNode) Eval(CellLookup) (float64, error) {
	return n.Value, nil
}

func (n *NumberNode) ToString() string {
	return FormatNumber(n.Value)
}

func (n *NumberNode) precedence() int { return precedenceAtom }

// CellRefNode represents a reference to another cell. Name keeps the
// source spelling so out of range references still render.
type CellRefNode struct {
	Name     string
	Position address.Position
}

func (n *CellRefNode) Eval(lookup CellLookup) (float64, error) {
	if !n.Position.IsValid() {
		return 0, NewFormulaError(ErrorCodeRef, "invalid cell reference "+n.Name)
	}
	if lookup == nil {
		return 0, nil
	}
	value, err := lookup.NumberAt(n.Position)
	if err != nil {
		return 0, AsFormulaError(err)
	}
	return value, nil
}

func (n *CellRefNode) ToString() string {
	return n.Name
}

func (n *CellRefNode) precedence() int { return precedenceAtom }

// BinaryOpNode represents a binary operation
type BinaryOpNode struct {
	Op    BinaryOp
	Left  Node
	Right Node
}

func (n *BinaryOpNode) Eval(lookup CellLookup) (float64, error) {
	// left to right, the first error wins
	left, err := n.Left.Eval(lookup)
	if err != nil {
		return 0, err
	}
	right, err := n.Right.Eval(lookup)
	if err != nil {
		return 0, err
	}

	var result float64
	switch n.Op {
	case BinOpAdd:
		result = left + right
	case BinOpSubtract:
		result = left - right
	case BinOpMultiply:
		result = left * right
	case BinOpDivide:
		if right == 0 {
			return 0, NewFormulaError(ErrorCodeDiv0, "division by zero")
		}
		result = left / right
	default:
		return 0, NewFormulaError(ErrorCodeValue, "unknown operator")
	}

	if math.IsInf(result, 0) || math.IsNaN(result) {
		return 0, NewFormulaError(ErrorCodeDiv0, "arithmetic overflow")
	}
	return result, nil
}

func (n *BinaryOpNode) ToString() string {
	var sb strings.Builder
	own := n.precedence()

	left := n.Left.ToString()
	if n.Left.precedence() < own {
		left = "(" + left + ")"
	}

	right := n.Right.ToString()
	rightPrecedence := n.Right.precedence()
	if rightPrecedence < own ||
		(rightPrecedence == own && (n.Op == BinOpSubtract || n.Op == BinOpDivide)) {
		right = "(" + right + ")"
	}

	sb.WriteString(left)
	sb.WriteByte(byte(n.Op))
	sb.WriteString(right)
	return sb.String()
}

func (n *BinaryOpNode) precedence() int {
	if n.Op == BinOpMultiply || n.Op == BinOpDivide {
		return precedenceMultiplicative
	}
	return precedenceAdditive
}

// UnaryOpNode represents a sign applied to an operand
type UnaryOpNode struct {
	Op      UnaryOp
	Operand Node
}

func (n *UnaryOpNode) Eval(lookup CellLookup) (float64, error) {
	value, err := n.Operand.Eval(lookup)
	if err != nil {
		return 0, err
	}
	if n.Op == UnaryOpMinus {
		return -value, nil
	}
	return value, nil
}

func (n *UnaryOpNode) ToString() string {
	operand := n.Operand.ToString()
	if n.Operand.precedence() < precedenceUnary {
		operand = "(" + operand + ")"
	}
	return string(rune(n.Op)) + operand
}

func (n *UnaryOpNode) precedence() int { return precedenceUnary }

// FormatNumber renders a number as a plain decimal with no superfluous
// digits: 3 -> "3", 0.25 -> "0.25".
func FormatNumber(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
