package formula

import "errors"

// ErrorCode represents the spreadsheet error categories a formula can
// evaluate to, following Excel conventions
type ErrorCode uint8

const (
	ErrorCodeDiv0  ErrorCode = 2 // #DIV/0! - division by zero
	ErrorCodeValue ErrorCode = 3 // #VALUE! - wrong type of operand
	ErrorCodeRef   ErrorCode = 4 // #REF! - invalid cell reference
)

// ErrorMapper maps error codes to the tokens displayed in cells
var ErrorMapper = map[ErrorCode]string{
	ErrorCodeDiv0:  "#DIV/0!",
	ErrorCodeValue: "#VALUE!",
	ErrorCodeRef:   "#REF!",
}

// String returns the display token of the code.
func (c ErrorCode) String() string {
	if token, ok := ErrorMapper[c]; ok {
		return token
	}
	return "#ERROR!"
}

// FormulaError is a value-level evaluation result. it is a legitimate
// cell value, not a failure of the operation that produced it.
type FormulaError struct {
	Code    ErrorCode
	Message string
}

func (e *FormulaError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Code.String()
}

// String returns the fixed display token, regardless of Message.
func (e *FormulaError) String() string {
	return e.Code.String()
}

// Is matches any FormulaError with the same code, so errors.Is works
// against the category values below.
func (e *FormulaError) Is(target error) bool {
	var other *FormulaError
	if !errors.As(target, &other) {
		return false
	}
	return other.Code == e.Code
}

func NewFormulaError(code ErrorCode, message string) *FormulaError {
	return &FormulaError{
		Code:    code,
		Message: message,
	}
}

// Error categories, usable as errors.Is targets.
var (
	DivisionByZero = &FormulaError{Code: ErrorCodeDiv0}
	InvalidRef     = &FormulaError{Code: ErrorCodeRef}
	InvalidValue   = &FormulaError{Code: ErrorCodeValue}
)

// ErrParse is returned by Compile for syntactically invalid formula text.
var ErrParse = errors.New("formula parse error")

// AsFormulaError converts any evaluation error into a FormulaError.
// foreign errors are reported as #VALUE!.
func AsFormulaError(err error) *FormulaError {
	if err == nil {
		return nil
	}
	var fe *FormulaError
	if errors.As(err, &fe) {
		return fe
	}
	return NewFormulaError(ErrorCodeValue, err.Error())
}
