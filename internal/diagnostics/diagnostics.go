// Package diagnostics collects typed, span-carrying user-facing errors
// across every compilation phase. Phases never panic on user input; they
// append to a Bag and keep going.
package diagnostics

import (
	"fmt"

	"github.com/ibcompiler/ib/internal/span"
)

// Phase identifies which pipeline stage raised a diagnostic.
type Phase string

const (
	PhaseLexer    Phase = "lexer"
	PhaseParser   Phase = "parser"
	PhaseAnalyzer Phase = "analyzer"
	PhaseCFG      Phase = "cfg"
	PhaseRuntime  Phase = "runtime"
)

// Code is the stable diagnostic-kind catalogue.
type Code string

const (
	ExpectedToken                   Code = "ExpectedToken"
	ExpectedScope                   Code = "ExpectedScope"
	UnknownOperator                 Code = "UnknownOperator"
	ExpectedPrimaryExpression       Code = "ExpectedPrimaryExpression"
	UnclosedParenthesisExpression   Code = "UnclosedParenthesisExpression"
	ExpectedArgument                Code = "ExpectedArgument"
	ExpectedParameter               Code = "ExpectedParameter"
	ExpectedLoop                    Code = "ExpectedLoop"
	ExpectedLoopLowerBound          Code = "ExpectedLoopLowerBound"
	ExpectedLoopUpperBound          Code = "ExpectedLoopUpperBound"
	FailedParsing                   Code = "FailedParsing"
	NumberParsing                   Code = "NumberParsing"
	AssignMismatchedTypes           Code = "AssignMismatchedTypes"
	ParamMismatchedTypes            Code = "ParamMismatchedTypes"
	CannotFindValue                 Code = "CannotFindValue"
	CannotFindFunction               Code = "CannotFindFunction"
	CannotDeclareFunction            Code = "CannotDeclareFunction"
	MismatchedNumberOfArgs           Code = "MismatchedNumberOfArgs"
	MismatchedArgTypes               Code = "MismatchedArgTypes"
	NotAllCodePathsReturn            Code = "NotAllCodePathsReturn"
	ReturnTypeMismatch               Code = "ReturnTypeMismatch"
	ConditionMustBeBoolean           Code = "ConditionMustBeBoolean"
	UndefinedType                    Code = "UndefinedType"
	ExpectsGenericTypeParam          Code = "ExpectsGenericTypeParam"
	UnaryOperatorNotDefinedOnType    Code = "UnaryOperatorNotDefinedOnType"
	BinaryOperatorNotDefinedOnType   Code = "BinaryOperatorNotDefinedOnType"
	EqualityNonMatchingTypes         Code = "EqualityNonMatchingTypes"
	SourceTooLarge                   Code = "SourceTooLarge"
)

var templates = map[Code]string{
	ExpectedToken:                  "expected token %s",
	ExpectedScope:                  "expected a scope",
	UnknownOperator:                "unknown operator %q",
	ExpectedPrimaryExpression:      "expected a primary expression",
	UnclosedParenthesisExpression:  "unclosed parenthesis in expression",
	ExpectedArgument:               "expected an argument",
	ExpectedParameter:              "expected a parameter",
	ExpectedLoop:                   "expected 'for' or 'while' after 'loop'",
	ExpectedLoopLowerBound:         "expected a lower bound for the loop",
	ExpectedLoopUpperBound:         "expected an upper bound for the loop",
	FailedParsing:                  "failed to parse program",
	NumberParsing:                  "could not parse %q as an integer",
	AssignMismatchedTypes:          "cannot assign value of a different type to %q",
	ParamMismatchedTypes:           "parameter %q conflicts with a prior binding of a different type",
	CannotFindValue:                "cannot find value %q in this scope",
	CannotFindFunction:             "cannot find function %q in this scope",
	CannotDeclareFunction:          "a function named %q is already declared",
	MismatchedNumberOfArgs:         "%q expects %d argument(s), found %d",
	MismatchedArgTypes:             "%q expects argument(s) of type %s, found %s",
	NotAllCodePathsReturn:          "not all code paths return a value",
	ReturnTypeMismatch:             "returned %s, expected %s",
	ConditionMustBeBoolean:         "condition must be Boolean, found %s",
	UndefinedType:                  "undefined type %q",
	ExpectsGenericTypeParam:        "%q requires a generic type parameter",
	UnaryOperatorNotDefinedOnType:  "unary %q is not defined on %s",
	BinaryOperatorNotDefinedOnType: "binary %q is not defined on %s and %s",
	EqualityNonMatchingTypes:       "cannot compare %s with %s for equality",
	SourceTooLarge:                 "source is %d bytes, exceeding the %d byte limit",
}

// Error is one collected diagnostic.
type Error struct {
	Code  Code
	Phase Phase
	Span  span.Span
	Args  []interface{}
}

func (e *Error) Error() string {
	tmpl, ok := templates[e.Code]
	if !ok {
		return fmt.Sprintf("unknown diagnostic %s", e.Code)
	}
	return fmt.Sprintf(tmpl, e.Args...)
}

// New builds a phase-tagged Error.
func New(phase Phase, code Code, sp span.Span, args ...interface{}) *Error {
	return &Error{Code: code, Phase: phase, Span: sp, Args: args}
}

// Bag accumulates diagnostics across one compilation and never panics.
type Bag struct {
	errors []*Error
}

// Add appends e to the bag. A nil e is ignored.
func (b *Bag) Add(e *Error) {
	if e == nil {
		return
	}
	b.errors = append(b.errors, e)
}

// Errors returns the diagnostics collected so far, in insertion order.
func (b *Bag) Errors() []*Error { return b.errors }

// Empty reports whether nothing has been collected.
func (b *Bag) Empty() bool { return len(b.errors) == 0 }

// Record is the host-facing {message, offset_start, offset_end} shape.
type Record struct {
	Message      string `json:"message"`
	OffsetStart  int    `json:"offset_start"`
	OffsetEnd    int    `json:"offset_end"`
}

// ToRecords renders the bag as host-facing diagnostic records.
func (b *Bag) ToRecords() []Record {
	out := make([]Record, len(b.errors))
	for i, e := range b.errors {
		out[i] = Record{
			Message:     e.Error(),
			OffsetStart: e.Span.Start.Offset,
			OffsetEnd:   e.Span.End.Offset,
		}
	}
	return out
}
