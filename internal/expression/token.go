package expression

import (
	"fmt"
	"strconv"
)

type Kind uint8

const (
	KindError Kind = iota
	KindOperator
	KindValue
	KindEndOfLine
	KindQuit
	KindHelp
	KindEndOfInput
)

func (k Kind) String() string {
	switch k {
	case KindError:
		return "Error"
	case KindOperator:
		return "Operator"
	case KindValue:
		return "Value"
	case KindEndOfLine:
		return "EndOfLine"
	case KindQuit:
		return "Quit"
	case KindHelp:
		return "Help"
	case KindEndOfInput:
		return "EndOfInput"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Sentinels returned by the accessors of a Token holding another kind.
const (
	OperatorSentinel byte  = '$'
	ValueSentinel    int64 = -999
)

// Token is one lexical unit. Check Kind before reading Operator or Value.
type Token struct {
	kind  Kind
	op    byte
	value int64
}

func NewToken(kind Kind) Token {
	return Token{kind: kind, op: OperatorSentinel, value: ValueSentinel}
}

func NewOperatorToken(op byte) Token {
	return Token{kind: KindOperator, op: op, value: ValueSentinel}
}

func NewValueToken(value int64) Token {
	return Token{kind: KindValue, op: OperatorSentinel, value: value}
}

func (t Token) Kind() Kind {
	return t.kind
}

func (t Token) Is(kind Kind) bool {
	return t.kind == kind
}

func (t Token) IsOperator(c byte) bool {
	return t.kind == KindOperator && t.op == c
}

// Operator returns OperatorSentinel unless t is an operator token.
func (t Token) Operator() byte {
	if t.kind != KindOperator {
		return OperatorSentinel
	}
	return t.op
}

// Value returns ValueSentinel unless t is a value token.
func (t Token) Value() int64 {
	if t.kind != KindValue {
		return ValueSentinel
	}
	return t.value
}

func (t Token) String() string {
	switch t.kind {
	case KindOperator:
		return strconv.Quote(string(t.op))
	case KindValue:
		return strconv.FormatInt(t.value, 10)
	default:
		return t.kind.String()
	}
}
