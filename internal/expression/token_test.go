package expression_test

import (
	"testing"

	"github.com/karupanerura/infixcalc/internal/expression"
)

func TestTokenAccessors(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		token    expression.Token
		kind     expression.Kind
		operator byte
		value    int64
		str      string
	}{
		{
			token:    expression.NewOperatorToken('*'),
			kind:     expression.KindOperator,
			operator: '*',
			value:    expression.ValueSentinel,
			str:      `"*"`,
		},
		{
			token:    expression.NewValueToken(42),
			kind:     expression.KindValue,
			operator: expression.OperatorSentinel,
			value:    42,
			str:      "42",
		},
		{
			token:    expression.NewToken(expression.KindQuit),
			kind:     expression.KindQuit,
			operator: expression.OperatorSentinel,
			value:    expression.ValueSentinel,
			str:      "Quit",
		},
		{
			token:    expression.NewToken(expression.KindEndOfInput),
			kind:     expression.KindEndOfInput,
			operator: expression.OperatorSentinel,
			value:    expression.ValueSentinel,
			str:      "EndOfInput",
		},
	} {
		tt := tt
		t.Run(tt.str, func(t *testing.T) {
			t.Parallel()

			if !tt.token.Is(tt.kind) || tt.token.Kind() != tt.kind {
				t.Errorf("expect kind %s but got %s", tt.kind, tt.token.Kind())
			}
			if got := tt.token.Operator(); got != tt.operator {
				t.Errorf("expect operator %q but got %q", tt.operator, got)
			}
			if got := tt.token.Value(); got != tt.value {
				t.Errorf("expect value %d but got %d", tt.value, got)
			}
			if got := tt.token.String(); got != tt.str {
				t.Errorf("expect string %s but got %s", tt.str, got)
			}
		})
	}

	if !expression.NewOperatorToken('(').IsOperator('(') {
		t.Error("expect ( to match")
	}
	if expression.NewValueToken('(').IsOperator('(') {
		t.Error("a value token must not match an operator")
	}
	if expression.Kind(99).String() != "Kind(99)" {
		t.Errorf("unexpected kind string %s", expression.Kind(99))
	}
}
