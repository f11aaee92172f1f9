package expression

import (
	"strings"

	"github.com/karupanerura/infixcalc/internal/types"
)

// EvaluateString evaluates a single line of source.
func EvaluateString(source string) (int64, error) {
	return NewEvaluator().EvaluateString(source)
}

func (e *Evaluator) EvaluateString(source string) (int64, error) {
	lex := NewLexer(strings.NewReader(source))
	first := lex.NextToken()
	switch first.Kind() {
	case KindError:
		return 0, lex.Err()
	case KindEndOfLine, KindEndOfInput:
		return 0, &types.Error{Tag: types.ValueErrorTag, Err: errEmptyExpression}
	case KindQuit, KindHelp:
		return 0, ErrAborted
	}
	return e.Evaluate(first, lex)
}
