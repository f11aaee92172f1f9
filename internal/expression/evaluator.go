package expression

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/k0kubun/pp/v3"
	"github.com/karupanerura/infixcalc/internal/types"
)

// ErrAborted is returned when a control token interrupts an expression.
// Nothing is reported to the user for it.
var ErrAborted = errors.New("expression aborted")

const debugEnv = "INFIXCALC_DEBUG"

// DebugFromEnv reports whether INFIXCALC_DEBUG turns tracing on.
func DebugFromEnv() bool {
	v, err := strconv.ParseBool(os.Getenv(debugEnv))
	return v && err == nil
}

// Evaluator traces every token to the log output when Debug is set.
type Evaluator struct {
	Debug bool
}

// NewEvaluator returns an Evaluator with Debug taken from INFIXCALC_DEBUG.
func NewEvaluator() *Evaluator {
	return &Evaluator{Debug: DebugFromEnv()}
}

// Evaluate consumes tokens starting with first until the end of the line
// and returns the value of the expression.
func (e *Evaluator) Evaluate(first Token, src TokenSource) (int64, error) {
	calc := newCalculation()

	for tok := first; !tok.Is(KindEndOfLine); tok = src.NextToken() {
		switch tok.Kind() {
		case KindValue:
			if e.Debug {
				log.Printf("Val: %d", tok.Value())
			}
			calc.values.PushBack(tok.Value())

		case KindOperator:
			op := tok.Operator()
			if e.Debug {
				log.Printf("OP: %c", op)
			}
			if err := e.handleOperator(calc, op); err != nil {
				return 0, err
			}

		case KindError:
			if err := src.Err(); err != nil {
				return 0, err
			}
			return 0, ErrAborted

		default:
			if e.Debug {
				log.Println("aborted by token: ", tok)
			}
			return 0, ErrAborted
		}
	}

	if e.Debug {
		e.dumpStacks(calc)
	}
	if err := calc.drain(); err != nil {
		return 0, err
	}
	return calc.result()
}

func (e *Evaluator) handleOperator(calc *calculation, op byte) error {
	if _, isLeftParen := parenthesisPairMap[op]; isLeftParen {
		calc.operators.PushBack(op)
		return nil
	}

	if openOP, isRightParen := parenthesisReversePairMap[op]; isRightParen {
		for !calc.operators.IsEmpty() && !calc.topIsOpenParen() {
			if err := calc.fold(); err != nil {
				return err
			}
		}
		if calc.operators.IsEmpty() {
			return &types.Error{
				Tag:   types.UnmatchedParenErrorTag,
				Err:   errMissingOpenParen,
				Extra: map[string]any{"expected": string(openOP)},
			}
		}
		_, err := calc.operators.PopBack()
		return err
	}

	if _, ok := operatorPrecedenceMap[op]; !ok {
		return &types.Error{Tag: types.TypeErrorTag, Err: fmt.Errorf("invalid operator %q", op)}
	}
	for calc.topBindsAtLeast(op) {
		if err := calc.fold(); err != nil {
			return err
		}
	}
	calc.operators.PushBack(op)
	return nil
}

func (e *Evaluator) dumpStacks(calc *calculation) {
	ops := make([]string, 0, calc.operators.Len())
	for i := 0; i < calc.operators.Len(); i++ {
		ops = append(ops, string(*calc.operators.Index(i)))
	}
	log.Printf("values=%s operators=[%s]", calc.values, strings.Join(ops, ", "))

	printer := pp.New()
	printer.SetOutput(log.Writer())
	printer.SetColoringEnabled(false)
	printer.Println(calc.values.Values())
}
