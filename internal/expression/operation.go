package expression

import (
	"errors"
	"fmt"

	"github.com/karupanerura/infixcalc/internal/container"
	"github.com/karupanerura/infixcalc/internal/types"
	"github.com/samber/lo"
)

var operatorPrecedenceMap = map[byte]uint8{
	'+': 1,
	'-': 1,
	'*': 2,
	'/': 2,
}

var parenthesisPairMap = map[byte]byte{
	'(': ')',
}

var parenthesisReversePairMap = lo.Invert(parenthesisPairMap)

var (
	errTooManyOperators   = errors.New("Too many operators.")
	errNotEnoughOperators = errors.New("Not enough operators.")
	errMissingOpenParen   = errors.New("missing an opening parenthesis")
	errMissingCloseParen  = errors.New("missing a closing parenthesis")
	errDivisionByZero     = errors.New("division by zero")
	errEmptyExpression    = errors.New("empty expression")
)

// calculation owns the two stacks of a single evaluation.
type calculation struct {
	values    *container.Array[int64]
	operators *container.Array[byte]
}

func newCalculation() *calculation {
	return &calculation{
		values:    container.New[int64](),
		operators: container.New[byte](),
	}
}

// topBindsAtLeast reports whether the operator on top of the stack has
// precedence >= op. An open parenthesis never does.
func (c *calculation) topBindsAtLeast(op byte) bool {
	top, err := c.operators.Back()
	if err != nil {
		return false
	}
	bp, ok := operatorPrecedenceMap[*top]
	return ok && bp >= operatorPrecedenceMap[op]
}

func (c *calculation) topIsOpenParen() bool {
	top, err := c.operators.Back()
	if err != nil {
		return false
	}
	_, ok := parenthesisPairMap[*top]
	return ok
}

// fold pops one operator and two values, then pushes the result back.
func (c *calculation) fold() error {
	if c.values.Len() < 2 || c.operators.IsEmpty() {
		return &types.Error{Tag: types.StackUnderflowErrorTag, Err: errTooManyOperators}
	}

	rhs, err := c.values.PopBack()
	if err != nil {
		return &types.Error{Tag: types.StackUnderflowErrorTag, Err: fmt.Errorf("%v: %w", errTooManyOperators, err)}
	}
	lhs, err := c.values.PopBack()
	if err != nil {
		return &types.Error{Tag: types.StackUnderflowErrorTag, Err: fmt.Errorf("%v: %w", errTooManyOperators, err)}
	}
	op, err := c.operators.PopBack()
	if err != nil {
		return &types.Error{Tag: types.StackUnderflowErrorTag, Err: fmt.Errorf("%v: %w", errTooManyOperators, err)}
	}

	v, err := calculate(op, lhs, rhs)
	if err != nil {
		return err
	}
	c.values.PushBack(v)
	return nil
}

// drain folds every remaining operator once the line is over.
func (c *calculation) drain() error {
	for !c.operators.IsEmpty() {
		if c.topIsOpenParen() {
			return &types.Error{
				Tag:   types.UnmatchedParenErrorTag,
				Err:   errMissingCloseParen,
				Extra: map[string]any{"expected": string(parenthesisPairMap['('])},
			}
		}
		if err := c.fold(); err != nil {
			return err
		}
	}
	return nil
}

func (c *calculation) result() (int64, error) {
	switch c.values.Len() {
	case 0:
		return 0, &types.Error{Tag: types.ValueErrorTag, Err: errEmptyExpression}
	case 1:
		return c.values.PopBack()
	default:
		return 0, &types.Error{
			Tag:   types.OperandMismatchErrorTag,
			Err:   errNotEnoughOperators,
			Extra: map[string]any{"operands": c.values.Len()},
		}
	}
}

func calculate(op byte, lhs, rhs int64) (int64, error) {
	switch op {
	case '+':
		return lhs + rhs, nil
	case '-':
		return lhs - rhs, nil
	case '*':
		return lhs * rhs, nil
	case '/':
		if rhs == 0 {
			return 0, &types.Error{
				Tag:   types.ZeroDivisionErrorTag,
				Err:   errDivisionByZero,
				Extra: map[string]any{"dividend": lhs},
			}
		}
		return lhs / rhs, nil
	default:
		return 0, &types.Error{
			Tag: types.TypeErrorTag,
			Err: fmt.Errorf("invalid operator %q for left=%d right=%d", op, lhs, rhs),
		}
	}
}
