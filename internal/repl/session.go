package repl

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/karupanerura/infixcalc/internal/expression"
	"github.com/karupanerura/infixcalc/internal/types"
)

const DefaultPrompt = "Enter Expression: "

type Status int

const (
	StatusEndOfInput Status = iota
	StatusQuit
)

// Session reads expressions from In and writes prompts and results to Out.
type Session struct {
	In     io.Reader
	Out    io.Writer
	Prompt string
	Debug  bool
	Color  bool
}

func (s *Session) Run() (Status, error) {
	p := newPrinter(s.Out, s.Color)
	prompt := s.Prompt
	if prompt == "" {
		prompt = DefaultPrompt
	}

	evaluator := expression.NewEvaluator()
	evaluator.Debug = evaluator.Debug || s.Debug

	p.println("Starting Expression Evaluation Program")
	if evaluator.Debug {
		p.println("Debugging mode ON.")
	}

	lex := expression.NewLexer(s.In)
	for {
		p.printf("\n%s", prompt)

		tok := lex.NextToken()
		switch tok.Kind() {
		case expression.KindQuit:
			p.println("Quitting Program")
			return StatusQuit, p.err

		case expression.KindHelp:
			p.printCommands()
			lex.ClearToEndOfLine()

		case expression.KindError:
			p.printError(lex.Err())
			p.println("Invalid Input - For a list of valid commands, type ?")
			lex.ClearToEndOfLine()

		case expression.KindEndOfLine:
			p.println("Blank Line - Do Nothing")

		case expression.KindEndOfInput:
			p.println("")
			if err := lex.ReadErr(); err != nil {
				return StatusEndOfInput, fmt.Errorf("read expression: %w", err)
			}
			return StatusEndOfInput, p.err

		default:
			ret, err := evaluator.Evaluate(tok, lex)
			if err != nil {
				if !errors.Is(err, expression.ErrAborted) {
					p.printError(err)
				}
				lex.ClearToEndOfLine()
				break
			}
			p.printResult(ret)
		}

		if p.err != nil {
			return StatusEndOfInput, p.err
		}
	}
}

// printer remembers the first write failure so the loop can stop on it.
type printer struct {
	w      io.Writer
	err    error
	errTag *color.Color
	okTag  *color.Color
}

func newPrinter(w io.Writer, colored bool) *printer {
	p := &printer{
		w:      w,
		errTag: color.New(color.FgRed, color.Bold),
		okTag:  color.New(color.FgGreen, color.Bold),
	}
	if colored {
		p.errTag.EnableColor()
		p.okTag.EnableColor()
	} else {
		p.errTag.DisableColor()
		p.okTag.DisableColor()
	}
	return p
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) println(s string) {
	p.printf("%s\n", s)
}

func (p *printer) printError(err error) {
	p.printf("%s %s\n", p.errTag.Sprint("Error:"), types.Message(err))
}

func (p *printer) printResult(v int64) {
	p.printf("%s %d\n", p.okTag.Sprint("Result:"), v)
}

func (p *printer) printCommands() {
	p.println("The commands for this program are:\n")
	p.println("q - to quit the program")
	p.println("? - to list the accepted commands")
	p.println("or any infix mathematical expression using operators of (), *, /, +, -")
}
