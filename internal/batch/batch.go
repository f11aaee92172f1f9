package batch

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/karupanerura/infixcalc/internal/expression"
	"golang.org/x/sync/errgroup"
)

const maxLineBytes = 1024 * 1024

// Record is the outcome of one expression line.
type Record struct {
	Line       int
	Expression string
	Result     int64
	Err        error
}

func (r *Record) Failed() bool {
	return r.Err != nil
}

// Evaluate reads every line of r and evaluates the expressions concurrently.
// Blank and help lines are skipped and a quit line ends the input.
// Records are returned in input order.
func Evaluate(r io.Reader, debug bool) ([]Record, error) {
	type job struct {
		lex   *expression.Lexer
		first expression.Token
	}

	var records []Record
	var jobs []job

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	lineNo := 0
scan:
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		lex := expression.NewLexer(strings.NewReader(line))
		first := lex.NextToken()
		switch first.Kind() {
		case expression.KindQuit:
			break scan
		case expression.KindHelp, expression.KindEndOfLine, expression.KindEndOfInput:
			continue
		}

		records = append(records, Record{Line: lineNo, Expression: strings.TrimSpace(lex.Line())})
		jobs = append(jobs, job{lex: lex, first: first})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("bufio.Scanner: %w", err)
	}

	debug = debug || expression.DebugFromEnv()
	eg := errgroup.Group{}
	for i := range jobs {
		i := i
		eg.Go(func() error {
			if jobs[i].first.Is(expression.KindError) {
				records[i].Err = jobs[i].lex.Err()
				return nil
			}

			e := &expression.Evaluator{Debug: debug}
			records[i].Result, records[i].Err = e.Evaluate(jobs[i].first, jobs[i].lex)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return records, nil
}
