package expression

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/karupanerura/infixcalc/internal/types"
)

// TokenSource supplies tokens to an Evaluator.
// Err reports the error behind the most recent KindError token.
type TokenSource interface {
	NextToken() Token
	Err() error
}

// Lexer splits lines read from an io.Reader into tokens on demand.
type Lexer struct {
	reader   *bufio.Reader
	line     string
	index    int
	length   int
	needLine bool
	err      error
	readErr  error
}

var _ TokenSource = (*Lexer)(nil)

func NewLexer(r io.Reader) *Lexer {
	return &Lexer{
		reader:   bufio.NewReader(r),
		needLine: true,
	}
}

// ClearToEndOfLine makes the next NextToken discard the rest of the current line.
func (l *Lexer) ClearToEndOfLine() {
	l.needLine = true
}

// Line returns the current line without its terminator.
func (l *Lexer) Line() string {
	return strings.TrimRight(l.line, "\r\n")
}

func (l *Lexer) Err() error {
	return l.err
}

// ReadErr returns the failure that ended the input, if it was not io.EOF.
func (l *Lexer) ReadErr() error {
	return l.readErr
}

func (l *Lexer) NextToken() Token {
	if l.needLine {
		if !l.readLine() {
			return NewToken(KindEndOfInput)
		}
	}

	for l.index < l.length && isSpace(l.line[l.index]) {
		l.index++
	}

	if l.index >= l.length {
		l.needLine = true
		return NewToken(KindEndOfLine)
	}

	c := l.line[l.index]
	l.index++
	switch c {
	case 'q', 'Q':
		return NewToken(KindQuit)
	case '?':
		return NewToken(KindHelp)
	case '+', '-', '*', '/', '(', ')':
		return NewOperatorToken(c)
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		value := int64(c - '0')
		for l.index < l.length && isDigit(l.line[l.index]) {
			value = value*10 + int64(l.line[l.index]-'0')
			l.index++
		}
		return NewValueToken(value)
	}

	beginsIdx := l.index - 1
	for l.index < l.length && !isSpace(l.line[l.index]) {
		l.index++
	}
	symbol := l.line[beginsIdx:l.index]
	l.err = &types.Error{
		Tag:   types.SyntaxErrorTag,
		Err:   fmt.Errorf("Unrecognized symbol %q", symbol),
		Extra: map[string]any{"symbol": symbol, "position": beginsIdx + 1},
	}
	return NewToken(KindError)
}

func (l *Lexer) readLine() bool {
	line, err := l.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if !errors.Is(err, io.EOF) {
			l.readErr = fmt.Errorf("bufio.Reader.ReadString: %w", err)
		}
		l.line, l.index, l.length = "", 0, 0
		return false
	}

	l.line = line
	l.index = 0
	l.length = len(line)
	l.needLine = false
	l.err = nil
	return true
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
