package batch

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/goccy/go-json"
	"github.com/karupanerura/infixcalc/internal/config"
	"github.com/karupanerura/infixcalc/internal/types"
)

type jsonRecord struct {
	Line       int    `json:"line"`
	Expression string `json:"expression"`
	Result     *int64 `json:"result,omitempty"`
	Error      any    `json:"error,omitempty"`
}

// Write renders records in the given format.
func Write(w io.Writer, records []Record, format config.Format, colored bool) error {
	switch format {
	case config.FormatJSON:
		return writeJSON(w, records, colored)
	case config.FormatText, "":
		return writeText(w, records, colored)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func writeText(w io.Writer, records []Record, colored bool) error {
	errTag := color.New(color.FgRed, color.Bold)
	if colored {
		errTag.EnableColor()
	} else {
		errTag.DisableColor()
	}

	for _, r := range records {
		var err error
		if r.Failed() {
			_, err = fmt.Fprintf(w, "%s: %s %s\n", r.Expression, errTag.Sprint("Error:"), types.Message(r.Err))
		} else {
			_, err = fmt.Fprintf(w, "%s = %d\n", r.Expression, r.Result)
		}
		if err != nil {
			return fmt.Errorf("fmt.Fprintf: %w", err)
		}
	}
	return nil
}

func writeJSON(w io.Writer, records []Record, colored bool) error {
	opts := []json.EncodeOptionFunc{json.DisableHTMLEscape()}
	if colored {
		opts = append(opts, json.Colorize(json.DefaultColorScheme))
	}

	for _, r := range records {
		b, err := json.MarshalWithOption(toJSONRecord(r), opts...)
		if err != nil {
			return fmt.Errorf("json.MarshalWithOption: %w", err)
		}
		if _, err = w.Write(b); err != nil {
			return fmt.Errorf("w.Write: %w", err)
		}
		if _, err = io.WriteString(w, "\n"); err != nil {
			return fmt.Errorf("io.WriteString: %w", err)
		}
	}
	return nil
}

func toJSONRecord(r Record) jsonRecord {
	jr := jsonRecord{Line: r.Line, Expression: r.Expression}
	if !r.Failed() {
		result := r.Result
		jr.Result = &result
		return jr
	}

	var exception types.Exception
	if errors.As(r.Err, &exception) {
		jr.Error = exception.Exception()
	} else {
		jr.Error = map[string]any{"message": r.Err.Error()}
	}
	return jr
}
