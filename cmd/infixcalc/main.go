package main

import (
	"io"
	"log"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/karupanerura/infixcalc/internal/batch"
	"github.com/karupanerura/infixcalc/internal/config"
	"github.com/karupanerura/infixcalc/internal/repl"
	"github.com/mattn/go-isatty"
)

const (
	exitOK         = 0
	exitQuit       = 1
	exitLineFailed = 1
	exitFailure    = 2
)

type Option struct {
	Debug  bool   `short:"d" long:"debug" description:"[OPTIONAL] Trace every token during evaluation"`
	Config string `short:"c" long:"config" description:"[OPTIONAL] Config file (YAML or JSON)" required:"false"`
	File   string `short:"f" long:"file" description:"[OPTIONAL] Evaluate each line of the file ('-' for stdin) and exit" required:"false"`
	Prompt string `long:"prompt" description:"[OPTIONAL] Prompt shown before each expression" required:"false"`
	Color  string `long:"color" description:"[OPTIONAL] Colored output" choice:"auto" choice:"always" choice:"never" required:"false"`
	Format string `long:"format" description:"[OPTIONAL] Batch output format" choice:"text" choice:"json" required:"false"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

func run(args []string, stdin io.Reader, stdout io.Writer) int {
	var opt Option
	parser := flags.NewParser(&opt, flags.Default)
	_, err := parser.ParseArgs(args)
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			return exitOK
		} else {
			parser.WriteHelp(stdout)
			return exitFailure
		}
	}

	cfg, err := loadConfig(&opt)
	if err != nil {
		log.Printf("failed to load config: %v", err)
		return exitFailure
	}
	colored := useColor(cfg.Color, stdout)

	// batch mode
	if opt.File != "" {
		return runBatch(opt.File, stdin, stdout, cfg, colored)
	}

	s := &repl.Session{
		In:     stdin,
		Out:    stdout,
		Prompt: cfg.Prompt,
		Debug:  cfg.Debug,
		Color:  colored,
	}
	status, err := s.Run()
	if err != nil {
		log.Printf("failed to run session: %v", err)
		return exitFailure
	}
	if status == repl.StatusQuit {
		return exitQuit
	}
	return exitOK
}

func loadConfig(opt *Option) (config.Config, error) {
	cfg := config.Default()
	if opt.Config != "" {
		var err error
		cfg, err = config.Load(opt.Config)
		if err != nil {
			return config.Config{}, err
		}
	}

	if opt.Debug {
		cfg.Debug = true
	}
	if opt.Prompt != "" {
		cfg.Prompt = opt.Prompt
	}
	if opt.Color != "" {
		cfg.Color = config.ColorMode(opt.Color)
	}
	if opt.Format != "" {
		cfg.Format = config.Format(opt.Format)
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func runBatch(filePath string, stdin io.Reader, stdout io.Writer, cfg config.Config, colored bool) int {
	r := stdin
	if filePath != "-" {
		f, err := os.Open(filePath)
		if err != nil {
			log.Printf("failed to open expression file: %v", err)
			return exitFailure
		}
		defer f.Close()
		r = f
	}

	records, err := batch.Evaluate(r, cfg.Debug)
	if err != nil {
		log.Printf("failed to evaluate expressions: %v", err)
		return exitFailure
	}
	if err = batch.Write(stdout, records, cfg.Format, colored); err != nil {
		log.Printf("failed to write results: %v", err)
		return exitFailure
	}

	for _, r := range records {
		if r.Failed() {
			return exitLineFailed
		}
	}
	return exitOK
}

func useColor(mode config.ColorMode, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}

	if f, ok := w.(interface{ Fd() uintptr }); ok {
		return isatty.IsTerminal(f.Fd())
	}
	return false
}
