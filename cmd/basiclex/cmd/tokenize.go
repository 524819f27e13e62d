package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/cwbudde/go-basic-lexer/internal/lexer"
	"github.com/cwbudde/go-basic-lexer/pkg/token"
)

var (
	evalExpr   string
	showPos    bool
	showType   bool
	onlyErrors bool
	watch      bool
	format     string
	selectPath string
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [file]",
	Short: "Tokenize a BASIC source file or expression",
	Long: `Tokenize a BASIC program and print the resulting tokens.

This command is useful for debugging the lexer and understanding how a
given piece of source is split into tokens.

Examples:
  # Tokenize a script file
  basiclex tokenize program.bas

  # Tokenize an inline expression
  basiclex tokenize -e "x% = 1 + 2"

  # Show token types and positions
  basiclex tokenize --show-type --show-pos program.bas

  # Show only bad (unrecognized) tokens
  basiclex tokenize --only-errors program.bas

  # Re-tokenize a file every time it changes on disk
  basiclex tokenize --watch program.bas`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokenize,
}

func init() {
	rootCmd.AddCommand(tokenizeCmd)

	tokenizeCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize inline code instead of reading from a file")
	tokenizeCmd.Flags().BoolVar(&showPos, "show-pos", false, "show token positions (line:column)")
	tokenizeCmd.Flags().BoolVar(&showType, "show-type", false, "show token type names")
	tokenizeCmd.Flags().BoolVar(&onlyErrors, "only-errors", false, "show only BAD (unrecognized) tokens")
	tokenizeCmd.Flags().BoolVar(&watch, "watch", false, "re-tokenize the file whenever it changes on disk")
	tokenizeCmd.Flags().StringVar(&format, "format", "text", "output format: text or json")
	tokenizeCmd.Flags().StringVar(&selectPath, "select", "", "gjson path to extract from each token's JSON (requires --format json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	log := newLogger(verbose)

	// Flags win over the config file, which wins over built-in defaults.
	if !cmd.Flags().Changed("show-pos") {
		showPos = cfg.ShowPos
	}
	if !cmd.Flags().Changed("show-type") {
		showType = cfg.ShowType
	}
	if !cmd.Flags().Changed("only-errors") {
		onlyErrors = cfg.OnlyErrors
	}
	if !cmd.Flags().Changed("watch") {
		watch = cfg.Watch
	}

	var filename string
	if evalExpr == "" {
		if len(args) != 1 {
			return fmt.Errorf("either provide a file path or use -e for inline code")
		}
		filename = args[0]
	} else {
		filename = "<eval>"
	}

	if watch {
		if evalExpr != "" {
			return fmt.Errorf("--watch cannot be combined with -e/--eval")
		}
		return watchAndTokenize(log, filename)
	}

	input, err := readInput(filename)
	if err != nil {
		return err
	}

	log.Debug("tokenizing", "file", filename, "bytes", len(input))
	errorCount, err := tokenizeOnce(os.Stdout, input)
	if err != nil {
		return err
	}
	if onlyErrors && errorCount > 0 {
		return fmt.Errorf("found %d bad token(s)", errorCount)
	}
	return nil
}

func readInput(filename string) (string, error) {
	if evalExpr != "" {
		return evalExpr, nil
	}
	content, err := os.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", filename, err)
	}
	return string(content), nil
}

// tokenizeOnce drains the lexer over src, printing tokens to w, and returns
// the number of BAD tokens encountered.
func tokenizeOnce(w *os.File, src string) (int, error) {
	lx := lexer.FromString(src)
	errorCount := 0
	for {
		ts, err := lx.Read()
		if err != nil {
			return errorCount, fmt.Errorf("reading token stream: %w", err)
		}

		if ts.Token.Type == token.BAD {
			errorCount++
		} else if onlyErrors {
			if ts.Token.Type == token.EOF {
				break
			}
			continue
		}

		if err := printSpan(w, ts); err != nil {
			return errorCount, err
		}

		if ts.Token.Type == token.EOF {
			break
		}
	}
	return errorCount, nil
}

func printSpan(w *os.File, ts token.TokenSpan) error {
	if format == "json" {
		return printSpanJSON(w, ts)
	}
	return printSpanText(w, ts)
}

func printSpanText(w *os.File, ts token.TokenSpan) error {
	var out string
	if showType {
		out = fmt.Sprintf("[%-12s]", ts.Token.Type)
	}
	if ts.Token.Type == token.EOF {
		out += " <<EOF>>"
	} else {
		out += fmt.Sprintf(" %q", ts.Token.String())
	}
	if showPos {
		out += fmt.Sprintf(" @%s len=%d", ts.Pos, ts.Length)
	}
	_, err := fmt.Fprintln(w, out)
	return err
}

// printSpanJSON builds each token's JSON document incrementally with sjson
// (mirroring how one would accumulate a handful of known fields without a
// struct literal), then optionally narrows it down with a gjson path before
// printing.
func printSpanJSON(w *os.File, ts token.TokenSpan) error {
	doc := "{}"
	var err error
	if doc, err = sjson.Set(doc, "type", ts.Token.Type.String()); err != nil {
		return err
	}
	if doc, err = sjson.Set(doc, "text", ts.Token.String()); err != nil {
		return err
	}
	if doc, err = sjson.Set(doc, "line", ts.Pos.Line); err != nil {
		return err
	}
	if doc, err = sjson.Set(doc, "column", ts.Pos.Column); err != nil {
		return err
	}
	if doc, err = sjson.Set(doc, "length", ts.Length); err != nil {
		return err
	}

	if selectPath != "" {
		result := gjson.Get(doc, selectPath)
		_, err := fmt.Fprintln(w, result.String())
		return err
	}
	_, err = fmt.Fprintln(w, doc)
	return err
}

// watchAndTokenize re-runs tokenizeOnce whenever filename changes, debouncing
// bursts of write events (editors routinely fire several in a row for a
// single save) by the configured number of milliseconds.
func watchAndTokenize(log *slog.Logger, filename string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(filename); err != nil {
		return fmt.Errorf("watching %s: %w", filename, err)
	}

	debounce := time.Duration(cfg.WatchDebounceMillis) * time.Millisecond
	if debounce <= 0 {
		debounce = 200 * time.Millisecond
	}

	runOnce := func() {
		input, err := readInput(filename)
		if err != nil {
			log.Error("read failed", "error", err)
			return
		}
		if _, err := tokenizeOnce(os.Stdout, input); err != nil {
			log.Error("tokenize failed", "error", err)
		}
	}

	runOnce()

	var timer *time.Timer
	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, runOnce)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Error("watcher error", "error", err)
		}
	}
}

