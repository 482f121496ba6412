package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mobyle2/xmlbridge/internal/config"
	"github.com/mobyle2/xmlbridge/internal/convert"
	"github.com/mobyle2/xmlbridge/internal/diff"
	"github.com/mobyle2/xmlbridge/internal/ir"
	"github.com/mobyle2/xmlbridge/internal/logger"
	"github.com/mobyle2/xmlbridge/internal/styles"
)

// Options carries the parsed command line for a single conversion.
type Options struct {
	Type     string // conversion direction; empty means use the config default
	Input    string // input file path
	Out      string // output file path; empty means stdout
	Strip    bool
	StripSet bool // whether --strip appeared on the command line
	Query    string
	Check    bool
	Verbose  bool
}

// Convert runs one conversion end to end. It exits the process with a
// non-zero status on any error; all output text goes to stdout or the
// --out file, everything else to stderr.
func Convert(opts Options) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	lg, cleanup := buildLogger(cfg, opts.Verbose)
	defer cleanup()
	lg.ConfigLoaded(cfg.DefaultType, cfg.Indent, cfg.Strip)

	direction := opts.Type
	if direction == "" {
		direction = cfg.DefaultType
	}
	strip := cfg.Strip
	if opts.StripSet {
		strip = opts.Strip
	}

	data, err := os.ReadFile(opts.Input)
	if err != nil {
		fail(fmt.Errorf("cannot read input: %w", err))
	}
	input := string(data)

	if opts.Check {
		runCheck(lg, opts, input, direction, strip)
		return
	}

	start := time.Now()
	lg.ConversionStarted(direction, opts.Input)

	out, err := run(lg, input, direction, strip, opts.Query, cfg.Indent)
	if err != nil {
		lg.ConversionError(direction, opts.Input, err)
		fail(err)
	}

	if err := write(opts.Out, out); err != nil {
		lg.ConversionError(direction, opts.Input, err)
		fail(err)
	}

	dest := opts.Out
	if dest == "" {
		dest = "stdout"
	}
	lg.ConversionCompleted(direction, opts.Input, dest, time.Since(start))
	if opts.Out != "" {
		fmt.Fprintln(os.Stderr, styles.SuccessStyle.Render("✓ wrote "+opts.Out))
	}
}

func run(lg *logger.Logger, input, direction string, strip bool, query string, indent int) (string, error) {
	switch direction {
	case "xml2json", "xml2yaml":
		root, err := convert.Parse(input)
		if err != nil {
			return "", err
		}
		el := root
		if query != "" {
			el, err = convert.Select(root, query)
			if err != nil {
				return "", err
			}
			lg.QuerySelected(query, el.Data)
		}
		node := convert.FromElement(el, strip)
		if direction == "xml2yaml" {
			return ir.EncodeYAML(node)
		}
		if indent > 0 {
			return ir.EncodeJSONIndent(node, strings.Repeat(" ", indent))
		}
		return ir.EncodeJSON(node)
	case "yaml2xml":
		return convert.YAMLToXML(input)
	default:
		// Any other direction value converts interchange JSON back to
		// XML, matching the original command line contract.
		return convert.JSONToXML(input)
	}
}

func runCheck(lg *logger.Logger, opts Options, input, direction string, strip bool) {
	rendered, clean, err := diff.RoundTrip(filepath.Base(opts.Input), input, direction, strip)
	if err != nil {
		lg.ConversionError(direction, opts.Input, err)
		fail(err)
	}
	lg.CheckCompleted(opts.Input, clean)
	if clean {
		fmt.Fprintln(os.Stderr, styles.SuccessStyle.Render("✓ round trip is clean"))
		return
	}
	fmt.Print(rendered)
	fmt.Fprintln(os.Stderr, styles.WarningStyle.Render("! round trip changed the document"))
	os.Exit(1)
}

func buildLogger(cfg *config.Config, verbose bool) (*logger.Logger, func()) {
	level := log.WarnLevel
	if verbose {
		level = log.DebugLevel
	}
	if cfg.LogFile != "" {
		lg, cleanup, err := logger.NewFileLogger(cfg.LogFile)
		if err == nil {
			lg.SetLevel(level)
			return lg, cleanup
		}
		fmt.Fprintf(os.Stderr, "Warning: cannot open log file: %v\n", err)
	}
	return logger.NewWithLevel(os.Stderr, level), func() {}
}

func write(path, text string) error {
	if path == "" {
		fmt.Println(text)
		return nil
	}
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("cannot write output: %w", err)
	}
	return nil
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, styles.ErrorStyle.Render("✗ "+err.Error()))
	os.Exit(1)
}
