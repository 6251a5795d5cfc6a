// Package cli implements the nanofmt command.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/segmentio/encoding/json"
	"github.com/spf13/cobra"

	"github.com/bjaus/nanofmt"
	"github.com/bjaus/nanofmt/internal/argparse"
	"github.com/bjaus/nanofmt/internal/logging"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidNotation = errors.New("invalid notation")
	ErrInvalidNumber   = errors.New("invalid number")
)

// app carries state shared by every subcommand.
type app struct {
	logLevel  string
	logFormat string
	log       *slog.Logger
}

// NewRootCommand builds the command tree. getenv supplies flag defaults from
// the environment; nil means os.Getenv.
func NewRootCommand(getenv func(string) string) *cobra.Command {
	if getenv == nil {
		getenv = os.Getenv
	}
	a := &app{log: logging.Nop()}
	env := logging.FromEnv(getenv)

	root := &cobra.Command{
		Use:   "nanofmt",
		Short: "Format text with {}-style templates into bounded buffers",
		Long: `nanofmt formats {}-style templates the way the nanofmt library does:
output is written into a buffer of fixed size and truncated when it does not
fit, while the full length of the output is still reported.

Arguments are literals such as 42, 3.5, true, s:text, c:x, u32:7 or f32:1.5.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			a.log = logging.New(logging.Config{
				Level:  logging.ParseLevel(a.logLevel),
				Format: logging.ParseFormat(a.logFormat),
				Output: cmd.ErrOrStderr(),
			})
		},
	}
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", env.Level.String(), "log level (debug, info, warn, error); env "+logging.EnvLevel)
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", string(env.Format), "log format (text, json); env "+logging.EnvFormat)

	root.AddCommand(
		a.formatCommand(),
		a.lengthCommand(),
		a.checkCommand(),
		a.numberCommand(),
	)
	return root
}

// Execute runs the command with args and returns the process exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := NewRootCommand(nil)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return 1
	}
	return 0
}

// argFlags are the flags shared by commands that take format arguments.
type argFlags struct {
	file string
}

func (f *argFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.file, "args-file", "", "YAML or JSON list of additional arguments")
}

func (f *argFlags) load(literals []string) (nanofmt.Args, error) {
	args, err := argparse.ParseAll(literals)
	if err != nil {
		return nil, err
	}
	if f.file == "" {
		return args, nil
	}
	data, err := os.ReadFile(f.file)
	if err != nil {
		return nil, fmt.Errorf("read arguments: %w", err)
	}
	more, err := argparse.FromYAML(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.file, err)
	}
	return append(args, more...), nil
}

// report is the --json output of the format command.
type report struct {
	Output    string `json:"output"`
	Written   int    `json:"written"`
	Length    int    `json:"length"`
	Truncated bool   `json:"truncated"`
}

func (a *app) formatCommand() *cobra.Command {
	var (
		flags   argFlags
		size    int
		asJSON  bool
		newline bool
	)
	cmd := &cobra.Command{
		Use:   "format <template> [args...]",
		Short: "Format a template and print the result",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := flags.load(args[1:])
			if err != nil {
				return err
			}
			var r report
			var out []byte
			if size < 0 {
				out = nanofmt.Marshal(args[0], values...)
				r.Written, r.Length = len(out), len(out)
			} else {
				out = make([]byte, size)
				r.Written, r.Length = nanofmt.FormatTo(out, args[0], values...)
				out = out[:r.Written]
			}
			r.Output = string(out)
			r.Truncated = r.Length > r.Written
			a.log.Debug("formatted", "template", args[0], "args", len(values), "written", r.Written, "length", r.Length)
			if r.Truncated {
				a.log.Warn("output truncated", "size", size, "length", r.Length)
			}
			if err := nanofmt.Validate(args[0], values...); err != nil {
				a.log.Warn("template problem", "error", err)
			}

			if asJSON {
				data, err := json.Marshal(r)
				if err != nil {
					return fmt.Errorf("encode report: %w", err)
				}
				out = append(data, '\n')
			} else if newline {
				out = append(out, '\n')
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	flags.register(cmd)
	cmd.Flags().IntVar(&size, "size", -1, "destination buffer size in bytes; negative means unbounded")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print a JSON report instead of the output")
	cmd.Flags().BoolVar(&newline, "newline", true, "end the output with a newline")
	return cmd
}

func (a *app) lengthCommand() *cobra.Command {
	var flags argFlags
	cmd := &cobra.Command{
		Use:   "length <template> [args...]",
		Short: "Print the length of the formatted output",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := flags.load(args[1:])
			if err != nil {
				return err
			}
			n := nanofmt.Length(args[0], values...)
			a.log.Debug("measured", "template", args[0], "length", n)
			_, err = nanofmt.Write(cmd.OutOrStdout(), "{}\n", nanofmt.Int(n))
			return err
		},
	}
	flags.register(cmd)
	return cmd
}

func (a *app) checkCommand() *cobra.Command {
	var flags argFlags
	cmd := &cobra.Command{
		Use:   "check <template> [args...]",
		Short: "Report problems in a template",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := flags.load(args[1:])
			if err != nil {
				return err
			}
			if err := nanofmt.Validate(args[0], values...); err != nil {
				return err
			}
			a.log.Debug("template ok", "template", args[0])
			_, err = io.WriteString(cmd.OutOrStdout(), "ok\n")
			return err
		},
	}
	flags.register(cmd)
	return cmd
}

var intNotations = map[string]nanofmt.IntFormat{
	"d": nanofmt.IntDecimal,
	"x": nanofmt.IntHex,
	"X": nanofmt.IntHexUpper,
	"b": nanofmt.IntBinary,
	"o": nanofmt.IntOctal,
}

var floatNotations = map[string]nanofmt.FloatFormat{
	"g": nanofmt.FloatGeneral,
	"G": nanofmt.FloatGeneralUpper,
	"e": nanofmt.FloatScientific,
	"E": nanofmt.FloatScientificUpper,
	"f": nanofmt.FloatFixed,
	"F": nanofmt.FloatFixedUpper,
	"a": nanofmt.FloatHex,
	"A": nanofmt.FloatHexUpper,
}

func (a *app) numberCommand() *cobra.Command {
	var (
		notation  string
		precision int
		size      int
		bits      int
	)
	cmd := &cobra.Command{
		Use:   "number <value>",
		Short: "Convert a single number with the numeric engine",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			buf := make([]byte, max(size, 0))
			n, err := convertNumber(buf, args[0], notation, precision, bits)
			if err != nil {
				return err
			}
			a.log.Debug("converted", "value", args[0], "notation", notation, "written", n)
			_, err = cmd.OutOrStdout().Write(append(buf[:n], '\n'))
			return err
		},
	}
	cmd.Flags().StringVar(&notation, "notation", "g", "d, x, X, b, o for integers; g, G, e, E, f, F, a, A for floats")
	cmd.Flags().IntVar(&precision, "precision", -1, "float precision; negative means shortest")
	cmd.Flags().IntVar(&size, "size", 512, "destination buffer size in bytes")
	cmd.Flags().IntVar(&bits, "bits", 64, "float width, 32 or 64")
	return cmd
}

func convertNumber(buf []byte, value, notation string, precision, bits int) (int, error) {
	if f, ok := intNotations[notation]; ok {
		if v, err := strconv.ParseInt(value, 0, 64); err == nil {
			return nanofmt.FormatInt(buf, v, f), nil
		}
		v, err := strconv.ParseUint(value, 0, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, value)
		}
		return nanofmt.FormatInt(buf, v, f), nil
	}
	f, ok := floatNotations[notation]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNotation, notation)
	}
	if bits == 32 {
		v, err := strconv.ParseFloat(value, 32)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, value)
		}
		return nanofmt.FormatFloat(buf, float32(v), f, precision), nil
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, value)
	}
	return nanofmt.FormatFloat(buf, v, f, precision), nil
}
