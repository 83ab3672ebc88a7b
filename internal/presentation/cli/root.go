// Package cli implements the abacheck command.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bibbank/routing-service/internal/application/dto"
	"github.com/bibbank/routing-service/internal/application/usecase"
	"github.com/bibbank/routing-service/internal/domain/model"
	"github.com/bibbank/routing-service/internal/domain/service"
	"github.com/bibbank/routing-service/internal/domain/valueobject"
	"github.com/bibbank/routing-service/pkg/observability"
)

const (
	exitValid   = 0
	exitInvalid = 1
)

// version is set at build time with -ldflags "-X .../cli.version=...".
var version = "dev"

const usageLine = "usage: abacheck <routing-number>"

// errorDocument is written for usage errors and internal faults.
type errorDocument struct {
	Valid bool   `json:"valid"`
	Error string `json:"error"`
}

// explainedResult extends a result with the routing number's prefix class.
type explainedResult struct {
	model.ValidationResult
	PrefixClass string `json:"prefix_class,omitempty"`
	District    int    `json:"district,omitempty"`
}

type options struct {
	file     string
	logLevel string
	compact  bool
	explain  bool
}

type app struct {
	stdin    io.Reader
	stdout   io.Writer
	stderr   io.Writer
	logger   *slog.Logger
	opts     options
	exitCode int
}

// Run executes abacheck with args (excluding the program name) and returns
// the process exit code: 0 when every validated routing number is valid,
// 1 otherwise. stdout receives exactly one JSON document.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) (code int) {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr, exitCode: exitInvalid}

	defer func() {
		if r := recover(); r != nil {
			a.writeJSON(errorDocument{Error: fmt.Sprintf("internal error: %v", r)})
			code = exitInvalid
		}
	}()

	cmd := a.newRootCommand()
	cmd.SetArgs(protectNumericArgs(args))
	if err := cmd.Execute(); err != nil {
		a.writeJSON(errorDocument{Error: err.Error()})
		return exitInvalid
	}
	return a.exitCode
}

func (a *app) newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "abacheck <routing-number>",
		Short: "Validate an ABA routing number check digit",
		Long: `abacheck validates the check digit of a 9-digit ABA routing number.

Spaces and dashes are ignored. The result is printed as JSON and the exit
status is 0 only when the routing number is valid.

Examples:
  abacheck 011000015
  abacheck "021-000-021"
  abacheck --file numbers.txt`,
		Args:          a.validateArgs,
		RunE:          a.run,
		SilenceErrors: true,
	}
	// Human-oriented output (usage, help) stays off stdout.
	cmd.SetOut(a.stderr)
	cmd.SetErr(a.stderr)
	cmd.SetIn(a.stdin)

	cmd.Flags().BoolVar(&a.opts.compact, "compact", false, "Print JSON on a single line")
	cmd.Flags().BoolVar(&a.opts.explain, "explain", false, "Include the routing number prefix class")
	cmd.Flags().StringVarP(&a.opts.file, "file", "f", "", "Validate one routing number per line from PATH (- for stdin)")
	cmd.Flags().StringVar(&a.opts.logLevel, "log-level", "error", "Log level for stderr diagnostics (debug, info, warn, error)")

	defaultHelp := cmd.HelpFunc()
	cmd.SetHelpFunc(func(c *cobra.Command, args []string) {
		a.exitCode = exitValid
		defaultHelp(c, args)
	})

	cmd.AddCommand(a.newVersionCommand())
	return cmd
}

func (a *app) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(a.stdout, "abacheck version %s\n", version)
			a.exitCode = exitValid
		},
	}
}

func (a *app) validateArgs(_ *cobra.Command, args []string) error {
	if a.opts.file != "" {
		if len(args) != 0 {
			return errors.New("a routing number argument cannot be combined with --file")
		}
		return nil
	}
	if len(args) != 1 {
		return fmt.Errorf("%s (got %d arguments)", usageLine, len(args))
	}
	return nil
}

func (a *app) run(cmd *cobra.Command, args []string) error {
	// Argument errors have already been reported; later failures are not usage problems.
	cmd.SilenceUsage = true

	a.logger = observability.InitLogger(observability.LogConfig{
		Output: a.stderr,
		Level:  a.opts.logLevel,
		Format: "text",
	})

	validator := service.NewRoutingNumberValidator()
	ctx := cmd.Context()

	if a.opts.file != "" {
		return a.runBatch(ctx, validator)
	}

	result := usecase.NewValidateRoutingNumberUseCase(validator, nil).
		Execute(ctx, dto.ValidateRoutingNumberRequest{RoutingNumber: args[0]})
	a.logger.Debug("validated routing number",
		"routing_number", result.RoutingNumber,
		"outcome", result.Outcome,
	)

	a.writeJSON(a.present(result))
	if result.Valid {
		a.exitCode = exitValid
	}
	return nil
}

func (a *app) present(result model.ValidationResult) any {
	if !a.opts.explain {
		return result
	}
	out := explainedResult{ValidationResult: result}
	if rn, err := valueobject.NewRoutingNumber(result.RoutingNumber); err == nil {
		out.PrefixClass = rn.Class().String()
		out.District = rn.District()
	}
	return out
}

func (a *app) writeJSON(v any) {
	var (
		data []byte
		err  error
	)
	if a.opts.compact {
		data, err = json.Marshal(v)
	} else {
		data, err = json.MarshalIndent(v, "", "  ")
	}
	if err != nil {
		data = []byte(`{"valid":false,"error":"internal error: encode result"}`)
	}
	_, _ = a.stdout.Write(append(data, '\n'))
}

// protectNumericArgs moves arguments such as "-021000021" behind a "--"
// terminator so the flag parser does not mistake them for shorthand flags.
func protectNumericArgs(args []string) []string {
	var flags, numeric []string
	for i, arg := range args {
		if arg == "--" {
			flags = append(flags, args[i:]...)
			break
		}
		if looksLikeDashedNumber(arg) {
			numeric = append(numeric, arg)
			continue
		}
		flags = append(flags, arg)
	}
	if len(numeric) == 0 {
		return args
	}
	if !slices.Contains(flags, "--") {
		flags = append(flags, "--")
	}
	return append(flags, numeric...)
}

func looksLikeDashedNumber(arg string) bool {
	if !strings.HasPrefix(arg, "-") {
		return false
	}
	hasDigit := false
	for _, r := range arg {
		switch {
		case r >= '0' && r <= '9':
			hasDigit = true
		case r == '-' || r == ' ':
		default:
			return false
		}
	}
	return hasDigit
}
