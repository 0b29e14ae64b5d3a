package pathcmd

import (
	"fmt"
	"strings"

	"github.com/jongio/pathvar/cliout"
	"github.com/jongio/pathvar/envvar"
	"github.com/jongio/pathvar/logutil"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Option configures NewCommand.
type Option func(*settings)

// WithEnvironment makes the commands read and write e instead of the envvar
// default Environment.
func WithEnvironment(e envvar.Environment) Option {
	return func(s *settings) {
		s.env = e
	}
}

// settings holds flag values shared by the subcommands.
type settings struct {
	env      envvar.Environment
	variable string
	format   cliout.Format
	debug    bool
}

func (s *settings) environment() envvar.Environment {
	if s.env != nil {
		return s.env
	}
	return envvar.DefaultEnvironment()
}

func (s *settings) printer(cmd *cobra.Command) *cliout.Printer {
	return cliout.NewPrinter(cmd.OutOrStdout(), s.format)
}

// NewCommand creates the "path" command and its subcommands.
func NewCommand(opts ...Option) *cobra.Command {
	s := &settings{
		variable: envvar.PathVarName,
		format:   cliout.FormatDefault,
	}
	for _, opt := range opts {
		opt(s)
	}

	cmd := &cobra.Command{
		Use:   "path",
		Short: "Inspect and edit search-path environment variables",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if s.debug {
				logutil.SetupLoggerWithWriter(cmd.ErrOrStderr(), true, false)
			}
			if s.variable == "" || strings.ContainsAny(s.variable, "=\x00") {
				return fmt.Errorf("invalid variable name %q", s.variable)
			}
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&s.variable, "var", envvar.PathVarName, "Environment variable to operate on")
	flags.VarP(&formatValue{format: &s.format}, "output", "o", "Output format ("+strings.Join(cliout.Formats(), ", ")+")")
	flags.BoolVar(&s.debug, "debug", false, "Enable debug logging")

	cmd.AddCommand(
		newShowCommand(s),
		newEditCommand(s),
		newApplyCommand(s),
		newWhichCommand(s),
	)
	return cmd
}

var _ pflag.Value = (*formatValue)(nil)

// formatValue adapts cliout.Format to a pflag.Value so invalid formats are
// rejected while flags are parsed.
type formatValue struct {
	format *cliout.Format
}

func (f *formatValue) String() string {
	if f.format == nil {
		return string(cliout.FormatDefault)
	}
	return string(*f.format)
}

func (f *formatValue) Set(v string) error {
	parsed, err := cliout.ParseFormat(v)
	if err != nil {
		return err
	}
	*f.format = parsed
	return nil
}

func (f *formatValue) Type() string {
	return "format"
}
