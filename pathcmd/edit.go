package pathcmd

import (
	"fmt"

	"github.com/jongio/pathvar/envvar"
	"github.com/jongio/pathvar/logutil"
	"github.com/jongio/pathvar/pathplan"
	"github.com/jongio/pathvar/shellutil"
	"github.com/spf13/cobra"
)

// shellAuto selects the shell named by $SHELL.
const shellAuto = "auto"

type editResult struct {
	Variable   string   `json:"variable" yaml:"variable"`
	Value      string   `json:"value" yaml:"value"`
	Entries    []string `json:"entries" yaml:"entries"`
	Written    bool     `json:"written" yaml:"written"`
	Assignment string   `json:"assignment,omitempty" yaml:"assignment,omitempty"`
}

// outputOptions are the flags shared by edit and apply.
type outputOptions struct {
	shell string
	write bool
}

func (o *outputOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.shell, "shell", "", "Print an assignment for this shell (bash, zsh, sh, fish, pwsh, powershell, cmd, auto)")
	cmd.Flags().BoolVar(&o.write, "write", false, "Write the result into the environment")
}

func newEditCommand(s *settings) *cobra.Command {
	var (
		plan pathplan.Plan
		out  outputOptions
	)

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Remove, prepend and append search-path entries",
		Long: `Edit applies --remove, then --prepend, then --append to the variable and
prints the result. Each flag may be repeated; prepended and appended entries
keep the order they are given in.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan.Variable = s.variable
			return run(cmd, s, &plan, out)
		},
	}

	cmd.Flags().StringArrayVar(&plan.Remove, "remove", nil, "Entry to remove (exact match)")
	cmd.Flags().StringArrayVar(&plan.Prepend, "prepend", nil, "Entry to insert at the front")
	cmd.Flags().StringArrayVar(&plan.Append, "append", nil, "Entry to add at the end")
	out.register(cmd)
	return cmd
}

func newApplyCommand(s *settings) *cobra.Command {
	var out outputOptions

	cmd := &cobra.Command{
		Use:          "apply PLAN",
		Short:        "Apply the edits in a YAML plan file",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := pathplan.Load(args[0])
			if err != nil {
				return err
			}
			if plan.Variable == "" || cmd.Flags().Changed("var") {
				plan.Variable = s.variable
			}
			return run(cmd, s, plan, out)
		},
	}

	out.register(cmd)
	return cmd
}

// run evaluates plan, optionally writes and renders the result, and prints it.
func run(cmd *cobra.Command, s *settings, plan *pathplan.Plan, out outputOptions) error {
	env := s.environment()
	name := plan.VariableName()
	log := logutil.NewLogger("pathcmd").WithOperation(cmd.Name()).WithFields("variable", name)

	value, err := plan.Evaluate(env)
	if err != nil {
		return err
	}

	result := editResult{Variable: name, Value: value.String(), Entries: []string{}}
	for entry := range value.Split().All() {
		result.Entries = append(result.Entries, displayText(entry))
	}

	if out.shell != "" {
		assignment, err := renderAssignment(env, out.shell, name, value)
		if err != nil {
			return err
		}
		result.Assignment = assignment
	}

	if out.write {
		if err := envvar.SetIn(env, name, value); err != nil {
			return err
		}
		result.Written = true
	}
	log.Debug("edit evaluated", "entries", len(result.Entries), "written", result.Written)

	p := s.printer(cmd)
	return p.Print(result, func() {
		if result.Assignment != "" {
			p.Plain("%s", result.Assignment)
			return
		}
		p.Plain("%s", result.Value)
	})
}

func renderAssignment(env envvar.Environment, shell, name string, value envvar.Var) (string, error) {
	if shell == shellAuto {
		userShell, _ := envvar.LookupFrom(env, "SHELL")
		shell = shellutil.DetectUserShell(userShell.Native())
	}

	text, err := value.Text()
	if err != nil {
		return "", fmt.Errorf("cannot render %s for %s: %w", name, shell, err)
	}
	return shellutil.FormatAssignment(shell, name, text)
}
