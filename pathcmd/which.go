package pathcmd

import (
	"fmt"

	"github.com/jongio/pathvar/envvar"
	"github.com/jongio/pathvar/pathutil"
	"github.com/spf13/cobra"
)

type whichResult struct {
	Tool    string   `json:"tool" yaml:"tool"`
	Matches []string `json:"matches" yaml:"matches"`
}

func newWhichCommand(s *settings) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:          "which NAME",
		Short:        "Show which executable a name resolves to along the variable",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := envvar.LookupFrom(s.environment(), s.variable)

			result := whichResult{Tool: args[0], Matches: []string{}}
			if all {
				result.Matches = append(result.Matches, pathutil.FindAll(path, args[0])...)
			} else if match := pathutil.FindTool(path, args[0]); match != "" {
				result.Matches = append(result.Matches, match)
			}

			p := s.printer(cmd)
			if err := p.Print(result, func() {
				for _, match := range result.Matches {
					p.Plain("%s", match)
				}
			}); err != nil {
				return err
			}

			if len(result.Matches) == 0 {
				return fmt.Errorf("%s not found in %s", args[0], s.variable)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "List every match, including shadowed ones")
	return cmd
}
