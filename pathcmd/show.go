package pathcmd

import (
	"github.com/jongio/pathvar/envvar"
	"github.com/spf13/cobra"
)

type showResult struct {
	Variable string   `json:"variable" yaml:"variable"`
	Set      bool     `json:"set" yaml:"set"`
	Entries  []string `json:"entries" yaml:"entries"`
}

func newShowCommand(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:          "show",
		Short:        "List the entries of a search-path variable",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, ok := envvar.LookupFrom(s.environment(), s.variable)

			result := showResult{Variable: s.variable, Set: ok, Entries: []string{}}
			for entry := range v.Split().All() {
				result.Entries = append(result.Entries, displayText(entry))
			}

			p := s.printer(cmd)
			return p.Print(result, func() {
				p.Header(result.Variable)
				if !result.Set {
					p.Plain("%s", p.Muted("(not set)"))
					return
				}
				for i, entry := range result.Entries {
					p.Item("%3d  %s", i, entry)
				}
			})
		},
	}
}

// displayText makes an entry safe for text, JSON and YAML output.
func displayText(entry string) string {
	return envvar.FromString(entry).String()
}
