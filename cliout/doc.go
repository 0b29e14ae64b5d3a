// Package cliout formats command output as human-readable text, JSON or
// YAML.
//
// A Printer writes to any io.Writer. Human-readable output uses ANSI styling
// only when the writer is a terminal and NO_COLOR is not set, so output
// captured in tests or piped to files stays plain.
//
//	p := cliout.NewPrinter(cmd.OutOrStdout(), cliout.FormatJSON)
//	err := p.Print(result, func() {
//		p.Header("PATH")
//		for i, e := range result.Entries {
//			p.Item("%2d  %s", i, e)
//		}
//	})
//
// In JSON and YAML formats the formatter is not called and data is encoded
// instead.
package cliout
