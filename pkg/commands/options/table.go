package options

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/hrow/pkg/app"
)

// TableOptions
type TableOptions struct {
	Table string
}

func AddTableArgs(cmd *cobra.Command, o *TableOptions) {
	cmd.Flags().StringVarP(&o.Table, "table", "t", "",
		"Limit output to one table, one of workers, attendance, partners or finance.")
}

// TableCompletions lists the table names that start with prefix.
func TableCompletions(prefix string) []string {
	var out []string
	for _, t := range app.Tables() {
		if strings.HasPrefix(string(t), prefix) {
			out = append(out, string(t))
		}
	}
	return out
}
