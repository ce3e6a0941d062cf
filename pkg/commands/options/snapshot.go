package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/hrow/pkg/store"
)

// SnapshotOptions
type SnapshotOptions struct {
	Name string
	List bool
}

func AddSnapshotArgs(cmd *cobra.Command, o *SnapshotOptions) {
	cmd.Flags().StringVar(&o.Name, "name", store.DefaultName,
		"Name of the snapshot to write.")
	cmd.Flags().BoolVar(&o.List, "list", false,
		"List saved snapshots.")
}
