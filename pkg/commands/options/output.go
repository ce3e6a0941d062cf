package options

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/hrow/pkg/printers"
)

// OutputOptions
type OutputOptions struct {
	JSON bool
	// Out defaults to color.Output.
	Out io.Writer
}

func AddOutputArg(cmd *cobra.Command, po *OutputOptions) {
	cmd.Flags().BoolVar(&po.JSON, "json", false,
		"Output as JSON.")
}

// Format is the runner output format.
func (o *OutputOptions) Format() string {
	if o.JSON {
		return "json"
	}
	return ""
}

// HandleError prints err as a JSON object when JSON output was asked for.
func (o *OutputOptions) HandleError(err error) error {
	if o.JSON && err != nil {
		out := o.Out
		if out == nil {
			out = color.Output
		}
		if perr := printers.JSON(out, map[string]string{"error": err.Error()}); perr != nil {
			return fmt.Errorf("%w (printing: %v)", err, perr)
		}
		return nil
	}
	return err
}
