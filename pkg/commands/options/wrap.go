package options

import base "github.com/n3wscott/cli-base/pkg/commands/options"

// Wrap80 wraps flag help text at 80 columns.
func Wrap80(text string) string {
	return base.Wrap80(text)
}
