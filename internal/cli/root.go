// Package cli implements the healthplan command line tool.
package cli

import (
	"io"

	"github.com/spf13/cobra"
)

// Version information set by build flags.
var (
	Version = "dev"
	Commit  = "none"
)

// NewRootCmd builds the command tree writing to out.
func NewRootCmd(out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "healthplan",
		Short:         "Generate practical health plans from age, lifestyle, symptoms and goals",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.SetErr(out)
	root.AddCommand(newPlanCmd(), newVersionCmd())
	return root
}

// Execute runs the CLI with the given arguments.
func Execute(args []string, out io.Writer) error {
	root := NewRootCmd(out)
	root.SetArgs(args)
	return root.Execute()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("healthplan %s\n", Version)
			cmd.Printf("  commit: %s\n", Commit)
		},
	}
}
