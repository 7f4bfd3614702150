// Package board implements the commands that read and edit kanban blocks.
package board

import (
	"github.com/spf13/cobra"
)

// Commands returns every board command, ready to be added to the root command
func Commands() []*cobra.Command {
	return []*cobra.Command{
		BlocksCmd(),
		ShowCmd(),
		MoveCardCmd(),
		MoveColumnCmd(),
		FmtCmd(),
		CheckCmd(),
		WatchCmd(),
	}
}

// addOutputFlags registers the agent-friendly output flags
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")
}
