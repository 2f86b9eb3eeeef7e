package cmd

import (
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Answer the quiz and get a recommendation",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}
