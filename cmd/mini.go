// Package cmd implements the command-line interface for vizor.
package cmd

import (
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/vizor-cli/vizor/mini"
)

func init() {
	rootCmd.AddCommand(miniCmd)

	miniCmd.Flags().StringP("watch", "w", "", "Skip the catalog and immediately open a session for the given video id")
}

// miniCmd launches the application in a lightweight, minimalist terminal interface.
var miniCmd = &cobra.Command{
	Use:   "mini",
	Short: "Launch the application in a lightweight, minimalist terminal interface",
	Long:  `Initialize a streamlined, minimalist terminal UI for video selection and playback.`,
	Run: func(cmd *cobra.Command, args []string) {
		CheckDependencies()

		options := mini.Options{
			VideoID: lo.Must(cmd.Flags().GetString("watch")),
		}
		err := mini.Run(&options)

		if err != nil && err.Error() != "interrupt" {
			handleErr(err)
		}
	},
}
