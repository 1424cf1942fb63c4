// Package cmd implements the command-line interface for vizor.
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vizor-cli/vizor/catalog"
	"github.com/vizor-cli/vizor/color"
	"github.com/vizor-cli/vizor/style"
	"github.com/vizor-cli/vizor/tui"
)

func init() {
	rootCmd.AddCommand(playCmd)
}

// playCmd resolves a catalog entry by id or title and opens a session for it.
var playCmd = &cobra.Command{
	Use:     "play [query]",
	Short:   "Resolve a catalog entry by id or title and start playback",
	Args:    cobra.MinimumNArgs(1),
	Example: "  vizor play lofi",
	Run: func(cmd *cobra.Command, args []string) {
		query := strings.Join(args, " ")

		video, err := catalog.Get(query)
		if err != nil {
			closest := catalog.Closest(query)
			if closest.IsAbsent() {
				handleErr(fmt.Errorf("no catalog entry matches %s", style.Fg(color.Red)(query)))
			}

			video = closest.MustGet()
		}

		CheckDependencies()
		handleErr(tui.Run(&tui.Options{VideoID: video.ID}))
	},
}
