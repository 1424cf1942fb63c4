// Package cmd implements the command-line interface for vizor.
package cmd

import (
	"encoding/json"
	"os"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vizor-cli/vizor/catalog"
	"github.com/vizor-cli/vizor/color"
	"github.com/vizor-cli/vizor/key"
	"github.com/vizor-cli/vizor/style"
)

func init() {
	rootCmd.AddCommand(catalogCmd)
}

// catalogCmd provides a parent command for inspecting the video catalog.
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the localized video catalog",
}

func init() {
	catalogCmd.AddCommand(catalogListCmd)

	catalogListCmd.Flags().BoolP("raw", "r", false, "Suppress header and metadata descriptions in the output")
	catalogListCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON string")
	catalogListCmd.Flags().StringP("filter", "f", "", "Fuzzy-filter entries by title")

	catalogListCmd.MarkFlagsMutuallyExclusive("raw", "json")
	catalogListCmd.SetOut(os.Stdout)
}

// catalogListCmd displays a summary of all catalog entries.
var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "Display a collection of all catalog entries",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			raw    = lo.Must(cmd.Flags().GetBool("raw"))
			asJson = lo.Must(cmd.Flags().GetBool("json"))
			filter = lo.Must(cmd.Flags().GetString("filter"))
		)

		videos := catalog.List()
		if filter != "" {
			videos = catalog.Filter(filter)
		}

		if limit := viper.GetInt(key.CatalogSearchLimit); limit > 0 && len(videos) > limit {
			videos = videos[:limit]
		}

		if asJson {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			lo.Must0(encoder.Encode(videos))
			return
		}

		titleStyle := style.New().Foreground(color.HiBlue).Bold(true).Render

		for _, video := range videos {
			if raw {
				cmd.Println(video.ID)
				continue
			}

			cmd.Printf("%s %s\n", titleStyle(video.Title), style.Faint(video.ID))
			if viper.GetBool(key.CatalogShowURLs) {
				cmd.Println(style.Faint(video.URL()))
			}
		}
	},
}

func init() {
	catalogCmd.AddCommand(catalogSchemaCmd)
	catalogSchemaCmd.SetOut(os.Stdout)
}

// catalogSchemaCmd emits the JSON schema describing catalog entries.
var catalogSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Display the JSON schema for catalog entries",
	Long:  `Display the JSON schema describing the catalog file format, suitable for editor validation of a custom catalog.`,
	Run: func(cmd *cobra.Command, args []string) {
		schema := jsonschema.Reflect(&catalog.Video{})

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		lo.Must0(encoder.Encode(schema))
	},
}
