package cmd

import (
	"fmt"

	"github.com/kerbaras/quotes/pkg/services"
	"github.com/spf13/cobra"
)

var (
	exportFormats []string
	exportDir     string
	exportTitle   string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export your favourites to Markdown, EPUB or JSON",
	Long:  "Write the favourites list to one file per format in the output directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		formats, err := services.ParseFormats(exportFormats)
		if err != nil {
			return err
		}

		env, err := setup(true)
		if err != nil {
			return err
		}
		defer env.Close()

		list, err := env.loadFavourites()
		if err != nil {
			return err
		}

		fmt.Printf("📦 Exporting %d favourites...\n", len(list))

		exporter := services.NewExporter(exportTitle, env.logger.Logger)
		paths, err := exporter.ExportAll(cmd.Context(), list, exportDir, formats)
		if err != nil {
			return err
		}

		for _, p := range paths {
			fmt.Printf("✓ %s\n", p)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringSliceVarP(&exportFormats, "format", "f", []string{"markdown"}, "formats: markdown, epub, json")
	exportCmd.Flags().StringVarP(&exportDir, "out", "o", ".", "output directory")
	exportCmd.Flags().StringVar(&exportTitle, "title", "Favourite Quotes", "title used for the files and the book")
}
