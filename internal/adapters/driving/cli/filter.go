package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/exoreport/internal/core/ports/driving"
)

var filterGene string

var filterCmd = &cobra.Command{
	Use:   "filter <variants.tsv> <outdir>",
	Short: "Rank one gene's variants by Exomiser variant score",
	Long: `Select the variants of one gene from an Exomiser variants TSV, order them by
EXOMISER_VARIANT_SCORE and write a CSV, a bar chart of the top variants and a
Markdown summary to the output directory.

Nothing is written when the gene has no variants.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runFilter,
}

func init() {
	filterCmd.Flags().StringVarP(&filterGene, "gene", "g", "", "gene symbol (default from config, else SCN1A)")
	rootCmd.AddCommand(filterCmd)
}

func runFilter(cmd *cobra.Command, args []string) error {
	if filterService == nil {
		return errors.New("filter service not configured")
	}

	outcome, err := filterService.Filter(context.Background(), driving.FilterRequest{
		InputPath: args[0],
		OutDir:    args[1],
		Gene:      filterGene,
	})
	if err != nil {
		return fmt.Errorf("filter failed: %w", err)
	}
	printOutcome(cmd, outcome)
	return nil
}
