package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/exoreport/internal/core/ports/driving"
)

var (
	mergeGene     string
	mergeVariants string
	mergeGenes    string
	mergeOutDir   string
	mergeWorkbook bool
	mergePreview  bool
)

var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Build a gene-centric report from Exomiser TSVs",
	Long: `Join an Exomiser genes TSV and variants TSV into a report for one gene.

The gene's summary scores are taken from the first matching gene row. Its
variants are ranked by the best available pathogenicity score, then by
Exomiser rank. The ranked table is written as <gene>_variants.tsv and the
report as <gene>_report.md.`,
	Args: cobra.NoArgs,
	RunE: runMerge,
}

func init() {
	mergeCmd.Flags().StringVar(&mergeGene, "gene", "", "gene symbol (default from config, else SCN1A)")
	mergeCmd.Flags().StringVar(&mergeVariants, "variants", "", "Exomiser variants TSV")
	mergeCmd.Flags().StringVar(&mergeGenes, "genes", "", "Exomiser genes TSV")
	mergeCmd.Flags().StringVar(&mergeOutDir, "outdir", "", "output directory (default from config, else docs)")
	mergeCmd.Flags().BoolVar(&mergeWorkbook, "xlsx", false, "also write the ranked variants as an Excel workbook")
	mergeCmd.Flags().BoolVar(&mergePreview, "preview", false, "render the report in the terminal")
	_ = mergeCmd.MarkFlagRequired("variants")
	_ = mergeCmd.MarkFlagRequired("genes")
	rootCmd.AddCommand(mergeCmd)
}

func runMerge(cmd *cobra.Command, _ []string) error {
	if mergeService == nil {
		return errors.New("merge service not configured")
	}

	outcome, err := mergeService.Merge(context.Background(), driving.MergeRequest{
		Gene:         mergeGene,
		VariantsPath: mergeVariants,
		GenesPath:    mergeGenes,
		OutDir:       mergeOutDir,
		Workbook:     mergeWorkbook,
	})
	if err != nil {
		return fmt.Errorf("merge failed: %w", err)
	}
	printOutcome(cmd, outcome)

	if mergePreview && len(outcome.Paths) > 0 {
		return previewReport(cmd, outcome.Paths[0])
	}
	return nil
}

// previewReport renders the Markdown report at path to the command output.
func previewReport(cmd *cobra.Command, path string) error {
	if reportPreviewer == nil {
		return errors.New("report previewer not configured")
	}
	md, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read report: %w", err)
	}
	rendered, err := reportPreviewer.Render(string(md))
	if err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), rendered)
	return nil
}
