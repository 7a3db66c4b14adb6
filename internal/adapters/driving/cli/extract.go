package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/exoreport/internal/core/domain"
	"github.com/custodia-labs/exoreport/internal/logger"
)

const extractUsage = "Usage: exoreport extract <exomiser.json> <out.tsv>"

var extractCmd = &cobra.Command{
	Use:   "extract <exomiser.json> <out.tsv>",
	Short: "Flatten Exomiser JSON results into a TSV",
	Long: `Read an Exomiser JSON result and write one row per ranked gene followed by
one row per ranked variant. Field names from different Exomiser releases are
reconciled into a single fixed header.`,
	Args: cobra.ArbitraryArgs,
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	if len(args) < 2 {
		cmd.PrintErrln(extractUsage)
		return domain.ErrUsage
	}
	if extractService == nil {
		return errors.New("extract service not configured")
	}

	outcome, err := extractService.Extract(context.Background(), args[0], args[1])
	if err != nil {
		return fmt.Errorf("extract failed: %w", err)
	}
	for _, p := range outcome.Paths {
		logger.Info("Wrote: %s", p)
	}
	return nil
}
