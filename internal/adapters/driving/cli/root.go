// Package cli provides the cobra command tree for exoreport.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/exoreport/internal/core/domain"
	"github.com/custodia-labs/exoreport/internal/core/ports/driven"
	"github.com/custodia-labs/exoreport/internal/core/ports/driving"
	"github.com/custodia-labs/exoreport/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services holds the ports the commands drive.
type Services struct {
	Settings  driving.SettingsService
	Extract   driving.ExtractService
	Filter    driving.FilterService
	Merge     driving.MergeService
	Previewer driven.ReportPreviewer
}

// ServiceFactory builds the services once global flags are parsed.
// configPath is the value of --config and may be empty.
type ServiceFactory func(configPath string) (*Services, error)

var (
	settingsService driving.SettingsService
	extractService  driving.ExtractService
	filterService   driving.FilterService
	mergeService    driving.MergeService
	reportPreviewer driven.ReportPreviewer

	serviceFactory ServiceFactory
)

var (
	verboseFlag bool
	configPath  string
)

var rootCmd = &cobra.Command{
	Use:   "exoreport",
	Short: "Gene-centric reports from Exomiser results",
	Long: `exoreport turns Exomiser output into stable, gene-centric tables and
Markdown reports.

  extract  flatten an Exomiser JSON result into a TSV
  filter   rank one gene's variants by Exomiser variant score
  merge    join gene and variant rankings into a gene-centric report`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging to stderr")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML config file")
}

// SetServiceFactory registers the function that wires services.
func SetServiceFactory(f ServiceFactory) {
	serviceFactory = f
}

// SetServices installs services directly, bypassing the factory.
func SetServices(s *Services) {
	if s == nil {
		return
	}
	settingsService = s.Settings
	extractService = s.Extract
	filterService = s.Filter
	mergeService = s.Merge
	reportPreviewer = s.Previewer
}

func setup(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verboseFlag)
	if serviceFactory == nil {
		return nil
	}
	s, err := serviceFactory(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialise: %w", err)
	}
	SetServices(s)
	return nil
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, domain.ErrUsage) {
			fmt.Fprintln(os.Stderr, errorStyle.Render("Error:"), err)
		}
		os.Exit(1)
	}
}
