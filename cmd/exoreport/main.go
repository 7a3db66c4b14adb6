// Command exoreport builds gene-centric reports from Exomiser results.
package main

import (
	"github.com/custodia-labs/exoreport/internal/adapters/driven/chart"
	"github.com/custodia-labs/exoreport/internal/adapters/driven/config/file"
	"github.com/custodia-labs/exoreport/internal/adapters/driven/jsondoc"
	"github.com/custodia-labs/exoreport/internal/adapters/driven/report"
	"github.com/custodia-labs/exoreport/internal/adapters/driven/table/delimited"
	"github.com/custodia-labs/exoreport/internal/adapters/driven/workbook"
	"github.com/custodia-labs/exoreport/internal/adapters/driving/cli"
	"github.com/custodia-labs/exoreport/internal/core/services"
)

func main() {
	cli.SetServiceFactory(buildServices)
	cli.Execute()
}

// buildServices wires adapters into services once --config is known.
func buildServices(configPath string) (*cli.Services, error) {
	configStore, err := file.NewConfigStore(configPath)
	if err != nil {
		return nil, err
	}
	settings := services.NewSettingsService(configStore)

	tsvReader := delimited.NewTSVReader()
	reports := report.NewFileWriter()

	return &cli.Services{
		Settings: settings,
		Extract:  services.NewExtractService(jsondoc.New(), delimited.NewTSVWriter()),
		Filter: services.NewFilterService(
			tsvReader,
			delimited.NewCSVWriter(),
			reports,
			chart.NewRenderer(),
			settings,
		),
		Merge: services.NewMergeService(
			tsvReader,
			delimited.NewTSVWriter(),
			reports,
			workbook.NewWriter(),
			settings,
		),
		Previewer: report.NewPreviewer(""),
	}, nil
}
