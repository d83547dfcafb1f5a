// Package fetch handles the command that downloads transactions and builds
// the CSV dataset.
package fetch

import (
	"iltracker/cmd/root"
	"iltracker/internal/container"
	"iltracker/internal/dataset"
	"iltracker/internal/logging"

	"github.com/spf13/cobra"
)

// Cmd represents the fetch command
var Cmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download MLB transactions and build the injury dataset",
	Long: `Download MLB transactions for a range of years, classify each one for
injury-relatedness and write three CSV tables: all transactions, the
injury-related subset and the dense daily time series.`,
	Run: fetchFunc,
}

func init() {
	Cmd.Flags().IntVar(&root.StartYear, "start-year", 2015, "First season year to fetch")
	Cmd.Flags().IntVar(&root.EndYear, "end-year", 2025, "Last season year to fetch")
	Cmd.Flags().Float64Var(&root.Sleep, "sleep", 0.25, "Pause in seconds between year requests")
}

func fetchFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Fetch command called")

	params := dataset.Params{
		StartYear: root.StartYear,
		EndYear:   root.EndYear,
		OutDir:    outDir(cmd),
		Sleep:     root.Sleep,
	}
	if err := params.Validate(); err != nil {
		root.Log.Fatalf("Invalid year range: %v", err)
	}

	log := logging.NewLogrusAdapterFromLogger(root.Log)
	deps, err := container.NewContainer(root.Cfg, log, root.SharedFlags.Keywords)
	if err != nil {
		root.Log.Fatalf("Error assembling pipeline: %v", err)
	}

	summary, err := deps.GetBuilder().Build(cmd.Context(), params)
	if err != nil {
		root.Log.Fatalf("Error building dataset: %v", err)
	}

	root.Log.Info("Files generated:")
	root.Log.Infof("  - %s", summary.FlatPath)
	root.Log.Infof("  - %s", summary.InjuryPath)
	root.Log.Infof("  - %s", summary.DailyPath)
	root.Log.Infof("  Total transactions: %d", summary.TotalTransactions)
	root.Log.Infof("  Injury events (IL/rehab): %d", summary.InjuryTransactions)
	root.Log.Infof("  New injury registrations: %d", summary.NewInjuryRegistrations)
}

// outDir resolves the output directory: an explicit flag wins, otherwise the
// configured directory, otherwise the flag default.
func outDir(cmd *cobra.Command) string {
	if cmd.Flags().Changed("outdir") || root.Cfg == nil || root.Cfg.Output.Directory == "" {
		return root.SharedFlags.OutDir
	}
	return root.Cfg.Output.Directory
}
