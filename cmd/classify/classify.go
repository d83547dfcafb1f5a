// Package classify handles ad-hoc classification of a single transaction
// description, useful for checking how a description would be bucketed
// without fetching anything.
package classify

import (
	"iltracker/cmd/root"
	"iltracker/internal/container"
	"iltracker/internal/logging"

	"github.com/spf13/cobra"
)

// Cmd represents the classify command
var Cmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify a single transaction description",
	Long:  `Classify a transaction description for injury-relatedness and print the resulting event type, flags and injured-list bucket.`,
	Run:   classifyFunc,
}

func init() {
	Cmd.Flags().StringVarP(&root.Description, "description", "d", "", "Transaction description to classify")
	if err := Cmd.MarkFlagRequired("description"); err != nil {
		panic(err)
	}
}

func classifyFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Classify command called")

	if root.Description == "" {
		root.Log.Error("A description is required for classification")
		return
	}

	log := logging.NewLogrusAdapterFromLogger(root.Log)
	deps, err := container.NewContainer(root.Cfg, log, root.SharedFlags.Keywords)
	if err != nil {
		root.Log.Fatalf("Error assembling classifier: %v", err)
	}
	result := deps.GetClassifier().Classify(root.Description)

	root.Log.Infof("Event type: %s", result.EventType)
	root.Log.Infof("Injury related: %t", result.IsInjuryRelated)
	root.Log.Infof("IL placement: %t", result.IsILPlacement)
	root.Log.Infof("IL activation: %t", result.IsILActivation)
	root.Log.Infof("IL transfer: %t", result.IsILTransfer)
	root.Log.Infof("Rehab assignment: %t", result.IsRehabAssignment)
	root.Log.Infof("Covid IL: %t", result.IsCovidIL)
	if result.ILDaysBucket != "" {
		root.Log.Infof("IL days bucket: %s", result.ILDaysBucket)
	}
	root.Log.Infof("Counts as new injury registration: %t", result.CountAsNewInjuryRegistration)
}
