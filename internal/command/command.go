package command

import (
	commandHandler "talentpulse/internal/command/handler"

	"github.com/google/wire"
	"github.com/spf13/cobra"
)

var ProviderSet = wire.NewSet(NewCommand, commandHandler.NewDashboardHandler)

type Command struct {
	dashboardCommandHandler *commandHandler.DashboardHandler
}

// NewCommand .
func NewCommand(
	dashboardCommandHandler *commandHandler.DashboardHandler,
) *Command {
	return &Command{
		dashboardCommandHandler: dashboardCommandHandler,
	}
}

// Register 子命令在執行時才建立依賴，避免 serve 以外的命令連線外部服務前就失敗
func Register(rootCmd *cobra.Command, newCmd func() (*Command, func(), error)) {
	run := func(action func(*commandHandler.DashboardHandler, *cobra.Command, []string) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			command, cleanup, err := newCmd()
			if err != nil {
				return err
			}
			defer cleanup()
			return action(command.dashboardCommandHandler, cmd, args)
		}
	}

	aggregateCmd := &cobra.Command{
		Use:   "aggregate",
		Short: "load the dataset, compute the dashboard and print it as JSON",
		RunE:  run((*commandHandler.DashboardHandler).Aggregate),
	}
	aggregateCmd.Flags().Bool("pretty", false, "indent the JSON output")

	inspectCmd := &cobra.Command{
		Use:   "inspect",
		Short: "load the dataset and print the load report",
		RunE:  run((*commandHandler.DashboardHandler).Inspect),
	}
	inspectCmd.Flags().Bool("pretty", false, "indent the JSON output")
	inspectCmd.Flags().Int("limit", commandHandler.MaxListedFieldErrors, "maximum number of field errors to list, negative lists all")

	seedCmd := &cobra.Command{
		Use:   "seed-predictions",
		Short: "write simulated attrition predictions to MongoDB",
		RunE:  run((*commandHandler.DashboardHandler).SeedPredictions),
	}
	seedCmd.Flags().Int64("seed", 42, "random seed")
	seedCmd.Flags().String("model", "simulated", "model name stored with each prediction")

	rootCmd.AddCommand(aggregateCmd, inspectCmd, seedCmd)
}
