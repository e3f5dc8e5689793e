package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd is the root command for fleetplan.
var rootCmd = &cobra.Command{
	Use:     "fleetplan",
	Version: "dev",
	Short:   "Time-aware fleet trajectory planner",
	Long: `fleetplan plans conflict-free vehicle trajectories over a shared roadmap.

It loads a YAML roadmap, searches for a route that avoids every trajectory
already committed to the schedule, and can commit the result so later runs
treat it as an obstacle.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func init() {
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(inspectCmd)
}

// defaultDBPath resolves the schedule database path, honoring FLEETPLAN_DB.
func defaultDBPath() string {
	return envOr("FLEETPLAN_DB", "schedule.db")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}
