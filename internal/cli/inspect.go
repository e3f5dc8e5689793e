package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/danielpatrickdp/fleet-traffic/internal/schedule"
)

var (
	inspectDBPath string
	inspectLimit  int
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "List committed schedule entries",
	Long:  `Display the most recent entries in the schedule database, newest first.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := schedule.NewStore(inspectDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		infos, err := store.Entries(inspectLimit)
		if err != nil {
			return err
		}
		if len(infos) == 0 {
			PrintEmptyState("schedule is empty")
			return nil
		}

		var rows [][]string
		for _, info := range infos {
			rows = append(rows, []string{
				info.ID,
				info.MapName,
				info.CreatedAt.Local().Format(time.RFC3339),
				fmt.Sprintf("%d", info.Segments),
			})
		}
		PrintTable([]string{"id", "map", "committed", "segments"}, rows)
		return nil
	},
}

func init() {
	inspectCmd.Flags().StringVar(&inspectDBPath, "db", defaultDBPath(), "Path to the schedule database")
	inspectCmd.Flags().IntVar(&inspectLimit, "limit", 20, "Maximum number of entries to show")
}
