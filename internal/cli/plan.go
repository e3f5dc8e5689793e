package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/danielpatrickdp/fleet-traffic/internal/planner"
	"github.com/danielpatrickdp/fleet-traffic/internal/roadmap"
	"github.com/danielpatrickdp/fleet-traffic/internal/schedule"
	"github.com/danielpatrickdp/fleet-traffic/internal/trajectory"
)

var (
	planRoadmapPath string
	planDBPath      string
	planStart       int
	planGoal        int
	planStartYaw    float64
	planGoalYaw     float64
	planAt          string
	planCommit      bool
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Plan a trajectory between two waypoints",
	Long: `Plan a conflict-free trajectory from a start waypoint to a goal waypoint.

Every trajectory already committed to the schedule database is treated as an
obstacle. With --commit the solution is written back to the schedule so later
plans route around it.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rm, err := roadmap.LoadRoadmapFile(planRoadmapPath)
		if err != nil {
			return err
		}

		startAt := time.Now()
		if planAt != "" {
			startAt, err = time.Parse(time.RFC3339, planAt)
			if err != nil {
				return fmt.Errorf("parse --at: %w", err)
			}
		}

		store, err := schedule.NewStore(planDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		opts := planner.NewOptions(rm.Traits, rm.Profile, rm.Graph, store)

		var goalYaw *float64
		if cmd.Flags().Changed("goal-yaw") {
			goalYaw = &planGoalYaw
		}

		solution, ok := planner.Solve(startAt, planStart, planStartYaw, planGoal, goalYaw, opts)
		if !ok {
			PrintError(fmt.Sprintf("no conflict-free route from waypoint %d to waypoint %d", planStart, planGoal))
			return fmt.Errorf("planning failed")
		}

		PrintSuccess(fmt.Sprintf("planned %d segments over %s on map %q",
			solution.Size(), solution.Duration().Round(time.Millisecond), rm.MapName))
		printSegments(solution)

		if planCommit {
			id, err := store.Insert(solution)
			if err != nil {
				return err
			}
			PrintSuccess(fmt.Sprintf("committed to schedule as %s", id))
		}
		return nil
	},
}

func printSegments(t *trajectory.Trajectory) {
	if t.Size() == 0 {
		PrintEmptyState("already at the goal, nothing to do")
		return
	}
	var rows [][]string
	start, _ := t.StartTime()
	for it := t.Begin(); !it.Equal(t.End()); it = it.Next() {
		seg := it.Segment()
		pos := seg.FinishPosition()
		rows = append(rows, []string{
			seg.FinishTime().Sub(start).Round(time.Millisecond).String(),
			fmt.Sprintf("%.2f", pos[0]),
			fmt.Sprintf("%.2f", pos[1]),
			fmt.Sprintf("%.2f", pos[2]),
		})
	}
	PrintTable([]string{"t", "x", "y", "yaw"}, rows)
}

func init() {
	planCmd.Flags().StringVar(&planRoadmapPath, "roadmap", "", "Path to the roadmap YAML file")
	planCmd.Flags().StringVar(&planDBPath, "db", defaultDBPath(), "Path to the schedule database")
	planCmd.Flags().IntVar(&planStart, "start", 0, "Start waypoint index")
	planCmd.Flags().IntVar(&planGoal, "goal", 0, "Goal waypoint index")
	planCmd.Flags().Float64Var(&planStartYaw, "start-yaw", 0, "Initial orientation in radians")
	planCmd.Flags().Float64Var(&planGoalYaw, "goal-yaw", 0, "Required final orientation in radians")
	planCmd.Flags().StringVar(&planAt, "at", "", "Departure time in RFC 3339 format (default: now)")
	planCmd.Flags().BoolVar(&planCommit, "commit", false, "Commit the solution to the schedule")
	_ = planCmd.MarkFlagRequired("roadmap")
	_ = planCmd.MarkFlagRequired("goal")
}
