package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"os-scheduler/internal/core"
	"os-scheduler/internal/report"
	"os-scheduler/internal/responses"
	"os-scheduler/internal/schedulers"
	"os-scheduler/internal/workload"
)

func newSimulateCmd() *cobra.Command {
	var (
		policyName string
		quantum    int
		levels     []int
		output     string
	)

	cmd := &cobra.Command{
		Use:   "simulate <workload-file>",
		Short: "Run one or all policies over a workload file",
		Long: `Reads a workload (.yaml, .yml, .json or .csv) and prints the Gantt chart
and per-process metrics of the selected policy. Use --policy all to compare
every policy on the same workload.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			request, err := workload.Load(args[0])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("quantum") {
				// zero would fall back to the configured quantum
				if err := core.ValidateQuantum(quantum); err != nil {
					return err
				}
				request.TimeQuantum = quantum
			}
			if cmd.Flags().Changed("levels") {
				request.LevelsTimeQuantum = levels
			}

			runner := newRunner()
			var results []responses.ScheduleResponse
			if policyName == "all" {
				results, err = runner.ScheduleAll(request)
				if err != nil {
					return err
				}
			} else {
				policy, err := schedulers.ParsePolicy(policyName)
				if err != nil {
					return err
				}
				resp, err := runner.Schedule(policy, request)
				if err != nil {
					return err
				}
				results = append(results, resp)
			}

			out := cmd.OutOrStdout()
			switch output {
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(results)
			case "table":
				for _, resp := range results {
					report.Render(out, resp)
				}
				return nil
			default:
				return fmt.Errorf("unknown output format %q (table, json)", output)
			}
		},
	}

	cmd.Flags().StringVarP(&policyName, "policy", "p", "all", "Policy to run: all or one of "+policyList())
	cmd.Flags().IntVarP(&quantum, "quantum", "q", 0, "Round robin time quantum (overrides workload and config)")
	cmd.Flags().IntSliceVar(&levels, "levels", nil, "MLFQ level time quanta, e.g. 5,8,0")
	cmd.Flags().StringVarP(&output, "output", "o", "table", "Output format (table, json)")

	return cmd
}
