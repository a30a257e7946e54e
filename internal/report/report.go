package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"os-scheduler/internal/responses"
)

// Summary prints the run title and aggregate CPU figures.
func Summary(w io.Writer, resp responses.ScheduleResponse) {
	title := resp.Algorithm
	switch {
	case resp.TimeQuantum > 0:
		title = fmt.Sprintf("%s (Quantum = %d)", title, resp.TimeQuantum)
	case len(resp.LevelsTimeQuantum) > 0:
		title = fmt.Sprintf("%s (Levels = %v)", title, resp.LevelsTimeQuantum)
	}
	_, _ = fmt.Fprintf(w, "--- %s ---\n", title)
	_, _ = fmt.Fprintf(w, "Total time: %d  Idle: %d  Utilization: %.2f  Throughput: %.2f/t\n",
		resp.TotalTime, resp.IdleTime, resp.CpuUtilization, resp.CpuThroughput)
}

// Timeline prints the Gantt chart as [P{id} @ {start}] tokens.
func Timeline(w io.Writer, slices []responses.SliceResponse) {
	var b strings.Builder
	for _, s := range slices {
		fmt.Fprintf(&b, "[P%d @ %d] ", s.ProcessId, s.Start)
	}
	_, _ = fmt.Fprintln(w, "Gantt Chart:")
	_, _ = fmt.Fprintln(w, strings.TrimRight(b.String(), " "))
}

// Table renders per-process metrics sorted by ascending PID.
func Table(w io.Writer, resp responses.ScheduleResponse) {
	details := make([]responses.ProcessResponse, len(resp.Details))
	copy(details, resp.Details)
	sort.SliceStable(details, func(i, j int) bool {
		return details[i].ProcessId < details[j].ProcessId
	})

	rows := make([][]string, 0, len(details))
	for _, d := range details {
		rows = append(rows, []string{
			strconv.Itoa(d.ProcessId),
			strconv.Itoa(d.ArrivalTime),
			strconv.Itoa(d.BurstTime),
			strconv.Itoa(d.CompletionTime),
			strconv.Itoa(d.WaitingTime),
			strconv.Itoa(d.TurnAroundTime),
		})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"PID", "Arrival", "Burst", "Completion", "Waiting", "Turnaround"})
	table.SetAutoFormatHeaders(false)
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "Average",
		fmt.Sprintf("%.2f", resp.AverageWaitingTime),
		fmt.Sprintf("%.2f", resp.AverageTurnAroundTime)})
	table.Render()
}

// Render writes the summary, Gantt chart and metrics table of one run.
func Render(w io.Writer, resp responses.ScheduleResponse) {
	Summary(w, resp)
	Timeline(w, resp.Timeline)
	Table(w, resp)
	_, _ = fmt.Fprintln(w)
}
