package requests

import "os-scheduler/internal/core"

type Job struct {
	ArrivalTime int `json:"arrival_time" yaml:"arrival_time"`
	BurstTime   int `json:"burst_time" yaml:"burst_time"`
	Priority    int `json:"priority" yaml:"priority"`
}

// ScheduleRequests is a workload plus optional per-request policy parameters.
// Zero values fall back to the configured defaults.
type ScheduleRequests struct {
	Jobs              []Job `json:"jobs" yaml:"jobs"`
	TimeQuantum       int   `json:"time_quantum,omitempty" yaml:"time_quantum,omitempty"`
	LevelsTimeQuantum []int `json:"levels_time_quantum,omitempty" yaml:"levels_time_quantum,omitempty"`
}

// Processes converts the jobs into process records with ids 1..N in job order.
func (r *ScheduleRequests) Processes() []core.Process {
	attrs := make([]core.Attributes, len(r.Jobs))
	for i, job := range r.Jobs {
		attrs[i] = core.Attributes{
			ArrivalTime: job.ArrivalTime,
			BurstTime:   job.BurstTime,
			Priority:    job.Priority,
		}
	}
	return core.NewProcesses(attrs)
}
