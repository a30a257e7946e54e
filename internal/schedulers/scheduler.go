package schedulers

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"os-scheduler/internal/core"
	"os-scheduler/internal/requests"
	"os-scheduler/internal/responses"
)

var ErrUnknownPolicy = errors.New("unknown scheduling policy")

type Policy string

const (
	PolicyFCFS       Policy = "fcfs"
	PolicySJF        Policy = "sjf"
	PolicyPriority   Policy = "priority"
	PolicyRoundRobin Policy = "rr"
	PolicyMLFQ       Policy = "mlfq"
)

// Policies lists every policy in menu order.
func Policies() []Policy {
	return []Policy{PolicyFCFS, PolicySJF, PolicyPriority, PolicyRoundRobin, PolicyMLFQ}
}

// ParsePolicy accepts short names and long aliases, case-insensitively.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fcfs", "first-come-first-serve":
		return PolicyFCFS, nil
	case "sjf", "shortest-job-first":
		return PolicySJF, nil
	case "priority":
		return PolicyPriority, nil
	case "rr", "round-robin":
		return PolicyRoundRobin, nil
	case "mlfq", "multilevel-feedback-queue":
		return PolicyMLFQ, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

func (p Policy) Name() string {
	switch p {
	case PolicyFCFS:
		return "First Come First Serve (FCFS)"
	case PolicySJF:
		return "Non-Preemptive Shortest Job First (SJF)"
	case PolicyPriority:
		return "Non-Preemptive Priority"
	case PolicyRoundRobin:
		return "Round Robin"
	case PolicyMLFQ:
		return "Multilevel Feedback Queue"
	default:
		return string(p)
	}
}

// Options holds the policy parameters that are not part of the workload.
type Options struct {
	TimeQuantum       int
	LevelsTimeQuantum []int
}

// Run simulates exactly one policy. The caller's slice is left untouched.
func Run(policy Policy, processes []core.Process, opts Options) (core.Result, error) {
	switch policy {
	case PolicyFCFS:
		return FirstComeFirstServe(processes)
	case PolicySJF:
		return ShortestJobFirst(processes)
	case PolicyPriority:
		return Priority(processes)
	case PolicyRoundRobin:
		return RoundRobin(processes, opts.TimeQuantum)
	case PolicyMLFQ:
		return MultilevelFeedbackQueue(processes, opts.LevelsTimeQuantum)
	default:
		return core.Result{}, fmt.Errorf("%w: %q", ErrUnknownPolicy, string(policy))
	}
}

// Runner turns schedule requests into responses using configured defaults.
type Runner struct {
	defaults Options
	logger   *slog.Logger
}

func NewRunner(defaults Options, logger *slog.Logger) *Runner {
	return &Runner{defaults: defaults, logger: logger.With("component", "schedulers")}
}

// options applies per-request overrides on top of the defaults.
func (r *Runner) options(request *requests.ScheduleRequests) Options {
	opts := r.defaults
	if request.TimeQuantum != 0 {
		opts.TimeQuantum = request.TimeQuantum
	}
	if len(request.LevelsTimeQuantum) > 0 {
		opts.LevelsTimeQuantum = request.LevelsTimeQuantum
	}
	return opts
}

func (r *Runner) Schedule(policy Policy, request *requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	opts := r.options(request)
	processes := request.Processes()
	r.logger.Debug("running algorithm",
		"algorithm", string(policy),
		"processes", len(processes),
		"time_quantum", opts.TimeQuantum,
		"levels_time_quantum", opts.LevelsTimeQuantum,
	)

	result, err := Run(policy, processes, opts)
	if err != nil {
		r.logger.Warn("schedule rejected", "algorithm", string(policy), "error", err)
		return responses.ScheduleResponse{}, err
	}

	response := generateResponse(policy, opts, result)
	r.logger.Info("schedule complete",
		"algorithm", string(policy),
		"run_id", response.RunID,
		"total_time", response.TotalTime,
		"slices", len(response.Timeline),
	)
	return response, nil
}

// ScheduleAll runs every policy on its own copy of the request's workload.
func (r *Runner) ScheduleAll(request *requests.ScheduleRequests) ([]responses.ScheduleResponse, error) {
	all := make([]responses.ScheduleResponse, 0, len(Policies()))
	for _, policy := range Policies() {
		response, err := r.Schedule(policy, request)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", policy, err)
		}
		all = append(all, response)
	}
	return all, nil
}
