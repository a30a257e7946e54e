package schedulers

import "os-scheduler/internal/core"

// FirstComeFirstServe dispatches in arrival order; simultaneous arrivals keep
// their list order.
func FirstComeFirstServe(processes []core.Process) (core.Result, error) {
	if err := core.Validate(processes); err != nil {
		return core.Result{}, err
	}
	return dispatchNonPreemptive(processes, func(p core.Process) int {
		return p.ArrivalTime
	}), nil
}
