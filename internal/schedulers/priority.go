package schedulers

import "os-scheduler/internal/core"

// Priority is non-preemptive; a lower priority value runs first.
func Priority(processes []core.Process) (core.Result, error) {
	if err := core.Validate(processes); err != nil {
		return core.Result{}, err
	}
	return dispatchNonPreemptive(processes, func(p core.Process) int {
		return p.Priority
	}), nil
}
