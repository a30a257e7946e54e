package schedulers

import "os-scheduler/internal/core"

// ShortestJobFirst is the non-preemptive variant: a dispatched process runs to
// completion even if a shorter one arrives meanwhile.
func ShortestJobFirst(processes []core.Process) (core.Result, error) {
	if err := core.Validate(processes); err != nil {
		return core.Result{}, err
	}
	return dispatchNonPreemptive(processes, func(p core.Process) int {
		return p.BurstTime
	}), nil
}
