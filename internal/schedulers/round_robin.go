package schedulers

import "os-scheduler/internal/core"

// RoundRobin time-slices the CPU with a FIFO ready queue. Processes arriving
// during a slice join the queue before the preempted process re-joins it.
// When nothing has arrived at time 0 the earliest arrival starts the run; a
// queue that empties later is refilled with the next unadmitted process in
// list order.
func RoundRobin(processes []core.Process, timeQuantum int) (core.Result, error) {
	if err := core.Validate(processes); err != nil {
		return core.Result{}, err
	}
	if err := core.ValidateQuantum(timeQuantum); err != nil {
		return core.Result{}, err
	}

	procs := make([]core.Process, len(processes))
	copy(procs, processes)

	remaining := make([]int, len(procs))
	for i := range procs {
		remaining[i] = procs[i].BurstTime
	}

	cpu := core.NewCPU()
	adm := newAdmission(procs)
	readyQueue := adm.arrived(cpu.Now())
	if len(readyQueue) == 0 {
		if idx, ok := adm.earliest(cpu); ok {
			readyQueue = append(readyQueue, idx)
		}
	}

	for len(readyQueue) > 0 {
		idx := readyQueue[0]
		readyQueue = readyQueue[1:]

		run := min(remaining[idx], timeQuantum)
		cpu.Execute(procs[idx].ID, run)
		remaining[idx] -= run
		if remaining[idx] == 0 {
			procs[idx].Complete(cpu.Now())
		}

		readyQueue = append(readyQueue, adm.arrived(cpu.Now())...)
		if remaining[idx] > 0 {
			readyQueue = append(readyQueue, idx)
		}

		if len(readyQueue) == 0 {
			if next, ok := adm.next(cpu); ok {
				readyQueue = append(readyQueue, next)
			}
		}
	}

	return core.Result{Processes: procs, Timeline: cpu.Timeline(), Metric: cpu.Metric()}, nil
}
