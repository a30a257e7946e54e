package schedulers

import "os-scheduler/internal/core"

// selectionKey ranks eligible processes; the smallest key is dispatched next.
type selectionKey func(p core.Process) int

// dispatchNonPreemptive runs the shared select-dispatch-complete loop. Among
// arrived, unfinished processes the one with the smallest key runs to
// completion; equal keys go to the earlier process in list order. When nothing
// has arrived the clock jumps to the next arrival.
func dispatchNonPreemptive(processes []core.Process, key selectionKey) core.Result {
	procs := make([]core.Process, len(processes))
	copy(procs, processes)

	cpu := core.NewCPU()
	completed := make([]bool, len(procs))

	for completedCount := 0; completedCount < len(procs); {
		idx := -1
		for i := range procs {
			if completed[i] || procs[i].ArrivalTime > cpu.Now() {
				continue
			}
			if idx == -1 || key(procs[i]) < key(procs[idx]) {
				idx = i
			}
		}

		if idx == -1 {
			cpu.IdleUntil(nextArrival(procs, completed))
			continue
		}

		cpu.Execute(procs[idx].ID, procs[idx].BurstTime)
		procs[idx].Complete(cpu.Now())
		completed[idx] = true
		completedCount++
	}

	return core.Result{Processes: procs, Timeline: cpu.Timeline(), Metric: cpu.Metric()}
}

// nextArrival is the earliest arrival among unfinished processes.
func nextArrival(procs []core.Process, completed []bool) int {
	next := -1
	for i, p := range procs {
		if completed[i] {
			continue
		}
		if next == -1 || p.ArrivalTime < next {
			next = p.ArrivalTime
		}
	}
	return next
}
