package schedulers

import "os-scheduler/internal/core"

// admission remembers which processes have ever entered a ready queue.
type admission struct {
	procs    []core.Process
	admitted map[int]struct{}
}

func newAdmission(procs []core.Process) *admission {
	return &admission{procs: procs, admitted: make(map[int]struct{}, len(procs))}
}

// arrived admits, in list order, every process that has arrived by now.
func (a *admission) arrived(now int) []int {
	var due []int
	for i, p := range a.procs {
		if _, ok := a.admitted[i]; ok || p.ArrivalTime > now {
			continue
		}
		a.admitted[i] = struct{}{}
		due = append(due, i)
	}
	return due
}

// earliest admits the unadmitted process with the smallest arrival time,
// moving the clock up to that arrival if it has not been reached yet.
func (a *admission) earliest(cpu *core.CPU) (int, bool) {
	idx := -1
	for i, p := range a.procs {
		if _, ok := a.admitted[i]; ok {
			continue
		}
		if idx == -1 || p.ArrivalTime < a.procs[idx].ArrivalTime {
			idx = i
		}
	}
	if idx == -1 {
		return 0, false
	}
	a.admitted[idx] = struct{}{}
	cpu.IdleUntil(a.procs[idx].ArrivalTime)
	return idx, true
}

// next admits the first unadmitted process in list order, moving the clock up
// to its arrival if it has not been reached yet.
func (a *admission) next(cpu *core.CPU) (int, bool) {
	for i, p := range a.procs {
		if _, ok := a.admitted[i]; ok {
			continue
		}
		a.admitted[i] = struct{}{}
		cpu.IdleUntil(p.ArrivalTime)
		return i, true
	}
	return 0, false
}
