package schedulers

import (
	"fmt"

	"os-scheduler/internal/core"
)

// validateLevels accepts a positive quantum per level; only the last level may
// use 0, meaning run to completion.
func validateLevels(levelsTimeQuantum []int) error {
	if len(levelsTimeQuantum) == 0 {
		return fmt.Errorf("%w: multilevel feedback queue needs at least one level", core.ErrInvalidInput)
	}
	for i, q := range levelsTimeQuantum {
		last := i == len(levelsTimeQuantum)-1
		if q < 0 || (q == 0 && !last) {
			return fmt.Errorf("%w: level %d has invalid time quantum %d", core.ErrInvalidInput, i, q)
		}
	}
	return nil
}

// MultilevelFeedbackQueue serves the highest non-empty level first. New
// arrivals enter level 0 and a process that uses up its level's quantum drops
// one level. Slices are never cut short by arrivals into a higher level.
func MultilevelFeedbackQueue(processes []core.Process, levelsTimeQuantum []int) (core.Result, error) {
	if err := core.Validate(processes); err != nil {
		return core.Result{}, err
	}
	if err := validateLevels(levelsTimeQuantum); err != nil {
		return core.Result{}, err
	}

	procs := make([]core.Process, len(processes))
	copy(procs, processes)

	remaining := make([]int, len(procs))
	for i := range procs {
		remaining[i] = procs[i].BurstTime
	}
	level := make([]int, len(procs))
	queues := make([][]int, len(levelsTimeQuantum))
	enqueue := func(idx int) {
		queues[level[idx]] = append(queues[level[idx]], idx)
	}

	cpu := core.NewCPU()
	adm := newAdmission(procs)
	for _, idx := range adm.arrived(cpu.Now()) {
		enqueue(idx)
	}

	for {
		lvl := highestLevel(queues)
		if lvl == -1 {
			idx, ok := adm.earliest(cpu)
			if !ok {
				break
			}
			enqueue(idx)
			continue
		}

		idx := queues[lvl][0]
		queues[lvl] = queues[lvl][1:]

		run := remaining[idx]
		if q := levelsTimeQuantum[lvl]; q > 0 && q < run {
			run = q
		}
		cpu.Execute(procs[idx].ID, run)
		remaining[idx] -= run
		if remaining[idx] == 0 {
			procs[idx].Complete(cpu.Now())
		}

		for _, arrived := range adm.arrived(cpu.Now()) {
			enqueue(arrived)
		}
		if remaining[idx] > 0 {
			if level[idx] < len(queues)-1 {
				level[idx]++
			}
			enqueue(idx)
		}
	}

	return core.Result{Processes: procs, Timeline: cpu.Timeline(), Metric: cpu.Metric()}, nil
}

func highestLevel(queues [][]int) int {
	for lvl, q := range queues {
		if len(q) > 0 {
			return lvl
		}
	}
	return -1
}
