package schedulers

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"os-scheduler/internal/core"
)

type metrics struct {
	completion, waiting, turnaround int
}

func procs(attrs ...core.Attributes) []core.Process {
	return core.NewProcesses(attrs)
}

func checkMetrics(t *testing.T, got []core.Process, want []metrics) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d processes, got %d", len(want), len(got))
	}
	for i, w := range want {
		p := got[i]
		if p.CompletionTime != w.completion || p.WaitingTime != w.waiting || p.TurnaroundTime != w.turnaround {
			t.Errorf("P%d: expected completion=%d waiting=%d turnaround=%d, got %d/%d/%d",
				p.ID, w.completion, w.waiting, w.turnaround, p.CompletionTime, p.WaitingTime, p.TurnaroundTime)
		}
	}
}

func dispatchOrder(timeline []core.Slice) []int {
	order := make([]int, 0, len(timeline))
	for _, s := range timeline {
		order = append(order, s.ProcessID)
	}
	return order
}

func TestFirstComeFirstServe_Scenario(t *testing.T) {
	result, err := FirstComeFirstServe(procs(
		core.Attributes{ArrivalTime: 0, BurstTime: 5},
		core.Attributes{ArrivalTime: 1, BurstTime: 3},
		core.Attributes{ArrivalTime: 2, BurstTime: 8},
	))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	checkMetrics(t, result.Processes, []metrics{{5, 0, 5}, {8, 4, 7}, {16, 6, 14}})
}

func TestFirstComeFirstServe_UnsortedArrivalsAndIdle(t *testing.T) {
	result, err := FirstComeFirstServe(procs(
		core.Attributes{ArrivalTime: 4, BurstTime: 2},
		core.Attributes{ArrivalTime: 0, BurstTime: 3},
		core.Attributes{ArrivalTime: 4, BurstTime: 1},
	))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := dispatchOrder(result.Timeline); !reflect.DeepEqual(got, []int{2, 1, 3}) {
		t.Errorf("expected dispatch order [2 1 3], got %v", got)
	}
	checkMetrics(t, result.Processes, []metrics{{6, 0, 2}, {3, 0, 3}, {7, 2, 3}})
	if result.Metric.IdleTime != 1 {
		t.Errorf("expected 1 idle unit, got %d", result.Metric.IdleTime)
	}
}

func TestShortestJobFirst_Scenario(t *testing.T) {
	result, err := ShortestJobFirst(procs(
		core.Attributes{ArrivalTime: 0, BurstTime: 7},
		core.Attributes{ArrivalTime: 2, BurstTime: 4},
		core.Attributes{ArrivalTime: 4, BurstTime: 1},
		core.Attributes{ArrivalTime: 5, BurstTime: 4},
	))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := dispatchOrder(result.Timeline); !reflect.DeepEqual(got, []int{1, 3, 2, 4}) {
		t.Errorf("expected dispatch order [1 3 2 4], got %v", got)
	}
	checkMetrics(t, result.Processes, []metrics{{7, 0, 7}, {12, 6, 10}, {8, 3, 4}, {16, 7, 11}})
}

func TestPriority_Scenario(t *testing.T) {
	result, err := Priority(procs(
		core.Attributes{ArrivalTime: 0, BurstTime: 10, Priority: 3},
		core.Attributes{ArrivalTime: 0, BurstTime: 1, Priority: 1},
		core.Attributes{ArrivalTime: 0, BurstTime: 2, Priority: 4},
		core.Attributes{ArrivalTime: 0, BurstTime: 1, Priority: 5},
	))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := dispatchOrder(result.Timeline); !reflect.DeepEqual(got, []int{2, 1, 3, 4}) {
		t.Errorf("expected dispatch order [2 1 3 4], got %v", got)
	}
	checkMetrics(t, result.Processes, []metrics{{11, 1, 11}, {1, 0, 1}, {13, 11, 13}, {14, 13, 14}})
}

func TestPriority_WaitsForArrivalBeforeComparing(t *testing.T) {
	// P2 has the better priority but has not arrived when P1 is dispatched.
	result, err := Priority(procs(
		core.Attributes{ArrivalTime: 0, BurstTime: 4, Priority: 9},
		core.Attributes{ArrivalTime: 1, BurstTime: 2, Priority: 0},
	))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	checkMetrics(t, result.Processes, []metrics{{4, 0, 4}, {6, 3, 5}})
}

func TestRoundRobin_Scenario(t *testing.T) {
	result, err := RoundRobin(procs(
		core.Attributes{ArrivalTime: 0, BurstTime: 5},
		core.Attributes{ArrivalTime: 1, BurstTime: 3},
		core.Attributes{ArrivalTime: 2, BurstTime: 1},
	), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []core.Slice{
		{ProcessID: 1, Start: 0, End: 2},
		{ProcessID: 2, Start: 2, End: 4},
		{ProcessID: 3, Start: 4, End: 5},
		{ProcessID: 1, Start: 5, End: 7},
		{ProcessID: 2, Start: 7, End: 8},
		{ProcessID: 1, Start: 8, End: 9},
	}
	if !reflect.DeepEqual(result.Timeline, want) {
		t.Errorf("unexpected timeline:\n got %v\nwant %v", result.Timeline, want)
	}
	checkMetrics(t, result.Processes, []metrics{{9, 4, 9}, {8, 4, 7}, {5, 2, 3}})
}

func TestRoundRobin_ArrivalsJoinBeforePreemptedProcess(t *testing.T) {
	// P2 arrives exactly when P1's first slice ends and must run before P1 resumes.
	result, err := RoundRobin(procs(
		core.Attributes{ArrivalTime: 0, BurstTime: 4},
		core.Attributes{ArrivalTime: 2, BurstTime: 2},
	), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []core.Slice{
		{ProcessID: 1, Start: 0, End: 2},
		{ProcessID: 2, Start: 2, End: 4},
		{ProcessID: 1, Start: 4, End: 6},
	}
	if !reflect.DeepEqual(result.Timeline, want) {
		t.Errorf("unexpected timeline:\n got %v\nwant %v", result.Timeline, want)
	}
}

func TestRoundRobin_NothingArrivedAtZero(t *testing.T) {
	result, err := RoundRobin(procs(
		core.Attributes{ArrivalTime: 3, BurstTime: 2},
		core.Attributes{ArrivalTime: 4, BurstTime: 1},
	), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Timeline[0].Start != 3 {
		t.Errorf("expected first slice at 3, got %d", result.Timeline[0].Start)
	}
	checkMetrics(t, result.Processes, []metrics{{6, 1, 3}, {5, 0, 1}})
	if result.Metric.IdleTime != 3 {
		t.Errorf("expected 3 idle units, got %d", result.Metric.IdleTime)
	}
}

func TestRoundRobin_RefillsInListOrder(t *testing.T) {
	// P3 arrives before P2 but P2 comes first in the list, so the empty queue
	// is refilled with P2 and P3 waits behind it.
	result, err := RoundRobin(procs(
		core.Attributes{ArrivalTime: 0, BurstTime: 1},
		core.Attributes{ArrivalTime: 10, BurstTime: 1},
		core.Attributes{ArrivalTime: 5, BurstTime: 1},
	), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []core.Slice{
		{ProcessID: 1, Start: 0, End: 1},
		{ProcessID: 2, Start: 10, End: 11},
		{ProcessID: 3, Start: 11, End: 12},
	}
	if !reflect.DeepEqual(result.Timeline, want) {
		t.Errorf("unexpected timeline:\n got %v\nwant %v", result.Timeline, want)
	}
	checkMetrics(t, result.Processes, []metrics{{1, 0, 1}, {11, 0, 1}, {12, 6, 7}})
}

func TestRoundRobin_InitialFillUsesEarliestArrival(t *testing.T) {
	result, err := RoundRobin(procs(
		core.Attributes{ArrivalTime: 6, BurstTime: 2},
		core.Attributes{ArrivalTime: 3, BurstTime: 2},
	), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []core.Slice{
		{ProcessID: 2, Start: 3, End: 5},
		{ProcessID: 1, Start: 6, End: 8},
	}
	if !reflect.DeepEqual(result.Timeline, want) {
		t.Errorf("unexpected timeline:\n got %v\nwant %v", result.Timeline, want)
	}
}

func TestRoundRobin_InvalidQuantum(t *testing.T) {
	input := procs(core.Attributes{ArrivalTime: 0, BurstTime: 3})
	for _, q := range []int{0, -2} {
		if _, err := RoundRobin(input, q); !errors.Is(err, core.ErrInvalidInput) {
			t.Errorf("quantum %d: expected ErrInvalidInput, got %v", q, err)
		}
	}
}

func TestMultilevelFeedbackQueue_Demotion(t *testing.T) {
	result, err := MultilevelFeedbackQueue(procs(
		core.Attributes{ArrivalTime: 0, BurstTime: 7},
		core.Attributes{ArrivalTime: 1, BurstTime: 2},
	), []int{2, 4, 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []core.Slice{
		{ProcessID: 1, Start: 0, End: 2},
		{ProcessID: 2, Start: 2, End: 4},
		{ProcessID: 1, Start: 4, End: 8},
		{ProcessID: 1, Start: 8, End: 9},
	}
	if !reflect.DeepEqual(result.Timeline, want) {
		t.Errorf("unexpected timeline:\n got %v\nwant %v", result.Timeline, want)
	}
	checkMetrics(t, result.Processes, []metrics{{9, 2, 9}, {4, 1, 3}})
}

func TestMultilevelFeedbackQueue_SingleLevelMatchesRoundRobin(t *testing.T) {
	input := procs(
		core.Attributes{ArrivalTime: 0, BurstTime: 5},
		core.Attributes{ArrivalTime: 1, BurstTime: 3},
		core.Attributes{ArrivalTime: 2, BurstTime: 1},
		core.Attributes{ArrivalTime: 20, BurstTime: 4},
	)
	rr, err := RoundRobin(input, 2)
	if err != nil {
		t.Fatalf("round robin: %v", err)
	}
	mlfq, err := MultilevelFeedbackQueue(input, []int{2})
	if err != nil {
		t.Fatalf("mlfq: %v", err)
	}
	if !reflect.DeepEqual(rr, mlfq) {
		t.Errorf("single-level mlfq differs from round robin:\n rr   %+v\n mlfq %+v", rr, mlfq)
	}
}

func TestMultilevelFeedbackQueue_InvalidLevels(t *testing.T) {
	input := procs(core.Attributes{ArrivalTime: 0, BurstTime: 3})
	for _, levels := range [][]int{nil, {0, 2}, {-1}, {3, -1}} {
		if _, err := MultilevelFeedbackQueue(input, levels); !errors.Is(err, core.ErrInvalidInput) {
			t.Errorf("levels %v: expected ErrInvalidInput, got %v", levels, err)
		}
	}
}

func allPolicies(t *testing.T, input []core.Process) map[Policy]core.Result {
	t.Helper()
	results := make(map[Policy]core.Result)
	for _, policy := range Policies() {
		result, err := Run(policy, input, Options{TimeQuantum: 2, LevelsTimeQuantum: []int{1, 3, 0}})
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", policy, err)
		}
		results[policy] = result
	}
	return results
}

func workloads() map[string][]core.Process {
	w := map[string][]core.Process{
		"scenario": procs(
			core.Attributes{ArrivalTime: 0, BurstTime: 7, Priority: 2},
			core.Attributes{ArrivalTime: 2, BurstTime: 4, Priority: 1},
			core.Attributes{ArrivalTime: 4, BurstTime: 1, Priority: 3},
			core.Attributes{ArrivalTime: 5, BurstTime: 4, Priority: 0},
		),
		"gaps": procs(
			core.Attributes{ArrivalTime: 3, BurstTime: 2, Priority: 1},
			core.Attributes{ArrivalTime: 12, BurstTime: 5, Priority: 1},
			core.Attributes{ArrivalTime: 4, BurstTime: 3, Priority: 2},
		),
	}
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 5; i++ {
		attrs := make([]core.Attributes, 1+rng.Intn(8))
		for j := range attrs {
			attrs[j] = core.Attributes{
				ArrivalTime: rng.Intn(15),
				BurstTime:   1 + rng.Intn(9),
				Priority:    rng.Intn(5) - 2,
			}
		}
		w[string(rune('a'+i))+"-random"] = core.NewProcesses(attrs)
	}
	return w
}

func TestAllPolicies_MetricInvariants(t *testing.T) {
	for name, input := range workloads() {
		for policy, result := range allPolicies(t, input) {
			for _, p := range result.Processes {
				if p.TurnaroundTime != p.CompletionTime-p.ArrivalTime {
					t.Errorf("%s/%s P%d: turnaround %d != completion-arrival", name, policy, p.ID, p.TurnaroundTime)
				}
				if p.WaitingTime != p.TurnaroundTime-p.BurstTime {
					t.Errorf("%s/%s P%d: waiting %d != turnaround-burst", name, policy, p.ID, p.WaitingTime)
				}
				if p.CompletionTime < p.ArrivalTime+p.BurstTime {
					t.Errorf("%s/%s P%d: finished at %d before it could", name, policy, p.ID, p.CompletionTime)
				}
			}

			busy := make(map[int]int)
			for _, s := range result.Timeline {
				busy[s.ProcessID] += s.Duration()
			}
			for _, p := range result.Processes {
				if busy[p.ID] != p.BurstTime {
					t.Errorf("%s/%s P%d: ran %d units, burst is %d", name, policy, p.ID, busy[p.ID], p.BurstTime)
				}
			}
		}
	}
}

func TestRoundRobin_SliceLengths(t *testing.T) {
	const quantum = 3
	for name, input := range workloads() {
		result, err := RoundRobin(input, quantum)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		lastSlice := make(map[int]int)
		for i, s := range result.Timeline {
			lastSlice[s.ProcessID] = i
		}
		for i, s := range result.Timeline {
			if s.Duration() > quantum {
				t.Errorf("%s: slice %d of P%d exceeds quantum", name, i, s.ProcessID)
			}
			if s.Duration() < quantum && lastSlice[s.ProcessID] != i {
				t.Errorf("%s: short slice %d of P%d is not its last", name, i, s.ProcessID)
			}
		}
	}
}

func TestNonPreemptive_RunsEachProcessOnce(t *testing.T) {
	for name, input := range workloads() {
		for _, run := range []func([]core.Process) (core.Result, error){ShortestJobFirst, Priority} {
			result, err := run(input)
			if err != nil {
				t.Fatalf("%s: %v", name, err)
			}
			if len(result.Timeline) != len(input) {
				t.Fatalf("%s: expected one slice per process, got %d", name, len(result.Timeline))
			}
			for _, s := range result.Timeline {
				for _, p := range result.Processes {
					if p.ID != s.ProcessID && p.CompletionTime > s.Start && p.CompletionTime < s.End {
						t.Errorf("%s: P%d completed inside P%d's slice %v", name, p.ID, s.ProcessID, s)
					}
				}
			}
		}
	}
}

// tickReference advances the clock one unit at a time while nothing is eligible.
func tickReference(input []core.Process, key selectionKey) []core.Process {
	procs := make([]core.Process, len(input))
	copy(procs, input)
	completed := make([]bool, len(procs))
	clock := 0
	for count := 0; count < len(procs); {
		idx := -1
		for i := range procs {
			if !completed[i] && procs[i].ArrivalTime <= clock && (idx == -1 || key(procs[i]) < key(procs[idx])) {
				idx = i
			}
		}
		if idx == -1 {
			clock++
			continue
		}
		procs[idx].WaitingTime = clock - procs[idx].ArrivalTime
		clock += procs[idx].BurstTime
		procs[idx].CompletionTime = clock
		procs[idx].TurnaroundTime = clock - procs[idx].ArrivalTime
		completed[idx] = true
		count++
	}
	return procs
}

func TestNonPreemptive_IdleJumpMatchesTickByTick(t *testing.T) {
	keys := map[string]selectionKey{
		"arrival":  func(p core.Process) int { return p.ArrivalTime },
		"burst":    func(p core.Process) int { return p.BurstTime },
		"priority": func(p core.Process) int { return p.Priority },
	}
	for name, input := range workloads() {
		for keyName, key := range keys {
			got := dispatchNonPreemptive(input, key).Processes
			want := tickReference(input, key)
			if !reflect.DeepEqual(got, want) {
				t.Errorf("%s/%s: jump differs from tick-by-tick:\n got %+v\nwant %+v", name, keyName, got, want)
			}
		}
	}
}

func TestAllPolicies_IdempotentAndInputUntouched(t *testing.T) {
	input := workloads()["scenario"]
	original := make([]core.Process, len(input))
	copy(original, input)

	first := allPolicies(t, input)
	second := allPolicies(t, input)

	if !reflect.DeepEqual(input, original) {
		t.Errorf("input was mutated: %+v", input)
	}
	for policy := range first {
		if !reflect.DeepEqual(first[policy], second[policy]) {
			t.Errorf("%s: repeated run differs", policy)
		}
	}
}

func TestAllPolicies_SingleProcess(t *testing.T) {
	for policy, result := range allPolicies(t, procs(core.Attributes{ArrivalTime: 0, BurstTime: 6, Priority: 4})) {
		if result.Processes[0].WaitingTime != 0 {
			t.Errorf("%s: expected waiting 0, got %d", policy, result.Processes[0].WaitingTime)
		}
	}
}

func TestAllPolicies_FullTieFallsBackToIDOrder(t *testing.T) {
	input := procs(
		core.Attributes{ArrivalTime: 1, BurstTime: 1, Priority: 2},
		core.Attributes{ArrivalTime: 1, BurstTime: 1, Priority: 2},
		core.Attributes{ArrivalTime: 1, BurstTime: 1, Priority: 2},
	)
	for policy, result := range allPolicies(t, input) {
		if got := dispatchOrder(result.Timeline); !reflect.DeepEqual(got, []int{1, 2, 3}) {
			t.Errorf("%s: expected id order, got %v", policy, got)
		}
	}
}

func TestAllPolicies_EmptyInput(t *testing.T) {
	for policy, result := range allPolicies(t, nil) {
		if len(result.Processes) != 0 || len(result.Timeline) != 0 {
			t.Errorf("%s: expected empty result, got %+v", policy, result)
		}
	}
}

func TestAllPolicies_RejectInvalidProcesses(t *testing.T) {
	bad := procs(core.Attributes{ArrivalTime: 0, BurstTime: 2}, core.Attributes{ArrivalTime: -3, BurstTime: 1})
	for _, policy := range Policies() {
		_, err := Run(policy, bad, Options{TimeQuantum: 2, LevelsTimeQuantum: []int{2, 0}})
		if !errors.Is(err, core.ErrInvalidInput) {
			t.Errorf("%s: expected ErrInvalidInput, got %v", policy, err)
		}
	}
}
