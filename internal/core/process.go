package core

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned when a workload or policy parameter can not be simulated.
var ErrInvalidInput = errors.New("invalid input")

// Process is one job of a simulation run. The first four fields are inputs,
// the rest are filled in by a scheduling policy.
type Process struct {
	ID          int
	ArrivalTime int
	BurstTime   int
	Priority    int // lower value = higher precedence

	CompletionTime int
	WaitingTime    int
	TurnaroundTime int
}

// Attributes is what input collection supplies for a single process.
type Attributes struct {
	ArrivalTime int
	BurstTime   int
	Priority    int
}

// Slice is one uninterrupted stretch of CPU time given to a process.
type Slice struct {
	ProcessID int
	Start     int
	End       int
}

func (s Slice) Duration() int {
	return s.End - s.Start
}

// Result is the outcome of a single policy run.
type Result struct {
	Processes []Process
	Timeline  []Slice
	Metric    CpuMetric
}

// NewProcesses assigns ids 1..N in supply order.
func NewProcesses(attrs []Attributes) []Process {
	processes := make([]Process, len(attrs))
	for i, a := range attrs {
		processes[i] = Process{
			ID:          i + 1,
			ArrivalTime: a.ArrivalTime,
			BurstTime:   a.BurstTime,
			Priority:    a.Priority,
		}
	}
	return processes
}

// Validate rejects processes that could never be scheduled. An empty list is valid.
func Validate(processes []Process) error {
	seen := make(map[int]bool, len(processes))
	for _, p := range processes {
		if p.ArrivalTime < 0 {
			return fmt.Errorf("%w: process %d has negative arrival time %d", ErrInvalidInput, p.ID, p.ArrivalTime)
		}
		if p.BurstTime <= 0 {
			return fmt.Errorf("%w: process %d has non-positive burst time %d", ErrInvalidInput, p.ID, p.BurstTime)
		}
		if seen[p.ID] {
			return fmt.Errorf("%w: duplicate process id %d", ErrInvalidInput, p.ID)
		}
		seen[p.ID] = true
	}
	return nil
}

// ValidateQuantum rejects time slices that would never let the clock advance.
func ValidateQuantum(quantum int) error {
	if quantum <= 0 {
		return fmt.Errorf("%w: time quantum must be positive, got %d", ErrInvalidInput, quantum)
	}
	return nil
}

// Complete fills the derived metrics of a process finishing at completion.
func (p *Process) Complete(completion int) {
	p.CompletionTime = completion
	p.TurnaroundTime = completion - p.ArrivalTime
	p.WaitingTime = p.TurnaroundTime - p.BurstTime
}
