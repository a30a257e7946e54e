package core

// CpuMetric summarises how the logical CPU spent its time.
type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// CPU is the logical single processor a policy drives. It owns the clock and
// records every slice it executes.
type CPU struct {
	clock    int
	metric   CpuMetric
	timeline []Slice
}

func NewCPU() *CPU {
	return &CPU{timeline: make([]Slice, 0)}
}

func (c *CPU) Now() int {
	return c.clock
}

// IdleUntil moves the clock forward to t. The clock never goes backwards.
func (c *CPU) IdleUntil(t int) {
	if t <= c.clock {
		return
	}
	c.metric.IdleTime += t - c.clock
	c.clock = t
}

// Execute runs pid for d time units starting now and returns the slice start.
func (c *CPU) Execute(pid, d int) int {
	start := c.clock
	c.clock += d
	c.metric.UtilizationTime += d
	c.timeline = append(c.timeline, Slice{ProcessID: pid, Start: start, End: c.clock})
	return start
}

func (c *CPU) Timeline() []Slice {
	return c.timeline
}

func (c *CPU) Metric() CpuMetric {
	m := c.metric
	m.TotalTime = c.clock
	return m
}
