package schedulers

import (
	"sort"

	"github.com/google/uuid"

	"os-scheduler/internal/core"
	"os-scheduler/internal/responses"
	"os-scheduler/internal/util"
)

func generateResponse(policy Policy, opts Options, result core.Result) responses.ScheduleResponse {
	firstStart := make(map[int]int, len(result.Processes))
	timeline := make([]responses.SliceResponse, 0, len(result.Timeline))
	for _, s := range result.Timeline {
		if _, ok := firstStart[s.ProcessID]; !ok {
			firstStart[s.ProcessID] = s.Start
		}
		timeline = append(timeline, responses.SliceResponse{ProcessId: s.ProcessID, Start: s.Start, End: s.End})
	}

	proccessDetails := make([]responses.ProcessResponse, 0, len(result.Processes))
	for _, p := range result.Processes {
		proccessDetails = append(proccessDetails, generateProcessDetails(p, firstStart[p.ID]))
	}
	sort.SliceStable(proccessDetails, func(i, j int) bool {
		return proccessDetails[i].ProcessId < proccessDetails[j].ProcessId
	})

	averageWaitingTime, averageResponseTime, averageTimeAroundTime := util.CalculateAverage(proccessDetails)

	metric := result.Metric
	var utilization, throughput float64
	if metric.TotalTime > 0 {
		utilization = float64(metric.UtilizationTime) / float64(metric.TotalTime)
		throughput = float64(len(result.Processes)) / float64(metric.TotalTime)
	}

	response := responses.ScheduleResponse{
		RunID:                 uuid.NewString(),
		Algorithm:             policy.Name(),
		TotalTime:             metric.TotalTime,
		IdleTime:              metric.IdleTime,
		CpuUtilization:        utilization,
		CpuThroughput:         throughput,
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTimeAroundTime,
		Details:               proccessDetails,
		Timeline:              timeline,
	}
	switch policy {
	case PolicyRoundRobin:
		response.TimeQuantum = opts.TimeQuantum
	case PolicyMLFQ:
		response.LevelsTimeQuantum = opts.LevelsTimeQuantum
	}
	return response
}

func generateProcessDetails(process core.Process, firstStart int) responses.ProcessResponse {
	return responses.ProcessResponse{
		ProcessId:      process.ID,
		ArrivalTime:    process.ArrivalTime,
		BurstTime:      process.BurstTime,
		Priority:       process.Priority,
		CompletionTime: process.CompletionTime,
		ResponseTime:   firstStart - process.ArrivalTime,
		TurnAroundTime: process.TurnaroundTime,
		WaitingTime:    process.WaitingTime,
	}
}
