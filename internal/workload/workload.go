// Package workload reads process lists from yaml, json or csv files.
package workload

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"os-scheduler/internal/requests"
)

var ErrUnsupportedFormat = errors.New("unsupported workload format")

// Load picks a decoder from the file extension.
func Load(path string) (*requests.ScheduleRequests, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open workload: %w", err)
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return DecodeYAML(f)
	case ".json":
		return DecodeJSON(f)
	case ".csv":
		return DecodeCSV(f)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

func DecodeYAML(r io.Reader) (*requests.ScheduleRequests, error) {
	var req requests.ScheduleRequests
	if err := yaml.NewDecoder(r).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse yaml workload: %w", err)
	}
	return &req, nil
}

func DecodeJSON(r io.Reader) (*requests.ScheduleRequests, error) {
	var req requests.ScheduleRequests
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return nil, fmt.Errorf("parse json workload: %w", err)
	}
	return &req, nil
}

// DecodeCSV reads rows of arrival,burst[,priority]. A first row that is not
// numeric is treated as a header.
func DecodeCSV(r io.Reader) (*requests.ScheduleRequests, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv workload: %w", err)
	}

	req := &requests.ScheduleRequests{Jobs: make([]requests.Job, 0, len(rows))}
	for i, row := range rows {
		if len(row) < 2 || len(row) > 3 {
			return nil, fmt.Errorf("csv row %d: expected 2 or 3 fields, got %d", i+1, len(row))
		}
		values := make([]int, len(row))
		for j, field := range row {
			values[j], err = strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				break
			}
		}
		if err != nil {
			if i == 0 {
				continue
			}
			return nil, fmt.Errorf("csv row %d: %w", i+1, err)
		}

		job := requests.Job{ArrivalTime: values[0], BurstTime: values[1]}
		if len(values) == 3 {
			job.Priority = values[2]
		}
		req.Jobs = append(req.Jobs, job)
	}
	return req, nil
}
