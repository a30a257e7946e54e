package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"os-scheduler/internal/core"
	"os-scheduler/internal/report"
	"os-scheduler/internal/requests"
	"os-scheduler/internal/schedulers"
)

type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newPrompter(r io.Reader, w io.Writer) *prompter {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &prompter{in: sc, out: w}
}

func (p *prompter) word(prompt string) (string, error) {
	_, _ = fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return p.in.Text(), nil
}

func (p *prompter) number(prompt string) (int, error) {
	w, err := p.word(prompt)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(w)
	if err != nil {
		return 0, fmt.Errorf("expected an integer, got %q", w)
	}
	return n, nil
}

func collectJobs(p *prompter) ([]requests.Job, error) {
	n, err := p.number("Enter number of processes: ")
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("number of processes must not be negative, got %d", n)
	}

	jobs := make([]requests.Job, n)
	for i := range jobs {
		_, _ = fmt.Fprintf(p.out, "\nEnter details for Process %d:\n", i+1)
		if jobs[i].ArrivalTime, err = p.number("Arrival Time: "); err != nil {
			return nil, err
		}
		if jobs[i].BurstTime, err = p.number("Burst Time: "); err != nil {
			return nil, err
		}
		if jobs[i].Priority, err = p.number("Priority (lower value => higher priority): "); err != nil {
			return nil, err
		}
	}
	return jobs, nil
}

// runChoice returns only prompt errors; rejected input is reported to the user.
func runChoice(p *prompter, runner *schedulers.Runner, policy schedulers.Policy, jobs []requests.Job) error {
	request := &requests.ScheduleRequests{Jobs: jobs}
	if policy == schedulers.PolicyRoundRobin {
		quantum, err := p.number("Enter Time Quantum: ")
		if err != nil {
			return err
		}
		// zero would fall back to the configured quantum
		if err := core.ValidateQuantum(quantum); err != nil {
			_, _ = fmt.Fprintf(p.out, "Error: %v\n", err)
			return nil
		}
		request.TimeQuantum = quantum
	}

	resp, err := runner.Schedule(policy, request)
	if err != nil {
		_, _ = fmt.Fprintf(p.out, "Error: %v\n", err)
		return nil
	}
	_, _ = fmt.Fprintln(p.out)
	report.Render(p.out, resp)
	return nil
}

func runInteractive(p *prompter, runner *schedulers.Runner) error {
	jobs, err := collectJobs(p)
	if err != nil {
		return err
	}
	menu := schedulers.Policies()

	for {
		_, _ = fmt.Fprintln(p.out, "\nSelect Scheduling Algorithm:")
		for i, policy := range menu {
			_, _ = fmt.Fprintf(p.out, "%d. %s\n", i+1, policy.Name())
		}
		option, err := p.number(fmt.Sprintf("Enter choice (1-%d): ", len(menu)))
		if err != nil {
			return err
		}

		if option < 1 || option > len(menu) {
			_, _ = fmt.Fprintln(p.out, "Invalid choice!")
		} else if err := runChoice(p, runner, menu[option-1], jobs); err != nil {
			return err
		}

		again, err := p.word("Do you want to try another scheduling algorithm? (Y/N): ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if !strings.EqualFold(again, "y") {
			return nil
		}
	}
}

func newInteractiveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Enter processes at the prompt and try policies one after another",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(newPrompter(cmd.InOrStdin(), cmd.OutOrStdout()), newRunner())
		},
	}
}
