package reporter

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/greenpythoncali/SeleniumBase/pkg/storm/core"
)

// SummaryStatus is the overall result of a scenario or helper run.
type SummaryStatus int

const (
	SummaryOk SummaryStatus = iota
	SummaryFailed
	SummaryError
)

func (ss SummaryStatus) String() string {
	switch ss {
	case SummaryOk:
		return "OK"
	case SummaryFailed:
		return "FAILED"
	case SummaryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (ss SummaryStatus) ColorString() string {
	switch ss {
	case SummaryOk:
		return color.GreenString(ss.String())
	case SummaryFailed:
		return color.RedString(ss.String())
	default:
		return color.New(color.FgRed, color.Bold).Sprint(ss.String())
	}
}

func (ss SummaryStatus) IsBad() bool {
	return ss != SummaryOk
}

type TestSummary struct {
	total   int
	passed  int
	failed  int
	skipped int
	notRun  int
	errored int
}

func newSummary(statuses []core.TestCaseStatus) TestSummary {
	var summary TestSummary

	for _, status := range statuses {
		summary.total++
		switch status {
		case core.TestCaseStatusPassed:
			summary.passed++
		case core.TestCaseStatusFailed:
			summary.failed++
		case core.TestCaseStatusSkipped:
			summary.skipped++
		case core.TestCaseStatusNotRun:
			summary.notRun++
		case core.TestCaseStatusError:
			summary.errored++
		default:
			panic(fmt.Sprintf("test case in non-final status %s", status))
		}
	}

	return summary
}

func (s TestSummary) Status() SummaryStatus {
	switch {
	case s.errored > 0:
		return SummaryError
	case s.failed > 0:
		return SummaryFailed
	default:
		return SummaryOk
	}
}

func (s TestSummary) Summary() string {
	var out []string

	if s.failed > 0 {
		out = append(out, fmt.Sprintf("failed: %d", s.failed))
	}
	if s.errored > 0 {
		out = append(out, fmt.Sprintf("errored: %d", s.errored))
	}
	if s.skipped > 0 {
		out = append(out, fmt.Sprintf("skipped: %d", s.skipped))
	}
	if s.notRun > 0 {
		out = append(out, fmt.Sprintf("notrun: %d", s.notRun))
	}

	out = append(out, fmt.Sprintf("passed: %d", s.passed))
	out = append(out, fmt.Sprintf("total: %d", s.total))

	return strings.Join(out, "; ")
}
