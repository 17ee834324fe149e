package core

import (
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

type TestCaseStatus int

const (
	TestCaseStatusPending TestCaseStatus = iota
	TestCaseStatusRunning
	TestCaseStatusPassed
	TestCaseStatusFailed
	TestCaseStatusSkipped
	TestCaseStatusError
	TestCaseStatusNotRun
)

func (tcs TestCaseStatus) String() string {
	switch tcs {
	case TestCaseStatusPending:
		return "PENDING"
	case TestCaseStatusRunning:
		return "RUNNING"
	case TestCaseStatusPassed:
		return "PASS"
	case TestCaseStatusFailed:
		return "FAIL"
	case TestCaseStatusSkipped:
		return "SKIP"
	case TestCaseStatusError:
		return "ERROR"
	case TestCaseStatusNotRun:
		return "NOT RUN"
	default:
		return "UNKNOWN"
	}
}

func (tcs TestCaseStatus) ColorString() string {
	switch tcs {
	case TestCaseStatusPassed:
		return color.GreenString(tcs.String())
	case TestCaseStatusFailed:
		return color.RedString(tcs.String())
	case TestCaseStatusError:
		return color.New(color.FgRed, color.Bold).Sprint(tcs.String())
	case TestCaseStatusSkipped, TestCaseStatusNotRun:
		return color.YellowString(tcs.String())
	default:
		return tcs.String()
	}
}

func (tcs TestCaseStatus) LogLevel() logrus.Level {
	switch tcs {
	case TestCaseStatusFailed, TestCaseStatusError:
		return logrus.ErrorLevel
	case TestCaseStatusSkipped, TestCaseStatusNotRun:
		return logrus.WarnLevel
	default:
		return logrus.InfoLevel
	}
}

func (tcs TestCaseStatus) IsRunning() bool {
	return tcs == TestCaseStatusRunning
}

// IsFinal returns true once the test case can no longer change status.
func (tcs TestCaseStatus) IsFinal() bool {
	return tcs != TestCaseStatusPending && tcs != TestCaseStatusRunning
}

// IsBad returns true if the test case status is either Failed or Error.
func (tcs TestCaseStatus) IsBad() bool {
	return tcs == TestCaseStatusFailed || tcs == TestCaseStatusError
}
