package reporter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/greenpythoncali/SeleniumBase/internal/artifacts"
	"github.com/greenpythoncali/SeleniumBase/internal/devops"
	"github.com/greenpythoncali/SeleniumBase/internal/testmgr"
	"github.com/greenpythoncali/SeleniumBase/pkg/storm/core"
)

type TestReporter struct {
	testManager *testmgr.StormTestManager
	out         io.Writer
	width       int
}

func NewTestReporter(testManager *testmgr.StormTestManager) *TestReporter {
	return &TestReporter{
		testManager: testManager,
		out:         os.Stdout,
		width:       termWidth(),
	}
}

func (r *TestReporter) summary() TestSummary {
	testCases := r.testManager.TestCases()
	statuses := make([]core.TestCaseStatus, len(testCases))
	for i, tc := range testCases {
		statuses[i] = tc.Status()
	}

	return newSummary(statuses)
}

// PrintReport prints the collected logs of every test case that did not pass,
// followed by one line per test case and the overall result.
func (r *TestReporter) PrintReport() {
	registrant := r.testManager.Registrant()

	for _, tc := range r.testManager.TestCases() {
		if tc.Status() == core.TestCaseStatusPassed || tc.Status() == core.TestCaseStatusNotRun {
			continue
		}

		printSeparatorWithTitle(r.out, r.width, fmt.Sprintf("%s [%s]", tc.Name(), tc.Status().ColorString()))
		if dir := tc.ArtifactBroker().Dir(); dir != "" && tc.Status().IsBad() {
			fmt.Fprintf(r.out, "Artifacts: %s\n", dir)
		}

		for _, line := range tc.LogLines() {
			fmt.Fprintf(r.out, "    %s\n", line)
		}
	}

	printSeparatorWithTitle(r.out, r.width, fmt.Sprintf("%s '%s'", registrant.RegistrantType(), registrant.Name()))
	for _, tc := range r.testManager.TestCases() {
		fmt.Fprintf(r.out, "%-10s %s (%s)\n", tc.Status().ColorString(), tc.Name(), tc.RunTime().Round(time.Millisecond))

		if tc.Reason() == "" {
			continue
		}

		for _, line := range simpleWordWrap(tc.Reason(), r.width-16) {
			fmt.Fprintf(r.out, "%16s%s\n", "", line)
		}
	}

	summary := r.summary()
	printSeparator(r.out, r.width)
	fmt.Fprintf(r.out, "TEST RESULT: %s. %s\n", summary.Status().ColorString(), summary.Summary())
}

// LogDevopsIssues reports every failed or errored test case to Azure DevOps.
func (r *TestReporter) LogDevopsIssues() {
	registrant := r.testManager.Registrant()

	for _, tc := range r.testManager.TestCases() {
		if !tc.Status().IsBad() {
			continue
		}

		devops.LogError("%s '%s' test case '%s' %s: %s", registrant.RegistrantType(), registrant.Name(), tc.Name(), tc.Status(), tc.Reason())

		if dir := tc.ArtifactBroker().Dir(); dir != "" {
			devops.UploadLog(filepath.Join(dir, artifacts.TestLogFile))
		}
	}
}

func (r *TestReporter) ExitError() error {
	summary := r.summary()

	if summary.Status().IsBad() {
		return fmt.Errorf("%s '%s' finished with status %s (%s)",
			r.testManager.Registrant().RegistrantType(),
			r.testManager.Registrant().Name(),
			summary.Status(),
			summary.Summary(),
		)
	}

	return nil
}
