package testmgr

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/greenpythoncali/SeleniumBase/pkg/storm/core"
	"github.com/sirupsen/logrus"
)

type TestCase struct {
	name      string
	index     uint
	f         core.TestCaseFunction
	parent    *StormTestManager
	broker    core.ArtifactBroker
	startTime time.Time
	endTime   time.Time
	status    core.TestCaseStatus
	reason    string
	log       *logrus.Logger
	logBuffer bytes.Buffer
	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	cleanups  []func()
}

// Implementer of logrus.Hook interface to tee log messages from the test case
// logger to the suite logger
type testCaseLogTee struct {
	suiteLogger *logrus.Logger
	testCaseId  string
}

func (tee testCaseLogTee) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (tee testCaseLogTee) Fire(entry *logrus.Entry) error {
	newEntry := tee.suiteLogger.WithFields(entry.Data)
	newEntry.Caller = entry.Caller
	newEntry.Log(entry.Level, fmt.Sprintf("[%s] > %s", tee.testCaseId, entry.Message))
	return nil
}

func newTestCase(name string, index uint, f core.TestCaseFunction, parent *StormTestManager, broker core.ArtifactBroker) *TestCase {
	tc := &TestCase{
		name:   name,
		index:  index,
		f:      f,
		parent: parent,
		broker: broker,
		status: core.TestCaseStatusPending,
		log:    logrus.New(),
	}

	tc.log.SetLevel(logrus.TraceLevel)
	tc.log.SetOutput(&tc.logBuffer)
	tc.log.SetFormatter(&logrus.TextFormatter{
		ForceColors: true,
	})
	tc.log.AddHook(testCaseLogTee{
		suiteLogger: parent.suite.Logger(),
		testCaseId:  tc.id(),
	})
	tc.log.SetReportCaller(true)

	return tc
}

func (tc *TestCase) id() string {
	return fmt.Sprintf("%04d:%s", tc.index, tc.name)
}

func (tc *TestCase) Name() string {
	return tc.name
}

func (tc *TestCase) Registrant() core.TestRegistrantMetadata {
	return tc.parent.metadata
}

func (tc *TestCase) Status() core.TestCaseStatus {
	return tc.status
}

func (tc *TestCase) Reason() string {
	return tc.reason
}

func (tc *TestCase) Logger() *logrus.Logger {
	return tc.log
}

func (tc *TestCase) ArtifactBroker() core.ArtifactBroker {
	return tc.broker
}

func (tc *TestCase) PageCapturer() (core.PageCapturer, bool) {
	return tc.parent.capturer, tc.parent.capturer != nil
}

func (tc *TestCase) Context() context.Context {
	return tc.ctx
}

func (tc *TestCase) BackgroundWaitGroup() *sync.WaitGroup {
	return &tc.wg
}

func (tc *TestCase) SuiteCleanup(f func()) {
	tc.cleanups = append(tc.cleanups, f)
}

// SuiteCleanupList returns the cleanup functions registered by the test case,
// in registration order.
func (tc *TestCase) SuiteCleanupList() []func() {
	return tc.cleanups
}

// IsBailCondition returns true when the remaining test cases of the
// registrant must not run.
func (tc *TestCase) IsBailCondition() bool {
	return tc.status.IsBad()
}

// LogLines returns everything logged by the test case, one entry per line.
func (tc *TestCase) LogLines() []string {
	raw := strings.TrimRight(tc.logBuffer.String(), "\n")
	if raw == "" {
		return nil
	}

	return strings.Split(raw, "\n")
}

func (tc *TestCase) RunTime() time.Duration {
	switch {
	case tc.startTime.IsZero():
		return 0
	case tc.status.IsRunning():
		return time.Since(tc.startTime)
	default:
		return tc.endTime.Sub(tc.startTime)
	}
}

// Start moves the test case to RUNNING. It must be called once, before
// Execute.
func (tc *TestCase) Start() {
	if tc.status != core.TestCaseStatusPending {
		panic(fmt.Sprintf("cannot start test case '%s' with status %s", tc.name, tc.status))
	}

	tc.ctx, tc.cancel = context.WithCancel(tc.parent.suite.Context())
	tc.startTime = time.Now()
	tc.status = core.TestCaseStatusRunning
}

// Execute runs the test case function. It must be called from a dedicated
// goroutine: Fail, Skip and Error stop that goroutine with runtime.Goexit().
// The test case context is cancelled and background work is awaited before
// Execute returns or the goroutine exits.
func (tc *TestCase) Execute() error {
	if !tc.status.IsRunning() {
		return fmt.Errorf("test case '%s' is not running", tc.name)
	}

	defer func() {
		tc.cancel()
		tc.wg.Wait()
	}()

	return tc.f(tc)
}

func (tc *TestCase) close(status core.TestCaseStatus, reason string, err error) {
	if !tc.status.IsRunning() {
		tc.parent.suite.
			Logger().
			Warnf(
				"Attempted to close test case '%s' with status '%s', but it was already closed with status '%s'. Ignoring.",
				tc.name,
				status.String(),
				tc.status.String(),
			)
		return
	}

	if !status.IsFinal() {
		panic("cannot close test case with a non-final status")
	}

	tc.status = status
	tc.endTime = time.Now()

	tc.reason = reason
	if tc.reason == "" && err != nil {
		tc.reason = err.Error()
	}

	tc.log.SetReportCaller(false)
	localEntry := logrus.NewEntry(tc.log)

	if reason != "" {
		localEntry = localEntry.WithField("reason", reason)
	}

	if err != nil {
		localEntry = localEntry.WithError(err)
	}

	localEntry.Log(tc.status.LogLevel(), tc.status.String())

	tc.log.SetOutput(io.Discard)

	tc.parent.suite.Logger().
		WithField("testCase", tc.name).
		WithField("status", tc.status.String()).
		Logf(tc.status.LogLevel(), "%s: %s", tc.Name(), tc.status.String())
}

func (tc *TestCase) Fail(reason string) {
	tc.close(core.TestCaseStatusFailed, reason, nil)
	tc.stopTestExecution()
}

func (tc *TestCase) FailFromError(err error) {
	tc.close(core.TestCaseStatusFailed, "", err)
	tc.stopTestExecution()
}

func (tc *TestCase) Error(err error) {
	tc.close(core.TestCaseStatusError, "", err)
	tc.stopTestExecution()
}

func (tc *TestCase) Skip(reason string) {
	tc.close(core.TestCaseStatusSkipped, reason, nil)
	tc.stopTestExecution()
}

// Pass closes a running test case as passed.
func (tc *TestCase) Pass() {
	tc.close(core.TestCaseStatusPassed, "", nil)
}

// MarkError closes a running test case with an error caught by the runner.
func (tc *TestCase) MarkError(err error) {
	tc.close(core.TestCaseStatusError, "", err)
}

// MarkNotRun records that a pending test case was never started.
func (tc *TestCase) MarkNotRun(reason string) {
	if tc.status != core.TestCaseStatusPending {
		tc.parent.suite.Logger().Warnf("Cannot mark test case '%s' as not run, status is '%s'", tc.name, tc.status)
		return
	}

	tc.status = core.TestCaseStatusNotRun
	tc.reason = reason

	tc.parent.suite.Logger().
		WithField("testCase", tc.name).
		WithField("reason", reason).
		Logf(tc.status.LogLevel(), "%s: %s", tc.Name(), tc.status.String())
}

// Calls runtime.Goexit() unless the test case passed.
// THIS SHOULD ONLY BE CALLED AFTER CLOSING THE TEST CASE!
func (tc *TestCase) stopTestExecution() {
	if tc.status == core.TestCaseStatusPassed {
		return
	}

	if tc.status.IsRunning() {
		panic("cannot stop test case execution with status running")
	}

	tc.parent.suite.Logger().Tracef(
		"Stopping execution of [%s] due to test case status '%s'",
		tc.id(),
		tc.status.String(),
	)
	runtime.Goexit()
}
