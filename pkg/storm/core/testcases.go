package core

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

type TestCase interface {
	Named

	// Returns information about the registrant that created this test case.
	Registrant() TestRegistrantMetadata

	// Logger for this test case. Everything logged here is kept with the
	// test case and shown in the report if it does not pass.
	Logger() *logrus.Logger

	// Fail the test case. Implementations will stop execution by calling
	// runtime.Goexit(), which then runs all deferred calls in the current
	// goroutine.
	Fail(reason string)

	// Same as Fail, using the error as the reason.
	FailFromError(err error)

	// Error the test case: the test itself broke rather than the product
	// under test. Stops execution like Fail.
	Error(err error)

	// Skip the test case. Stops execution like Fail, but does not stop the
	// following test cases from running.
	Skip(reason string)

	// Get the test case run time
	RunTime() time.Duration

	// Registers a cleanup function to be called after all subsequent test cases
	// in the suite have finished, regardless of their status. Cleanup functions
	// are called in reverse order of registration.
	SuiteCleanup(f func())

	// Provides a context for the test case. The context will be cancelled once
	// the test case has finished running, making it suitable to terminate any
	// leftover goroutines that were started by the test case.
	Context() context.Context

	// Provides a wait group that will be used to wait for all background
	// resources created by a test case to finish before the test case is
	// considered complete.
	BackgroundWaitGroup() *sync.WaitGroup

	// Returns the broker used to save files into this test case's log
	// folder.
	ArtifactBroker() ArtifactBroker
}

// ArtifactBroker stores files produced by a test case under
// <log_path>/<test case>/. When --with-testing_base is off there is no log
// folder and publishing does nothing.
type ArtifactBroker interface {
	// Copies the file at srcPath into the test case folder as name.
	PublishLogFile(name string, srcPath string)

	// Writes data into the test case folder as name.
	PublishLogData(name string, data []byte)

	// Returns the folder artifacts are written to, or "" when publishing is
	// disabled.
	Dir() string
}
