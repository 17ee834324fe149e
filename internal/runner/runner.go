package runner

import (
	"errors"
	"fmt"
	"path"
	"runtime/debug"
	"slices"
	"sync"

	"github.com/greenpythoncali/SeleniumBase/internal/artifacts"
	"github.com/greenpythoncali/SeleniumBase/internal/devops"
	"github.com/greenpythoncali/SeleniumBase/internal/reporter"
	"github.com/greenpythoncali/SeleniumBase/internal/stormerror"
	"github.com/greenpythoncali/SeleniumBase/internal/testmgr"
	"github.com/greenpythoncali/SeleniumBase/pkg/storm/core"
)

// RegisterAndRunTests parses the extra arguments of registrant, configures
// the browser session, runs every test case and prints the report. The
// session is unconfigured before returning, whatever happened.
func RegisterAndRunTests(suite core.SuiteContext,
	registrant interface {
		core.Argumented
		core.TestRegistrant
	},
	args []string,
) error {
	instance := &registrantInstance{
		Argumented:     registrant,
		TestRegistrant: registrant,
	}

	err := parseExtraArguments(suite, args, instance)
	if err != nil {
		return err
	}

	session := suite.Session()
	if err := session.Configure(); err != nil {
		// Configure may fail after the session file was written.
		unconfigure(suite)
		return fmt.Errorf("failed to configure browser session: %w", err)
	}
	defer unconfigure(suite)

	fs := session.Fs()
	testMgr, err := testmgr.NewStormTestManager(suite, instance, registrant, func(registrant, testCase string) core.ArtifactBroker {
		return artifacts.NewBroker(fs, session.LogDir(), path.Join(registrant, testCase), suite.Logger())
	})
	if err != nil {
		return fmt.Errorf("failed to create test manager: %w", err)
	}

	if suite.AzureDevops() {
		group := devops.OpenGroup(fmt.Sprintf("%s '%s'", instance.RegistrantType(), instance.Name()))
		defer group.Close()
	}

	err = executeTestCases(suite, instance, testMgr)
	if err != nil {
		var se *setupError
		var ce *cleanupError
		switch {
		case errors.As(err, &se):
			// No test case ran, there is nothing to report.
			return err
		case errors.As(err, &ce):
			suite.Logger().Error(err)
		default:
			suite.Logger().WithError(err).Error("Unknown error occurred!")
		}
	}

	rep := reporter.NewTestReporter(testMgr)
	rep.PrintReport()

	if suite.AzureDevops() {
		rep.LogDevopsIssues()
	}

	return rep.ExitError()
}

func unconfigure(suite core.SuiteContext) {
	if err := suite.Session().Unconfigure(); err != nil {
		suite.Logger().WithError(err).Error("Failed to unconfigure browser session")
	}
}

func executeTestCases(suite core.SuiteContext, registrant *registrantInstance, testManager *testmgr.StormTestManager) error {
	ctx := &setupCleanupContext{
		LoggerProvider:         suite,
		TestRegistrantMetadata: registrant,
	}

	sc, hasSetupCleanup := registrant.TestRegistrant.(core.SetupCleanup)

	if hasSetupCleanup {
		err := runCatchPanic(func() error { return sc.Setup(ctx) })
		if err != nil {
			for _, testCase := range testManager.TestCases() {
				testCase.MarkNotRun("setup failure")
			}
			return newSetupError(registrant, err)
		}
	}

	listeners := testListeners(suite)
	cleanupFuncs := make([]func(), 0)
	bail := false

	for _, testCase := range testManager.TestCases() {
		if bail {
			testCase.MarkNotRun("dependency failure")
			continue
		}

		suite.Logger().Infof("%s (started)", testCase.Name())

		testCase.Start()
		notifyBefore(suite, listeners, testCase)
		executeTestCase(testCase)
		notifyAfter(suite, listeners, testCase)

		cleanupFuncs = append(cleanupFuncs, testCase.SuiteCleanupList()...)

		bail = testCase.IsBailCondition()
		suite.Logger().Infof("%s %s", testCase.Name(), testCase.Status().ColorString())
	}

	slices.Reverse(cleanupFuncs)
	for _, f := range cleanupFuncs {
		err := runCatchPanic(func() error {
			f()
			return nil
		})
		if err != nil {
			suite.Logger().WithError(err).Error("Suite cleanup function failed")
		}
	}

	if hasSetupCleanup {
		err := runCatchPanic(func() error { return sc.Cleanup(ctx) })
		if err != nil {
			return newCleanupError(registrant, err)
		}
	}

	return nil
}

func executeTestCase(testCase *testmgr.TestCase) {
	var err error
	var wg sync.WaitGroup

	// Run the test case in a separate goroutine so that runtime.Goexit() can
	// be called to stop the test execution.
	wg.Add(1)
	go func() {
		defer wg.Done()
		err = runCatchPanic(testCase.Execute)
	}()

	wg.Wait()

	if err != nil {
		testCase.MarkError(err)
	} else if testCase.Status().IsRunning() {
		testCase.Pass()
	}
}

func runCatchPanic(f func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = stormerror.NewPanicError(r, debug.Stack())
		}
	}()

	return f()
}
