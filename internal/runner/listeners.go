package runner

import (
	"github.com/greenpythoncali/SeleniumBase/internal/artifacts"
	"github.com/greenpythoncali/SeleniumBase/pkg/storm/core"
)

// testListeners returns the listeners notified around every test case: the
// failure artifact collector followed by the ones registered on the suite.
func testListeners(suite core.SuiteContext) []core.TestListener {
	listeners := []core.TestListener{
		artifacts.NewFailureListener(suite.Session().Options(), suite.Logger()),
	}

	return append(listeners, suite.TestListeners()...)
}

func notifyBefore(suite core.SuiteContext, listeners []core.TestListener, info core.TestInfo) {
	for _, l := range listeners {
		err := runCatchPanic(func() error {
			l.BeforeTest(info)
			return nil
		})
		if err != nil {
			suite.Logger().WithError(err).Errorf("Listener failed before test case '%s'", info.Name())
		}
	}
}

func notifyAfter(suite core.SuiteContext, listeners []core.TestListener, info core.TestInfo) {
	for _, l := range listeners {
		err := runCatchPanic(func() error {
			l.AfterTest(info)
			return nil
		})
		if err != nil {
			suite.Logger().WithError(err).Errorf("Listener failed after test case '%s'", info.Name())
		}
	}
}
