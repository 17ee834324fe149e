package testmgr

import (
	"fmt"
	"time"

	"github.com/greenpythoncali/SeleniumBase/internal/collector"
	"github.com/greenpythoncali/SeleniumBase/pkg/storm/core"
)

// BrokerFactory returns the artifact broker for a test case, given the
// registrant and test case names.
type BrokerFactory func(registrant string, testCase string) core.ArtifactBroker

type StormTestManager struct {
	suite     core.SuiteContext
	metadata  core.TestRegistrantMetadata
	capturer  core.PageCapturer
	startTime time.Time
	testCases []*TestCase
}

// NewStormTestManager collects the test cases of registrant and prepares them
// to run. Nothing is executed yet.
func NewStormTestManager(
	suite core.SuiteContext,
	metadata core.TestRegistrantMetadata,
	registrant core.TestRegistrant,
	brokers BrokerFactory,
) (*StormTestManager, error) {
	collected, err := collector.CollectTestCases(registrant)
	if err != nil {
		return nil, fmt.Errorf("failed to collect test cases for %s '%s': %w", metadata.RegistrantType(), metadata.Name(), err)
	}

	tm := &StormTestManager{
		suite:     suite,
		metadata:  metadata,
		startTime: time.Now(),
		testCases: make([]*TestCase, 0, len(collected)),
	}

	if c, ok := registrant.(core.PageCapturer); ok {
		tm.capturer = c
	}

	for i, tc := range collected {
		tm.testCases = append(tm.testCases, newTestCase(tc.Name, uint(i), tc.F, tm, brokers(metadata.Name(), tc.Name)))
	}

	return tm, nil
}

func (tm *StormTestManager) TestCases() []*TestCase {
	return tm.testCases
}

func (tm *StormTestManager) Suite() core.SuiteContext {
	return tm.suite
}

func (tm *StormTestManager) Registrant() core.TestRegistrantMetadata {
	return tm.metadata
}

// RunTime is the time elapsed since the manager was created.
func (tm *StormTestManager) RunTime() time.Duration {
	return time.Since(tm.startTime)
}
