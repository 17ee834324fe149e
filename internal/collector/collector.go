package collector

import (
	"fmt"

	"github.com/greenpythoncali/SeleniumBase/pkg/storm/core"
)

type TestCaseMetadata struct {
	Name string
	F    core.TestCaseFunction
}

// CollectTestCases runs the registration function of r and returns the test
// cases it registered, in registration order.
func CollectTestCases(r core.TestRegistrant) ([]TestCaseMetadata, error) {
	collector := testCaseCollector{
		testCases: make([]TestCaseMetadata, 0),
	}

	err := r.RegisterTestCases(&collector)
	if err != nil {
		return nil, fmt.Errorf("failed to register test cases: %w", err)
	}

	if len(collector.testCases) == 0 {
		return nil, fmt.Errorf("'%s' did not register any test cases", r.Name())
	}

	names := make(map[string]bool)
	for _, testCase := range collector.testCases {
		if names[testCase.Name] {
			return nil, fmt.Errorf("test case name '%s' is not unique", testCase.Name)
		}

		if err := core.ValidateEntityName(testCase.Name, "test case"); err != nil {
			return nil, err
		}

		if testCase.F == nil {
			return nil, fmt.Errorf("test case '%s' has no function", testCase.Name)
		}

		names[testCase.Name] = true
	}

	return collector.testCases, nil
}

type testCaseCollector struct {
	testCases []TestCaseMetadata
}

// RegisterTestCase implements core.TestRegistrar.
func (c *testCaseCollector) RegisterTestCase(name string, f core.TestCaseFunction) {
	c.testCases = append(c.testCases, TestCaseMetadata{
		Name: name,
		F:    f,
	})
}
