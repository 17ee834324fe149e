package list

import (
	"fmt"
	"slices"

	"github.com/greenpythoncali/SeleniumBase/pkg/storm/core"
)

type ListTagsCmd struct{}

func (cmd *ListTagsCmd) Run(suite core.SuiteContext) error {
	suite.Logger().Info("Listing all tags")

	for _, tag := range allTags(suite.Scenarios()) {
		fmt.Println(tag)
	}
	return nil
}

// allTags returns the sorted, unique tags of all scenarios.
func allTags(scenarios []core.Scenario) []string {
	tags := make([]string, 0)
	for _, scenario := range scenarios {
		tags = append(tags, scenario.Tags()...)
	}

	slices.Sort(tags)
	return slices.Compact(tags)
}
