package list

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/greenpythoncali/SeleniumBase/pkg/storm/core"
	"github.com/greenpythoncali/SeleniumBase/pkg/storm/utils"
)

type ListStagePathsCmd struct {
	Json   bool     `short:"j" long:"json" help:"Output in JSON format"`
	Filter []string `short:"f" long:"filter" help:"Filter stage paths by a common root"`
}

func (cmd *ListStagePathsCmd) Run(suite core.SuiteContext) error {
	suite.Logger().Info("Listing stage paths")

	stagePaths := cmd.collect(suite.Scenarios())

	if !cmd.Json {
		for _, stagePath := range stagePaths {
			fmt.Println(stagePath)
		}
		return nil
	}

	data, err := stagesJson(stagePaths)
	if err != nil {
		return err
	}

	fmt.Println(string(data))
	return nil
}

// collect returns the sorted, unique stage paths that pass the filter.
func (cmd *ListStagePathsCmd) collect(scenarios []core.Scenario) []string {
	pathFilter := utils.NewPathFilterFromSlice(cmd.Filter, true)

	stagePaths := make([]string, 0)
	for _, scenario := range scenarios {
		for _, stagePath := range scenario.StagePaths() {
			if pathFilter.Match(stagePath) {
				stagePaths = append(stagePaths, stagePath)
			}
		}
	}

	slices.Sort(stagePaths)
	return slices.Compact(stagePaths)
}

func stagesJson(stagePaths []string) ([]byte, error) {
	tree := utils.NewPathTree()
	for _, stagePath := range stagePaths {
		tree.Add(stagePath)
	}

	data, err := json.MarshalIndent(tree, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal stage paths to JSON: %w", err)
	}

	return data, nil
}
