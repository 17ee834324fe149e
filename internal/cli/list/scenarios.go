package list

import (
	"fmt"

	"github.com/greenpythoncali/SeleniumBase/pkg/storm/core"
	"github.com/greenpythoncali/SeleniumBase/pkg/storm/utils"
	"github.com/sirupsen/logrus"
)

type ListScenariosCmd struct {
	Tags               []string `short:"t" long:"tags" help:"Filter scenarios by tags"`
	StagePaths         []string `short:"s" long:"stage" help:"Filter scenarios by stage paths"`
	RecusiveStagePaths bool     `short:"r" long:"recursive" help:"Filter scenarios by stage paths recursively"`
}

func (cmd *ListScenariosCmd) Run(suite core.SuiteContext) error {
	log := suite.Logger()
	log.Info("Listing scenarios")

	selected := cmd.filter(suite.Scenarios(), log)
	for _, scenario := range selected {
		fmt.Println(scenario.Name())
	}

	log.Infof("Selected %d scenarios", len(selected))
	return nil
}

func (cmd *ListScenariosCmd) filter(scenarios []core.Scenario, log logrus.FieldLogger) []core.Scenario {
	tagFilter := utils.NewStringFilterFromSlice(cmd.Tags)
	stagePathFilter := utils.NewPathFilterFromSlice(cmd.StagePaths, cmd.RecusiveStagePaths)

	selected := make([]core.Scenario, 0)
	for _, scenario := range scenarios {
		if !tagFilter.MatchAny(scenario.Tags()) {
			log.Debugf("Skipping scenario '%s' because it does not match any tags", scenario.Name())
			continue
		}

		if !stagePathFilter.MatchAny(scenario.StagePaths()) {
			log.Debugf("Skipping scenario '%s' because it does not match any stage paths", scenario.Name())
			continue
		}

		selected = append(selected, scenario)
	}

	return selected
}
