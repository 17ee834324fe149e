package run

import (
	"github.com/greenpythoncali/SeleniumBase/internal/runner"
	"github.com/greenpythoncali/SeleniumBase/pkg/storm/core"
)

type ScenarioCmd struct {
	Scenario     string   `arg:"" name:"scenario" help:"Name of the scenario to run"`
	ScenarioArgs []string `arg:"" passthrough:"all" help:"Arguments to pass to the scenario, you may use '--' to force passthrough." optional:""`
}

func (cmd *ScenarioCmd) Run(suite core.SuiteContext) error {
	suite.Logger().Infof("Running scenario '%s'", cmd.Scenario)

	scenario := suite.Scenario(cmd.Scenario)

	if err := checkRequiredFiles(suite.Session().Fs(), scenario); err != nil {
		return err
	}

	return runner.RegisterAndRunTests(suite, scenario, cmd.ScenarioArgs)
}
