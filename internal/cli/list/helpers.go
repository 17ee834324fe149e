package list

import (
	"fmt"

	"github.com/greenpythoncali/SeleniumBase/pkg/storm/core"
)

type ListHelpersCmd struct{}

func (cmd *ListHelpersCmd) Run(suite core.SuiteContext) error {
	suite.Logger().Info("Listing all helpers")

	for _, helper := range suite.Helpers() {
		fmt.Println(helper.Name())
	}

	return nil
}
