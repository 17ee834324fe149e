package runner

import (
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/greenpythoncali/SeleniumBase/pkg/storm/core"
)

func parseExtraArguments(
	suite core.SuiteContext,
	argList []string,
	registrant interface {
		core.TestRegistrantMetadata
		core.Argumented
	},
) error {
	// If the first argument is '--', we skip it
	if len(argList) != 0 && argList[0] == "--" {
		argList = argList[1:]
	}

	name := registrant.Name()
	kind := registrant.RegistrantType()

	if registrant.Args() == nil {
		if len(argList) != 0 {
			return fmt.Errorf("%s '%s' does not take arguments, got %v", kind, name, argList)
		}
		return nil
	}

	parser, err := kong.New(
		registrant.Args(),
		kong.Name(name),
		kong.Description(fmt.Sprintf("Arguments for %s '%s' in the '%s' suite.",
			kind,
			name,
			suite.Name(),
		)),
		kong.ConfigureHelp(kong.HelpOptions{NoAppSummary: true}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser for %s '%s': %w", kind, name, err)
	}

	suite.Logger().Debugf("Parsing extra arguments for %s '%s': %v", kind, name, argList)

	_, err = parser.Parse(argList)
	if err != nil {
		return fmt.Errorf("failed to parse arguments for %s '%s': %w", kind, name, err)
	}

	return nil
}
