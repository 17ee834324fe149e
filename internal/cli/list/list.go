package list

import (
	"fmt"
	"io"
	"os"

	"github.com/greenpythoncali/SeleniumBase/pkg/storm/core"
	"github.com/greenpythoncali/SeleniumBase/pkg/storm/options"
	"github.com/greenpythoncali/SeleniumBase/pkg/storm/sessionconfig"
)

type ListCmd struct {
	Scenarios  ListScenariosCmd  `cmd:"" help:"List available scenarios"`
	Tags       ListTagsCmd       `cmd:"" help:"List all tags"`
	StagePaths ListStagePathsCmd `cmd:"" help:"List all stage paths"`
	Helpers    ListHelpersCmd    `cmd:"" help:"List all helpers"`
	Browsers   ListBrowsersCmd   `cmd:"" help:"List supported browsers"`
	Keys       ListKeysCmd       `cmd:"" help:"List the keys written to the session file"`
}

type ListBrowsersCmd struct {
	Mobile bool `short:"m" help:"Only list mobile browsers"`
}

func (cmd *ListBrowsersCmd) Run(suite core.SuiteContext) error {
	suite.Logger().Info("Listing browsers")
	cmd.print(os.Stdout)
	return nil
}

func (cmd *ListBrowsersCmd) print(w io.Writer) {
	for _, browser := range options.Browsers() {
		if cmd.Mobile && !browser.IsMobile() {
			continue
		}
		fmt.Fprintln(w, browser)
	}
}

type ListKeysCmd struct{}

func (cmd *ListKeysCmd) Run(suite core.SuiteContext) error {
	suite.Logger().Infof("Listing keys of '%s'", sessionconfig.FileName)
	for _, key := range sessionconfig.Keys() {
		fmt.Println(key)
	}
	return nil
}
