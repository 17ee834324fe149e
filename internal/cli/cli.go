package cli

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/greenpythoncali/SeleniumBase/internal/cli/config"
	"github.com/greenpythoncali/SeleniumBase/internal/cli/list"
	"github.com/greenpythoncali/SeleniumBase/internal/cli/run"
	"github.com/greenpythoncali/SeleniumBase/pkg/storm/options"
	"github.com/greenpythoncali/SeleniumBase/pkg/storm/settings"
	log "github.com/sirupsen/logrus"
)

type GlobalOpts struct {
	Verbosity   log.Level `short:"v" help:"Set log level" default:"info"`
	AzureDevops bool      `short:"a" help:"Enable Azure DevOps integration" env:"TF_BUILD"`
	Settings    string    `help:"Settings file, ignored when it does not exist" default:"${settings_file}"`

	Options options.Options `embed:""`
}

type cli struct {
	Global GlobalOpts       `embed:""`
	List   list.ListCmd     `cmd:"" help:"List resources"`
	Run    run.ScenarioCmd  `cmd:"" help:"Run a specific scenario"`
	Helper run.HelperCmd    `cmd:"" help:"Run a specific helper"`
	Config config.ConfigCmd `cmd:"" help:"Print the browser session options as they would be persisted"`
}

func ParseCommandLine(name string) (*kong.Context, GlobalOpts) {
	// Force display help if no arguments are provided
	if len(os.Args) < 2 {
		os.Args = append(os.Args, "--help")
	}

	cli := cli{}
	ctx := kong.Parse(&cli,
		kong.Name(name),
		kong.Vars{"settings_file": settings.DefaultFile},
	)

	ctx.FatalIfErrorf(cli.Global.Options.Validate())

	return ctx, cli.Global
}
