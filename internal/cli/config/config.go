package config

import (
	"fmt"
	"io"
	"os"

	"github.com/greenpythoncali/SeleniumBase/pkg/storm/core"
	"github.com/greenpythoncali/SeleniumBase/pkg/storm/options"
	"github.com/greenpythoncali/SeleniumBase/pkg/storm/sessionconfig"
	"gopkg.in/yaml.v3"
)

type ConfigCmd struct {
	Yaml bool `short:"y" help:"Print as YAML instead of the session file format"`
}

func (cmd *ConfigCmd) Run(suite core.SuiteContext) error {
	suite.Logger().Debugf("Printing options of session '%s'", suite.Session().ID())
	return cmd.print(os.Stdout, suite.Session().Options())
}

func (cmd *ConfigCmd) print(w io.Writer, opts *options.Options) error {
	if !cmd.Yaml {
		return sessionconfig.FromOptions(opts).Encode(w)
	}

	node, err := optionsNode(opts)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return fmt.Errorf("failed to encode options: %w", err)
	}

	return enc.Close()
}

// optionsNode builds a mapping with the persisted keys in file order. Unset
// values are empty strings, as in the session file.
func optionsNode(opts *options.Options) (*yaml.Node, error) {
	values := map[string]any{
		sessionconfig.KeyWithSelenium:      opts.WithSelenium,
		sessionconfig.KeyBrowser:           opts.Browser.String(),
		sessionconfig.KeyData:              opts.DataValue(),
		sessionconfig.KeyWithTestingBase:   opts.WithTestingBase,
		sessionconfig.KeyWithDbReporting:   opts.WithDbReporting,
		sessionconfig.KeyWithS3Logging:     opts.WithS3Logging,
		sessionconfig.KeyWithScreenShots:   opts.WithScreenShots,
		sessionconfig.KeyWithBasicTestInfo: opts.WithBasicTestInfo,
		sessionconfig.KeyWithPageSource:    opts.WithPageSource,
		sessionconfig.KeyDatabaseEnv:       opts.DatabaseEnv.String(),
		sessionconfig.KeyLogPath:           opts.LogPath,
		sessionconfig.KeyHeadless:          opts.Headless,
		sessionconfig.KeyDemoMode:          opts.DemoMode,
		sessionconfig.KeyDemoSleep:         opts.DemoSleepValue(),
	}

	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, key := range sessionconfig.Keys() {
		var value yaml.Node
		if err := value.Encode(values[key]); err != nil {
			return nil, fmt.Errorf("failed to encode option '%s': %w", key, err)
		}

		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: key},
			&value,
		)
	}

	return node, nil
}
