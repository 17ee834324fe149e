package list

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/greenpythoncali/SeleniumBase/pkg/storm/core"
	"github.com/greenpythoncali/SeleniumBase/pkg/storm/options"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scenario struct {
	core.BaseScenario
	name   string
	tags   []string
	stages []string
}

func (s scenario) Name() string                               { return s.name }
func (s scenario) Tags() []string                             { return s.tags }
func (s scenario) StagePaths() []string                       { return s.stages }
func (s scenario) RegisterTestCases(core.TestRegistrar) error { return nil }

var scenarios = []core.Scenario{
	scenario{name: "login", tags: []string{"smoke", "auth"}, stages: []string{"web/auth"}},
	scenario{name: "checkout", tags: []string{"cart"}, stages: []string{"web/shop/cart", "mobile/shop"}},
	scenario{name: "search", tags: []string{"smoke"}, stages: []string{"web/shop"}},
}

func names(selected []core.Scenario) []string {
	out := make([]string, 0, len(selected))
	for _, s := range selected {
		out = append(out, s.Name())
	}
	return out
}

func TestFilterScenarios(t *testing.T) {
	tests := []struct {
		name string
		cmd  ListScenariosCmd
		want []string
	}{
		{name: "no filter", cmd: ListScenariosCmd{}, want: []string{"login", "checkout", "search"}},
		{name: "tag", cmd: ListScenariosCmd{Tags: []string{"smoke"}}, want: []string{"login", "search"}},
		{name: "stage", cmd: ListScenariosCmd{StagePaths: []string{"web/shop"}}, want: []string{"search"}},
		{name: "stage recursive", cmd: ListScenariosCmd{StagePaths: []string{"web/shop"}, RecusiveStagePaths: true}, want: []string{"checkout", "search"}},
		{name: "tag and stage", cmd: ListScenariosCmd{Tags: []string{"smoke"}, StagePaths: []string{"web"}, RecusiveStagePaths: true}, want: []string{"login", "search"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, names(tt.cmd.filter(scenarios, logrus.New())))
		})
	}
}

func TestAllTags(t *testing.T) {
	assert.Equal(t, []string{"auth", "cart", "smoke"}, allTags(scenarios))
}

func TestStagePaths(t *testing.T) {
	cmd := ListStagePathsCmd{}
	assert.Equal(t, []string{"mobile/shop", "web/auth", "web/shop", "web/shop/cart"}, cmd.collect(scenarios))

	cmd.Filter = []string{"web/shop"}
	paths := cmd.collect(scenarios)
	assert.Equal(t, []string{"web/shop", "web/shop/cart"}, paths)

	data, err := stagesJson(paths)
	require.NoError(t, err)

	var tree map[string]any
	require.NoError(t, json.Unmarshal(data, &tree))
	assert.Equal(t, map[string]any{
		"web": map[string]any{
			"shop": map[string]any{
				"cart": map[string]any{},
			},
		},
	}, tree)
}

func TestListBrowsers(t *testing.T) {
	var all bytes.Buffer
	(&ListBrowsersCmd{}).print(&all)
	lines := strings.Split(strings.TrimSpace(all.String()), "\n")
	assert.Len(t, lines, len(options.Browsers()))
	assert.Equal(t, "firefox", lines[0])

	var mobile bytes.Buffer
	(&ListBrowsersCmd{Mobile: true}).print(&mobile)
	assert.Equal(t, "android\niphone\nipad\n", mobile.String())
}
