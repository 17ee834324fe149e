package config

import (
	"bytes"
	"testing"

	"github.com/greenpythoncali/SeleniumBase/pkg/storm/options"
	"github.com/greenpythoncali/SeleniumBase/pkg/storm/sessionconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestPrintSessionFormat(t *testing.T) {
	opts := options.Default()
	opts.Browser = options.BrowserChrome

	var buf bytes.Buffer
	require.NoError(t, (&ConfigCmd{}).print(&buf, opts))

	entries, err := sessionconfig.Parse(&buf)
	require.NoError(t, err)
	assert.Equal(t, sessionconfig.FromOptions(opts), entries)
}

func TestPrintYaml(t *testing.T) {
	data := "env=staging"
	opts := options.Default()
	opts.Data = &data
	opts.Headless = true

	var buf bytes.Buffer
	require.NoError(t, (&ConfigCmd{Yaml: true}).print(&buf, opts))

	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	mapping := doc.Content[0]

	var keys []string
	for i := 0; i < len(mapping.Content); i += 2 {
		keys = append(keys, mapping.Content[i].Value)
	}
	assert.Equal(t, sessionconfig.Keys(), keys, "keys keep the session file order")

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "firefox", decoded["browser"])
	assert.Equal(t, "env=staging", decoded["data"])
	assert.Equal(t, true, decoded["headless"])
	assert.Equal(t, false, decoded["with_selenium"])
	assert.Equal(t, "", decoded["demo_sleep"], "unset values are empty, not null")
	assert.Equal(t, "logs/", decoded["log_path"])
}

func TestPrintYamlUnsetValues(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&ConfigCmd{Yaml: true}).print(&buf, options.Default()))
	assert.NotContains(t, buf.String(), "null")

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "", decoded["data"])
	assert.Equal(t, "", decoded["demo_sleep"])
}
