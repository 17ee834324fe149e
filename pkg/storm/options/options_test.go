package options

import (
	"testing"
	"time"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCli struct {
	Options Options `embed:""`
}

func parse(t *testing.T, args ...string) (*Options, error) {
	t.Helper()

	cli := testCli{}
	parser, err := kong.New(&cli, kong.Name("test"), kong.Exit(func(int) {}))
	require.NoError(t, err)

	_, err = parser.Parse(args)
	return &cli.Options, err
}

func TestParseDefaults(t *testing.T) {
	opts, err := parse(t)
	require.NoError(t, err)

	assert.Equal(t, DefaultBrowser, opts.Browser)
	assert.True(t, opts.IsPytest)
	assert.Equal(t, DefaultLogPath, opts.LogPath)
	assert.Equal(t, DefaultDatabaseEnv, opts.DatabaseEnv)
	assert.False(t, opts.WithSelenium)
	assert.False(t, opts.WithTestingBase)
	assert.False(t, opts.DemoMode)
	assert.Equal(t, "", opts.DataValue())
	assert.Equal(t, "", opts.DemoSleepValue())
	assert.Equal(t, "logs", opts.LogDir())
}

func TestParseAllFlags(t *testing.T) {
	opts, err := parse(t,
		"--browser=chrome",
		"--data=extra",
		"--with-selenium",
		"--with-testing_base",
		"--log_path=out/logs/",
		"--with-db_reporting",
		"--database_env=qa",
		"--with-s3_logging",
		"--with-screen_shots",
		"--with-basic_test_info",
		"--with-page_source",
		"--headless",
		"--demo_mode",
		"--demo_sleep=0.5",
	)
	require.NoError(t, err)

	assert.Equal(t, BrowserChrome, opts.Browser)
	assert.Equal(t, "extra", opts.DataValue())
	assert.True(t, opts.WithSelenium)
	assert.True(t, opts.WithTestingBase)
	assert.Equal(t, "out/logs", opts.LogDir())
	assert.True(t, opts.WithDbReporting)
	assert.Equal(t, DatabaseEnvQa, opts.DatabaseEnv)
	assert.True(t, opts.WithS3Logging)
	assert.True(t, opts.WithScreenShots)
	assert.True(t, opts.WithBasicTestInfo)
	assert.True(t, opts.WithPageSource)
	assert.True(t, opts.Headless)
	assert.True(t, opts.DemoMode)
	assert.Equal(t, "0.5", opts.DemoSleepValue())
	assert.True(t, opts.CollectsFailureArtifacts())
}

func TestParseRejectsUnknownValues(t *testing.T) {
	_, err := parse(t, "--browser=netscape")
	assert.Error(t, err)

	_, err = parse(t, "--database_env=staging")
	assert.Error(t, err)
}

func TestValidateDemoSleep(t *testing.T) {
	tests := []struct {
		name    string
		value   *string
		wantErr bool
	}{
		{name: "unset", value: nil},
		{name: "empty", value: ptr("")},
		{name: "integer", value: ptr("2")},
		{name: "fraction", value: ptr("0.25")},
		{name: "not a number", value: ptr("slow"), wantErr: true},
		{name: "negative", value: ptr("-1"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := Default()
			opts.DemoSleep = tt.value
			err := opts.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateRejectsLineBreaks(t *testing.T) {
	tests := []struct {
		name string
		set  func(*Options)
	}{
		{name: "data newline", set: func(o *Options) { o.Data = ptr("line1\nline2") }},
		{name: "data carriage return", set: func(o *Options) { o.Data = ptr("line1\rline2") }},
		{name: "log path", set: func(o *Options) { o.LogPath = "logs\n/" }},
		{name: "demo sleep", set: func(o *Options) { o.DemoSleep = ptr("1\n") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := Default()
			tt.set(opts)
			assert.ErrorContains(t, opts.Validate(), "line breaks")
		})
	}

	opts := Default()
	opts.Data = ptr("key=value:::with separator")
	assert.NoError(t, opts.Validate())
}

func TestDemoDelay(t *testing.T) {
	opts := Default()

	delay, err := opts.DemoDelay(time.Second)
	require.NoError(t, err)
	assert.Zero(t, delay, "demo mode is off")

	opts.DemoMode = true
	delay, err = opts.DemoDelay(time.Second)
	require.NoError(t, err)
	assert.Equal(t, time.Second, delay)

	opts.DemoSleep = ptr("1.5")
	delay, err = opts.DemoDelay(time.Second)
	require.NoError(t, err)
	assert.Equal(t, 1500*time.Millisecond, delay)
}

func TestBrowserUnmarshalText(t *testing.T) {
	for _, b := range Browsers() {
		var got Browser
		require.NoError(t, got.UnmarshalText([]byte(b.String())))
		assert.Equal(t, b, got)
	}

	var b Browser
	assert.Error(t, b.UnmarshalText([]byte("lynx")))
	assert.True(t, BrowserIPad.IsMobile())
	assert.False(t, BrowserChrome.IsMobile())
}

func ptr(s string) *string {
	return &s
}
