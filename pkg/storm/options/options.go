// Package options declares the browser session flags accepted by every storm
// suite. The Options struct is embedded into the suite's global command line,
// so kong registers, defaults and validates all of them at parse time.
package options

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const DefaultLogPath = "logs/"

type Options struct {
	Browser  Browser `name:"browser" help:"Specifies the web browser to use. If you want to use Chrome, explicitly indicate that. Example: (--browser=chrome)" enum:"firefox,chrome,edge,ie,safari,opera,phantomjs,htmlunit,android,iphone,ipad" default:"firefox" group:"Browser session"`
	IsPytest bool    `name:"is_pytest" help:"Tells the browser base classes that they are being driven by this runner." default:"true" group:"Browser session"`
	Data     *string `name:"data" help:"Extra data to pass from the command line." group:"Browser session"`

	WithSelenium      bool        `name:"with-selenium" help:"Use if tests need to be run with a web browser." group:"Browser session"`
	WithTestingBase   bool        `name:"with-testing_base" help:"Use to save logs (screenshots) when tests fail." group:"Browser session"`
	LogPath           string      `name:"log_path" help:"Where the log files are saved." default:"logs/" group:"Browser session"`
	WithDbReporting   bool        `name:"with-db_reporting" help:"Use to record test data in the MySQL database." group:"Browser session"`
	DatabaseEnv       DatabaseEnv `name:"database_env" enum:"prod,qa,test" default:"test" hidden:""`
	WithS3Logging     bool        `name:"with-s3_logging" help:"Use to save test log files in remote storage." group:"Browser session"`
	WithScreenShots   bool        `name:"with-screen_shots" help:"Use to save screenshots on test failure." group:"Browser session"`
	WithBasicTestInfo bool        `name:"with-basic_test_info" help:"Use to save basic test info on test failure." group:"Browser session"`
	WithPageSource    bool        `name:"with-page_source" help:"Use to save page source on test failure." group:"Browser session"`

	Headless  bool    `name:"headless" help:"Using this makes the browser run headlessly, which is useful inside a Linux container." group:"Browser session"`
	DemoMode  bool    `name:"demo_mode" help:"Using this slows down the automation so that you can see what it's actually doing." group:"Browser session"`
	DemoSleep *string `name:"demo_sleep" help:"Setting this overrides the demo mode sleep time (in seconds) that happens after browser actions." group:"Browser session"`
}

// Default returns the options as they are after parsing an empty command
// line.
func Default() *Options {
	return &Options{
		Browser:     DefaultBrowser,
		IsPytest:    true,
		LogPath:     DefaultLogPath,
		DatabaseEnv: DefaultDatabaseEnv,
	}
}

// Validate checks the free-form values that kong cannot check by itself.
// Values are persisted one per line, so none of them may span lines.
func (o *Options) Validate() error {
	for flag, value := range map[string]string{
		"data":       o.DataValue(),
		"log_path":   o.LogPath,
		"demo_sleep": o.DemoSleepValue(),
	} {
		if strings.ContainsAny(value, "\r\n") {
			return fmt.Errorf("invalid --%s value %q: must not contain line breaks", flag, value)
		}
	}

	if o.DemoSleep == nil || *o.DemoSleep == "" {
		return nil
	}

	seconds, err := strconv.ParseFloat(*o.DemoSleep, 64)
	if err != nil {
		return fmt.Errorf("invalid --demo_sleep value '%s': %w", *o.DemoSleep, err)
	}

	if seconds < 0 {
		return fmt.Errorf("invalid --demo_sleep value '%s': must not be negative", *o.DemoSleep)
	}

	return nil
}

// DataValue returns the extra data, or an empty string when none was given.
func (o *Options) DataValue() string {
	if o.Data == nil {
		return ""
	}
	return *o.Data
}

// DemoSleepValue returns the demo sleep override, or an empty string when
// none was given.
func (o *Options) DemoSleepValue() string {
	if o.DemoSleep == nil {
		return ""
	}
	return *o.DemoSleep
}

// LogDir returns the log path without its trailing slash.
func (o *Options) LogDir() string {
	return strings.TrimSuffix(o.LogPath, "/")
}

// DemoDelay returns how long browser actions should pause for. It is zero
// outside of demo mode, the --demo_sleep override when one was given, and
// fallback otherwise.
func (o *Options) DemoDelay(fallback time.Duration) (time.Duration, error) {
	if !o.DemoMode {
		return 0, nil
	}

	if o.DemoSleepValue() == "" {
		return fallback, nil
	}

	seconds, err := strconv.ParseFloat(o.DemoSleepValue(), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid demo sleep '%s': %w", o.DemoSleepValue(), err)
	}

	return time.Duration(seconds * float64(time.Second)), nil
}

// CollectsFailureArtifacts returns true when any per-test failure artifact
// should be written to the log folder.
func (o *Options) CollectsFailureArtifacts() bool {
	return o.WithTestingBase && (o.WithBasicTestInfo || o.WithScreenShots || o.WithPageSource)
}
