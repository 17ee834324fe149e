// Package sessionconfig reads and writes the transient session file that
// exposes the resolved browser options to code that does not parse the
// command line itself.
//
// The file holds one `name:::value` line per option and only lives for the
// duration of a session.
package sessionconfig

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/greenpythoncali/SeleniumBase/pkg/storm/options"
	"github.com/spf13/afero"
)

const (
	// Name of the session file, relative to the working directory.
	FileName = ".pytest_config"

	Separator = ":::"
)

const (
	KeyWithSelenium      = "with_selenium"
	KeyBrowser           = "browser"
	KeyData              = "data"
	KeyWithTestingBase   = "with_testing_base"
	KeyWithDbReporting   = "with_db_reporting"
	KeyWithS3Logging     = "with_s3_logging"
	KeyWithScreenShots   = "with_screen_shots"
	KeyWithBasicTestInfo = "with_basic_test_info"
	KeyWithPageSource    = "with_page_source"
	KeyDatabaseEnv       = "database_env"
	KeyLogPath           = "log_path"
	KeyHeadless          = "headless"
	KeyDemoMode          = "demo_mode"
	KeyDemoSleep         = "demo_sleep"
)

// Keys returns the persisted keys in the order they are written.
func Keys() []string {
	return []string{
		KeyWithSelenium,
		KeyBrowser,
		KeyData,
		KeyWithTestingBase,
		KeyWithDbReporting,
		KeyWithS3Logging,
		KeyWithScreenShots,
		KeyWithBasicTestInfo,
		KeyWithPageSource,
		KeyDatabaseEnv,
		KeyLogPath,
		KeyHeadless,
		KeyDemoMode,
		KeyDemoSleep,
	}
}

var (
	ErrMissingSeparator = errors.New("missing '" + Separator + "' separator")
	ErrMultiline        = errors.New("value spans multiple lines")
)

type Entry struct {
	Key   string
	Value string
}

func (e Entry) String() string {
	return e.Key + Separator + e.Value
}

type Entries []Entry

// FromOptions flattens the options into entries, in file order. Unset
// optional values become empty strings.
func FromOptions(opts *options.Options) Entries {
	return Entries{
		{KeyWithSelenium, formatBool(opts.WithSelenium)},
		{KeyBrowser, opts.Browser.String()},
		{KeyData, opts.DataValue()},
		{KeyWithTestingBase, formatBool(opts.WithTestingBase)},
		{KeyWithDbReporting, formatBool(opts.WithDbReporting)},
		{KeyWithS3Logging, formatBool(opts.WithS3Logging)},
		{KeyWithScreenShots, formatBool(opts.WithScreenShots)},
		{KeyWithBasicTestInfo, formatBool(opts.WithBasicTestInfo)},
		{KeyWithPageSource, formatBool(opts.WithPageSource)},
		{KeyDatabaseEnv, opts.DatabaseEnv.String()},
		{KeyLogPath, opts.LogPath},
		{KeyHeadless, formatBool(opts.Headless)},
		{KeyDemoMode, formatBool(opts.DemoMode)},
		{KeyDemoSleep, opts.DemoSleepValue()},
	}
}

// Get returns the value of the first entry with the given key.
func (e Entries) Get(key string) (string, bool) {
	for _, entry := range e {
		if entry.Key == key {
			return entry.Value, true
		}
	}
	return "", false
}

// Map returns the entries as a map. Later duplicates win.
func (e Entries) Map() map[string]string {
	m := make(map[string]string, len(e))
	for _, entry := range e {
		m[entry.Key] = entry.Value
	}
	return m
}

// Options rebuilds browser options from the entries. Keys that are missing
// keep their command line default.
func (e Entries) Options() (*options.Options, error) {
	opts := options.Default()

	for _, entry := range e {
		var err error
		switch entry.Key {
		case KeyWithSelenium:
			opts.WithSelenium, err = parseBool(entry.Value)
		case KeyBrowser:
			err = opts.Browser.UnmarshalText([]byte(entry.Value))
		case KeyData:
			opts.Data = optionalString(entry.Value)
		case KeyWithTestingBase:
			opts.WithTestingBase, err = parseBool(entry.Value)
		case KeyWithDbReporting:
			opts.WithDbReporting, err = parseBool(entry.Value)
		case KeyWithS3Logging:
			opts.WithS3Logging, err = parseBool(entry.Value)
		case KeyWithScreenShots:
			opts.WithScreenShots, err = parseBool(entry.Value)
		case KeyWithBasicTestInfo:
			opts.WithBasicTestInfo, err = parseBool(entry.Value)
		case KeyWithPageSource:
			opts.WithPageSource, err = parseBool(entry.Value)
		case KeyDatabaseEnv:
			err = opts.DatabaseEnv.UnmarshalText([]byte(entry.Value))
		case KeyLogPath:
			opts.LogPath = entry.Value
		case KeyHeadless:
			opts.Headless, err = parseBool(entry.Value)
		case KeyDemoMode:
			opts.DemoMode, err = parseBool(entry.Value)
		case KeyDemoSleep:
			opts.DemoSleep = optionalString(entry.Value)
		}

		if err != nil {
			return nil, fmt.Errorf("invalid value for '%s': %w", entry.Key, err)
		}
	}

	return opts, nil
}

// Encode writes one line per entry. Nothing is written when an entry would
// span more than one line.
func (e Entries) Encode(w io.Writer) error {
	for _, entry := range e {
		if strings.ContainsAny(entry.Key+entry.Value, "\r\n") {
			return fmt.Errorf("%w: '%s'", ErrMultiline, entry.Key)
		}
	}

	for _, entry := range e {
		if _, err := fmt.Fprintln(w, entry.String()); err != nil {
			return err
		}
	}
	return nil
}

// Write creates or truncates the session file at path and writes the
// entries to it.
func Write(fs afero.Fs, path string, entries Entries) error {
	file, err := fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open session file '%s': %w", path, err)
	}

	err = entries.Encode(file)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("failed to write session file '%s': %w", path, err)
	}

	return nil
}

// Read parses the session file at path.
func Read(fs afero.Fs, path string) (Entries, error) {
	file, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open session file '%s': %w", path, err)
	}
	defer file.Close()

	entries, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse session file '%s': %w", path, err)
	}

	return entries, nil
}

// Parse reads `name:::value` lines, splitting each on the first separator.
// Empty lines are ignored.
func Parse(r io.Reader) (Entries, error) {
	var entries Entries

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "" {
			continue
		}

		key, value, found := strings.Cut(line, Separator)
		if !found {
			return nil, fmt.Errorf("line %d: %w", lineNo, ErrMissingSeparator)
		}

		entries = append(entries, Entry{Key: key, Value: value})
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

// Remove deletes the session file if it exists. A missing file is not an
// error.
func Remove(fs afero.Fs, path string) error {
	exists, err := afero.Exists(fs, path)
	if err != nil {
		return fmt.Errorf("failed to check session file '%s': %w", path, err)
	}

	if !exists {
		return nil
	}

	if err := fs.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to remove session file '%s': %w", path, err)
	}

	return nil
}

func formatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

func parseBool(s string) (bool, error) {
	switch s {
	case "True":
		return true, nil
	case "False":
		return false, nil
	default:
		return strconv.ParseBool(s)
	}
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
