// Package settings holds the persistent, non command line settings of the
// browser session: values that are set once per machine or pipeline rather
// than per run.
//
// Settings are read from an optional YAML file and can be overridden through
// STORM_* environment variables, e.g. STORM_ARCHIVE_EXISTING_LOGS=true or
// STORM_REMOTE_LOGS_KIND=sftp.
package settings

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

const (
	DefaultFile      = "storm-settings.yaml"
	DefaultDemoSleep = time.Second
	EnvPrefix        = "STORM"
)

type RemoteLogsKind string

const (
	RemoteLogsNone   RemoteLogsKind = ""
	RemoteLogsSftp   RemoteLogsKind = "sftp"
	RemoteLogsAzBlob RemoteLogsKind = "azblob"
)

type Settings struct {
	// Keep the previous run's logs under archived_logs/ instead of deleting
	// them once the log folder has been rotated.
	ArchiveExistingLogs bool `mapstructure:"archive_existing_logs" yaml:"archive_existing_logs"`

	// Pause after browser actions in demo mode, unless --demo_sleep is given.
	DemoSleep time.Duration `mapstructure:"demo_sleep" yaml:"demo_sleep"`

	RemoteLogs RemoteLogs `mapstructure:"remote_logs" yaml:"remote_logs"`
}

// Where --with-s3_logging uploads the log folder to.
type RemoteLogs struct {
	Kind RemoteLogsKind `mapstructure:"kind" yaml:"kind"`

	// Prefix prepended to every uploaded object key.
	Prefix string `mapstructure:"prefix" yaml:"prefix"`

	// sftp
	Address        string `mapstructure:"address" yaml:"address"`
	User           string `mapstructure:"user" yaml:"user"`
	PrivateKeyPath string `mapstructure:"private_key_path" yaml:"private_key_path"`
	KnownHostsPath string `mapstructure:"known_hosts_path" yaml:"known_hosts_path"`

	// azblob
	AccountUrl string `mapstructure:"account_url" yaml:"account_url"`
	Container  string `mapstructure:"container" yaml:"container"`

	Timeout time.Duration `mapstructure:"timeout" yaml:"timeout"`
}

func Default() *Settings {
	return &Settings{
		ArchiveExistingLogs: false,
		DemoSleep:           DefaultDemoSleep,
		RemoteLogs: RemoteLogs{
			Prefix:  "storm-logs",
			Timeout: 30 * time.Second,
		},
	}
}

// Validate checks that the selected remote log backend is fully configured.
func (s *Settings) Validate() error {
	if s.DemoSleep < 0 {
		return fmt.Errorf("demo_sleep must not be negative")
	}

	r := s.RemoteLogs
	switch r.Kind {
	case RemoteLogsNone:
		return nil
	case RemoteLogsSftp:
		if r.Address == "" || r.User == "" || r.PrivateKeyPath == "" {
			return fmt.Errorf("remote_logs: sftp requires address, user and private_key_path")
		}
	case RemoteLogsAzBlob:
		if r.AccountUrl == "" || r.Container == "" {
			return fmt.Errorf("remote_logs: azblob requires account_url and container")
		}
	default:
		return fmt.Errorf("remote_logs: unknown kind '%s'", r.Kind)
	}

	return nil
}

// Load reads the settings file at path on fs, if it exists, and applies
// environment overrides on top of the defaults. A missing file is not an
// error.
func Load(fs afero.Fs, path string) (*Settings, error) {
	v := viper.New()
	v.SetFs(fs)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v, Default())

	if path != "" {
		exists, err := afero.Exists(fs, path)
		if err != nil {
			return nil, fmt.Errorf("failed to check settings file '%s': %w", path, err)
		}

		if exists {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read settings file '%s': %w", path, err)
			}
		}
	}

	settings := &Settings{}
	if err := v.UnmarshalExact(settings); err != nil {
		return nil, fmt.Errorf("could not unmarshal settings: %w", err)
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}

	return settings, nil
}

// Every key needs a default so that AutomaticEnv can see it during
// unmarshalling.
func setDefaults(v *viper.Viper, d *Settings) {
	v.SetDefault("archive_existing_logs", d.ArchiveExistingLogs)
	v.SetDefault("demo_sleep", d.DemoSleep)
	v.SetDefault("remote_logs.kind", string(d.RemoteLogs.Kind))
	v.SetDefault("remote_logs.prefix", d.RemoteLogs.Prefix)
	v.SetDefault("remote_logs.address", d.RemoteLogs.Address)
	v.SetDefault("remote_logs.user", d.RemoteLogs.User)
	v.SetDefault("remote_logs.private_key_path", d.RemoteLogs.PrivateKeyPath)
	v.SetDefault("remote_logs.known_hosts_path", d.RemoteLogs.KnownHostsPath)
	v.SetDefault("remote_logs.account_url", d.RemoteLogs.AccountUrl)
	v.SetDefault("remote_logs.container", d.RemoteLogs.Container)
	v.SetDefault("remote_logs.timeout", d.RemoteLogs.Timeout)
}
