// Package session implements the browser session lifecycle of a suite run:
// publishing the resolved options to the session file, preparing the log
// folder, and cleaning both up at the end.
package session

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/greenpythoncali/SeleniumBase/internal/logfolder"
	"github.com/greenpythoncali/SeleniumBase/internal/remotelog"
	"github.com/greenpythoncali/SeleniumBase/pkg/storm/options"
	"github.com/greenpythoncali/SeleniumBase/pkg/storm/sessionconfig"
	"github.com/greenpythoncali/SeleniumBase/pkg/storm/settings"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// UploaderFactory opens the remote log storage. It may return a nil
// Uploader when no storage is configured.
type UploaderFactory func(ctx context.Context, cfg settings.RemoteLogs) (remotelog.Uploader, error)

type Session struct {
	id         string
	ctx        context.Context
	fs         afero.Fs
	log        *logrus.Logger
	opts       *options.Options
	settings   *settings.Settings
	configPath string
	uploaders  UploaderFactory

	configured   bool
	logFolder    *logfolder.Result
	unconfigured bool
}

type Option func(*Session)

// WithConfigPath overrides where the session file is written.
func WithConfigPath(path string) Option {
	return func(s *Session) {
		s.configPath = path
	}
}

// WithUploaderFactory overrides how the remote log storage is opened.
func WithUploaderFactory(f UploaderFactory) Option {
	return func(s *Session) {
		s.uploaders = f
	}
}

// WithContext sets the context used for remote uploads.
func WithContext(ctx context.Context) Option {
	return func(s *Session) {
		s.ctx = ctx
	}
}

func New(fs afero.Fs, log *logrus.Logger, opts *options.Options, cfg *settings.Settings, sessionOpts ...Option) *Session {
	s := &Session{
		id:         uuid.NewString(),
		ctx:        context.Background(),
		fs:         fs,
		log:        log,
		opts:       opts,
		settings:   cfg,
		configPath: sessionconfig.FileName,
		uploaders:  remotelog.New,
	}

	for _, o := range sessionOpts {
		o(s)
	}

	return s
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Options() *options.Options {
	return s.opts
}

func (s *Session) Settings() *settings.Settings {
	return s.settings
}

func (s *Session) Fs() afero.Fs {
	return s.fs
}

func (s *Session) ConfigPath() string {
	return s.configPath
}

// LogDir returns the prepared log folder, or "" when --with-testing_base is
// off or Configure has not run.
func (s *Session) LogDir() string {
	if s.logFolder == nil {
		return ""
	}
	return s.logFolder.Path
}

// LogFolder returns what happened to the log folder during Configure, or nil
// when it was not touched.
func (s *Session) LogFolder() *logfolder.Result {
	return s.logFolder
}

// Configure writes the session file, overwriting any previous one, and
// prepares the log folder when --with-testing_base is set. Any filesystem
// error is returned as is; there are no retries.
func (s *Session) Configure() error {
	if s.configured {
		return fmt.Errorf("session '%s' is already configured", s.id)
	}

	log := s.log.WithField("session", s.id)

	if err := s.opts.Validate(); err != nil {
		return err
	}

	log.Debugf("Writing session file '%s'", s.configPath)
	err := sessionconfig.Write(s.fs, s.configPath, sessionconfig.FromOptions(s.opts))
	if err != nil {
		return err
	}
	s.configured = true

	if err := s.setupLogFolder(log); err != nil {
		return err
	}

	log.WithField("browser", s.opts.Browser).
		WithField("headless", s.opts.Headless).
		WithField("testingBase", s.opts.WithTestingBase).
		Info("Browser session configured")

	return nil
}

func (s *Session) setupLogFolder(log logrus.FieldLogger) error {
	if !s.opts.WithTestingBase {
		return nil
	}

	manager := logfolder.NewManager(s.fs, log, s.settings.ArchiveExistingLogs)
	result, err := manager.Prepare(s.opts.LogPath)
	if err != nil {
		return err
	}

	s.logFolder = &result
	return nil
}

// Unconfigure uploads the log folder when --with-s3_logging is set and
// removes the session file. Upload failures are logged, never returned, so
// that the session file is always removed. Calling it again, or without a
// prior Configure, is a no-op apart from removing a stray session file.
func (s *Session) Unconfigure() error {
	log := s.log.WithField("session", s.id)

	if s.configured && !s.unconfigured {
		s.uploadLogs(log)
	}
	s.unconfigured = true

	if err := sessionconfig.Remove(s.fs, s.configPath); err != nil {
		return err
	}

	log.Debugf("Removed session file '%s'", s.configPath)
	return nil
}

func (s *Session) uploadLogs(log logrus.FieldLogger) {
	if !s.opts.WithS3Logging {
		return
	}

	if s.logFolder == nil {
		log.Warn("Remote logging requested but no log folder was prepared, use --with-testing_base")
		return
	}

	up, err := s.uploaders(s.ctx, s.settings.RemoteLogs)
	if err != nil {
		log.WithError(err).Error("Failed to open remote log storage")
		return
	}

	if up == nil {
		log.Warn("Remote logging requested but remote_logs is not configured")
		return
	}

	defer func() {
		if err := up.Close(); err != nil {
			log.WithError(err).Warn("Failed to close remote log storage")
		}
	}()

	stats, err := remotelog.UploadDir(s.ctx, s.fs, s.logFolder.Path, s.settings.RemoteLogs.Prefix, s.id, up, log)
	if err != nil {
		log.WithError(err).Errorf("Failed to upload logs after %s", stats)
		return
	}

	log.Infof("Uploaded %s to %s storage", stats, s.settings.RemoteLogs.Kind)
}
