package core

import (
	"github.com/greenpythoncali/SeleniumBase/pkg/storm/options"
	"github.com/greenpythoncali/SeleniumBase/pkg/storm/settings"
	"github.com/spf13/afero"
)

// Session is the browser test session of a suite run. It is configured once
// before the first scenario or helper runs and unconfigured once at the end.
type Session interface {
	// Unique id of this session, used to tag uploaded logs.
	ID() string

	Options() *options.Options

	Settings() *settings.Settings

	// Filesystem the session file, the log folder and test case artifacts
	// live on.
	Fs() afero.Fs

	// Folder test case artifacts are written to, "" when logs are not kept.
	LogDir() string

	// Writes the session file and prepares the log folder.
	Configure() error

	// Uploads logs when requested and removes the session file. Safe to
	// call more than once.
	Unconfigure() error
}
