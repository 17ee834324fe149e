package browserdemo

import (
	"github.com/greenpythoncali/SeleniumBase/pkg/storm"
	"github.com/greenpythoncali/SeleniumBase/pkg/storm/sessionconfig"
	"github.com/spf13/afero"
)

// SessionInfoHelper logs the session file and checks the log folder of the
// running session.
type SessionInfoHelper struct {
	storm.BaseHelper
	fs afero.Fs
}

func NewSessionInfoHelper(fs afero.Fs) *SessionInfoHelper {
	return &SessionInfoHelper{fs: fs}
}

func (h *SessionInfoHelper) Name() string {
	return "session-info"
}

func (h *SessionInfoHelper) RegisterTestCases(r storm.TestRegistrar) error {
	r.RegisterTestCase("show_session_file", h.showSessionFile)
	r.RegisterTestCase("check_log_folder", h.checkLogFolder)
	return nil
}

func (h *SessionInfoHelper) showSessionFile(tc storm.TestCase) error {
	entries, err := sessionconfig.Read(h.fs, sessionconfig.FileName)
	if err != nil {
		tc.FailFromError(err)
	}

	for _, entry := range entries {
		tc.Logger().Info(entry.String())
	}

	return nil
}

func (h *SessionInfoHelper) checkLogFolder(tc storm.TestCase) error {
	entries, err := sessionconfig.Read(h.fs, sessionconfig.FileName)
	if err != nil {
		return err
	}

	opts, err := entries.Options()
	if err != nil {
		return err
	}

	if !opts.WithTestingBase {
		tc.Skip("--with-testing_base is not set, there is no log folder")
	}

	isDir, err := afero.DirExists(h.fs, opts.LogDir())
	if err != nil {
		return err
	}

	if !isDir {
		tc.Fail("log folder '" + opts.LogDir() + "' does not exist")
	}

	tc.Logger().Infof("Log folder '%s' is ready", opts.LogDir())
	return nil
}
