// Package browserdemo is an example suite built on the browser session. Its
// scenario loads pages over HTTP and reads the session options back from the
// session file, the way code that does not parse the command line would.
package browserdemo

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/greenpythoncali/SeleniumBase/pkg/storm"
	"github.com/greenpythoncali/SeleniumBase/pkg/storm/options"
	"github.com/greenpythoncali/SeleniumBase/pkg/storm/sessionconfig"
	"github.com/spf13/afero"
)

var ErrNoScreenshot = errors.New("screenshots need a browser driver")

type PageScenario struct {
	storm.BaseScenario

	args struct {
		Url         string `help:"Page to open" default:"https://example.com/"`
		ExpectTitle string `help:"Text the page title must contain" default:"Example Domain"`
	}

	fs        afero.Fs
	client    *http.Client
	demoSleep time.Duration
	opts      *options.Options
	page      *Page
}

// NewPageScenario creates the scenario. demoSleep is the pause used in demo
// mode when --demo_sleep is not given.
func NewPageScenario(fs afero.Fs, client *http.Client, demoSleep time.Duration) *PageScenario {
	return &PageScenario{
		fs:        fs,
		client:    client,
		demoSleep: demoSleep,
	}
}

func (s *PageScenario) Name() string {
	return "page-title"
}

func (s *PageScenario) Tags() []string {
	return []string{"smoke", "web"}
}

func (s *PageScenario) StagePaths() []string {
	return []string{"web/pages"}
}

func (s *PageScenario) Args() any {
	return &s.args
}

// Setup reads the options of the running session back from the session file.
func (s *PageScenario) Setup(ctx storm.SetupCleanupContext) error {
	entries, err := sessionconfig.Read(s.fs, sessionconfig.FileName)
	if err != nil {
		return err
	}

	s.opts, err = entries.Options()
	if err != nil {
		return err
	}

	ctx.Logger().
		WithField("browser", s.opts.Browser).
		WithField("headless", s.opts.Headless).
		Infof("Loaded session options from '%s'", sessionconfig.FileName)
	return nil
}

func (s *PageScenario) Cleanup(storm.SetupCleanupContext) error {
	s.page = nil
	return nil
}

func (s *PageScenario) RegisterTestCases(r storm.TestRegistrar) error {
	r.RegisterTestCase("check_browser", s.checkBrowser)
	r.RegisterTestCase("open_page", s.openPage)
	r.RegisterTestCase("check_title", s.checkTitle)
	return nil
}

func (s *PageScenario) checkBrowser(tc storm.TestCase) error {
	if !s.opts.WithSelenium {
		tc.Skip("--with-selenium is not set, pages are fetched without a browser")
	}

	tc.Logger().Infof("Pages are fetched as '%s'", userAgent(s.opts.Browser))
	return nil
}

func (s *PageScenario) openPage(tc storm.TestCase) error {
	page, err := fetchPage(tc.Context(), s.client, s.args.Url, userAgent(s.opts.Browser))
	if err != nil {
		tc.Error(err)
	}
	s.page = page

	tc.Logger().WithField("status", page.StatusCode).Infof("Opened '%s'", page.Url)
	if page.StatusCode != http.StatusOK {
		tc.Fail(fmt.Sprintf("'%s' returned %d", page.Url, page.StatusCode))
	}

	return s.demoPause(tc)
}

func (s *PageScenario) checkTitle(tc storm.TestCase) error {
	tc.ArtifactBroker().PublishLogData("page.html", []byte(s.page.Source))

	if !strings.Contains(s.page.Title, s.args.ExpectTitle) {
		tc.Fail(fmt.Sprintf("title '%s' does not contain '%s'", s.page.Title, s.args.ExpectTitle))
	}

	tc.Logger().Infof("Title is '%s'", s.page.Title)
	return nil
}

// demoPause waits like a browser action would in demo mode.
func (s *PageScenario) demoPause(tc storm.TestCase) error {
	delay, err := s.opts.DemoDelay(s.demoSleep)
	if err != nil || delay == 0 {
		return err
	}

	tc.Logger().Debugf("Demo mode, pausing for %s", delay)
	select {
	case <-time.After(delay):
	case <-tc.Context().Done():
	}
	return nil
}

func (s *PageScenario) CaptureScreenshot() ([]byte, error) {
	return nil, ErrNoScreenshot
}

func (s *PageScenario) PageSource() (string, error) {
	if s.page == nil {
		return "", errors.New("no page was opened")
	}
	return s.page.Source, nil
}
