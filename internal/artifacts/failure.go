package artifacts

import (
	"fmt"
	"strings"
	"time"

	"github.com/greenpythoncali/SeleniumBase/pkg/storm/core"
	"github.com/greenpythoncali/SeleniumBase/pkg/storm/options"
	"github.com/greenpythoncali/SeleniumBase/pkg/storm/utils"
	"github.com/sirupsen/logrus"
)

const (
	BasicTestInfoFile = "basic_test_info.txt"
	ScreenshotFile    = "screenshot.png"
	PageSourceFile    = "page_source.html"
	TestLogFile       = "test.log"
)

// FailureListener saves what is known about a test case that failed or
// errored into its log folder, as selected by the --with-* flags.
type FailureListener struct {
	core.BaseTestListener
	opts *options.Options
	log  logrus.FieldLogger
	now  func() time.Time
}

func NewFailureListener(opts *options.Options, log logrus.FieldLogger) *FailureListener {
	return &FailureListener{
		opts: opts,
		log:  log,
		now:  time.Now,
	}
}

func (l *FailureListener) AfterTest(info core.TestInfo) {
	if !l.opts.WithTestingBase || !info.Status().IsBad() {
		return
	}

	broker := info.ArtifactBroker()
	if broker.Dir() == "" {
		return
	}

	l.log.Debugf("Saving failure artifacts for '%s' to '%s'", info.Name(), broker.Dir())

	broker.PublishLogData(TestLogFile, []byte(utils.StripAnsi(strings.Join(info.LogLines(), "\n"))))

	if l.opts.WithBasicTestInfo {
		broker.PublishLogData(BasicTestInfoFile, []byte(l.basicTestInfo(info)))
	}

	if !l.opts.WithScreenShots && !l.opts.WithPageSource {
		return
	}

	capturer, ok := info.PageCapturer()
	if !ok {
		l.log.Debugf("'%s' does not capture pages, skipping screenshot and page source", info.Registrant().Name())
		return
	}

	if l.opts.WithScreenShots {
		png, err := capturer.CaptureScreenshot()
		if err != nil {
			l.log.WithError(err).Warnf("Failed to capture screenshot for '%s'", info.Name())
		} else {
			broker.PublishLogData(ScreenshotFile, png)
		}
	}

	if l.opts.WithPageSource {
		source, err := capturer.PageSource()
		if err != nil {
			l.log.WithError(err).Warnf("Failed to capture page source for '%s'", info.Name())
		} else {
			broker.PublishLogData(PageSourceFile, []byte(source))
		}
	}
}

func (l *FailureListener) basicTestInfo(info core.TestInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s.%s\n", info.Registrant().RegistrantType(), info.Registrant().Name(), info.Name())
	fmt.Fprintf(&b, "Status: %s\n", info.Status())
	fmt.Fprintf(&b, "Browser: %s\n", l.opts.Browser)
	fmt.Fprintf(&b, "Headless: %t\n", l.opts.Headless)
	fmt.Fprintf(&b, "Run time: %s\n", info.RunTime().Round(time.Millisecond))
	fmt.Fprintf(&b, "Timestamp: %d\n", l.now().Unix())
	if reason := info.Reason(); reason != "" {
		fmt.Fprintf(&b, "Reason: %s\n", reason)
	}
	return b.String()
}
