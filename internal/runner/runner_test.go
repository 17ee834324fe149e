package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"testing"

	"github.com/greenpythoncali/SeleniumBase/internal/artifacts"
	"github.com/greenpythoncali/SeleniumBase/internal/stormerror"
	"github.com/greenpythoncali/SeleniumBase/internal/testmgr"
	"github.com/greenpythoncali/SeleniumBase/pkg/storm/core"
	"github.com/greenpythoncali/SeleniumBase/pkg/storm/options"
	"github.com/greenpythoncali/SeleniumBase/pkg/storm/settings"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSession struct {
	fs           afero.Fs
	opts         *options.Options
	logDir       string
	configureErr error
	configured   int
	unconfigured int
	events       *[]string
}

func (s *fakeSession) ID() string                   { return "session" }
func (s *fakeSession) Options() *options.Options    { return s.opts }
func (s *fakeSession) Settings() *settings.Settings { return settings.Default() }
func (s *fakeSession) Fs() afero.Fs                 { return s.fs }
func (s *fakeSession) LogDir() string               { return s.logDir }

func (s *fakeSession) Configure() error {
	s.configured++
	*s.events = append(*s.events, "configure")
	return s.configureErr
}

func (s *fakeSession) Unconfigure() error {
	s.unconfigured++
	*s.events = append(*s.events, "unconfigure")
	return nil
}

type fakeSuite struct {
	log       *logrus.Logger
	session   *fakeSession
	listeners []core.TestListener
	events    []string
}

func newFakeSuite() *fakeSuite {
	log := logrus.New()
	log.SetOutput(io.Discard)

	s := &fakeSuite{log: log}
	s.session = &fakeSession{
		fs:     afero.NewMemMapFs(),
		opts:   options.Default(),
		events: &s.events,
	}
	return s
}

func (s *fakeSuite) Name() string                       { return "fake" }
func (s *fakeSuite) Logger() *logrus.Logger             { return s.log }
func (s *fakeSuite) Scenarios() []core.Scenario         { return nil }
func (s *fakeSuite) Scenario(string) core.Scenario      { return nil }
func (s *fakeSuite) Helpers() []core.Helper             { return nil }
func (s *fakeSuite) Helper(string) core.Helper          { return nil }
func (s *fakeSuite) TestListeners() []core.TestListener { return s.listeners }
func (s *fakeSuite) Session() core.Session              { return s.session }
func (s *fakeSuite) AzureDevops() bool                  { return false }
func (s *fakeSuite) Context() context.Context           { return context.Background() }

type scenarioArgs struct {
	Url string `help:"Page to open" default:"https://example.com"`
}

type fakeScenario struct {
	core.BaseScenario
	suite      *fakeSuite
	cases      []string
	funcs      map[string]core.TestCaseFunction
	setupErr   error
	cleanupErr error
	args       *scenarioArgs
}

func (s *fakeScenario) Name() string { return "login" }

func (s *fakeScenario) Args() any {
	if s.args == nil {
		return nil
	}
	return s.args
}

func (s *fakeScenario) Setup(core.SetupCleanupContext) error {
	s.suite.events = append(s.suite.events, "setup")
	return s.setupErr
}

func (s *fakeScenario) Cleanup(core.SetupCleanupContext) error {
	s.suite.events = append(s.suite.events, "cleanup")
	return s.cleanupErr
}

func (s *fakeScenario) RegisterTestCases(r core.TestRegistrar) error {
	for _, name := range s.cases {
		f, ok := s.funcs[name]
		if !ok {
			name := name
			f = func(core.TestCase) error {
				s.suite.events = append(s.suite.events, "run "+name)
				return nil
			}
		}
		r.RegisterTestCase(name, f)
	}
	return nil
}

type recordingListener struct {
	core.BaseTestListener
	events *[]string
}

func (l recordingListener) BeforeTest(info core.TestInfo) {
	*l.events = append(*l.events, fmt.Sprintf("before %s %s", info.Name(), info.Status()))
}

func (l recordingListener) AfterTest(info core.TestInfo) {
	*l.events = append(*l.events, fmt.Sprintf("after %s %s", info.Name(), info.Status()))
}

type panickingListener struct {
	core.BaseTestListener
}

func (panickingListener) BeforeTest(core.TestInfo) { panic("listener bug") }

func newFakeScenario(suite *fakeSuite, cases ...string) *fakeScenario {
	return &fakeScenario{
		suite: suite,
		cases: cases,
		funcs: map[string]core.TestCaseFunction{},
	}
}

func TestRunCatchPanic(t *testing.T) {
	t.Run("no panic", func(t *testing.T) {
		assert.NoError(t, runCatchPanic(func() error { return nil }))
	})

	t.Run("error", func(t *testing.T) {
		err := runCatchPanic(func() error { return fmt.Errorf("test error") })
		require.Error(t, err)

		var pe stormerror.PanicError
		assert.False(t, errors.As(err, &pe), "expected non-panic error")
		assert.Equal(t, "test error", err.Error())
	})

	t.Run("panic", func(t *testing.T) {
		err := runCatchPanic(func() error {
			panic("test panic")
		})

		var pe stormerror.PanicError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, "panic occurred: test panic", pe.Error())
		assert.Equal(t, "test panic", pe.Value())
		assert.NotEmpty(t, pe.Stack)
	})
}

func TestRegisterAndRunTestsLifecycle(t *testing.T) {
	suite := newFakeSuite()
	suite.listeners = []core.TestListener{recordingListener{events: &suite.events}}
	scenario := newFakeScenario(suite, "open", "submit")

	err := RegisterAndRunTests(suite, scenario, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"configure",
		"setup",
		"before open RUNNING",
		"run open",
		"after open PASS",
		"before submit RUNNING",
		"run submit",
		"after submit PASS",
		"cleanup",
		"unconfigure",
	}, suite.events)
}

func TestRegisterAndRunTestsFailureBails(t *testing.T) {
	suite := newFakeSuite()
	suite.listeners = []core.TestListener{recordingListener{events: &suite.events}}
	scenario := newFakeScenario(suite, "open", "submit", "logout")
	scenario.funcs["submit"] = func(tc core.TestCase) error {
		tc.Fail("button missing")
		return nil
	}

	err := RegisterAndRunTests(suite, scenario, nil)
	require.Error(t, err)

	assert.Contains(t, suite.events, "after submit FAIL")
	assert.NotContains(t, suite.events, "before logout RUNNING", "test cases after a failure do not run")
	assert.Equal(t, "unconfigure", suite.events[len(suite.events)-1])
	assert.Equal(t, 1, suite.session.unconfigured)
}

func TestRegisterAndRunTestsSetupError(t *testing.T) {
	suite := newFakeSuite()
	scenario := newFakeScenario(suite, "open")
	scenario.setupErr = errors.New("no browser")

	err := RegisterAndRunTests(suite, scenario, nil)

	var se *setupError
	require.ErrorAs(t, err, &se)
	assert.NotContains(t, suite.events, "run open")
	assert.Equal(t, 1, suite.session.unconfigured, "session is unconfigured after a setup failure")
}

func TestRegisterAndRunTestsConfigureError(t *testing.T) {
	suite := newFakeSuite()
	suite.session.configureErr = errors.New("read-only")
	scenario := newFakeScenario(suite, "open")

	err := RegisterAndRunTests(suite, scenario, nil)
	require.Error(t, err)

	assert.Equal(t, []string{"configure", "unconfigure"}, suite.events)
}

func TestRegisterAndRunTestsArguments(t *testing.T) {
	suite := newFakeSuite()
	scenario := newFakeScenario(suite, "open")
	scenario.args = &scenarioArgs{}

	require.NoError(t, RegisterAndRunTests(suite, scenario, []string{"--", "--url", "https://example.org/login"}))
	assert.Equal(t, "https://example.org/login", scenario.args.Url)

	assert.Error(t, RegisterAndRunTests(suite, scenario, []string{"--bogus"}))
}

func TestRegisterAndRunTestsRejectsUnexpectedArguments(t *testing.T) {
	suite := newFakeSuite()
	scenario := newFakeScenario(suite, "open")

	assert.Error(t, RegisterAndRunTests(suite, scenario, []string{"--url", "x"}))
	assert.Zero(t, suite.session.configured, "arguments are checked before the session is configured")
}

func TestExecuteTestCasesCleanupOrder(t *testing.T) {
	suite := newFakeSuite()
	scenario := newFakeScenario(suite, "first", "second")
	for _, name := range scenario.cases {
		name := name
		scenario.funcs[name] = func(tc core.TestCase) error {
			tc.SuiteCleanup(func() { suite.events = append(suite.events, "cleanup "+name) })
			return nil
		}
	}

	instance := &registrantInstance{Argumented: scenario, TestRegistrant: scenario}
	tm, err := testmgr.NewStormTestManager(suite, instance, scenario, func(string, string) core.ArtifactBroker { return nil })
	require.NoError(t, err)

	require.NoError(t, executeTestCases(suite, instance, tm))
	assert.Equal(t, []string{"setup", "cleanup second", "cleanup first", "cleanup"}, suite.events)
}

func TestExecuteTestCasesPanics(t *testing.T) {
	suite := newFakeSuite()
	suite.listeners = []core.TestListener{panickingListener{}}
	scenario := newFakeScenario(suite, "first", "second")
	scenario.funcs["first"] = func(core.TestCase) error { panic("nil element") }

	instance := &registrantInstance{Argumented: scenario, TestRegistrant: scenario}
	tm, err := testmgr.NewStormTestManager(suite, instance, scenario, func(string, string) core.ArtifactBroker { return nil })
	require.NoError(t, err)

	require.NoError(t, executeTestCases(suite, instance, tm))

	first, second := tm.TestCases()[0], tm.TestCases()[1]
	assert.Equal(t, core.TestCaseStatusError, first.Status())
	assert.Equal(t, "panic occurred: nil element", first.Reason())
	assert.Equal(t, core.TestCaseStatusNotRun, second.Status())
}

func TestExecuteTestCasesCleanupError(t *testing.T) {
	suite := newFakeSuite()
	scenario := newFakeScenario(suite, "first")
	scenario.cleanupErr = errors.New("browser hung")

	instance := &registrantInstance{Argumented: scenario, TestRegistrant: scenario}
	tm, err := testmgr.NewStormTestManager(suite, instance, scenario, func(string, string) core.ArtifactBroker { return nil })
	require.NoError(t, err)

	err = executeTestCases(suite, instance, tm)

	var ce *cleanupError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, core.TestCaseStatusPassed, tm.TestCases()[0].Status())
}

func TestRegistrantType(t *testing.T) {
	scenario := newFakeScenario(newFakeSuite(), "first")
	instance := &registrantInstance{Argumented: scenario, TestRegistrant: scenario}
	assert.Equal(t, core.RegistrantTypeScenario, instance.RegistrantType())
}

func TestRegisterAndRunTestsWritesArtifactsToSessionFs(t *testing.T) {
	suite := newFakeSuite()
	suite.session.logDir = "logs"
	suite.session.opts.WithTestingBase = true
	suite.session.opts.WithBasicTestInfo = true

	scenario := newFakeScenario(suite, "submit")
	scenario.funcs["submit"] = func(tc core.TestCase) error {
		tc.Fail("button missing")
		return nil
	}

	err := RegisterAndRunTests(suite, scenario, nil)
	require.Error(t, err)

	info, err := afero.ReadFile(suite.session.fs, filepath.Join("logs", "login", "submit", artifacts.BasicTestInfoFile))
	require.NoError(t, err)
	assert.Contains(t, string(info), "Reason: button missing")
}
