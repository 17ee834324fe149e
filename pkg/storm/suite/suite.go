package suite

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"slices"

	"github.com/alecthomas/kong"
	"github.com/greenpythoncali/SeleniumBase/internal/cli"
	"github.com/greenpythoncali/SeleniumBase/internal/session"
	"github.com/greenpythoncali/SeleniumBase/pkg/storm/core"
	"github.com/greenpythoncali/SeleniumBase/pkg/storm/settings"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

type StormSuite struct {
	name        string
	scenarios   []core.Scenario
	helpers     []core.Helper
	listeners   []core.TestListener
	ctx         *kong.Context
	context     context.Context
	cancel      context.CancelFunc
	session     *session.Session
	azureDevops bool
	Log         *logrus.Logger
}

func CreateSuite(name string) StormSuite {
	name = fmt.Sprintf("storm-%s", name)
	ctx, global := cli.ParseCommandLine(name)

	logger := logrus.New()
	logger.SetLevel(global.Verbosity)
	logger.SetFormatter(&logrus.TextFormatter{
		ForceColors: true,
	})

	logger.Infof("Creating suite '%s'", name)

	s, err := newSuite(name, global, afero.NewOsFs(), logger)
	if err != nil {
		logger.WithError(err).Fatalf("Failed to create suite '%s'", name)
	}

	s.ctx = ctx
	return s
}

func newSuite(name string, global cli.GlobalOpts, fs afero.Fs, logger *logrus.Logger) (StormSuite, error) {
	cfg, err := settings.Load(fs, global.Settings)
	if err != nil {
		return StormSuite{}, err
	}

	runCtx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)

	opts := global.Options
	return StormSuite{
		name:        name,
		scenarios:   make([]core.Scenario, 0),
		helpers:     make([]core.Helper, 0),
		listeners:   make([]core.TestListener, 0),
		context:     runCtx,
		cancel:      cancel,
		session:     session.New(fs, logger, &opts, cfg, session.WithContext(runCtx)),
		azureDevops: global.AzureDevops,
		Log:         logger,
	}, nil
}

// Run the storm suite
func (s *StormSuite) Run() {
	if s.ctx == nil {
		s.Log.Fatalf("Suite '%s' not initialized", s.name)
	}
	defer s.cancel()

	s.Log.Infof("Running suite '%s' - %d scenarios, %d helpers collected.", s.name, len(s.scenarios), len(s.helpers))
	s.ctx.BindTo(s, (*core.SuiteContext)(nil))
	s.reportExitStatus(s.ctx.Run())
}

// Adds a scenario to the suite
func (s *StormSuite) AddScenario(newScenario core.Scenario) {
	if err := core.ValidateEntityName(newScenario.Name(), "scenario"); err != nil {
		s.Log.Fatal(err)
	}

	if slices.ContainsFunc(s.scenarios, func(scenario core.Scenario) bool {
		return scenario.Name() == newScenario.Name()
	}) {
		s.Log.Fatalf("Scenario '%s' already exists", newScenario.Name())
	}

	s.Log.Debugf("Registering scenario '%s'", newScenario.Name())
	s.Log.Tracef("Tags: %v", newScenario.Tags())
	s.Log.Tracef("Stage paths: %v", newScenario.StagePaths())
	s.scenarios = append(s.scenarios, newScenario)
}

// Adds a helper to the suite
func (s *StormSuite) AddHelper(helper core.Helper) {
	if err := core.ValidateEntityName(helper.Name(), "helper"); err != nil {
		s.Log.Fatal(err)
	}

	if slices.ContainsFunc(s.helpers, func(h core.Helper) bool {
		return h.Name() == helper.Name()
	}) {
		s.Log.Fatalf("Helper '%s' already exists", helper.Name())
	}

	s.Log.Debugf("Registering helper '%s'", helper.Name())
	s.helpers = append(s.helpers, helper)
}

// Adds a listener that is notified before and after every test case.
// Listeners are called in the order they were added.
func (s *StormSuite) AddListener(listener core.TestListener) {
	s.Log.Debugf("Registering test listener %T", listener)
	s.listeners = append(s.listeners, listener)
}

// Returns the name of the suite
func (s *StormSuite) Name() string {
	return s.name
}

// Returns a list of all scenarios
func (s *StormSuite) Scenarios() []core.Scenario {
	return s.scenarios
}

// Returns a scenario by name, will exit with an error if the scenario is not
// found.
func (s *StormSuite) Scenario(name string) core.Scenario {
	for _, scenario := range s.scenarios {
		if scenario.Name() == name {
			return scenario
		}
	}

	s.Log.Fatalf("Scenario '%s' not found", name)
	return nil
}

// Returns a list of all helpers
func (s *StormSuite) Helpers() []core.Helper {
	return s.helpers
}

// Returns a helper by name, will exit with an error if the helper is not
// found.
func (s *StormSuite) Helper(name string) core.Helper {
	for _, helper := range s.helpers {
		if helper.Name() == name {
			return helper
		}
	}

	s.Log.Fatalf("Helper '%s' not found", name)
	return nil
}

func (s *StormSuite) TestListeners() []core.TestListener {
	return s.listeners
}

func (s *StormSuite) Session() core.Session {
	return s.session
}

func (s *StormSuite) AzureDevops() bool {
	return s.azureDevops
}

// Returns a context that is cancelled on interrupt.
func (s *StormSuite) Context() context.Context {
	return s.context
}

func (s *StormSuite) Logger() *logrus.Logger {
	return s.Log
}
