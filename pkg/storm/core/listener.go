package core

import "time"

// TestInfo describes a test case to a TestListener.
type TestInfo interface {
	Named

	Registrant() TestRegistrantMetadata

	// Status is RUNNING in BeforeTest and final in AfterTest.
	Status() TestCaseStatus

	// Reason the test case did not pass, empty otherwise.
	Reason() string

	RunTime() time.Duration

	// Lines logged by the test case so far.
	LogLines() []string

	ArtifactBroker() ArtifactBroker

	// Returns the registrant's page capturer, if it implements one.
	PageCapturer() (PageCapturer, bool)
}

// TestListener is notified immediately before and after every test case. The
// runner calls every registered listener unconditionally, in registration
// order, from the goroutine that drives the test cases. Listeners that have
// nothing to do should embed BaseTestListener.
type TestListener interface {
	BeforeTest(TestInfo)
	AfterTest(TestInfo)
}

// BaseTestListener implements TestListener with no behavior.
type BaseTestListener struct{}

func (BaseTestListener) BeforeTest(TestInfo) {}
func (BaseTestListener) AfterTest(TestInfo)  {}

// PageCapturer is implemented by registrants that drive a browser, so that
// failure artifacts can include what the browser showed.
type PageCapturer interface {
	// Returns a PNG screenshot of the current page.
	CaptureScreenshot() ([]byte, error)

	// Returns the HTML source of the current page.
	PageSource() (string, error)
}
