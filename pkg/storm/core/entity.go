package core

import "github.com/sirupsen/logrus"

// Named is implemented by everything that is looked up by name: scenarios,
// helpers, test cases and the suite itself.
type Named interface {
	Name() string
}

// Argumented is implemented by registrants that accept extra command line
// arguments after their name. Args returns a pointer to a kong-annotated
// struct, or nil when there is nothing to parse.
type Argumented interface {
	Args() any
}

type LoggerProvider interface {
	Logger() *logrus.Logger
}

// SetupCleanupContext is handed to Setup and Cleanup.
type SetupCleanupContext interface {
	LoggerProvider
	TestRegistrantMetadata
}

// SetupCleanup is optionally implemented by registrants that need to prepare
// state before their first test case and tear it down after the last one.
// Cleanup runs even when a test case failed.
type SetupCleanup interface {
	Setup(SetupCleanupContext) error
	Cleanup(SetupCleanupContext) error
}
