package core

import (
	"fmt"
	"regexp"
)

type RegistrantType int

const (
	RegistrantTypeScenario RegistrantType = iota
	RegistrantTypeHelper
)

func (t RegistrantType) String() string {
	switch t {
	case RegistrantTypeScenario:
		return "scenario"
	case RegistrantTypeHelper:
		return "helper"
	default:
		return "unknown"
	}
}

type TestRegistrant interface {
	Named
	RegisterTestCases(r TestRegistrar) error
}

type TestRegistrantMetadata interface {
	Named

	// Returns the type of the registrant.
	RegistrantType() RegistrantType
}

type TestCaseFunction = func(TestCase) error

type TestRegistrar interface {
	// Register a test case with the given name. Names must be unique within
	// the registrant and accepted by ValidateEntityName.
	RegisterTestCase(name string, runner TestCaseFunction)
}

var entityNamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// ValidateEntityName checks that name only contains letters, digits,
// underscores and dashes. kind is used in the error message.
func ValidateEntityName(name string, kind string) error {
	if !entityNamePattern.MatchString(name) {
		return fmt.Errorf("invalid %s name '%s': must match %s", kind, name, entityNamePattern.String())
	}
	return nil
}
