package runner

import "github.com/greenpythoncali/SeleniumBase/pkg/storm/core"

type registrantInstance struct {
	core.Argumented
	core.TestRegistrant
}

func (ri *registrantInstance) RegistrantType() core.RegistrantType {
	if _, ok := ri.TestRegistrant.(core.Scenario); ok {
		return core.RegistrantTypeScenario
	}

	if _, ok := ri.TestRegistrant.(core.Helper); ok {
		return core.RegistrantTypeHelper
	}

	panic("unknown registrant type")
}

// setupCleanupContext is handed to Setup and Cleanup.
type setupCleanupContext struct {
	core.LoggerProvider
	core.TestRegistrantMetadata
}
