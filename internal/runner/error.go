package runner

import (
	"fmt"

	"github.com/greenpythoncali/SeleniumBase/pkg/storm/core"
)

type runnerError struct {
	err      error
	metadata core.TestRegistrantMetadata
}

func (re *runnerError) Unwrap() error {
	return re.err
}

type setupError struct {
	runnerError
}

func newSetupError(metadata core.TestRegistrantMetadata, err error) *setupError {
	return &setupError{
		runnerError: runnerError{
			err:      err,
			metadata: metadata,
		},
	}
}

func (se *setupError) Error() string {
	return fmt.Sprintf(
		"setup error in %s '%s': %v",
		se.metadata.RegistrantType().String(),
		se.metadata.Name(),
		se.err,
	)
}

type cleanupError struct {
	runnerError
}

func newCleanupError(metadata core.TestRegistrantMetadata, err error) *cleanupError {
	return &cleanupError{
		runnerError: runnerError{
			err:      err,
			metadata: metadata,
		},
	}
}

func (ce *cleanupError) Error() string {
	return fmt.Sprintf(
		"cleanup error in %s '%s': %v",
		ce.metadata.RegistrantType().String(),
		ce.metadata.Name(),
		ce.err,
	)
}
