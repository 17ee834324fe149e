package run

import (
	"fmt"
	"strings"

	"github.com/greenpythoncali/SeleniumBase/pkg/storm/core"
	"github.com/spf13/afero"
)

// checkRequiredFiles fails when any file the scenario declares as required is
// missing from fs.
func checkRequiredFiles(fs afero.Fs, scenario core.Scenario) error {
	var missing []string
	for _, path := range scenario.RequiredFiles() {
		exists, err := afero.Exists(fs, path)
		if err != nil {
			return fmt.Errorf("failed to check required file '%s': %w", path, err)
		}

		if !exists {
			missing = append(missing, path)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("scenario '%s' is missing required files: %s", scenario.Name(), strings.Join(missing, ", "))
	}

	return nil
}
