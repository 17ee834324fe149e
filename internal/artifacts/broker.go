// Package artifacts writes per test case files into the session's log
// folder.
package artifacts

import (
	"fmt"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Broker implements core.ArtifactBroker for a single test case.
type Broker struct {
	fs  afero.Fs
	dir string
	log logrus.FieldLogger
}

// NewBroker returns a broker that writes to logDir/testCase. An empty logDir
// disables publishing.
func NewBroker(fs afero.Fs, logDir string, testCase string, log logrus.FieldLogger) *Broker {
	dir := ""
	if logDir != "" {
		dir = filepath.Join(logDir, testCase)
	}

	return &Broker{
		fs:  fs,
		dir: dir,
		log: log.WithField("testCase", testCase),
	}
}

func (b *Broker) Dir() string {
	return b.dir
}

func (b *Broker) PublishLogFile(name string, srcPath string) {
	if b.dir == "" {
		return
	}

	data, err := afero.ReadFile(b.fs, srcPath)
	if err != nil {
		b.log.WithError(err).Warnf("Failed to read artifact '%s' from '%s'", name, srcPath)
		return
	}

	b.PublishLogData(name, data)
}

func (b *Broker) PublishLogData(name string, data []byte) {
	if b.dir == "" {
		return
	}

	if err := b.write(name, data); err != nil {
		b.log.WithError(err).Warnf("Failed to publish artifact '%s'", name)
		return
	}

	b.log.Debugf("Published artifact '%s'", name)
}

func (b *Broker) write(name string, data []byte) error {
	target := filepath.Join(b.dir, name)

	if err := b.fs.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("failed to create artifact folder: %w", err)
	}

	if err := afero.WriteFile(b.fs, target, data, 0o644); err != nil {
		return fmt.Errorf("failed to write '%s': %w", target, err)
	}

	return nil
}
