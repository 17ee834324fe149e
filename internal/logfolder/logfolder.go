// Package logfolder prepares the folder test logs are written to. A folder
// left behind by a previous run is rotated into a sibling archived_logs/
// folder before a fresh, empty one is created.
package logfolder

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

const ArchiveDirName = "archived_logs"

type Manager struct {
	fs   afero.Fs
	log  logrus.FieldLogger
	keep bool
	now  func() time.Time
}

// Result describes what Prepare did.
type Result struct {
	// The log folder, without a trailing slash.
	Path string

	// Where the previous folder was moved to, empty when there was nothing
	// to rotate.
	ArchivePath string

	// Whether the archive still exists after Prepare returned.
	ArchiveKept bool

	// Size of the rotated folder.
	ArchivedFiles int
	ArchivedBytes int64
}

func (r Result) Rotated() bool {
	return r.ArchivePath != ""
}

// NewManager creates a manager working on fs. When keepArchives is false the
// rotated folder is deleted right after it has been moved away.
func NewManager(fs afero.Fs, log logrus.FieldLogger, keepArchives bool) *Manager {
	return &Manager{
		fs:   fs,
		log:  log,
		keep: keepArchives,
		now:  time.Now,
	}
}

// ArchiveRoot returns the archive folder for logPath: archived_logs/ next to
// the log folder itself.
func ArchiveRoot(logPath string) string {
	return filepath.Join(strings.TrimSuffix(logPath, "/"), "..", ArchiveDirName)
}

// Prepare makes sure logPath exists and is empty.
//
// If logPath does not exist it is created along with its parents. If it
// exists it is moved to archived_logs/logs_<unix seconds>, an empty logPath
// is recreated and the archive is deleted unless archives are kept. When the
// archive name is already taken, a _<n> suffix is added.
func (m *Manager) Prepare(logPath string) (Result, error) {
	logPath = strings.TrimSuffix(logPath, "/")
	result := Result{Path: logPath}

	if logPath == "" {
		return result, fmt.Errorf("log path is empty")
	}

	info, err := m.fs.Stat(logPath)
	if os.IsNotExist(err) {
		m.log.Debugf("Creating log folder '%s'", logPath)
		if err := m.fs.MkdirAll(logPath, 0o755); err != nil {
			return result, fmt.Errorf("failed to create log folder '%s': %w", logPath, err)
		}
		return result, nil
	} else if err != nil {
		return result, fmt.Errorf("failed to stat log folder '%s': %w", logPath, err)
	}

	if !info.IsDir() {
		return result, fmt.Errorf("log path '%s' exists and is not a directory", logPath)
	}

	result.ArchivedFiles, result.ArchivedBytes, err = m.usage(logPath)
	if err != nil {
		return result, err
	}

	archiveRoot := ArchiveRoot(logPath)
	if err := m.fs.MkdirAll(archiveRoot, 0o755); err != nil {
		return result, fmt.Errorf("failed to create archive folder '%s': %w", archiveRoot, err)
	}

	archivePath, err := m.freeArchivePath(archiveRoot)
	if err != nil {
		return result, err
	}

	if err := m.fs.Rename(logPath, archivePath); err != nil {
		return result, fmt.Errorf("failed to archive log folder '%s' to '%s': %w", logPath, archivePath, err)
	}
	result.ArchivePath = archivePath
	result.ArchiveKept = true

	m.log.
		WithField("files", result.ArchivedFiles).
		WithField("size", humanize.Bytes(uint64(result.ArchivedBytes))).
		Infof("Archived previous logs to '%s'", archivePath)

	if err := m.fs.MkdirAll(logPath, 0o755); err != nil {
		return result, fmt.Errorf("failed to recreate log folder '%s': %w", logPath, err)
	}

	if !m.keep {
		m.log.Debugf("Deleting archived logs '%s'", archivePath)
		if err := m.fs.RemoveAll(archivePath); err != nil {
			return result, fmt.Errorf("failed to delete archived logs '%s': %w", archivePath, err)
		}
		result.ArchiveKept = false
	}

	return result, nil
}

func (m *Manager) freeArchivePath(archiveRoot string) (string, error) {
	base := filepath.Join(archiveRoot, fmt.Sprintf("logs_%d", m.now().Unix()))

	candidate := base
	for i := 1; ; i++ {
		exists, err := afero.Exists(m.fs, candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check archive path '%s': %w", candidate, err)
		}

		if !exists {
			return candidate, nil
		}

		m.log.Debugf("Archive '%s' already exists", candidate)
		candidate = fmt.Sprintf("%s_%d", base, i)
	}
}

func (m *Manager) usage(dir string) (files int, size int64, err error) {
	err = afero.Walk(m.fs, dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if !info.IsDir() {
			files++
			size += info.Size()
		}
		return nil
	})
	if err != nil {
		return 0, 0, fmt.Errorf("failed to inspect log folder '%s': %w", dir, err)
	}

	return files, size, nil
}
