// Package remotelog uploads a finished session's log folder to remote
// storage when --with-s3_logging is set.
package remotelog

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/greenpythoncali/SeleniumBase/pkg/storm/settings"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Uploader stores objects under slash separated keys.
type Uploader interface {
	Upload(ctx context.Context, key string, body io.Reader, size int64) error
	Close() error
}

type Stats struct {
	Files int
	Bytes int64
}

func (s Stats) String() string {
	return fmt.Sprintf("%d files, %s", s.Files, humanize.Bytes(uint64(s.Bytes)))
}

// New opens an uploader for the configured backend. It returns nil when no
// backend is configured.
func New(ctx context.Context, cfg settings.RemoteLogs) (Uploader, error) {
	switch cfg.Kind {
	case settings.RemoteLogsNone:
		return nil, nil
	case settings.RemoteLogsSftp:
		return NewSftpUploader(ctx, cfg)
	case settings.RemoteLogsAzBlob:
		return NewBlobUploader(cfg)
	default:
		return nil, fmt.Errorf("unknown remote log storage '%s'", cfg.Kind)
	}
}

// Key joins the parts of an object key with slashes.
func Key(prefix, sessionId, relPath string) string {
	return path.Join(prefix, sessionId, filepath.ToSlash(relPath))
}

// UploadDir uploads every regular file below dir, keyed by
// prefix/sessionId/<path relative to dir>. It stops at the first failure.
func UploadDir(ctx context.Context, fs afero.Fs, dir, prefix, sessionId string, up Uploader, log logrus.FieldLogger) (Stats, error) {
	var stats Stats

	err := afero.Walk(fs, dir, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			return nil
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}

		key := Key(prefix, sessionId, rel)
		log.Debugf("Uploading '%s' to '%s'", p, key)

		file, err := fs.Open(p)
		if err != nil {
			return fmt.Errorf("failed to open '%s': %w", p, err)
		}
		defer file.Close()

		if err := up.Upload(ctx, key, file, info.Size()); err != nil {
			return fmt.Errorf("failed to upload '%s': %w", p, err)
		}

		stats.Files++
		stats.Bytes += info.Size()
		return nil
	})
	if err != nil {
		return stats, err
	}

	return stats, nil
}
