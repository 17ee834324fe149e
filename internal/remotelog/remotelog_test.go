package remotelog

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/greenpythoncali/SeleniumBase/pkg/storm/settings"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memUploader struct {
	objects map[string]string
	failOn  string
	closed  bool
}

func newMemUploader() *memUploader {
	return &memUploader{objects: make(map[string]string)}
}

func (m *memUploader) Upload(ctx context.Context, key string, body io.Reader, size int64) error {
	if key == m.failOn {
		return errors.New("boom")
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}

	if int64(len(data)) != size {
		return errors.New("size mismatch")
	}

	m.objects[key] = string(data)
	return nil
}

func (m *memUploader) Close() error {
	m.closed = true
	return nil
}

func TestUploadDir(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "logs/run.log", []byte("run"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "logs/login/basic_test_info.txt", []byte("info"), 0o644))

	up := newMemUploader()
	stats, err := UploadDir(context.Background(), fs, "logs", "storm-logs", "1234", up, logrus.New())
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Files)
	assert.Equal(t, int64(7), stats.Bytes)
	assert.Equal(t, map[string]string{
		"storm-logs/1234/run.log":                   "run",
		"storm-logs/1234/login/basic_test_info.txt": "info",
	}, up.objects)
}

func TestUploadDirStopsOnError(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "logs/a.log", []byte("a"), 0o644))

	up := newMemUploader()
	up.failOn = "p/s/a.log"

	_, err := UploadDir(context.Background(), fs, "logs", "p", "s", up, logrus.New())
	assert.Error(t, err)
}

func TestUploadDirCancelled(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "logs/a.log", []byte("a"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := UploadDir(ctx, fs, "logs", "p", "s", newMemUploader(), logrus.New())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestKey(t *testing.T) {
	assert.Equal(t, "p/s/a/b.txt", Key("p", "s", filepath.Join("a", "b.txt")))
	assert.Equal(t, "s/b.txt", Key("", "s", "b.txt"))
}

func TestNew(t *testing.T) {
	up, err := New(context.Background(), settings.RemoteLogs{})
	require.NoError(t, err)
	assert.Nil(t, up)

	_, err = New(context.Background(), settings.RemoteLogs{Kind: "s3"})
	assert.Error(t, err)

	_, err = New(context.Background(), settings.RemoteLogs{
		Kind:           settings.RemoteLogsSftp,
		Address:        "127.0.0.1:22",
		User:           "storm",
		PrivateKeyPath: filepath.Join(t.TempDir(), "missing"),
	})
	assert.ErrorIs(t, err, os.ErrNotExist)
}
