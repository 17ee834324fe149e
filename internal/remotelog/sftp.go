package remotelog

import (
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"path"

	"github.com/greenpythoncali/SeleniumBase/pkg/storm/settings"
	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"
)

type sftpUploader struct {
	ssh    *ssh.Client
	client *sftp.Client
}

// NewSftpUploader connects to cfg.Address with the private key at
// cfg.PrivateKeyPath. Host keys are checked against cfg.KnownHostsPath when
// it is set.
func NewSftpUploader(ctx context.Context, cfg settings.RemoteLogs) (Uploader, error) {
	clientConfig, err := sshClientConfig(cfg)
	if err != nil {
		return nil, err
	}

	dialer := net.Dialer{Timeout: cfg.Timeout}
	netConn, err := dialer.DialContext(ctx, "tcp", cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("failed to dial SSH server '%s': %w", cfg.Address, err)
	}

	c, chans, reqs, err := ssh.NewClientConn(netConn, cfg.Address, clientConfig)
	if err != nil {
		netConn.Close()
		return nil, fmt.Errorf("failed to open SSH connection to '%s': %w", cfg.Address, err)
	}
	conn := ssh.NewClient(c, chans, reqs)

	client, err := sftp.NewClient(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to start SFTP session on '%s': %w", cfg.Address, err)
	}

	return &sftpUploader{ssh: conn, client: client}, nil
}

func sshClientConfig(cfg settings.RemoteLogs) (*ssh.ClientConfig, error) {
	privateKey, err := os.ReadFile(cfg.PrivateKeyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read SSH key file '%s': %w", cfg.PrivateKeyPath, err)
	}

	signer, err := ssh.ParsePrivateKey(privateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SSH key: %w", err)
	}

	hostKeyCallback := ssh.InsecureIgnoreHostKey()
	if cfg.KnownHostsPath != "" {
		hostKeyCallback, err = knownhosts.New(cfg.KnownHostsPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load known hosts '%s': %w", cfg.KnownHostsPath, err)
		}
	}

	return &ssh.ClientConfig{
		User: cfg.User,
		Auth: []ssh.AuthMethod{
			ssh.PublicKeys(signer),
		},
		HostKeyCallback: hostKeyCallback,
		Timeout:         cfg.Timeout,
	}, nil
}

func (u *sftpUploader) Upload(ctx context.Context, key string, body io.Reader, size int64) error {
	if err := u.client.MkdirAll(path.Dir(key)); err != nil {
		return fmt.Errorf("failed to create remote folder '%s': %w", path.Dir(key), err)
	}

	remote, err := u.client.Create(key)
	if err != nil {
		return fmt.Errorf("failed to create remote file '%s': %w", key, err)
	}

	written, err := remote.ReadFrom(body)
	if closeErr := remote.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("failed to write remote file '%s': %w", key, err)
	}

	if written != size {
		return fmt.Errorf("short write to '%s': wrote %d of %d bytes", key, written, size)
	}

	return nil
}

func (u *sftpUploader) Close() error {
	if err := u.client.Close(); err != nil {
		return fmt.Errorf("failed to close SFTP client: %w", err)
	}

	if err := u.ssh.Close(); err != nil {
		return fmt.Errorf("failed to close SSH connection: %w", err)
	}

	return nil
}
