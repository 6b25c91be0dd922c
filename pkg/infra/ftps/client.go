package ftps

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/jlaffaye/ftp"
	"github.com/m-mizutani/goerr/v2"

	"github.com/Infraviored/OctoPrint-BambuPrinter/pkg/domain/interfaces"
	"github.com/Infraviored/OctoPrint-BambuPrinter/pkg/domain/model"
)

const (
	// DefaultPort is the implicit-TLS FTPS port the printer listens on
	DefaultPort = 990

	// ftpsUser is the fixed account of the printer's embedded FTPS server.
	// The LAN access code is the password.
	ftpsUser = "bblp"

	dialTimeout = 10 * time.Second
)

// Client dials the FTPS server that Bambu printers expose on the local
// network. Only the dial carries a timeout: once a session is open, a
// stalled transfer blocks until the server drops the control connection.
type Client struct {
	host       string
	accessCode string
	port       int
}

// Option configures a Client
type Option func(*Client)

// WithPort overrides the FTPS port. Zero and negative values keep the
// default.
func WithPort(port int) Option {
	return func(c *Client) {
		if port > 0 {
			c.port = port
		}
	}
}

// New creates a new FTPS client for the printer at host
func New(host, accessCode string, opts ...Option) *Client {
	c := &Client{
		host:       host,
		accessCode: accessCode,
		port:       DefaultPort,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Connect dials the printer and logs in with the access code
func (c *Client) Connect(ctx context.Context) (interfaces.PrinterConnection, error) {
	addr := fmt.Sprintf("%s:%d", c.host, c.port)

	conn, err := ftp.Dial(addr,
		ftp.DialWithContext(ctx),
		ftp.DialWithTimeout(dialTimeout),
		// The printer presents a self-signed certificate
		ftp.DialWithTLS(&tls.Config{InsecureSkipVerify: true}),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to dial printer", goerr.V("addr", addr))
	}

	if err := conn.Login(ftpsUser, c.accessCode); err != nil {
		_ = conn.Quit()
		return nil, goerr.Wrap(err, "printer rejected the access code", goerr.V("addr", addr))
	}

	return &connection{conn: conn}, nil
}

type connection struct {
	conn *ftp.ServerConn
}

// ListFiles lists the immediate children of folder, optionally filtered by
// a name suffix
func (c *connection) ListFiles(ctx context.Context, folder, ext string) ([]model.RemoteFile, error) {
	entries, err := c.conn.List(folder)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list folder", goerr.V("folder", folder))
	}

	var files []model.RemoteFile
	for _, entry := range entries {
		if entry.Name == "." || entry.Name == ".." {
			continue
		}
		if ext != "" && !strings.HasSuffix(strings.ToLower(entry.Name), strings.ToLower(ext)) {
			continue
		}
		files = append(files, model.RemoteFile{
			Name:    entry.Name,
			Path:    joinRemote(folder, entry.Name),
			Size:    int64(entry.Size),
			ModTime: entry.Time,
		})
	}

	return files, nil
}

// Download streams the remote file at remotePath into w
func (c *connection) Download(ctx context.Context, remotePath string, w io.Writer) error {
	resp, err := c.conn.Retr(remotePath)
	if err != nil {
		return goerr.Wrap(err, "failed to retrieve file", goerr.V("path", remotePath))
	}
	defer resp.Close()

	if _, err := io.Copy(w, resp); err != nil {
		return goerr.Wrap(err, "transfer interrupted", goerr.V("path", remotePath))
	}

	return nil
}

// FileSize queries the size of the file at path. The server answers SIZE
// only for regular files, so directories fail here.
func (c *connection) FileSize(ctx context.Context, p string) (int64, error) {
	size, err := c.conn.FileSize(p)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to query file size", goerr.V("path", p))
	}
	return size, nil
}

// FileDate queries the modification time of the file at path
func (c *connection) FileDate(ctx context.Context, p string) (time.Time, error) {
	mtime, err := c.conn.GetTime(p)
	if err != nil {
		return time.Time{}, goerr.Wrap(err, "failed to query file date", goerr.V("path", p))
	}
	return mtime, nil
}

// Close terminates the session
func (c *connection) Close() error {
	if err := c.conn.Quit(); err != nil {
		return goerr.Wrap(err, "failed to close printer connection")
	}
	return nil
}

// joinRemote joins printer paths with forward slashes regardless of the
// host OS
func joinRemote(folder, name string) string {
	return path.Join("/", folder, name)
}
