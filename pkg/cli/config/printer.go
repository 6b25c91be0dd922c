package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
)

// defaultPort is the implicit-TLS FTPS port of the printer
const defaultPort = 990

// Sample values from the setup documentation. A run still carrying them has
// never been pointed at a real printer.
const (
	placeholderHost       = "192.168.1.100"
	placeholderAccessCode = "12345678"
)

// ConnModeLan is the only supported connection mode: the tool talks to the
// printer directly on the local network.
const ConnModeLan = "lan"

// Printer holds the connection settings for one printer
type Printer struct {
	Host       string `toml:"host"`
	AccessCode string `toml:"access_code" masq:"secret"`
	Port       int    `toml:"port"`
	ConnMode   string `toml:"conn_mode"`

	// UseLocalStorage mirrors the plugin setting of the same name. The
	// diagnostic always works against the printer's own SD card, so it
	// stays off.
	UseLocalStorage bool `toml:"use_local_storage"`

	ConfigPath string `toml:"-"`
}

// Flags returns CLI flags for printer configuration
func (c *Printer) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "host",
			Usage:       "Printer IP address or hostname",
			Destination: &c.Host,
			Sources:     cli.EnvVars("BAMBUSPECT_HOST"),
		},
		&cli.StringFlag{
			Name:        "access-code",
			Usage:       "Printer LAN access code",
			Destination: &c.AccessCode,
			Sources:     cli.EnvVars("BAMBUSPECT_ACCESS_CODE"),
		},
		&cli.IntFlag{
			Name:        "port",
			Usage:       "FTPS port (default 990)",
			Destination: &c.Port,
			Sources:     cli.EnvVars("BAMBUSPECT_PORT"),
		},
		&cli.StringFlag{
			Name:        "conn-mode",
			Usage:       "Connection mode (only \"lan\" is supported)",
			Value:       ConnModeLan,
			Destination: &c.ConnMode,
			Sources:     cli.EnvVars("BAMBUSPECT_CONN_MODE"),
		},
		&cli.StringFlag{
			Name:        "config",
			Usage:       "Path to a TOML config file",
			Destination: &c.ConfigPath,
			Sources:     cli.EnvVars("BAMBUSPECT_CONFIG"),
		},
	}
}

// Load reads the optional TOML config file and fills in fields that were
// not set on the command line. Flags win over file values. Defaults are
// applied last.
func (c *Printer) Load() error {
	if c.ConfigPath != "" {
		data, err := os.ReadFile(c.ConfigPath)
		if err != nil {
			return goerr.Wrap(err, "failed to read config file", goerr.V("path", c.ConfigPath))
		}

		var file Printer
		if err := toml.Unmarshal(data, &file); err != nil {
			return goerr.Wrap(err, "failed to parse config file", goerr.V("path", c.ConfigPath))
		}

		if c.Host == "" {
			c.Host = file.Host
		}
		if c.AccessCode == "" {
			c.AccessCode = file.AccessCode
		}
		if c.Port == 0 {
			c.Port = file.Port
		}
		if file.ConnMode != "" && c.ConnMode == ConnModeLan {
			c.ConnMode = file.ConnMode
		}
	}

	if c.Port == 0 {
		c.Port = defaultPort
	}
	if c.ConnMode == "" {
		c.ConnMode = ConnModeLan
	}

	return nil
}

// Validate rejects unconfigured or sample values. It performs no I/O and
// must pass before any connection is attempted.
func (c *Printer) Validate() error {
	if c.Host == "" {
		return goerr.New("printer host is not configured")
	}
	if c.AccessCode == "" {
		return goerr.New("printer access code is not configured")
	}
	if c.Host == placeholderHost || c.AccessCode == placeholderAccessCode {
		return goerr.New("printer host or access code still holds the documentation sample value",
			goerr.V("host", c.Host))
	}
	if c.ConnMode != ConnModeLan {
		return goerr.New("unsupported connection mode", goerr.V("conn_mode", c.ConnMode))
	}
	return nil
}
