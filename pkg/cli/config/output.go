package config

import "github.com/urfave/cli/v3"

// Output holds the local destination for extracted assets
type Output struct {
	Dir string
}

// Flags returns CLI flags for output configuration
func (c *Output) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "output-dir",
			Usage:       "Directory extracted assets are written under",
			Value:       ".",
			Destination: &c.Dir,
			Sources:     cli.EnvVars("BAMBUSPECT_OUTPUT_DIR"),
		},
	}
}
