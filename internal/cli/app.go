package cli

import (
	"io"

	"github.com/urfave/cli/v2"

	"github.com/mapazajec/mapazajec-backend/internal/config"
)

// NewApp builds the vocab command line tool. Command output goes to out;
// diagnostics go through the global logger.
func NewApp(cfg *config.Config, out io.Writer) *cli.App {
	return &cli.App{
		Name:        "vocab",
		Usage:       "inspect and check the activity vocabulary",
		Description: "Integration tooling for the activity catalog: verifies the static tables, dumps them, and lints or converts places files between the canonical and legacy schemas.",
		Writer:      out,
		Commands: []*cli.Command{
			verifyCommand(),
			dumpCommand(cfg),
			lintCommand(),
			convertCommand(),
		},
	}
}
