package cli

import (
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/mapazajec/mapazajec-backend/internal/place"
)

var ErrLintFailed = errors.New("lint failed")

func lintCommand() *cli.Command {
	return &cli.Command{
		Name:      "lint",
		Usage:     "check places files against the catalog",
		ArgsUsage: "FILE...",
		Action: func(c *cli.Context) error {
			files := c.Args().Slice()
			if len(files) == 0 {
				return errors.Wrap(ErrInvalidFlag, "no files given")
			}

			failed := 0
			for _, file := range files {
				doc, err := lintFile(file)
				if err != nil {
					log.Error().Err(err).Str("file", file).Msg("places file is invalid")
					failed++
					continue
				}
				log.Info().
					Str("file", file).
					Stringer("schema", doc.Schema).
					Int("places", len(doc.Places)+len(doc.Legacy)).
					Msg("places file is valid")
			}

			if failed > 0 {
				return errors.Wrapf(ErrLintFailed, "%d of %d files", failed, len(files))
			}
			return nil
		},
	}
}

func lintFile(file string) (*place.Document, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, errors.Wrap(err, "read places file")
	}
	doc, err := place.Decode(data)
	if err != nil {
		return nil, err
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return doc, nil
}
