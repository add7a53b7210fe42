package cli

import (
	"os"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/mapazajec/mapazajec-backend/internal/place"
)

func convertCommand() *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Usage:     "rewrite a places file in the canonical or legacy schema",
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "to", Value: schemaCanonical, Usage: "canonical or legacy"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return errors.Wrap(ErrInvalidFlag, "expected exactly one file")
			}
			data, err := os.ReadFile(c.Args().First())
			if err != nil {
				return errors.Wrap(err, "read places file")
			}
			doc, err := place.Decode(data)
			if err != nil {
				return err
			}

			out, err := convert(doc, c.String("to"))
			if err != nil {
				return err
			}
			b, err := json.MarshalIndent(out, "", "  ")
			if err != nil {
				return errors.Wrap(err, "encode places")
			}

			log.Debug().Stringer("from", doc.Schema).Str("to", c.String("to")).Msg("converted places")
			_, err = c.App.Writer.Write(append(b, '\n'))
			return err
		},
	}
}

func convert(doc *place.Document, to string) (interface{}, error) {
	switch to {
	case schemaCanonical:
		return doc.Canonical()
	case schemaLegacy:
		if doc.Schema == place.SchemaLegacy {
			return doc.Legacy, nil
		}
		out := make([]place.LegacyPlace, 0, len(doc.Places))
		for _, p := range doc.Places {
			lp, err := place.ToLegacy(p)
			if err != nil {
				return nil, err
			}
			out = append(out, lp)
		}
		return out, nil
	default:
		return nil, errors.Wrapf(ErrInvalidFlag, "to %q", to)
	}
}
