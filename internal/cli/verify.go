package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/mapazajec/mapazajec-backend/internal/catalog"
)

func verifyCommand() *cli.Command {
	return &cli.Command{
		Name:  "verify",
		Usage: "check the catalog tables for structural defects",
		Action: func(c *cli.Context) error {
			if err := catalog.Verify(); err != nil {
				return err
			}
			log.Info().
				Int("activity_types", len(catalog.ActivityTypes())).
				Int("age_groups", len(catalog.AgeGroups())).
				Int("legacy_activity_types", len(catalog.LegacyActivityTypes())).
				Int("legacy_age_groups", len(catalog.LegacyAgeGroups())).
				Msg("catalog verified")
			return nil
		},
	}
}
