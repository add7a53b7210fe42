package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"

	"github.com/mapazajec/mapazajec-backend/internal/config"
)

func TestConfigure(t *testing.T) {
	testCases := []struct {
		name string
		cfg  config.Config
		want zerolog.Level
	}{
		{name: "Explicit level", cfg: config.Config{LogLevel: "warn"}, want: zerolog.WarnLevel},
		{name: "Dev mode", cfg: config.Config{LogLevel: "warn", DevMode: true}, want: zerolog.TraceLevel},
		{name: "Unparseable level", cfg: config.Config{LogLevel: "loud"}, want: zerolog.InfoLevel},
		{name: "Empty level", cfg: config.Config{}, want: zerolog.InfoLevel},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			Configure(&tc.cfg, &buf)

			assert.Equal(t, tc.want, log.Logger.GetLevel())
		})
	}
}

func TestConfigureWritesToWriter(t *testing.T) {
	var buf bytes.Buffer
	Configure(&config.Config{LogLevel: "info"}, &buf)

	log.Info().Str("table", "age-groups").Msg("catalog verified")
	log.Debug().Msg("hidden")

	assert.Contains(t, buf.String(), "catalog verified")
	assert.Contains(t, buf.String(), "age-groups")
	assert.NotContains(t, buf.String(), "hidden")
}
