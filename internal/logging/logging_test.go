package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/envelope-zero/expense-parser/internal/logging"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	logging.Configure(&buf, "", zerolog.InfoLevel, false)

	log.Info().Str("model", "category_classifier.json").Msg("loaded")

	var line map[string]any
	assert.Nil(t, json.Unmarshal(buf.Bytes(), &line), buf.String())
	assert.Equal(t, "loaded", line["message"])
	assert.Equal(t, "category_classifier.json", line["model"])
	assert.Contains(t, line, "time")
}

func TestHuman(t *testing.T) {
	tests := []struct {
		name        string
		format      string
		development bool
	}{
		{"Explicit", "human", false},
		{"Development default", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logging.Configure(&buf, tt.format, zerolog.InfoLevel, tt.development)

			log.Info().Msg("loaded")
			assert.False(t, json.Valid(buf.Bytes()), buf.String())
			assert.Contains(t, buf.String(), "loaded")
		})
	}
}

func TestJSONOverridesDevelopment(t *testing.T) {
	var buf bytes.Buffer
	logging.Configure(&buf, "json", zerolog.InfoLevel, true)

	log.Info().Msg("loaded")
	assert.True(t, json.Valid(buf.Bytes()), buf.String())
}

func TestLevel(t *testing.T) {
	var buf bytes.Buffer
	logging.Configure(&buf, "json", zerolog.WarnLevel, false)
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	log.Info().Msg("hidden")
	assert.Empty(t, buf.String())

	log.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}
