package config_test

import (
	"os"
	"testing"

	"github.com/envelope-zero/expense-parser/internal/config"
	"github.com/envelope-zero/expense-parser/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := config.Load(test.TmpFile(t))
	require.Nil(t, err)

	// Variables might be set in the environment running the tests
	if _, ok := os.LookupEnv("PORT"); !ok {
		assert.Equal(t, 5000, cfg.Port)
	}

	if _, ok := os.LookupEnv("MODEL_PATH"); !ok {
		assert.Equal(t, "category_classifier.json", cfg.ModelPath)
	}
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("LISTEN_ADDRESS", "127.0.0.1")
	t.Setenv("MODEL_PATH", "/models/pipeline.json")
	t.Setenv("API_URL", "https://expenses.example.com/api")
	t.Setenv("GIN_MODE", "debug")
	t.Setenv("LOG_FORMAT", "human")

	cfg, err := config.Load(test.TmpFile(t))
	require.Nil(t, err)

	assert.Equal(t, config.Config{
		GinMode:       "debug",
		LogFormat:     "human",
		ModelPath:     "/models/pipeline.json",
		Port:          8081,
		ListenAddress: "127.0.0.1",
		APIURL:        "https://expenses.example.com/api",
	}, cfg)
	assert.Equal(t, "127.0.0.1:8081", cfg.Address())

	u, err := cfg.BaseURL()
	require.Nil(t, err)
	assert.Equal(t, "expenses.example.com", u.Host)
	assert.Equal(t, "/api", u.Path)
}

func TestLoadDotenv(t *testing.T) {
	path := test.TmpFile(t)
	require.Nil(t, os.WriteFile(path, []byte("EXPENSE_PARSER_TEST_MODEL=from-dotenv.json\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("EXPENSE_PARSER_TEST_MODEL") })

	_, err := config.Load(path)
	require.Nil(t, err)
	assert.Equal(t, "from-dotenv.json", os.Getenv("EXPENSE_PARSER_TEST_MODEL"))
}

func TestDotenvDoesNotOverride(t *testing.T) {
	path := test.TmpFile(t)
	require.Nil(t, os.WriteFile(path, []byte("MODEL_PATH=from-dotenv.json\n"), 0o600))
	t.Setenv("MODEL_PATH", "from-env.json")

	cfg, err := config.Load(path)
	require.Nil(t, err)
	assert.Equal(t, "from-env.json", cfg.ModelPath)
}

func TestInvalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		err   error
	}{
		{"Port too high", "PORT", "70000", config.ErrInvalidPort},
		{"Port zero", "PORT", "0", config.ErrInvalidPort},
		{"Relative URL", "API_URL", "/api", config.ErrInvalidAPIURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := config.Load(test.TmpFile(t))
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestPortNotANumber(t *testing.T) {
	t.Setenv("PORT", "five thousand")

	_, err := config.Load(test.TmpFile(t))
	assert.NotNil(t, err)
}
