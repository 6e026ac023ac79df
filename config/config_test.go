package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, int64(200), cfg.Pricing.TicketPrice)
	assert.Equal(t, 50000.0, cfg.Pricing.DomesticBaggagePerKg)
	assert.Equal(t, 10.0, cfg.Pricing.InternationalBaggagePerKg)
	assert.Equal(t, EventsDriverNone, cfg.Events.Driver)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
log:
  level: debug
pricing:
  ticket_price: 250
events:
  driver: Kafka
  topic: ledger
kafka:
  brokers: ["broker-1:9092", "broker-2:9092"]
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, int64(250), cfg.Pricing.TicketPrice)
	assert.Equal(t, 50000.0, cfg.Pricing.DomesticBaggagePerKg)
	assert.Equal(t, EventsDriverKafka, cfg.Events.Driver)
	assert.Equal(t, "ledger", cfg.Events.Topic)
	assert.Equal(t, []string{"broker-1:9092", "broker-2:9092"}, cfg.Kafka.Brokers)
}

func TestLoadConfig_Errors(t *testing.T) {
	testCases := []struct {
		name        string
		body        string
		expectedErr string
	}{
		{
			name:        "Malformed yaml",
			body:        "pricing: [",
			expectedErr: "failed to parse config",
		},
		{
			name:        "Unknown driver",
			body:        "events:\n  driver: carrier-pigeon\n",
			expectedErr: "unknown events driver",
		},
		{
			name:        "Negative ticket price",
			body:        "pricing:\n  ticket_price: -1\n",
			expectedErr: "ticket_price must not be negative",
		},
		{
			name:        "Kafka without brokers",
			body:        "events:\n  driver: kafka\nkafka:\n  brokers: []\n",
			expectedErr: "kafka.brokers is required",
		},
		{
			name:        "Redis without topic",
			body:        "events:\n  driver: redis\n  topic: \"\"\n",
			expectedErr: "events.topic is required",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := LoadConfig(writeConfig(t, tc.body))
			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.expectedErr)
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate_EmptyDriverMeansNone(t *testing.T) {
	cfg := Default()
	cfg.Events.Driver = "  "

	require.NoError(t, cfg.Validate())
	assert.Equal(t, EventsDriverNone, cfg.Events.Driver)
}

func TestLoadFromEnv_UnsetUsesDefault(t *testing.T) {
	t.Setenv(PathEnv, "")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFromEnv_ReadsFile(t *testing.T) {
	t.Setenv(PathEnv, writeConfig(t, `
events:
  driver: redis
  topic: ledger
`))

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, EventsDriverRedis, cfg.Events.Driver)
	assert.Equal(t, "ledger", cfg.Events.Topic)
}

func TestLoadFromEnv_MissingFile(t *testing.T) {
	t.Setenv(PathEnv, filepath.Join(t.TempDir(), "absent.yaml"))

	_, err := LoadFromEnv()
	assert.ErrorIs(t, err, os.ErrNotExist)
}
