package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{
				"-a", "127.0.0.1:9090", "-m", ":9100", "-d", "db", "-s", "secret",
				"-t", "30", "-r", "300", "-u", "user", "-p", "password", "-b", "bucket",
				"-g", "us-west-1", "-e", "http://endpoint", "-k", "redis://cache:6379/1",
				"-w", "30", "-x", "600", "-l", "3",
			},
			expected: &Config{
				EndpointAddrGRPC:             "127.0.0.1:9090",
				MetricsAddr:                  ":9100",
				DatabaseDSN:                  "db",
				SecretKey:                    "secret",
				AccessTokenValidityDuration:  30 * time.Minute,
				RefreshTokenValidityDuration: 5 * time.Hour,
				S3RootUser:                   "user",
				S3RootPassword:               "password",
				S3Bucket:                     "bucket",
				S3Region:                     "us-west-1",
				S3BaseEndpoint:               "http://endpoint",
				RedisURL:                     "redis://cache:6379/1",
				CacheSlidingExpiration:       30 * time.Second,
				CacheAbsoluteExpiration:      10 * time.Minute,
				LoginRatePerMinute:           3,
			},
		},
		{
			name:        "non-numeric ttl panics",
			args:        []string{"-t", "soon"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &Config{}

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(config, tt.args) })
				return
			}

			require.NotPanics(t, func() { parseFlags(config, tt.args) })
			assert.Empty(t, cmp.Diff(tt.expected, config))
		})
	}
}

func TestParseFlags_IgnoresForeignFlags(t *testing.T) {
	var c Config
	c.LoadDefaults()
	parseFlags(&c, []string{"-c", "conf.json", "-unknown", "1", "-a", ":7000"})

	assert.Equal(t, ":7000", c.EndpointAddrGRPC)
	assert.Equal(t, 15*time.Minute, c.AccessTokenValidityDuration)
}
