package stream_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matt-g-everett/ledkey/stream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
mqtt:
  url: tcp://broker:1883
  topics:
    stream: leds/stream
    trigger: leds/trigger
stream:
  frameRate: 50
  qos: 1
show:
  amplitude: 80
`)

	c, err := stream.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "tcp://broker:1883", c.Mqtt.URL)
	assert.Equal(t, "leds/stream", c.Mqtt.Topics.Stream)
	assert.Equal(t, "leds/trigger", c.Mqtt.Topics.Trigger)
	assert.Equal(t, byte(1), c.Stream.QoS)
	assert.Equal(t, 20*time.Millisecond, c.FrameInterval())
	assert.Equal(t, 80.0, c.Show.Amplitude)

	// Unset values keep their defaults.
	assert.Equal(t, "ledkey", c.Mqtt.ClientID)
	assert.Equal(t, time.Second, c.IdleInterval())
	assert.Equal(t, stream.DefaultConfig().Show.Gradient, c.Show.Gradient)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown key", "bogus: 1\n"},
		{"zero frame rate", "stream:\n  frameRate: 0\n"},
		{"negative idle rate", "stream:\n  idleRate: -1\n"},
		{"bad qos", "stream:\n  qos: 3\n"},
		{"no stream topic", "mqtt:\n  topics:\n    stream: \"\"\n"},
		{"bad background", "show:\n  background: nope\n"},
		{"zero swing", "show:\n  swing: 0\n"},
		{"negative fade", "show:\n  fade: -0.1\n"},
		{"fade longer than show", "show:\n  swing: 0.5\n  fade: 1.5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := stream.LoadConfig(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := stream.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadConfig_LongestFade(t *testing.T) {
	c, err := stream.LoadConfig(writeConfig(t, "show:\n  swing: 0.5\n  fade: 1\n"))
	require.NoError(t, err)

	show := stream.NewShow(c.Show, 1)
	assert.InDelta(t, 4*c.Show.Swing, show.Duration(), 1e-9)
}

func TestDefaultConfig_Valid(t *testing.T) {
	assert.NoError(t, stream.DefaultConfig().Validate())
}
