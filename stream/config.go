package stream

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

// GradientStop is one hue stop of a GradientTable.
type GradientStop struct {
	Hue float64 `yaml:"hue"`
	Pos float64 `yaml:"pos"`
}

// ShowConfig shapes the shake show played on each trigger.
type ShowConfig struct {
	Centre     float64        `yaml:"centre"`
	Amplitude  float64        `yaml:"amplitude"`
	Width      float64        `yaml:"width"`
	Swing      float64        `yaml:"swing"`
	Fade       float64        `yaml:"fade"`
	Background string         `yaml:"background"`
	Chroma     float64        `yaml:"chroma"`
	Luminance  float64        `yaml:"luminance"`
	Gradient   []GradientStop `yaml:"gradient"`
}

type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		ClientID string `yaml:"clientID"`
		Topics   struct {
			Stream  string `yaml:"stream"`
			Trigger string `yaml:"trigger"`
		} `yaml:"topics"`
	} `yaml:"mqtt"`
	Stream struct {
		FrameRate float64 `yaml:"frameRate"`
		IdleRate  float64 `yaml:"idleRate"`
		QoS       byte    `yaml:"qos"`
	} `yaml:"stream"`
	Show ShowConfig `yaml:"show"`
	Api  struct {
		Listen string `yaml:"listen"`
		Static string `yaml:"static"`
	} `yaml:"api"`
}

// DefaultConfig returns a Config with every optional setting filled in.
func DefaultConfig() Config {
	var c Config
	c.Mqtt.ClientID = "ledkey"
	c.Mqtt.Topics.Stream = "home/xmastree/stream"
	c.Mqtt.Topics.Trigger = "home/xmastree/trigger"
	c.Stream.FrameRate = 30
	c.Stream.IdleRate = 1
	c.Show = ShowConfig{
		Centre:     numPixels / 2,
		Amplitude:  60,
		Width:      40,
		Swing:      0.5,
		Fade:       0.25,
		Background: "#000005",
		Chroma:     1.0,
		Luminance:  0.3,
		Gradient: []GradientStop{
			{0.0, 0.0},
			{6.0, 0.04},   // Pink
			{87.0, 0.14},  // Red
			{98.0, 0.42},  // Yellow
			{180.0, 0.56}, // Green
			{320.0, 0.84}, // Blue
			{360.0, 1.0},  // Pink wrap
		},
	}
	c.Api.Listen = ":3000"
	c.Api.Static = "client/dist"
	return c
}

// LoadConfig reads a YAML config file over the defaults.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	c := DefaultConfig()
	decoder := yaml.NewDecoder(f)
	decoder.SetStrict(true)
	if err := decoder.Decode(&c); err != nil {
		return Config{}, fmt.Errorf("decode config %s: %w", path, err)
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate checks the settings the streamer cannot run without.
func (c Config) Validate() error {
	if c.Stream.FrameRate <= 0 {
		return errors.New("config: stream.frameRate must be positive")
	}
	if c.Stream.IdleRate <= 0 {
		return errors.New("config: stream.idleRate must be positive")
	}
	if c.Stream.QoS > 2 {
		return fmt.Errorf("config: stream.qos %d is not a valid MQTT QoS", c.Stream.QoS)
	}
	if c.Mqtt.Topics.Stream == "" {
		return errors.New("config: mqtt.topics.stream is required")
	}
	if c.Show.Swing <= 0 {
		return errors.New("config: show.swing must be positive")
	}
	if c.Show.Fade < 0 || c.Show.Fade > 2*c.Show.Swing {
		return fmt.Errorf("config: show.fade %v must be between 0 and twice show.swing", c.Show.Fade)
	}
	if _, err := ParseColour(c.Show.Background); err != nil {
		return fmt.Errorf("config: show.background: %w", err)
	}
	return nil
}

// FrameInterval is the tick period while an animation is running.
func (c Config) FrameInterval() time.Duration {
	return time.Duration(float64(time.Second) / c.Stream.FrameRate)
}

// IdleInterval is the tick period once an animation has finished.
func (c Config) IdleInterval() time.Duration {
	return time.Duration(float64(time.Second) / c.Stream.IdleRate)
}
