package stream

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
)

// Broker is the part of an MQTT client the Streamer uses.
type Broker interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
	Subscribe(topic string, qos byte, callback mqtt.MessageHandler) mqtt.Token
}

// Streamer that streams RGB data frames to an ledrx device.
type Streamer struct {
	config     Config
	client     Broker
	controller *Controller
}

// NewStreamer creates an instance of a Streamer.
func NewStreamer(config Config, client Broker) (*Streamer, error) {
	background, err := ParseColour(config.Show.Background)
	if err != nil {
		return nil, err
	}

	s := new(Streamer)
	s.config = config
	s.client = client
	s.controller = NewController(config.Show, background)

	return s, nil
}

func (s *Streamer) Controller() *Controller {
	return s.controller
}

func (s *Streamer) handleTrigger(client mqtt.Client, msg mqtt.Message) {
	log.Printf("Received trigger %d on %s: %s\n", msg.MessageID(), msg.Topic(), msg.Payload())
	s.controller.Trigger()
}

// Subscribe listens for triggers on the configured topic. Nothing is
// subscribed when no trigger topic is set.
func (s *Streamer) Subscribe() error {
	topic := s.config.Mqtt.Topics.Trigger
	if topic == "" {
		return nil
	}

	if token := s.client.Subscribe(topic, s.config.Stream.QoS, s.handleTrigger); token.Wait() && token.Error() != nil {
		return fmt.Errorf("subscribe %s: %w", topic, token.Error())
	}
	return nil
}

// SendFrame sends a frame as binary over MQTT to an ledrx device.
func (s *Streamer) SendFrame(f *Frame) error {
	b, err := f.MarshalBinary()
	if err != nil {
		return err
	}

	token := s.client.Publish(s.config.Mqtt.Topics.Stream, s.config.Stream.QoS, false, b)
	if token.Wait() && token.Error() != nil {
		return fmt.Errorf("publish frame: %w", token.Error())
	}
	return nil
}

// Run sends frames until ctx is cancelled. Frames go out at the frame rate
// while the show is running and drop to the idle rate once it is over.
func (s *Streamer) Run(ctx context.Context) {
	frameInterval := s.config.FrameInterval()
	idleInterval := s.config.IdleInterval()

	interval := idleInterval
	publishTimer := time.NewTicker(interval)
	defer publishTimer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.controller.Triggers():
			s.controller.Restart(time.Now())
			log.Printf("Shake %d started", s.controller.Shakes())
			if interval != frameInterval {
				interval = frameInterval
				publishTimer.Reset(interval)
			}
		case now := <-publishTimer.C:
			f, finished := s.controller.CalculateFrame(now)
			if err := s.SendFrame(f); err != nil {
				log.Println(err)
			}

			if finished && interval != idleInterval {
				log.Printf("Shake %d finished", s.controller.Shakes())
				interval = idleInterval
				publishTimer.Reset(interval)
			}
		}
	}
}
