package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/muesli/coral"
	"github.com/sirupsen/logrus"

	"github.com/muesli/leddy"
	"github.com/muesli/leddy/logger"
)

var (
	mqttBroker   = "tcp://localhost:1883"
	mqttTopic    = "leddy/effect"
	mqttClientID = "leddy"

	mqttCmd = &coral.Command{
		Use:   "mqtt",
		Short: "applies effects published to an MQTT topic",
		Long: `Subscribes to an MQTT topic and applies every message as an effect
argument, e.g. "pulse/color=rgb:00ff00/speed=20". Software effects and
color=stdin are not available.`,
		RunE: func(cmd *coral.Command, args []string) error {
			kbd, err := openKeyboard()
			if err != nil {
				return err
			}
			defer kbd.Close()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			msgs := make(chan string, 16)
			client, err := subscribe(msgs)
			if err != nil {
				return err
			}
			defer client.Disconnect(250)

			return serveMessages(ctx, kbd, msgs)
		},
	}
)

func subscribe(msgs chan<- string) (mqtt.Client, error) {
	log := logger.GetProjectLogger().WithFields(logrus.Fields{
		"broker": mqttBroker,
		"topic":  mqttTopic,
	})

	opts := mqtt.NewClientOptions().AddBroker(mqttBroker).SetClientID(mqttClientID)
	opts.SetKeepAlive(30 * time.Second)
	opts.SetAutoReconnect(true)

	c := mqtt.NewClient(opts)
	if token := c.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("connecting to %s: %w", mqttBroker, token.Error())
	}

	handler := func(_ mqtt.Client, msg mqtt.Message) {
		select {
		case msgs <- string(msg.Payload()):
		default:
			log.WithField("payload", string(msg.Payload())).Warn("dropping effect, queue full")
		}
	}
	if token := c.Subscribe(mqttTopic, 1, handler); token.Wait() && token.Error() != nil {
		c.Disconnect(250)
		return nil, fmt.Errorf("subscribing to %s: %w", mqttTopic, token.Error())
	}

	log.Info("waiting for effects")
	return c, nil
}

// serveMessages applies the effects received on msgs until ctx is cancelled.
// Invalid messages are logged and skipped; device errors end serving.
func serveMessages(ctx context.Context, kbd leddy.KeyboardInterface, msgs <-chan string) error {
	log := logger.GetProjectLogger()

	for {
		select {
		case <-ctx.Done():
			return nil

		case msg := <-msgs:
			err := applyMessage(ctx, kbd, msg)
			if err == nil {
				log.WithField("effect", msg).Info("applied effect")
				continue
			}
			if !leddy.IsValidation(err) {
				return err
			}
			log.WithError(err).WithField("effect", msg).Warn("ignoring effect")
		}
	}
}

func applyMessage(ctx context.Context, kbd leddy.KeyboardInterface, msg string) error {
	inv, err := parseInvocation(msg)
	if err != nil {
		return err
	}
	if inv.software() {
		return fmt.Errorf("%w: software effect %q cannot be started remotely", leddy.ErrInvalidParam, inv.effect)
	}
	return run(ctx, kbd, inv, nil)
}

func init() {
	mqttCmd.Flags().StringVar(&mqttBroker, "broker", mqttBroker, "MQTT broker URL")
	mqttCmd.Flags().StringVar(&mqttTopic, "topic", mqttTopic, "topic carrying effect arguments")
	mqttCmd.Flags().StringVar(&mqttClientID, "client-id", mqttClientID, "MQTT client ID")

	RootCmd.AddCommand(mqttCmd)
}
