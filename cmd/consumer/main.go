package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/streadway/amqp"

	"meetbot/config"
	rabbitHook "meetbot/internal/meeting/hook/rabbit"
	"meetbot/pkg/log"
	"meetbot/pkg/rabbit"
)

// main consumes the meeting lifecycle messages the API publishes to RabbitMQ
// and writes one log line per event. It is the starting point for notifiers.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !cfg.RabbitMQ.Enabled {
		logger.Error(ctx, "rabbitmq.enabled is false, nothing to consume")
		return
	}

	logger.Infof(ctx, "Starting consumer on queue %s...", cfg.RabbitMQ.Queue)

	provider := rabbit.New(rabbit.Config{URL: cfg.RabbitMQ.URL, Queue: cfg.RabbitMQ.Queue})
	if err := provider.Connect(); err != nil {
		logger.Error(ctx, "Failed to connect to RabbitMQ: ", err)
		return
	}
	defer provider.Close()

	err = provider.Consume(ctx, func(d amqp.Delivery) {
		handleDelivery(ctx, logger, d.Body)
	})
	if err != nil {
		logger.Error(ctx, "Consumer stopped: ", err)
		return
	}

	logger.Info(ctx, "Consumer service stopped gracefully")
}

func handleDelivery(ctx context.Context, l log.Logger, body []byte) {
	var msg rabbitHook.Message
	if err := json.Unmarshal(body, &msg); err != nil {
		l.Warnf(ctx, "consumer: dropping malformed message: %v", err)
		return
	}

	m := msg.Meeting
	switch msg.Type {
	case rabbitHook.EventScheduled:
		l.Infof(ctx, "meeting %d scheduled: %q on %s %s-%s", m.ID, m.Title, m.Date, m.StartTime, m.EndTime)
	case rabbitHook.EventCancelled:
		l.Infof(ctx, "meeting %d cancelled: %q on %s %s-%s", m.ID, m.Title, m.Date, m.StartTime, m.EndTime)
	default:
		l.Warnf(ctx, "consumer: unknown event type %q", msg.Type)
	}
}
