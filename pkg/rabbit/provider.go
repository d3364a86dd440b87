package rabbit

import (
	"context"
	"errors"
	"sync"

	"github.com/streadway/amqp"
)

// ErrNotConnected is returned by Publish and Consume before Connect succeeds.
var ErrNotConnected = errors.New("rabbit: not connected")

type Config struct {
	URL   string
	Queue string
}

type Provider struct {
	url       string
	queueName string

	mu      sync.Mutex
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   amqp.Queue
}

func New(config Config) *Provider {
	return &Provider{url: config.URL, queueName: config.Queue}
}

// Connect dials the broker and declares the queue.
func (r *Provider) Connect() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	conn, err := amqp.Dial(r.url)
	if err != nil {
		return err
	}
	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return err
	}
	queue, err := channel.QueueDeclare(
		r.queueName,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		conn.Close()
		return err
	}

	r.conn, r.channel, r.queue = conn, channel, queue
	return nil
}

func (r *Provider) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.conn != nil {
		r.conn.Close()
		r.conn, r.channel = nil, nil
	}
}

// Publish sends body to the queue. Channels are not safe for concurrent
// publishing, so calls are serialised.
func (r *Provider) Publish(ctx context.Context, contentType string, body []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.channel == nil {
		return ErrNotConnected
	}
	return r.channel.Publish(
		"",           // exchange
		r.queue.Name, // routing key
		false,        // mandatory
		false,        // immediate
		amqp.Publishing{
			ContentType:  contentType,
			DeliveryMode: amqp.Persistent,
			Body:         body,
		})
}

type MessageProcess = func(msg amqp.Delivery)

// Consume hands every delivery to process until ctx is done or the channel closes.
func (r *Provider) Consume(ctx context.Context, process MessageProcess) error {
	r.mu.Lock()
	channel, queue := r.channel, r.queue
	r.mu.Unlock()
	if channel == nil {
		return ErrNotConnected
	}

	msgs, err := channel.Consume(
		queue.Name, // queue
		"",         // consumer
		true,       // auto-ack
		false,      // exclusive
		false,      // no-local
		false,      // no-wait
		nil,        // args
	)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case m, ok := <-msgs:
			if !ok {
				return nil
			}
			process(m)
		}
	}
}
