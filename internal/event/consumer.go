package event

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"reorder-service/internal/service"

	"github.com/streadway/amqp"
)

// DistractorRoutingKey is published by the AI distractor-generation chain
// once decoys for a sentence are ready.
const DistractorRoutingKey = "reorder.sentence.distractors"

// DistractorGeneratedEvent carries the decoy words produced out-of-band for
// a sentence. The producer guarantees the decoys do not duplicate words of
// the sentence itself.
type DistractorGeneratedEvent struct {
	SentenceID  string   `json:"sentence_id"`
	Keyword     string   `json:"keyword,omitempty"`
	Distractors []string `json:"distractors"`
}

// DistractorConsumer applies distractor-generation results to sentences as
// they arrive. When no RabbitMQ URI is configured the consumer is disabled
// and Start is a no-op.
type DistractorConsumer struct {
	conn          *amqp.Connection
	channel       *amqp.Channel
	queueName     string
	lessonService *service.LessonService
	shutdown      chan struct{}
	wg            sync.WaitGroup
	enabled       bool
}

func NewDistractorConsumer(amqpURL, exchange, queueName string, lessonService *service.LessonService) (*DistractorConsumer, error) {
	if amqpURL == "" {
		log.Println("Warning: RabbitMQ URI is empty, distractor consumption is disabled")
		return &DistractorConsumer{
			lessonService: lessonService,
			shutdown:      make(chan struct{}),
			enabled:       false,
		}, nil
	}

	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}
	if err := channel.Qos(10, 0, false); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to set QoS: %w", err)
	}

	if err := channel.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}
	queue, err := channel.QueueDeclare(queueName, true, false, false, false, nil)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}
	if err := channel.QueueBind(queue.Name, DistractorRoutingKey, exchange, false, nil); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to bind queue: %w", err)
	}

	return &DistractorConsumer{
		conn:          conn,
		channel:       channel,
		queueName:     queue.Name,
		lessonService: lessonService,
		shutdown:      make(chan struct{}),
		enabled:       true,
	}, nil
}

func (c *DistractorConsumer) Start() error {
	if !c.enabled {
		return nil
	}

	deliveries, err := c.channel.Consume(c.queueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to start consuming: %w", err)
	}

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		for {
			select {
			case <-c.shutdown:
				return
			case delivery, ok := <-deliveries:
				if !ok {
					return
				}
				c.handleDelivery(delivery)
			}
		}
	}()

	log.Printf("Distractor consumer started on queue %s", c.queueName)
	return nil
}

func (c *DistractorConsumer) handleDelivery(delivery amqp.Delivery) {
	var evt DistractorGeneratedEvent
	if err := json.Unmarshal(delivery.Body, &evt); err != nil {
		log.Printf("Failed to decode distractor event: %v", err)
		delivery.Nack(false, false)
		return
	}
	if evt.SentenceID == "" || len(evt.Distractors) == 0 {
		log.Printf("Dropping distractor event with missing fields: %s", delivery.Body)
		delivery.Nack(false, false)
		return
	}

	if err := c.lessonService.SetDistractors(context.Background(), evt.SentenceID, evt.Distractors); err != nil {
		log.Printf("Failed to store distractors for sentence %s: %v", evt.SentenceID, err)
		delivery.Nack(false, true)
		return
	}

	log.Printf("Stored %d distractors for sentence %s", len(evt.Distractors), evt.SentenceID)
	delivery.Ack(false)
}

func (c *DistractorConsumer) Close() {
	close(c.shutdown)
	c.wg.Wait()
	if c.channel != nil {
		_ = c.channel.Close()
	}
	if c.conn != nil {
		_ = c.conn.Close()
	}
}
