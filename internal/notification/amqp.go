package notification

import (
	"context"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
	"github.com/streadway/amqp"
)

// AMQPSender publishes transfer notifications to a RabbitMQ queue. A
// consumer elsewhere turns them into SMS/push messages.
type AMQPSender struct {
	conn  *amqp.Connection
	queue string
}

// NewAMQPSender connects to RabbitMQ and declares the queue.
func NewAMQPSender(url, queue string) (*AMQPSender, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	defer ch.Close()
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		conn.Close()
		return nil, err
	}
	return &AMQPSender{conn: conn, queue: queue}, nil
}

func (s *AMQPSender) Notify(_ context.Context, destinationCardNumber string, amount decimal.Decimal, at time.Time) error {
	body, err := json.Marshal(map[string]interface{}{
		"destination_card_number": destinationCardNumber,
		"amount":                  amount,
		"timestamp":               at.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}

	ch, err := s.conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	return ch.Publish(
		"",      // default exchange
		s.queue, // routing key = queue name
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		})
}

func (s *AMQPSender) Close() error {
	return s.conn.Close()
}
