// Package unlock publishes milestone unlock events so other parts of
// the platform (push notifications, the celebration UI feed) can react
// to them without polling the progress API.
package unlock

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	log "github.com/sirupsen/logrus"
)

const DefaultSubject = "progress.milestones.unlocked"

var _ EventPublisher = (*Publisher)(nil)
var _ EventPublisher = (*LogPublisher)(nil)

type EventPublisher interface {
	Publish(ctx context.Context, events []Event) error
}

// Event is a published milestone unlock.
type Event struct {
	ID           uuid.UUID `json:"id"`
	MilestoneID  string    `json:"milestoneId"`
	ExerciseType string    `json:"exerciseType"`
	Title        string    `json:"title"`
	Reward       string    `json:"reward"`
	UnlockedAt   time.Time `json:"unlockedAt"`
}

// Publisher sends unlock events to a NATS subject.
type Publisher struct {
	nc      *nats.Conn
	subject string
}

func NewPublisher(natsURL, subject string) (*Publisher, error) {
	nc, err := nats.Connect(natsURL, nats.Name("formcoach-progress"))
	if err != nil {
		return nil, fmt.Errorf("connect to nats: %w", err)
	}
	if subject == "" {
		subject = DefaultSubject
	}
	return &Publisher{
		nc:      nc,
		subject: subject,
	}, nil
}

func (p *Publisher) Publish(_ context.Context, events []Event) error {
	for _, event := range events {
		payload, err := json.Marshal(event)
		if err != nil {
			return fmt.Errorf("marshal unlock event %s: %w", event.MilestoneID, err)
		}
		if err := p.nc.Publish(p.subject, payload); err != nil {
			return fmt.Errorf("publish unlock event %s: %w", event.MilestoneID, err)
		}
	}
	return nil
}

func (p *Publisher) Close() {
	if err := p.nc.Drain(); err != nil {
		log.Errorf("failed to drain nats connection: %s", err)
	}
}

// LogPublisher is used when no NATS server is configured, unlock events
// are then only visible in the logs and metrics.
type LogPublisher struct{}

func (LogPublisher) Publish(_ context.Context, events []Event) error {
	for _, event := range events {
		log.Infof("milestone unlocked: [%s] %s", event.ExerciseType, event.MilestoneID)
	}
	return nil
}
