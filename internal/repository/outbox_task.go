package repository

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type TaskStatus string

const (
	TaskStatusCreated    TaskStatus = "CREATED"
	TaskStatusProcessing TaskStatus = "PROCESSING"
	TaskStatusFailed     TaskStatus = "FAILED"
	TaskStatusDone       TaskStatus = "DONE"
)

// OutboxTask is one pending audit event, written in the same transaction
// as the change it describes and shipped to Kafka by the publisher.
type OutboxTask struct {
	ID          uuid.UUID       `db:"id"`
	Status      TaskStatus      `db:"status"`
	Payload     json.RawMessage `db:"payload"`
	Topic       string          `db:"topic"`
	Attempts    int             `db:"attempts"`
	LastError   *string         `db:"last_error"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
	CompletedAt *time.Time      `db:"completed_at"`
}

// AuditEvent is the payload serialized into an outbox task.
type AuditEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
	OrderID   string    `json:"order_id,omitempty"`
	EntityID  string    `json:"entity_id,omitempty"`
	Actor     string    `json:"actor,omitempty"`
	Detail    string    `json:"detail,omitempty"`
}
