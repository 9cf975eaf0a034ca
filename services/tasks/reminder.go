package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const TypeSendReminder = "reminder:send"

// ReminderPayload identifies the booking a reminder is for. The worker
// re-fetches the booking at fire time so a cancellation in the meantime
// silently drops the reminder.
type ReminderPayload struct {
	BookingID  string `json:"bookingId"`
	CustomerID string `json:"customerId"`
}

func NewReminderTask(payload ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}
