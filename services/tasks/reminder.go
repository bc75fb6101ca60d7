package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	"homeshow/models"
)

const TypeShowingReminder = "reminder:showing"

func NewShowingReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeShowingReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// AsynqReminderQueue schedules showing reminders on the Redis-backed
// task queue for delivery close to the appointment.
type AsynqReminderQueue struct {
	client *asynq.Client
}

func NewAsynqReminderQueue(redisAddr, redisPassword string, db int) *AsynqReminderQueue {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       db,
	})
	return &AsynqReminderQueue{client: client}
}

func (q *AsynqReminderQueue) EnqueueShowingReminder(payload models.ReminderPayload, fireAt time.Time) error {
	task, opts, err := NewShowingReminderTask(payload, fireAt)
	if err != nil {
		return err
	}
	_, err = q.client.Enqueue(task, opts...)
	return err
}

func (q *AsynqReminderQueue) Close() error {
	return q.client.Close()
}
