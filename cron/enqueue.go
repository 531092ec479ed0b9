package cron

import (
	"encoding/json"
	"fmt"
	"time"

	"washex/config"
	"washex/models"

	"github.com/hibiken/asynq"
)

// ReminderClient enqueues pickup reminders; it implements the order
// service's ReminderScheduler.
type ReminderClient struct {
	client *asynq.Client
}

// NewReminderClient builds an enqueue client against the reminder queue.
func NewReminderClient() *ReminderClient {
	return &ReminderClient{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisReminderQueueDB,
		}),
	}
}

// SchedulePickupReminder queues a reminder ahead of the order's pickup
// date. Orders without a pickup date are skipped.
func (c *ReminderClient) SchedulePickupReminder(ord models.Order) error {
	if ord.PickupDate == nil {
		return nil
	}

	payload, err := json.Marshal(PickupReminderPayload{
		OrderCode:  ord.Code,
		AgentID:    ord.PickupAgentID,
		AgentName:  ord.PickupAgentName,
		Address:    ord.DeliveryAddress,
		PickupDate: ord.PickupDate.Format(time.RFC3339),
		SlotName:   ord.PickupSlotName,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal reminder payload: %w", err)
	}

	lead := time.Duration(config.AppConfig.ReminderLeadMinutes) * time.Minute
	fireAt := ord.PickupDate.Add(-lead)
	if fireAt.Before(time.Now()) {
		fireAt = time.Now()
	}

	task := asynq.NewTask(TypePickupReminder, payload)
	if _, err := c.client.Enqueue(task, asynq.ProcessAt(fireAt)); err != nil {
		return fmt.Errorf("failed to enqueue pickup reminder for %s: %w", ord.Code, err)
	}
	return nil
}
