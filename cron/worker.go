package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"washex/config"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

const TypePickupReminder = "pickup:reminder"

// PickupReminderPayload is the task body for a scheduled pickup reminder.
type PickupReminderPayload struct {
	OrderCode  string `json:"orderCode"`
	AgentID    string `json:"agentId"`
	AgentName  string `json:"agentName"`
	Address    string `json:"address"`
	PickupDate string `json:"pickupDate"`
	SlotName   string `json:"slotName"`
}

// InitReminderWorker runs the async worker in background.
func InitReminderWorker() {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypePickupReminder, handlePickupReminder)

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[ReminderWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handlePickupReminder(ctx context.Context, task *asynq.Task) error {
	var p PickupReminderPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		log.Printf("[ReminderHandler] Invalid payload: %v", err)
		return err
	}

	// The notification sink is the operations log; dispatch boards tail it.
	log.Printf("[ReminderHandler] Pickup due for order %s at %s (%s), agent %s",
		p.OrderCode, p.PickupDate, p.SlotName, p.AgentName)
	return nil
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[ReminderWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
