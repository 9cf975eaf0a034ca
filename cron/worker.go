package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"salonbook/config"
	customerRepo "salonbook/database/repository/customer"
	schedulerRepo "salonbook/database/repository/scheduler"
	"salonbook/models"
	"salonbook/services/notification"
	"salonbook/services/tasks"
	"salonbook/utils"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	cronv3 "github.com/robfig/cron/v3"
)

// InitReminderWorker runs the async worker in background.
func InitReminderWorker(notifSvc notification.NotificationService, bookings schedulerRepo.SchedulerRepository, customers customerRepo.CustomerRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
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
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask(notifSvc, bookings, customers))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(notifSvc notification.NotificationService, bookings schedulerRepo.SchedulerRepository, customers customerRepo.CustomerRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] invalid payload: %v", err)
			return err
		}

		booking, err := bookings.GetByID(ctx, p.BookingID)
		if err != nil {
			log.Printf("[ReminderHandler] booking %s lookup failed: %v", p.BookingID, err)
			return err
		}
		if !models.IsActiveStatus(booking.Status) {
			// Cancelled or no-show since the reminder was scheduled.
			return nil
		}

		customer, err := customers.GetByID(ctx, p.CustomerID)
		if err != nil {
			log.Printf("[ReminderHandler] customer %s lookup failed: %v", p.CustomerID, err)
			return err
		}

		if err := notifSvc.SendBookingReminder(ctx, *booking, *customer); err != nil {
			// Delivery is best-effort; do not requeue.
			log.Printf("[ReminderHandler] failed to send reminder for booking %s: %v", p.BookingID, err)
		}
		return nil
	}
}

// InitNoShowSweep starts a scheduled job that flags pending bookings whose
// window has fully elapsed as no-show, freeing their interval for reporting.
func InitNoShowSweep(bookings schedulerRepo.SchedulerRepository) *cronv3.Cron {
	c := cronv3.New()
	_, err := c.AddFunc("*/30 * * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		now := time.Now()
		today := now.Format(utils.DateLayout)
		nowClock := now.Hour()*60 + now.Minute()

		n, err := bookings.MarkElapsedPendingNoShow(ctx, today, nowClock)
		if err != nil {
			log.Printf("[NoShowSweep] sweep failed: %v", err)
			return
		}
		if n > 0 {
			log.Printf("[NoShowSweep] marked %d elapsed pending bookings as no-show", n)
		}
	})
	if err != nil {
		log.Fatalf("[NoShowSweep] failed to register sweep: %v", err)
	}
	c.Start()
	return c
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[ReminderWorker] redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
