package cron

import (
	"context"
	"encoding/json"

	"servehub/config"
	"servehub/services/notification"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// NewQueueClient returns the asynq client producers enqueue email tasks on.
func NewQueueClient() *asynq.Client {
	return asynq.NewClient(queueRedisOpts())
}

// InitEmailWorker runs the async email worker in the background. Delivery is
// decoupled from the request path: a booking or review commit never waits on
// SMTP, and a failed send retries here without touching the ledger.
func InitEmailWorker(mailer notification.Mailer, logger *zap.Logger) *asynq.Server {
	srv := asynq.NewServer(
		queueRedisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(notification.TypeEmailSend, handleEmailTask(mailer, logger))

	go func() {
		logger.Info("starting email worker")
		if err := srv.Run(mux); err != nil {
			logger.Error("email worker stopped", zap.Error(err))
		}
	}()

	return srv
}

func handleEmailTask(mailer notification.Mailer, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p notification.EmailPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			logger.Error("invalid email payload", zap.Error(err))
			return err
		}

		if err := mailer.Send(p.To, p.Subject, p.HTML); err != nil {
			logger.Warn("email send failed, will retry", zap.String("to", p.To), zap.Error(err))
			return err
		}
		logger.Debug("email sent", zap.String("to", p.To), zap.String("subject", p.Subject))
		return nil
	}
}

func queueRedisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}
