package reminders

import (
	"context"
	"fmt"

	"texportal_backend/internal/directory/domain"
	"texportal_backend/internal/directory/repository"
	"texportal_backend/internal/events"
	"texportal_backend/platform/config"
	"texportal_backend/platform/logger"

	"github.com/hibiken/asynq"
)

type Worker struct {
	server *asynq.Server
	mux    *asynq.ServeMux
	store  *repository.Store
	bus    events.Bus
	log    *logger.Logger
}

func NewWorker(cfg config.SchedulerConfig, store *repository.Store, bus events.Bus, log *logger.Logger) (*Worker, error) {
	redisURL := cfg.GetRedisURL()
	if redisURL == "" {
		return nil, fmt.Errorf("redis url not configured")
	}

	opt, err := redisClientOpt(redisURL, cfg.GetRedisTLSInsecure())
	if err != nil {
		return nil, err
	}

	queue := cfg.GetReminderQueueName()
	if queue == "" {
		queue = "default"
	}

	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: 10,
		Queues: map[string]int{
			queue: 1,
		},
	})

	mux := asynq.NewServeMux()
	w := &Worker{
		server: server,
		mux:    mux,
		store:  store,
		bus:    bus,
		log:    log,
	}

	mux.HandleFunc(TaskLeadFollowUp, w.handleLeadFollowUp)
	mux.HandleFunc(TaskOverduePaymentSweep, w.handleOverduePaymentSweep)

	return w, nil
}

func (w *Worker) Run(ctx context.Context) {
	if w == nil || w.server == nil {
		return
	}

	go func() {
		<-ctx.Done()
		w.server.Shutdown()
	}()

	if err := w.server.Run(w.mux); err != nil {
		w.log.Error("reminder worker stopped", "error", err)
	}
}

func (w *Worker) handleLeadFollowUp(ctx context.Context, task *asynq.Task) error {
	payload, err := ParseLeadFollowUpPayload(task)
	if err != nil {
		return err
	}

	lead, ok := w.store.Lead(payload.LeadID)
	if !ok {
		// Lead vanished since scheduling, nothing to follow up on.
		return nil
	}

	if lead.Status == domain.LeadStatusConverted || lead.Status == domain.LeadStatusLost {
		return nil
	}

	w.log.Info("lead follow-up due",
		"leadId", lead.ID,
		"customer", lead.CustomerName,
		"phone", lead.Phone,
		"priority", string(lead.Priority),
		"note", payload.Note,
	)
	return nil
}

func (w *Worker) handleOverduePaymentSweep(ctx context.Context, task *asynq.Task) error {
	overdue := 0
	for _, p := range w.store.Payments() {
		if p.Status == domain.PaymentStatusOverdue {
			overdue++
			w.log.Warn("payment overdue",
				"paymentId", p.ID,
				"customer", p.CustomerName,
				"amountPaise", p.AmountPaise,
			)
		}
	}

	w.log.Info("overdue payment sweep finished", "overdue", overdue)
	return nil
}
