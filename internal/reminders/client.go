package reminders

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"texportal_backend/platform/config"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
)

type Client struct {
	client *asynq.Client
	queue  string
}

// FollowUpScheduler is the scheduling surface handed to HTTP modules.
type FollowUpScheduler interface {
	ScheduleLeadFollowUp(ctx context.Context, payload LeadFollowUpPayload, runAt time.Time) error
}

// SweepEnqueuer is the queue surface the periodic sweep drives.
type SweepEnqueuer interface {
	EnqueueOverdueSweep(ctx context.Context) error
}

func NewClient(cfg config.SchedulerConfig) (*Client, error) {
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

	return &Client{
		client: asynq.NewClient(opt),
		queue:  queue,
	}, nil
}

func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

func (c *Client) ScheduleLeadFollowUp(ctx context.Context, payload LeadFollowUpPayload, runAt time.Time) error {
	if c == nil || c.client == nil {
		return nil
	}

	task, err := NewLeadFollowUpTask(payload)
	if err != nil {
		return err
	}

	_, err = c.client.EnqueueContext(ctx, task, asynq.ProcessAt(runAt), asynq.Queue(c.queue))
	return err
}

// EnqueueOverdueSweep schedules one overdue payment sweep for immediate
// processing.
func (c *Client) EnqueueOverdueSweep(ctx context.Context) error {
	if c == nil || c.client == nil {
		return nil
	}

	_, err := c.client.EnqueueContext(ctx, NewOverduePaymentSweepTask(), asynq.Queue(c.queue))
	return err
}

func redisClientOpt(redisURL string, tlsInsecure bool) (asynq.RedisClientOpt, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return asynq.RedisClientOpt{}, err
	}

	var tlsConfig *tls.Config
	if opt.TLSConfig != nil {
		clone := opt.TLSConfig.Clone()
		if tlsInsecure {
			clone.InsecureSkipVerify = true
		}
		tlsConfig = clone
	} else if tlsInsecure {
		tlsConfig = &tls.Config{InsecureSkipVerify: true}
	}

	return asynq.RedisClientOpt{
		Addr:      opt.Addr,
		Password:  opt.Password,
		DB:        opt.DB,
		TLSConfig: tlsConfig,
	}, nil
}
