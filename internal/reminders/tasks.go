package reminders

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TaskLeadFollowUp = "leads.followup"

const TaskOverduePaymentSweep = "payments.overdue.sweep"

type LeadFollowUpPayload struct {
	LeadID string `json:"leadId"`
	Note   string `json:"note,omitempty"`
}

func NewLeadFollowUpTask(payload LeadFollowUpPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskLeadFollowUp, data), nil
}

func ParseLeadFollowUpPayload(task *asynq.Task) (LeadFollowUpPayload, error) {
	var payload LeadFollowUpPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return LeadFollowUpPayload{}, err
	}
	return payload, nil
}

func NewOverduePaymentSweepTask() *asynq.Task {
	return asynq.NewTask(TaskOverduePaymentSweep, nil)
}
