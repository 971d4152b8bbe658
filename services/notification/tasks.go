package notification

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

// TypeEmailSend is the asynq task type for outbound emails.
const TypeEmailSend = "email:send"

// EmailPayload is the task payload consumed by the email worker.
type EmailPayload struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

// NewEmailTask wraps an email payload into an asynq task.
func NewEmailTask(p EmailPayload) (*asynq.Task, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal email payload: %w", err)
	}
	return asynq.NewTask(TypeEmailSend, data), nil
}
