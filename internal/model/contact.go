package model

import "time"

// Contact submission categories.
const (
	ContactGeneral   = "general"
	ContactComplaint = "complaint"
	ContactRefund    = "refund"
	ContactPartner   = "partnership"
	ContactTechnical = "technical"
)

// Contact submission priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// Contact submission statuses.
const (
	ContactOpen       = "open"
	ContactInProgress = "in_progress"
	ContactResolved   = "resolved"
	ContactClosed     = "closed"
)

// ContactSubmission is a support ticket raised through the contact form.
type ContactSubmission struct {
	ID          string     `json:"id" yaml:"id"`
	Name        string     `json:"name" yaml:"name"`
	Email       string     `json:"email" yaml:"email"`
	Phone       string     `json:"phone" yaml:"phone"`
	Subject     string     `json:"subject" yaml:"subject"`
	Message     string     `json:"message" yaml:"message"`
	Category    string     `json:"category" yaml:"category"`
	Priority    string     `json:"priority" yaml:"priority"`
	Status      string     `json:"status" yaml:"status"`
	AssignedTo  string     `json:"assigned_to,omitempty" yaml:"assigned_to,omitempty"`
	Response    string     `json:"response,omitempty" yaml:"response,omitempty"`
	RespondedAt *time.Time `json:"responded_at,omitempty" yaml:"responded_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at" yaml:"created_at"`
}
