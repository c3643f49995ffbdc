package console

import (
	"context"

	"github.com/feastly/admin-console/internal/model"
)

// ContactFilter narrows the support ticket list.
type ContactFilter struct {
	Search   string
	Status   string
	Priority string
	Category string
}

// ContactCounts are the aggregates shown above the ticket table.
type ContactCounts struct {
	Total      int `json:"total"`
	Open       int `json:"open"`
	InProgress int `json:"in_progress"`
	Urgent     int `json:"urgent"`
}

// ContactPage is the rendered ticket list plus its aggregates.
type ContactPage struct {
	Items  []model.ContactSubmission `json:"items"`
	Counts ContactCounts             `json:"counts"`
}

// Contacts fetches the support tickets and filters them in memory.
func (s *Service) Contacts(ctx context.Context, filter ContactFilter) (ContactPage, error) {
	data, err := s.data()
	if err != nil {
		return ContactPage{}, err
	}
	all, err := data.ListContacts(ctx)
	if err != nil {
		return ContactPage{}, err
	}

	page := ContactPage{Items: []model.ContactSubmission{}}
	for _, c := range all {
		page.Counts.Total++
		switch c.Status {
		case model.ContactOpen:
			page.Counts.Open++
		case model.ContactInProgress:
			page.Counts.InProgress++
		}
		if c.Priority == model.PriorityUrgent {
			page.Counts.Urgent++
		}
		if contactMatches(c, filter) {
			page.Items = append(page.Items, c)
		}
	}
	s.record(ctx, "console.contacts.list", map[string]any{"visible": len(page.Items)})
	return page, nil
}

func contactMatches(c model.ContactSubmission, filter ContactFilter) bool {
	if !searchMatches(filter.Search, c.Name, c.Email, c.Subject, c.Message) {
		return false
	}
	if !enumMatches(filter.Status, c.Status) {
		return false
	}
	if !enumMatches(filter.Priority, c.Priority) {
		return false
	}
	return enumMatches(filter.Category, c.Category)
}

// UpdateContact validates and persists ticket changes (status, assignment,
// response text).
func (s *Service) UpdateContact(ctx context.Context, contact model.ContactSubmission) (model.ContactSubmission, error) {
	data, err := s.data()
	if err != nil {
		return model.ContactSubmission{}, err
	}
	if err := s.opts.Validator.Validate(DraftContact, contact); err != nil {
		return model.ContactSubmission{}, err
	}
	return data.UpdateContact(ctx, contact)
}
