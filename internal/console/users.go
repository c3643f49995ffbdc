package console

import (
	"context"

	"github.com/feastly/admin-console/internal/model"
)

// UserFilter narrows the user list.
type UserFilter struct {
	Search     string
	Role       string
	Status     string
	Membership string
}

// UserCounts are the aggregates shown above the user table.
type UserCounts struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Banned   int `json:"banned"`
	Verified int `json:"verified"`
}

// UserPage is the rendered user list plus its aggregates.
type UserPage struct {
	Items  []model.User `json:"items"`
	Counts UserCounts   `json:"counts"`
}

// Users fetches the user list and filters it in memory.
func (s *Service) Users(ctx context.Context, filter UserFilter) (UserPage, error) {
	data, err := s.data()
	if err != nil {
		return UserPage{}, err
	}
	all, err := data.ListUsers(ctx)
	if err != nil {
		return UserPage{}, err
	}

	page := UserPage{Items: []model.User{}}
	for _, u := range all {
		page.Counts.Total++
		switch u.Status {
		case model.UserActive:
			page.Counts.Active++
		case model.UserBanned:
			page.Counts.Banned++
		}
		if u.EmailVerified && u.PhoneVerified {
			page.Counts.Verified++
		}
		if userMatches(u, filter) {
			page.Items = append(page.Items, u)
		}
	}
	s.record(ctx, "console.users.list", map[string]any{"visible": len(page.Items)})
	return page, nil
}

func userMatches(u model.User, filter UserFilter) bool {
	if !searchMatches(filter.Search, u.FirstName, u.LastName, u.Email, u.Phone) {
		return false
	}
	if !enumMatches(filter.Role, u.Role) {
		return false
	}
	if !enumMatches(filter.Status, u.Status) {
		return false
	}
	return enumMatches(filter.Membership, u.Membership)
}

// User fetches one account to seed the edit dialog.
func (s *Service) User(ctx context.Context, id string) (model.User, error) {
	data, err := s.data()
	if err != nil {
		return model.User{}, err
	}
	return data.GetUser(ctx, id)
}

// UpdateUser validates the staged draft and persists it.
func (s *Service) UpdateUser(ctx context.Context, user model.User) (model.User, error) {
	data, err := s.data()
	if err != nil {
		return model.User{}, err
	}
	if err := s.opts.Validator.Validate(DraftUser, user); err != nil {
		return model.User{}, err
	}
	return data.UpdateUser(ctx, user)
}
