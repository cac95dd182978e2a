package usecase

import (
	"context"
	"fmt"

	chat "github.com/Shreya020904/Planner-ui/internal/pkg/chat/application/domain"
	users "github.com/Shreya020904/Planner-ui/internal/repository/port"
)

type ListContactsInput struct {
	UserID string
	Query  string
	// Pinned lists contact ids in pin order.
	Pinned []string
}

// ContactList splits the directory into the pinned contacts, in pin order,
// and everyone else.
type ContactList struct {
	Pinned []chat.Contact `json:"pinned"`
	Others []chat.Contact `json:"others"`
}

// ListContactsUseCase lists every user plus the assistant, minus the
// caller, filtered by display name.
type ListContactsUseCase struct {
	Users users.UserRepository
}

func NewListContactsUseCase(repo users.UserRepository) *ListContactsUseCase {
	return &ListContactsUseCase{Users: repo}
}

func (uc *ListContactsUseCase) Execute(ctx context.Context, in ListContactsInput) (*ContactList, error) {
	all, err := uc.Users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	directory := make([]chat.Contact, 0, len(all)+1)
	for _, u := range all {
		if u.ID == in.UserID {
			continue
		}
		directory = append(directory, chat.Contact{
			ID:          u.ID,
			DisplayName: u.DisplayName,
			Designation: u.Designation,
			Avatar:      u.Avatar,
		})
	}
	directory = append(directory, chat.AssistantContact())

	byID := make(map[string]chat.Contact, len(directory))
	for _, c := range directory {
		byID[c.ID] = c
	}

	out := &ContactList{Pinned: []chat.Contact{}, Others: []chat.Contact{}}
	pinned := make(map[string]bool, len(in.Pinned))
	for _, id := range in.Pinned {
		c, ok := byID[id]
		if !ok || pinned[id] {
			continue
		}
		pinned[id] = true
		if c.MatchesQuery(in.Query) {
			out.Pinned = append(out.Pinned, c)
		}
	}
	for _, c := range directory {
		if !pinned[c.ID] && c.MatchesQuery(in.Query) {
			out.Others = append(out.Others, c)
		}
	}
	return out, nil
}
