// Package hopewall serves the public encouragement wall: six built-in
// messages plus moderated community submissions.
package hopewall

import (
	"sort"
	"time"

	"github.com/hopeworks/impact_hub/src/internal/domain/wall"
)

// IDGenerator produces a short alphanumeric identifier of the given length.
type IDGenerator func(length int) string

// Clock supplies the current time. Injected so tests can pin timestamps.
type Clock func() time.Time

// ===========================
// List wall use case
// ===========================

// ListWallUseCase returns the public wall: the six defaults first, then
// approved stored messages newest-first. Unapproved submissions never show.
type ListWallUseCase interface {
	Execute() ([]*wall.Message, error)
}

type listWallUseCase struct {
	messages wall.MessageRepository
	now      Clock
}

func NewListWallUseCase(messages wall.MessageRepository, now Clock) ListWallUseCase {
	return &listWallUseCase{messages: messages, now: now}
}

func (uc *listWallUseCase) Execute() ([]*wall.Message, error) {
	stored, err := uc.messages.FindApproved()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(stored, func(i, j int) bool {
		return stored[i].CreatedAt().After(stored[j].CreatedAt())
	})
	return append(wall.DefaultMessages(uc.now()), stored...), nil
}

// ===========================
// Post message use case
// ===========================

type PostMessageCommand struct {
	DisplayName string
	Text        string
	Language    string
}

type PostMessageResult struct {
	Message *wall.Message
}

// PostMessageUseCase stores a submission awaiting moderation. The message is
// accepted but not publicly listed until approved.
type PostMessageUseCase interface {
	Execute(cmd PostMessageCommand) (*PostMessageResult, error)
}

type postMessageUseCase struct {
	messages wall.MessageRepository
	newID    IDGenerator
	now      Clock
}

func NewPostMessageUseCase(messages wall.MessageRepository, newID IDGenerator, now Clock) PostMessageUseCase {
	return &postMessageUseCase{messages: messages, newID: newID, now: now}
}

func (uc *postMessageUseCase) Execute(cmd PostMessageCommand) (*PostMessageResult, error) {
	language := cmd.Language
	if language == "" {
		language = "en"
	}

	m, err := wall.NewMessage(uc.newID(wall.MessageIDLength), cmd.DisplayName, cmd.Text, language, uc.now().UTC())
	if err != nil {
		return nil, err
	}
	if err := uc.messages.Append(m); err != nil {
		return nil, err
	}
	return &PostMessageResult{Message: m}, nil
}
