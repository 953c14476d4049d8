package service

import (
	"context"
	"fmt"

	"content-site-api/internal/domain"
	"content-site-api/internal/repository"
	"content-site-api/internal/validator"
)

// ChatService handles the chat message log.
type ChatService struct {
	repo      repository.ChatRepository
	validator *validator.Validator
}

// NewChatService creates a new ChatService.
func NewChatService(repo repository.ChatRepository, v *validator.Validator) *ChatService {
	return &ChatService{repo: repo, validator: v}
}

// Create validates msg and appends it to the log.
func (s *ChatService) Create(ctx context.Context, msg *domain.ChatMessage) error {
	if err := s.validator.ValidateChatMessage(msg); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, msg); err != nil {
		return fmt.Errorf("store chat message: %w", err)
	}
	return nil
}

// List returns the log oldest first.
func (s *ChatService) List(ctx context.Context) ([]domain.ChatMessage, error) {
	msgs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list chat messages: %w", err)
	}
	if msgs == nil {
		msgs = []domain.ChatMessage{}
	}
	return msgs, nil
}

// Delete removes one message. An unknown id yields domain.ErrNotFound.
func (s *ChatService) Delete(ctx context.Context, id string) error {
	if err := s.validator.ValidateID(id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
