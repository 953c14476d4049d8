package service

import (
	"context"
	"fmt"

	"content-site-api/internal/domain"
	"content-site-api/internal/logger"
	"content-site-api/internal/repository"
	"content-site-api/internal/validator"
)

// ContactService handles contact-form submissions.
type ContactService struct {
	repo      repository.ContactRepository
	notifier  Notifier
	validator *validator.Validator
	from      string
	recipient string
}

// NewContactService creates a new ContactService. Notifications go from
// sender to recipient; an empty recipient disables them.
func NewContactService(
	repo repository.ContactRepository,
	notifier Notifier,
	v *validator.Validator,
	sender string,
	recipient string,
) *ContactService {
	return &ContactService{
		repo:      repo,
		notifier:  notifier,
		validator: v,
		from:      sender,
		recipient: recipient,
	}
}

// Submit validates and stores the submission, then notifies the site owner.
// A delivery failure is returned after the contact has been stored.
func (s *ContactService) Submit(ctx context.Context, contact *domain.Contact) error {
	if err := s.validator.ValidateContact(contact); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, contact); err != nil {
		return fmt.Errorf("store contact: %w", err)
	}

	if s.recipient == "" {
		logger.WarnContext(ctx, "Contact notification skipped, no recipient configured", "contact_id", contact.ID)
		return nil
	}

	if err := s.notifier.Send(ctx, contactNotification(contact, s.from, s.recipient)); err != nil {
		return fmt.Errorf("notify contact %s: %w", contact.ID, err)
	}
	return nil
}

// List returns all submissions, newest first.
func (s *ContactService) List(ctx context.Context) ([]domain.Contact, error) {
	contacts, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	if contacts == nil {
		contacts = []domain.Contact{}
	}
	return contacts, nil
}

// Delete removes a submission by id.
func (s *ContactService) Delete(ctx context.Context, id string) error {
	if err := s.validator.ValidateID(id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func contactNotification(c *domain.Contact, from, to string) domain.Notification {
	return domain.Notification{
		From:    from,
		To:      to,
		Subject: "New Contact Form Submission from " + c.Name,
		Body: fmt.Sprintf("You have received a new contact form submission.\n\nName: %s\nEmail: %s\n\nMessage:\n%s\n",
			c.Name, c.Email, c.Message),
	}
}
