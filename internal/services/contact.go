package service

import (
	"context"
	"fmt"

	"github.com/anuraag-firstaid/storefront/internal/errors"
	"github.com/anuraag-firstaid/storefront/internal/models"
	"github.com/anuraag-firstaid/storefront/pkg/sendgrid"
	"github.com/microcosm-cc/bluemonday"
)

// ContactService forwards contact and dealer inquiries to the sales inbox.
type ContactService struct {
	email     sendgrid.EmailService
	inbox     string
	sanitizer *bluemonday.Policy
}

func NewContactService(email sendgrid.EmailService, inbox string) *ContactService {
	return &ContactService{
		email:     email,
		inbox:     inbox,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

func (s *ContactService) Submit(ctx context.Context, req *models.ContactRequest) error {
	message := s.sanitizer.Sanitize(req.Message)
	name := s.sanitizer.Sanitize(req.Name)

	content := fmt.Sprintf("From: %s <%s>\nPhone: %s\nCompany: %s\n\n%s",
		name, req.Email, req.Phone, req.Company, message)

	err := s.email.Send(ctx, &models.EmailRequest{
		To:      s.inbox,
		Subject: fmt.Sprintf("Storefront inquiry from %s", name),
		Content: content,
	})
	if err != nil {
		return errors.ThirdPartyError("Failed to send inquiry email").WithError(err)
	}

	return nil
}
