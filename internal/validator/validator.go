package validator

import (
	"errors"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"content-site-api/internal/domain"
)

var slugRegex = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Validator provides validation methods for domain entities.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateContact validates a Contact submission.
func (v *Validator) ValidateContact(c *domain.Contact) error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Name,
			validation.Required.Error("name_required"),
			validation.Length(1, 200).Error("name_too_long"),
		),
		validation.Field(&c.Email,
			validation.Required.Error("email_required"),
			is.EmailFormat.Error("invalid_email_format"),
		),
		validation.Field(&c.Message,
			validation.Required.Error("message_required"),
		),
	)
}

// ValidateBlogPost validates a BlogPost. The slug is only checked when set,
// since updates never recompute it.
func (v *Validator) ValidateBlogPost(p *domain.BlogPost) error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Title,
			validation.Required.Error("title_required"),
		),
		validation.Field(&p.Content,
			validation.Required.Error("content_required"),
		),
		validation.Field(&p.Author,
			validation.Required.Error("author_required"),
		),
		validation.Field(&p.Slug,
			validation.Match(slugRegex).Error("invalid_slug_format"),
		),
	)
}

// ValidateJobPosting validates a JobPosting.
func (v *Validator) ValidateJobPosting(j *domain.JobPosting) error {
	err := validation.ValidateStruct(j,
		validation.Field(&j.Title,
			validation.Required.Error("title_required"),
		),
		validation.Field(&j.Company,
			validation.Required.Error("company_required"),
		),
		validation.Field(&j.Type,
			validation.Required.Error("type_required"),
			oneOf(domain.IsValidJobType, "invalid_type"),
		),
		validation.Field(&j.Description,
			validation.Required.Error("description_required"),
		),
		validation.Field(&j.ApplyURL,
			validation.Required.Error("apply_url_required"),
			is.URL.Error("invalid_apply_url"),
		),
	)
	if err != nil {
		return err
	}

	// Custom rule: salary range must not be inverted
	if j.Salary.Min != nil && j.Salary.Max != nil && *j.Salary.Min > *j.Salary.Max {
		return validation.Errors{
			"salary": validation.NewError("salary_min_exceeds_max", "salary min exceeds max"),
		}
	}

	return nil
}

// ValidateProduct validates a Product.
func (v *Validator) ValidateProduct(p *domain.Product) error {
	return validation.ValidateStruct(p,
		validation.Field(&p.Name,
			validation.Required.Error("name_required"),
		),
	)
}

// ValidateChatMessage validates a ChatMessage.
func (v *Validator) ValidateChatMessage(m *domain.ChatMessage) error {
	return validation.ValidateStruct(m,
		validation.Field(&m.From,
			validation.Required.Error("from_required"),
			oneOf(domain.IsValidSender, "invalid_sender"),
		),
		validation.Field(&m.Text,
			validation.Required.Error("text_required"),
		),
	)
}

// ValidateID checks that a record identifier is a well-formed UUID.
func (v *Validator) ValidateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return validation.Errors{
			"id": validation.NewError("invalid_id", "id must be a valid UUID"),
		}
	}
	return nil
}

// oneOf rejects non-empty strings the predicate does not accept. Empty
// values are left to Required.
func oneOf(valid func(string) bool, code string) validation.Rule {
	return validation.By(func(value interface{}) error {
		s, _ := value.(string)
		if s == "" || valid(s) {
			return nil
		}
		return validation.NewError(code, code)
	})
}

// NewFieldError builds a validation error for a single field.
func NewFieldError(field, code, message string) error {
	return validation.Errors{
		field: validation.NewError(code, message),
	}
}

// IsValidationError reports whether err carries an input validation failure
// rather than an internal one.
func IsValidationError(err error) bool {
	if err == nil {
		return false
	}
	var internal validation.InternalError
	if errors.As(err, &internal) {
		return false
	}
	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		return true
	}
	var ruleErr validation.Error
	return errors.As(err, &ruleErr)
}
