package validator

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"blog-publishing-platform/internal/domain"
)

var validRoles = []interface{}{string(domain.RoleAuthor), string(domain.RoleEditor)}

// Validator provides validation methods for request inputs.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateNewPost validates the inputs for post creation.
func (v *Validator) ValidateNewPost(title, content string) error {
	return validation.Errors{
		"title": validation.Validate(title,
			validation.Required.Error("title_required"),
			validation.Length(1, 200).Error("title_too_long"),
		),
		"content": validation.Validate(content,
			validation.Required.Error("content_required"),
		),
	}.Filter()
}

// ValidatePostUpdate validates the inputs for a post edit. At least one field
// must be present, and present fields must be non-empty.
func (v *Validator) ValidatePostUpdate(update domain.PostUpdate) error {
	if update.Title == nil && update.Content == nil {
		return validation.Errors{
			"updates": validation.NewError("no_updates_provided", "no_updates_provided"),
		}
	}

	errs := validation.Errors{}
	if update.Title != nil {
		errs["title"] = validation.Validate(*update.Title,
			validation.Required.Error("title_required"),
			validation.Length(1, 200).Error("title_too_long"),
		)
	}
	if update.Content != nil {
		errs["content"] = validation.Validate(*update.Content,
			validation.Required.Error("content_required"),
		)
	}
	return errs.Filter()
}

// ValidateSignup validates the inputs for user signup.
func (v *Validator) ValidateSignup(name, email, password, role string) error {
	return validation.Errors{
		"name": validation.Validate(name,
			validation.Required.Error("name_required"),
		),
		"email": validation.Validate(email,
			validation.Required.Error("email_required"),
			is.Email.Error("invalid_email_format"),
		),
		"password": validation.Validate(password,
			validation.Required.Error("password_required"),
			validation.Length(8, 72).Error("password_too_short"),
		),
		"role": validation.Validate(role,
			validation.Required.Error("role_required"),
			validation.In(validRoles...).Error("invalid_role"),
		),
	}.Filter()
}

// IsValidationError reports whether err is an input validation failure, as
// opposed to a business-rule or storage failure.
func IsValidationError(err error) bool {
	_, ok := err.(validation.Errors)
	return ok
}
