package validator

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var (
	// Usernames are alphanumeric only, matching the registration rule the
	// frontend relies on for profile URLs.
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	// Deliberately loose: anything of the shape x@y.z is accepted,
	// including short single-label domains like ada@x.com.
	emailRegex = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	tagRegex   = regexp.MustCompile(`^[a-z0-9]+([ -][a-z0-9]+)*$`)
)

// RegistrationInput is the payload for creating a user.
type RegistrationInput struct {
	Username string
	Email    string
	Password string
}

// LoginInput is the payload for logging in.
type LoginInput struct {
	Email    string
	Password string
}

// ArticleInput is the payload for creating or updating an article.
type ArticleInput struct {
	Title       string
	Description string
	Body        string
	Tags        []string
}

// CommentInput is the payload for adding a comment.
type CommentInput struct {
	Body string
}

// Validator provides validation methods for request payloads.
type Validator struct{}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateRegistration validates a registration payload.
func (v *Validator) ValidateRegistration(in *RegistrationInput) error {
	return validation.ValidateStruct(in,
		validation.Field(&in.Username,
			validation.Required.Error("username_required"),
			validation.Match(usernameRegex).Error("invalid_username"),
			validation.Length(1, 64).Error("username_too_long"),
		),
		validation.Field(&in.Email,
			validation.Required.Error("email_required"),
			validation.Match(emailRegex).Error("invalid_email_format"),
		),
		validation.Field(&in.Password,
			validation.Required.Error("password_required"),
			validation.Length(8, 128).Error("password_length"),
		),
	)
}

// ValidateLogin validates a login payload.
func (v *Validator) ValidateLogin(in *LoginInput) error {
	return validation.ValidateStruct(in,
		validation.Field(&in.Email,
			validation.Required.Error("email_required"),
		),
		validation.Field(&in.Password,
			validation.Required.Error("password_required"),
		),
	)
}

// ValidateArticle validates an article payload.
func (v *Validator) ValidateArticle(in *ArticleInput) error {
	err := validation.ValidateStruct(in,
		validation.Field(&in.Title,
			validation.Required.Error("title_required"),
			validation.Length(1, 255).Error("title_too_long"),
		),
		validation.Field(&in.Body,
			validation.Required.Error("body_required"),
		),
	)
	if err != nil {
		return err
	}

	for _, tag := range in.Tags {
		if !tagRegex.MatchString(tag) {
			return validation.Errors{
				"tagList": validation.NewError("invalid_tag", "tags must be lowercase alphanumeric"),
			}
		}
	}
	return nil
}

// ValidateComment validates a comment payload.
func (v *Validator) ValidateComment(in *CommentInput) error {
	return validation.ValidateStruct(in,
		validation.Field(&in.Body,
			validation.Required.Error("body_required"),
			validation.Length(1, 10000).Error("body_too_long"),
		),
	)
}
