package validator

import "testing"

func TestValidateRegistration(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		in      RegistrationInput
		wantErr bool
	}{
		{"valid", RegistrationInput{Username: "ada", Email: "ada@x.com", Password: "correcthorse"}, false},
		{"short domain email", RegistrationInput{Username: "ada", Email: "a.b@x.co", Password: "correcthorse"}, false},
		{"missing username", RegistrationInput{Email: "ada@x.com", Password: "correcthorse"}, true},
		{"username with spaces", RegistrationInput{Username: "ada lovelace", Email: "ada@x.com", Password: "correcthorse"}, true},
		{"username with symbols", RegistrationInput{Username: "ada!", Email: "ada@x.com", Password: "correcthorse"}, true},
		{"bad email", RegistrationInput{Username: "ada", Email: "not-an-email", Password: "correcthorse"}, true},
		{"email without dot", RegistrationInput{Username: "ada", Email: "ada@x", Password: "correcthorse"}, true},
		{"email with spaces", RegistrationInput{Username: "ada", Email: "ada lovelace@x.com", Password: "correcthorse"}, true},
		{"short password", RegistrationInput{Username: "ada", Email: "ada@x.com", Password: "short"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateRegistration(&tt.in)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRegistration() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateArticle(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		in      ArticleInput
		wantErr bool
	}{
		{"valid", ArticleInput{Title: "My Title", Body: "content"}, false},
		{"valid with tags", ArticleInput{Title: "My Title", Body: "content", Tags: []string{"go", "web-dev"}}, false},
		{"missing title", ArticleInput{Body: "content"}, true},
		{"missing body", ArticleInput{Title: "My Title"}, true},
		{"uppercase tag", ArticleInput{Title: "My Title", Body: "content", Tags: []string{"Go"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateArticle(&tt.in)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateArticle() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateComment(t *testing.T) {
	v := NewValidator()

	if err := v.ValidateComment(&CommentInput{Body: "nice article"}); err != nil {
		t.Errorf("ValidateComment(valid) error = %v", err)
	}
	if err := v.ValidateComment(&CommentInput{}); err == nil {
		t.Error("ValidateComment(empty body) = nil, want error")
	}
}
