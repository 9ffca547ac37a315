package domain

import (
	"testing"
)

func TestNormalizeUsername(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ada", "ada"},
		{"Ada", "ada"},
		{"  ADA  ", "ada"},
		{"Ada123", "ada123"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := NormalizeUsername(tt.in); got != tt.want {
				t.Errorf("NormalizeUsername(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"ada@x.com", "ada@x.com"},
		{"Ada@X.Com", "ada@x.com"},
		{" ada@x.com ", "ada@x.com"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := NormalizeEmail(tt.in); got != tt.want {
				t.Errorf("NormalizeEmail(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestImageOrDefault(t *testing.T) {
	u := &User{}
	if got := u.ImageOrDefault(); got != DefaultUserImage {
		t.Errorf("ImageOrDefault() = %q, want default image", got)
	}

	u.Image = "https://example.com/me.png"
	if got := u.ImageOrDefault(); got != u.Image {
		t.Errorf("ImageOrDefault() = %q, want %q", got, u.Image)
	}
}

func TestHasTag(t *testing.T) {
	a := &Article{Tags: []string{"go", "testing"}}

	if !a.HasTag("go") {
		t.Error("HasTag(go) = false, want true")
	}
	if a.HasTag("GO") {
		t.Error("HasTag(GO) = true, want false (tags are exact)")
	}
	if a.HasTag("rust") {
		t.Error("HasTag(rust) = true, want false")
	}
}
