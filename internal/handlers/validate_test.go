package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidEmail(t *testing.T) {
	t.Parallel()

	assert.True(t, validEmail("a@x.com"))
	assert.True(t, validEmail("first.last@example.co"))
	assert.False(t, validEmail(""))
	assert.False(t, validEmail("not-an-email"))
	assert.False(t, validEmail("a@"))
	assert.False(t, validEmail("Name <a@x.com>"))
}

func TestValidateSignupOrdering(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                    string
		email, password, repeat string
		want                    string
	}{
		{"all valid", "a@x.com", "password1", "password1", ""},
		{"bad email wins over short password", "nope", "short", "short", "Invalid email"},
		{"short password wins over mismatch", "a@x.com", "short", "different", "Password must be minimum 8 characters"},
		{"mismatch reported last", "a@x.com", "password1", "password2", "Passwords do not match"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, validateSignup(tt.email, tt.password, tt.repeat))
		})
	}
}

func TestValidateLogin(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", validateLogin("a@x.com", "password1"))
	assert.Equal(t, "Invalid email", validateLogin("", "password1"))
	assert.Equal(t, "Password is minimum 8 characters", validateLogin("a@x.com", "short"))
}

func TestValidateProfile(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", validateProfile("a@x.com"))
	assert.Equal(t, "Invalid email", validateProfile("bad"))
}
