package service

import (
	"errors"
	"testing"

	"intakebot/internal/domain"
	"intakebot/internal/repository/memory"

	"github.com/stretchr/testify/assert"
)

func TestSessionService_EnsureCreatesWithDefaultLanguage(t *testing.T) {
	service := NewSessionService(memory.NewSessionRepo(), "Russian")

	session, err := service.Ensure(123, 456, "Иван Петров")

	assert.NoError(t, err)
	assert.Equal(t, int64(123), session.UserID)
	assert.Equal(t, int64(456), session.ChatID)
	assert.Equal(t, "Иван Петров", session.DisplayName)
	assert.Equal(t, "Russian", session.Language)
	assert.Nil(t, session.Form)
}

func TestSessionService_EnsureNeverOverwritesLanguage(t *testing.T) {
	service := NewSessionService(memory.NewSessionRepo(), "Russian")

	_, err := service.Ensure(123, 456, "Иван")
	assert.NoError(t, err)

	_, err = service.Update(123, func(s *domain.Session) {
		s.Language = "Georgian"
	})
	assert.NoError(t, err)

	// A second /start must reuse the session as is.
	session, err := service.Ensure(123, 456, "Иван")
	assert.NoError(t, err)
	assert.Equal(t, "Georgian", session.Language)
}

func TestSessionService_UpdateUnknownUser(t *testing.T) {
	service := NewSessionService(memory.NewSessionRepo(), "Russian")

	_, err := service.Update(123, func(s *domain.Session) {})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestSessionService_Exists(t *testing.T) {
	service := NewSessionService(memory.NewSessionRepo(), "Russian")

	exists, err := service.Exists(123)
	assert.NoError(t, err)
	assert.False(t, exists)

	_, err = service.Ensure(123, 456, "Иван")
	assert.NoError(t, err)

	exists, err = service.Exists(123)
	assert.NoError(t, err)
	assert.True(t, exists)
}

func TestSessionService_UpdateBuildsFormIncrementally(t *testing.T) {
	service := NewSessionService(memory.NewSessionRepo(), "Russian")

	_, err := service.Ensure(123, 456, "Иван")
	assert.NoError(t, err)

	answers := map[string]string{
		domain.FieldProject:      "P",
		domain.FieldTask:         "T",
		domain.FieldRestrictions: "R",
		domain.FieldContactInfo:  "C",
	}

	for field, answer := range answers {
		field, answer := field, answer
		_, err := service.Update(123, func(s *domain.Session) {
			if s.Form == nil {
				s.Form = domain.Form{}
			}
			s.Form[field] = answer
		})
		assert.NoError(t, err)
	}

	session, err := service.Get(123)
	assert.NoError(t, err)
	assert.Equal(t, domain.Form(answers), session.Form)
}
