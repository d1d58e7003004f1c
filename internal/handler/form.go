package handler

import (
	"context"

	"intakebot/internal/domain"
	"intakebot/internal/texts"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// formStep stores the answer under the given field, asks the next fixed
// question and registers the next step. The flow is strictly linear; no
// step validates answer content.
func (h *Handler) formStep(field string, next domain.Step, nextPrompt string) tele.HandlerFunc {
	return func(c tele.Context) error {
		session, err := h.storeAnswer(c, field)
		if err != nil {
			return nil
		}

		h.steps.Register(c.Chat().ID, next)
		return h.send(c, session, nextPrompt)
	}
}

// finishForm stores the contact answer and completes the flow with two
// separate sends: the collected summary, then the generated advice (or
// its fixed fallback).
func (h *Handler) finishForm(c tele.Context) error {
	session, err := h.storeAnswer(c, domain.FieldContactInfo)
	if err != nil {
		return nil
	}

	h.logger.Info("Form completed",
		zap.Int64("user_id", session.UserID),
		zap.Int("fields", len(session.Form)),
	)

	if err := h.send(c, session, texts.FormSummary(session.Form)); err != nil {
		h.logger.Error("Failed to send form summary", zap.Error(err))
	}

	advice := h.advisor.Advise(context.Background(), texts.ProblemStatement(session.Form))
	return h.send(c, session, advice)
}

func (h *Handler) storeAnswer(c tele.Context, field string) (*domain.Session, error) {
	answer := c.Text()

	session, err := h.sessions.Update(c.Sender().ID, func(s *domain.Session) {
		if s.Form == nil {
			s.Form = domain.Form{}
		}
		s.Form[field] = answer
	})
	if err != nil {
		h.logger.Error("Failed to store form answer",
			zap.String("field", field),
			zap.Error(err),
		)
		return nil, err
	}
	return session, nil
}
