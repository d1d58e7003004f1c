package handler

import (
	"intakebot/internal/texts"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	unlock := h.lockUser(c.Sender().ID)
	defer unlock()

	return h.startTransition(c)
}

// Bootstrap runs the start transition for a chat without a session. The
// bootstrap middleware uses it before letting other flows continue.
func (h *Handler) Bootstrap(c tele.Context) error {
	unlock := h.lockUser(c.Sender().ID)
	defer unlock()

	return h.startTransition(c)
}

// startTransition creates or reuses the session, greets the user and
// presents the existing-client question. Callers hold the user lock.
func (h *Handler) startTransition(c tele.Context) error {
	sender := c.Sender()

	name := sender.FirstName
	if sender.LastName != "" {
		name = name + " " + sender.LastName
	}

	session, err := h.sessions.Ensure(sender.ID, c.Chat().ID, name)
	if err != nil {
		h.logger.Error("Failed to create session",
			zap.Int64("user_id", sender.ID),
			zap.Error(err),
		)
		return err
	}

	h.logger.Info("User started bot",
		zap.Int64("user_id", sender.ID),
		zap.String("language", session.Language),
	)

	if err := h.send(c, session, texts.Greeting(session.DisplayName)); err != nil {
		return err
	}
	return h.send(c, session, texts.ClientCheck, clientCheckMarkup())
}
