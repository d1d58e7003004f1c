package handler

import (
	"intakebot/internal/domain"
	"intakebot/internal/texts"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleLang handles /lang command, reachable from any state
func (h *Handler) handleLang(c tele.Context) error {
	unlock := h.lockUser(c.Sender().ID)
	defer unlock()

	exists, err := h.sessions.Exists(c.Sender().ID)
	if err != nil {
		h.logger.Error("Failed to check session", zap.Error(err))
		return nil
	}
	if !exists {
		if err := h.startTransition(c); err != nil {
			return err
		}
	}

	return h.promptLanguage(c)
}

// promptLanguage sends the selection keyboard and routes the next
// free-text message to the language step. Callers hold the user lock.
func (h *Handler) promptLanguage(c tele.Context) error {
	session, err := h.session(c)
	if err != nil {
		return nil
	}

	h.steps.Register(c.Chat().ID, domain.StepSelectLanguage)
	return h.send(c, session, texts.SelectLanguage, h.languageMarkup())
}

// stepSelectLanguage applies a valid selection or re-presents the same
// prompt, so an invalid entry never leaves the chat without a pending
// step.
func (h *Handler) stepSelectLanguage(c tele.Context) error {
	choice := c.Text()

	if err := c.Delete(); err != nil {
		h.logger.Warn("Failed to delete selection message", zap.Error(err))
	}

	if !h.supported(choice) {
		session, err := h.session(c)
		if err != nil {
			return nil
		}

		h.steps.Register(c.Chat().ID, domain.StepSelectLanguage)
		return h.send(c, session, texts.LanguageUnknown(choice), h.languageMarkup())
	}

	session, err := h.sessions.Update(c.Sender().ID, func(s *domain.Session) {
		s.Language = choice
	})
	if err != nil {
		h.logger.Error("Failed to set language", zap.Error(err))
		return nil
	}

	h.logger.Info("Language changed",
		zap.Int64("user_id", session.UserID),
		zap.String("language", choice),
	)

	return h.send(c, session, texts.LanguageSet(choice), &tele.ReplyMarkup{RemoveKeyboard: true})
}

// languageMarkup returns the one-time reply keyboard with one language
// per row
func (h *Handler) languageMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{
		ResizeKeyboard:  true,
		OneTimeKeyboard: true,
	}

	rows := make([]tele.Row, 0, len(h.languages))
	for _, language := range h.languages {
		rows = append(rows, markup.Row(markup.Text(language)))
	}
	markup.Reply(rows...)
	return markup
}
