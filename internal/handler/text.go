package handler

import (
	"strings"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText routes free-text messages to the pending step of the chat,
// if any. A message with no pending step is ignored by the core.
func (h *Handler) handleText(c tele.Context) error {
	// Ignore commands (starting with /)
	if strings.HasPrefix(strings.TrimSpace(c.Text()), "/") {
		return nil
	}

	unlock := h.lockUser(c.Sender().ID)
	defer unlock()

	step, ok := h.steps.Consume(c.Chat().ID)
	if !ok {
		h.logger.Debug("Free text with no pending step, ignoring",
			zap.Int64("chat_id", c.Chat().ID),
		)
		return nil
	}

	stepHandler, ok := h.stepHandlers[step]
	if !ok {
		h.logger.Warn("Pending step has no handler",
			zap.String("step", string(step)),
			zap.Int64("chat_id", c.Chat().ID),
		)
		return nil
	}

	return stepHandler(c)
}
