package handler

import (
	"errors"
	"strings"

	"intakebot/internal/domain"
	"intakebot/internal/texts"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// stepContractNumber stores the supplied contract number, echoes it back
// and reports either the looked-up status or a not-found message.
// Exactly one of the two reports is sent.
func (h *Handler) stepContractNumber(c tele.Context) error {
	number := strings.TrimSpace(c.Text())

	session, err := h.sessions.Update(c.Sender().ID, func(s *domain.Session) {
		s.ContractNumber = number
	})
	if err != nil {
		h.logger.Error("Failed to store contract number", zap.Error(err))
		return nil
	}

	if err := h.send(c, session, texts.ContractEcho(number)); err != nil {
		return err
	}

	status, err := h.contracts.FindStatus(number)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			h.logger.Error("Contract lookup failed",
				zap.String("number", number),
				zap.Error(err),
			)
		}
		return h.send(c, session, texts.ContractMissing)
	}

	return h.send(c, session, texts.ContractStatus(status))
}
