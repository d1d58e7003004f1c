package handler

import (
	"intakebot/internal/domain"
	"intakebot/internal/texts"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const contractOfferURL = "https://example.com/contract-offer"

// Inline keyboard buttons
var (
	btnClientYes = tele.Btn{
		Unique: "client_yes",
		Text:   "Да",
	}
	btnClientNo = tele.Btn{
		Unique: "client_no",
		Text:   "Нет",
	}
	btnMenuContract = tele.Btn{
		Unique: "menu_contract",
		Text:   "📄 Договор",
	}
	btnMenuAbout = tele.Btn{
		Unique: "menu_about",
		Text:   "🏢 О компании",
	}
	btnMenuExamples = tele.Btn{
		Unique: "menu_examples",
		Text:   "💼 Примеры работ",
	}
	btnMenuSolution = tele.Btn{
		Unique: "menu_solution",
		Text:   "🚀 Подобрать решение",
	}
)

// clientCheckMarkup returns the existing-client question keyboard
func clientCheckMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(btnClientYes, btnClientNo))
	return markup
}

// newUserMenuMarkup returns the new-client menu keyboard
func newUserMenuMarkup() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(btnMenuContract),
		markup.Row(btnMenuAbout),
		markup.Row(btnMenuExamples),
		markup.Row(btnMenuSolution),
	)
	return markup
}

// handleClientYes asks for the contract number and routes the next
// free-text message to the contract-number step
func (h *Handler) handleClientYes(c tele.Context) error {
	unlock := h.lockUser(c.Sender().ID)
	defer unlock()

	session, err := h.session(c)
	if err != nil {
		return nil
	}

	h.steps.Register(c.Chat().ID, domain.StepContractNumber)

	if err := h.send(c, session, texts.AskContract); err != nil {
		return err
	}
	return c.Respond()
}

// handleClientNo presents the new-client menu
func (h *Handler) handleClientNo(c tele.Context) error {
	unlock := h.lockUser(c.Sender().ID)
	defer unlock()

	session, err := h.session(c)
	if err != nil {
		return nil
	}

	if err := h.send(c, session, texts.MenuPrompt, newUserMenuMarkup()); err != nil {
		return err
	}
	return c.Respond()
}

// handleMenuContract sends the standard contract as a link
func (h *Handler) handleMenuContract(c tele.Context) error {
	unlock := h.lockUser(c.Sender().ID)
	defer unlock()

	session, err := h.session(c)
	if err != nil {
		return nil
	}

	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(markup.URL("Открыть договор", contractOfferURL)))

	if err := h.send(c, session, texts.ContractLink, markup); err != nil {
		return err
	}
	return c.Respond()
}

// handleMenuAbout sends the company description
func (h *Handler) handleMenuAbout(c tele.Context) error {
	unlock := h.lockUser(c.Sender().ID)
	defer unlock()

	session, err := h.session(c)
	if err != nil {
		return nil
	}

	if err := h.send(c, session, texts.About); err != nil {
		return err
	}
	return c.Respond()
}

// handleMenuExamples sends the portfolio text
func (h *Handler) handleMenuExamples(c tele.Context) error {
	unlock := h.lockUser(c.Sender().ID)
	defer unlock()

	session, err := h.session(c)
	if err != nil {
		return nil
	}

	if err := h.send(c, session, texts.Examples); err != nil {
		return err
	}
	return c.Respond()
}

// handleMenuSolution starts the needs-gathering form
func (h *Handler) handleMenuSolution(c tele.Context) error {
	unlock := h.lockUser(c.Sender().ID)
	defer unlock()

	session, err := h.sessions.Update(c.Sender().ID, func(s *domain.Session) {
		s.Form = domain.Form{}
	})
	if err != nil {
		h.logger.Error("Failed to start form", zap.Error(err))
		return nil
	}

	h.steps.Register(c.Chat().ID, domain.StepFormProject)

	if err := h.send(c, session, texts.AskProject); err != nil {
		return err
	}
	return c.Respond()
}
