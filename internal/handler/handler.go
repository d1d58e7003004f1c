package handler

import (
	"context"
	"sync"

	"intakebot/internal/domain"
	"intakebot/internal/render"
	"intakebot/internal/scheduler"
	"intakebot/internal/service"
	"intakebot/internal/texts"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler is the dialogue graph: it decides outgoing content for every
// inbound event and registers the step that consumes the next free-text
// message.
type Handler struct {
	bot        *tele.Bot
	sessions   *service.SessionService
	contracts  *service.ContractService
	translator *service.Translator
	advisor    *service.Advisor
	steps      *scheduler.Scheduler
	logger     *zap.Logger

	defaultLanguage string
	languages       []string

	stepHandlers map[domain.Step]tele.HandlerFunc

	// Per-user locks: a user's session and pending step are only ever
	// touched by one update at a time.
	userLocks map[int64]*sync.Mutex
	locksMux  sync.Mutex
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	sessions *service.SessionService,
	contracts *service.ContractService,
	translator *service.Translator,
	advisor *service.Advisor,
	steps *scheduler.Scheduler,
	defaultLanguage string,
	languages []string,
	logger *zap.Logger,
) *Handler {
	h := &Handler{
		bot:             bot,
		sessions:        sessions,
		contracts:       contracts,
		translator:      translator,
		advisor:         advisor,
		steps:           steps,
		logger:          logger,
		defaultLanguage: defaultLanguage,
		languages:       languages,
		userLocks:       make(map[int64]*sync.Mutex),
	}

	// Dispatch table for pending steps: registering a continuation means
	// writing one of these names into the scheduler.
	h.stepHandlers = map[domain.Step]tele.HandlerFunc{
		domain.StepContractNumber:   h.stepContractNumber,
		domain.StepSelectLanguage:   h.stepSelectLanguage,
		domain.StepFormProject:      h.formStep(domain.FieldProject, domain.StepFormTask, texts.AskTask),
		domain.StepFormTask:         h.formStep(domain.FieldTask, domain.StepFormRestrictions, texts.AskRestrictions),
		domain.StepFormRestrictions: h.formStep(domain.FieldRestrictions, domain.StepFormContactInfo, texts.AskContact),
		domain.StepFormContactInfo:  h.finishForm,
	}

	return h
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/lang", h.handleLang)

	// Free-text messages
	h.bot.Handle(tele.OnText, h.handleText)

	// Callback queries (inline buttons)
	h.bot.Handle(&btnClientYes, h.handleClientYes)
	h.bot.Handle(&btnClientNo, h.handleClientNo)
	h.bot.Handle(&btnMenuContract, h.handleMenuContract)
	h.bot.Handle(&btnMenuAbout, h.handleMenuAbout)
	h.bot.Handle(&btnMenuExamples, h.handleMenuExamples)
	h.bot.Handle(&btnMenuSolution, h.handleMenuSolution)

	// Anything else is inert
	h.bot.Handle(tele.OnCallback, h.handleUnknownCallback)
}

// lockUser serializes the handling of one user's updates
func (h *Handler) lockUser(userID int64) func() {
	h.locksMux.Lock()
	lock, exists := h.userLocks[userID]
	if !exists {
		lock = &sync.Mutex{}
		h.userLocks[userID] = lock
	}
	h.locksMux.Unlock()

	lock.Lock()
	return lock.Unlock
}

// session loads the session of the sending user
func (h *Handler) session(c tele.Context) (*domain.Session, error) {
	session, err := h.sessions.Get(c.Sender().ID)
	if err != nil {
		h.logger.Error("Failed to load session",
			zap.Int64("user_id", c.Sender().ID),
			zap.Error(err),
		)
		return nil, err
	}
	return session, nil
}

// send renders outbound text for the session and sends it: translated
// first when the session language differs from the default, escaped
// exactly once after that.
func (h *Handler) send(c tele.Context, session *domain.Session, text string, extra ...interface{}) error {
	if session.Language != h.defaultLanguage {
		text = h.translator.Translate(context.Background(), text, h.defaultLanguage, session.Language)
	}

	opts := append([]interface{}{tele.ModeMarkdownV2}, extra...)
	return c.Send(render.Escape(text), opts...)
}

// supported reports whether the choice is in the enumerated language set.
// Matching is exact and case-sensitive.
func (h *Handler) supported(language string) bool {
	for _, candidate := range h.languages {
		if candidate == language {
			return true
		}
	}
	return false
}

// handleUnknownCallback acknowledges callbacks that match no known
// button. No reply is sent.
func (h *Handler) handleUnknownCallback(c tele.Context) error {
	callback := c.Callback()
	if callback == nil {
		return nil
	}

	h.logger.Warn("Unhandled callback",
		zap.String("unique", callback.Unique),
		zap.String("data", callback.Data),
		zap.Int64("user_id", c.Sender().ID),
	)
	return c.Respond()
}
