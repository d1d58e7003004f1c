package middleware

import (
	"strings"

	"intakebot/internal/handler"
	"intakebot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// SessionBootstrap creates middleware that re-runs the start transition
// for chats without a session before any flow other than /start and
// /lang proceeds.
func SessionBootstrap(sessions *service.SessionService, graph *handler.Handler, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			if sender == nil {
				return next(c)
			}

			text := c.Text()
			if strings.HasPrefix(text, "/start") || strings.HasPrefix(text, "/lang") {
				return next(c)
			}

			exists, err := sessions.Exists(sender.ID)
			if err != nil {
				logger.Error("Failed to check session in middleware", zap.Error(err))
				return next(c)
			}

			if !exists {
				if err := graph.Bootstrap(c); err != nil {
					logger.Error("Failed to bootstrap session",
						zap.Int64("user_id", sender.ID),
						zap.Error(err),
					)
					return nil
				}
			}

			return next(c)
		}
	}
}
