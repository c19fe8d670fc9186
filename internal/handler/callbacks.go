package handler

import (
	"fmt"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleSkip reveals the answer to the current word and moves on
func (h *Handler) handleSkip(c tele.Context) error {
	userID := c.Sender().ID

	// Always acknowledge callback so the button stops spinning
	if err := c.Respond(); err != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
	}

	result, ok := h.sessions.Skip(userID, h.vocabulary.Words())
	if !ok {
		return c.Send(msgNoSession)
	}

	h.logger.Info("Word skipped",
		zap.Int64("user_id", userID),
		zap.String("word", result.Expected.Source),
	)

	if err := c.Send(fmt.Sprintf(msgSkipped, result.Expected.Target)); err != nil {
		return err
	}

	return h.sendQuestion(c, result.Next, result.HasNext)
}
