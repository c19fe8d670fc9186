package handler

import (
	"fmt"

	"wordquiz/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	userID := c.Sender().ID

	h.logger.Info("User started quiz",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	h.sessions.Reset(userID)

	if err := c.Send(msgGreeting + "\n\n" + msgUsage); err != nil {
		return err
	}

	return h.askWord(c)
}

// handleHelp handles /help command
func (h *Handler) handleHelp(c tele.Context) error {
	return c.Send(msgUsage)
}

// askWord issues the next word of the user's cycle
func (h *Handler) askWord(c tele.Context) error {
	pair, ok := h.sessions.Next(c.Sender().ID, h.vocabulary.Words())
	return h.sendQuestion(c, pair, ok)
}

// sendQuestion sends a drawn word, or the empty-dictionary hint when nothing was drawn
func (h *Handler) sendQuestion(c tele.Context, pair domain.WordPair, ok bool) error {
	if !ok {
		return c.Send(msgEmptyDictionary)
	}

	userID := c.Sender().ID
	h.logger.Debug("Word issued",
		zap.Int64("user_id", userID),
		zap.String("word", pair.Source),
		zap.Int("remaining", h.sessions.Remaining(userID)),
	)

	return c.Send(fmt.Sprintf(msgAskWord, pair.Source), questionMarkup())
}
