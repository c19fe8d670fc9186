package handler

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleText treats any non-command text as an answer to the current word
func (h *Handler) handleText(c tele.Context) error {
	userID := c.Sender().ID
	text := c.Text()

	// Ignore commands (starting with /)
	if strings.HasPrefix(strings.TrimSpace(text), "/") {
		return nil
	}

	result, ok := h.sessions.Answer(userID, text, h.vocabulary.Words())
	if !ok {
		return c.Send(msgNoSession)
	}

	h.logger.Info("Answer graded",
		zap.Int64("user_id", userID),
		zap.String("word", result.Expected.Source),
		zap.Bool("correct", result.Correct),
	)

	reply := msgCorrect
	if !result.Correct {
		reply = fmt.Sprintf(msgWrong, result.Expected.Target)
	}
	if err := c.Send(reply); err != nil {
		return err
	}

	return h.sendQuestion(c, result.Next, result.HasNext)
}
