package handler

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"wordquiz/internal/domain"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleAdd handles /add command.
// Payload is the text after the command or, if empty, the text of the replied-to message.
func (h *Handler) handleAdd(c tele.Context) error {
	userID := c.Sender().ID

	payload := commandPayload(c.Text())
	if payload == "" {
		if msg := c.Message(); msg != nil && msg.ReplyTo != nil {
			payload = strings.TrimSpace(msg.ReplyTo.Text)
		}
	}
	if payload == "" {
		return c.Send(msgAddFormat)
	}

	result, err := h.vocabulary.Add(payload)
	if err != nil {
		h.logger.Error("Failed to add words",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return c.Send(msgSaveFailed)
	}

	h.logger.Info("Words added",
		zap.Int64("user_id", userID),
		zap.Int("added", len(result.Added)),
		zap.Int("rejected", len(result.Errors)),
	)

	if len(result.Added) == 0 && len(result.Errors) == 0 {
		return c.Send(msgAddFormat)
	}

	return c.Send(formatAddResult(result.Added, result.Errors))
}

// commandPayload strips the leading /command token and keeps the rest, line breaks included
func commandPayload(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return text
	}

	idx := strings.IndexFunc(text, unicode.IsSpace)
	if idx < 0 {
		return ""
	}
	return strings.TrimSpace(text[idx:])
}

func formatAddResult(added []domain.WordPair, errs []*domain.ValidationError) string {
	var b strings.Builder

	if len(added) > 0 {
		fmt.Fprintf(&b, msgAdded, len(added))
		for _, p := range added {
			b.WriteString("\n• ")
			b.WriteString(p.String())
		}
	}

	if len(errs) > 0 {
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(msgAddErrors)
		for _, e := range errs {
			b.WriteString("\n• ")
			b.WriteString(describeValidationError(e))
		}
		if len(added) == 0 {
			b.WriteString("\n\n")
			b.WriteString(msgAddFormat)
		}
	}

	return b.String()
}

func describeValidationError(e *domain.ValidationError) string {
	var reason string
	switch {
	case errors.Is(e, domain.ErrMissingSeparator):
		reason = "нет разделителя «-»"
	case errors.Is(e, domain.ErrMissingSource):
		reason = "не указано слово"
	case errors.Is(e, domain.ErrMissingTranslation):
		reason = fmt.Sprintf("не указан перевод для «%s»", e.Source)
	case errors.Is(e, domain.ErrDuplicateWord):
		reason = fmt.Sprintf("слово «%s» уже есть в словаре", e.Source)
	default:
		reason = e.Error()
	}
	return fmt.Sprintf("%d: %s", e.Position, reason)
}
