package handler

import (
	"wordquiz/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot        *tele.Bot
	vocabulary *service.VocabularyStore
	sessions   *service.SessionState
	logger     *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	vocabulary *service.VocabularyStore,
	sessions *service.SessionState,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:        bot,
		vocabulary: vocabulary,
		sessions:   sessions,
		logger:     logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	// Commands
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle("/add", h.handleAdd)
	h.bot.Handle("/help", h.handleHelp)

	// Answers
	h.bot.Handle(tele.OnText, h.handleText)

	// Inline buttons
	h.bot.Handle(&btnSkip, h.handleSkip)
}

// Commands returns the bot command menu
func Commands() []tele.Command {
	return []tele.Command{
		{Text: "start", Description: "Начать тренировку"},
		{Text: "add", Description: "Добавить слова: слово - перевод"},
		{Text: "help", Description: "Как пользоваться ботом"},
	}
}

// Inline keyboard buttons
var (
	btnSkip = tele.Btn{
		Unique: "skip",
		Text:   "⏭ Пропустить",
	}
)

// questionMarkup returns the keyboard attached to every question
func questionMarkup() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{}
	menu.Inline(menu.Row(btnSkip))
	return menu
}
