package telegram

import (
	"context"
	"errors"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"versebot/internal/db"
	"versebot/internal/format"
	"versebot/internal/resolver"
	"versebot/internal/service"
)

type Bot struct {
	bot      *tgbotapi.BotAPI
	resolver *resolver.Resolver
	verses   *service.VerseClient
	store    *db.Store
	opts     format.Options
	locale   string
}

func NewBot(token string, res *resolver.Resolver, verses *service.VerseClient, store *db.Store, opts format.Options, locale string) (*Bot, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	bot.Debug = false
	log.Printf("Авторизован как %s", bot.Self.UserName)

	return &Bot{
		bot:      bot,
		resolver: res,
		verses:   verses,
		store:    store,
		opts:     opts,
		locale:   locale,
	}, nil
}

// Start — главный цикл
func (b *Bot) Start() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.bot.GetUpdatesChan(u)

	for update := range updates {
		if update.Message != nil {
			b.handleMessage(update.Message)
		}
	}
}

// handleMessage — любой текст трактуем как ссылку на стих.
func (b *Bot) handleMessage(msg *tgbotapi.Message) {
	if msg.IsCommand() {
		switch msg.Command() {
		case "start", "help":
			b.sendMessage(msg.Chat.ID, "Привет! Пришли ссылку на стих, например: John 3:16 или 1 Peter 5:7-9")
		}
		return
	}

	query := msg.Text
	chatID := msg.Chat.ID
	ctx := context.Background()

	ref, err := b.resolver.Resolve(query)
	if err != nil {
		// Не распознали — ничего не запрашиваем.
		b.record(ctx, query, "", "", false)
		b.sendMessage(chatID, format.NotRecognizedText)
		return
	}

	result, fetchErr := b.verses.FetchVerse(ctx, ref)
	b.record(ctx, query, result.Code, result.Reference, fetchErr == nil)

	if fetchErr != nil && !errors.Is(fetchErr, service.ErrNetwork) && !errors.Is(fetchErr, service.ErrNoVerse) {
		log.Printf("Error fetching %s: %v", result.Code, fetchErr)
	}

	b.sendMessage(chatID, b.opts.Render(result, fetchErr))
}

func (b *Bot) record(ctx context.Context, query, code, reference string, ok bool) {
	if b.store == nil {
		return
	}
	if err := b.store.RecordLookup(ctx, query, code, reference, b.locale, ok); err != nil {
		log.Printf("RecordLookup error: %v", err)
	}
}

func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.bot.Send(msg); err != nil {
		log.Printf("Error sending message: %v", err)
	}
}
