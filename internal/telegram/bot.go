package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type Bot struct {
	api     *tgbotapi.BotAPI
	handler *Handler
	log     *zap.SugaredLogger
}

func NewBot(api *tgbotapi.BotAPI, handler *Handler, log *zap.SugaredLogger) *Bot {
	return &Bot{
		api:     api,
		handler: handler,
		log:     log,
	}
}

// Start - цикл обработки обновлений. Обновления обрабатываются по одному,
// поэтому события одного пользователя никогда не гонятся между собой.
func (b *Bot) Start() {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)

	b.log.Infow("bot started", "account", b.api.Self.UserName)

	ctx := context.Background()
	for update := range updates {
		b.dispatch(ctx, update)
	}
}

func (b *Bot) dispatch(ctx context.Context, update tgbotapi.Update) {
	// Одно плохое событие не должно останавливать бота для остальных.
	defer func() {
		if r := recover(); r != nil {
			b.log.Errorw("panic while handling update", "panic", r)
		}
	}()

	if update.Message != nil {
		msg := update.Message
		switch {
		case msg.IsCommand():
			switch msg.Command() {
			case "start":
				b.handler.HandleStart(ctx, msg)
			case "help":
				b.handler.HandleHelp(msg)
			case "roster":
				b.handler.HandleRoster(ctx, msg.Chat.ID)
			}
		case len(msg.Photo) > 0 || msg.Document != nil:
			b.handler.HandleAttachment(ctx, msg)
		case msg.Text != "":
			b.handler.HandleText(ctx, msg)
		}
		return
	}

	if update.CallbackQuery != nil {
		callback := update.CallbackQuery

		if approve, targetID, ok := parseDecision(callback.Data); ok {
			// Кнопки решения отвечают на callback сами (алерты, итог).
			b.handler.HandleDecision(ctx, callback, approve, targetID)
			return
		}

		switch callback.Data {
		case callbackCheckSub:
			b.handler.HandleCheckSubscription(ctx, callback)
		case callbackRegister:
			b.handler.HandleRegister(ctx, callback)
		case callbackResults:
			b.handler.HandleRoster(ctx, callback.Message.Chat.ID)
		}
		// Отвечаем на callback, чтобы пропала иконка загрузки на кнопке
		if _, err := b.api.Request(tgbotapi.NewCallback(callback.ID, "")); err != nil {
			b.log.Warnf("answer callback: %v", err)
		}
	}
}
