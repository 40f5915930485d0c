package telegram

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

var mainMenuKeyboard = tgbotapi.NewInlineKeyboardMarkup(
	tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("✅ Регистрация", callbackRegister),
		tgbotapi.NewInlineKeyboardButtonData("📊 Результаты", callbackResults),
	),
)

// subscriptionKeyboard - ссылка на обязательный канал и кнопка повторной проверки.
func subscriptionKeyboard(channel string) tgbotapi.InlineKeyboardMarkup {
	url := "https://t.me/" + strings.TrimPrefix(channel, "@")
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("▶️ Наш канал", url),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Проверить", callbackCheckSub),
		),
	)
}

// decisionKeyboard - кнопки решения под чеком у админа.
func decisionKeyboard(userID int64) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Подтвердить", decisionPayload(true, userID)),
			tgbotapi.NewInlineKeyboardButtonData("❌ Отклонить", decisionPayload(false, userID)),
		),
	)
}

const (
	textWelcome = "👋 <b>Добро пожаловать в TDM TOURNAMENT BOT!</b> 🎮\n\n" +
		"Через этого бота вы можете зарегистрироваться на турнир.\n" +
		"⚠️ Участие <b>платное</b>."

	textSubscribeFirst = "👋 Для использования бота подпишитесь на наш канал,\n" +
		"затем нажмите ✅ Проверить 👇"

	textSubscriptionOK = "✅ Подписка подтверждена. Теперь бот доступен полностью."

	textStillNotSubscribed = "❌ Вы ещё не подписаны. Подпишитесь на канал и попробуйте снова:"

	textHelp = "Вот что я умею:\n\n" +
		"/start - главное меню\n" +
		"/roster - список участников\n" +
		"/help - показать это сообщение"
)
