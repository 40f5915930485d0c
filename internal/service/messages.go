package service

// Тексты, которые воркфлоу отправляет сам. Тексты меню и подсказок
// живут в пакете telegram рядом с клавиатурами.
const (
	msgPaymentInstructions = "💳 <b>Карта:</b> HUMO\n" +
		"💳 <b>Номер:</b> <code>9860 6004 1512 3691</code>\n\n" +
		"📌 Оплатите участие и пришлите ЧЕК (скриншот).\n" +
		"⏳ Это сообщение удалится через несколько секунд - успейте скопировать номер."

	msgSendCheck = "✅ После оплаты пришлите чек (фото или файл):"

	msgCheckUnderReview = "🕔 Ваш чек проверяется админом."

	msgRelayFailed = "⚠️ Не удалось передать чек админу. Попробуйте позже ещё раз."

	msgApproved = "✅ Чек подтверждён. Пришлите ваш никнейм и игровой ID."

	msgRejected = "❌ Чек не подтверждён. Попробуйте ещё раз."

	msgBadProfile = "❌ Пришлите никнейм и ID в формате: Nickname ID."

	msgSaved = "✅ Данные сохранены! Вы участвуете в турнире."

	msgSaveFailed = "⚠️ Не удалось сохранить данные. Попробуйте зарегистрироваться заново."

	msgNewEntrantFmt = "🏆 Новый участник: %s | %s"
)
