package telegram

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/Shaxriyor16/TDM-Tournament/internal/service"
)

// MessageSender определяет интерфейс для отправки сообщений.
type MessageSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type Handler struct {
	Bot     MessageSender
	Service service.TournamentServiceInterface
	Channel string
	Log     *zap.SugaredLogger
}

func NewHandler(bot MessageSender, svc service.TournamentServiceInterface, channel string, log *zap.SugaredLogger) *Handler {
	return &Handler{
		Bot:     bot,
		Service: svc,
		Channel: channel,
		Log:     log,
	}
}

// HandleStart - /start: приветствие либо врата подписки.
func (h *Handler) HandleStart(ctx context.Context, msg *tgbotapi.Message) {
	if h.Service.Eligible(ctx, msg.From.ID) {
		reply := tgbotapi.NewMessage(msg.Chat.ID, textWelcome)
		reply.ParseMode = tgbotapi.ModeHTML
		reply.ReplyMarkup = mainMenuKeyboard
		h.send(reply)
		return
	}
	reply := tgbotapi.NewMessage(msg.Chat.ID, textSubscribeFirst)
	reply.ReplyMarkup = subscriptionKeyboard(h.Channel)
	h.send(reply)
}

// HandleCheckSubscription - кнопка "Проверить" под вратами подписки.
func (h *Handler) HandleCheckSubscription(ctx context.Context, callback *tgbotapi.CallbackQuery) {
	chatID := callback.Message.Chat.ID
	messageID := callback.Message.MessageID
	if h.Service.Eligible(ctx, callback.From.ID) {
		edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, textSubscriptionOK, mainMenuKeyboard)
		h.send(edit)
		return
	}
	edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, messageID, textStillNotSubscribed, subscriptionKeyboard(h.Channel))
	h.send(edit)
}

// HandleRegister - кнопка "Регистрация".
func (h *Handler) HandleRegister(ctx context.Context, callback *tgbotapi.CallbackQuery) {
	err := h.Service.BeginRegistration(ctx, userInfoFrom(callback.From))
	if err == nil {
		return
	}
	if errors.Is(err, service.ErrNotEligible) {
		reply := tgbotapi.NewMessage(callback.Message.Chat.ID, textSubscribeFirst)
		reply.ReplyMarkup = subscriptionKeyboard(h.Channel)
		h.send(reply)
		return
	}
	h.Log.Errorf("begin registration for %d: %v", callback.From.ID, err)
}

// HandleAttachment - фото или файл от пользователя (чек об оплате).
func (h *Handler) HandleAttachment(ctx context.Context, msg *tgbotapi.Message) {
	att, ok := attachmentFrom(msg)
	if !ok {
		return
	}
	// Вне шага "ждём чек" вложения молча игнорируются.
	if _, err := h.Service.SubmitCheck(ctx, userInfoFrom(msg.From), att); err != nil {
		h.Log.Errorf("submit check from %d: %v", msg.From.ID, err)
	}
}

// HandleText - свободный текст: на шаге профиля это ник и игровой ID.
func (h *Handler) HandleText(ctx context.Context, msg *tgbotapi.Message) {
	if _, err := h.Service.SubmitProfile(ctx, userInfoFrom(msg.From), msg.Text); err != nil {
		h.Log.Errorf("submit profile from %d: %v", msg.From.ID, err)
	}
}

// HandleDecision - кнопки "Подтвердить"/"Отклонить" под чеком у админа.
func (h *Handler) HandleDecision(ctx context.Context, callback *tgbotapi.CallbackQuery, approve bool, targetID int64) {
	err := h.Service.Decide(ctx, callback.From.ID, targetID, approve)
	switch {
	case errors.Is(err, service.ErrNotAdmin):
		h.answerAlert(callback.ID, "Вы не админ.")
		return
	case errors.Is(err, service.ErrDecisionHandled):
		h.answerAlert(callback.ID, "По этому чеку решение уже принято.")
		return
	case err != nil:
		h.Log.Errorf("decision for %d: %v", targetID, err)
		h.answerAlert(callback.ID, "Не удалось уведомить участника. Попробуйте ещё раз.")
		return
	}

	// Убираем кнопки, чтобы по чеку нельзя было кликнуть повторно.
	empty := tgbotapi.InlineKeyboardMarkup{InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{}}
	edit := tgbotapi.NewEditMessageReplyMarkup(callback.Message.Chat.ID, callback.Message.MessageID, empty)
	if _, err := h.Bot.Request(edit); err != nil {
		h.Log.Warnf("strip decision keyboard: %v", err)
	}

	if approve {
		h.answer(callback.ID, "✅ Подтверждено")
	} else {
		h.answer(callback.ID, "❌ Отклонено")
	}
}

// HandleRoster - список участников (/roster и кнопка "Результаты").
func (h *Handler) HandleRoster(ctx context.Context, chatID int64) {
	entries, err := h.Service.Roster(ctx)
	if err != nil {
		h.Log.Errorf("load roster: %v", err)
		h.send(tgbotapi.NewMessage(chatID, "Не удалось получить список участников 😅"))
		return
	}
	if len(entries) == 0 {
		h.send(tgbotapi.NewMessage(chatID, "Пока нет ни одного участника."))
		return
	}

	text := "🏆 Участники турнира:\n"
	for i, e := range entries {
		text += fmt.Sprintf("%d. %s — %s\n", i+1, e.Nickname, e.GameID)
	}
	h.send(tgbotapi.NewMessage(chatID, text))
}

// HandleHelp - /help
func (h *Handler) HandleHelp(msg *tgbotapi.Message) {
	reply := tgbotapi.NewMessage(msg.Chat.ID, textHelp)
	reply.ReplyMarkup = mainMenuKeyboard
	h.send(reply)
}

func (h *Handler) answer(callbackID, text string) {
	if _, err := h.Bot.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		h.Log.Warnf("answer callback: %v", err)
	}
}

func (h *Handler) answerAlert(callbackID, text string) {
	if _, err := h.Bot.Request(tgbotapi.NewCallbackWithAlert(callbackID, text)); err != nil {
		h.Log.Warnf("answer callback with alert: %v", err)
	}
}

const (
	callbackRegister = "register"
	callbackCheckSub = "check_subscription"
	callbackResults  = "results"

	approvePrefix = "approve:"
	rejectPrefix  = "reject:"
)

// decisionPayload кодирует решение админа по участнику: "approve:<id>" / "reject:<id>".
func decisionPayload(approve bool, userID int64) string {
	if approve {
		return approvePrefix + strconv.FormatInt(userID, 10)
	}
	return rejectPrefix + strconv.FormatInt(userID, 10)
}

// parseDecision разбирает payload кнопки решения.
func parseDecision(data string) (approve bool, userID int64, ok bool) {
	var raw string
	switch {
	case strings.HasPrefix(data, approvePrefix):
		approve, raw = true, strings.TrimPrefix(data, approvePrefix)
	case strings.HasPrefix(data, rejectPrefix):
		approve, raw = false, strings.TrimPrefix(data, rejectPrefix)
	default:
		return false, 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return false, 0, false
	}
	return approve, id, true
}
