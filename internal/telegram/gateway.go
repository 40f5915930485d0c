package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Shaxriyor16/TDM-Tournament/internal/service"
)

// chatAPI - часть tgbotapi.BotAPI, нужная шлюзу.
type chatAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetChatMember(config tgbotapi.GetChatMemberConfig) (tgbotapi.ChatMember, error)
}

// Gateway реализует service.Gateway поверх Telegram Bot API.
type Gateway struct {
	api chatAPI
}

func NewGateway(api chatAPI) *Gateway {
	return &Gateway{api: api}
}

func (g *Gateway) GetMembership(_ context.Context, channel string, userID int64) (string, error) {
	member, err := g.api.GetChatMember(tgbotapi.GetChatMemberConfig{
		ChatConfigWithUser: tgbotapi.ChatConfigWithUser{
			SuperGroupUsername: channel,
			UserID:             userID,
		},
	})
	if err != nil {
		return "", err
	}
	return member.Status, nil
}

func (g *Gateway) SendText(_ context.Context, userID int64, text string) (service.MessageRef, error) {
	msg := tgbotapi.NewMessage(userID, text)
	msg.ParseMode = tgbotapi.ModeHTML
	sent, err := g.api.Send(msg)
	if err != nil {
		return service.MessageRef{}, err
	}
	return service.MessageRef{ChatID: userID, MessageID: sent.MessageID}, nil
}

func (g *Gateway) DeleteMessage(_ context.Context, ref service.MessageRef) error {
	_, err := g.api.Request(tgbotapi.NewDeleteMessage(ref.ChatID, ref.MessageID))
	return err
}

// RelayCheck пересылает чек админу с подписью и кнопками решения.
func (g *Gateway) RelayCheck(_ context.Context, adminID int64, user service.UserInfo, att service.Attachment) error {
	caption := checkCaption(user, att)
	markup := decisionKeyboard(user.ID)

	if att.Document {
		doc := tgbotapi.NewDocument(adminID, tgbotapi.FileID(att.FileID))
		doc.Caption = caption
		doc.ParseMode = tgbotapi.ModeHTML
		doc.ReplyMarkup = markup
		_, err := g.api.Send(doc)
		return err
	}

	photo := tgbotapi.NewPhoto(adminID, tgbotapi.FileID(att.FileID))
	photo.Caption = caption
	photo.ParseMode = tgbotapi.ModeHTML
	photo.ReplyMarkup = markup
	_, err := g.api.Send(photo)
	return err
}

func checkCaption(user service.UserInfo, att service.Attachment) string {
	kind := "Новый чек"
	if att.Document {
		kind = "Новый чек (файл)"
	}
	username := user.Username
	if username == "" {
		username = "нет username"
	}
	return fmt.Sprintf("🧾 %s:\n👤 <b>%s</b>\n🆔 <code>%d</code>\n📌 @%s",
		kind, user.FullName, user.ID, username)
}
