package telegram

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Shaxriyor16/TDM-Tournament/internal/service"
)

func (h *Handler) send(msg tgbotapi.Chattable) {
	if _, err := h.Bot.Send(msg); err != nil {
		h.Log.Warnf("failed to send message: %v", err)
	}
}

func userInfoFrom(user *tgbotapi.User) service.UserInfo {
	name := strings.TrimSpace(user.FirstName + " " + user.LastName)
	return service.UserInfo{
		ID:       user.ID,
		FullName: name,
		Username: user.UserName,
	}
}

// attachmentFrom достаёт из сообщения чек: самое крупное фото либо документ.
func attachmentFrom(msg *tgbotapi.Message) (service.Attachment, bool) {
	if len(msg.Photo) > 0 {
		return service.Attachment{FileID: msg.Photo[len(msg.Photo)-1].FileID}, true
	}
	if msg.Document != nil {
		return service.Attachment{FileID: msg.Document.FileID, Document: true}, true
	}
	return service.Attachment{}, false
}
