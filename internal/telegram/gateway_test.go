package telegram

import (
	"context"
	"errors"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shaxriyor16/TDM-Tournament/internal/service"
)

// fakeChatAPI записывает отправленные Chattable и отдаёт заготовленные ответы.
type fakeChatAPI struct {
	member    tgbotapi.ChatMember
	memberErr error
	sent      []tgbotapi.Chattable
	requested []tgbotapi.Chattable
}

func (f *fakeChatAPI) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.sent = append(f.sent, c)
	return tgbotapi.Message{MessageID: 99}, nil
}

func (f *fakeChatAPI) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	f.requested = append(f.requested, c)
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (f *fakeChatAPI) GetChatMember(_ tgbotapi.GetChatMemberConfig) (tgbotapi.ChatMember, error) {
	return f.member, f.memberErr
}

func TestGatewayGetMembership(t *testing.T) {
	api := &fakeChatAPI{member: tgbotapi.ChatMember{Status: "member"}}
	g := NewGateway(api)

	status, err := g.GetMembership(context.Background(), "@channel", 42)

	require.NoError(t, err)
	assert.Equal(t, "member", status)
}

func TestGatewayGetMembership_Error(t *testing.T) {
	api := &fakeChatAPI{memberErr: errors.New("user not found")}
	g := NewGateway(api)

	_, err := g.GetMembership(context.Background(), "@channel", 42)

	assert.Error(t, err)
}

func TestGatewaySendText(t *testing.T) {
	api := &fakeChatAPI{}
	g := NewGateway(api)

	ref, err := g.SendText(context.Background(), 42, "hello")

	require.NoError(t, err)
	assert.Equal(t, service.MessageRef{ChatID: 42, MessageID: 99}, ref)
	require.Len(t, api.sent, 1)
	msg := api.sent[0].(tgbotapi.MessageConfig)
	assert.Equal(t, "hello", msg.Text)
	assert.Equal(t, tgbotapi.ModeHTML, msg.ParseMode)
}

func TestGatewayDeleteMessage(t *testing.T) {
	api := &fakeChatAPI{}
	g := NewGateway(api)

	err := g.DeleteMessage(context.Background(), service.MessageRef{ChatID: 42, MessageID: 7})

	require.NoError(t, err)
	require.Len(t, api.requested, 1)
	del := api.requested[0].(tgbotapi.DeleteMessageConfig)
	assert.Equal(t, int64(42), del.ChatID)
	assert.Equal(t, 7, del.MessageID)
}

func TestGatewayRelayCheck_Photo(t *testing.T) {
	api := &fakeChatAPI{}
	g := NewGateway(api)
	user := service.UserInfo{ID: 42, FullName: "Test User", Username: "test"}

	err := g.RelayCheck(context.Background(), 1000, user, service.Attachment{FileID: "f1"})

	require.NoError(t, err)
	require.Len(t, api.sent, 1)
	photo := api.sent[0].(tgbotapi.PhotoConfig)
	assert.Equal(t, int64(1000), photo.ChatID)
	assert.Contains(t, photo.Caption, "Test User")
	assert.Contains(t, photo.Caption, "@test")
	assert.Contains(t, photo.Caption, "42")

	markup := photo.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
	require.Len(t, markup.InlineKeyboard, 1)
	require.Len(t, markup.InlineKeyboard[0], 2)
	assert.Equal(t, "approve:42", *markup.InlineKeyboard[0][0].CallbackData)
	assert.Equal(t, "reject:42", *markup.InlineKeyboard[0][1].CallbackData)
}

func TestGatewayRelayCheck_Document(t *testing.T) {
	api := &fakeChatAPI{}
	g := NewGateway(api)
	user := service.UserInfo{ID: 42, FullName: "Test User"}

	err := g.RelayCheck(context.Background(), 1000, user, service.Attachment{FileID: "d1", Document: true})

	require.NoError(t, err)
	require.Len(t, api.sent, 1)
	doc := api.sent[0].(tgbotapi.DocumentConfig)
	assert.Equal(t, int64(1000), doc.ChatID)
	assert.Contains(t, doc.Caption, "файл")
	// Без username в подписи остаётся заглушка.
	assert.Contains(t, doc.Caption, "нет username")
}
