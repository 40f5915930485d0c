package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"go.uber.org/zap"

	"github.com/Shaxriyor16/TDM-Tournament/internal/roster"
	"github.com/Shaxriyor16/TDM-Tournament/internal/session"
)

var (
	// ErrNotEligible - пользователь не подписан на обязательный канал.
	ErrNotEligible = errors.New("user is not subscribed to the required channel")
	// ErrNotAdmin - решение по чеку прислал не админ.
	ErrNotAdmin = errors.New("sender is not an admin")
	// ErrDecisionHandled - по этому участнику решение уже принято.
	ErrDecisionHandled = errors.New("decision already handled")
)

// UnspecifiedID подставляется, когда участник прислал только ник.
const UnspecifiedID = "unspecified"

// UserInfo - данные участника, которые попадают в подпись чека для админа.
type UserInfo struct {
	ID       int64
	FullName string
	Username string
}

// Attachment - присланный чек: фото или файл.
type Attachment struct {
	FileID   string
	Document bool
}

// MessageRef - ссылка на отправленное сообщение, нужна для отложенного удаления.
type MessageRef struct {
	ChatID    int64
	MessageID int
}

// Gateway - узкий интерфейс мессенджера, всё что нужно воркфлоу.
type Gateway interface {
	GetMembership(ctx context.Context, channel string, userID int64) (string, error)
	SendText(ctx context.Context, userID int64, text string) (MessageRef, error)
	DeleteMessage(ctx context.Context, ref MessageRef) error
	RelayCheck(ctx context.Context, adminID int64, user UserInfo, att Attachment) error
}

// TournamentServiceInterface определяет контракт воркфлоу для хендлеров.
type TournamentServiceInterface interface {
	Eligible(ctx context.Context, userID int64) bool
	BeginRegistration(ctx context.Context, user UserInfo) error
	SubmitCheck(ctx context.Context, user UserInfo, att Attachment) (bool, error)
	Decide(ctx context.Context, fromID, targetID int64, approve bool) error
	SubmitProfile(ctx context.Context, user UserInfo, text string) (bool, error)
	Roster(ctx context.Context) ([]roster.Entry, error)
}

// Deps - зависимости воркфлоу, все подменяемые в тестах.
type Deps struct {
	Sessions session.Store
	Roster   roster.Store
	Gateway  Gateway
	Admins   []int64
	// IsAdmin - предикат авторизации решений. Если nil, строится
	// по списку Admins.
	IsAdmin         func(userID int64) bool
	Channel         string
	InstructionsTTL time.Duration
	Scheduler       Scheduler
	Log             *zap.SugaredLogger
}

// TournamentService - машина состояний регистрации на турнир.
type TournamentService struct {
	sessions session.Store
	roster   roster.Store
	gateway  Gateway
	admins   []int64
	isAdmin  func(userID int64) bool
	channel  string
	ttl      time.Duration
	sched    Scheduler
	log      *zap.SugaredLogger
}

func New(deps Deps) *TournamentService {
	isAdmin := deps.IsAdmin
	if isAdmin == nil {
		admins := make(map[int64]bool, len(deps.Admins))
		for _, id := range deps.Admins {
			admins[id] = true
		}
		isAdmin = func(userID int64) bool { return admins[userID] }
	}
	sched := deps.Scheduler
	if sched == nil {
		sched = TimerScheduler{}
	}
	return &TournamentService{
		sessions: deps.Sessions,
		roster:   deps.Roster,
		gateway:  deps.Gateway,
		admins:   deps.Admins,
		isAdmin:  isAdmin,
		channel:  deps.Channel,
		ttl:      deps.InstructionsTTL,
		sched:    sched,
		log:      deps.Log,
	}
}

// Статусы членства, проходящие врата подписки.
var eligibleStatuses = map[string]bool{
	"member":        true,
	"creator":       true,
	"administrator": true,
}

// Eligible - проверяем подписку на обязательный канал.
// Ошибка запроса трактуется как "не подписан".
func (s *TournamentService) Eligible(ctx context.Context, userID int64) bool {
	status, err := s.gateway.GetMembership(ctx, s.channel, userID)
	if err != nil {
		s.log.Warnf("membership check failed for %d: %v", userID, err)
		return false
	}
	return eligibleStatuses[status]
}

// BeginRegistration - пользователь нажал "Регистрация". Отправляем реквизиты
// оплаты, планируем их удаление и переводим пользователя в ожидание чека.
func (s *TournamentService) BeginRegistration(ctx context.Context, user UserInfo) error {
	if !s.Eligible(ctx, user.ID) {
		return ErrNotEligible
	}

	ref, err := s.gateway.SendText(ctx, user.ID, msgPaymentInstructions)
	if err != nil {
		return fmt.Errorf("send payment instructions: %w", err)
	}
	s.sessions.Set(user.ID, session.StateAwaitingCheck)

	// Реквизиты живут недолго: по таймеру удаляем сообщение (best effort)
	// и просим прислать чек. Таймер не блокирует обработку других событий.
	userID := user.ID
	s.sched.After(s.ttl, func() {
		ctx := context.Background()
		if err := s.gateway.DeleteMessage(ctx, ref); err != nil {
			s.log.Debugf("delete payment instructions for %d: %v", userID, err)
		}
		if _, err := s.gateway.SendText(ctx, userID, msgSendCheck); err != nil {
			s.log.Warnf("send check prompt to %d: %v", userID, err)
		}
	})
	return nil
}

// SubmitCheck - пользователь прислал чек. Пересылаем его всем админам
// с кнопками решения. Возвращает false, если событие не к месту.
func (s *TournamentService) SubmitCheck(ctx context.Context, user UserInfo, att Attachment) (bool, error) {
	if s.sessions.Get(user.ID) != session.StateAwaitingCheck {
		return false, nil
	}

	if _, err := s.gateway.SendText(ctx, user.ID, msgCheckUnderReview); err != nil {
		s.log.Warnf("notify %d about review: %v", user.ID, err)
	}

	for _, adminID := range s.admins {
		if err := s.gateway.RelayCheck(ctx, adminID, user, att); err != nil {
			// Чек не дошёл до админа - извиняемся и выкидываем из
			// воркфлоу, чтобы пользователь не завис без ответа.
			s.sessions.Clear(user.ID)
			if _, serr := s.gateway.SendText(ctx, user.ID, msgRelayFailed); serr != nil {
				s.log.Warnf("notify %d about relay failure: %v", user.ID, serr)
			}
			return true, fmt.Errorf("relay check to admin %d: %w", adminID, err)
		}
	}

	s.sessions.Set(user.ID, session.StateAwaitingApproval)
	return true, nil
}

// Decide - админ принял или отклонил чек участника targetID.
// Повторное нажатие по уже обработанному чеку возвращает ErrDecisionHandled.
func (s *TournamentService) Decide(ctx context.Context, fromID, targetID int64, approve bool) error {
	if !s.isAdmin(fromID) {
		return ErrNotAdmin
	}
	if s.sessions.Get(targetID) != session.StateAwaitingApproval {
		return ErrDecisionHandled
	}

	if approve {
		// Сначала уведомляем: если отправка не удалась, состояние
		// участника не меняем, ошибка уходит в ответ на кнопку.
		if _, err := s.gateway.SendText(ctx, targetID, msgApproved); err != nil {
			return fmt.Errorf("notify %d about approval: %w", targetID, err)
		}
		s.sessions.Set(targetID, session.StateAwaitingProfile)
		return nil
	}

	if _, err := s.gateway.SendText(ctx, targetID, msgRejected); err != nil {
		return fmt.Errorf("notify %d about rejection: %w", targetID, err)
	}
	s.sessions.Clear(targetID)
	return nil
}

// SubmitProfile - пользователь прислал ник и игровой ID. На пустом тексте
// просим повторить и оставляем пользователя на этом шаге.
func (s *TournamentService) SubmitProfile(ctx context.Context, user UserInfo, text string) (bool, error) {
	if s.sessions.Get(user.ID) != session.StateAwaitingProfile {
		return false, nil
	}

	nickname, gameID, ok := SplitProfile(text)
	if !ok {
		if _, err := s.gateway.SendText(ctx, user.ID, msgBadProfile); err != nil {
			s.log.Warnf("re-prompt %d for profile: %v", user.ID, err)
		}
		return true, nil
	}

	entry := roster.Entry{Nickname: nickname, GameID: gameID}
	if err := s.roster.Append(ctx, entry); err != nil {
		s.sessions.Clear(user.ID)
		if _, serr := s.gateway.SendText(ctx, user.ID, msgSaveFailed); serr != nil {
			s.log.Warnf("notify %d about save failure: %v", user.ID, serr)
		}
		return true, fmt.Errorf("append roster entry: %w", err)
	}

	s.sessions.Clear(user.ID)
	if _, err := s.gateway.SendText(ctx, user.ID, msgSaved); err != nil {
		s.log.Warnf("notify %d about saved entry: %v", user.ID, err)
	}
	for _, adminID := range s.admins {
		text := fmt.Sprintf(msgNewEntrantFmt, nickname, gameID)
		if _, err := s.gateway.SendText(ctx, adminID, text); err != nil {
			s.log.Warnf("notify admin %d about new entrant: %v", adminID, err)
		}
	}
	return true, nil
}

// Roster - текущий список участников.
func (s *TournamentService) Roster(ctx context.Context) ([]roster.Entry, error) {
	return s.roster.List(ctx)
}

// SplitProfile разбирает свободный текст "ник [ID]". Токены разделяются
// пробелами и запятыми; последний токен считается игровым ID, остальные -
// ником. Если токен один, это ник, а ID помечается как UnspecifiedID.
func SplitProfile(text string) (nickname, gameID string, ok bool) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})
	switch len(fields) {
	case 0:
		return "", "", false
	case 1:
		return fields[0], UnspecifiedID, true
	default:
		return strings.Join(fields[:len(fields)-1], " "), fields[len(fields)-1], true
	}
}
