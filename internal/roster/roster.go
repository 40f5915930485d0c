// Package roster - долговременный список принятых участников турнира.
package roster

import "context"

// Entry - одна строка ростера: ник и игровой ID участника.
type Entry struct {
	Nickname string
	GameID   string
}

// Store - контракт хранилища ростера. Записи только добавляются,
// ядро бота их никогда не изменяет и не удаляет.
type Store interface {
	Append(ctx context.Context, e Entry) error
	List(ctx context.Context) ([]Entry, error)
}
