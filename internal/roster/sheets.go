package roster

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetsStore пишет ростер в Google-таблицу (две колонки: ник, ID).
type SheetsStore struct {
	svc           *sheets.Service
	spreadsheetID string
	sheetName     string
}

// NewSheetsStore - подключение к Google Sheets через service account.
func NewSheetsStore(ctx context.Context, credentialsFile, spreadsheetID, sheetName string) (*SheetsStore, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to sheets: %w", err)
	}
	return &SheetsStore{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
	}, nil
}

// Append - добавляем строку в конец таблицы
func (s *SheetsStore) Append(ctx context.Context, e Entry) error {
	values := &sheets.ValueRange{
		Values: [][]interface{}{{e.Nickname, e.GameID}},
	}
	_, err := s.svc.Spreadsheets.Values.
		Append(s.spreadsheetID, s.sheetName+"!A:B", values).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to append row: %w", err)
	}
	return nil
}

// List - читаем все строки ростера
func (s *SheetsStore) List(ctx context.Context) ([]Entry, error) {
	resp, err := s.svc.Spreadsheets.Values.
		Get(s.spreadsheetID, s.sheetName+"!A:B").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	var entries []Entry
	for _, row := range resp.Values {
		var e Entry
		if len(row) > 0 {
			e.Nickname = fmt.Sprint(row[0])
		}
		if len(row) > 1 {
			e.GameID = fmt.Sprint(row[1])
		}
		entries = append(entries, e)
	}
	return entries, nil
}
