package store

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"google.golang.org/api/sheets/v4"

	"github.com/bitmark-inc/commerce-survey/schema"
)

const (
	sheetsLogPrefix = "sheets"

	valueInputRaw    = "RAW"
	insertDataAsRows = "INSERT_ROWS"

	DefaultWorksheet = "Respuestas"
)

type sheetsTable struct {
	service       *sheets.Service
	spreadsheetID string
	worksheet     string
}

// NewSheetsStore - worksheet of a Google spreadsheet whose first row is the header
func NewSheetsStore(service *sheets.Service, spreadsheetID, worksheet string) ResponseStore {
	if worksheet == "" {
		worksheet = DefaultWorksheet
	}
	return &sheetsTable{
		service:       service,
		spreadsheetID: spreadsheetID,
		worksheet:     worksheet,
	}
}

func (s *sheetsTable) sheetRange(cells string) string {
	if cells == "" {
		return fmt.Sprintf("'%s'", s.worksheet)
	}
	return fmt.Sprintf("'%s'!%s", s.worksheet, cells)
}

func toValues(row []string) [][]interface{} {
	cells := make([]interface{}, len(row))
	for i, v := range row {
		cells[i] = v
	}
	return [][]interface{}{cells}
}

func toStrings(cells []interface{}) []string {
	row := make([]string, len(cells))
	for i, c := range cells {
		if s, ok := c.(string); ok {
			row[i] = s
		} else if c != nil {
			row[i] = fmt.Sprint(c)
		}
	}
	return row
}

func (s *sheetsTable) Append(ctx context.Context, row []string) error {
	ctx, cancel := withDefaultTimeout(ctx)
	defer cancel()

	_, err := s.service.Spreadsheets.Values.
		Append(s.spreadsheetID, s.sheetRange("A1"), &sheets.ValueRange{Values: toValues(row)}).
		ValueInputOption(valueInputRaw).
		InsertDataOption(insertDataAsRows).
		Context(ctx).
		Do()
	if err != nil {
		log.WithField("prefix", sheetsLogPrefix).Errorf("append row with error: %s", err)
		return wrap(OpAppend, err)
	}
	return nil
}

func (s *sheetsTable) ReadAll(ctx context.Context) ([]schema.Record, error) {
	ctx, cancel := withDefaultTimeout(ctx)
	defer cancel()

	resp, err := s.service.Spreadsheets.Values.Get(s.spreadsheetID, s.sheetRange("")).Context(ctx).Do()
	if err != nil {
		log.WithField("prefix", sheetsLogPrefix).Errorf("read worksheet with error: %s", err)
		return nil, wrap(OpRead, err)
	}

	if len(resp.Values) == 0 {
		return []schema.Record{}, nil
	}

	header := toStrings(resp.Values[0])
	records := make([]schema.Record, 0, len(resp.Values)-1)
	for _, cells := range resp.Values[1:] {
		records = append(records, schema.NewRecord(header, toStrings(cells)))
	}

	log.WithField("prefix", sheetsLogPrefix).Debugf("read %d rows from %s", len(records), s.worksheet)
	return records, nil
}

func (s *sheetsTable) Ping(ctx context.Context) error {
	ctx, cancel := withDefaultTimeout(ctx)
	defer cancel()

	_, err := s.service.Spreadsheets.Get(s.spreadsheetID).Fields("spreadsheetId").Context(ctx).Do()
	return wrap(OpPing, err)
}

// Prepare writes the header row into an empty worksheet.
func (s *sheetsTable) Prepare(ctx context.Context, header []string) error {
	ctx, cancel := withDefaultTimeout(ctx)
	defer cancel()

	resp, err := s.service.Spreadsheets.Values.Get(s.spreadsheetID, s.sheetRange("1:1")).Context(ctx).Do()
	if err != nil {
		return wrap(OpPrepare, err)
	}
	if len(resp.Values) > 0 && len(resp.Values[0]) > 0 {
		log.WithField("prefix", sheetsLogPrefix).Info("header row already present")
		return nil
	}

	_, err = s.service.Spreadsheets.Values.
		Update(s.spreadsheetID, s.sheetRange("A1"), &sheets.ValueRange{Values: toValues(header)}).
		ValueInputOption(valueInputRaw).
		Context(ctx).
		Do()
	return wrap(OpPrepare, err)
}

func (s *sheetsTable) Close() {}
