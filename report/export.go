package report

import (
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/bitmark-inc/commerce-survey/schema"
)

const ExportSheet = "Respuestas"

// WriteWorkbook writes the records as an xlsx workbook, one row per record
// under a bold header row.
func WriteWorkbook(w io.Writer, header []string, records []schema.Record) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ExportSheet); err != nil {
		return err
	}

	row := make([]interface{}, len(header))
	for i, h := range header {
		row[i] = h
	}
	if err := f.SetSheetRow(ExportSheet, "A1", &row); err != nil {
		return err
	}

	if len(header) > 0 {
		bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
		if err != nil {
			return err
		}
		last, err := excelize.CoordinatesToCellName(len(header), 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(ExportSheet, "A1", last, bold); err != nil {
			return err
		}
	}

	for i, r := range records {
		for j, h := range header {
			row[j] = r[h]
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(ExportSheet, cell, &row); err != nil {
			return err
		}
	}

	_, err := f.WriteTo(w)
	return err
}
