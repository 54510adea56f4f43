// Package export writes vocabulary batches as spreadsheets.
package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/heartmarshall/myenglish-suite/internal/domain"
)

// SheetName is the worksheet holding the batch.
const SheetName = "Vocabulary"

// ContentType is the MIME type of the written workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var header = []any{"ID", "Word", "Definition", "Timestamp", "Example 1", "Example 2", "Saved"}

// WriteBatch writes entries as an XLSX workbook with one row per entry
// below a header row.
func WriteBatch(w io.Writer, entries []domain.VocabularyEntry) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	sw, err := f.NewStreamWriter(SheetName)
	if err != nil {
		return fmt.Errorf("open stream writer: %w", err)
	}
	if err := sw.SetRow("A1", header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, e := range entries {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
		if err := sw.SetRow(cell, row(e)); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
	}
	if err := sw.Flush(); err != nil {
		return fmt.Errorf("flush rows: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func row(e domain.VocabularyEntry) []any {
	var ex1, ex2 string
	if len(e.Examples) > 0 {
		ex1 = e.Examples[0]
	}
	if len(e.Examples) > 1 {
		ex2 = e.Examples[1]
	}
	return []any{e.ID, e.Word, e.Definition, e.Timestamp, ex1, ex2, strconv.FormatBool(e.Saved)}
}
