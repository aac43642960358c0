package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/Aashish23092/cas-parser/dto"
)

// ContentTypeXLSX is the media type of WriteXLSX output.
const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// WriteXLSX writes the statement as a workbook with one sheet per table.
func WriteXLSX(w io.Writer, data *dto.CASData) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, table := range BuildTables(data).All() {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", table.Name); err != nil {
				return fmt.Errorf("failed to rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(table.Name); err != nil {
			return fmt.Errorf("failed to create sheet %q: %w", table.Name, err)
		}
		if err := writeTable(f, table); err != nil {
			return err
		}
	}
	f.SetActiveSheet(0)

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeTable(f *excelize.File, table Table) error {
	header := make([]any, len(table.Header))
	for i, h := range table.Header {
		header[i] = h
	}
	rows := append([][]any{header}, table.Rows...)

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(table.Name, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", table.Name, i+1, err)
		}
	}
	return nil
}
