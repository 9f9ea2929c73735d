package sheets

import (
	"context"

	"github.com/xuri/excelize/v2"
)

// XLSXSource reads the same feed rectangle from a workbook on disk. Used
// when the operator works from an exported copy instead of the live sheet.
type XLSXSource struct {
	Path string
	// Sheet overrides which worksheet is read; empty means the first one.
	Sheet string
}

func (x *XLSXSource) Fetch(ctx context.Context, sheetID string) ([][]string, error) {
	f, err := excelize.OpenFile(x.Path)
	if err != nil {
		return nil, &SourceError{Message: "Failed to open workbook", Detail: err.Error()}
	}
	defer f.Close()

	name := sheetID
	if name == "" {
		name = x.Sheet
	}
	if name == "" {
		name = f.GetSheetName(0)
	}

	rows, err := f.GetRows(name)
	if err != nil {
		return nil, &SourceError{Message: "Failed to read worksheet", Detail: err.Error()}
	}

	// Row 1 is the header; the live-sheet range starts at A2 and the
	// normalizer expects data only.
	if len(rows) > 0 {
		rows = rows[1:]
	}
	return rows, nil
}
