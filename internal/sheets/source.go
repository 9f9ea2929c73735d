// Package sheets reads the external tabular trip feed. Two implementations
// exist: the Google Sheets API (the operator's live sheet) and a local XLSX
// workbook for offline use. Both return plain string rows; all trip
// semantics live in internal/core.
package sheets

import (
	"context"
	"fmt"

	"github.com/niko1327/vento/internal/config"
)

// Source is a one-shot read of the whole feed. An empty sheetID falls back
// to the configured default. There is no retry or pagination; a failure
// surfaces immediately and the caller keeps whatever it had.
type Source interface {
	Fetch(ctx context.Context, sheetID string) ([][]string, error)
}

// SourceError carries the operator-facing message plus an optional detail
// string from the underlying API.
type SourceError struct {
	Message string
	Detail  string
}

func (e *SourceError) Error() string {
	if e.Detail == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Message, e.Detail)
}

// NewFromEnv picks the source implementation: a local workbook when
// SHEET_FILE is set, the Google Sheets API otherwise.
func NewFromEnv(ctx context.Context, env config.Env) (Source, error) {
	if env.SheetFile != "" {
		return &XLSXSource{Path: env.SheetFile}, nil
	}
	return NewGoogleSource(ctx, []byte(env.GoogleCredsJSON), env.SheetID, env.SheetRange)
}
