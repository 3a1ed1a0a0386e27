package app

import (
	"context"
	"encoding/base64"
	"fmt"

	"rubick-translator/internal/usecase/importer"
)

type ExportFileResponse struct {
	Filename   string `json:"filename"`
	ContentB64 string `json:"content_b64"`
}

// ExportHistory renders history as csv, tsv or json for download.
func (a *TranslatorAPI) ExportHistory(format string) (ExportFileResponse, error) {
	res, err := a.d.Exporter.ExportHistory(context.Background(), format)
	if err != nil {
		return ExportFileResponse{}, err
	}
	return ExportFileResponse{Filename: res.Filename, ContentB64: base64.StdEncoding.EncodeToString(res.Content)}, nil
}

func (a *TranslatorAPI) ExportFormats() []string { return a.d.Exporter.Reg.Formats() }

// ImportHistory merges a previously exported file into history.
func (a *TranslatorAPI) ImportHistory(format, contentB64 string) (importer.ImportResult, error) {
	content, err := base64.StdEncoding.DecodeString(contentB64)
	if err != nil {
		return importer.ImportResult{}, fmt.Errorf("decode import: %w", err)
	}
	return a.d.Importer.Import(context.Background(), format, content)
}
