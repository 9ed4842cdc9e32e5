package ingest

import (
	"errors"
	"fmt"

	"time"

	"github.com/dslipak/pdf"

	"github.com/RavinduBA/e19-4yp-AI-Powered-Knowledge-Management-System/internal/config"
	"github.com/RavinduBA/e19-4yp-AI-Powered-Knowledge-Management-System/internal/domain/kbModels"
)

func (l *pdfDirectoryLoader) extractPDF(path string) ([]kbModels.Document, error) {
	f, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open pdf: %w", err)
	}

	var documents []kbModels.Document
	numPages := f.NumPage()
	l.logger.Debug("extractPDF", "path", path, "pages", numPages)
	for i := 1; i <= numPages; i++ {
		page := f.Page(i)
		if page.V.IsNull() {
			continue
		}

		content, err := protectExtract(page)
		if err != nil {
			// Log warning but continue with other pages
			l.logger.Warn("Error parsing page content", "path", path, "page", i, "error", err)
			continue
		}
		if content == "" {
			//a page with no extractable text contributes no chunks
			continue
		}

		documents = append(documents, kbModels.Document{
			Text:   content,
			Source: path,
			Page:   i - 1, //0-based page metadata
		})
	}
	return documents, nil
}

// protectExtract guards GetPlainText with a timeout, the parser can hang on
// malformed content streams.
func protectExtract(page pdf.Page) (string, error) {
	type result struct {
		content string
		err     error
	}
	resChan := make(chan result, 1)

	go func() {
		content, err := page.GetPlainText(nil)
		resChan <- result{content, err}
	}()
	select {
	case r := <-resChan:
		return r.content, r.err
	case <-time.After(config.PageExtractTimeout):
		return "", errors.New("timeout extracting page text")
	}
}
