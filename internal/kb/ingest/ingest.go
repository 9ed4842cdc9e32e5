package ingest

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/RavinduBA/e19-4yp-AI-Powered-Knowledge-Management-System/internal/domain/kbModels"
	"github.com/RavinduBA/e19-4yp-AI-Powered-Knowledge-Management-System/pkg/logger_i"
)

// Loader produces one Document per extracted PDF page, ordered by file name
// and page number. That ordering is what keeps chunk-ID assignment stable
// across runs.
type Loader interface {
	Load(dataPath string) ([]kbModels.Document, error)
}

type pdfDirectoryLoader struct {
	logger *logger_i.Logger
}

// NewPDFDirectoryLoader returns a Loader that reads every *.pdf file directly
// under a directory.
func NewPDFDirectoryLoader() Loader {
	return &pdfDirectoryLoader{logger: logger_i.NewLogger("PDF Loader")}
}

func (l *pdfDirectoryLoader) Load(dataPath string) ([]kbModels.Document, error) {
	paths, err := filepath.Glob(filepath.Join(dataPath, "*.pdf"))
	if err != nil {
		return nil, fmt.Errorf("listing pdf files: %w", err)
	}
	sort.Strings(paths)

	var documents []kbModels.Document
	for _, path := range paths {
		pages, err := l.extractPDF(path)
		if err != nil {
			//a corrupt file should not fail the whole run
			l.logger.Warn("Skipping unreadable PDF", "path", path, "error", err)
			continue
		}
		documents = append(documents, pages...)
	}

	l.logger.Debug("Loaded documents", "count", len(documents), "files", len(paths))
	return documents, nil
}
