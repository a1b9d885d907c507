// Package ingest turns a directory or ZIP archive of CV files into candidate
// records. It only produces the stable name and the raw text payload; every
// derived attribute is computed later by the scoring package. Extraction
// failures are embedded as the record's text so a batch never fails on one
// broken file, and are logged so the operator can spot them.
package ingest

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/rhtools/cv-screener/internal/candidate"
	"github.com/rhtools/cv-screener/internal/logger"
)

// extractors maps a lowercase file extension to its text extractor.
// Indirection here lets tests stub the external tools away.
var extractors = map[string]func(path string) (string, error){
	".pdf":  extractPDF,
	".docx": extractDOCX,
	".txt":  extractPlain,
}

// FromPath loads candidates from a directory of CV files, or from a ZIP
// archive which is unpacked into a temp directory first.
func FromPath(path string, logger *zap.Logger) (*candidate.Candidates, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat input %q: %w", path, err)
	}

	if info.IsDir() {
		return FromDir(path, logger)
	}

	if strings.EqualFold(filepath.Ext(path), ".zip") {
		dest, err := os.MkdirTemp("", "cv-screener-*")
		if err != nil {
			return nil, fmt.Errorf("creating unpack dir: %w", err)
		}
		if err := Unpack(path, dest); err != nil {
			return nil, fmt.Errorf("unpacking %q: %w", path, err)
		}
		if logger != nil {
			logger.Info("unpacked archive",
				zap.String("archive", path),
				zap.String("destination", dest),
			)
		}
		return FromDir(dest, logger)
	}

	return nil, fmt.Errorf("input %q is neither a directory nor a zip archive", path)
}

// FromDir walks a directory tree and builds one pending candidate per
// supported CV file. The record name is the base filename; it must be unique
// within the batch, duplicates are skipped with a warning.
func FromDir(dir string, zlog *zap.Logger) (*candidate.Candidates, error) {
	log := logger.WithFields(zlog, zap.String("dir", dir))
	candidates := &candidate.Candidates{}

	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}

		extract, ok := extractors[strings.ToLower(filepath.Ext(path))]
		if !ok {
			return nil
		}

		name := filepath.Base(path)
		if candidates.FindByName(name) != nil {
			log.Warn("skipping duplicate candidate file",
				zap.String("name", name),
				zap.String("path", path),
			)
			return nil
		}

		text, extractErr := extract(path)
		if extractErr != nil {
			// Keep the record: the engine treats any text opaquely and the
			// commute/english/experience signals degrade to sentinels.
			text = fmt.Sprintf("erreur lors de l'extraction : %v", extractErr)
			log.Warn("text extraction failed",
				zap.String("name", name),
				zap.Error(extractErr),
			)
		}

		candidates.Items = append(candidates.Items, &candidate.Candidate{
			Name:   name,
			Path:   path,
			Text:   text,
			Status: candidate.StatusPending,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %q: %w", dir, err)
	}

	log.Info("loaded candidates", zap.Int("count", candidates.Len()))

	return candidates, nil
}

func extractPlain(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
