// Package export serializes candidate collections for handoff: a delimited
// CSV of a chosen column subset, and a ZIP of the original CV files for a
// given review outcome. Column selection goes through mapstructure so the
// CSV layer needs no knowledge of the candidate struct shape.
package export

import (
	"archive/zip"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"

	"github.com/rhtools/cv-screener/internal/candidate"
)

// DefaultColumns is the column order used when the caller does not choose one.
var DefaultColumns = []string{
	"name",
	"score",
	"english_level",
	"english_badge",
	"has_experience",
	"experience_types",
	"experience_count",
	"experience_detail",
	"location",
	"commute_display",
	"status",
}

// CSV writes the collection as delimited text with a header row. An unknown
// column name yields an empty cell rather than an error, so callers can mix
// column sets across versions.
func CSV(w io.Writer, c *candidate.Candidates, columns []string) error {
	if len(columns) == 0 {
		columns = DefaultColumns
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(columns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, item := range c.Items {
		row, err := rowOf(item)
		if err != nil {
			return fmt.Errorf("decoding %s: %w", item.Name, err)
		}

		record := make([]string, 0, len(columns))
		for _, column := range columns {
			record = append(record, stringify(row[column]))
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("writing row for %s: %w", item.Name, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// CSVFile writes the collection to a CSV file, replacing previous content.
func CSVFile(path string, c *candidate.Candidates, columns []string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	return CSV(file, c, columns)
}

// ZipFiles packages the listed candidates' source files into a ZIP archive
// at path. Candidates whose source file is gone are skipped with a warning,
// matching the partial-success policy of the rest of the tool.
func ZipFiles(path string, items []*candidate.Candidate, logger *zap.Logger) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := zip.NewWriter(file)
	defer writer.Close()

	for _, item := range items {
		if item.Path == "" {
			continue
		}

		src, err := os.Open(item.Path)
		if err != nil {
			if logger != nil {
				logger.Warn("skipping missing source file",
					zap.String("name", item.Name),
					zap.String("path", item.Path),
				)
			}
			continue
		}

		entry, err := writer.Create(item.Name)
		if err != nil {
			src.Close()
			return fmt.Errorf("creating archive entry for %s: %w", item.Name, err)
		}
		if _, err := io.Copy(entry, src); err != nil {
			src.Close()
			return fmt.Errorf("archiving %s: %w", item.Name, err)
		}
		src.Close()
	}

	return nil
}

// rowOf flattens a candidate into a column-addressable map.
func rowOf(item *candidate.Candidate) (map[string]any, error) {
	row := map[string]any{}
	if err := mapstructure.Decode(item, &row); err != nil {
		return nil, err
	}

	// The badge struct is excluded from the generic decode; expose the
	// operator-facing label and its category as flat columns.
	row["english_badge"] = item.EnglishBadge.Label
	row["badge_category"] = string(item.EnglishBadge.Category)

	return row, nil
}

func stringify(value any) string {
	if value == nil {
		return ""
	}
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}
