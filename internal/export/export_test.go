package export

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/rhtools/cv-screener/internal/candidate"
)

func sample() *candidate.Candidates {
	return &candidate.Candidates{
		Items: []*candidate.Candidate{
			{
				Name:             "alice.pdf",
				Score:            2,
				EnglishLevel:     "B2",
				EnglishIndex:     3,
				EnglishBadge:     candidate.Badge{Category: candidate.BadgeLeveled, Label: "Niveau B2"},
				HasExperience:    true,
				ExperienceTypes:  "CDI",
				ExperienceCount:  1,
				ExperienceDetail: "cdi 2019-2021",
				Location:         "torcy",
				CommuteTransport: 15,
				CommuteCar:       20,
				CommuteDisplay:   "15min (T) / 20min (V)",
				Status:           candidate.StatusSelected,
			},
		},
	}
}

func TestCSVWritesChosenColumns(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := CSV(&buf, sample(), []string{"name", "score", "status"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("reading csv back: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("expected header plus one row, got %d records", len(records))
	}
	if records[0][0] != "name" || records[0][2] != "status" {
		t.Fatalf("unexpected header: %v", records[0])
	}
	if records[1][0] != "alice.pdf" || records[1][1] != "2" || records[1][2] != "selected" {
		t.Fatalf("unexpected row: %v", records[1])
	}
}

func TestCSVDefaultColumnsIncludeBadgeLabel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := CSV(&buf, sample(), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("reading csv back: %v", err)
	}

	badgeIdx := -1
	for i, column := range records[0] {
		if column == "english_badge" {
			badgeIdx = i
		}
	}
	if badgeIdx < 0 {
		t.Fatalf("english_badge column missing from default set: %v", records[0])
	}
	if records[1][badgeIdx] != "Niveau B2" {
		t.Fatalf("expected badge label, got %q", records[1][badgeIdx])
	}
}

func TestCSVUnknownColumnYieldsEmptyCell(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := CSV(&buf, sample(), []string{"name", "does_not_exist"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("reading csv back: %v", err)
	}
	if records[1][1] != "" {
		t.Fatalf("expected empty cell, got %q", records[1][1])
	}
}

func TestZipFilesSkipsMissingSources(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	srcPath := filepath.Join(dir, "bob.pdf")
	if err := os.WriteFile(srcPath, []byte("pdf bytes"), 0o644); err != nil {
		t.Fatalf("writing source: %v", err)
	}

	items := []*candidate.Candidate{
		{Name: "bob.pdf", Path: srcPath},
		{Name: "gone.pdf", Path: filepath.Join(dir, "gone.pdf")},
	}

	zipPath := filepath.Join(dir, "rejected.zip")
	if err := ZipFiles(zipPath, items, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reader, err := zip.OpenReader(zipPath)
	if err != nil {
		t.Fatalf("opening archive: %v", err)
	}
	defer reader.Close()

	if len(reader.File) != 1 || reader.File[0].Name != "bob.pdf" {
		names := make([]string, 0, len(reader.File))
		for _, f := range reader.File {
			names = append(names, f.Name)
		}
		t.Fatalf("expected only bob.pdf in archive, got %v", names)
	}
}
