package candidate

import (
	"encoding/json"
	"os"
	"time"
)

// Statuses is the persisted form of the operator's review decisions. It lives
// in a plain JSON file so it survives between runs; the engine itself never
// infers a status from CV text.
type Statuses struct {
	Items []*StatusEntry
}

type StatusEntry struct {
	Name      string
	Status    Status
	UpdatedAt time.Time
}

// LoadStatuses reads a status file. A missing or empty file yields an empty
// set rather than an error so a first run needs no setup.
func LoadStatuses(path string) (*Statuses, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Statuses{}, nil
		}
		return nil, err
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, err
	}

	if stat.Size() == 0 {
		return &Statuses{}, nil
	}

	var statuses Statuses
	if err := json.NewDecoder(file).Decode(&statuses); err != nil {
		return nil, err
	}
	return &statuses, nil
}

// ToFile writes the status set as indented JSON, replacing previous content.
func (s *Statuses) ToFile(path string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}

// Record remembers the current status of a candidate, replacing any earlier
// entry with the same name.
func (s *Statuses) Record(name string, status Status) {
	for _, entry := range s.Items {
		if entry.Name == name {
			entry.Status = status
			entry.UpdatedAt = time.Now().UTC()
			return
		}
	}
	s.Items = append(s.Items, &StatusEntry{
		Name:      name,
		Status:    status,
		UpdatedAt: time.Now().UTC(),
	})
}

// Apply copies remembered statuses onto matching candidates.
func (s *Statuses) Apply(c *Candidates) {
	if c == nil {
		return
	}
	for _, entry := range s.Items {
		if item := c.FindByName(entry.Name); item != nil {
			item.Status = entry.Status
		}
	}
}

// Snapshot records the current status of every candidate in the collection.
func (s *Statuses) Snapshot(c *Candidates) {
	if c == nil {
		return
	}
	for _, item := range c.Items {
		s.Record(item.Name, item.Status)
	}
}
