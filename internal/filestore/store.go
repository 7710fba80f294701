// Package filestore persists snapshots as read-optimized JSON files and
// reads them back for serving and for the vaccine merge.
package filestore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/carloworks/covid-data-api/internal/domain"
)

// Store owns the on-disk layout under one data directory:
//
//	covid/countries/<iso>.json
//	covid/latest.json
//	vaccine/countries/<iso>.json
//	vaccine/latest.json
//	news.json
type Store struct {
	root   string
	logger *slog.Logger
}

// New creates a Store rooted at dir.
func New(dir string, logger *slog.Logger) *Store {
	return &Store{root: dir, logger: logger}
}

// EnsureLayout creates the directory tree if it does not exist.
func (s *Store) EnsureLayout() error {
	for _, dir := range []string{
		filepath.Join(s.root, "covid", "countries"),
		filepath.Join(s.root, "vaccine", "countries"),
	} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return nil
}

// WriteCaseSnapshot replaces the per-entity case files: every existing file
// in the countries directory is deleted, then one file per entity with an
// ISO code is written. Entities without a code have no stable file name and
// stay snapshot-only. A single failed write is logged, not fatal.
func (s *Store) WriteCaseSnapshot(snap domain.Snapshot) error {
	dir := filepath.Join(s.root, "covid", "countries")
	if err := s.clearDir(dir); err != nil {
		return err
	}
	written := 0
	for _, entity := range snap {
		if entity.ISO == "" {
			continue
		}
		if err := s.writeJSON(s.caseEntityPath(entity.ISO), entity); err != nil {
			s.logger.Error("write case entity failed", "country", entity.Country, "error", err)
			continue
		}
		written++
	}
	s.logger.Info("case entity files written", "count", written)
	return nil
}

// WriteCaseLatest writes the aggregated latest-day case file.
func (s *Store) WriteCaseLatest(entries []*domain.LatestEntry) error {
	return s.writeJSON(filepath.Join(s.root, "covid", "latest.json"), entries)
}

// WriteCaseEntity rewrites one per-entity case file, used by the vaccine
// merger after splicing.
func (s *Store) WriteCaseEntity(entity *domain.EntitySeries) error {
	if entity.ISO == "" {
		return fmt.Errorf("entity %q has no iso code", entity.Country)
	}
	return s.writeJSON(s.caseEntityPath(entity.ISO), entity)
}

// ReadCaseEntity loads one per-entity case file by its (case-insensitive)
// code. A missing file maps to domain.ErrNotFound.
func (s *Store) ReadCaseEntity(code string) (*domain.EntitySeries, error) {
	var entity domain.EntitySeries
	if err := s.readJSON(s.caseEntityPath(code), &entity); err != nil {
		return nil, err
	}
	return &entity, nil
}

// WriteVaccineSeries replaces the per-entity vaccination files.
func (s *Store) WriteVaccineSeries(series []*domain.VaccineSeries) error {
	dir := filepath.Join(s.root, "vaccine", "countries")
	if err := s.clearDir(dir); err != nil {
		return err
	}
	written := 0
	for _, entity := range series {
		path := filepath.Join(dir, strings.ToLower(entity.ISO)+".json")
		if err := s.writeJSON(path, entity); err != nil {
			s.logger.Error("write vaccine entity failed", "country", entity.Country, "error", err)
			continue
		}
		written++
	}
	s.logger.Info("vaccine entity files written", "count", written)
	return nil
}

// WriteVaccineLatest writes the aggregated latest-day vaccination file.
func (s *Store) WriteVaccineLatest(entries []*domain.VaccineLatestEntry) error {
	return s.writeJSON(filepath.Join(s.root, "vaccine", "latest.json"), entries)
}

// WriteNews writes the news items file.
func (s *Store) WriteNews(items []domain.NewsItem) error {
	return s.writeJSON(filepath.Join(s.root, "news.json"), items)
}

// CaseEntityBytes returns a per-entity case file verbatim with its mtime.
func (s *Store) CaseEntityBytes(code string) ([]byte, time.Time, error) {
	return s.readBytes(s.caseEntityPath(code))
}

// CaseLatestBytes returns the aggregated case latest file with its mtime.
func (s *Store) CaseLatestBytes() ([]byte, time.Time, error) {
	return s.readBytes(filepath.Join(s.root, "covid", "latest.json"))
}

// VaccineEntityBytes returns a per-entity vaccination file with its mtime.
func (s *Store) VaccineEntityBytes(code string) ([]byte, time.Time, error) {
	return s.readBytes(filepath.Join(s.root, "vaccine", "countries", strings.ToLower(code)+".json"))
}

// VaccineLatestBytes returns the aggregated vaccination latest file.
func (s *Store) VaccineLatestBytes() ([]byte, time.Time, error) {
	return s.readBytes(filepath.Join(s.root, "vaccine", "latest.json"))
}

// NewsBytes returns the news file with its mtime.
func (s *Store) NewsBytes() ([]byte, time.Time, error) {
	return s.readBytes(filepath.Join(s.root, "news.json"))
}

func (s *Store) caseEntityPath(code string) string {
	return filepath.Join(s.root, "covid", "countries", strings.ToLower(code)+".json")
}

func (s *Store) writeJSON(path string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func (s *Store) readJSON(path string, v any) error {
	data, _, err := s.readBytes(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func (s *Store) readBytes(path string) ([]byte, time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, time.Time{}, fmt.Errorf("%s: %w", path, domain.ErrNotFound)
		}
		return nil, time.Time{}, fmt.Errorf("stat %s: %w", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("read %s: %w", path, err)
	}
	return data, info.ModTime(), nil
}

// clearDir removes every file directly inside dir. A directory that does
// not exist yet is fine.
func (s *Store) clearDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return os.MkdirAll(dir, 0o755)
		}
		return fmt.Errorf("read dir %s: %w", dir, err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
			s.logger.Error("remove stale file failed", "file", entry.Name(), "error", err)
		}
	}
	return nil
}
