package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

const timeLayout = "20060102T150405"

// ErrRenderFailed wraps the error of a render callback. Nothing is kept on
// disk for a failed render.
var ErrRenderFailed = errors.New("render failed")

type Store struct {
	baseDir string
	now     func() time.Time
}

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func New(baseDir string, opts ...Option) *Store {
	s := &Store{baseDir: baseDir, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

func (s *Store) Dir() string { return s.baseDir }

type RunMetadata struct {
	ID        string               `json:"id"`
	Run       string               `json:"run"`
	Sketch    string               `json:"sketch"`
	Timestamp time.Time            `json:"timestamp"`
	Seed      int64                `json:"seed"`
	Width     int                  `json:"width"`
	Height    int                  `json:"height"`
	Params    any                  `json:"params,omitempty"`
	Stats     map[string]float64   `json:"stats"`
	Series    map[string][]float64 `json:"series,omitempty"`
	File      string               `json:"file"`
}

// Save renders one drawing into <sketch>_<timestamp>_<id>.svg and writes
// its metadata next to it. meta is filled in with the run name, id,
// timestamp and file; stats may be set by render itself. It returns the run
// name.
func (s *Store) Save(meta *RunMetadata, render func(w io.Writer) error) (string, error) {
	id := uuid.New()
	meta.ID = id.String()
	meta.Timestamp = s.now()
	meta.Run = fmt.Sprintf("%s_%s_%s", meta.Sketch, meta.Timestamp.Format(timeLayout), meta.ID[:8])
	meta.File = meta.Run + ".svg"

	svgPath := filepath.Join(s.baseDir, meta.File)
	f, err := os.Create(svgPath)
	if err != nil {
		return "", err
	}

	if err := render(f); err != nil {
		f.Close()
		os.Remove(svgPath)
		return "", fmt.Errorf("%w: %w", ErrRenderFailed, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(svgPath)
		return "", err
	}

	if err := s.writeMeta(meta); err != nil {
		os.Remove(svgPath)
		return "", err
	}

	return meta.Run, nil
}

// writeMeta leaves no partial json behind on failure.
func (s *Store) writeMeta(meta *RunMetadata) error {
	path := s.metaPath(meta.Run)
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("failed to encode metadata: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return err
	}
	return nil
}

func (s *Store) metaPath(run string) string {
	return filepath.Join(s.baseDir, run+".json")
}

// List returns the metadata of every run, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}

		meta, err := s.Load(strings.TrimSuffix(name, ".json"))
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	slices.SortFunc(runs, func(a, b RunMetadata) int {
		if c := a.Timestamp.Compare(b.Timestamp); c != 0 {
			return c
		}
		return strings.Compare(a.Run, b.Run)
	})
	return runs, nil
}

func (s *Store) Load(run string) (*RunMetadata, error) {
	data, err := os.ReadFile(s.metaPath(run))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}
