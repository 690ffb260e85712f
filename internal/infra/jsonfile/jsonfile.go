package infra_jsonfile

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/goccy/go-json"
	"github.com/sarahjlfoster/sample-qdev-movies/internal/model"
)

// Source reads the catalog from a JSON array of movie records.
type Source struct {
	name     string
	readFile func(name string) ([]byte, error)
}

func New(path string) *Source {
	return &Source{
		name:     path,
		readFile: os.ReadFile,
	}
}

func NewFS(fsys fs.FS, name string) *Source {
	return &Source{
		name: name,
		readFile: func(name string) ([]byte, error) {
			return fs.ReadFile(fsys, name)
		},
	}
}

func (s *Source) Load(ctx context.Context) ([]model.RawMovie, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	content, err := s.readFile(s.name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.name, err)
	}

	var records []model.RawMovie
	if err := json.Unmarshal(content, &records); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", s.name, err)
	}

	return records, nil
}
