package infra_memory

import (
	"context"

	"github.com/sarahjlfoster/sample-qdev-movies/internal/model"
)

// MovieSource serves a fixed list of raw records.
type MovieSource struct {
	records []model.RawMovie
}

func NewMovieSource(records ...model.RawMovie) *MovieSource {
	return &MovieSource{records: records}
}

func (s *MovieSource) Load(ctx context.Context) ([]model.RawMovie, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	records := make([]model.RawMovie, len(s.records))
	copy(records, s.records)
	return records, nil
}
