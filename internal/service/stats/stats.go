package stats

import (
	"context"
	"fmt"

	"loadboard/internal/entities"
)

type Stats struct {
	repository Repository
}

func New(repository Repository) *Stats {
	return &Stats{
		repository: repository,
	}
}

// BoardStats снимает сводные счётчики доски одним запросом.
func (s *Stats) BoardStats(ctx context.Context) (*entities.BoardStats, error) {
	boardStats, err := s.repository.Counts(ctx)
	if err != nil {
		return nil, fmt.Errorf("board stats: %w", err)
	}

	return boardStats, nil
}
