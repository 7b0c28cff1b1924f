package cmd

import (
	"context"
	"fmt"

	"github.com/Paintersrp/notelist/internal/filter"
	"github.com/Paintersrp/notelist/internal/note"
	"github.com/Paintersrp/notelist/internal/state"
)

// LoadSequence loads the vault and runs the list pipeline once with the
// configured sort.
func LoadSequence(ctx context.Context, s *state.State, criteria filter.Criteria) (note.Collection, *filter.Sequence, error) {
	c, err := s.Vault.Load(ctx)
	if err != nil {
		return note.Collection{}, nil, fmt.Errorf("failed to load notes: %w", err)
	}
	return c, filter.NewSequence(c, criteria, s.Config.SortOptions()), nil
}
