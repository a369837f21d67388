package memory

import (
	"context"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"

	"github.com/wingfantasy/wingfantasy/internal/domain/event"
)

func TestSeedEventsValid(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	events := SeedEvents(now)
	require.Len(t, events, 6)
	for _, e := range events {
		require.NoError(t, e.Validate(), "seed event %s", e.ID)
	}
}

func TestSeedCatalog(t *testing.T) {
	catalog, err := SeedCatalog()
	require.NoError(t, err)
	require.Len(t, catalog.Players(), 20)
	require.Len(t, catalog.Drivers(), 4)
	require.Len(t, catalog.TeamCards(), 2)
}

func TestEventRepositoryListOrder(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	repo := NewEventRepository(SeedEvents(now))

	listed, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 6)
	require.Equal(t, "f1-abu-dhabi", listed[0].ID)
	require.Equal(t, "nyrb-lafc", listed[5].ID)
}

func TestEventRepositoryGetByID(t *testing.T) {
	now := time.Now()
	repo := NewEventRepository(SeedEvents(now))

	item, err := repo.GetByID(context.Background(), "rb-leipzig-bayern")
	require.NoError(t, err)
	require.Equal(t, event.SportFootball, item.Sport)

	_, err = repo.GetByID(context.Background(), "missing")
	require.True(t, errors.Is(err, ErrEventNotFound))
}
