package store

import (
	"context"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"

	"github.com/wingfantasy/wingfantasy/internal/domain/event"
	"github.com/wingfantasy/wingfantasy/internal/domain/leaderboard"
	"github.com/wingfantasy/wingfantasy/internal/domain/profile"
	"github.com/wingfantasy/wingfantasy/internal/domain/session"
)

// Snapshots is the typed codec over a Store. Each snapshot type has its own
// key; payloads are JSON.
type Snapshots struct {
	store Store
}

func NewSnapshots(store Store) *Snapshots {
	return &Snapshots{store: store}
}

func (s *Snapshots) SaveSession(ctx context.Context, state *session.State) error {
	return s.save(ctx, KeySession, state)
}

func (s *Snapshots) LoadSession(ctx context.Context) (*session.State, error) {
	var state session.State
	if err := s.load(ctx, KeySession, &state); err != nil {
		return nil, err
	}
	if state.Results == nil {
		state.Results = make(map[string]event.Outcome)
	}
	if state.Points == nil {
		state.Points = make(map[string]int)
	}
	return &state, nil
}

func (s *Snapshots) SaveProfile(ctx context.Context, p profile.Profile) error {
	return s.save(ctx, KeyProfile, p)
}

func (s *Snapshots) LoadProfile(ctx context.Context) (profile.Profile, error) {
	var p profile.Profile
	if err := s.load(ctx, KeyProfile, &p); err != nil {
		return profile.Profile{}, err
	}
	return p, nil
}

func (s *Snapshots) SaveLeaderboards(ctx context.Context, data *leaderboard.Data) error {
	return s.save(ctx, KeyLeaderboards, data)
}

func (s *Snapshots) LoadLeaderboards(ctx context.Context) (*leaderboard.Data, error) {
	var data leaderboard.Data
	if err := s.load(ctx, KeyLeaderboards, &data); err != nil {
		return nil, err
	}
	if data.Weekly == nil {
		data.Weekly = make(map[leaderboard.BoardKey][]leaderboard.Entry)
	}
	if data.Monthly == nil {
		data.Monthly = make(map[leaderboard.BoardKey][]leaderboard.Entry)
	}
	return &data, nil
}

func (s *Snapshots) SaveSeed(ctx context.Context, seed int64) error {
	return s.save(ctx, KeySeed, seed)
}

func (s *Snapshots) LoadSeed(ctx context.Context) (int64, error) {
	var seed int64
	if err := s.load(ctx, KeySeed, &seed); err != nil {
		return 0, err
	}
	return seed, nil
}

func (s *Snapshots) save(ctx context.Context, key string, value any) error {
	data, err := sonic.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "encode snapshot %s", key)
	}
	return s.store.Save(ctx, key, data)
}

func (s *Snapshots) load(ctx context.Context, key string, out any) error {
	data, err := s.store.Load(ctx, key)
	if err != nil {
		return err
	}
	if err := sonic.Unmarshal(data, out); err != nil {
		return errors.Wrapf(err, "decode snapshot %s", key)
	}
	return nil
}
