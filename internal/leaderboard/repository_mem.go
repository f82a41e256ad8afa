package leaderboard

import (
	"context"
	"sort"
	"sync"

	"CardTournament/internal/game/table"
)

type memRepo struct {
	mu   sync.Mutex
	runs map[string][]table.Standing // runID -> standings
}

func NewMemoryRepo() Repo {
	return &memRepo{runs: make(map[string][]table.Standing)}
}

func (m *memRepo) Save(ctx context.Context, runID string, standings []table.Standing, ttlSeconds int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]table.Standing, len(standings))
	copy(cp, standings)
	// 内存版忽略 TTL
	m.runs[runID] = cp
	return nil
}

func (m *memRepo) Get(ctx context.Context, runID string) ([]table.Standing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.runs[runID]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]table.Standing, len(s))
	copy(out, s)
	return out, nil
}

func (m *memRepo) Top(ctx context.Context, runID string, n int) ([]table.Standing, error) {
	all, err := m.Get(ctx, runID)
	if err != nil {
		return nil, err
	}
	SortByBankroll(all)
	if n > 0 && n < len(all) {
		all = all[:n]
	}
	return all, nil
}

// SortByBankroll 资金降序，同分按昵称升序
func SortByBankroll(s []table.Standing) {
	sort.SliceStable(s, func(i, j int) bool {
		if s[i].Bankroll != s[j].Bankroll {
			return s[i].Bankroll > s[j].Bankroll
		}
		return s[i].Nickname < s[j].Nickname
	})
}
