package main

import (
	"testing"

	"CardTournament/internal/game/engine"
	"CardTournament/internal/game/manager"
	"CardTournament/internal/game/table"

	"github.com/stretchr/testify/assert"
)

func TestRenderReport(t *testing.T) {
	res := &manager.Result{
		Seed: 42,
		Report: engine.Report{
			ID:     "run-1",
			Rounds: 100,
			Standings: []table.Standing{
				{Nickname: "민수", Wins: 40, Losses: 60, Bankroll: 14000},
				{Nickname: "bob", Wins: 61, Losses: 39, Bankroll: 16100},
			},
		},
	}
	out := renderReport(res)
	for _, want := range []string{"Final Results", "run-1", "rounds=100", "seed=42", "Nickname", "Bankroll", "민수", "bob", "16100", "14000"} {
		assert.Contains(t, out, want)
	}
}
