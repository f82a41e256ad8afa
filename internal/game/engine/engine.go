package engine

import (
	"errors"
	"fmt"

	"CardTournament/internal/game/dealer"
	"CardTournament/internal/game/evaluator"
	"CardTournament/internal/game/table"
)

var ErrInvalidRoundCount = errors.New("invalid round count")

// State 一局内的阶段
type State string

const (
	StateNewDeck   State = "new_deck"
	StateShuffled  State = "shuffled"
	StateDealt     State = "dealt"
	StateEvaluated State = "evaluated"
	StateSettled   State = "settled"
	StateTerminal  State = "terminal"
)

// ---------------------
//       TRACE
// ---------------------

// PlayerRound 某位玩家在一局中的结果
type PlayerRound struct {
	Nickname string             `json:"nickname"`
	Hand     []table.Card       `json:"hand"`
	Score    evaluator.Score    `json:"score"`
	Category evaluator.Category `json:"category"`
	Won      bool               `json:"won"`
}

// RoundTrace 每局的诊断信息
type RoundTrace struct {
	Round   int           `json:"round"`
	Deck    []table.Card  `json:"deck"`
	Players []PlayerRound `json:"players"`
	Winners []string      `json:"winners"`
}

// Observer 接收每局 trace，可为 nil
type Observer interface {
	OnRound(RoundTrace)
}

// ObserverFunc 函数适配器
type ObserverFunc func(RoundTrace)

func (f ObserverFunc) OnRound(tr RoundTrace) { f(tr) }

// Report 最终报告：按座位顺序的战绩
type Report struct {
	ID        string           `json:"id"`
	Rounds    int              `json:"rounds"`
	Standings []table.Standing `json:"standings"`
}

// Leaders 胜场最多的玩家（可能并列）
func (r Report) Leaders() []table.Standing {
	best := -1
	var out []table.Standing
	for _, s := range r.Standings {
		switch {
		case s.Wins > best:
			best = s.Wins
			out = []table.Standing{s}
		case s.Wins == best:
			out = append(out, s)
		}
	}
	return out
}

// ---------------------
//       ENGINE
// ---------------------

type Engine struct {
	Table    *table.Table
	Dealer   *dealer.Dealer
	Observer Observer
	State    State

	played int
}

func NewEngine(t *table.Table, d *dealer.Dealer, obs Observer) *Engine {
	return &Engine{
		Table:    t,
		Dealer:   d,
		Observer: obs,
		State:    StateNewDeck,
	}
}

// Run 连续打 rounds 局。中途出错立即停止，返回已完成局数的报告和错误。
func (e *Engine) Run(rounds int) (Report, error) {
	if rounds < 1 {
		return e.report(), fmt.Errorf("%w: %d", ErrInvalidRoundCount, rounds)
	}
	if e.Table == nil || len(e.Table.Players) == 0 {
		return Report{}, fmt.Errorf("%w: no players", table.ErrInvalidRoster)
	}

	for n := 1; n <= rounds; n++ {
		if err := e.playRound(n); err != nil {
			e.State = StateTerminal
			return e.report(), fmt.Errorf("round %d: %w", n, err)
		}
		e.played++
	}
	e.State = StateTerminal
	return e.report(), nil
}

// playRound new_deck -> shuffled -> dealt -> evaluated -> settled
// 结算之前不碰任何玩家账本，失败的局不会留下半截状态
func (e *Engine) playRound(n int) error {
	players := e.Table.Players

	e.State = StateNewDeck
	deck := dealer.NewDeck()

	e.State = StateShuffled
	e.Dealer.Shuffle(deck)
	order := deck.Cards()

	hands, err := e.Dealer.DealHands(deck, len(players), evaluator.HandSize)
	if err != nil {
		return err
	}
	e.State = StateDealt

	scores := make([]evaluator.Score, len(players))
	for i, h := range hands {
		s, err := evaluator.Evaluate(h)
		if err != nil {
			return err
		}
		scores[i] = s
	}
	e.State = StateEvaluated

	won := make([]bool, len(players))
	for _, i := range evaluator.Winners(scores) {
		won[i] = true
	}

	trace := RoundTrace{
		Round:   n,
		Deck:    order,
		Players: make([]PlayerRound, len(players)),
	}
	for i, p := range players {
		p.ResetHand(hands[i])
		p.RecordRound(won[i])
		trace.Players[i] = PlayerRound{
			Nickname: p.Nickname(),
			Hand:     hands[i],
			Score:    scores[i],
			Category: scores[i].Category(),
			Won:      won[i],
		}
		if won[i] {
			trace.Winners = append(trace.Winners, p.Nickname())
		}
	}
	e.State = StateSettled

	if e.Observer != nil {
		e.Observer.OnRound(trace)
	}
	return nil
}

func (e *Engine) Played() int { return e.played }

func (e *Engine) report() Report {
	r := Report{Rounds: e.played}
	if e.Table != nil {
		r.ID = e.Table.ID
		r.Standings = e.Table.Standings()
	}
	return r
}
