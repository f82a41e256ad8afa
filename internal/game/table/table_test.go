package table

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ✅ 正常建桌
func TestNewTable(t *testing.T) {
	tbl, err := NewTable([]string{"민수", "지영", "bob", "alice"})
	require.NoError(t, err)
	assert.NotEmpty(t, tbl.ID)
	assert.Equal(t, []string{"민수", "지영", "bob", "alice"}, tbl.Nicknames())

	for _, p := range tbl.Players {
		assert.Equal(t, StartingBankroll, p.Bankroll())
		assert.Zero(t, p.Wins())
		assert.Zero(t, p.Losses())
		assert.Empty(t, p.Hand())
	}
}

// ✅ 非法座位表
func TestNewTable_InvalidRoster(t *testing.T) {
	cases := map[string][]string{
		"empty":     {},
		"nil":       nil,
		"duplicate": {"a", "b", "a"},
		"blank":     {"a", ""},
		"too long":  {strings.Repeat("x", MaxNicknameLen+1)},
	}
	for name, roster := range cases {
		t.Run(name, func(t *testing.T) {
			tbl, err := NewTable(roster)
			assert.Nil(t, tbl)
			assert.True(t, errors.Is(err, ErrInvalidRoster), "got %v", err)
		})
	}
}

// 20 个韩文字符按字符数算，不按字节
func TestNewTable_NicknameLengthCountsRunes(t *testing.T) {
	_, err := NewTable([]string{strings.Repeat("가", MaxNicknameLen)})
	assert.NoError(t, err)
}

func TestPlayerRecordRound(t *testing.T) {
	tbl, err := NewTable([]string{"p1"})
	require.NoError(t, err)
	p := tbl.Players[0]

	p.RecordRound(true)
	p.RecordRound(false)
	p.RecordRound(true)

	assert.Equal(t, Standing{
		Nickname: "p1",
		Wins:     2,
		Losses:   1,
		Bankroll: StartingBankroll + 2*RoundPayout,
	}, p.Standing())
	assert.Equal(t, []Standing{p.Standing()}, tbl.Standings())
}

func TestPlayerResetHand(t *testing.T) {
	tbl, _ := NewTable([]string{"p1"})
	p := tbl.Players[0]

	first := MustParseCards("2♣ 3♣ 4♣ 5♣ 6♣")
	p.ResetHand(first)
	first[0] = Card{Suit: Spades, Rank: Ace}
	assert.Equal(t, "2♣", p.Hand()[0].String(), "hand must be copied on reset")

	second := MustParseCards("A♠ K♠ Q♠ J♠ 10♠")
	p.ResetHand(second)
	assert.Equal(t, second, p.Hand())

	h := p.Hand()
	h[0] = Card{Suit: Clubs, Rank: Two}
	assert.Equal(t, second, p.Hand(), "Hand must return a copy")
}

func TestParseCard(t *testing.T) {
	cases := map[string]Card{
		"10♠": {Suit: Spades, Rank: Ten},
		"Ts":  {Suit: Spades, Rank: Ten},
		"ah":  {Suit: Hearts, Rank: Ace},
		"2♣":  {Suit: Clubs, Rank: Two},
		"9d":  {Suit: Diamonds, Rank: Nine},
		"K♥":  {Suit: Hearts, Rank: King},
		"QC":  {Suit: Clubs, Rank: Queen},
	}
	for in, want := range cases {
		got, err := ParseCard(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, bad := range []string{"", "x", "1♠", "11s", "Ax", "♠"} {
		_, err := ParseCard(bad)
		assert.ErrorIs(t, err, ErrInvalidCard, bad)
	}
}

func TestCardString(t *testing.T) {
	assert.Equal(t, "10♠", Card{Suit: Spades, Rank: Ten}.String())
	assert.Equal(t, "A♥", Card{Suit: Hearts, Rank: Ace}.String())
	assert.Equal(t, "7♦", Card{Suit: Diamonds, Rank: Seven}.String())
	assert.Equal(t, "J♣", Card{Suit: Clubs, Rank: Jack}.String())
}
