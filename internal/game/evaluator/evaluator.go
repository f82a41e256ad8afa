package evaluator

import (
	"errors"
	"fmt"
	"sort"

	"CardTournament/internal/game/table"
)

// HandSize 一手牌固定 5 张
const HandSize = 5

var (
	ErrInvalidHandSize = errors.New("invalid hand size")
	ErrDuplicateCard   = errors.New("duplicate card in hand")
)

// Category 牌型，数值越大越强
type Category int

const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

var categoryNames = [...]string{
	HighCard:      "High Card",
	OnePair:       "One Pair",
	TwoPair:       "Two Pair",
	ThreeOfAKind:  "Three of a Kind",
	Straight:      "Straight",
	Flush:         "Flush",
	FullHouse:     "Full House",
	FourOfAKind:   "Four of a Kind",
	StraightFlush: "Straight Flush",
	RoyalFlush:    "Royal Flush",
}

func (c Category) String() string {
	if c < HighCard || c > RoyalFlush {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categoryNames[c]
}

// categoryWeight 大于任何 tie-break（五位 15 进制 < 15^5 = 759375）
const categoryWeight = 1_000_000

// Score category*categoryWeight + tie-break，两手牌直接比整数
type Score int

func (s Score) Category() Category {
	return Category(int(s) / categoryWeight)
}

type group struct {
	rank  table.Rank
	count int
}

// Evaluate 计算 5 张牌的分数。纯函数，与输入顺序无关。
func Evaluate(hand []table.Card) (Score, error) {
	if len(hand) != HandSize {
		return 0, fmt.Errorf("%w: got %d cards, want %d", ErrInvalidHandSize, len(hand), HandSize)
	}

	seen := make(map[table.Card]bool, HandSize)
	counts := make(map[table.Rank]int, HandSize)
	flush := true
	for _, c := range hand {
		// 一副牌里每张只有一张，重复的牌会被误判成四条以上
		if seen[c] {
			return 0, fmt.Errorf("%w: %s", ErrDuplicateCard, c)
		}
		seen[c] = true
		counts[c.Rank]++
		if c.Suit != hand[0].Suit {
			flush = false
		}
	}

	// 按 (张数降序, 点数降序) 分组，决定 tie-break 顺序
	groups := make([]group, 0, len(counts))
	for r, n := range counts {
		groups = append(groups, group{rank: r, count: n})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].count != groups[j].count {
			return groups[i].count > groups[j].count
		}
		return groups[i].rank > groups[j].rank
	})

	top, straight := straightTop(groups)

	var cat Category
	switch {
	case straight && flush && top == table.Ace:
		cat = RoyalFlush
	case straight && flush:
		cat = StraightFlush
	case groups[0].count == 4:
		cat = FourOfAKind
	case groups[0].count == 3 && groups[1].count == 2:
		cat = FullHouse
	case flush:
		cat = Flush
	case straight:
		cat = Straight
	case groups[0].count == 3:
		cat = ThreeOfAKind
	case groups[0].count == 2 && groups[1].count == 2:
		cat = TwoPair
	case groups[0].count == 2:
		cat = OnePair
	default:
		cat = HighCard
	}

	var tb int
	if straight {
		tb = int(top)
	} else {
		for _, g := range groups {
			tb = tb*15 + int(g.rank)
		}
	}
	return Score(int(cat)*categoryWeight + tb), nil
}

// straightTop 5 个不同点数且连续时返回最高点；A-2-3-4-5 的最高点是 5
func straightTop(groups []group) (table.Rank, bool) {
	if len(groups) != HandSize {
		return 0, false
	}
	// 5 个单张，groups 已按点数降序
	hi, lo := groups[0].rank, groups[HandSize-1].rank
	if hi-lo == 4 {
		return hi, true
	}
	if hi == table.Ace && groups[1].rank == table.Five && lo == table.Two {
		return table.Five, true
	}
	return 0, false
}

// Winners 返回所有达到最高分的下标（并列全部算赢）
func Winners(scores []Score) []int {
	if len(scores) == 0 {
		return nil
	}
	best := scores[0]
	for _, s := range scores[1:] {
		if s > best {
			best = s
		}
	}
	out := make([]int, 0, 1)
	for i, s := range scores {
		if s == best {
			out = append(out, i)
		}
	}
	return out
}
