package table

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidCard = errors.New("invalid card")

// Suit 花色
type Suit int

const (
	Clubs Suit = iota
	Hearts
	Diamonds
	Spades
)

// Suits 基础顺序，只读
var Suits = [...]Suit{Clubs, Hearts, Diamonds, Spades}

func (s Suit) String() string {
	switch s {
	case Clubs:
		return "♣"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Spades:
		return "♠"
	}
	return "?"
}

// Rank 点数 (2-14, Ace = 14)
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

var Ranks = [...]Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

func (r Rank) String() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	}
	if r >= Two && r <= Ten {
		return fmt.Sprintf("%d", int(r))
	}
	return "?"
}

// Card 不可变的 (suit, rank) 值
type Card struct {
	Suit Suit `json:"suit"`
	Rank Rank `json:"rank"`
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// ParseCard 解析简写，例如 "10♠" "Ts" "ah" "2♣"
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
	}

	var suit Suit
	var rankPart string
	switch {
	case strings.HasSuffix(s, "♣"):
		suit, rankPart = Clubs, strings.TrimSuffix(s, "♣")
	case strings.HasSuffix(s, "♥"):
		suit, rankPart = Hearts, strings.TrimSuffix(s, "♥")
	case strings.HasSuffix(s, "♦"):
		suit, rankPart = Diamonds, strings.TrimSuffix(s, "♦")
	case strings.HasSuffix(s, "♠"):
		suit, rankPart = Spades, strings.TrimSuffix(s, "♠")
	default:
		rankPart = s[:len(s)-1]
		switch strings.ToLower(s[len(s)-1:]) {
		case "c":
			suit = Clubs
		case "h":
			suit = Hearts
		case "d":
			suit = Diamonds
		case "s":
			suit = Spades
		default:
			return Card{}, fmt.Errorf("%w: bad suit in %q", ErrInvalidCard, s)
		}
	}

	var rank Rank
	switch strings.ToUpper(rankPart) {
	case "A":
		rank = Ace
	case "K":
		rank = King
	case "Q":
		rank = Queen
	case "J":
		rank = Jack
	case "10", "T":
		rank = Ten
	case "2", "3", "4", "5", "6", "7", "8", "9":
		rank = Rank(rankPart[0] - '0')
	default:
		return Card{}, fmt.Errorf("%w: bad rank in %q", ErrInvalidCard, s)
	}
	return Card{Suit: suit, Rank: rank}, nil
}

// ParseCards 解析空格分隔的多张牌
func ParseCards(s string) ([]Card, error) {
	fields := strings.Fields(s)
	out := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// MustParseCards 测试/常量用，解析失败直接 panic
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}
