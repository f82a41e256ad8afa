package dealer

import (
	"errors"
	"fmt"
	"math/rand"

	"CardTournament/internal/game/table"
)

// DeckSize 一副牌 52 张
const DeckSize = 52

var (
	ErrOutOfCards        = errors.New("out of cards")
	ErrInsufficientCards = errors.New("insufficient cards")
)

// Deck 52 张牌 + 发牌游标。每局新建，局后丢弃。
type Deck struct {
	cards [DeckSize]table.Card
	next  int
}

// NewDeck 按基础顺序生成 52 张牌：花色优先（♣ ♥ ♦ ♠），点数 2..A
func NewDeck() *Deck {
	d := &Deck{}
	i := 0
	for _, s := range table.Suits {
		for _, r := range table.Ranks {
			d.cards[i] = table.Card{Suit: s, Rank: r}
			i++
		}
	}
	return d
}

// Shuffle Fisher-Yates：从最后一张往前，与 [0, i] 内随机位置交换。
// 不能用“每个位置和全范围随机位置交换”的写法，那样排列不均匀。
func (d *Deck) Shuffle(rnd *rand.Rand) {
	d.next = 0
	for i := len(d.cards) - 1; i > 0; i-- {
		j := rnd.Intn(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Draw 取下一张未发出的牌
func (d *Deck) Draw() (table.Card, error) {
	if d.next >= len(d.cards) {
		return table.Card{}, ErrOutOfCards
	}
	c := d.cards[d.next]
	d.next++
	return c, nil
}

func (d *Deck) Remaining() int {
	return len(d.cards) - d.next
}

// Cards 当前牌序副本（用于 trace）
func (d *Deck) Cards() []table.Card {
	out := make([]table.Card, len(d.cards))
	copy(out, d.cards[:])
	return out
}

// Dealer 只负责洗牌与发牌（无规则判断）
type Dealer struct {
	rnd *rand.Rand
}

func NewDealer(seed int64) *Dealer {
	return NewDealerWithSource(rand.NewSource(seed))
}

func NewDealerWithSource(src rand.Source) *Dealer {
	return &Dealer{rnd: rand.New(src)}
}

// NewShuffledDeck 新建一副牌并洗好
func (d *Dealer) NewShuffledDeck() *Deck {
	deck := NewDeck()
	d.Shuffle(deck)
	return deck
}

// Shuffle 用 dealer 自己的随机源洗牌
func (d *Dealer) Shuffle(deck *Deck) {
	deck.Shuffle(d.rnd)
}

// DealHands 按座位顺序整块发牌：玩家 0 拿 draws[0..size-1]，玩家 1 拿下一块……
// 牌不够时在发任何一张之前就返回 ErrInsufficientCards
func (d *Dealer) DealHands(deck *Deck, players, size int) ([][]table.Card, error) {
	need := players * size
	if need > deck.Remaining() {
		return nil, fmt.Errorf("%w: %d players x %d cards needs %d, deck has %d",
			ErrInsufficientCards, players, size, need, deck.Remaining())
	}

	hands := make([][]table.Card, players)
	for p := 0; p < players; p++ {
		hand := make([]table.Card, 0, size)
		for i := 0; i < size; i++ {
			c, err := deck.Draw()
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInsufficientCards, err)
			}
			hand = append(hand, c)
		}
		hands[p] = hand
	}
	return hands, nil
}
