package table

const (
	// StartingBankroll 每位玩家的初始资金
	StartingBankroll int64 = 10000
	// RoundPayout 每局胜者获得的奖金（平局时每位并列胜者都拿）
	RoundPayout int64 = 100
)

// Player 玩家账本：昵称、当前手牌、胜负次数、资金
// 字段不导出，只能由 engine 在每局结算时修改
type Player struct {
	nickname string
	hand     []Card
	wins     int
	losses   int
	bankroll int64
}

func newPlayer(nickname string) *Player {
	return &Player{
		nickname: nickname,
		bankroll: StartingBankroll,
	}
}

func (p *Player) Nickname() string { return p.nickname }
func (p *Player) Wins() int        { return p.wins }
func (p *Player) Losses() int      { return p.losses }
func (p *Player) Bankroll() int64  { return p.bankroll }

// Hand 返回当前手牌副本
func (p *Player) Hand() []Card {
	out := make([]Card, len(p.hand))
	copy(out, p.hand)
	return out
}

// ResetHand 换上新一局的手牌，旧手牌直接丢弃
func (p *Player) ResetHand(hand []Card) {
	p.hand = make([]Card, len(hand))
	copy(p.hand, hand)
}

// RecordRound 记录一局胜负。输了不扣钱，也没有资金下限。
func (p *Player) RecordRound(won bool) {
	if won {
		p.wins++
		p.bankroll += RoundPayout
		return
	}
	p.losses++
}

// Standing 最终报告中的一行
type Standing struct {
	Nickname string `json:"nickname"`
	Wins     int    `json:"wins"`
	Losses   int    `json:"losses"`
	Bankroll int64  `json:"bankroll"`
}

func (p *Player) Standing() Standing {
	return Standing{
		Nickname: p.nickname,
		Wins:     p.wins,
		Losses:   p.losses,
		Bankroll: p.bankroll,
	}
}
