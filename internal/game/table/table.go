package table

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// MaxNicknameLen 昵称最多 20 个字符（按 rune 计）
const MaxNicknameLen = 20

var ErrInvalidRoster = errors.New("invalid roster")

// Table 一次锦标赛的座位表：运行 ID + 有序玩家列表
type Table struct {
	ID        string
	Players   []*Player
	CreatedAt time.Time
}

// NewTable 校验昵称列表并建桌：不能为空、不能重名、每个昵称 1~20 个字符
func NewTable(nicknames []string) (*Table, error) {
	if err := ValidateRoster(nicknames); err != nil {
		return nil, err
	}

	players := make([]*Player, 0, len(nicknames))
	for _, n := range nicknames {
		players = append(players, newPlayer(n))
	}
	return &Table{
		ID:        uuid.NewString(),
		Players:   players,
		CreatedAt: time.Now(),
	}, nil
}

func ValidateRoster(nicknames []string) error {
	if len(nicknames) == 0 {
		return fmt.Errorf("%w: no players", ErrInvalidRoster)
	}
	seen := make(map[string]struct{}, len(nicknames))
	for i, n := range nicknames {
		l := utf8.RuneCountInString(n)
		if l == 0 {
			return fmt.Errorf("%w: player %d has an empty nickname", ErrInvalidRoster, i+1)
		}
		if l > MaxNicknameLen {
			return fmt.Errorf("%w: nickname %q longer than %d characters", ErrInvalidRoster, n, MaxNicknameLen)
		}
		if _, ok := seen[n]; ok {
			return fmt.Errorf("%w: duplicate nickname %q", ErrInvalidRoster, n)
		}
		seen[n] = struct{}{}
	}
	return nil
}

// Nicknames 座位顺序的昵称列表
func (t *Table) Nicknames() []string {
	out := make([]string, len(t.Players))
	for i, p := range t.Players {
		out[i] = p.nickname
	}
	return out
}

// Standings 座位顺序的战绩
func (t *Table) Standings() []Standing {
	out := make([]Standing, len(t.Players))
	for i, p := range t.Players {
		out[i] = p.Standing()
	}
	return out
}
