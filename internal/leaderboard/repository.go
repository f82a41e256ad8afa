package leaderboard

import (
	"context"
	"errors"

	"CardTournament/internal/game/table"
)

var ErrNotFound = errors.New("tournament not found")

// Repo 最终战绩存储（只存每场锦标赛的最终报告，不存每局历史）
type Repo interface {
	// Save 保存一场锦标赛的最终战绩，ttlSeconds <= 0 表示不过期
	Save(ctx context.Context, runID string, standings []table.Standing, ttlSeconds int) error
	// Get 按座位顺序返回战绩
	Get(ctx context.Context, runID string) ([]table.Standing, error)
	// Top 按资金降序返回前 n 名（资金相同按昵称升序）
	Top(ctx context.Context, runID string, n int) ([]table.Standing, error)
}
