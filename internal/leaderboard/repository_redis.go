package leaderboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"CardTournament/internal/game/table"

	"github.com/redis/go-redis/v9"
)

type redisRepo struct {
	rdb *redis.Client
}

func NewRedisRepo(rdb *redis.Client) Repo {
	return &redisRepo{rdb: rdb}
}

// key 约定：
//
//	kv  : lb:run:{runID}   -> JSON([]Standing)，保持座位顺序
//	zset: lb:rank:{runID}  -> member nickname, score -bankroll
//
// zset 存负资金：ZRANGE 升序即资金降序，同分时 Redis 按成员字节序升序，正好是昵称升序
func runKey(runID string) string {
	return fmt.Sprintf("lb:run:%s", runID)
}
func rankKey(runID string) string {
	return fmt.Sprintf("lb:rank:%s", runID)
}

func (r *redisRepo) Save(ctx context.Context, runID string, standings []table.Standing, ttlSeconds int) error {
	data, err := json.Marshal(standings)
	if err != nil {
		return err
	}
	ttl := time.Duration(0)
	if ttlSeconds > 0 {
		ttl = time.Duration(ttlSeconds) * time.Second
	}

	members := make([]redis.Z, 0, len(standings))
	for _, s := range standings {
		members = append(members, redis.Z{Score: -float64(s.Bankroll), Member: s.Nickname})
	}

	p := r.rdb.TxPipeline()
	p.Set(ctx, runKey(runID), data, ttl)
	p.Del(ctx, rankKey(runID))
	if len(members) > 0 {
		p.ZAdd(ctx, rankKey(runID), members...)
		if ttl > 0 {
			p.Expire(ctx, rankKey(runID), ttl)
		}
	}
	_, err = p.Exec(ctx)
	return err
}

func (r *redisRepo) Get(ctx context.Context, runID string) ([]table.Standing, error) {
	data, err := r.rdb.Get(ctx, runKey(runID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var out []table.Standing
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode standings %s: %w", runID, err)
	}
	return out, nil
}

func (r *redisRepo) Top(ctx context.Context, runID string, n int) ([]table.Standing, error) {
	all, err := r.Get(ctx, runID)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]table.Standing, len(all))
	for _, s := range all {
		byName[s.Nickname] = s
	}

	stop := int64(-1)
	if n > 0 {
		stop = int64(n - 1)
	}
	names, err := r.rdb.ZRange(ctx, rankKey(runID), 0, stop).Result()
	if err != nil {
		return nil, err
	}
	out := make([]table.Standing, 0, len(names))
	for _, name := range names {
		if s, ok := byName[name]; ok {
			out = append(out, s)
		}
	}
	return out, nil
}
