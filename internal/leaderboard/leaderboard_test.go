package leaderboard

import (
	"context"
	"testing"
	"time"

	"CardTournament/internal/game/table"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sample = []table.Standing{
	{Nickname: "민수", Wins: 30, Losses: 70, Bankroll: 13000},
	{Nickname: "bob", Wins: 40, Losses: 60, Bankroll: 14000},
	{Nickname: "alice", Wins: 30, Losses: 70, Bankroll: 13000},
	{Nickname: "지영", Wins: 2, Losses: 98, Bankroll: 10200},
}

// 两种实现跑同一组用例
func exerciseRepo(t *testing.T, repo Repo) {
	ctx := context.Background()

	_, err := repo.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = repo.Top(ctx, "missing", 3)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, repo.Save(ctx, "run-1", sample, 60))

	got, err := repo.Get(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, sample, got, "Get keeps seat order")

	top, err := repo.Top(ctx, "run-1", 3)
	require.NoError(t, err)
	require.Len(t, top, 3)
	assert.Equal(t, "bob", top[0].Nickname)
	assert.Equal(t, "alice", top[1].Nickname, "ties ordered by nickname")
	assert.Equal(t, "민수", top[2].Nickname)

	all, err := repo.Top(ctx, "run-1", 0)
	require.NoError(t, err)
	assert.Len(t, all, len(sample))

	// 覆盖保存
	updated := []table.Standing{{Nickname: "solo", Wins: 1, Bankroll: 10100}}
	require.NoError(t, repo.Save(ctx, "run-1", updated, 60))
	top, err = repo.Top(ctx, "run-1", 5)
	require.NoError(t, err)
	assert.Equal(t, updated, top)
}

// ---------- 内存实现测试 ----------
func Test_MemoryRepo(t *testing.T) {
	exerciseRepo(t, NewMemoryRepo())
}

func Test_MemoryRepo_SaveCopies(t *testing.T) {
	repo := NewMemoryRepo()
	in := []table.Standing{{Nickname: "a", Bankroll: 1}}
	require.NoError(t, repo.Save(context.Background(), "r", in, 0))
	in[0].Bankroll = 999

	got, err := repo.Get(context.Background(), "r")
	require.NoError(t, err)
	assert.Equal(t, int64(1), got[0].Bankroll)
}

// ---------- Redis（miniredis）实现测试 ----------
func Test_RedisRepo(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	exerciseRepo(t, NewRedisRepo(rdb))

	assert.True(t, mr.Exists(runKey("run-1")))
	assert.True(t, mr.Exists(rankKey("run-1")))
}

func Test_RedisRepo_TTL(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	repo := NewRedisRepo(rdb)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "short", sample, 10))
	require.NoError(t, repo.Save(ctx, "forever", sample, 0))

	mr.FastForward(11 * time.Second)

	_, err = repo.Get(ctx, "short")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.False(t, mr.Exists(rankKey("short")))

	got, err := repo.Get(ctx, "forever")
	require.NoError(t, err)
	assert.Len(t, got, len(sample))
}

func Test_RedisRepo_Members(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	repo := NewRedisRepo(rdb)
	require.NoError(t, repo.Save(context.Background(), "z", sample, 60))

	score, err := mr.ZScore(rankKey("z"), "bob")
	require.NoError(t, err)
	assert.Equal(t, float64(-14000), score)
}

// ✅ 排名完全由 zset 决定
func Test_RedisRepo_TopFollowsSortedSet(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	repo := NewRedisRepo(rdb)
	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, "z", sample, 60))

	// 把资金最少的人挪到 zset 最前面
	_, err = mr.ZAdd(rankKey("z"), -1e9, "지영")
	require.NoError(t, err)

	top, err := repo.Top(ctx, "z", 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "지영", top[0].Nickname)
	assert.Equal(t, int64(10200), top[0].Bankroll, "standing itself comes from the stored JSON")
	assert.Equal(t, "bob", top[1].Nickname)
}
