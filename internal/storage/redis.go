package storage

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Rdb 全局客户端，InitRedis 成功后可用；未配置 Redis 时为 nil
var Rdb *redis.Client

// InitRedis 连接 Redis 并 ping 一次；addr 为空时不初始化，Rdb 保持 nil，调用方改用内存存储
func InitRedis(ctx context.Context, addr, password string, db int) error {
	if addr == "" {
		return nil
	}
	Rdb = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := Rdb.Ping(ctx).Err(); err != nil {
		_ = Rdb.Close()
		Rdb = nil
		return err
	}
	return nil
}

func CloseRedis() error {
	if Rdb == nil {
		return nil
	}
	err := Rdb.Close()
	Rdb = nil
	return err
}
