package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// DefaultPath 默认配置文件位置
const DefaultPath = "config/config.yaml"

type Config struct {
	Server struct {
		Port  string `mapstructure:"port"`
		Serve bool   `mapstructure:"serve"`
	} `mapstructure:"server"`
	Redis struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
		TTL      int    `mapstructure:"ttl"` // seconds, 0 = 不过期
	} `mapstructure:"redis"`
	Tournament struct {
		Players []string `mapstructure:"players"`
		Rounds  int      `mapstructure:"rounds"`
		Seed    int64    `mapstructure:"seed"` // 0 = 按时间取种子
	} `mapstructure:"tournament"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
}

var C Config

// flag 名 -> 配置 key
var flagKeys = map[string]string{
	"serve":     "server.serve",
	"port":      "server.port",
	"players":   "tournament.players",
	"rounds":    "tournament.rounds",
	"seed":      "tournament.seed",
	"log-level": "log.level",
	"redis":     "redis.addr",
}

// Flags 注册命令行参数，交给 Load 绑定
func Flags(fs *pflag.FlagSet) {
	fs.String("config", DefaultPath, "path to config file")
	fs.Bool("serve", false, "serve tournaments over HTTP instead of a one-shot run")
	fs.String("port", ":8080", "HTTP listen address")
	fs.StringSlice("players", nil, "comma separated nicknames")
	fs.Int("rounds", 100, "number of rounds")
	fs.Int64("seed", 0, "shuffle seed (0 = time based)")
	fs.String("log-level", "info", "debug, info, warn or error")
	fs.String("redis", "", "redis address for the standings store (empty = memory)")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.serve", false)
	// 每个 key 都要有默认值，否则 Unmarshal 看不到只在环境变量里出现的 key
	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", 24*60*60)
	v.SetDefault("tournament.players", []string{"player1", "player2", "player3", "player4"})
	v.SetDefault("tournament.rounds", 100)
	v.SetDefault("tournament.seed", 0)
	v.SetDefault("log.level", "info")
}

// Load 默认值 < 配置文件 < 环境变量 (TOURNEY_*) < 命令行参数。配置文件不存在时跳过。
func Load(path string, fs *pflag.FlagSet) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("TOURNEY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return Config{}, fmt.Errorf("read config %s: %w", path, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("stat config %s: %w", path, err)
		}
	}

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, err
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	C = cfg
	return cfg, nil
}
