package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"CardTournament/config"
	"CardTournament/internal/api"
	"CardTournament/internal/game/manager"
	"CardTournament/internal/leaderboard"
	"CardTournament/internal/storage"
	"CardTournament/internal/utils"

	"github.com/spf13/pflag"
)

func main() {
	fs := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	config.Flags(fs)
	_ = fs.Parse(os.Args[1:])
	path, _ := fs.GetString("config")

	cfg, err := config.Load(path, fs)
	if err != nil {
		utils.Log.Fatal("load config", "err", err)
	}
	if err := utils.Init(cfg.Log.Level); err != nil {
		utils.Log.Fatal("init logger", "err", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	//-------------------------------------------------------
	// 1. 战绩存储：配置了 Redis 就用 Redis，否则内存
	//-------------------------------------------------------
	repo := leaderboard.NewMemoryRepo()
	if err := storage.InitRedis(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB); err != nil {
		utils.Log.Fatal("redis init failed", "addr", cfg.Redis.Addr, "err", err)
	}
	if storage.Rdb != nil {
		defer storage.CloseRedis()
		repo = leaderboard.NewRedisRepo(storage.Rdb)
		utils.Log.Info("standings store: redis", "addr", cfg.Redis.Addr)
	}

	mgr := manager.NewGameManager(repo, utils.Log, cfg.Redis.TTL)

	//-------------------------------------------------------
	// 2. HTTP 模式
	//-------------------------------------------------------
	if cfg.Server.Serve {
		if err := serve(ctx, cfg.Server.Port, mgr); err != nil {
			utils.Log.Fatal("server", "err", err)
		}
		return
	}

	//-------------------------------------------------------
	// 3. 单次运行：跑完打印报告
	//-------------------------------------------------------
	res, err := mgr.Run(ctx, manager.Request{
		Players: cfg.Tournament.Players,
		Rounds:  cfg.Tournament.Rounds,
		Seed:    cfg.Tournament.Seed,
	})
	if res != nil {
		fmt.Println(renderReport(res))
	}
	if err != nil {
		utils.Log.Error("tournament failed", "err", err)
		os.Exit(1)
	}
}

func serve(ctx context.Context, addr string, mgr *manager.GameManager) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           api.NewRouter(mgr, utils.Log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		utils.Log.Info("server running", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		utils.Log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}
