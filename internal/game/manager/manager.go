package manager

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"CardTournament/internal/game/dealer"
	"CardTournament/internal/game/engine"
	"CardTournament/internal/game/table"
	"CardTournament/internal/leaderboard"

	"github.com/charmbracelet/log"
	"github.com/sanity-io/litter"
)

// ErrInvalidRequest 请求本身不合法（座位表 / 局数）
var ErrInvalidRequest = errors.New("invalid tournament request")

// Request 一场锦标赛的输入
type Request struct {
	Players []string `json:"players" binding:"required"`
	Rounds  int      `json:"rounds" binding:"required"`
	Seed    int64    `json:"seed"` // 0 = 按时间取种子
}

// Result 一场锦标赛的输出，Err 非空时 Report 只包含已完成的局
type Result struct {
	Report   engine.Report `json:"report"`
	Seed     int64         `json:"seed"`
	Started  time.Time     `json:"started"`
	Finished time.Time     `json:"finished"`
}

// GameManager 管理所有锦标赛：逐场串行执行，写入战绩存储
type GameManager struct {
	mu         sync.Mutex
	results    map[string]*Result // runID → result
	repo       leaderboard.Repo
	log        *log.Logger
	ttlSeconds int
	observers  []engine.Observer
}

func NewGameManager(repo leaderboard.Repo, logger *log.Logger, ttlSeconds int) *GameManager {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &GameManager{
		results:    make(map[string]*Result),
		repo:       repo,
		log:        logger,
		ttlSeconds: ttlSeconds,
	}
}

// AddObserver 追加每局 trace 的订阅者
func (m *GameManager) AddObserver(o engine.Observer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.observers = append(m.observers, o)
}

// Run 校验请求、跑完所有局、保存最终战绩。
// 中途失败时返回已完成局的结果和错误，结果同样会保存。
func (m *GameManager) Run(ctx context.Context, req Request) (*Result, error) {
	if req.Rounds < 1 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, engine.ErrInvalidRoundCount)
	}
	tbl, err := table.NewTable(req.Players)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// 单写者：同一时间只跑一场，账本和存储不会交错写入
	m.mu.Lock()
	defer m.mu.Unlock()

	res := &Result{Seed: seed, Started: time.Now()}
	eng := engine.NewEngine(tbl, dealer.NewDealer(seed), m.observer())

	m.log.Info("tournament started", "id", tbl.ID, "players", len(tbl.Players), "rounds", req.Rounds, "seed", seed)
	report, runErr := eng.Run(req.Rounds)
	res.Report = report
	res.Finished = time.Now()
	m.results[tbl.ID] = res

	if runErr != nil {
		m.log.Error("tournament aborted", "id", tbl.ID, "played", report.Rounds, "err", runErr)
	} else {
		m.log.Info("tournament finished", "id", tbl.ID, "rounds", report.Rounds, "took", res.Finished.Sub(res.Started))
	}

	if m.repo != nil {
		if err := m.repo.Save(ctx, tbl.ID, report.Standings, m.ttlSeconds); err != nil {
			m.log.Error("save standings failed", "id", tbl.ID, "err", err)
			if runErr == nil {
				return res, fmt.Errorf("save standings: %w", err)
			}
		}
	}
	return res, runErr
}

// Result 查询本进程内跑过的锦标赛
func (m *GameManager) Result(id string) (*Result, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.results[id]
	return r, ok
}

// Standings 优先读存储（跨进程可见），存储没有时回退到内存结果
func (m *GameManager) Standings(ctx context.Context, id string) ([]table.Standing, error) {
	if m.repo != nil {
		s, err := m.repo.Get(ctx, id)
		if err == nil {
			return s, nil
		}
		if !errors.Is(err, leaderboard.ErrNotFound) {
			return nil, err
		}
	}
	if r, ok := m.Result(id); ok {
		return r.Report.Standings, nil
	}
	return nil, leaderboard.ErrNotFound
}

// Top 按资金排名的前 n 名；和 Standings 一样，存储里没有时回退到内存结果
func (m *GameManager) Top(ctx context.Context, id string, n int) ([]table.Standing, error) {
	if m.repo != nil {
		top, err := m.repo.Top(ctx, id, n)
		if err == nil {
			return top, nil
		}
		if !errors.Is(err, leaderboard.ErrNotFound) {
			return nil, err
		}
	}
	r, ok := m.Result(id)
	if !ok {
		return nil, leaderboard.ErrNotFound
	}
	out := make([]table.Standing, len(r.Report.Standings))
	copy(out, r.Report.Standings)
	leaderboard.SortByBankroll(out)
	if n > 0 && n < len(out) {
		out = out[:n]
	}
	return out, nil
}

// observer 调用方持有锁
func (m *GameManager) observer() engine.Observer {
	obs := make([]engine.Observer, len(m.observers))
	copy(obs, m.observers)
	return engine.ObserverFunc(func(tr engine.RoundTrace) {
		if m.log.GetLevel() <= log.DebugLevel {
			m.log.Debug("round settled", "round", tr.Round, "winners", tr.Winners, "trace", litter.Sdump(tr.Players))
		}
		for _, o := range obs {
			o.OnRound(tr)
		}
	})
}
