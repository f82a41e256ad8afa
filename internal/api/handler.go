package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"CardTournament/internal/game/manager"
	"CardTournament/internal/game/table"
	"CardTournament/internal/leaderboard"

	"github.com/gin-gonic/gin"
)

// Tournaments handler 依赖的能力，由 manager.GameManager 实现
type Tournaments interface {
	Run(ctx context.Context, req manager.Request) (*manager.Result, error)
	Standings(ctx context.Context, id string) ([]table.Standing, error)
	Top(ctx context.Context, id string, n int) ([]table.Standing, error)
}

type Handler struct {
	svc Tournaments
}

func NewHandler(svc Tournaments) *Handler {
	return &Handler{svc: svc}
}

// RunResponse POST /tournaments 的返回
type RunResponse struct {
	ID        string           `json:"id"`
	Seed      int64            `json:"seed"`
	Rounds    int              `json:"rounds"`
	Standings []table.Standing `json:"standings"`
	Error     string           `json:"error,omitempty"`
}

// POST /tournaments  body: {players, rounds, seed?}
func (h *Handler) Run(c *gin.Context) {
	var req manager.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := h.svc.Run(c.Request.Context(), req)
	if errors.Is(err, manager.ErrInvalidRequest) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if res == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": errString(err)})
		return
	}

	resp := RunResponse{
		ID:        res.Report.ID,
		Seed:      res.Seed,
		Rounds:    res.Report.Rounds,
		Standings: res.Report.Standings,
	}
	if err != nil {
		// 中途失败：错误和已完成局的战绩一起返回
		resp.Error = err.Error()
		c.JSON(http.StatusUnprocessableEntity, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GET /tournaments/:id
func (h *Handler) Standings(c *gin.Context) {
	s, err := h.svc.Standings(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeLookupError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "standings": s})
}

// GET /tournaments/:id/top?n=3
func (h *Handler) Top(c *gin.Context) {
	n, err := strconv.Atoi(c.DefaultQuery("n", "3"))
	if err != nil || n < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "n must be a positive integer"})
		return
	}
	s, err := h.svc.Top(c.Request.Context(), c.Param("id"), n)
	if err != nil {
		writeLookupError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": c.Param("id"), "top": s})
}

func writeLookupError(c *gin.Context, err error) {
	if errors.Is(err, leaderboard.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

func errString(err error) string {
	if err == nil {
		return "unknown error"
	}
	return err.Error()
}
