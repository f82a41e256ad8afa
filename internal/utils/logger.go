package utils

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	log1 "github.com/charmbracelet/log"
)

// Log 全局 logger，Init 之前是默认 info 级别
var Log = log1.NewWithOptions(os.Stderr, log1.Options{
	ReportTimestamp: true,
	TimeFormat:      time.DateTime,
})

// Init 按级别初始化全局 logger（debug/info/warn/error）
func Init(level string) error {
	l, err := New(os.Stderr, level)
	if err != nil {
		return err
	}
	Log = l
	return nil
}

// New 创建带样式的 logger，测试里可以传 io.Discard 或 buffer
func New(w io.Writer, level string) (*log1.Logger, error) {
	lvl := log1.InfoLevel
	if level != "" {
		var err error
		lvl, err = log1.ParseLevel(level)
		if err != nil {
			return nil, err
		}
	}

	l := log1.NewWithOptions(w, log1.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           lvl,
	})
	l.SetStyles(styles())
	return l, nil
}

func styles() *log1.Styles {
	s := log1.DefaultStyles()
	s.Levels[log1.DebugLevel] = lipgloss.NewStyle().
		SetString("DEBUG🔍").
		Padding(0, 1, 0, 1).
		Foreground(lipgloss.Color("#6C6C6C")).Bold(true)

	s.Levels[log1.InfoLevel] = lipgloss.NewStyle().
		SetString("INFO🌟").
		Padding(0, 1, 0, 1).
		Background(lipgloss.Color("#90EE9080")).
		Foreground(lipgloss.Color("#006400FF")).Bold(true)

	s.Levels[log1.WarnLevel] = lipgloss.NewStyle().
		SetString("WARN⚠️").
		Padding(0, 1, 0, 1).
		Background(lipgloss.Color("#FFD700FF")).
		Foreground(lipgloss.Color("#000000FF")).Bold(true)

	s.Levels[log1.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERROR🔥").
		Padding(0, 1, 0, 1).
		Background(lipgloss.Color("#FF0000FF")).
		Foreground(lipgloss.Color("#00FFFF00")).Bold(true)

	s.Levels[log1.FatalLevel] = lipgloss.NewStyle().
		SetString("FATAL⚡️").
		Padding(0, 1, 0, 1).
		Background(lipgloss.Color("#000000FF")).
		Foreground(lipgloss.Color("#00FFFF00")).Bold(true)
	return s
}
