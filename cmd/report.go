package main

import (
	"fmt"
	"strconv"
	"strings"

	"CardTournament/internal/game/manager"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFD700"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	leaderStyle = cellStyle.Foreground(lipgloss.Color("#00C853")).Bold(true)
)

// renderReport 最终结果表，胜场最多的行高亮
func renderReport(res *manager.Result) string {
	leaders := make(map[string]bool)
	for _, s := range res.Report.Leaders() {
		leaders[s.Nickname] = true
	}

	rows := make([][]string, 0, len(res.Report.Standings))
	for _, s := range res.Report.Standings {
		rows = append(rows, []string{
			s.Nickname,
			strconv.Itoa(s.Wins),
			strconv.Itoa(s.Losses),
			strconv.FormatInt(s.Bankroll, 10),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("Nickname", "Wins", "Losses", "Bankroll").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if row >= 0 && row < len(rows) && leaders[rows[row][0]] {
				return leaderStyle
			}
			return cellStyle
		})

	var b strings.Builder
	b.WriteString(titleStyle.Render("===== Final Results ====="))
	b.WriteString("\n")
	fmt.Fprintf(&b, "id=%s rounds=%d seed=%d\n", res.Report.ID, res.Report.Rounds, res.Seed)
	b.WriteString(t.String())
	return b.String()
}
