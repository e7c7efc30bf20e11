package services

import (
	"fmt"

	"github.com/dmitrijs2005/xpboard/internal/client/models"
)

// CumulativeXP turns time-ordered transactions into a running total.
func CumulativeXP(txs []models.Transaction) []models.XPPoint {
	points := make([]models.XPPoint, 0, len(txs))
	var total int64
	for _, tx := range txs {
		total += tx.Amount
		points = append(points, models.XPPoint{At: tx.CreatedAt, Total: total})
	}
	return points
}

func TotalXP(txs []models.Transaction) int64 {
	var total int64
	for _, tx := range txs {
		total += tx.Amount
	}
	return total
}

// BestPerProject keeps one transaction per project name, the one with the
// largest amount. Order follows first appearance.
func BestPerProject(txs []models.Transaction) []models.Transaction {
	idx := make(map[string]int, len(txs))
	out := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		name := tx.Object.Name
		i, seen := idx[name]
		if !seen {
			idx[name] = len(out)
			out = append(out, tx)
			continue
		}
		if tx.Amount > out[i].Amount {
			out[i] = tx
		}
	}
	return out
}

// BestGradePerProject keeps one grade per project name: the largest amount,
// and among equal amounts the most recent. Order follows first appearance.
func BestGradePerProject(grades []models.Grade) []models.Grade {
	idx := make(map[string]int, len(grades))
	out := make([]models.Grade, 0, len(grades))
	for _, g := range grades {
		name := g.Object.Name
		i, seen := idx[name]
		if !seen {
			idx[name] = len(out)
			out = append(out, g)
			continue
		}
		cur := out[i]
		if g.Amount > cur.Amount || (g.Amount == cur.Amount && !g.CreatedAt.Before(cur.CreatedAt)) {
			out[i] = g
		}
	}
	return out
}

// FormatByteMagnitude renders an XP amount with decimal units
// (1 kB = 1000 B). Thresholds are inclusive.
func FormatByteMagnitude(n int64) string {
	abs := n
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs >= 1_000_000:
		return fmt.Sprintf("%.2f MB", float64(n)/1_000_000)
	case abs >= 1_000:
		return fmt.Sprintf("%.2f kB", float64(n)/1_000)
	default:
		return fmt.Sprintf("%d B", n)
	}
}
