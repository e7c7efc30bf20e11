package cli

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/dmitrijs2005/xpboard/internal/client/models"
	"github.com/dmitrijs2005/xpboard/internal/client/services"
)

const barWidth = 30

// bar draws v as a share of peak on a fixed-width track.
func bar(v, peak float64) string {
	n := 0
	if peak > 0 && v > 0 {
		n = int(math.Round(v / peak * barWidth))
		if n > barWidth {
			n = barWidth
		}
	}
	return strings.Repeat("#", n) + strings.Repeat(".", barWidth-n)
}

func renderProfile(w io.Writer, p *models.Profile) {
	u := p.User
	fmt.Fprintf(w, "\n%s (#%d)\n", u.Login, u.ID)
	if u.Email != "" {
		fmt.Fprintf(w, "  email:    %s\n", u.Email)
	}
	if !u.CreatedAt.IsZero() {
		fmt.Fprintf(w, "  joined:   %s\n", u.CreatedAt.Format("2006-01-02"))
	}
	fmt.Fprintf(w, "  total XP: %s\n", services.FormatByteMagnitude(services.TotalXP(p.XP)))
	fmt.Fprintf(w, "  audit:    %s\n", p.Audit.Display())

	renderXP(w, p.XP)
	renderAudit(w, p.Audit)
	renderGrades(w, p.Grades)
}

// renderXP prints the cumulative XP curve, one row per transaction.
func renderXP(w io.Writer, txs []models.Transaction) {
	fmt.Fprintln(w, "\nCumulative XP")
	points := services.CumulativeXP(txs)
	if len(points) == 0 {
		fmt.Fprintln(w, "  no XP yet")
		return
	}

	peak := float64(points[len(points)-1].Total)
	for _, p := range points {
		if float64(p.Total) > peak {
			peak = float64(p.Total)
		}
	}
	for i, p := range points {
		fmt.Fprintf(w, "  %s %s %10s  %s\n",
			p.At.Format("2006-01-02"),
			bar(float64(p.Total), peak),
			services.FormatByteMagnitude(p.Total),
			txs[i].Object.Name,
		)
	}
}

func renderAudit(w io.Writer, a models.AuditAggregate) {
	fmt.Fprintf(w, "\nAudit ratio %s\n", a.Display())

	format := func(v float64) string {
		if a.Summed {
			return services.FormatByteMagnitude(int64(math.Round(v)))
		}
		return fmt.Sprintf("%.0f", v)
	}
	peak := math.Max(a.Up, a.Down)
	fmt.Fprintf(w, "  done     %s %s\n", bar(a.Up, peak), format(a.Up))
	fmt.Fprintf(w, "  received %s %s\n", bar(a.Down, peak), format(a.Down))
}

// renderGrades prints the best attempt per project.
func renderGrades(w io.Writer, grades []models.Grade) {
	fmt.Fprintln(w, "\nProject grades")
	best := services.BestGradePerProject(grades)
	if len(best) == 0 {
		fmt.Fprintln(w, "  no graded projects")
		return
	}

	var peak float64
	for _, g := range best {
		peak = math.Max(peak, g.Grade)
	}
	for _, g := range best {
		mark := "fail"
		if g.Passed() {
			mark = "pass"
		}
		fmt.Fprintf(w, "  %-24s %s %5.2f %s\n", g.Object.Name, bar(g.Grade, peak), g.Grade, mark)
	}
}

// renderProjects prints XP earned per completed project, largest first.
func renderProjects(w io.Writer, txs []models.Transaction) {
	fmt.Fprintln(w, "\nXP per project")
	best := services.BestPerProject(txs)
	if len(best) == 0 {
		fmt.Fprintln(w, "  no completed projects")
		return
	}

	peak := float64(best[0].Amount)
	for _, tx := range best {
		fmt.Fprintf(w, "  %-24s %s %s\n", tx.Object.Name, bar(float64(tx.Amount), peak), services.FormatByteMagnitude(tx.Amount))
	}
}
