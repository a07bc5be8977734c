package notifier

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"StreakScanner/internal/model"
)

// FormatAnalysisReport formats a per-symbol streak analysis into a Telegram message.
func FormatAnalysisReport(a *model.Analysis) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 <b>%s</b> | %s bars | %s\n\n",
		a.Symbol, a.Interval, time.Now().Format("2006-01-02")))

	b.WriteString(fmt.Sprintf("Live price: %.2f\n", a.LivePrice))
	b.WriteString(fmt.Sprintf("Last close: %.2f (prev %.2f, %+.2f%%)\n", a.LastClose, a.PrevClose, a.ChangePct))
	b.WriteString(fmt.Sprintf("Observations: %d\n", a.Observations))
	b.WriteString(fmt.Sprintf("Current streak: %d consecutive %s close(s)\n\n", a.Current.Length, a.Current.Direction))

	p := a.Projection
	b.WriteString("🎯 <b>Next close:</b>\n")
	b.WriteString(fmt.Sprintf("  Upside: %.1f%% | Downside: %.1f%%\n\n", p.NextUpside, p.NextDownside))

	b.WriteString("🔮 <b>Close after next:</b>\n")
	b.WriteString(fmt.Sprintf("  If next is UP:   %.1f%% up / %.1f%% down\n", p.AfterUpUpside, p.AfterUpDownside))
	b.WriteString(fmt.Sprintf("  If next is DOWN: %.1f%% up / %.1f%% down\n\n", p.AfterDownUpside, p.AfterDownDownside))

	b.WriteString("📈 <b>Historical runs:</b>\n")
	b.WriteString("  Up:   " + formatRunStats(a.UpStats) + "\n")
	b.WriteString("  Down: " + formatRunStats(a.DownStats) + "\n")

	return b.String()
}

func formatRunStats(s model.RunStats) string {
	if s.Count == 0 {
		return "no history"
	}
	return fmt.Sprintf("%d runs, longest %d, avg %.1f", s.Count, s.Longest, s.Average)
}

// FormatDistribution renders the run-length frequency tables (up to 10 rows
// per direction), mirroring the breakdown at the end of the analysis report.
func FormatDistribution(a *model.Analysis) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("📊 <b>%s streak distribution</b>\n\n", a.Symbol))
	b.WriteString("Up streaks:\n")
	b.WriteString(formatDistributionRows(a.UpStats))
	b.WriteString("\nDown streaks:\n")
	b.WriteString(formatDistributionRows(a.DownStats))
	return b.String()
}

func formatDistributionRows(s model.RunStats) string {
	if s.Count == 0 {
		return "  (no history)\n"
	}
	lengths := make([]int, 0, len(s.Distribution))
	for l := range s.Distribution {
		lengths = append(lengths, l)
	}
	sort.Ints(lengths)
	if len(lengths) > 10 {
		lengths = lengths[:10]
	}

	var b strings.Builder
	for _, l := range lengths {
		count := s.Distribution[l]
		pct := float64(count) / float64(s.Count) * 100
		b.WriteString(fmt.Sprintf("  %d bar(s): %d times (%.1f%%)\n", l, count, pct))
	}
	return b.String()
}

// FormatScanReport formats the ranked scan results for Telegram.
func FormatScanReport(results []model.ScanResult, scanned, failed int) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("🔍 <b>Streak scan</b> | %s\n", time.Now().Format("2006-01-02 15:04")))
	b.WriteString(fmt.Sprintf("Scanned %d symbols (%d failed)\n\n", scanned, failed))

	if len(results) == 0 {
		b.WriteString("No symbols passed the edge filter.")
		return b.String()
	}

	for _, r := range results {
		a := r.Analysis
		side := "⬆️"
		edgeSide := a.Projection.NextUpside
		if a.Projection.NextDownside > a.Projection.NextUpside {
			side = "⬇️"
			edgeSide = a.Projection.NextDownside
		}
		b.WriteString(fmt.Sprintf("%d. <b>%s</b> %s %.1f%% | streak %d %s | close %.2f\n",
			r.Rank, a.Symbol, side, edgeSide, a.Current.Length, a.Current.Direction, a.LastClose))
	}

	return b.String()
}
