package cli

import (
	"fmt"
	"strings"

	"github.com/fineprint-dev/fineprint/internal/model"
)

// RenderReport formats an analysis result for the terminal.
func RenderReport(result *model.AnalysisResult) string {
	var b strings.Builder

	if result.Metadata.Fallback {
		b.WriteString(FormatError("Analysis unavailable"))
		b.WriteString("\n")
		for _, flag := range result.RedFlags {
			b.WriteString(SubtleStyle.Render(flag.Explanation))
			b.WriteString("\n")
		}
		return b.String()
	}

	title := "Fine Print Report"
	if result.Metadata.URL != "" {
		title = fmt.Sprintf("Fine Print Report: %s", result.Metadata.URL)
	}
	b.WriteString(FormatTitle(title))
	b.WriteString("\n")

	level := LevelStyle(result.RiskLevel).Render(string(result.RiskLevel))
	b.WriteString(fmt.Sprintf("%s %s  %s\n",
		BoldStyle.Render(fmt.Sprintf("Risk score: %.0f/100", result.RiskScore)),
		scoreGauge(result.RiskScore),
		level))
	b.WriteString(SubtleStyle.Render(fmt.Sprintf("%d clauses analyzed · confidence %.0f%%",
		result.ClausesAnalyzed, result.Confidence*100)))
	b.WriteString("\n")

	if len(result.RedFlags) > 0 {
		b.WriteString("\n")
		b.WriteString(BoldStyle.Render("Red flags"))
		b.WriteString("\n")
		for i, flag := range result.RedFlags {
			marker := ""
			if flag.Irreversible {
				marker = SubtleStyle.Render(" (irreversible)")
			}
			b.WriteString(fmt.Sprintf("%d. %s %s%s\n", i+1, FlagIcon,
				LevelStyle(model.RiskLevelForScore(flag.Severity*100)).Render(flag.CategoryName), marker))
			b.WriteString("   " + flag.Explanation + "\n")
			b.WriteString("   " + SubtleStyle.Render(flag.Implication) + "\n")
		}
	} else {
		b.WriteString("\n")
		b.WriteString(FormatSuccess("No red flags found"))
		b.WriteString("\n")
	}

	if len(result.Categories) > 0 {
		b.WriteString("\n")
		b.WriteString(BoldStyle.Render("Category breakdown"))
		b.WriteString("\n")
		for _, cat := range result.Categories {
			b.WriteString(fmt.Sprintf("  %-28s %5.1f  (%d match", cat.Name, cat.Severity, cat.Matches))
			if cat.Matches != 1 {
				b.WriteString("es")
			}
			b.WriteString(")\n")
		}
	}

	if result.Benchmark != nil {
		b.WriteString("\n")
		b.WriteString(ChartIcon + " " + InfoStyle.Render(fmt.Sprintf("%s industry: %s",
			result.Benchmark.IndustryName, result.Benchmark.Comparison)))
		b.WriteString("\n")
	}

	return b.String()
}

// scoreGauge draws a ten-segment bar for a 0-100 score.
func scoreGauge(score float64) string {
	filled := int(score / 10)
	if filled > 10 {
		filled = 10
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
	return LevelStyle(model.RiskLevelForScore(score)).Render(bar)
}
