package telegram

import (
	"fmt"
	"strings"
	"time"

	"golang-stock-insight/internal/insight/dto"
	"golang-stock-insight/pkg/utils"
)

// FormatAnalysis formats an analysis result into a Markdown string for Telegram.
func FormatAnalysis(analysis *dto.AnalysisResponse) string {
	var sb strings.Builder

	var emoji string
	switch analysis.Label {
	case "STRONG_BUY", "BUY":
		emoji = "🟢"
	case "STRONG_SELL", "SELL":
		emoji = "🔴"
	default:
		emoji = "🟡"
	}

	name := analysis.CompanyName
	if name == "" {
		name = analysis.Symbol
	}

	sb.WriteString(fmt.Sprintf("📊 **Analysis for %s (%s)**\n", name, analysis.Symbol))
	sb.WriteString(fmt.Sprintf("%s Signal: **%s** (score %d/100)\n", emoji, analysis.Label, analysis.Score))
	sb.WriteString(fmt.Sprintf("💰 Close: $%.2f | %s / %s\n\n", analysis.Close, analysis.Interval, analysis.Range))

	if len(analysis.Explanations) > 0 {
		sb.WriteString("📌 **Signals:**\n")
		for _, explanation := range analysis.Explanations {
			sb.WriteString(fmt.Sprintf("• %s\n", explanation))
		}
		sb.WriteString("\n")
	}

	if analysis.Commentary != "" {
		sb.WriteString(fmt.Sprintf("🧠 **Commentary:**\n_%s_\n\n", analysis.Commentary))
	}

	sb.WriteString(fmt.Sprintf("📅 _As of: %s_\n", analysis.AsOf.Format("2006-01-02 15:04:05")))

	return sb.String()
}

// FormatErrorAlertMessage formats an operational error alert.
func FormatErrorAlertMessage(t time.Time, errMsg string) string {
	return fmt.Sprintf(`📛 [ERROR ALERT]
%s
⚠️ %s
`, utils.PrettyDate(t), errMsg)
}
