package scoring

import (
	"fmt"

	"golang-stock-insight/internal/indicator"
)

// Label is the discrete recommendation derived from the composite score.
type Label string

const (
	LabelStrongBuy  Label = "STRONG_BUY"
	LabelBuy        Label = "BUY"
	LabelHold       Label = "HOLD"
	LabelSell       Label = "SELL"
	LabelStrongSell Label = "STRONG_SELL"
)

// Composite score parameters. The weights are deliberate literal constants:
// this is a documented heuristic, not a fitted model.
const (
	baseScore = 50

	rsiOversold   = 30.0
	rsiOverbought = 70.0

	adjRSI       = 15
	adjMACD      = 15
	adjTrend     = 10
	adjBollinger = 5
)

// Result is the full output of one scoring pass.
type Result struct {
	Score        int      `json:"score"`
	Label        Label    `json:"label"`
	Explanations []string `json:"explanations"`
}

// Evaluate produces the composite 0-100 score, recommendation label and
// explanation strings for a single indicator row. Any indicator with a nil
// value contributes nothing and is skipped. Explanations follow a fixed
// order (RSI, MACD, trend, Bollinger) so output is deterministic.
func Evaluate(row indicator.Row, periods []int) Result {
	if len(periods) == 0 {
		periods = indicator.ShortTermPeriods
	}

	score := baseScore
	var explanations []string

	if row.RSI != nil {
		switch {
		case *row.RSI < rsiOversold:
			score += adjRSI
			explanations = append(explanations,
				fmt.Sprintf("RSI %.1f: oversold, potential entry zone", *row.RSI))
		case *row.RSI > rsiOverbought:
			score -= adjRSI
			explanations = append(explanations,
				fmt.Sprintf("RSI %.1f: overbought, potential exit zone", *row.RSI))
		}
	}

	if row.MACD != nil && row.MACDSignal != nil {
		if *row.MACD > *row.MACDSignal {
			score += adjMACD
			explanations = append(explanations,
				fmt.Sprintf("MACD %.3f above signal %.3f: positive momentum", *row.MACD, *row.MACDSignal))
		} else {
			score -= adjMACD
			explanations = append(explanations,
				fmt.Sprintf("MACD %.3f at or below signal %.3f: negative momentum", *row.MACD, *row.MACDSignal))
		}
	}

	// Trend is judged against the longest configured moving average.
	longest := periods[len(periods)-1]
	if sma, ok := row.SMA[longest]; ok && sma != nil {
		if row.Close > *sma {
			score += adjTrend
			explanations = append(explanations,
				fmt.Sprintf("Close %.2f above SMA%d %.2f: price above long-term trend", row.Close, longest, *sma))
		} else {
			score -= adjTrend
			explanations = append(explanations,
				fmt.Sprintf("Close %.2f at or below SMA%d %.2f: price below long-term trend", row.Close, longest, *sma))
		}
	}

	if row.BBLower != nil && row.BBUpper != nil {
		switch {
		case row.Close < *row.BBLower:
			score += adjBollinger
			explanations = append(explanations,
				fmt.Sprintf("Close %.2f below lower Bollinger band %.2f: statistically cheap", row.Close, *row.BBLower))
		case row.Close > *row.BBUpper:
			score -= adjBollinger
			explanations = append(explanations,
				fmt.Sprintf("Close %.2f above upper Bollinger band %.2f: statistically expensive", row.Close, *row.BBUpper))
		}
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	if len(explanations) == 0 {
		explanations = []string{"No strong signal: indicators are neutral or lack sufficient history"}
	}

	return Result{
		Score:        score,
		Label:        LabelForScore(score),
		Explanations: explanations,
	}
}

// LabelForScore maps a clamped score to its recommendation bucket. Boundary
// scores belong to the higher bucket: 80 is a strong buy, 60 a buy, 40 a
// sell, 20 a strong sell.
func LabelForScore(score int) Label {
	switch {
	case score >= 80:
		return LabelStrongBuy
	case score >= 60:
		return LabelBuy
	case score > 40:
		return LabelHold
	case score > 20:
		return LabelSell
	default:
		return LabelStrongSell
	}
}
