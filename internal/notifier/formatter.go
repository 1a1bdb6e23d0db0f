package notifier

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"TickerSentinel/internal/marketclock"
	"TickerSentinel/internal/model"
	"TickerSentinel/internal/projection"
)

func directionLabel(d model.Direction) string {
	if d == model.DirectionDrop {
		return "下跌"
	}
	return "上涨"
}

func provenanceLabel(q *model.Quote) string {
	if q.IsLiveData {
		return "实时数据"
	}
	if q.IsKnownTicker {
		return "演示数据"
	}
	return "模拟数据"
}

// FormatQuote formats the active quote into a Telegram report.
func FormatQuote(q *model.Quote, stats model.HistoryStats, info marketclock.PhaseInfo) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 <b>%s</b> | %s\n", q.Ticker, q.Name))
	b.WriteString(fmt.Sprintf("行业: %s | %s\n\n", q.Sector, provenanceLabel(q)))

	b.WriteString(fmt.Sprintf("当前价格: %.2f (%+.2f, %+.2f%%)\n", q.CurrentPrice, q.DailyChange, q.DailyChangePercent))
	b.WriteString(fmt.Sprintf("日内区间: %.2f ~ %.2f\n", q.DayRangeLow, q.DayRangeHigh))
	b.WriteString(fmt.Sprintf("52周区间: %.2f ~ %.2f (位置 %.0f%%)\n", q.WeekLow52, q.WeekHigh52, stats.Position52w*100))
	b.WriteString(fmt.Sprintf("成交量: %s\n", humanize.Comma(int64(q.Volume))))
	if q.MarketCap > 0 {
		b.WriteString(fmt.Sprintf("市值: $%s\n", humanize.Comma(int64(q.MarketCap))))
	}
	if q.PERatio > 0 {
		b.WriteString(fmt.Sprintf("市盈率: %.1f\n", q.PERatio))
	}
	if q.TargetPrice > 0 {
		b.WriteString(fmt.Sprintf("目标价: %.2f\n", q.TargetPrice))
	}
	if !q.EarningsDate.IsZero() {
		b.WriteString(fmt.Sprintf("财报日期: %s (%d天后)\n", q.EarningsDate.Format("2006-01-02"), q.DaysToEarnings))
	}

	b.WriteString(fmt.Sprintf("\n30日区间: %.2f ~ %.2f | 均价: %.2f\n", stats.Low30d, stats.High30d, stats.SMA))
	b.WriteString(fmt.Sprintf("市场状态: %s (下一节点: %s)", info.Label, info.NextBoundary))

	return b.String()
}

// FormatAlertFired builds the (title, body) pair for a fired alert rule.
func FormatAlertFired(rule *model.AlertRule, price float64) (title, body string) {
	title = fmt.Sprintf("🔔 %s 价格预警触发", rule.Symbol)
	body = fmt.Sprintf("%s 已%s %.1f%%\n基准价: %.2f → 目标价: %.2f\n当前价格: <b>%.2f</b>",
		rule.Symbol, directionLabel(rule.Direction), rule.Percentage,
		rule.BasePrice, rule.TargetPrice, price)
	return title, body
}

// FormatRuleCreated confirms a newly registered alert rule.
func FormatRuleCreated(rule *model.AlertRule) string {
	return fmt.Sprintf("✅ 预警已设置 [%s]\n%s %s %.1f%% 至 %.2f 时提醒 (基准 %.2f)",
		shortID(rule.ID), rule.Symbol, directionLabel(rule.Direction),
		rule.Percentage, rule.TargetPrice, rule.BasePrice)
}

// FormatAlertList lists all rules, marking the dormant ones.
func FormatAlertList(rules []*model.AlertRule, activeSymbol string) string {
	if len(rules) == 0 {
		return "暂无预警规则"
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("🔔 <b>预警规则</b> (%d条)\n\n", len(rules)))
	for _, r := range rules {
		state := ""
		if r.Symbol != activeSymbol {
			state = " (休眠)"
		}
		b.WriteString(fmt.Sprintf("[%s] %s %s %.1f%% → %.2f%s\n",
			shortID(r.ID), r.Symbol, directionLabel(r.Direction), r.Percentage, r.TargetPrice, state))
	}
	return b.String()
}

// FormatProjection formats a projection result.
func FormatProjection(symbol string, currentPrice, percentage float64, direction model.Direction, res projection.Result) string {
	return fmt.Sprintf("🎯 <b>%s 价格推演</b>\n\n当前价格: %.2f\n%s %.1f%% → <b>%.2f</b> (%+.2f)",
		symbol, currentPrice, directionLabel(direction), percentage, res.ProjectedPrice, res.Delta)
}

// FormatDailySummary formats the market-close report body; the notifier
// supplies the title.
func FormatDailySummary(q *model.Quote, stats model.HistoryStats, info marketclock.PhaseInfo, alertCount int) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s | %s\n", q.Ticker, time.Now().Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("收盘价格: %.2f (%+.2f%%)\n", q.CurrentPrice, q.DailyChangePercent))
	b.WriteString(fmt.Sprintf("日内区间: %.2f ~ %.2f\n", q.DayRangeLow, q.DayRangeHigh))
	b.WriteString(fmt.Sprintf("52周位置: %.0f%% | 30日均价: %.2f\n", stats.Position52w*100, stats.SMA))
	b.WriteString(fmt.Sprintf("成交量: %s | %s\n", humanize.Comma(int64(q.Volume)), provenanceLabel(q)))
	b.WriteString(fmt.Sprintf("在市预警: %d条\n", alertCount))
	b.WriteString(fmt.Sprintf("\n市场状态: %s", info.Label))
	return b.String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
