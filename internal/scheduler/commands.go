package scheduler

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"TickerSentinel/internal/calculator"
	"TickerSentinel/internal/marketclock"
	"TickerSentinel/internal/model"
	"TickerSentinel/internal/notifier"
	"TickerSentinel/internal/projection"
	"TickerSentinel/internal/recorder"
)

const helpText = `可用命令:
• /watch 代码: 切换监控标的
• /price: 查看当前行情
• /alert rise|drop 百分比: 设置价格预警
• /alerts: 查看预警规则
• /unalert 编号: 删除预警
• /project 百分比 rise|drop: 价格推演
• /refresh on|off: 开关自动刷新
• /interval 秒数: 设置刷新基准间隔`

// HandleCommand processes a user command and returns a reply. These are the
// user-driven events of the engine: ticker submitted, alert created/removed,
// refresh toggled, interval changed, projection requested.
func (s *Scheduler) HandleCommand(command string) string {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return helpText
	}

	switch fields[0] {
	case "/watch":
		if len(fields) < 2 {
			return "用法: /watch AAPL"
		}
		return s.handleWatch(fields[1])

	case "/price":
		return s.handlePrice()

	case "/alert":
		if len(fields) < 3 {
			return "用法: /alert rise|drop 5"
		}
		return s.handleAlert(fields[1], fields[2])

	case "/alerts":
		return notifier.FormatAlertList(s.session.Alerts(), s.session.ActiveTicker())

	case "/unalert":
		if len(fields) < 2 {
			return "用法: /unalert 编号前缀"
		}
		return s.handleUnalert(fields[1])

	case "/project":
		if len(fields) < 3 {
			return "用法: /project 10 rise"
		}
		return s.handleProject(fields[1], fields[2])

	case "/refresh":
		if len(fields) < 2 {
			return "用法: /refresh on|off"
		}
		return s.handleRefresh(fields[1])

	case "/interval":
		if len(fields) < 2 {
			return "用法: /interval 60"
		}
		return s.handleInterval(fields[1])

	default:
		return helpText
	}
}

func (s *Scheduler) handleWatch(ticker string) string {
	q, err := s.session.Search(s.ctx, ticker)
	if err != nil {
		return fmt.Sprintf("⚠️ %v", err)
	}
	if q == nil {
		// Superseded by a newer search; that one will answer.
		return ""
	}
	if cur := s.session.DisplayQuote(); cur != nil && cur.Ticker == q.Ticker {
		q = cur
	}
	s.recordSnapshot(q)
	info := marketclock.Describe(s.clock.PhaseAt(time.Now()))
	return notifier.FormatQuote(q, calculator.QuoteStats(q), info)
}

func (s *Scheduler) handlePrice() string {
	q := s.session.DisplayQuote()
	if q == nil {
		return fmt.Sprintf("⚠️ %v", model.ErrNoActiveQuote)
	}
	info := marketclock.Describe(s.clock.PhaseAt(time.Now()))
	return notifier.FormatQuote(q, calculator.QuoteStats(q), info)
}

func (s *Scheduler) handleAlert(dirArg, pctArg string) string {
	direction, ok := model.ParseDirection(dirArg)
	if !ok {
		return "方向必须是 rise 或 drop"
	}
	pct, err := strconv.ParseFloat(pctArg, 64)
	if err != nil {
		return "百分比格式错误"
	}
	rule, err := s.session.CreateAlert(direction, pct)
	if err != nil {
		return fmt.Sprintf("⚠️ %v", err)
	}
	return notifier.FormatRuleCreated(rule)
}

func (s *Scheduler) handleUnalert(idPrefix string) string {
	rule, err := s.session.RemoveAlert(idPrefix)
	if err != nil {
		return fmt.Sprintf("⚠️ %v", err)
	}
	if rule == nil {
		return "未找到匹配的预警规则"
	}
	return fmt.Sprintf("🗑 已删除预警: %s %s %.1f%%", rule.Symbol, string(rule.Direction), rule.Percentage)
}

func (s *Scheduler) handleProject(pctArg, dirArg string) string {
	pct, err := strconv.ParseFloat(pctArg, 64)
	if err != nil {
		return "百分比格式错误"
	}
	direction, ok := model.ParseDirection(dirArg)
	if !ok {
		return "方向必须是 rise 或 drop"
	}
	// Capture the quote once so the reply shows the same price the
	// projection was computed from.
	q := s.session.ActiveQuote()
	if q == nil {
		return fmt.Sprintf("⚠️ %v", model.ErrNoActiveQuote)
	}
	res, err := projection.Project(q.CurrentPrice, pct, direction)
	if err != nil {
		return fmt.Sprintf("⚠️ %v", err)
	}
	return notifier.FormatProjection(q.Ticker, q.CurrentPrice, pct, direction, res)
}

func (s *Scheduler) handleRefresh(arg string) string {
	switch arg {
	case "on":
		if err := s.Start(); err != nil {
			return fmt.Sprintf("⚠️ %v", err)
		}
		return fmt.Sprintf("▶️ 自动刷新已开启 (基准间隔 %d秒)", s.session.BaseInterval())
	case "off":
		s.Stop()
		return "⏸ 自动刷新已关闭"
	default:
		return "用法: /refresh on|off"
	}
}

func (s *Scheduler) handleInterval(arg string) string {
	seconds, err := strconv.Atoi(arg)
	if err != nil {
		return "间隔必须是整数秒"
	}
	if err := s.SetBaseInterval(seconds); err != nil {
		return fmt.Sprintf("⚠️ %v", err)
	}
	phase := s.clock.PhaseAt(time.Now())
	return fmt.Sprintf("⏱ 基准间隔已设为 %d秒，当前生效间隔 %v", seconds, EffectiveInterval(phase, seconds))
}

func (s *Scheduler) recordSnapshot(q *model.Quote) {
	snap := &recorder.QuoteSnapshot{
		Symbol:             q.Ticker,
		Price:              q.CurrentPrice,
		DailyChange:        q.DailyChange,
		DailyChangePercent: q.DailyChangePercent,
		DayLow:             q.DayRangeLow,
		DayHigh:            q.DayRangeHigh,
		WeekLow52:          q.WeekLow52,
		WeekHigh52:         q.WeekHigh52,
		Volume:             q.Volume,
		Phase:              string(s.clock.PhaseAt(time.Now())),
		IsLive:             q.IsLiveData,
	}
	if err := s.recorder.RecordSnapshot(snap); err != nil {
		log.Printf("[ERROR] record snapshot: %v", err)
	}
}
