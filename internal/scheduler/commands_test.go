package scheduler

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"TickerSentinel/internal/quote"
	"TickerSentinel/internal/session"
)

// staleLiveSession builds a session whose active quote is flagged live while
// the last recorded live acquisition is an hour old.
func staleLiveSession(t *testing.T) (*Scheduler, *session.Session, *captureNotifier) {
	t.Helper()
	old := time.Now().Add(-time.Hour).Format(time.RFC3339)
	meta := &kvMeta{m: map[string]string{
		quote.LastLiveKey: fmt.Sprintf("ZZZQ|%s", old),
	}}
	sched, sess, cn := newTestSchedulerWithMeta(t, meta)

	sess.Search(context.Background(), "ZZZQ")
	sess.ApplyRefreshPrice(sess.Generation(), 100)
	return sched, sess, cn
}

func TestHandlePrice_StaleLiveProvenanceDowngraded(t *testing.T) {
	sched, sess, _ := staleLiveSession(t)

	reply := sched.HandleCommand("/price")
	if strings.Contains(reply, "实时数据") {
		t.Fatalf("stale quote still framed as live data: %q", reply)
	}
	if sess.IsLive() {
		t.Error("display must downgrade the provenance flag")
	}
}

func TestDailyReport_StaleLiveProvenanceDowngraded(t *testing.T) {
	sched, _, cn := staleLiveSession(t)

	rep := NewReporter(sched)
	rep.dailyReport()
	if cn.body == "" {
		t.Fatal("expected a daily report to be sent")
	}
	if strings.Contains(cn.body, "实时数据") {
		t.Fatalf("daily report framed stale data as live: %q", cn.body)
	}
}

func TestHandleCommand_Help(t *testing.T) {
	sched, _ := newTestScheduler(t)
	for _, cmd := range []string{"", "/start", "hello"} {
		reply := sched.HandleCommand(cmd)
		if !strings.Contains(reply, "/watch") {
			t.Errorf("command %q: expected help text, got %q", cmd, reply)
		}
	}
}

func TestHandleCommand_WatchAndPrice(t *testing.T) {
	sched, sess := newTestScheduler(t)

	reply := sched.HandleCommand("/watch AAPL")
	if !strings.Contains(reply, "AAPL") {
		t.Fatalf("expected AAPL quote report, got %q", reply)
	}
	if sess.ActiveTicker() != "AAPL" {
		t.Errorf("watch did not activate AAPL, got %q", sess.ActiveTicker())
	}

	reply = sched.HandleCommand("/price")
	if !strings.Contains(reply, "AAPL") {
		t.Errorf("expected AAPL in price reply, got %q", reply)
	}
}

func TestHandleCommand_PriceWithoutQuote(t *testing.T) {
	sched, _ := newTestScheduler(t)
	if reply := sched.HandleCommand("/price"); !strings.Contains(reply, "⚠️") {
		t.Errorf("expected warning reply, got %q", reply)
	}
}

func TestHandleCommand_AlertLifecycle(t *testing.T) {
	sched, sess := newTestScheduler(t)
	sched.HandleCommand("/watch AAPL")

	if reply := sched.HandleCommand("/alert sideways 5"); !strings.Contains(reply, "rise") {
		t.Errorf("expected direction usage hint, got %q", reply)
	}
	if reply := sched.HandleCommand("/alert drop 200"); !strings.Contains(reply, "⚠️") {
		t.Errorf("expected validation warning, got %q", reply)
	}

	reply := sched.HandleCommand("/alert drop 10")
	if strings.Contains(reply, "⚠️") {
		t.Fatalf("alert creation failed: %q", reply)
	}
	rules := sess.Alerts()
	if len(rules) != 1 {
		t.Fatalf("expected one rule, got %d", len(rules))
	}

	if reply := sched.HandleCommand("/alerts"); !strings.Contains(reply, "AAPL") {
		t.Errorf("expected rule listing, got %q", reply)
	}

	reply = sched.HandleCommand("/unalert " + rules[0].ID[:8])
	if !strings.Contains(reply, "AAPL") {
		t.Errorf("expected removal confirmation, got %q", reply)
	}
	if len(sess.Alerts()) != 0 {
		t.Error("rule still present after /unalert")
	}

	if reply := sched.HandleCommand("/unalert deadbeef"); !strings.Contains(reply, "未找到") {
		t.Errorf("expected not-found reply, got %q", reply)
	}
}

func TestHandleCommand_Project(t *testing.T) {
	sched, sess := newTestScheduler(t)
	sched.HandleCommand("/watch AAPL")
	sess.ApplyRefreshPrice(sess.Generation(), 100)

	reply := sched.HandleCommand("/project 10 rise")
	if !strings.Contains(reply, "110.00") {
		t.Errorf("expected projected price 110.00, got %q", reply)
	}

	if reply := sched.HandleCommand("/project abc rise"); !strings.Contains(reply, "百分比") {
		t.Errorf("expected percentage format hint, got %q", reply)
	}
}

func TestHandleCommand_ProjectWithoutQuote(t *testing.T) {
	sched, _ := newTestScheduler(t)
	if reply := sched.HandleCommand("/project 10 rise"); !strings.Contains(reply, "⚠️") {
		t.Errorf("expected warning without active quote, got %q", reply)
	}
}

func TestHandleCommand_RefreshToggle(t *testing.T) {
	sched, _ := newTestScheduler(t)

	// No active ticker yet: refusal travels up as a warning.
	if reply := sched.HandleCommand("/refresh on"); !strings.Contains(reply, "⚠️") {
		t.Errorf("expected warning without active ticker, got %q", reply)
	}

	sched.HandleCommand("/watch AAPL")
	if reply := sched.HandleCommand("/refresh on"); !strings.Contains(reply, "开启") {
		t.Errorf("expected enabled confirmation, got %q", reply)
	}
	if !sched.Running() {
		t.Fatal("scheduler should run after /refresh on")
	}
	if reply := sched.HandleCommand("/refresh off"); !strings.Contains(reply, "关闭") {
		t.Errorf("expected disabled confirmation, got %q", reply)
	}
	if sched.Running() {
		t.Fatal("scheduler should stop after /refresh off")
	}
}

func TestHandleCommand_Interval(t *testing.T) {
	sched, sess := newTestScheduler(t)
	sched.HandleCommand("/watch AAPL")

	if reply := sched.HandleCommand("/interval 45"); !strings.Contains(reply, "45") {
		t.Errorf("expected interval confirmation, got %q", reply)
	}
	if sess.BaseInterval() != 45 {
		t.Errorf("base interval not applied, got %d", sess.BaseInterval())
	}
	if reply := sched.HandleCommand("/interval abc"); !strings.Contains(reply, "整数") {
		t.Errorf("expected integer hint, got %q", reply)
	}
	if reply := sched.HandleCommand("/interval -5"); !strings.Contains(reply, "⚠️") {
		t.Errorf("expected validation warning, got %q", reply)
	}
}
