package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"TickerSentinel/internal/alert"
	"TickerSentinel/internal/config"
	"TickerSentinel/internal/marketclock"
	"TickerSentinel/internal/model"
	"TickerSentinel/internal/notifier"
	"TickerSentinel/internal/quote"
	"TickerSentinel/internal/recorder"
	"TickerSentinel/internal/scheduler"
	"TickerSentinel/internal/session"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] TickerSentinel starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init fetcher
	var fetcher quote.Fetcher
	if cfg.DataSource.BaseURL != "" {
		fetcher = quote.NewHTTPFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	} else {
		fetcher = quote.NewOfflineFetcher()
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Init notifier: Telegram when configured, console otherwise
	var ntf notifier.Interface
	var tn *notifier.TelegramNotifier
	if cfg.Telegram.BotToken != "" {
		tn = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
		ntf = tn
	} else {
		log.Println("[WARN] telegram not configured, notifications go to console")
		ntf = notifier.NewConsoleNotifier()
	}

	// Init quote engine
	gen := quote.NewGenerator()
	acq := quote.NewAcquirer(fetcher, gen, rec, time.Duration(cfg.Refresh.TimeoutSeconds)*time.Second)

	alerts, err := alert.NewStore(cfg.Alerts.StateFile)
	if err != nil {
		log.Fatalf("[FATAL] init alert store: %v", err)
	}

	sess := session.New(acq, quote.NewWalker(), alerts, cfg.Refresh.BaseIntervalSeconds)

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sess.SetAlertHandler(func(rule *model.AlertRule, price float64) {
		title, body := notifier.FormatAlertFired(rule, price)
		if err := ntf.Notify(ctx, title, body); err != nil {
			log.Printf("[ERROR] alert notification: %v", err)
		}
		if err := rec.RecordAlert(&recorder.AlertEvent{
			Symbol:      rule.Symbol,
			Direction:   string(rule.Direction),
			Percentage:  rule.Percentage,
			BasePrice:   rule.BasePrice,
			TargetPrice: rule.TargetPrice,
			FiredPrice:  price,
		}); err != nil {
			log.Printf("[WARN] record alert event: %v", err)
		}
	})

	// Init scheduler and daily close reporter
	sched := scheduler.NewScheduler(ctx, sess, acq, marketclock.NewClock(), ntf, rec)
	rep := scheduler.NewReporter(sched)
	if err := rep.Register(cfg.Schedule.DailyReportCron); err != nil {
		log.Fatalf("[FATAL] register daily report: %v", err)
	}
	rep.Start()
	defer rep.Stop()
	defer sched.Stop()

	// Start Telegram polling
	if tn != nil {
		go tn.StartPolling(ctx, sched.HandleCommand)
		log.Println("[INFO] Telegram polling started")
	}

	// Optional: start watching the configured symbol immediately
	if os.Getenv("WATCH_ON_START") == "true" {
		log.Printf("[INFO] WATCH_ON_START enabled, watching %s", cfg.DataSource.Symbol)
		if reply := sched.HandleCommand("/watch " + cfg.DataSource.Symbol); reply != "" {
			if err := ntf.Notify(ctx, "TickerSentinel", reply); err != nil {
				log.Printf("[WARN] startup notification: %v", err)
			}
		}
	}

	log.Println("[INFO] TickerSentinel is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] TickerSentinel stopped")
}
