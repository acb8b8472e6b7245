// Command check looks up the current Saturday draw for the configured
// ticket number and posts the outcome to the Discord webhook.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"lottery-tracker/internal/config"
	"lottery-tracker/internal/dates"
	"lottery-tracker/internal/domain"
	"lottery-tracker/internal/normalize"
	"lottery-tracker/internal/notify"
	"lottery-tracker/internal/notify/discord"
	"lottery-tracker/internal/source"
	"lottery-tracker/internal/source/mundodeportivo"
	"lottery-tracker/internal/storage"
	pgstore "lottery-tracker/internal/storage/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	number := flag.String("number", cfg.TicketNumber, "Ticket number to check")
	webhookURL := flag.String("webhook-url", cfg.WebhookURL, "Discord webhook URL")
	dateStr := flag.String("date", "", "Draw date YYYY-MM-DD (default: this week's Saturday)")
	postgresDSN := flag.String("postgres-dsn", cfg.PostgresDSN, "Optional PostgreSQL DSN for archiving the result")
	flag.Parse()

	cfg.TicketNumber = *number
	cfg.WebhookURL = *webhookURL
	cfg.PostgresDSN = *postgresDSN
	if err := cfg.ValidateCheck(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		flag.Usage()
		os.Exit(1)
	}

	now := time.Now()
	drawDate := dates.NextSaturday(now)
	if *dateStr != "" {
		drawDate, err = time.ParseInLocation("2006-01-02", *dateStr, time.UTC)
		if err != nil {
			log.Fatalf("invalid -date: %v", err)
		}
	}

	ctx := context.Background()
	client := mundodeportivo.NewClient()
	sink := discord.NewWebhook(cfg.WebhookURL)

	log.Printf("comprobando número %s para el sorteo del %s", cfg.TicketNumber, drawDate.Format("2006-01-02"))

	msg, result := checkDraw(ctx, client, cfg, drawDate, now)

	if err := sink.Send(ctx, msg); err != nil {
		log.Fatalf("send notification: %v", err)
	}
	log.Printf("notificación enviada")

	if result != nil && cfg.PostgresDSN != "" {
		if err := archive(ctx, cfg, *result); err != nil {
			log.Fatalf("archive result: %v", err)
		}
	}
}

// checkDraw fetches and normalizes one draw, returning the notification to
// send and the normalized result when the check succeeded.
func checkDraw(ctx context.Context, src source.ResultSource, cfg *config.Config, drawDate, now time.Time) (notify.Message, *domain.DrawResult) {
	raw, err := src.Fetch(ctx, cfg.TicketNumber, drawDate)
	if err != nil {
		reason := "el sorteo aún no está publicado"
		if !errors.Is(err, source.ErrNoData) {
			reason = err.Error()
		}
		log.Printf("comprobación fallida: %v", err)
		return notify.CheckFailed(cfg.TicketNumber, drawDate, reason, now), nil
	}

	result, err := normalize.Normalize(raw, cfg.Stake)
	if err != nil {
		log.Printf("comprobación fallida: %v", err)
		return notify.CheckFailed(cfg.TicketNumber, drawDate, err.Error(), now), nil
	}

	if result.Hit {
		log.Printf("premio: %.2f € (%s)", result.Prize, result.Note)
	} else {
		log.Printf("sin premio")
	}
	return notify.WeeklyResult(raw, result, now), &result
}

// archive stores the normalized result; a week already archived is not an
// error on re-runs.
func archive(ctx context.Context, cfg *config.Config, result domain.DrawResult) error {
	pool, err := pgstore.NewPool(ctx, cfg.PostgresDSN)
	if err != nil {
		return err
	}
	defer pool.Close()

	err = pgstore.NewDrawResultStore(pool).Insert(ctx, cfg.TicketNumber, result)
	if errors.Is(err, storage.ErrDuplicateKey) {
		log.Printf("resultado ya archivado para %s", result.Date.Format("2006-01-02"))
		return nil
	}
	return err
}
