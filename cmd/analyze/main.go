// Command analyze scans historical Saturday draws for the configured ticket
// number, computes financial statistics, and writes a timestamped report.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"
	"unicode/utf8"

	"lottery-tracker/internal/config"
	"lottery-tracker/internal/domain"
	"lottery-tracker/internal/notify"
	"lottery-tracker/internal/notify/discord"
	"lottery-tracker/internal/reporting"
	"lottery-tracker/internal/scan"
	"lottery-tracker/internal/source"
	"lottery-tracker/internal/source/mundodeportivo"
	"lottery-tracker/internal/storage"
	pgstore "lottery-tracker/internal/storage/postgres"
)

// discordContentLimit is Discord's maximum message content length.
const discordContentLimit = 2000

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	number := flag.String("number", cfg.TicketNumber, "Ticket number to analyze")
	startStr := flag.String("start", cfg.StartDate, "Range start YYYY-MM-DD (default: earliest available data)")
	endStr := flag.String("end", cfg.EndDate, "Range end YYYY-MM-DD (default: today)")
	outputDir := flag.String("output-dir", cfg.OutputDir, "Output directory for report files")
	postgresDSN := flag.String("postgres-dsn", cfg.PostgresDSN, "Optional PostgreSQL DSN for archiving")
	webhookURL := flag.String("webhook-url", cfg.WebhookURL, "Optional Discord webhook for the digest")
	useFixtures := flag.Bool("use-fixtures", false, "Use in-memory demo data instead of the results site")
	flag.Parse()

	cfg.TicketNumber = *number
	cfg.StartDate = *startStr
	cfg.EndDate = *endStr
	cfg.OutputDir = *outputDir
	cfg.PostgresDSN = *postgresDSN
	cfg.WebhookURL = *webhookURL
	if err := cfg.ValidateAnalyze(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		flag.Usage()
		os.Exit(1)
	}

	ctx := context.Background()

	var src source.ResultSource
	delay := cfg.RequestDelay()
	if *useFixtures {
		src = fixtureSource(cfg.TicketNumber)
		delay = -1
		cfg.StartDate, cfg.EndDate = fixturePeriodStart, fixturePeriodEnd
	} else {
		src = mundodeportivo.NewClient()
	}

	runner := scan.NewRunner(scan.RunnerOptions{
		Source:               src,
		Stake:                cfg.Stake,
		Delay:                delay,
		MaxConsecutiveNoData: cfg.MaxConsecutiveNoData,
	})

	scanned, err := runScan(ctx, runner, cfg)
	if err != nil {
		log.Fatalf("scan draws: %v", err)
	}
	log.Printf("análisis de %d semanas, %d omitidas", len(scanned.Results), scanned.SkippedWeeks())

	analysis, err := reporting.Build(cfg.TicketNumber, scanned, time.Now().UTC())
	if err != nil {
		log.Fatalf("compute statistics: %v", err)
	}

	digest := reporting.RenderMarkdown(analysis)
	fmt.Println(digest)

	paths, err := reporting.NewGenerator(cfg.OutputDir).Write(analysis)
	if err != nil {
		log.Fatalf("write report: %v", err)
	}
	for _, p := range paths {
		log.Printf("informe guardado en %s", p)
	}

	if cfg.PostgresDSN != "" {
		if err := archive(ctx, cfg, analysis, scanned); err != nil {
			log.Fatalf("archive analysis: %v", err)
		}
	}

	if cfg.WebhookURL != "" {
		sink := discord.NewWebhook(cfg.WebhookURL)
		msg := notify.Message{Content: truncate(digest, discordContentLimit)}
		if err := sink.Send(ctx, msg); err != nil {
			log.Fatalf("send digest: %v", err)
		}
		log.Printf("resumen enviado al webhook")
	}
}

// runScan resolves the date range and runs the scan. With no dates at all
// the scan walks backward through every published draw; a missing start is
// probed from the source, falling back to the last 180 days.
func runScan(ctx context.Context, runner *scan.Runner, cfg *config.Config) (scan.Result, error) {
	if cfg.StartDate == "" && cfg.EndDate == "" {
		log.Printf("sin fechas: buscando todos los datos disponibles")
		return runner.RunAll(ctx, cfg.TicketNumber)
	}

	now := time.Now()
	start, end := time.Time{}, now

	if cfg.EndDate != "" {
		var err error
		end, err = time.ParseInLocation("2006-01-02", cfg.EndDate, time.UTC)
		if err != nil {
			return scan.Result{}, fmt.Errorf("invalid end date: %w", err)
		}
	}

	if cfg.StartDate != "" {
		var err error
		start, err = time.ParseInLocation("2006-01-02", cfg.StartDate, time.UTC)
		if err != nil {
			return scan.Result{}, fmt.Errorf("invalid start date: %w", err)
		}
	} else {
		log.Printf("buscando la fecha más antigua con datos disponibles")
		earliest, found, err := runner.EarliestAvailable(ctx, cfg.TicketNumber, scan.DefaultLookbackDays)
		if err != nil {
			return scan.Result{}, err
		}
		if found {
			start = earliest
		} else {
			start = now.AddDate(0, 0, -180)
			log.Printf("sin datos antiguos, usando inicio por defecto %s", start.Format("2006-01-02"))
		}
	}

	return runner.Run(ctx, cfg.TicketNumber, start, end)
}

// archive stores the scanned results and the analysis document.
// Already-archived weeks are expected on re-runs over overlapping ranges.
func archive(ctx context.Context, cfg *config.Config, analysis *domain.Analysis, scanned scan.Result) error {
	pool, err := pgstore.NewPool(ctx, cfg.PostgresDSN)
	if err != nil {
		return err
	}
	defer pool.Close()

	drawStore := pgstore.NewDrawResultStore(pool)
	for _, r := range scanned.Results {
		err := drawStore.Insert(ctx, cfg.TicketNumber, r)
		if errors.Is(err, storage.ErrDuplicateKey) {
			continue
		}
		if err != nil {
			return err
		}
	}

	if err := pgstore.NewAnalysisStore(pool).Insert(ctx, analysis); err != nil {
		return err
	}
	log.Printf("análisis archivado en postgres")
	return nil
}

// truncate cuts s to at most limit bytes without splitting a rune.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
