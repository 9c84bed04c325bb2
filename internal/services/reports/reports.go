package reports

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/UnknownOlympus/hestia/internal/lib/dates"
	"github.com/UnknownOlympus/hestia/internal/models"
	"github.com/UnknownOlympus/hestia/internal/repository"
)

const DefaultPeriodDays = 7

type Builder struct {
	log        *slog.Logger
	salesRepo  repository.SalesRepoIface
	rosterRepo repository.RosterRepoIface
	restaurant string
}

func NewBuilder(
	log *slog.Logger,
	salesRepo repository.SalesRepoIface,
	rosterRepo repository.RosterRepoIface,
	restaurant string,
) *Builder {
	return &Builder{log: log, salesRepo: salesRepo, rosterRepo: rosterRepo, restaurant: restaurant}
}

// Build summarises the trailing days ending on the date of now, both ends included.
func (b *Builder) Build(ctx context.Context, days int, now time.Time) (models.Report, error) {
	if days < 1 {
		days = DefaultPeriodDays
	}
	start, end := dates.Trailing(now, days)

	salesSummary, err := b.salesRepo.GetSalesSummary(ctx, start, end)
	if err != nil {
		return models.Report{}, fmt.Errorf("failed to build sales summary: %w", err)
	}

	rosterSummary, err := b.rosterRepo.GetRosterSummary(ctx, start, end)
	if err != nil {
		return models.Report{}, fmt.Errorf("failed to build roster summary: %w", err)
	}

	b.log.DebugContext(ctx, "Report built",
		slog.String("op", "Reports.Build"),
		slog.String("period_start", salesSummary.PeriodStart),
		slog.String("period_end", salesSummary.PeriodEnd),
	)

	return models.Report{
		GeneratedAt:   now,
		Restaurant:    b.restaurant,
		PeriodDays:    days,
		SalesSummary:  salesSummary,
		RosterSummary: rosterSummary,
	}, nil
}

// Write pretty-prints report as JSON to path, or to out when path is empty.
func Write(report models.Report, path string, out io.Writer) error {
	payload, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	payload = append(payload, '\n')

	if path == "" {
		if _, err = out.Write(payload); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		return nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create report directory '%s': %w", dir, err)
		}
	}
	if err = os.WriteFile(path, payload, 0o600); err != nil {
		return fmt.Errorf("failed to save report to '%s': %w", path, err)
	}

	return nil
}

// Filename returns <restaurant>-<type>-<timestamp>.json, with the restaurant name lowercased
// and dashed. The restaurant part is left out when empty.
func Filename(reportType, restaurant string, now time.Time) string {
	timestamp := now.Format("2006-01-02_15-04-05")

	restaurant = strings.TrimSpace(restaurant)
	if restaurant == "" {
		return fmt.Sprintf("%s-%s.json", reportType, timestamp)
	}

	clean := strings.NewReplacer(" ", "-", "&", "and").Replace(strings.ToLower(restaurant))
	return fmt.Sprintf("%s-%s-%s.json", clean, reportType, timestamp)
}

// Percentage returns part as a share of total, rounded to two decimals. A zero total gives 0.
func Percentage(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(part/total*100*100) / 100 //nolint:mnd // percent, two decimals
}
