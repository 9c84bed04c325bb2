package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"path/filepath"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/UnknownOlympus/hestia/internal/importer"
	"github.com/UnknownOlympus/hestia/internal/lib/dates"
	"github.com/UnknownOlympus/hestia/internal/lib/logger/sl"
	"github.com/UnknownOlympus/hestia/internal/models"
	"github.com/UnknownOlympus/hestia/internal/repository"
	"github.com/UnknownOlympus/hestia/internal/server"
	"github.com/UnknownOlympus/hestia/internal/services/generator"
	"github.com/UnknownOlympus/hestia/internal/services/reports"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var errImportKind = errors.New("--kind must be 'sales' or 'roster'")

type options struct {
	configPath string
	date       string
	days       int
	output     string
	outputDir  string
	samplesDir string
	kind       string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "hestia",
		Short:        "Restaurant POS and roster data generator",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to the YAML configuration (defaults to CONFIG_PATH)")
	root.PersistentFlags().StringVar(&opts.date, "date", "", "day to work on, today when empty")

	root.AddCommand(
		newSetupCmd(opts),
		newPosCmd(opts),
		newRosterCmd(opts),
		newReportCmd(opts),
		newImportCmd(opts),
		newSummaryCmd(opts),
		newServeCmd(opts),
	)

	return root
}

// withApp loads the configuration, connects to the database and hands the app to run.
func withApp(opts *options, run func(cmd *cobra.Command, a *app, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.Context(), opts.configPath, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer a.close()

		return run(cmd, a, args)
	}
}

func newSetupCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Apply the database schema and load the employee master data",
		RunE: withApp(opts, func(cmd *cobra.Command, a *app, _ []string) error {
			if err := repository.Migrate(a.pool, a.cfg.Postgres.MigrationsDir); err != nil {
				return err
			}
			a.log.InfoContext(cmd.Context(), "Migrations applied successfully")

			stored, err := a.roster.SetupEmployees(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to set up employees: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Employees stored: %d\n", stored)

			if opts.samplesDir != "" {
				paths, err := importer.WriteSamples(opts.samplesDir)
				if err != nil {
					return err
				}
				for _, path := range paths {
					fmt.Fprintf(cmd.OutOrStdout(), "Sample written: %s\n", path)
				}
			}

			return nil
		}),
	}
	cmd.Flags().StringVar(&opts.samplesDir, "samples", "", "also write sample import files into this directory")

	return cmd
}

func newPosCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "pos",
		Short: "Generate one day of POS transactions",
		RunE: withApp(opts, func(cmd *cobra.Command, a *app, _ []string) error {
			date, err := resolveDate(opts.date, a.now())
			if err != nil {
				return err
			}

			stored, err := a.sales.ProcessDate(cmd.Context(), date)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Generated %d sales for %s\n", stored, date.Format(time.DateOnly))

			return nil
		}),
	}
}

func newRosterCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "roster",
		Short: "Generate one day of employee shifts",
		RunE: withApp(opts, func(cmd *cobra.Command, a *app, _ []string) error {
			date, err := resolveDate(opts.date, a.now())
			if err != nil {
				return err
			}

			stored, err := a.roster.ProcessDate(cmd.Context(), date)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Generated %d shifts for %s\n", stored, date.Format(time.DateOnly))

			return nil
		}),
	}
}

func newReportCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Build the periodic sales and labor report",
		RunE: withApp(opts, func(cmd *cobra.Command, a *app, _ []string) error {
			now := a.now()

			report, err := a.reports.Build(cmd.Context(), opts.days, now)
			if err != nil {
				return err
			}

			path := reportPath(opts.output, opts.outputDir, a.cfg.Restaurant.Name, now)
			if err = reports.Write(report, path, cmd.OutOrStdout()); err != nil {
				return err
			}
			if path != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Report saved to %s\n", path)
			}

			return nil
		}),
	}
	cmd.Flags().IntVar(&opts.days, "days", reports.DefaultPeriodDays, "number of trailing days to report on")
	cmd.Flags().StringVar(&opts.output, "output", "", "report file, stdout when empty")
	cmd.Flags().StringVar(&opts.outputDir, "output-dir", "", "directory for a timestamped report file")

	return cmd
}

// reportPath picks the report destination: an explicit file wins over a generated name in dir.
func reportPath(output, dir, restaurant string, now time.Time) string {
	if output != "" || dir == "" {
		return output
	}
	return filepath.Join(dir, reports.Filename("report", restaurant, now))
}

func newImportCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Validate and store sales or shifts from a JSON, CSV or HTML export",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(opts, func(cmd *cobra.Command, a *app, args []string) error {
			var imported, total int

			switch opts.kind {
			case "sales":
				records, err := importer.LoadSales(args[0])
				if err != nil {
					return err
				}
				total = len(records)
				imported = a.sales.Import(cmd.Context(), records)
			case "roster":
				records, err := importer.LoadShifts(args[0])
				if err != nil {
					return err
				}
				total = len(records)
				imported = a.roster.Import(cmd.Context(), records)
			default:
				return errImportKind
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d of %d records\n", imported, total)
			return nil
		}),
	}
	cmd.Flags().StringVar(&opts.kind, "kind", "sales", "record kind: sales or roster")

	return cmd
}

func newSummaryCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print the daily sales and roster summaries",
		RunE: withApp(opts, func(cmd *cobra.Command, a *app, _ []string) error {
			date, err := resolveDate(opts.date, a.now())
			if err != nil {
				return err
			}

			salesSummary, err := a.sales.DailySummary(cmd.Context(), date)
			if err != nil {
				return err
			}
			rosterSummary, err := a.roster.DailySummary(cmd.Context(), date)
			if err != nil {
				return err
			}

			printSalesSummary(cmd.OutOrStdout(), salesSummary)
			printRosterSummary(cmd.OutOrStdout(), rosterSummary, salesSummary)

			return nil
		}),
	}
}

func printSalesSummary(out io.Writer, summary models.DailySalesSummary) {
	fmt.Fprintf(out, "Sales for %s\n", summary.Date)

	totals := tablewriter.NewWriter(out)
	totals.SetHeader([]string{"Transactions", "Items sold", "Revenue", "Avg transaction"})
	totals.Append([]string{
		strconv.Itoa(summary.TotalTransactions),
		strconv.Itoa(summary.ItemsSold),
		summary.TotalRevenue.StringFixed(2),
		summary.AvgTransaction.StringFixed(2),
	})
	totals.Render()

	if len(summary.TopItems) > 0 {
		top := tablewriter.NewWriter(out)
		top.SetHeader([]string{"Top item", "Quantity"})
		for _, item := range summary.TopItems {
			top.Append([]string{item.Item, strconv.Itoa(item.Quantity)})
		}
		top.Render()
	}

	if len(summary.HourlyBreakdown) > 0 {
		revenue := summary.TotalRevenue.InexactFloat64()
		hourly := tablewriter.NewWriter(out)
		hourly.SetHeader([]string{"Hour", "Transactions", "Revenue", "Share %"})
		for _, hour := range slices.Sorted(maps.Keys(summary.HourlyBreakdown)) {
			stats := summary.HourlyBreakdown[hour]
			hourly.Append([]string{
				fmt.Sprintf("%02d:00", hour),
				strconv.Itoa(stats.Transactions),
				stats.Revenue.StringFixed(2),
				strconv.FormatFloat(reports.Percentage(stats.Revenue.InexactFloat64(), revenue), 'f', 2, 64),
			})
		}
		hourly.Render()
	}
}

func printRosterSummary(out io.Writer, summary models.DailyRosterSummary, sales models.DailySalesSummary) {
	fmt.Fprintf(out, "Roster for %s\n", summary.Date)

	totals := tablewriter.NewWriter(out)
	totals.SetHeader([]string{"Shifts", "Employees", "Hours", "Avg hours", "Labor cost", "Labor % of sales"})
	totals.Append([]string{
		strconv.Itoa(summary.TotalShifts),
		strconv.Itoa(summary.EmployeesWorking),
		strconv.FormatFloat(summary.TotalHours, 'f', 2, 64),
		strconv.FormatFloat(summary.AvgHoursPerShift, 'f', 2, 64),
		summary.TotalCost.StringFixed(2),
		strconv.FormatFloat(
			reports.Percentage(summary.TotalCost.InexactFloat64(), sales.TotalRevenue.InexactFloat64()), 'f', 2, 64),
	})
	totals.Render()

	if len(summary.PositionBreakdown) > 0 {
		positions := tablewriter.NewWriter(out)
		positions.SetHeader([]string{"Position", "Shifts", "Hours", "Cost"})
		for _, position := range slices.Sorted(maps.Keys(summary.PositionBreakdown)) {
			stats := summary.PositionBreakdown[position]
			positions.Append([]string{
				position,
				strconv.Itoa(stats.Shifts),
				strconv.FormatFloat(stats.Hours, 'f', 2, 64),
				stats.Cost.StringFixed(2),
			})
		}
		positions.Render()
	}
}

func newServeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Keep generating daily data and serve metrics, health and reports",
		RunE: withApp(opts, func(cmd *cobra.Command, a *app, _ []string) error {
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			startDate, err := dates.ParseDate(a.cfg.Generator.StartDate)
			if err != nil {
				return fmt.Errorf("invalid generator start date: %w", err)
			}

			runner := generator.NewRunner(a.log, a.sales, a.roster, a.statusRepo, a.metrics, startDate).
				WithClock(a.now)
			reportsHandler := server.NewReportsHandler(a.log, a.sales, a.roster, a.reports)
			router := server.NewRouter(a.log, a.reg, a.pool, reportsHandler)

			var wgr sync.WaitGroup
			wgr.Add(1)
			go func() {
				defer wgr.Done()
				server.StartMonitoringServer(ctx, a.log, router, a.cfg.Server.Port)
			}()

			a.log.InfoContext(ctx, "Application started. Press Ctrl+C to stop.")

			runErr := runner.Start(ctx, a.cfg.Generator.Interval)
			if runErr != nil {
				a.log.ErrorContext(ctx, "Generator failed", sl.Err(runErr))
			}
			cancel()

			wgr.Wait()
			a.log.InfoContext(ctx, "Application stopped gracefully...")

			return runErr
		}),
	}
}
