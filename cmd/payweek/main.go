package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"

	"payweek/internal/auth"
	"payweek/internal/db"
	"payweek/internal/domain/payroll"
	"payweek/internal/input"
	"payweek/internal/platform/config"
	"payweek/internal/platform/metrics"
	"payweek/internal/register"
	"payweek/internal/report"
	"payweek/internal/transport/http/api"
	payrollhandler "payweek/internal/transport/http/handlers/payroll"
	"payweek/internal/transport/http/middleware"
)

var rootCmd = &cobra.Command{
	Use:   "payweek",
	Short: "Weekly payroll calculator with overtime and tiered tax",
	Long:  `Payweek computes weekly pay for a batch of employees, applying daily and weekly overtime rules and a progressive tax schedule, and reports net pay in descending order.`,

	SilenceUsage:  true,
	SilenceErrors: true,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Compute payroll for a TOML batch file and print the report",
	RunE: func(cmd *cobra.Command, args []string) error {
		inputPath, _ := cmd.Flags().GetString("input")
		payslipDir, _ := cmd.Flags().GetString("payslip-dir")

		employees, err := input.LoadBatchFile(inputPath)
		if err != nil {
			return err
		}

		batch := payroll.NewBatch(payroll.DefaultBrackets)
		for _, employee := range employees {
			batch.AddEmployee(employee)
		}

		console := report.NewConsole(cmd.OutOrStdout())
		reporter := payroll.Reporter(console)
		var payslips *report.PDF
		if payslipDir != "" {
			payslips = report.NewPDF(payslipDir)
			reporter = report.Multi(console, payslips)
		}

		if _, err := batch.ProcessPayroll(reporter); err != nil {
			return err
		}
		if err := console.Flush(); err != nil {
			return err
		}
		if payslips != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "\n%d payslip(s) written to %s\n", len(payslips.Paths), payslipDir)
		}
		return nil
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the payroll API over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		if err := cfg.Validate(); err != nil {
			return err
		}

		ctx := context.Background()
		collector := metrics.New()

		var registerStore *register.Store
		if cfg.DatabaseURL != "" {
			pool, err := db.Connect(ctx, cfg)
			if err != nil {
				return fmt.Errorf("db connect failed: %w", err)
			}
			defer pool.Close()

			if cfg.RunMigrations {
				if err := db.Migrate(ctx, pool, cfg.MigrationsDir); err != nil {
					return fmt.Errorf("migrations failed: %w", err)
				}
			}
			registerStore = register.NewStore(pool)
		}

		router := chi.NewRouter()
		router.Use(middleware.RequestID)
		router.Use(middleware.Logger)
		router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))

		router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
		})

		router.Route("/api/v1", func(r chi.Router) {
			r.Use(middleware.RequireAuth(cfg.JWTSecret))

			payrollhandler.NewHandler(payroll.DefaultBrackets, registerStore, collector).RegisterRoutes(r)

			if cfg.MetricsEnabled {
				r.Get("/metrics", func(w http.ResponseWriter, req *http.Request) {
					api.Success(w, collector.Snapshot(), middleware.GetRequestID(req.Context()))
				})
			}
		})

		log.Printf("payweek server listening on %s", cfg.Addr)
		return http.ListenAndServe(cfg.Addr, router)
	},
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a bearer token for the payroll API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		if cfg.JWTSecret == "" {
			return errors.New("JWT_SECRET must be set to mint tokens")
		}
		subject, _ := cmd.Flags().GetString("subject")
		ttl, _ := cmd.Flags().GetDuration("ttl")

		token, err := auth.GenerateToken(cfg.JWTSecret, subject, ttl)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	runCmd.Flags().String("input", "batch.toml", "path to the TOML batch file")
	runCmd.Flags().String("payslip-dir", "", "also write one payslip PDF per employee into this directory")

	tokenCmd.Flags().String("subject", "payroll-operator", "token subject")
	tokenCmd.Flags().Duration("ttl", 24*time.Hour, "token lifetime")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(tokenCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
