package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"StockCast/internal/di"
	"StockCast/pkg/config"
	"StockCast/pkg/util"
)

var configPath string

func main() {
	root := &cobra.Command{
		Use:   "stockcast",
		Short: "Train per-ticker forecasting models and serve predictions",
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "config/config.yaml", "config file path")

	root.AddCommand(newServeCmd(), newTrainCmd(), newPredictCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() *config.Config {
	cfg, err := config.LoadWithEnv(configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	return cfg
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the forecast HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			log.Printf("env=%s artifacts=%s", cfg.Environment, cfg.Artifacts.Dir)

			app, err := di.InitializeApp(cfg)
			if err != nil {
				return fmt.Errorf("app initialization failed: %w", err)
			}

			// Blocks until signal
			return app.Run()
		},
	}
}

func newTrainCmd() *cobra.Command {
	var ticker, start, end string
	cmd := &cobra.Command{
		Use:   "train",
		Short: "Fetch history for a ticker and fit a model",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			manager, err := di.InitializeManager(cfg)
			if err != nil {
				return fmt.Errorf("initialization failed: %w", err)
			}

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
			defer cancel()

			startAt := util.ParseDateDefault(start, time.Time{})
			endAt := util.ParseDateDefault(end, time.Time{})
			run, err := manager.Train(ctx, ticker, startAt, endAt)
			if err != nil {
				return err
			}
			log.Printf("trained %s on %d points", run.Ticker, run.Points)
			return nil
		},
	}
	cmd.Flags().StringVarP(&ticker, "ticker", "t", "", "ticker symbol")
	cmd.Flags().StringVar(&start, "start", "", "training start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "training end date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("ticker")
	return cmd
}

func newPredictCmd() *cobra.Command {
	var ticker string
	var days int
	var skipTrain bool
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Train (unless skipped), forecast, and print the date->value mapping",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig()
			manager, err := di.InitializeManager(cfg)
			if err != nil {
				return fmt.Errorf("initialization failed: %w", err)
			}

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
			defer cancel()

			if !skipTrain {
				if _, err := manager.Train(ctx, ticker, time.Time{}, time.Time{}); err != nil {
					return err
				}
			}

			res, err := manager.Predict(ctx, ticker, days)
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(manager.Convert(res), "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}
	cmd.Flags().StringVarP(&ticker, "ticker", "t", "", "ticker symbol")
	cmd.Flags().IntVarP(&days, "days", "d", 7, "forecast horizon in days")
	cmd.Flags().BoolVar(&skipTrain, "skip-train", false, "predict from the persisted artifact without retraining")
	_ = cmd.MarkFlagRequired("ticker")
	return cmd
}
