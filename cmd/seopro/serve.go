package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nhatmailaanh/bat-dong-san-seo-pro/internal/analysis"
	"github.com/nhatmailaanh/bat-dong-san-seo-pro/internal/config"
	"github.com/nhatmailaanh/bat-dong-san-seo-pro/internal/generation"
	"github.com/nhatmailaanh/bat-dong-san-seo-pro/internal/inference"
	"github.com/nhatmailaanh/bat-dong-san-seo-pro/internal/orchestrator"
	"github.com/nhatmailaanh/bat-dong-san-seo-pro/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes JSON endpoints for generating and analyzing listing content.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx := context.Background()

	generator, err := generation.NewGeminiClient(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to create generation client: %w", err)
	}
	defer func() { _ = generator.Close() }()

	hfClient := inference.NewClient(inference.Config{
		BaseURL:        cfg.HFBaseURL,
		Token:          cfg.HFAPIToken,
		SentimentModel: cfg.SentimentModel,
		NERModel:       cfg.NERModel,
		EmbeddingModel: cfg.EmbeddingModel,
	})

	controller := orchestrator.New(generator, analysis.New(hfClient))

	srv := server.New(server.Config{
		Port:       cfg.Port,
		Controller: controller,
		Pinger:     hfClient,
	})

	return srv.Start()
}
