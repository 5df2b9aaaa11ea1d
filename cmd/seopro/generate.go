package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nhatmailaanh/bat-dong-san-seo-pro/internal/analysis"
	"github.com/nhatmailaanh/bat-dong-san-seo-pro/internal/config"
	"github.com/nhatmailaanh/bat-dong-san-seo-pro/internal/generation"
	"github.com/nhatmailaanh/bat-dong-san-seo-pro/internal/inference"
	"github.com/nhatmailaanh/bat-dong-san-seo-pro/internal/observability"
	"github.com/nhatmailaanh/bat-dong-san-seo-pro/internal/types"
)

var (
	generateInput        string
	generateOut          string
	generateVerbose      bool
	generateSkipAnalysis bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate listing content for one property record",
	Long:  `Read a property record from a JSON file, generate listing content, run the analysis pass and print the combined result as JSON.`,
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateInput, "input", "", "Path to property record JSON file (required)")
	generateCmd.Flags().StringVar(&generateOut, "out", "", "Write the result JSON to this file instead of stdout")
	generateCmd.Flags().BoolVar(&generateVerbose, "verbose", false, "Print formatted summaries while running")
	generateCmd.Flags().BoolVar(&generateSkipAnalysis, "skip-analysis", false, "Skip the content-analysis pass")
	_ = generateCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(generateCmd)
}

// generateOutput is the combined result written by the generate command.
type generateOutput struct {
	Result     *types.GeneratedContent `json:"result"`
	HFAnalysis *types.HFAnalysisResult `json:"hfAnalysis,omitempty"`
}

func runGenerate(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	data, err := readPropertyData(generateInput)
	if err != nil {
		return err
	}
	if err := data.Validate(); err != nil {
		return fmt.Errorf("property record is incomplete (type, price and location are required): %w", err)
	}

	ctx := context.Background()
	printer := observability.NewPrinter(os.Stdout)

	generator, err := generation.NewGeminiClient(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to create generation client: %w", err)
	}
	defer func() { _ = generator.Close() }()

	fmt.Println("Generating listing content...")
	content, err := generator.Generate(ctx, data)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}
	if generateVerbose {
		printer.PrintGeneratedContent(content)
	}

	output := generateOutput{Result: content}

	if !generateSkipAnalysis && content.HotDescription != "" {
		hfClient := inference.NewClient(inference.Config{
			BaseURL:        cfg.HFBaseURL,
			Token:          cfg.HFAPIToken,
			SentimentModel: cfg.SentimentModel,
			NERModel:       cfg.NERModel,
			EmbeddingModel: cfg.EmbeddingModel,
		})

		fmt.Println("Analyzing generated content...")
		output.HFAnalysis = analysis.New(hfClient).Analyze(ctx, content.PrimaryTitle(), content.HotDescription)
		if generateVerbose {
			printer.PrintAnalysis(output.HFAnalysis)
		}
	}

	encoded, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	if generateOut != "" {
		if err := os.WriteFile(generateOut, encoded, 0o644); err != nil {
			return fmt.Errorf("failed to write result to %s: %w", generateOut, err)
		}
		fmt.Printf("Result written to %s\n", generateOut)
		return nil
	}

	fmt.Println(string(encoded))
	return nil
}

func readPropertyData(path string) (*types.PropertyData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file %s: %w", path, err)
	}

	var data types.PropertyData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse property record %s: %w", path, err)
	}

	return &data, nil
}
