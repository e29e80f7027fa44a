package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/extract"
	"github.com/jonathan/resume-analyzer/internal/llm"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/parsing"
	"github.com/jonathan/resume-analyzer/internal/scoring"
	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/jonathan/resume-analyzer/internal/vocab"
)

var (
	analyzeFile    string
	analyzeJobFile string
	analyzeVocab   string
	analyzeAPIKey  string
	analyzeVerbose bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a resume and print its ATS score",
	Long: `Extract text from a resume file (DOCX or plain text), parse it into
structured signals, and score it against ATS heuristics. The result is
printed as JSON on stdout.

With --job, keyword scoring targets terms found in the job description
instead of the generic industry list.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "", "Path to resume file (.docx or .txt)")
	analyzeCmd.Flags().StringVarP(&analyzeJobFile, "job", "j", "", "Path to job description text file (optional)")
	analyzeCmd.Flags().StringVar(&analyzeVocab, "vocab", "", "Path to vocabulary override JSON (optional)")
	analyzeCmd.Flags().StringVar(&analyzeAPIKey, "api-key", "", "Gemini API key for suggestion polish (optional, defaults to GEMINI_API_KEY env var)")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Include parsed sections and signals in the output")
	_ = analyzeCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(analyzeCmd)
}

// analyzeOutput is the JSON document printed by the analyze command.
type analyzeOutput struct {
	Score  types.ATSScore      `json:"score"`
	Parsed *types.ParsedResume `json:"parsed,omitempty"`
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	vocabulary := vocab.Default()
	if analyzeVocab != "" {
		loaded, err := vocab.LoadFromFile(analyzeVocab)
		if err != nil {
			return fmt.Errorf("failed to load vocabulary: %w", err)
		}
		vocabulary = loaded
	}

	data, err := os.ReadFile(analyzeFile)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	text, err := extract.Text(data, extract.DetectFormat(analyzeFile))
	if err != nil {
		return err
	}

	var jobDescription string
	if analyzeJobFile != "" {
		jobData, err := os.ReadFile(analyzeJobFile)
		if err != nil {
			return fmt.Errorf("failed to read job description file: %w", err)
		}
		jobDescription = string(jobData)
	}

	parsed := parsing.Parse(parsing.CleanText(text), vocabulary)
	score := scoring.Score(parsed, jobDescription, vocabulary)

	apiKey := analyzeAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey != "" {
		client, err := llm.NewClient(ctx, nil, apiKey)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: LLM client unavailable: %v\n", err)
		} else {
			defer func() { _ = client.Close() }()
			if polished, err := llm.PolishSuggestions(ctx, client, score); err != nil {
				fmt.Fprintf(os.Stderr, "warning: suggestion polish failed: %v\n", err)
			} else {
				score.Suggestions = polished
			}
		}
	}

	out := analyzeOutput{Score: score}
	if analyzeVerbose {
		out.Parsed = parsed
		printer := observability.NewPrinter(os.Stderr)
		printer.PrintParsedResume(parsed)
		printer.PrintScore(score)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
