package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/jobsearch"
	"github.com/jonathan/resume-analyzer/internal/matching"
	"github.com/jonathan/resume-analyzer/internal/observability"
	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/jonathan/resume-analyzer/internal/vocab"
)

var (
	matchProfileFile string
	matchJobsFile    string
	matchQuery       string
	matchLocation    string
	matchPages       int
	matchVocab       string
	matchLimit       int
	matchVerbose     bool
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Match a resume profile against job postings",
	Long: `Score a resume profile against job postings and print the ranked
matches as JSON. Jobs come from a local JSON file (--jobs) or from the
job-search API (--query, requires JOB_SEARCH_APP_ID and
JOB_SEARCH_APP_KEY).`,
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().StringVarP(&matchProfileFile, "profile", "p", "", "Path to resume profile JSON file")
	matchCmd.Flags().StringVar(&matchJobsFile, "jobs", "", "Path to job postings JSON file (mutually exclusive with --query)")
	matchCmd.Flags().StringVarP(&matchQuery, "query", "q", "", "Job search query (mutually exclusive with --jobs)")
	matchCmd.Flags().StringVarP(&matchLocation, "location", "l", "", "Job search location filter")
	matchCmd.Flags().IntVar(&matchPages, "pages", 1, "Number of search result pages to fetch")
	matchCmd.Flags().StringVar(&matchVocab, "vocab", "", "Path to vocabulary override JSON (optional)")
	matchCmd.Flags().IntVar(&matchLimit, "limit", 20, "Maximum number of matches to print")
	matchCmd.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print a ranked summary to stderr")
	_ = matchCmd.MarkFlagRequired("profile")
	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, _ []string) error {
	if matchJobsFile == "" && matchQuery == "" {
		return fmt.Errorf("either --jobs or --query is required")
	}
	if matchJobsFile != "" && matchQuery != "" {
		return fmt.Errorf("--jobs and --query are mutually exclusive")
	}

	vocabulary := vocab.Default()
	if matchVocab != "" {
		loaded, err := vocab.LoadFromFile(matchVocab)
		if err != nil {
			return fmt.Errorf("failed to load vocabulary: %w", err)
		}
		vocabulary = loaded
	}

	profileData, err := os.ReadFile(matchProfileFile)
	if err != nil {
		return fmt.Errorf("failed to read profile file: %w", err)
	}
	var profile types.ResumeProfile
	if err := json.Unmarshal(profileData, &profile); err != nil {
		return fmt.Errorf("failed to parse profile JSON: %w", err)
	}

	var jobs []types.Job
	if matchJobsFile != "" {
		jobsData, err := os.ReadFile(matchJobsFile)
		if err != nil {
			return fmt.Errorf("failed to read jobs file: %w", err)
		}
		if err := json.Unmarshal(jobsData, &jobs); err != nil {
			return fmt.Errorf("failed to parse jobs JSON: %w", err)
		}
	} else {
		jobs, err = searchJobs(context.Background())
		if err != nil {
			return err
		}
	}

	matches := matching.MatchResumeToJobs(profile, jobs, vocabulary)
	if len(matches) > matchLimit {
		matches = matches[:matchLimit]
	}

	if matchVerbose {
		observability.NewPrinter(os.Stderr).PrintMatches(matches)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(matches)
}

func searchJobs(ctx context.Context) ([]types.Job, error) {
	appID := os.Getenv("JOB_SEARCH_APP_ID")
	appKey := os.Getenv("JOB_SEARCH_APP_KEY")
	if appID == "" || appKey == "" {
		return nil, fmt.Errorf("JOB_SEARCH_APP_ID and JOB_SEARCH_APP_KEY environment variables are required for --query")
	}

	client := jobsearch.NewClient(jobsearch.Config{
		BaseURL: os.Getenv("JOB_SEARCH_BASE_URL"),
		AppID:   appID,
		AppKey:  appKey,
		Country: os.Getenv("JOB_SEARCH_COUNTRY"),
	})

	ctx, cancel := context.WithTimeout(ctx, time.Minute)
	defer cancel()

	return client.Search(ctx, types.JobSearchParams{
		Query:    matchQuery,
		Location: matchLocation,
		Pages:    matchPages,
	})
}
