package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/dhkwon/newssearch"
	"github.com/dhkwon/newssearch/config"
)

var (
	flagStart   string
	flagEnd     string
	flagMax     int
	flagSource  string
	flagConfig  string
	flagVerbose bool
	flagJSON    bool
)

var rootCmd = &cobra.Command{
	Use:   "newssearch [keywords]",
	Short: "Search news articles by keyword and date range",
	Long: `Searches news backends for articles matching one or more keywords
inside a YYYYMMDD date range. Wrap a multi-word phrase in double quotes to
search it as a single keyword:

  newssearch --start 20240101 --end 20240131 'AI "Hong Gildong"'`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.Flags().StringVar(&flagStart, "start", "", "start date (YYYYMMDD, default today)")
	rootCmd.Flags().StringVar(&flagEnd, "end", "", "end date (YYYYMMDD, default today)")
	rootCmd.Flags().IntVar(&flagMax, "max", 100, "maximum articles per keyword")
	rootCmd.Flags().StringVar(&flagSource, "source", "naver", "backend to search: naver, google, or all")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "path to YAML config file")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging")
	rootCmd.Flags().BoolVar(&flagJSON, "json", false, "output results as JSON")
}

func runSearch(cmd *cobra.Command, args []string) error {
	keywords, err := splitKeywords(args[0])
	if err != nil {
		return fmt.Errorf("failed to parse keywords: %w", err)
	}
	if len(keywords) == 0 {
		return errors.New("at least one keyword is required")
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	log := logrus.New()
	log.SetOutput(cmd.ErrOrStderr())
	if level, err := logrus.ParseLevel(cfg.Logging.Level); err == nil {
		log.SetLevel(level)
	}
	if flagVerbose {
		log.SetLevel(logrus.DebugLevel)
	}

	engine := newssearch.NewEngine(cfg, log)
	ctx := context.Background()

	// Keywords run strictly one after another so the backend only ever sees
	// a single outstanding connection from us.
	resultsByKeyword := make(map[string][]newssearch.Article, len(keywords))
	var total int
	for _, keyword := range keywords {
		query, err := newssearch.NewQuery(keyword, flagStart, flagEnd, flagMax)
		if err != nil {
			return err
		}

		var records []newssearch.Article
		switch flagSource {
		case "naver":
			records = engine.SearchNaver(ctx, query)
		case "google":
			records = engine.SearchGoogle(ctx, query)
		case "all":
			records = append(engine.SearchNaver(ctx, query), engine.SearchGoogle(ctx, query)...)
		default:
			return fmt.Errorf("unknown source %q (want naver, google, or all)", flagSource)
		}

		records = newssearch.Dedupe(records)
		if len(records) > 0 {
			resultsByKeyword[keyword] = records
			total += len(records)
		}
	}

	if flagJSON {
		return outputJSON(cmd, keywords, resultsByKeyword)
	}
	outputTable(cmd, keywords, resultsByKeyword, total)
	return nil
}

func outputJSON(cmd *cobra.Command, keywords []string, results map[string][]newssearch.Article) error {
	type keywordResult struct {
		Keyword  string               `json:"keyword"`
		Articles []newssearch.Article `json:"articles"`
	}

	out := make([]keywordResult, 0, len(keywords))
	for _, keyword := range keywords {
		records := results[keyword]
		if records == nil {
			records = []newssearch.Article{}
		}
		out = append(out, keywordResult{Keyword: keyword, Articles: records})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputTable(cmd *cobra.Command, keywords []string, results map[string][]newssearch.Article, total int) {
	if total == 0 {
		cmd.Println("No articles found. Try another keyword or date range.")
		return
	}

	cmd.Printf("Found %d articles.\n", total)
	for _, keyword := range keywords {
		records := results[keyword]
		if len(records) == 0 {
			continue
		}
		display := keyword
		if strings.Contains(keyword, " ") {
			display = `"` + keyword + `"`
		}
		cmd.Printf("\n%s (%d articles)\n", display, len(records))
		for _, record := range records {
			cmd.Printf("  %s\n  %s\n", record.Title, record.Link)
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
