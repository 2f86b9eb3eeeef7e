package cmd

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/michoacana/antojo/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect past recommendation requests",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent submissions",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		kind, _ := cmd.Flags().GetString("kind")

		s, err := openHistory(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		subs, err := s.SubmissionRepo().ListSubmissions(context.Background(), store.QueryOpts{Limit: limit, Kind: kind})
		if err != nil {
			return fmt.Errorf("query submissions: %w", err)
		}
		if len(subs) == 0 {
			fmt.Println("No submissions found.")
			return nil
		}

		fmt.Printf("%-5s  %-19s  %-14s  %-6s  %-28s  %-9s  %s\n",
			"ID", "Timestamp", "Kind", "Status", "Product", "Weather", "Ms")
		fmt.Println(strings.Repeat("─", 100))

		for _, sub := range subs {
			product := sub.Product
			if product == "" {
				product = sub.Message
			}
			if len(product) > 28 {
				product = product[:28]
			}
			fmt.Printf("%-5d  %-19s  %-14s  %-6d  %-28s  %-9s  %d\n",
				sub.ID,
				sub.Timestamp.Local().Format("2006-01-02 15:04:05"),
				sub.Kind,
				sub.Status,
				product,
				sub.Weather,
				sub.LatencyMs,
			)
		}
		return nil
	},
}

var historyViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "View one submission with its request and response",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}

		s, err := openHistory(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		sub, err := s.SubmissionRepo().GetSubmission(context.Background(), id)
		if err != nil {
			return fmt.Errorf("get submission: %w", err)
		}
		if sub == nil {
			return fmt.Errorf("submission %d not found", id)
		}

		sep := strings.Repeat("─", 60)

		fmt.Printf("ID:        %d\n", sub.ID)
		fmt.Printf("Time:      %s\n", sub.Timestamp.Local().Format("2006-01-02 15:04:05"))
		fmt.Printf("Session:   %s\n", sub.SessionID)
		fmt.Printf("Endpoint:  %s\n", sub.Endpoint)
		fmt.Printf("Kind:      %s\n", sub.Kind)
		fmt.Printf("Status:    %d\n", sub.Status)
		fmt.Printf("Latency:   %dms\n", sub.LatencyMs)
		if sub.Product != "" {
			fmt.Printf("Product:   %s\n", sub.Product)
			fmt.Printf("Weather:   %s\n", sub.Weather)
		}
		if sub.Message != "" {
			fmt.Printf("Message:   %s\n", sub.Message)
		}

		keys := make([]string, 0, len(sub.Answers))
		for k := range sub.Answers {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Printf("  %-22s %s\n", k+":", sub.Answers[k])
		}

		for _, part := range []struct{ title, body string }{
			{"REQUEST", sub.RequestBody},
			{"RESPONSE", sub.ResponseBody},
		} {
			fmt.Println()
			fmt.Println(sep)
			fmt.Println(part.title)
			fmt.Println(sep)
			if part.body != "" {
				fmt.Println(part.body)
			} else {
				fmt.Println("(not captured)")
			}
		}
		return nil
	},
}

var historyStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Count submissions by outcome",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openHistory(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		counts, err := s.SubmissionRepo().CountByKind(context.Background())
		if err != nil {
			return fmt.Errorf("count submissions: %w", err)
		}
		if len(counts) == 0 {
			fmt.Println("No submissions recorded yet.")
			return nil
		}

		kinds := make([]string, 0, len(counts))
		total := 0
		for k, n := range counts {
			kinds = append(kinds, k)
			total += n
		}
		sort.Strings(kinds)

		fmt.Printf("%-16s  %6s\n", "Kind", "Count")
		fmt.Println(strings.Repeat("─", 24))
		for _, k := range kinds {
			fmt.Printf("%-16s  %6d\n", k, counts[k])
		}
		fmt.Println(strings.Repeat("─", 24))
		fmt.Printf("%-16s  %6d\n", "TOTAL", total)
		return nil
	},
}

func openHistory(cmd *cobra.Command) (*store.Store, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

func init() {
	historyListCmd.Flags().IntP("limit", "n", 20, "Maximum number of submissions to show")
	historyListCmd.Flags().String("kind", "", "Only show one outcome kind (success, server_error, network_error)")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyViewCmd)
	historyCmd.AddCommand(historyStatsCmd)
}
