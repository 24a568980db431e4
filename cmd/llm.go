package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ecoamazonia/guardioes/internal/llm"
	"github.com/ecoamazonia/guardioes/internal/store"
)

const timeLayout = "2006-01-02 15:04:05"

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect the quiz generator's LLM calls",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM calls, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")
		failed, _ := cmd.Flags().GetBool("failed")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		events, err := s.EventRepo().QueryLLMEvents(cmd.Context(), store.QueryOpts{})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}
		events = slices.DeleteFunc(events, func(e store.LLMEventRecord) bool {
			return (purpose != "" && e.Purpose != purpose) || (failed && e.Success)
		})
		if limit > 0 {
			events = events[:min(limit, len(events))]
		}
		if len(events) == 0 {
			fmt.Println("No LLM calls recorded.")
			return nil
		}

		fmt.Printf("%5s  %-19s  %-14s  %-28s  %6s  %6s  %7s  %s\n",
			"ID", "TIME", "PURPOSE", "MODEL", "IN", "OUT", "MS", "OK")
		fmt.Println(rule(100))
		for _, e := range events {
			status := "✓"
			if !e.Success {
				status = "✗"
			}
			fmt.Printf("%5d  %-19s  %-14s  %-28s  %6d  %6d  %7d  %s\n",
				e.ID, e.Timestamp.Local().Format(timeLayout), e.Purpose, truncate(e.Model, 28),
				e.InputTokens, e.OutputTokens, e.LatencyMs, status)
		}
		return nil
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show the prompt and reply of one LLM call",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil || id <= 0 {
			return fmt.Errorf("invalid event ID %q", args[0])
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		e, err := s.EventRepo().GetLLMEvent(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("get event: %w", err)
		}
		if e == nil {
			return fmt.Errorf("no LLM call with ID %d", id)
		}

		rows := [][2]string{
			{"ID", strconv.Itoa(e.ID)},
			{"Time", e.Timestamp.Local().Format(timeLayout)},
			{"Provider", e.Provider},
			{"Model", e.Model},
			{"Purpose", e.Purpose},
			{"Tokens", fmt.Sprintf("%d in, %d out", e.InputTokens, e.OutputTokens)},
			{"Latency", fmt.Sprintf("%dms", e.LatencyMs)},
			{"Success", strconv.FormatBool(e.Success)},
		}
		if e.ErrorMessage != "" {
			rows = append(rows, [2]string{"Error", e.ErrorMessage})
		}
		for _, r := range rows {
			fmt.Printf("%-10s %s\n", r[0]+":", r[1])
		}

		printBody("Request", e.RequestBody)
		printBody("Response", e.ResponseBody)
		return nil
	},
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize token usage and estimated cost",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		byPurpose, err := s.EventRepo().LLMUsageByPurpose(ctx)
		if err != nil {
			return fmt.Errorf("usage by purpose: %w", err)
		}
		if len(byPurpose) == 0 {
			fmt.Println("No LLM usage recorded yet.")
			return nil
		}
		byModel, err := s.EventRepo().LLMUsageByModel(ctx)
		if err != nil {
			return fmt.Errorf("usage by model: %w", err)
		}

		printPurposeUsage(byPurpose)
		if len(byModel) > 0 {
			fmt.Println()
			printModelCost(byModel)
		}
		return nil
	},
}

func printPurposeUsage(stats []store.LLMPurposeUsage) {
	fmt.Println("Tokens by purpose")
	fmt.Println(rule(72))
	fmt.Printf("%-16s  %6s  %10s  %10s  %10s  %8s\n", "PURPOSE", "CALLS", "INPUT", "OUTPUT", "TOTAL", "AVG MS")
	var calls, in, out int
	for _, st := range stats {
		fmt.Printf("%-16s  %6d  %10d  %10d  %10d  %8d\n",
			st.Purpose, st.Calls, st.InputTokens, st.OutputTokens, st.InputTokens+st.OutputTokens, st.AvgLatencyMs)
		calls += st.Calls
		in += st.InputTokens
		out += st.OutputTokens
	}
	fmt.Println(rule(72))
	fmt.Printf("%-16s  %6d  %10d  %10d  %10d\n", "all", calls, in, out, in+out)
}

// printModelCost prices each model with llm.LookupCost. Models without
// a price are listed and excluded from the total.
func printModelCost(usage []store.LLMModelUsage) {
	fmt.Println("Estimated cost (USD)")
	fmt.Println(rule(72))
	fmt.Printf("%-32s  %6s  %10s  %10s  %10s\n", "MODEL", "CALLS", "INPUT", "OUTPUT", "COST")

	var total float64
	var unpriced []string
	for _, mu := range usage {
		price := "?"
		if c := llm.LookupCost(mu.Model); c != nil {
			usd := c.Cost(mu.InputTokens, mu.OutputTokens)
			total += usd
			price = formatCost(usd)
		} else {
			unpriced = append(unpriced, mu.Model)
		}
		fmt.Printf("%-32s  %6d  %10d  %10d  %10s\n",
			truncate(mu.Model, 32), mu.Calls, mu.InputTokens, mu.OutputTokens, price)
	}
	fmt.Println(rule(72))

	label := "all"
	if len(unpriced) > 0 {
		label = "all (partial)"
	}
	fmt.Printf("%-32s  %6s  %10s  %10s  %10s\n", label, "", "", "", formatCost(total))
	if len(unpriced) > 0 {
		fmt.Printf("\nNo pricing for: %s\n", strings.Join(unpriced, ", "))
	}
}

// printBody prints a captured JSON body indented, or as-is when it is
// not JSON.
func printBody(title, body string) {
	fmt.Printf("\n%s\n%s\n", title, rule(60))
	if body == "" {
		fmt.Println("(not captured)")
		return
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(body), "", "  "); err != nil {
		fmt.Println(body)
		return
	}
	fmt.Println(buf.String())
}

// openStore opens the event store without loading profiles or config.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

func rule(n int) string { return strings.Repeat("─", n) }

// truncate shortens s to at most max runes.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of calls to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Only show one purpose (quiz or river-question)")
	llmListCmd.Flags().Bool("failed", false, "Only show failed calls")

	llmCmd.AddCommand(llmListCmd, llmViewCmd, llmStatsCmd)
}
