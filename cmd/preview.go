package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ecoamazonia/guardioes/internal/config"
	"github.com/ecoamazonia/guardioes/internal/i18n"
	"github.com/ecoamazonia/guardioes/internal/llm"
	"github.com/ecoamazonia/guardioes/internal/quiz"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Climate quiz tools",
}

var quizPreviewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview LLM-generated quiz questions (no database)",
	Long: `Generate and interactively answer a quiz round or a river question.

No profile, no points and no events are touched. Useful for checking
question quality for a topic or language.`,
	RunE: runQuizPreview,
}

func init() {
	quizPreviewCmd.Flags().String("topic", "", "Quiz topic (defaults to the climate topic)")
	quizPreviewCmd.Flags().String("lang", "", "Question language: pt, en or es")
	quizPreviewCmd.Flags().Bool("river", false, "Generate a river cleanup question instead of a round")
	quizCmd.AddCommand(quizPreviewCmd)
}

func runQuizPreview(cmd *cobra.Command, args []string) error {
	topic, _ := cmd.Flags().GetString("topic")
	langVal, _ := cmd.Flags().GetString("lang")
	river, _ := cmd.Flags().GetBool("river")

	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	lang := cfg.Language
	if langVal != "" {
		if lang, err = i18n.ParseLanguage(langVal); err != nil {
			return err
		}
	}

	// No EventRepo: calls are not logged.
	ctx := context.Background()
	provider, err := llm.NewProviderFromConfig(ctx, cfg.LLM, nil, nil)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}
	gen := quiz.NewGenerator(provider, quiz.DefaultConfig())
	scanner := bufio.NewScanner(os.Stdin)

	if river {
		return previewRiver(ctx, gen, lang, scanner)
	}

	if topic == "" {
		topic = quiz.DefaultTopic
	}
	fmt.Printf("Topic: %s (%s)\n", topic, lang.DisplayName())
	fmt.Println("Generating questions...")
	fmt.Println()

	qs, err := gen.GenerateQuestions(ctx, topic, lang)
	if err != nil {
		return fmt.Errorf("generate questions: %w", err)
	}

	var correct int
	for i, q := range qs {
		fmt.Printf("── Question %d/%d ──\n", i+1, len(qs))
		fmt.Println(q.Text)
		for j, o := range q.Options {
			fmt.Printf("  %d) %s\n", j+1, o)
		}

		choice, ok := readChoice(scanner, len(q.Options))
		if !ok {
			fmt.Println("\n(input closed)")
			break
		}
		if choice < 0 {
			fmt.Println("(skipped)")
			fmt.Println()
			continue
		}

		if q.IsCorrect(q.Options[choice]) {
			correct++
			fmt.Println("\033[32m✓ Correct!\033[0m")
		} else {
			fmt.Printf("\033[31m✗ Wrong.\033[0m Answer: %s\n", q.Answer)
		}
		if q.Explanation != "" {
			fmt.Printf("Explanation: %s\n", q.Explanation)
		}
		fmt.Println()
	}

	fmt.Printf("── Summary: %d/%d correct, %d PN ──\n",
		correct, len(qs), correct*quiz.DefaultConfig().PointsPerCorrect)
	return nil
}

func previewRiver(ctx context.Context, gen *quiz.Generator, lang i18n.Language, scanner *bufio.Scanner) error {
	q, err := gen.GenerateRiverQuestion(ctx, lang)
	if err != nil {
		return fmt.Errorf("generate river question: %w", err)
	}
	fmt.Println(q.Text)
	for j, o := range q.Options {
		fmt.Printf("  %d) %s\n", j+1, o.Text)
	}
	choice, ok := readChoice(scanner, len(q.Options))
	if !ok || choice < 0 {
		return nil
	}
	if choice == q.CorrectIndex() {
		fmt.Println("\033[32m✓ " + q.Feedback + "\033[0m")
	} else {
		fmt.Printf("\033[31m✗ Wrong.\033[0m Answer: %s\n", q.Options[q.CorrectIndex()].Text)
	}
	return nil
}

// readChoice reads a 1-based option number. It returns -1 for a blank or
// invalid line and false when input is closed.
func readChoice(scanner *bufio.Scanner, n int) (int, bool) {
	fmt.Print("\nYour answer: ")
	if !scanner.Scan() {
		return 0, false
	}
	v, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil || v < 1 || v > n {
		return -1, true
	}
	return v - 1, true
}
