package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/abhisek/qgen/internal/enrich"
	"github.com/abhisek/qgen/internal/export"
	"github.com/abhisek/qgen/internal/llm"
	"github.com/abhisek/qgen/internal/qagen"
	"github.com/abhisek/qgen/internal/store"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a validated interview question set",
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := requestFromFlags(cmd)
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		switch format {
		case "text", "markdown", "json":
		default:
			return fmt.Errorf("unknown format %q (want text, markdown or json)", format)
		}

		cfg := llm.ConfigFromEnv()
		if err := cfg.Validate(); err != nil {
			discovered, ok := llm.DiscoverConfig()
			if !ok {
				return fmt.Errorf("no LLM provider configured: %w", err)
			}
			cfg = discovered
		}

		ctx := cmd.Context()

		eventRepo := openEventRepo(cmd)
		provider, err := llm.NewProvider(ctx, cfg, eventRepo)
		if err != nil {
			return err
		}

		if doEnrich, _ := cmd.Flags().GetBool("enrich"); doEnrich {
			subtopics, _ := cmd.Flags().GetStringArray("subtopic")
			snippets, err := enrich.NewStaticSource().Retrieve(ctx, req.Topic, subtopics)
			if err != nil {
				return fmt.Errorf("enrich context: %w", err)
			}
			req.Context = append(req.Context, snippets...)
		}

		pipeline := qagen.New(provider, qagen.DefaultConfig())
		result, err := pipeline.Generate(ctx, req)
		if err != nil {
			return err
		}

		var doc string
		switch format {
		case "json":
			raw, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return fmt.Errorf("encode result: %w", err)
			}
			doc = string(raw) + "\n"
		case "markdown":
			doc = export.Markdown(result)
		default:
			doc = export.Text(result)
		}

		if out, _ := cmd.Flags().GetString("out"); out != "" {
			if err := os.WriteFile(out, []byte(doc), 0o644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			fmt.Printf("Wrote %d questions to %s\n", result.TotalQuestions, out)
			return nil
		}

		fmt.Print(doc)
		return nil
	},
}

// requestFromFlags builds and validates the generation request.
func requestFromFlags(cmd *cobra.Command) (qagen.GenerationRequest, error) {
	topic, _ := cmd.Flags().GetString("topic")
	count, _ := cmd.Flags().GetInt("count")
	genericPct, _ := cmd.Flags().GetInt("generic-pct")
	answers, _ := cmd.Flags().GetBool("answers")
	contextSnips, _ := cmd.Flags().GetStringArray("context")

	difficultyStr, _ := cmd.Flags().GetString("difficulty")
	difficulty, ok := qagen.ParseDifficulty(difficultyStr)
	if !ok {
		return qagen.GenerationRequest{}, fmt.Errorf("unknown difficulty %q (want easy, medium or hard)", difficultyStr)
	}

	typeStrs, _ := cmd.Flags().GetStringSlice("types")
	types := make([]qagen.QuestionType, 0, len(typeStrs))
	for _, ts := range typeStrs {
		qt, ok := qagen.ParseQuestionType(ts)
		if !ok {
			return qagen.GenerationRequest{}, fmt.Errorf("unknown question type %q (want mcq, coding, short or theory)", ts)
		}
		types = append(types, qt)
	}

	req := qagen.GenerationRequest{
		Topic:             topic,
		Context:           contextSnips,
		NumQuestions:      count,
		GenericPercentage: genericPct,
		Difficulty:        difficulty,
		QuestionTypes:     types,
		IncludeAnswers:    answers,
	}
	if err := req.Validate(); err != nil {
		return qagen.GenerationRequest{}, err
	}
	return req, nil
}

// openEventRepo opens the event log, falling back to a no-op repo so a
// broken database never blocks generation.
func openEventRepo(cmd *cobra.Command) store.EventRepo {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: event log disabled: %v\n", err)
		return store.NopEventRepo{}
	}
	s, err := store.Open(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: event log disabled: %v\n", err)
		return store.NopEventRepo{}
	}
	cobra.OnFinalize(func() { s.Close() })
	return s.EventRepo()
}

func init() {
	generateCmd.Flags().StringP("topic", "t", "", "Topic to generate questions about (required)")
	generateCmd.Flags().IntP("count", "n", 5, "Number of questions to generate")
	generateCmd.Flags().StringP("difficulty", "d", "medium", "Difficulty: easy, medium or hard")
	generateCmd.Flags().StringSlice("types", []string{"mcq", "coding", "short", "theory"}, "Allowed question types")
	generateCmd.Flags().Int("generic-pct", 50, "Percentage of generic (conceptual) questions, 0-100")
	generateCmd.Flags().Bool("answers", true, "Include answers for every question")
	generateCmd.Flags().StringArray("context", nil, "Context snippet to ground generation (repeatable)")
	generateCmd.Flags().Bool("enrich", false, "Add context snippets from the built-in knowledge base")
	generateCmd.Flags().StringArray("subtopic", nil, "Subtopic for --enrich lookups (repeatable)")
	generateCmd.Flags().StringP("format", "f", "text", "Output format: text, markdown or json")
	generateCmd.Flags().StringP("out", "o", "", "Write output to a file instead of stdout")

	generateCmd.MarkFlagRequired("topic")
}
