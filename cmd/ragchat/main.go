package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/joakimAbdinurIusuf/claudecode-ragchatbot/internal/provider"
	"github.com/joakimAbdinurIusuf/claudecode-ragchatbot/rag"
	"github.com/joakimAbdinurIusuf/claudecode-ragchatbot/session"
	"github.com/joakimAbdinurIusuf/claudecode-ragchatbot/store"
)

var rootCmd = &cobra.Command{
	Use:   "ragchat",
	Short: "Chat about course materials with tool-assisted retrieval",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().String("model", string(provider.DefaultModel), "Anthropic model to use")
	rootCmd.PersistentFlags().Int("max-history", session.DefaultMaxMessages, "messages retained per session")
	rootCmd.PersistentFlags().Int("max-results", store.DefaultMaxResults, "hits per content search")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")

	viper.SetEnvPrefix("RAGCHAT")
	viper.AutomaticEnv()
	_ = viper.BindPFlags(rootCmd.PersistentFlags())
	_ = viper.BindEnv("max-history", "RAGCHAT_MAX_HISTORY")
	_ = viper.BindEnv("max-results", "RAGCHAT_MAX_RESULTS")
	_ = viper.BindEnv("log-level", "RAGCHAT_LOG_LEVEL")
}

func runChat(ctx context.Context) error {
	level, err := zerolog.ParseLevel(viper.GetString("log-level"))
	if err != nil {
		level = zerolog.InfoLevel
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)

	// Basic env check (SDK also reads API key)
	if os.Getenv("ANTHROPIC_API_KEY") == "" {
		return fmt.Errorf("missing ANTHROPIC_API_KEY; export it before running")
	}

	system, err := rag.New(provider.NewAnthropicClient(), rag.Config{
		Model:      anthropic.Model(viper.GetString("model")),
		MaxHistory: viper.GetInt("max-history"),
		MaxResults: viper.GetInt("max-results"),
	})
	if err != nil {
		return err
	}
	if err := seedDemoCourses(system); err != nil {
		return err
	}
	sessionID := system.NewSession()

	// Graceful shutdown on Ctrl-C (SIGINT) / SIGTERM
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	sigch := make(chan os.Signal, 1)
	signal.Notify(sigch, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigch)
	go func() {
		<-sigch
		fmt.Println("\nExiting...")
		cancel()
	}()

	scanner := bufio.NewScanner(os.Stdin)
	fmt.Printf("Ask about the course materials (%d courses indexed, Ctrl-C to quit)\n", system.Store.CourseCount())

	// stdin reader goroutine -> lines into channel
	inputCh := make(chan string)
	go func() {
		for scanner.Scan() {
			inputCh <- scanner.Text()
		}
		close(inputCh)
	}()

	for {
		fmt.Print("[94mYou[0m: ")
		var (
			query string
			ok    bool
		)
		select {
		case <-ctx.Done():
			if err := scanner.Err(); err != nil {
				fmt.Fprintf(os.Stderr, "warning: stdin read error: %v\n", err)
			}
			return nil
		case query, ok = <-inputCh:
			if !ok {
				return scanner.Err()
			}
		}
		if strings.TrimSpace(query) == "" {
			continue
		}

		answer, sources := system.Query(ctx, sessionID, query)
		fmt.Printf("[93mAssistant[0m: %s\n", answer)
		for _, src := range sources {
			if src.Link != "" {
				fmt.Printf("  source: %s (%s)\n", src.Label, src.Link)
			} else {
				fmt.Printf("  source: %s\n", src.Label)
			}
		}
	}
}

// seedDemoCourses indexes a small built-in course set so the chat is usable
// without a separate ingestion step.
func seedDemoCourses(system *rag.System) error {
	course := store.Course{
		Title:      "Introduction to Machine Learning",
		Link:       "https://example.com/ml-course",
		Instructor: "Dr. Jane Smith",
		Lessons: []store.Lesson{
			{Number: 1, Title: "ML Basics", Link: "https://example.com/ml-course/lesson-1"},
			{Number: 2, Title: "Supervised Learning", Link: "https://example.com/ml-course/lesson-2"},
			{Number: 3, Title: "Unsupervised Learning", Link: "https://example.com/ml-course/lesson-3"},
		},
	}
	chunks := []store.Chunk{
		{Content: "Machine learning is a subset of artificial intelligence that focuses on algorithms that can learn from data.", CourseTitle: course.Title, LessonNumber: 1, Index: 0},
		{Content: "Supervised learning uses labeled training data to learn a mapping function from input variables to output variables.", CourseTitle: course.Title, LessonNumber: 2, Index: 0},
		{Content: "Unsupervised learning finds hidden patterns in data without using labeled examples.", CourseTitle: course.Title, LessonNumber: 3, Index: 0},
	}
	return system.AddCourse(course, chunks)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
