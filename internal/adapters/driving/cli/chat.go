package cli

import (
	"bufio"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/askdoc-labs/askdoc-cli/internal/core/domain"
)

// Chat styles.
var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	answerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive question session",
	Long: `Starts an interactive session where follow-up questions can refer to
earlier exchanges ("what about X?", "and for part-time staff?").

Special inputs:
  history          show the conversation so far
  clear            forget the conversation
  exit, quit       leave the session
  debug: <text>    show the passages retrieval would use, without answering
  simple: <text>   answer without the conversation history`,
	Args: cobra.NoArgs,
	RunE: runChat,
}

func init() {
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, _ []string) error {
	if err := ensureAsk(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, noticeStyle.Render("askdoc chat - type 'exit' to leave, 'history' to review, 'clear' to start over"))

	// The conversation lives here, in the caller. The answer pipeline
	// never stores it; each call receives a snapshot.
	var history domain.History

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		fmt.Fprint(out, promptStyle.Render("you> "))
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		switch strings.ToLower(input) {
		case "exit", "quit":
			fmt.Fprintln(out, noticeStyle.Render("bye"))
			return nil
		case "history":
			printHistory(cmd, &history)
			continue
		case "clear":
			history.Clear()
			fmt.Fprintln(out, noticeStyle.Render("conversation cleared"))
			continue
		}

		// A per-question failure must not end the session.
		if err := answerOne(cmd, &history, input); err != nil {
			fmt.Fprintln(out, errorStyle.Render(fmt.Sprintf("error: %v", err)))
		}
	}
}

// answerOne handles a single chat input, including the debug: and
// simple: prefixes.
func answerOne(cmd *cobra.Command, history *domain.History, input string) error {
	out := cmd.OutOrStdout()
	ctx := cmd.Context()

	switch {
	case strings.HasPrefix(input, "simple:"):
		// One-off question, outside the conversation.
		question := strings.TrimSpace(strings.TrimPrefix(input, "simple:"))
		answer, err := askService.Ask(ctx, question)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, answerStyle.Render(answer))
		return nil

	case strings.HasPrefix(input, "debug:"):
		// Inspection only: show what retrieval would feed the model,
		// without answering or touching the conversation.
		question := strings.TrimSpace(strings.TrimPrefix(input, "debug:"))
		return printRetrieved(cmd, question)

	default:
		return askInConversation(cmd, history, input)
	}
}

// askInConversation answers with history threaded in and records the
// exchange afterwards.
func askInConversation(cmd *cobra.Command, history *domain.History, question string) error {
	answer, err := askService.AskWithHistory(cmd.Context(), question, history.Turns())
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), answerStyle.Render(answer))
	history.Append(question, answer)
	return nil
}

// printRetrieved shows the passages retrieval would feed the model.
func printRetrieved(cmd *cobra.Command, question string) error {
	if err := ensureRetrieval(); err != nil {
		return err
	}

	results, err := retrievalService.Retrieve(cmd.Context(), question, cfg.Retrieval.TopK)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, noticeStyle.Render(fmt.Sprintf("retrieved %d passage(s):", len(results))))
	for i := range results {
		source := results[i].Chunk.Source
		if source == "" {
			source = "unknown"
		}
		line := fmt.Sprintf("  [%d] %s (%.2f) %s",
			i+1, filepath.Base(source), results[i].Score, snippet(results[i].Chunk.Content, 100))
		fmt.Fprintln(out, noticeStyle.Render(line))
	}
	return nil
}

// printHistory renders the conversation so far.
func printHistory(cmd *cobra.Command, history *domain.History) {
	out := cmd.OutOrStdout()
	if history.Len() == 0 {
		fmt.Fprintln(out, noticeStyle.Render("no conversation yet"))
		return
	}

	for _, turn := range history.Turns() {
		switch turn.Role {
		case domain.RoleUser:
			fmt.Fprintln(out, promptStyle.Render("you: ")+turn.Content)
		case domain.RoleAssistant:
			fmt.Fprintln(out, answerStyle.Render("askdoc: "+turn.Content))
		}
	}
}
