package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a single question",
	Long: `Answers one question from the indexed documents and exits.
The answer is grounded in retrieved passages; if the documents do not
contain the answer, askdoc says so.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if err := ensureAsk(); err != nil {
		return err
	}

	answer, err := askService.Ask(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("ask failed: %w", err)
	}

	cmd.Println(answer)
	return nil
}
