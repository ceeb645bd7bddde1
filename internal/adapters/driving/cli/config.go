package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	configfile "github.com/askdoc-labs/askdoc-cli/internal/adapters/driven/config/file"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration commands",
	Long:  `Commands for inspecting and initialising the askdoc configuration file.`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long: `Writes a config file with all defaults filled in, ready to edit.
Refuses to overwrite an existing file.`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

// configFilePath resolves the active config file location.
func configFilePath() (string, error) {
	dir := configDir
	if dir == "" {
		d, err := configfile.DefaultDir()
		if err != nil {
			return "", err
		}
		dir = d
	}
	return filepath.Join(dir, configfile.DefaultFileName), nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	path, err := configFilePath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := configfile.Save(filepath.Dir(path), configfile.Default()); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}

	cmd.Printf("Wrote default config to %s\n", path)
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	path, err := configFilePath()
	if err != nil {
		return err
	}
	cmd.Println(path)
	return nil
}
