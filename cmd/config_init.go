package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/brogergvhs/tinydesk/internal/config"

	"github.com/spf13/cobra"
)

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the Default config and make it active",
	RunE: func(cmd *cobra.Command, args []string) error {
		defaultPath, err := config.ConfigPathByLabel("Default")
		if err != nil {
			return err
		}

		if _, err := os.Stat(defaultPath); err == nil {
			fmt.Println("Configuration already exists at:")
			fmt.Println("  ", defaultPath)
			fmt.Println("Use `tinydesk config reset` to recreate it.")
			return nil
		}

		def := config.DefaultConfig()

		fmt.Println("Default configuration:")
		def.Print()
		fmt.Println()

		fmt.Printf("Create Default config at %s? [y/N]: ", defaultPath)
		resp, _ := bufio.NewReader(os.Stdin).ReadString('\n')
		resp = strings.TrimSpace(strings.ToLower(resp))

		if resp != "y" && resp != "yes" {
			fmt.Println("Aborted.")
			return nil
		}

		if err := os.MkdirAll(config.ConfigsDir(), 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}

		if err := config.SaveYAML(def, defaultPath); err != nil {
			return fmt.Errorf("failed to write config file: %w", err)
		}

		if err := config.SwitchConfig("Default"); err != nil {
			return fmt.Errorf("failed to set active config: %w", err)
		}

		fmt.Println("Config created and active:", defaultPath)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
}
