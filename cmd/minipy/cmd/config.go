package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as TOML",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := appConfig.Encode()
		if err != nil {
			return err
		}
		if path := appConfig.Path(); path != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "# loaded from %s\n", path)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
