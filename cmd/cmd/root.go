package cmd

import (
	"github.com/spf13/cobra"
)

const AppName = "gifdump"

func Execute() error {
	rootCmd := &cobra.Command{
		Use:   AppName,
		Short: AppName + " - inspect and extract frames from a GIF file",
	}

	rootCmd.AddCommand(DefineInfoCommand())
	rootCmd.AddCommand(DefineExtractCommand())
	rootCmd.AddCommand(DefineVersionCommand())

	return rootCmd.Execute()
}
