package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"cudactl/internal/commands"
	"cudactl/internal/output"
)

var jsonFlag bool

var rootCmd = &cobra.Command{
	Use:   "cudactl",
	Short: "A CLI tool to manage installed CUDA toolkit versions",
	Long:  "Switch between installed CUDA toolkit versions by driving the OS alternatives link groups and shell environment",
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonFlag, "json", false, "Output in JSON format")

	rootCmd.AddCommand(commands.RegisterCmd)
	rootCmd.AddCommand(commands.SwitchCmd)
	rootCmd.AddCommand(commands.ListCmd)
	rootCmd.AddCommand(commands.CurrentCmd)
	rootCmd.AddCommand(commands.EnvCmd)
	rootCmd.AddCommand(commands.DoctorCmd)
	rootCmd.AddCommand(commands.VersionCmd)
	rootCmd.AddCommand(commands.ServeCmd)
	rootCmd.AddCommand(commands.CompletionCmd)

	rootCmd.Run = func(cmd *cobra.Command, args []string) {
		output.JSONMode = jsonFlag

		// If --json flag, output the toolkit list in JSON
		if jsonFlag {
			commands.RunList()
			return
		}

		// If stdin is a TTY, open the interactive picker
		if term.IsTerminal(int(os.Stdin.Fd())) {
			commands.RunSwitch(nil)
			return
		}

		// Non-TTY fallback: plain list
		commands.RunList()
	}
}

func main() {
	// Propagate --json flag before execution
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		output.JSONMode = jsonFlag
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
