package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cudactl/internal/config"
)

// RegisterCmd represents the register command
var RegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Register installed toolkits with the alternatives system",
	Long:  "Walk the toolkit table and register every installed CUDA version as an alternatives candidate for the cuda and cuda-12 link groups",
	Run: func(cmd *cobra.Command, args []string) {
		RunRegister()
	},
}

// SwitchCmd represents the switch command
var SwitchCmd = &cobra.Command{
	Use:               "switch [index]",
	Aliases:           []string{"use"},
	Short:             "Switch the active CUDA toolkit",
	Long:              "Point the cuda and cuda-12 alternatives links at the toolkit with the given table index. Without an index, opens an interactive picker on a terminal.",
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeToolkitIndexes,
	Run: func(cmd *cobra.Command, args []string) {
		RunSwitch(args)
	},
}

// ListCmd represents the list command
var ListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List configured toolkit versions",
	Long:    "List every toolkit in the table with its index, version, install root, and install state",
	Run: func(cmd *cobra.Command, args []string) {
		RunList()
	},
}

// CurrentCmd represents the current command
var CurrentCmd = &cobra.Command{
	Use:   "current",
	Short: "Show the active toolkit",
	Long:  "Show the install root each alternatives link group currently points at",
	Run: func(cmd *cobra.Command, args []string) {
		RunCurrent()
	},
}

// EnvCmd represents the env command
var EnvCmd = &cobra.Command{
	Use:   "env",
	Short: "Print shell environment setup",
	Long: `Print the shell lines that prepend the active toolkit's bin and lib64
directories to PATH and LD_LIBRARY_PATH. Add to your shell rc:

  # Bash / Zsh
  eval "$(cudactl env)"

  # Fish
  cudactl env --shell fish | source`,
	Run: func(cmd *cobra.Command, args []string) {
		shell, _ := cmd.Flags().GetString("shell")
		RunEnv(shell)
	},
}

func init() {
	EnvCmd.Flags().String("shell", "bash", "Shell syntax to emit (bash, zsh, fish)")
	_ = EnvCmd.RegisterFlagCompletionFunc("shell", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"bash", "zsh", "fish"}, cobra.ShellCompDirectiveNoFileComp
	})
}

// DoctorCmd represents the doctor command
var DoctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run system diagnostics",
	Long:  "Check the alternatives utility, the toolkit table, install roots, link targets, and shell environment",
	Run: func(cmd *cobra.Command, args []string) {
		RunDoctor()
	},
}

// VersionCmd represents the version command
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show cudactl version",
	Long:  "Show the version of cudactl",
	Run: func(cmd *cobra.Command, args []string) {
		RunVersion()
	},
}

// ServeCmd represents the serve command for MCP server mode
var ServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start MCP server mode",
	Long:  "Start cudactl as an MCP server over stdio, exposing the toolkit list and the register/switch operations as tools",
	Run: func(cmd *cobra.Command, args []string) {
		RunServe()
	},
}

// CompletionCmd generates shell completion scripts
var CompletionCmd = &cobra.Command{
	Use:    "completion [bash|zsh|fish|powershell]",
	Short:  "Generate shell completion script",
	Hidden: true,
	Long: `Generate shell completion script for the specified shell.

Usage examples:
  # Bash
  source <(cudactl completion bash)

  # Zsh
  source <(cudactl completion zsh)

  # Fish
  cudactl completion fish | source`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return cmd.Root().GenBashCompletionV2(os.Stdout, true)
		case "zsh":
			return cmd.Root().GenZshCompletion(os.Stdout)
		case "fish":
			return cmd.Root().GenFishCompletion(os.Stdout, true)
		case "powershell":
			return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
		}
		return fmt.Errorf("unsupported shell: %s", args[0])
	},
}

// completeToolkitIndexes provides dynamic completion for toolkit indexes
func completeToolkitIndexes(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	table, err := config.Load()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var indexes []string
	for _, entry := range table.Entries() {
		indexes = append(indexes, fmt.Sprintf("%s\tCUDA %s", entry.Index, entry.Version))
	}
	return indexes, cobra.ShellCompDirectiveNoFileComp
}
