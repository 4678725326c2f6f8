package cmd

import (
	"github.com/spf13/cobra"

	"github.com/toshiksharma271/collab-insight-engine/internal/config"
)

// completionCmd generates shell completion scripts.
func completionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate completion scripts for your shell.

  # Bash (add to ~/.bashrc)
  eval "$(insight completion bash)"

  # Zsh (add to ~/.zshrc)
  eval "$(insight completion zsh)"

  # Fish
  insight completion fish | source

  # PowerShell
  insight completion powershell | Out-String | Invoke-Expression`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		Run: func(cmd *cobra.Command, args []string) {
			switch args[0] {
			case "bash":
				_ = rootCmd.GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				_ = rootCmd.GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				_ = rootCmd.GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				_ = rootCmd.GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
		},
	}

	return cmd
}

// personCompletionFunc completes person ids from the merged dataset.
func personCompletionFunc(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	ds, err := readDataset(config.Load())
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var completions []string
	for _, p := range ds.People {
		completions = append(completions, p.ID+"\t"+p.Name+" ("+p.Team+")")
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}

// teamCompletionFunc completes team names.
func teamCompletionFunc(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	ds, err := readDataset(config.Load())
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return ds.Teams(), cobra.ShellCompDirectiveNoFileComp
}
