// Copyright (c) 2025 Archmagece
// SPDX-License-Identifier: MIT

// Package cmd implements the toolman CLI's command tree.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gizzahub/toolman/pkg/cliutil"
	"github.com/gizzahub/toolman/pkg/clierr"
	"github.com/gizzahub/toolman/pkg/logging"
)

var (
	appVersion string
	verbose    bool
	quiet      bool
)

var rootCmd = &cobra.Command{
	Use:   "toolman",
	Short: "Per-project version manager for command-line developer tools",
	Long: `toolman installs pinned versions of command-line tools per project,
reading the tool list from a toolman.toml manifest and exposing each one as
a shim under ~/.toolman/bin.
` + cliutil.QuickStartHelp(`  # Describe the tools your project needs
  cat > toolman.toml <<'EOF'
  [tools]
  stylua = { github = "JohnnyMorganz/StyLua", version = "0.11.3" }
  EOF

  # Download them and create shims
  toolman install

  # Run a pinned tool through its shim (once ~/.toolman/bin is on PATH)
  stylua --version`),
	Version:       appVersion,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		switch {
		case quiet:
			logging.SetQuiet()
		case verbose:
			logging.SetVerbose()
		}
	},
}

// Execute runs the root command; each subcommand registers itself in its
// own file's init. Called once by main.main() in CLI mode.
func Execute(version string) {
	appVersion = version
	rootCmd.Version = version

	rootCmd.SetUsageTemplate(usageTemplate)
	applyUsageTemplateRecursive(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, clierr.Render(err))
		os.Exit(1)
	}
}

func applyUsageTemplateRecursive(cmd *cobra.Command) {
	cmd.SetUsageTemplate(usageTemplate)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	for _, c := range cmd.Commands() {
		applyUsageTemplateRecursive(c)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "quiet output (warnings and errors only)")

	rootCmd.SetVersionTemplate(`{{with .Name}}{{printf "%s " .}}{{end}}{{printf "version %s" .Version}}
`)
	rootCmd.SetUsageTemplate(usageTemplate)
}

const usageTemplate = `{{if .Runnable}}` + cliutil.ColorGreenBold + `Usage:` + cliutil.ColorReset + `
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}` + cliutil.ColorGreenBold + `Usage:` + cliutil.ColorReset + `
  {{.CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

Aliases:
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

` + cliutil.ColorGreenBold + `Examples:` + cliutil.ColorReset + `
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}{{$cmds := .Commands}}

Available Commands:{{range $cmds}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

` + cliutil.ColorGreenBold + `Flags:` + cliutil.ColorReset + `
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

` + cliutil.ColorGreenBold + `Global Flags:` + cliutil.ColorReset + `
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasHelpSubCommands}}

Additional help topics:{{range .Commands}}{{if .IsAdditionalHelpTopicCommand}}
  {{rpad .CommandPath .CommandPathPadding}} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`
