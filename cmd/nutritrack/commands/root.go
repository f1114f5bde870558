// ABOUTME: Root CLI command with global flags and subcommand registration
// ABOUTME: Defines the nutritrack command tree and output options
package commands

import (
	"github.com/spf13/cobra"
)

var (
	verbose bool
	quiet   bool
	format  string
)

const banner = `
███╗   ██╗██╗   ██╗████████╗██████╗ ██╗████████╗██████╗  █████╗  ██████╗██╗  ██╗
████╗  ██║██║   ██║╚══██╔══╝██╔══██╗██║╚══██╔══╝██╔══██╗██╔══██╗██╔════╝██║ ██╔╝
██╔██╗ ██║██║   ██║   ██║   ██████╔╝██║   ██║   ██████╔╝███████║██║     █████╔╝
██║╚██╗██║██║   ██║   ██║   ██╔══██╗██║   ██║   ██╔══██╗██╔══██║██║     ██╔═██╗
██║ ╚████║╚██████╔╝   ██║   ██║  ██║██║   ██║   ██║  ██║██║  ██║╚██████╗██║  ██╗
╚═╝  ╚═══╝ ╚═════╝    ╚═╝   ╚═╝  ╚═╝╚═╝   ╚═╝   ╚═╝  ╚═╝╚═╝  ╚═╝ ╚═════╝╚═╝  ╚═╝
`

// NewRootCmd creates the root command with all subcommands
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nutritrack",
		Short: "Track meals, plan weeks, and get cooking guidance",
		Long: banner + `
NutriTrack is a nutrition assistant: log meals in plain text, look up
and extend the food reference, search a recipe corpus, generate weekly
meal plans against macro targets, and build grocery lists.

Data syncs across devices via Charm cloud; meals are logged locally
in SQLite.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Minimal output")
	cmd.PersistentFlags().StringVar(&format, "format", "auto", "Output format: auto, text, json")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.AddCommand(NewLogCmd())
	cmd.AddCommand(NewTodayCmd())
	cmd.AddCommand(NewFoodsCmd())
	cmd.AddCommand(NewRecipesCmd())
	cmd.AddCommand(NewCookCmd())
	cmd.AddCommand(NewPlanCmd())
	cmd.AddCommand(NewProfileCmd())
	cmd.AddCommand(NewGroceryCmd())
	cmd.AddCommand(NewIndexCmd())
	cmd.AddCommand(NewMCPCmd())
	cmd.AddCommand(NewSyncCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
