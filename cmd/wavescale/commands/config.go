package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/haivivi/wavescale/pkg/cli"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
	Long: `Manage wavescale render profiles.

Configuration is stored in ~/.giztoy/wavescale/config.yaml. A profile holds
render settings; any field left unset falls back to the built-in default
(44100 Hz, 1s per note, amplitude 25000, sine, wav, current directory).
Flags on a render command always win over the profile.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "View full configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := getConfig()
		if err != nil {
			return err
		}
		return outputResult(cfg)
	},
}

var configListProfilesCmd = &cobra.Command{
	Use:     "list-profiles",
	Aliases: []string{"ls"},
	Short:   "List all profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := getConfig()
		if err != nil {
			return err
		}
		names := cfg.ListProfiles()
		if len(names) == 0 {
			fmt.Println("No profiles configured")
			fmt.Println("Create one with: wavescale config add-profile <name>")
			return nil
		}
		for _, name := range names {
			marker := "  "
			if name == cfg.CurrentProfile {
				marker = "* "
			}
			fmt.Printf("%s%s\n", marker, name)
		}
		return nil
	},
}

var configAddProfileCmd = &cobra.Command{
	Use:   "add-profile <name>",
	Short: "Add or replace a profile",
	Long: `Add a profile from the given render flags. Existing profiles with the
same name are replaced.

Examples:
  wavescale config add-profile lofi --sample-rate 8000 --amplitude 12000
  wavescale config add-profile chip --shape square --format raw --out chip/`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := getConfig()
		if err != nil {
			return err
		}
		name := args[0]
		p := flagProfile(cmd)
		// Reject settings a render would refuse.
		eff := builtinProfile
		applyFlags(cmd, &eff)
		if _, err := toSettings(eff); err != nil {
			return err
		}
		if err := cfg.AddProfile(name, &p); err != nil {
			return err
		}
		cli.PrintSuccess("Profile '%s' saved to %s", name, cfg.Path())
		return nil
	},
}

var configUseProfileCmd = &cobra.Command{
	Use:   "use-profile <name>",
	Short: "Set the default profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := getConfig()
		if err != nil {
			return err
		}
		name := args[0]
		if err := cfg.UseProfile(name); err != nil {
			return err
		}
		cli.PrintSuccess("Switched to profile '%s'", name)
		return nil
	},
}

var configDeleteProfileCmd = &cobra.Command{
	Use:   "delete-profile <name>",
	Short: "Delete a profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := getConfig()
		if err != nil {
			return err
		}
		name := args[0]
		if err := cfg.DeleteProfile(name); err != nil {
			return err
		}
		cli.PrintSuccess("Profile '%s' deleted", name)
		return nil
	},
}

func init() {
	addRenderFlags(configAddProfileCmd)

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configListProfilesCmd)
	configCmd.AddCommand(configAddProfileCmd)
	configCmd.AddCommand(configUseProfileCmd)
	configCmd.AddCommand(configDeleteProfileCmd)
}
