package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/Mohsinsiddi/tanglectl/internal/config"
	"github.com/Mohsinsiddi/tanglectl/internal/ui"
	"github.com/spf13/cobra"
)

func newConfigCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long: `Show and change settings stored in config.json.

Every setting can also be given as a TANGLECTL_* environment variable
(e.g. TANGLECTL_RPC_URL) or a global flag, which win over the file.`,
	}
	cmd.AddCommand(newConfigListCmd(rt), newConfigGetCmd(rt), newConfigSetCmd(rt))
	return cmd
}

func newConfigListCmd(rt *runtime) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if asJSON {
				data, err := json.MarshalIndent(rt.cfg, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(data))
				return nil
			}
			pairs := make([][2]string, 0, len(config.Keys()))
			for _, k := range config.Keys() {
				v, err := rt.cfg.Get(k)
				if err != nil {
					return err
				}
				switch {
				case v == "":
					v = ui.Meta("(unset)")
				case k == config.KeyExplorerKey:
					v = ui.Meta("(set)")
				}
				pairs = append(pairs, [2]string{k, v})
			}
			fmt.Fprintln(out, ui.KeyValueBlock("Current Configuration", pairs))
			fmt.Fprintln(out, ui.Meta("Config directory: "+rt.cfg.Dir()))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}

func newConfigGetCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print one setting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := rt.cfg.Get(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}
}

func newConfigSetCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change one setting",
		Long: `Validate and store a setting in config.json.

Examples:
  tanglectl config set rpc_url https://sepolia.example.org
  tanglectl config set network sepolia
  tanglectl config set chain_id 11155111
  tanglectl config set token_address tangle
  tanglectl config set log_level debug`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rt.persistSetting(args[0], args[1]); err != nil {
				return err
			}
			v, _ := rt.cfg.Get(args[0])
			fmt.Fprintln(cmd.OutOrStdout(), ui.Success(fmt.Sprintf("%s set to %q", args[0], v)))
			return nil
		},
	}
}
