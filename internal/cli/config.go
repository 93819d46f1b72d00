package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/taskify/internal/config"
	"github.com/idilsaglam/taskify/internal/ui"
)

func newConfigCmd(f *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration",
	}
	cmd.AddCommand(newConfigInitCmd(f), newConfigShowCmd(f))
	return cmd
}

func newConfigInitCmd(f *rootFlags) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := f.configPath
			if path == "" {
				path = config.GlobalConfigPath()
			}
			if path == "" {
				return fmt.Errorf("no home directory; pass --config")
			}
			if err := config.WriteDefault(path, force); err != nil {
				return err
			}
			theme, _ := ui.Lookup("")
			theme.OK(cmd.OutOrStdout(), "wrote "+path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

func newConfigShowCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.load()
			if err != nil {
				return err
			}
			b, err := config.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
}

func newVersionCmd(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "taskify %s\n", version)
		},
	}
}
