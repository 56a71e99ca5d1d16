package cli

import (
	"fmt"
	"os"

	"github.com/mobile-next/pageswipe/commands"
	"github.com/mobile-next/pageswipe/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration commands",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printResponse(commands.NewSuccessResponse(map[string]interface{}{
			"swipe": map[string]interface{}{
				"minSwipeLength": appConfig.MinSwipeLength,
				"snapPosition":   appConfig.SnapPosition,
			},
			"animation": map[string]interface{}{
				"duration":      appConfig.AnimationDuration.String(),
				"easing":        appConfig.Easing,
				"frameInterval": appConfig.FrameInterval.String(),
			},
			"server": map[string]interface{}{
				"listen":      appConfig.Listen,
				"cors":        appConfig.CORS,
				"maxSurfaces": appConfig.MaxSurfaces,
			},
		}))
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			var err error
			path, err = config.DefaultPath()
			if err != nil {
				return err
			}
		}

		force, _ := cmd.Flags().GetBool("force")
		if _, err := os.Stat(path); err == nil && !force {
			return printResponse(commands.NewErrorResponse(fmt.Errorf("%s already exists, use --force to overwrite", path)))
		}

		if err := config.Default().Save(path); err != nil {
			return printResponse(commands.NewErrorResponse(err))
		}

		return printResponse(commands.NewSuccessResponse(map[string]interface{}{
			"message": fmt.Sprintf("Wrote %s", path),
		}))
	},
}

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)

	configInitCmd.Flags().Bool("force", false, "overwrite an existing file")
}
