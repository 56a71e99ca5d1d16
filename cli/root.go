package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mobile-next/pageswipe/commands"
	"github.com/mobile-next/pageswipe/config"
	"github.com/mobile-next/pageswipe/utils"
	"github.com/spf13/cobra"
)

const version = "dev"

// appConfig is the configuration loaded before any command runs
var appConfig = config.Default()

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "pageswipe",
	Short: "Horizontal swipe gesture tracking for paged surfaces",
	Long:  `Tracks single finger horizontal swipes on paged surfaces and decides where the surface snaps.`,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	Version:           version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

func initConfig() {
	utils.SetVerbose(verbose)
}

// loadConfig reads the config file and makes it the default for new
// surfaces and replays
func loadConfig(cmd *cobra.Command, args []string) error {
	path := configPath
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return err
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	warnings, err := cfg.Validate()
	if err != nil {
		return fmt.Errorf("invalid config %s: %w", path, err)
	}
	for _, w := range warnings {
		utils.Warn("%s: %s", path, w)
	}

	appConfig = cfg
	commands.SetDefaultSwipeConfig(cfg.Swipe())
	commands.SetDefaultFrameInterval(cfg.FrameInterval)

	if registry := commands.GetRegistry(); registry != nil {
		if err := registry.Resize(cfg.MaxSurfaces); err != nil {
			return err
		}
	}

	return nil
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: $HOME/.pageswipe/config.ini)")
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// printJson is a helper function to print JSON responses
func printJson(data interface{}) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		utils.Error("%v", err)
		os.Exit(1)
	}
	fmt.Println(string(jsonData))
}

// printResponse prints a command response and turns an error status into an error
func printResponse(response *commands.CommandResponse) error {
	printJson(response)
	if response.Status == "error" {
		return fmt.Errorf("%s", response.Error)
	}
	return nil
}
