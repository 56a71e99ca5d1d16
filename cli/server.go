package cli

import (
	"fmt"
	"strings"

	"github.com/mobile-next/pageswipe/commands"
	"github.com/mobile-next/pageswipe/daemon"
	"github.com/mobile-next/pageswipe/server"
	"github.com/mobile-next/pageswipe/utils"
	"github.com/spf13/cobra"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Server management commands",
	Long:  `Commands for managing the pageswipe JSON-RPC server.`,
}

var serverStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the pageswipe server",
	Long:  `Starts the JSON-RPC server that tracks gestures for remote surfaces.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		listenAddr, _ := cmd.Flags().GetString("listen")
		if listenAddr == "" {
			listenAddr = appConfig.Listen
		}

		// GetBool cannot fail for defined flags
		enableCORS, _ := cmd.Flags().GetBool("cors")
		enableCORS = enableCORS || appConfig.CORS
		isDaemon, _ := cmd.Flags().GetBool("daemon")

		checkAddr := listenAddr
		if !strings.Contains(checkAddr, ":") {
			checkAddr = ":" + checkAddr
		}

		if !daemon.IsChild() && !utils.IsAddrAvailable(checkAddr) {
			return fmt.Errorf("cannot listen on %s, is another server running?", listenAddr)
		}

		if isDaemon && !daemon.IsChild() {
			spawned, err := daemon.Daemonize()
			if err != nil {
				return fmt.Errorf("failed to start daemon: %w", err)
			}

			if spawned {
				fmt.Printf("Server daemon spawned, attempting to listen on %s\n", listenAddr)
				return nil
			}
		}

		if registry := commands.GetRegistry(); registry != nil {
			server.RegisterShutdownHook("surfaces", func() error {
				registry.CleanupAll()
				return nil
			})
		}

		return server.StartServer(listenAddr, enableCORS)
	},
}

var serverKillCmd = &cobra.Command{
	Use:   "kill",
	Short: "Stop a running pageswipe server",
	Long:  `Connects to the server and sends a shutdown command via JSON-RPC.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// GetString cannot fail for defined flags
		addr, _ := cmd.Flags().GetString("listen")
		if addr == "" {
			addr = appConfig.Listen
		}

		if err := daemon.KillServer(addr); err != nil {
			return err
		}

		fmt.Printf("Server shutdown command sent successfully\n")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)

	serverCmd.AddCommand(serverStartCmd)
	serverCmd.AddCommand(serverKillCmd)

	serverStartCmd.Flags().String("listen", "", "Address to listen on (e.g., 'localhost:12100' or '0.0.0.0:13000')")
	serverStartCmd.Flags().Bool("cors", false, "Enable CORS support")
	serverStartCmd.Flags().BoolP("daemon", "d", false, "Run server in daemon mode (background)")

	serverKillCmd.Flags().String("listen", "", "Address of server to kill (default: server.listen from config)")
}
