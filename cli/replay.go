package cli

import (
	"github.com/mobile-next/pageswipe/commands"
	"github.com/mobile-next/pageswipe/input"
	"github.com/spf13/cobra"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Replay a recorded gesture against a virtual surface",
	Long: `Loads a recording (JSON or plist) of touch, pointer or WebDriver action events,
delivers it to a virtual surface and prints follow offsets, snap decisions and the final offset.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		recording, err := input.LoadRecording(args[0])
		if err != nil {
			return printResponse(commands.NewErrorResponse(err))
		}

		response := commands.ReplayCommand(cmd.Context(), commands.ReplayRequest{
			Recording:         recording,
			Config:            commands.DefaultSwipeConfig(),
			FrameInterval:     appConfig.FrameInterval,
			WaitForAnimations: replayWait,
			Realtime:          replayRealtime,
			IncludeFrames:     replayFrames,
		})

		return printResponse(response)
	},
}

func init() {
	rootCmd.AddCommand(replayCmd)

	replayCmd.Flags().BoolVar(&replayWait, "wait", true, "let each snap animation finish before delivering the next event")
	replayCmd.Flags().BoolVar(&replayRealtime, "realtime", false, "honour the recorded timing between events")
	replayCmd.Flags().BoolVar(&replayFrames, "frames", false, "include animation frames in the output")
}
