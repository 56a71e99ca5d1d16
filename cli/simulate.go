package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mobile-next/pageswipe/commands"
	"github.com/spf13/cobra"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Simulate a single finger drag on a virtual surface",
	Long:  `Drags one finger from --from to --to over --duration milliseconds and reports where the surface comes to rest.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		x1, y1, err := parsePoint(simulateFrom)
		if err != nil {
			return printResponse(commands.NewErrorResponse(fmt.Errorf("invalid --from: %w", err)))
		}

		x2, y2, err := parsePoint(simulateTo)
		if err != nil {
			return printResponse(commands.NewErrorResponse(fmt.Errorf("invalid --to: %w", err)))
		}

		req := commands.SimulateRequest{
			Width:      simulateWidth,
			Offset:     simulateOffset,
			X1:         x1,
			Y1:         y1,
			X2:         x2,
			Y2:         y2,
			DurationMs: simulateDuration,
		}

		response := commands.SimulateCommand(cmd.Context(), req, commands.DefaultSwipeConfig(), appConfig.FrameInterval, simulateFrames)
		return printResponse(response)
	},
}

// parsePoint parses "x,y"
func parsePoint(s string) (float64, float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected x,y but got %q", s)
	}

	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid x: %w", err)
	}

	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid y: %w", err)
	}

	return x, y, nil
}

func init() {
	rootCmd.AddCommand(simulateCmd)

	simulateCmd.Flags().StringVar(&simulateFrom, "from", "", "start point as x,y")
	simulateCmd.Flags().StringVar(&simulateTo, "to", "", "end point as x,y")
	simulateCmd.Flags().Float64Var(&simulateWidth, "width", 320, "surface width")
	simulateCmd.Flags().Float64Var(&simulateOffset, "offset", 0, "initial surface offset")
	simulateCmd.Flags().Int64Var(&simulateDuration, "duration", 300, "drag duration in milliseconds")
	simulateCmd.Flags().BoolVar(&simulateFrames, "frames", false, "include animation frames in the output")

	_ = simulateCmd.MarkFlagRequired("from")
	_ = simulateCmd.MarkFlagRequired("to")
}
