package cmd

import (
	"fmt"
	"time"

	"helperkit/core/config"
	"helperkit/core/logger"
	"helperkit/core/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	scrollFrom     float64
	scrollDuration time.Duration
	scrollFrame    time.Duration
)

// scrollCmd simulates a smooth scroll to the top of a viewport
var scrollCmd = &cobra.Command{
	Use:   "scroll",
	Short: "Simulate a smooth scroll to the top and log every frame",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logg.Sync()

		frame := cfg.Helpers.ScrollFrame()
		if scrollFrame > 0 {
			frame = scrollFrame
		}

		v := utils.NewViewport(scrollFrom)
		frames := 0
		start := time.Now()
		err = utils.ScrollToTop(cmd.Context(), v, scrollDuration,
			utils.WithFrameInterval(frame),
			utils.WithFrameHook(func(offset float64) {
				frames++
				logg.Debug("Scroll frame", zap.Int("frame", frames), zap.Float64("offset", offset))
			}),
		)
		if err != nil {
			return err
		}

		logg.Info("Reached top",
			zap.Int("frames", frames),
			zap.Duration("elapsed", time.Since(start)),
		)
		fmt.Fprintf(cmd.OutOrStdout(), "frames=%d offset=%g\n", frames, v.ScrollOffset())
		return nil
	},
}

func init() {
	scrollCmd.Flags().Float64Var(&scrollFrom, "from", 1000, "Starting scroll offset")
	scrollCmd.Flags().DurationVar(&scrollDuration, "duration", 300*time.Millisecond, "Total scroll duration")
	scrollCmd.Flags().DurationVar(&scrollFrame, "frame", 0, "Frame interval (defaults to HELPERS_SCROLL_FRAME_MS)")
	RootCmd.AddCommand(scrollCmd)
}
