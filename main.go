package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/rm-hull/frosted-glass-overlays/cmd"
	"github.com/rm-hull/frosted-glass-overlays/internal"
	"github.com/spf13/cobra"
)

func main() {
	var cfg internal.Config
	var animInput string
	var animOutput string
	var animDelay float64

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	rootCmd := &cobra.Command{
		Use:  "frosted-glass-overlays",
		Long: `Frosted-glass bottom band, icon row and time caption for photos`,
	}

	enhanceCmd := &cobra.Command{
		Use:   "enhance -i <path> [flags]",
		Short: "Apply the frosted-glass band, icons and caption to an image or directory",
		RunE: func(_ *cobra.Command, _ []string) error {
			return cmd.Enhance(cfg)
		},
	}

	enhanceCmd.Flags().StringVarP(&cfg.Input, "input", "i", "", "Input image file or directory")
	enhanceCmd.Flags().StringVarP(&cfg.Output, "output", "o", "", "Output path (default <input>_enhanced<ext>)")
	enhanceCmd.Flags().Float64VarP(&cfg.BlurRadius, "radius", "r", 100, "Gaussian blur radius for the bottom band")
	enhanceCmd.Flags().IntVarP(&cfg.BandHeight, "height", "H", 200, "Height of the blurred bottom band")
	enhanceCmd.Flags().IntVarP(&cfg.IconSize, "iconsize", "s", 128, "Icon square size")
	enhanceCmd.Flags().Float64VarP(&cfg.FontSize, "fontsize", "f", 80, "Caption font size")
	enhanceCmd.Flags().IntVarP(&cfg.Spacing, "spacing", "S", 50, "Spacing between icons")
	enhanceCmd.Flags().StringVarP(&cfg.TimeText, "time", "t", "13:14", "Time text to draw in the band")
	enhanceCmd.Flags().StringVarP(&cfg.IconDir, "icons", "I", "icons", "Directory containing icon images")
	enhanceCmd.Flags().IntVarP(&cfg.Padding, "padding", "p", 50, "Right padding of the time caption")
	enhanceCmd.Flags().IntVarP(&cfg.VerticalOffset, "voffset", "V", 0, "Vertical offset of the time caption")
	enhanceCmd.Flags().StringVar(&cfg.FontPath, "font", "", "Path to a TTF/OTF typeface (default built-in Go Regular, or $FROSTED_FONT)")
	enhanceCmd.Flags().IntVar(&cfg.PoolSize, "workers", 1, "Worker pool size for directory mode")
	if err := enhanceCmd.MarkFlagRequired("input"); err != nil {
		log.Fatal(err)
	}

	animateCmd := &cobra.Command{
		Use:   "animate -i <dir> [--output <path>] [--delay <seconds>]",
		Short: "Assemble a directory of images into an animated PNG",
		RunE: func(_ *cobra.Command, _ []string) error {
			return cmd.Animate(animInput, animOutput, animDelay)
		},
	}

	animateCmd.Flags().StringVarP(&animInput, "input", "i", "", "Directory of frames")
	animateCmd.Flags().StringVarP(&animOutput, "output", "o", "animation.png", "Output APNG path")
	animateCmd.Flags().Float64VarP(&animDelay, "delay", "d", 1.0, "Per-frame delay in seconds")
	if err := animateCmd.MarkFlagRequired("input"); err != nil {
		log.Fatal(err)
	}

	rootCmd.AddCommand(enhanceCmd, animateCmd)
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
