package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pcbfab/panelview/internal/config"
	"github.com/pcbfab/panelview/pkg/geom"
)

var (
	// Global flags
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "panelview",
	Short: "PanelView - LES and eMAP panel drawing tools",
	Long: `PanelView inspects the two legacy file formats used on PCB
panelization lines:
  - LES test point files (drill/test points, apertures, nets, step rules)
  - eMAP XML panel drawings (step trees with edges, repeats, barcodes)

Examples:
  panelview les info board.les             # Show LES file summary
  panelview les points board.les --layer 1 # List top layer points
  panelview emap steps panel.xml           # List drawing steps
  panelview emap bounds panel.xml --step pcs`,
	Version: "0.9.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML settings file (default: built-in settings)")
}

// loadConfig resolves the settings for a command run. An unset --config
// flag yields the built-in defaults.
func loadConfig() (*config.Config, error) {
	return config.Load(configPath)
}

// printBounds prints a bounding box as min/max/size lines.
func printBounds(box geom.BoundingBox) {
	fmt.Printf("Min:  (%.3f, %.3f) mm\n", box.Min.X, box.Min.Y)
	fmt.Printf("Max:  (%.3f, %.3f) mm\n", box.Max.X, box.Max.Y)
	fmt.Printf("Size: %.3f x %.3f mm\n", box.Width(), box.Height())
}
