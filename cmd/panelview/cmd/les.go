package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pcbfab/panelview/pkg/les"
	"github.com/pcbfab/panelview/pkg/render"
)

var lesCmd = &cobra.Command{
	Use:   "les",
	Short: "LES test point file operations",
	Long:  `Commands for working with LES test point files`,
}

var lesInfoCmd = &cobra.Command{
	Use:   "info <les_file>",
	Short: "Show LES file summary",
	Long: `Display a summary of a LES file: header fields, record counts,
point totals per style, and the per-image point bounds.`,
	Args: cobra.ExactArgs(1),
	RunE: runLESInfo,
}

var lesPointsCmd = &cobra.Command{
	Use:   "points <les_file>",
	Short: "List points",
	Long: `List the points of a LES file, optionally restricted to one layer,
one image, or one point type (signal, drill, bridge, power, edge, or the
code letter).`,
	Args: cobra.ExactArgs(1),
	RunE: runLESPoints,
}

var lesNetsCmd = &cobra.Command{
	Use:   "nets <les_file>",
	Short: "List nets",
	Long:  `List the net headers of a LES file with their point counts.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runLESNets,
}

var lesBoundsCmd = &cobra.Command{
	Use:   "bounds <les_file>",
	Short: "Show visible point bounds",
	Long: `Compute the bounding box of the visible points the way the viewer
fits its canvas: the layer mode selects the visible layers, and the steps
and outline toggles add the panelization repetitions and the board outline.`,
	Args: cobra.ExactArgs(1),
	RunE: runLESBounds,
}

var (
	lesPointsLayer int
	lesPointsImage int
	lesPointsType  string

	lesBoundsSteps   bool
	lesBoundsOutline bool
	lesBoundsMode    string
)

func init() {
	rootCmd.AddCommand(lesCmd)
	lesCmd.AddCommand(lesInfoCmd)
	lesCmd.AddCommand(lesPointsCmd)
	lesCmd.AddCommand(lesNetsCmd)
	lesCmd.AddCommand(lesBoundsCmd)

	lesPointsCmd.Flags().IntVar(&lesPointsLayer, "layer", -1, "only points on this layer")
	lesPointsCmd.Flags().IntVar(&lesPointsImage, "image", -1, "only points of this image")
	lesPointsCmd.Flags().StringVar(&lesPointsType, "type", "", "only points of this type")

	lesBoundsCmd.Flags().BoolVar(&lesBoundsSteps, "steps", true, "include panelization repetitions")
	lesBoundsCmd.Flags().BoolVar(&lesBoundsOutline, "outline", true, "include the board outline")
	lesBoundsCmd.Flags().StringVar(&lesBoundsMode, "mode", "", "layer mode: top, bottom, or both (default from settings)")
}

func runLESInfo(cmd *cobra.Command, args []string) error {
	filename := args[0]
	doc, err := les.ParseFile(filename)
	if err != nil {
		return fmt.Errorf("error parsing LES file: %w", err)
	}

	fmt.Printf("File: %s\n", filename)
	fmt.Printf("Test: %s\n", doc.Test)
	fmt.Printf("Unit: %s (scale %g)\n", doc.Unit, doc.Scale)
	fmt.Printf("Layers: %d\n", doc.CountOfLayer)
	fmt.Printf("Apertures: %d\n", len(doc.Apertures))
	fmt.Printf("Nets: %d\n", len(doc.Nets))
	fmt.Printf("Steps: %d\n", len(doc.Steps))

	var regular, global, local, test int
	for _, p := range doc.Points {
		switch p.Style {
		case les.StyleGlobal:
			global++
		case les.StyleLocal:
			local++
		default:
			regular++
		}
		if p.IsTest {
			test++
		}
	}
	fmt.Printf("Points: %d (%d test)\n", len(doc.Points), test)
	fmt.Printf("  Regular: %d\n", regular)
	fmt.Printf("  Global tooling: %d\n", global)
	fmt.Printf("  Local tooling: %d\n", local)
	fmt.Printf("Outline polylines: %d\n", len(doc.Outline))

	ids := make([]int, 0, len(doc.Images))
	for id := range doc.Images {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	counts := make(map[int]int)
	for _, p := range doc.Points {
		counts[p.Image]++
	}

	fmt.Println()
	fmt.Printf("%-6s %7s  %s\n", "Image", "Points", "Bounds (mm)")
	fmt.Println("──────────────────────────────────────────────────")
	for _, id := range ids {
		bounds := "empty"
		if ib := doc.Images[id]; !ib.Box.IsEmpty() {
			bounds = fmt.Sprintf("(%.2f, %.2f) - (%.2f, %.2f)",
				ib.Box.Min.X, ib.Box.Min.Y, ib.Box.Max.X, ib.Box.Max.Y)
		}
		fmt.Printf("%-6d %7d  %s\n", id, counts[id], bounds)
	}
	return nil
}

// matchesType reports whether a point type matches the --type flag value,
// given as a full name or its leading code letter.
func matchesType(t les.PointType, flag string) bool {
	name := t.String()
	if strings.EqualFold(name, flag) {
		return true
	}
	return len(flag) == 1 && strings.EqualFold(name[:1], flag)
}

func runLESPoints(cmd *cobra.Command, args []string) error {
	doc, err := les.ParseFile(args[0])
	if err != nil {
		return fmt.Errorf("error parsing LES file: %w", err)
	}

	fmt.Printf("%-8s %-8s %10s %10s %6s %-7s %5s %6s %s\n",
		"Ident", "Style", "X", "Y", "Layer", "Type", "Net", "Image", "Label")
	fmt.Println("────────────────────────────────────────────────────────────────────────")

	shown := 0
	for _, p := range doc.Points {
		if lesPointsLayer >= 0 && p.Layer != lesPointsLayer {
			continue
		}
		if lesPointsImage >= 0 && p.Image != lesPointsImage {
			continue
		}
		if lesPointsType != "" && !matchesType(p.Type, lesPointsType) {
			continue
		}
		fmt.Printf("%-8d %-8s %10.3f %10.3f %6d %-7s %5d %6d %s\n",
			p.Identifier, p.Style, p.X, p.Y, p.Layer, p.Type,
			p.Net.Index, p.Image, p.PanelImageName)
		shown++
	}
	fmt.Printf("\n%d of %d points\n", shown, len(doc.Points))
	return nil
}

func runLESNets(cmd *cobra.Command, args []string) error {
	doc, err := les.ParseFile(args[0])
	if err != nil {
		return fmt.Errorf("error parsing LES file: %w", err)
	}

	fmt.Printf("File: %s (%d nets)\n\n", args[0], len(doc.Nets))
	fmt.Printf("%-6s %6s %6s %7s\n", "Net", "Image", "Plain", "Points")
	fmt.Println("────────────────────────────")
	for _, n := range doc.Nets {
		fmt.Printf("%-6d %6d %6v %7d\n", n.Index, n.Image, n.IsPlain, len(n.Points))
	}
	return nil
}

func runLESBounds(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	doc, err := les.ParseFile(args[0])
	if err != nil {
		return fmt.Errorf("error parsing LES file: %w", err)
	}

	mode := lesBoundsMode
	if mode == "" {
		mode = cfg.LayerMode
	}

	f := render.Filters{
		Layers:  render.LayersForMode(doc, mode),
		Steps:   lesBoundsSteps,
		Outline: lesBoundsOutline,
	}
	// Unset toggles fall back to the settings file.
	if !cmd.Flags().Changed("steps") {
		f.Steps = cfg.ShowSteps
	}
	if !cmd.Flags().Changed("outline") {
		f.Outline = cfg.ShowOutline
	}

	var visible []int
	for layer, on := range f.Layers {
		if on {
			visible = append(visible, layer)
		}
	}
	sort.Ints(visible)
	fmt.Printf("Mode: %s (layers %v)\n", mode, visible)

	box, ok := render.PointBounds(doc, f)
	if !ok {
		fmt.Println("No visible content.")
		return nil
	}
	printBounds(box)
	return nil
}
