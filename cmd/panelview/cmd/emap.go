package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pcbfab/panelview/pkg/emap"
	"github.com/pcbfab/panelview/pkg/render"
)

var emapCmd = &cobra.Command{
	Use:   "emap",
	Short: "eMAP panel drawing operations",
	Long:  `Commands for working with eMAP XML panel drawings`,
}

var emapInfoCmd = &cobra.Command{
	Use:   "info <emap_file>",
	Short: "Show drawing summary",
	Long: `Display a summary of an eMAP drawing: job, declared size, start
step, and the element counts of every step.`,
	Args: cobra.ExactArgs(1),
	RunE: runEMAPInfo,
}

var emapStepsCmd = &cobra.Command{
	Use:   "steps <emap_file>",
	Short: "List steps",
	Long:  `List the steps of an eMAP drawing with their placement frames and child repeats.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runEMAPSteps,
}

var emapBoundsCmd = &cobra.Command{
	Use:   "bounds <emap_file>",
	Short: "Show resolved step bounds",
	Long: `Resolve a step of an eMAP drawing to world coordinates and print
its bounding box. Repeats are followed recursively; barcode boxes are
excluded unless requested.`,
	Args: cobra.ExactArgs(1),
	RunE: runEMAPBounds,
}

var (
	emapBoundsStep string
	emapNoEdges    bool
	emapNoRepeats  bool
	emapBarcodes   bool
)

func init() {
	rootCmd.AddCommand(emapCmd)
	emapCmd.AddCommand(emapInfoCmd)
	emapCmd.AddCommand(emapStepsCmd)
	emapCmd.AddCommand(emapBoundsCmd)

	emapBoundsCmd.Flags().StringVar(&emapBoundsStep, "step", "", "step to resolve (default: the start step)")
	emapBoundsCmd.Flags().BoolVar(&emapNoEdges, "no-edges", false, "exclude outline edges")
	emapBoundsCmd.Flags().BoolVar(&emapNoRepeats, "no-repeats", false, "do not descend into repeats")
	emapBoundsCmd.Flags().BoolVar(&emapBarcodes, "barcodes", false, "include barcode boxes")
}

// sortedStepNames returns the drawing's step names in stable order.
func sortedStepNames(d *emap.Drawing) []string {
	names := make([]string, 0, len(d.Steps))
	for name := range d.Steps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func runEMAPInfo(cmd *cobra.Command, args []string) error {
	filename := args[0]
	d, err := emap.ParseFile(filename)
	if err != nil {
		return fmt.Errorf("error parsing eMAP file: %w", err)
	}

	fmt.Printf("File: %s\n", filename)
	fmt.Printf("Job: %s\n", d.Job)
	fmt.Printf("Size: %.2f x %.2f mm\n", d.Width, d.Height)
	fmt.Printf("Start step: %s\n", d.StartStep)
	fmt.Printf("Steps: %d\n\n", len(d.Steps))

	fmt.Printf("%-20s %-7s %6s %8s %9s\n", "Step", "Type", "Edges", "Repeats", "Barcodes")
	fmt.Println("──────────────────────────────────────────────────────")
	for _, name := range sortedStepNames(d) {
		st := d.Steps[name]
		barcodes := 0
		for _, layer := range st.Layers {
			barcodes += len(layer.Barcodes)
		}
		fmt.Printf("%-20s %-7s %6d %8d %9d\n",
			st.Name, st.Type, len(st.Edges), len(st.Repeats), barcodes)
	}
	return nil
}

func runEMAPSteps(cmd *cobra.Command, args []string) error {
	d, err := emap.ParseFile(args[0])
	if err != nil {
		return fmt.Errorf("error parsing eMAP file: %w", err)
	}

	fmt.Printf("%-20s %-7s %-22s %-19s %s\n", "Step", "Type", "Position", "Size", "Repeats")
	fmt.Println("────────────────────────────────────────────────────────────────────────────")
	for _, name := range sortedStepNames(d) {
		st := d.Steps[name]
		children := make([]string, 0, len(st.Repeats))
		for _, rpt := range st.Repeats {
			children = append(children, rpt.Step)
		}
		fmt.Printf("%-20s %-7s %-22s %-19s %s\n",
			st.Name, st.Type,
			fmt.Sprintf("(%.2f, %.2f)", st.X, st.Y),
			fmt.Sprintf("%.2f x %.2f", st.Width, st.Height),
			strings.Join(children, ", "))
	}
	return nil
}

func runEMAPBounds(cmd *cobra.Command, args []string) error {
	filename := args[0]
	d, err := emap.ParseFile(filename)
	if err != nil {
		return fmt.Errorf("error parsing eMAP file: %w", err)
	}

	name := emapBoundsStep
	if name == "" {
		name = d.StartStep
	}
	if _, ok := d.Steps[name]; !ok {
		return fmt.Errorf("step %q not found in %s", name, filename)
	}

	f := render.Filters{
		Edges:    !emapNoEdges,
		Repeats:  !emapNoRepeats,
		Barcodes: emapBarcodes,
	}

	fmt.Printf("Step: %s\n", name)
	box, ok := render.DrawingBounds(d, name, f)
	if !ok {
		fmt.Println("No drawable content under the given filters.")
		return nil
	}
	printBounds(box)
	return nil
}
