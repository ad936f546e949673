package les

import "fmt"

// AssignPanelImageNames labels every point with the panel/image pair it
// belongs to. Panels are numbered 1..n in step declaration order, so the
// first step using an image decides which panel the image's points report.
// A point with no image gets the lowest image id not yet in use and is
// registered under panel 1; the id counter persists across points so two
// unset points land on distinct images.
func AssignPanelImageNames(steps []*Step, points []*Point) {
	imageUsage := make(map[int][]int)
	for i, st := range steps {
		imageUsage[st.Image] = append(imageUsage[st.Image], i+1)
	}

	nextImageID := 1
	for _, pt := range points {
		img := pt.Image
		if img == 0 {
			for {
				if _, used := imageUsage[nextImageID]; !used {
					break
				}
				nextImageID++
			}
			img = nextImageID
			pt.Image = img
			imageUsage[img] = []int{1}
		}
		panel := 1
		if panels := imageUsage[img]; len(panels) > 0 {
			panel = panels[0]
		}
		pt.PanelImageName = fmt.Sprintf("Panel %d Image %d", panel, img)
	}
}
