package emap

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Raw decode targets. Numeric attributes are read as strings so a malformed
// value degrades to 0 instead of aborting the whole document.
type xmlEdge struct {
	ID        string `xml:"id,attr"`
	Type      string `xml:"type,attr"`
	XS        string `xml:"xs,attr"`
	YS        string `xml:"ys,attr"`
	XE        string `xml:"xe,attr"`
	YE        string `xml:"ye,attr"`
	XC        string `xml:"xc,attr"`
	YC        string `xml:"yc,attr"`
	Radius    string `xml:"radius,attr"`
	Direction string `xml:"direction,attr"`
}

type xmlRepeat struct {
	ID     string `xml:"id,attr"`
	PosNum string `xml:"pos_num,attr"`
	Step   string `xml:"step,attr"`
	X      string `xml:"x,attr"`
	Y      string `xml:"y,attr"`
	Angle  string `xml:"angle,attr"`
	Number string `xml:"number,attr"`
}

type xmlBarcode struct {
	Num       string `xml:"num,attr"`
	LayerCode string `xml:"layercode,attr"`
	LayerFace string `xml:"layerface,attr"`
	Content   string `xml:"content,attr"`
	Polarity  string `xml:"polarity,attr"`
	ID        string `xml:"id,attr"`
	X         string `xml:"x,attr"`
	Y         string `xml:"y,attr"`
	Width     string `xml:"width,attr"`
	Height    string `xml:"height,attr"`
}

type xmlLayer struct {
	Name     string       `xml:"name,attr"`
	Barcodes []xmlBarcode `xml:"barcode"`
}

type xmlStep struct {
	Name    string      `xml:"name,attr"`
	Type    string      `xml:"type,attr"`
	X       string      `xml:"x,attr"`
	Y       string      `xml:"y,attr"`
	Width   string      `xml:"width,attr"`
	Height  string      `xml:"height,attr"`
	Edges   []xmlEdge   `xml:"edge"`
	Repeats []xmlRepeat `xml:"repeat"`
	Layers  []xmlLayer  `xml:"layer"`
}

type xmlRoot struct {
	Job    string `xml:"job,attr"`
	Width  string `xml:"width,attr"`
	Height string `xml:"height,attr"`
	Start  *struct {
		Step string `xml:"step,attr"`
	} `xml:"start"`
	Steps []xmlStep `xml:"step"`
}

// attrFloat decodes a numeric attribute. Missing or malformed values are 0.
func attrFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// ParseFile reads and parses an eMAP drawing. The job name falls back to
// the file's base name when the root element carries none.
func ParseFile(filename string) (*Drawing, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open eMAP file: %w", err)
	}
	defer file.Close()

	d, err := Parse(file)
	if err != nil {
		return nil, err
	}
	d.FilePath = filename
	if d.Job == "" {
		d.Job = filepath.Base(filename)
	}
	return d, nil
}

// Parse reads an eMAP drawing from r. Only a malformed XML tree is an
// error; attribute level problems degrade to zero values. Duplicate step
// names keep the last definition, but the first step in document order
// stays the default start step when no start element names one.
func Parse(r io.Reader) (*Drawing, error) {
	var root xmlRoot
	if err := xml.NewDecoder(r).Decode(&root); err != nil {
		return nil, fmt.Errorf("failed to parse eMAP XML: %w", err)
	}

	d := &Drawing{
		Job:    root.Job,
		Width:  attrFloat(root.Width),
		Height: attrFloat(root.Height),
		Steps:  make(map[string]*Step, len(root.Steps)),
	}
	if root.Start != nil {
		d.StartStep = root.Start.Step
	}
	for _, xs := range root.Steps {
		st := convertStep(xs)
		d.Steps[st.Name] = st
	}
	if d.StartStep == "" && len(root.Steps) > 0 {
		d.StartStep = root.Steps[0].Name
	}
	return d, nil
}

func convertStep(xs xmlStep) *Step {
	st := &Step{
		Name:   xs.Name,
		Type:   xs.Type,
		X:      attrFloat(xs.X),
		Y:      attrFloat(xs.Y),
		Width:  attrFloat(xs.Width),
		Height: attrFloat(xs.Height),
	}
	for _, xe := range xs.Edges {
		dir := xe.Direction
		if dir == "" {
			dir = "cw"
		}
		st.Edges = append(st.Edges, &Edge{
			ID:        xe.ID,
			Type:      xe.Type,
			XS:        attrFloat(xe.XS),
			YS:        attrFloat(xe.YS),
			XE:        attrFloat(xe.XE),
			YE:        attrFloat(xe.YE),
			XC:        attrFloat(xe.XC),
			YC:        attrFloat(xe.YC),
			Radius:    attrFloat(xe.Radius),
			Direction: dir,
		})
	}
	for _, xr := range xs.Repeats {
		st.Repeats = append(st.Repeats, &Repeat{
			ID:     xr.ID,
			PosNum: xr.PosNum,
			Step:   xr.Step,
			X:      attrFloat(xr.X),
			Y:      attrFloat(xr.Y),
			Angle:  attrFloat(xr.Angle),
			Number: xr.Number,
		})
	}
	for _, xl := range xs.Layers {
		layer := &Layer{Name: xl.Name}
		for _, xb := range xl.Barcodes {
			layer.Barcodes = append(layer.Barcodes, &Barcode{
				Num:       xb.Num,
				LayerCode: xb.LayerCode,
				LayerFace: xb.LayerFace,
				Content:   xb.Content,
				Polarity:  xb.Polarity,
				ID:        xb.ID,
				X:         attrFloat(xb.X),
				Y:         attrFloat(xb.Y),
				Width:     attrFloat(xb.Width),
				Height:    attrFloat(xb.Height),
			})
		}
		st.Layers = append(st.Layers, layer)
	}
	return st
}
