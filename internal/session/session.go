// Package session tracks the documents a viewer shell has open: at most one
// LES document and any number of eMAP drawings, one of which is current.
// The registry never mutates a parsed document; loading parses into fresh
// memory and unloading only drops references.
package session

import (
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/pcbfab/panelview/pkg/emap"
	"github.com/pcbfab/panelview/pkg/les"
)

// DrawingInfo describes one loaded drawing for listings.
type DrawingInfo struct {
	ID        string
	Path      string
	Job       string
	StepCount int
}

type drawingEntry struct {
	id      string
	path    string
	drawing *emap.Drawing
}

// Manager is the document registry. All methods are safe for concurrent
// use.
type Manager struct {
	mu sync.RWMutex

	les     *les.Document
	lesPath string

	drawings []*drawingEntry
	current  int    // index into drawings, -1 when none is selected
	step     string // current step of the current drawing
}

// NewManager creates an empty registry.
func NewManager() *Manager {
	return &Manager{current: -1}
}

// LoadLES parses the file and, on success, replaces the held LES document.
// A parse failure leaves the registry unchanged.
func (m *Manager) LoadLES(path string) (*les.Document, error) {
	doc, err := les.ParseFile(path)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.les = doc
	m.lesPath = path
	m.mu.Unlock()

	log.Printf("loaded LES file %s (test %q, %d points)", path, doc.Test, len(doc.Points))
	return doc, nil
}

// LES returns the held LES document, or nil when none is loaded.
func (m *Manager) LES() *les.Document {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.les
}

// UnloadLES drops the held LES document.
func (m *Manager) UnloadLES() {
	m.mu.Lock()
	path := m.lesPath
	had := m.les != nil
	m.les = nil
	m.lesPath = ""
	m.mu.Unlock()

	if had {
		log.Printf("unloaded LES file %s", path)
	}
}

// LoadDrawing parses the file, registers it under a fresh id, and selects
// it as the current drawing. The current step becomes the drawing's start
// step. A parse failure leaves the registry unchanged.
func (m *Manager) LoadDrawing(path string) (string, error) {
	d, err := emap.ParseFile(path)
	if err != nil {
		return "", err
	}

	id := uuid.New().String()

	m.mu.Lock()
	m.drawings = append(m.drawings, &drawingEntry{id: id, path: path, drawing: d})
	m.current = len(m.drawings) - 1
	m.step = d.StartStep
	m.mu.Unlock()

	log.Printf("loaded drawing %s (job %q, id %s)", path, d.Job, id)
	return id, nil
}

// Drawings lists the loaded drawings in load order.
func (m *Manager) Drawings() []DrawingInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()

	infos := make([]DrawingInfo, 0, len(m.drawings))
	for _, e := range m.drawings {
		infos = append(infos, DrawingInfo{
			ID:        e.id,
			Path:      e.path,
			Job:       e.drawing.Job,
			StepCount: len(e.drawing.Steps),
		})
	}
	return infos
}

// CurrentDrawing returns the selected drawing, or nil when none is loaded.
func (m *Manager) CurrentDrawing() *emap.Drawing {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.current < 0 {
		return nil
	}
	return m.drawings[m.current].drawing
}

// SelectDrawing makes the drawing with the given id current and resets the
// current step to its start step. Returns false for an unknown id.
func (m *Manager) SelectDrawing(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, e := range m.drawings {
		if e.id == id {
			m.current = i
			m.step = e.drawing.StartStep
			return true
		}
	}
	return false
}

// CurrentStep returns the current step name, empty when no drawing is
// selected.
func (m *Manager) CurrentStep() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.step
}

// SetCurrentStep switches the current step. Returns false when no drawing
// is selected or the current drawing has no step with that name.
func (m *Manager) SetCurrentStep(name string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current < 0 {
		return false
	}
	if _, ok := m.drawings[m.current].drawing.Steps[name]; !ok {
		return false
	}
	m.step = name
	return true
}

// UnloadCurrentDrawing removes the selected drawing. The selection moves to
// the previous entry, clamped to the shrunk list; the current step resets
// to the newly selected drawing's start step, or empty when none remain.
func (m *Manager) UnloadCurrentDrawing() {
	m.mu.Lock()

	if m.current < 0 {
		m.mu.Unlock()
		return
	}

	removed := m.drawings[m.current]
	m.drawings = append(m.drawings[:m.current], m.drawings[m.current+1:]...)

	if len(m.drawings) == 0 {
		m.current = -1
		m.step = ""
	} else {
		if m.current > len(m.drawings)-1 {
			m.current = len(m.drawings) - 1
		}
		m.step = m.drawings[m.current].drawing.StartStep
	}
	m.mu.Unlock()

	log.Printf("unloaded drawing %s (id %s)", removed.path, removed.id)
}
