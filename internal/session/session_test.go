package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

const lesSample = `#ATFH:BOARDTEST
L2
UNIT:MM:1
I1X100Y200AS01V1
`

func drawingXML(job, start string) string {
	return `<emap job="` + job + `">
  <start step="` + start + `"/>
  <step name="panel" type="panel">
    <edge id="e1" type="line" xs="0" ys="0" xe="100" ye="80"/>
    <repeat id="r1" step="unit" x="10" y="10"/>
  </step>
  <step name="unit" type="pcs">
    <edge id="e2" type="line" xs="0" ys="0" xe="10" ye="10"/>
  </step>
</emap>`
}

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestManagerLES(t *testing.T) {
	m := NewManager()
	assert.Nil(t, m.LES())

	path := writeFixture(t, "board.les", lesSample)
	doc, err := m.LoadLES(path)
	if assert.NoError(t, err) {
		assert.Equal(t, "BOARDTEST", doc.Test)
		assert.Same(t, doc, m.LES())
		assert.Len(t, doc.Points, 1)
	}

	// A failing load keeps the previous document.
	_, err = m.LoadLES(filepath.Join(t.TempDir(), "missing.les"))
	assert.Error(t, err)
	assert.Same(t, doc, m.LES())

	m.UnloadLES()
	assert.Nil(t, m.LES())
}

func TestManagerDrawingSequence(t *testing.T) {
	m := NewManager()
	assert.Nil(t, m.CurrentDrawing())
	assert.Empty(t, m.CurrentStep())

	pathA := writeFixture(t, "a.xml", drawingXML("JOB-A", "panel"))
	pathB := writeFixture(t, "b.xml", drawingXML("JOB-B", "unit"))

	idA, err := m.LoadDrawing(pathA)
	assert.NoError(t, err)
	idB, err := m.LoadDrawing(pathB)
	assert.NoError(t, err)
	assert.NotEqual(t, idA, idB)

	// The latest load is selected and the step follows its start step.
	assert.Equal(t, "JOB-B", m.CurrentDrawing().Job)
	assert.Equal(t, "unit", m.CurrentStep())

	infos := m.Drawings()
	if assert.Len(t, infos, 2) {
		assert.Equal(t, idA, infos[0].ID)
		assert.Equal(t, pathA, infos[0].Path)
		assert.Equal(t, "JOB-A", infos[0].Job)
		assert.Equal(t, 2, infos[0].StepCount)
		assert.Equal(t, idB, infos[1].ID)
	}

	assert.True(t, m.SelectDrawing(idA))
	assert.Equal(t, "JOB-A", m.CurrentDrawing().Job)
	assert.Equal(t, "panel", m.CurrentStep())

	// Unknown ids leave the selection alone.
	assert.False(t, m.SelectDrawing("no-such-id"))
	assert.Equal(t, "JOB-A", m.CurrentDrawing().Job)

	assert.True(t, m.SetCurrentStep("unit"))
	assert.Equal(t, "unit", m.CurrentStep())
	assert.False(t, m.SetCurrentStep("ghost"))
	assert.Equal(t, "unit", m.CurrentStep())

	// Unloading the second drawing falls back to the first.
	assert.True(t, m.SelectDrawing(idB))
	m.UnloadCurrentDrawing()
	assert.Equal(t, "JOB-A", m.CurrentDrawing().Job)
	assert.Equal(t, "panel", m.CurrentStep())
	assert.Len(t, m.Drawings(), 1)

	m.UnloadCurrentDrawing()
	assert.Nil(t, m.CurrentDrawing())
	assert.Empty(t, m.CurrentStep())
	assert.Empty(t, m.Drawings())

	// Unloading with nothing loaded is a no-op.
	m.UnloadCurrentDrawing()
	assert.Nil(t, m.CurrentDrawing())
}

func TestManagerLoadDrawingFailure(t *testing.T) {
	m := NewManager()
	pathA := writeFixture(t, "a.xml", drawingXML("JOB-A", "panel"))
	idA, err := m.LoadDrawing(pathA)
	assert.NoError(t, err)

	bad := writeFixture(t, "bad.xml", "<emap><step")
	_, err = m.LoadDrawing(bad)
	assert.Error(t, err)

	// The registry is untouched by the failed load.
	infos := m.Drawings()
	if assert.Len(t, infos, 1) {
		assert.Equal(t, idA, infos[0].ID)
	}
	assert.Equal(t, "JOB-A", m.CurrentDrawing().Job)
	assert.Equal(t, "panel", m.CurrentStep())
}

func TestManagerSetCurrentStepWithoutDrawing(t *testing.T) {
	m := NewManager()
	assert.False(t, m.SetCurrentStep("panel"))
}
