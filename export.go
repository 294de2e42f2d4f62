package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
)

// exportRender draws the diagram at the configured export width and the
// live canvas height, exactly as it appears on screen.
func (m *model) exportRender() string {
	_, height := m.canvasSize()
	return m.renderCanvas(m.config.ExportWidth, height).String()
}

func (m *model) toDiagram() Diagram {
	return Diagram{
		Title:       m.title,
		Nodes:       m.nodes,
		Connections: m.connections,
	}
}

// writeArtifacts saves the rendered grid next to the serialized document
// and reports the result on the status bar.
func (m *model) writeArtifacts() {
	txtPath := m.config.GetSavePath(m.title + ".txt")
	if err := os.WriteFile(txtPath, []byte(m.exportRender()), 0644); err != nil {
		m.status = fmt.Sprintf("Save failed: %v", err)
		return
	}

	data, err := json.MarshalIndent(m.toDiagram(), "", "  ")
	if err != nil {
		m.status = fmt.Sprintf("Save failed: %v", err)
		return
	}
	jsonPath := m.config.GetSavePath(m.title + ".json")
	if err := os.WriteFile(jsonPath, data, 0644); err != nil {
		m.status = fmt.Sprintf("Save failed: %v", err)
		return
	}
	m.status = fmt.Sprintf("Saved %s and %s!", txtPath, jsonPath)
}

func (m *model) copyCanvas() {
	if err := clipboard.WriteAll(m.exportRender()); err != nil {
		m.status = fmt.Sprintf("Clipboard failed: %v", err)
		return
	}
	m.status = "Copied to clipboard!"
}
