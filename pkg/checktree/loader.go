// ABOUTME: Descriptor file loading: YAML or JSON documents with nodes and initial state
// ABOUTME: Labels are NFC-normalized and the forest is validated before anything renders

package checktree

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

// ErrNoNodes is returned for documents without a single node.
var ErrNoNodes = errors.New("document has no nodes")

// Document is the on-disk form of a tree: its nodes plus optional initial
// checked and expanded values.
type Document struct {
	TreeID   string       `json:"treeId,omitempty" yaml:"treeId,omitempty"`
	Nodes    []Descriptor `json:"nodes" yaml:"nodes"`
	Checked  []string     `json:"checked,omitempty" yaml:"checked,omitempty"`
	Expanded []string     `json:"expanded,omitempty" yaml:"expanded,omitempty"`
}

// LoadFile reads a descriptor document. Files ending in .json are decoded
// as JSON; everything else as YAML.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading tree file: %w", err)
	}
	format := FormatYAML
	if strings.EqualFold(filepath.Ext(path), ".json") {
		format = FormatJSON
	}
	doc, err := ParseDocument(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Format selects the document decoder.
type Format uint8

const (
	FormatYAML Format = iota
	FormatJSON
)

// ParseDocument decodes and validates a document. Unknown keys are errors so
// that typos like "chidlren" do not silently turn folders into leaves.
func ParseDocument(data []byte, format Format) (*Document, error) {
	var doc Document
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("parsing JSON: %w", err)
		}
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("parsing YAML: %w", err)
		}
	}

	if len(doc.Nodes) == 0 {
		return nil, ErrNoNodes
	}
	normalizeLabels(doc.Nodes)
	if err := ValidateDescriptors(doc.Nodes); err != nil {
		return nil, err
	}
	return &doc, nil
}

func normalizeLabels(nodes []Descriptor) {
	for i := range nodes {
		nodes[i].Label = norm.NFC.String(nodes[i].Label)
		normalizeLabels(nodes[i].Children)
	}
}
