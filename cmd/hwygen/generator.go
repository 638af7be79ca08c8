// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/pkg/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// Generator writes one vec<bits>.gen.go file per target.
type Generator struct {
	OutputDir string   // Output directory
	Targets   []Target // Widths to generate
	Package   string   // Package clause of the generated files
	Warnings  io.Writer
}

// laneData is the template input for one float vector with its matching
// integer vector and mask.
type laneData struct {
	Name, IntName, MaskName string
	Elem, IntElem, UintElem string
	Lanes, LaneBits         int
	SignShift               int
	Suffix                  string
	BitsFunc, FromBitsFunc  string
	LimitsFunc              string
	IntLimitsFunc           string
	Width                   int
}

// newLaneData derives the names for elem on target t, e.g. Float32x8,
// Int32x8 and Mask32x8 for float32 on AVX2.
func newLaneData(t Target, elem string) laneData {
	bits := strings.TrimPrefix(elem, "float")
	lanes := t.LanesFor(elem)
	shape := fmt.Sprintf("%sx%d", bits, lanes)
	laneBits := t.VecWidth * 8 / lanes
	title := cases.Title(language.English)
	return laneData{
		Name:          title.String("float") + shape,
		IntName:       title.String("int") + shape,
		MaskName:      title.String("mask") + shape,
		Elem:          elem,
		IntElem:       "int" + bits,
		UintElem:      "uint" + bits,
		Lanes:         lanes,
		LaneBits:      laneBits,
		SignShift:     laneBits - 1,
		Suffix:        "F" + bits,
		BitsFunc:      "math." + title.String(elem) + "bits",
		FromBitsFunc:  "math." + title.String(elem) + "frombits",
		LimitsFunc:    title.String(elem) + "Limits",
		IntLimitsFunc: title.String("int"+bits) + "Limits",
		Width:         t.Bits(),
	}
}

// Render returns the formatted source for target t.
func (g *Generator) Render(t Target) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "header.go.tmpl", struct{ Package string }{g.Package}); err != nil {
		return nil, errors.Wrap(err, "render header")
	}
	for _, elem := range t.Elems {
		d := newLaneData(t, elem)
		for _, name := range []string{"float.go.tmpl", "int.go.tmpl", "mask.go.tmpl"} {
			if err := templates.ExecuteTemplate(&buf, name, d); err != nil {
				return nil, errors.Wrapf(err, "render %s for %s", name, d.Name)
			}
		}
	}

	formatted, err := imports.Process(t.FileName(), buf.Bytes(), nil)
	if err != nil {
		g.warnf("Warning: formatting %s failed: %v\n", t.FileName(), err)
		return buf.Bytes(), nil
	}
	return formatted, nil
}

func (g *Generator) warnf(format string, args ...any) {
	w := g.Warnings
	if w == nil {
		w = os.Stderr
	}
	fmt.Fprintf(w, format, args...)
}

// Run renders every target into OutputDir.
func (g *Generator) Run() error {
	if g.Package == "" {
		g.Package = "hwy"
	}
	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return errors.Wrap(err, "create output directory")
	}
	for _, t := range g.Targets {
		src, err := g.Render(t)
		if err != nil {
			return err
		}
		filename := filepath.Join(g.OutputDir, t.FileName())
		if err := os.WriteFile(filename, src, 0o644); err != nil {
			return errors.Wrapf(err, "write %s", filename)
		}
	}
	return nil
}
