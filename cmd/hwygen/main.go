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

// Command hwygen generates the fixed-width vector types of package hwy.
//
// Usage:
//
//	hwygen -output ./hwy -shapes 128,256,512
//
// Or via go:generate:
//
//	//go:generate go run ../cmd/hwygen -output .
//
// Each shape produces vec<bits>.gen.go holding, for every float lane type of
// that width, the float vector, the integer vector of the same lane width
// and the comparison mask (Float32x8, Int32x8 and Mask32x8 for 256 bits).
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

var (
	outputDir  = flag.String("output", ".", "Output directory (default: current directory)")
	shapes     = flag.String("shapes", "128,256,512", "Comma-separated vector widths in bits ("+validShapes()+")")
	packageOut = flag.String("pkg", "hwy", "Output package name")
)

func main() {
	flag.Parse()

	targets, err := parseShapes(*shapes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		flag.Usage()
		os.Exit(1)
	}

	gen := &Generator{
		OutputDir: *outputDir,
		Targets:   targets,
		Package:   *packageOut,
	}
	if err := gen.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	names := make([]string, len(targets))
	for i, t := range targets {
		names[i] = t.FileName()
	}
	fmt.Printf("Successfully generated %s\n", strings.Join(names, ", "))
}
