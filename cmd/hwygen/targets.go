package main

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Target is one vector width and the float lane types generated for it.
type Target struct {
	Name     string   // "SSE", "AVX2", "AVX512"
	VecWidth int      // bytes
	Elems    []string // float element types; each gets a matching int vector and mask
}

// Targets lists the supported widths, keyed by bit width.
var Targets = map[int]Target{
	128: {Name: "SSE", VecWidth: 16, Elems: []string{"float32", "float64"}},
	256: {Name: "AVX2", VecWidth: 32, Elems: []string{"float32", "float64"}},
	// Float64x8 is not generated: the engine has no 512-bit float64 routines.
	512: {Name: "AVX512", VecWidth: 64, Elems: []string{"float32"}},
}

// Bits returns the vector width in bits.
func (t Target) Bits() int { return t.VecWidth * 8 }

// LanesFor returns the number of lanes for the given element type.
func (t Target) LanesFor(elemType string) int {
	var elemSize int
	switch elemType {
	case "float32", "int32", "uint32":
		elemSize = 4
	case "float64", "int64", "uint64":
		elemSize = 8
	default:
		return 1
	}
	return t.VecWidth / elemSize
}

// FileName is the generated file for the target, e.g. "vec256.gen.go".
func (t Target) FileName() string {
	return fmt.Sprintf("vec%d.gen.go", t.Bits())
}

// GetTarget returns the target of the given bit width.
func GetTarget(bits int) (Target, error) {
	t, ok := Targets[bits]
	if !ok {
		return Target{}, errors.Errorf("unknown shape: %d (valid: %s)", bits, validShapes())
	}
	return t, nil
}

func validShapes() string {
	var s []string
	for _, bits := range slices.Sorted(maps.Keys(Targets)) {
		s = append(s, strconv.Itoa(bits))
	}
	return strings.Join(s, ", ")
}

// parseShapes reads a comma-separated list of bit widths.
func parseShapes(s string) ([]Target, error) {
	var result []Target
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		bits, err := strconv.Atoi(p)
		if err != nil {
			return nil, errors.Wrapf(err, "bad shape %q", p)
		}
		t, err := GetTarget(bits)
		if err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	if len(result) == 0 {
		return nil, errors.New("no shapes given")
	}
	return result, nil
}
