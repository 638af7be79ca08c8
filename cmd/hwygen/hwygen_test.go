package main

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGetTarget(t *testing.T) {
	tests := []struct {
		name    string
		bits    int
		wantErr bool
	}{
		{"SSE", 128, false},
		{"AVX2", 256, false},
		{"AVX512", 512, false},
		{"Unknown", 1024, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, err := GetTarget(tt.bits)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetTarget(%d) error = %v, wantErr %v", tt.bits, err, tt.wantErr)
			}
			if err == nil && target.Name != tt.name {
				t.Errorf("GetTarget(%d).Name = %q, want %q", tt.bits, target.Name, tt.name)
			}
		})
	}
}

func TestTargetLanesFor(t *testing.T) {
	avx2 := Targets[256]

	tests := []struct {
		elemType string
		want     int
	}{
		{"float32", 8}, // 32 bytes / 4 = 8
		{"float64", 4}, // 32 bytes / 8 = 4
		{"int32", 8},
		{"int64", 4},
	}

	for _, tt := range tests {
		t.Run(tt.elemType, func(t *testing.T) {
			if got := avx2.LanesFor(tt.elemType); got != tt.want {
				t.Errorf("LanesFor(%q) = %d, want %d", tt.elemType, got, tt.want)
			}
		})
	}
}

func TestParseShapes(t *testing.T) {
	targets, err := parseShapes(" 512, 128 ,")
	if err != nil {
		t.Fatal(err)
	}
	if len(targets) != 2 || targets[0].Bits() != 512 || targets[1].Bits() != 128 {
		t.Errorf("parseShapes: got %+v", targets)
	}

	for _, bad := range []string{"", ",", "abc", "128,64"} {
		if _, err := parseShapes(bad); err == nil {
			t.Errorf("parseShapes(%q): expected an error", bad)
		}
	}
}

func TestNewLaneData(t *testing.T) {
	d := newLaneData(Targets[256], "float32")
	want := laneData{
		Name: "Float32x8", IntName: "Int32x8", MaskName: "Mask32x8",
		Elem: "float32", IntElem: "int32", UintElem: "uint32",
		Lanes: 8, LaneBits: 32, SignShift: 31, Suffix: "F32",
		BitsFunc: "math.Float32bits", FromBitsFunc: "math.Float32frombits",
		LimitsFunc: "Float32Limits", IntLimitsFunc: "Int32Limits",
		Width: 256,
	}
	if d != want {
		t.Errorf("newLaneData(256, float32):\n got %+v\nwant %+v", d, want)
	}

	d = newLaneData(Targets[128], "float64")
	if d.Name != "Float64x2" || d.MaskName != "Mask64x2" || d.SignShift != 63 {
		t.Errorf("newLaneData(128, float64): got %+v", d)
	}
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	var warnings bytes.Buffer
	gen := &Generator{
		OutputDir: dir,
		Targets:   []Target{Targets[128], Targets[256], Targets[512]},
		Package:   "vecs",
		Warnings:  &warnings,
	}
	if err := gen.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if warnings.Len() != 0 {
		t.Errorf("unexpected warnings: %s", warnings.String())
	}

	wantTypes := map[string][]string{
		"vec128.gen.go": {"Float32x4", "Int32x4", "Mask32x4", "Float64x2", "Int64x2", "Mask64x2"},
		"vec256.gen.go": {"Float32x8", "Int32x8", "Mask32x8", "Float64x4", "Int64x4", "Mask64x4"},
		"vec512.gen.go": {"Float32x16", "Int32x16", "Mask32x16"},
	}
	for file, types := range wantTypes {
		t.Run(file, func(t *testing.T) {
			path := filepath.Join(dir, file)
			src, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}
			if !strings.HasPrefix(string(src), "// Code generated by hwygen. DO NOT EDIT.") {
				t.Errorf("missing generated-code header")
			}

			fset := token.NewFileSet()
			f, err := parser.ParseFile(fset, path, src, 0)
			if err != nil {
				t.Fatalf("generated code does not parse: %v", err)
			}
			if f.Name.Name != "vecs" {
				t.Errorf("package = %q, want vecs", f.Name.Name)
			}

			declared := map[string]bool{}
			methods := map[string]int{}
			for _, decl := range f.Decls {
				switch d := decl.(type) {
				case *ast.GenDecl:
					for _, spec := range d.Specs {
						if ts, ok := spec.(*ast.TypeSpec); ok {
							declared[ts.Name.Name] = true
						}
					}
				case *ast.FuncDecl:
					if d.Recv != nil {
						recv := d.Recv.List[0].Type.(*ast.Ident).Name
						methods[recv]++
					}
				}
			}
			for _, name := range types {
				if !declared[name] {
					t.Errorf("type %s not generated", name)
				}
				if methods[name] == 0 {
					t.Errorf("type %s has no methods", name)
				}
			}
			if len(declared) != len(types) {
				t.Errorf("declared %d types, want %d", len(declared), len(types))
			}
		})
	}
}

func TestRenderMatchesCheckedIn(t *testing.T) {
	gen := &Generator{Package: "hwy"}
	for _, bits := range []int{128, 256, 512} {
		target := Targets[bits]
		got, err := gen.Render(target)
		if err != nil {
			t.Fatal(err)
		}
		want, err := os.ReadFile(filepath.Join("..", "..", "hwy", target.FileName()))
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(got, want) {
			t.Errorf("%s is stale; run go generate ./hwy", target.FileName())
		}
	}
}
