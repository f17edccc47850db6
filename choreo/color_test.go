package choreo

import (
	"image/color"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
		hex  string
		err  bool
	}{
		{in: "#ff8800", want: color.NRGBA{R: 0xff, G: 0x88, B: 0x00, A: 0xff}, hex: "#FF8800"},
		{in: "FF880080", want: color.NRGBA{R: 0xff, G: 0x88, B: 0x00, A: 0x80}, hex: "#FF880080"},
		{in: "crimson", want: color.NRGBA{R: 220, G: 20, B: 60, A: 255}, hex: "#DC143C"},
		{in: " Crimson ", want: color.NRGBA{R: 220, G: 20, B: 60, A: 255}, hex: "#DC143C"},
		{in: "#fff", err: true},
		{in: "#gg0000", err: true},
		{in: "", err: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.err {
				if err == nil {
					t.Fatalf("expected error for %q", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if got.NRGBA != tt.want {
				t.Fatalf("got %+v, want %+v", got.NRGBA, tt.want)
			}
			if got.Hex() != tt.hex {
				t.Fatalf("hex = %s, want %s", got.Hex(), tt.hex)
			}
		})
	}
}

func TestColorYAML(t *testing.T) {
	var doc struct {
		C Color `yaml:"c"`
	}
	if err := yaml.Unmarshal([]byte(`c: "#102030"`), &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if doc.C.Hex() != "#102030" {
		t.Fatalf("hex = %s", doc.C.Hex())
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back struct {
		C Color `yaml:"c"`
	}
	if err := yaml.Unmarshal(out, &back); err != nil {
		t.Fatalf("unmarshal %q: %v", out, err)
	}
	if back.C != doc.C {
		t.Fatalf("round trip = %+v, want %+v", back.C, doc.C)
	}

	if err := yaml.Unmarshal([]byte("c: [1, 2]"), &doc); err == nil {
		t.Fatal("expected error for non-scalar color")
	}
}
