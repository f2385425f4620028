package render

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/mmuldo/cowor/colorspace"
)

func red() Report {
	return Describe("red", colorspace.NewSRGB(255, 0, 0), true)
}

func TestDescribe(t *testing.T) {
	rep := Describe("", colorspace.NewSRGB(0, 0, 128), false)
	if rep.Hex != "#000080" {
		t.Errorf("Hex = %q", rep.Hex)
	}
	if rep.Input != "#000080" {
		t.Errorf("Input = %q, want hex default", rep.Input)
	}
	want := []string{"srgb", "xyz", "lab", "lch"}
	if len(rep.Spaces) != len(want) {
		t.Fatalf("got %d spaces", len(rep.Spaces))
	}
	for i, s := range want {
		if rep.Spaces[i].Space != s {
			t.Errorf("Spaces[%d] = %q, want %q", i, rep.Spaces[i].Space, s)
		}
	}
	if got := rep.Spaces[0].Components[2].Value; got != 128 {
		t.Errorf("srgb b = %v, want 128", got)
	}
}

func TestLChEntryDegrees(t *testing.T) {
	c := colorspace.LChFromArray([3]float64{50, 10, -math.Pi / 2})
	if got := LChEntry(c, true).Components[2].Value; math.Abs(got-270) > 1e-9 {
		t.Errorf("hue = %v degrees, want 270", got)
	}
	if got := LChEntry(c, false).Components[2].Value; got != -math.Pi/2 {
		t.Errorf("hue = %v radians, want %v", got, -math.Pi/2)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
		ok   bool
	}{
		{"text", FormatText, true},
		{"JSON", FormatJSON, true},
		{" yaml ", FormatYAML, true},
		{"yml", FormatYAML, true},
		{"xml", "", false},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err == nil) != tt.ok || got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, %v", tt.in, got, err)
		}
	}
}

func TestRenderText(t *testing.T) {
	r, err := New(FormatText, 4, "")
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := r.Render(&buf, red()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"red #ff0000\n",
		"  srgb r=255 g=0 b=0\n",
		"  lab l=53.2371 a=80.0901 b=67.2033\n",
		"  lch l=53.2371 c=104.55 h=39.9999\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderTemplateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "color.tpl")
	if err := os.WriteFile(path, []byte("{{ hex }} L={{ lab.l }} r={{ srgb.r }}\n"), 0644); err != nil {
		t.Fatal(err)
	}
	r, err := New(FormatText, 2, path)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := r.Render(&buf, red()); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "#ff0000 L=53.24 r=255\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}

	if _, err := New(FormatText, 2, filepath.Join(t.TempDir(), "missing.tpl")); err == nil {
		t.Error("expected error for missing template")
	}
}

func TestRenderJSON(t *testing.T) {
	r, err := New(FormatJSON, 2, "")
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := r.Render(&buf, red(), Describe("black", colorspace.NewSRGB(0, 0, 0), true)); err != nil {
		t.Fatal(err)
	}
	var got []Report
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if len(got) != 2 {
		t.Fatalf("got %d reports", len(got))
	}
	if v := got[0].Spaces[2].Components[0].Value; v != 53.24 {
		t.Errorf("lab l = %v, want 53.24", v)
	}
	if got[1].Hex != "#000000" {
		t.Errorf("hex = %q", got[1].Hex)
	}
}

func TestRenderYAML(t *testing.T) {
	r, err := New(FormatYAML, 1, "")
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := r.Render(&buf, red()); err != nil {
		t.Fatal(err)
	}
	var got []Report
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("invalid YAML: %v\n%s", err, buf.String())
	}
	if len(got) != 1 || got[0].Input != "red" {
		t.Fatalf("got %+v", got)
	}
	if v := got[0].Spaces[3].Components[1].Value; v != 104.6 {
		t.Errorf("lch c = %v, want 104.6", v)
	}
}

func TestRoundDropsNegativeZero(t *testing.T) {
	r := &Renderer{Format: FormatText, Precision: 2, tpl: defaultTemplate}
	rep := Report{Input: "x", Spaces: []Entry{{Space: "lab", Components: []Component{{"a", -0.0001}}}}}
	got := r.round(rep).Spaces[0].Components[0].Value
	if got != 0 || math.Signbit(got) {
		t.Errorf("rounded = %v, want +0", got)
	}
	if rep.Spaces[0].Components[0].Value != -0.0001 {
		t.Error("round modified its input")
	}
}

func TestNewPrecisionRange(t *testing.T) {
	tests := []struct {
		precision int
		ok        bool
	}{
		{-1, false},
		{0, true},
		{MaxPrecision, true},
		{MaxPrecision + 1, false},
		{400, false},
	}
	for _, tt := range tests {
		r, err := New(FormatJSON, tt.precision, "")
		if (err == nil) != tt.ok {
			t.Errorf("New(precision %d) error = %v, want ok = %v", tt.precision, err, tt.ok)
			continue
		}
		if !tt.ok {
			continue
		}
		var buf bytes.Buffer
		if err := r.Render(&buf, red()); err != nil {
			t.Errorf("precision %d: Render: %v", tt.precision, err)
		}
		if strings.Contains(buf.String(), "NaN") {
			t.Errorf("precision %d: output contains NaN", tt.precision)
		}
	}
}
