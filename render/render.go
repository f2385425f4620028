package render

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/flosch/pongo2"
	"gopkg.in/yaml.v3"
)

// Format selects the output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat returns the Format named by s.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown output format %q (want text, json or yaml)", s)
}

// MaxPrecision is the largest accepted Precision. float64 carries at most
// 17 significant decimal digits.
const MaxPrecision = 17

// Renderer writes reports in one format. Component values are rounded to
// Precision digits after the decimal point.
type Renderer struct {
	Format    Format
	Precision int

	tpl *pongo2.Template
}

// New returns a Renderer. templatePath, when set, replaces the built-in
// text layout with a pongo2 template file; it is ignored for JSON and
// YAML.
func New(format Format, precision int, templatePath string) (*Renderer, error) {
	if precision < 0 || precision > MaxPrecision {
		return nil, fmt.Errorf("precision %d out of range [0, %d]", precision, MaxPrecision)
	}
	r := &Renderer{Format: format, Precision: precision, tpl: defaultTemplate}
	if format == FormatText && templatePath != "" {
		tpl, err := pongo2.FromFile(templatePath)
		if err != nil {
			return nil, fmt.Errorf("load template %s: %w", templatePath, err)
		}
		r.tpl = tpl
	}
	return r, nil
}

// Render writes reports to w.
func (r *Renderer) Render(w io.Writer, reports ...Report) error {
	rounded := make([]Report, len(reports))
	for i, rep := range reports {
		rounded[i] = r.round(rep)
	}

	switch r.Format {
	case FormatJSON:
		b, err := json.MarshalIndent(rounded, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", b)
		return err
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rounded); err != nil {
			return err
		}
		return enc.Close()
	case FormatText:
		for _, rep := range rounded {
			out, err := r.tpl.Execute(templateContext(rep))
			if err != nil {
				return fmt.Errorf("render %s: %w", rep.Input, err)
			}
			if _, err := io.WriteString(w, out); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("unknown output format %q", r.Format)
}

func (r *Renderer) round(rep Report) Report {
	scale := math.Pow(10, float64(r.Precision))
	out := rep
	out.Spaces = make([]Entry, len(rep.Spaces))
	for i, e := range rep.Spaces {
		comps := make([]Component, len(e.Components))
		for j, c := range e.Components {
			v := math.Round(c.Value*scale) / scale
			if v == 0 {
				v = 0 // drop negative zero
			}
			comps[j] = Component{Name: c.Name, Value: v}
		}
		out.Spaces[i] = Entry{Space: e.Space, Components: comps}
	}
	return out
}
