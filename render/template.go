package render

import (
	"strconv"

	"github.com/flosch/pongo2"
)

// textLayout is the built-in text template. Custom templates see the same
// context: input, hex, spaces (a list of {space, components: [{name,
// value, raw}]}) and one map per space keyed by component name, e.g.
// {{ lab.l }} or {{ srgb.r }}.
const textLayout = "{{ input|safe }}{% if hex %} {{ hex }}{% endif %}\n" +
	"{% for s in spaces %}  {{ s.space }}" +
	"{% for c in s.components %} {{ c.name }}={{ c.value }}{% endfor %}\n" +
	"{% endfor %}"

var defaultTemplate = pongo2.Must(pongo2.FromString(textLayout))

func templateContext(rep Report) pongo2.Context {
	ctx := pongo2.Context{
		"input": rep.Input,
		"hex":   rep.Hex,
	}

	spaces := make([]map[string]interface{}, len(rep.Spaces))
	for i, e := range rep.Spaces {
		comps := make([]map[string]interface{}, len(e.Components))
		byName := make(map[string]interface{}, len(e.Components))
		for j, c := range e.Components {
			v := strconv.FormatFloat(c.Value, 'f', -1, 64)
			comps[j] = map[string]interface{}{"name": c.Name, "value": v, "raw": c.Value}
			byName[c.Name] = v
		}
		spaces[i] = map[string]interface{}{"space": e.Space, "components": comps}
		ctx[e.Space] = byName
	}
	ctx["spaces"] = spaces
	return ctx
}
