package dom

import (
	"strings"

	"golang.org/x/net/html"
)

type declaration struct {
	property string
	value    string
}

func parseStyle(s string) []declaration {
	var decls []declaration
	for _, part := range strings.Split(s, ";") {
		prop, val, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		prop = strings.ToLower(strings.TrimSpace(prop))
		if prop == "" {
			continue
		}
		decls = append(decls, declaration{property: prop, value: strings.TrimSpace(val)})
	}
	return decls
}

func formatStyle(decls []declaration) string {
	parts := make([]string, 0, len(decls))
	for _, d := range decls {
		parts = append(parts, d.property+": "+d.value)
	}
	return strings.Join(parts, "; ")
}

// setStyle sets inline style properties on n. An empty value removes the
// property, like assigning "" through element.style.
func setStyle(n *html.Node, props ...string) {
	raw, _ := getAttr(n, "style")
	decls := parseStyle(raw)

	for i := 0; i+1 < len(props); i += 2 {
		prop, val := props[i], props[i+1]
		idx := -1
		for j, d := range decls {
			if d.property == prop {
				idx = j
				break
			}
		}
		switch {
		case val == "" && idx >= 0:
			decls = append(decls[:idx], decls[idx+1:]...)
		case val == "":
		case idx >= 0:
			decls[idx].value = val
		default:
			decls = append(decls, declaration{property: prop, value: val})
		}
	}

	if len(decls) == 0 {
		removeAttr(n, "style")
		return
	}
	setAttr(n, "style", formatStyle(decls))
}

func styleValue(n *html.Node, prop string) string {
	raw, _ := getAttr(n, "style")
	for _, d := range parseStyle(raw) {
		if d.property == prop {
			return d.value
		}
	}
	return ""
}
