package templating

import (
	"html/template"
	"strconv"
)

func makeFuncMap() template.FuncMap {
	return template.FuncMap{
		"tint":  tint,
		"scale": scale,
	}
}

// tint returns a #rrggbb color with a fixed 0x20 alpha channel, the wash used
// behind icons. Anything that is not a 7-character hex color yields "transparent".
func tint(hex string) template.CSS {
	if len(hex) != 7 || hex[0] != '#' {
		return "transparent"
	}
	if _, err := strconv.ParseUint(hex[1:], 16, 32); err != nil {
		return "transparent"
	}
	return template.CSS(hex + "20")
}

// scale renders a CSS scale() transform.
func scale(f float64) template.CSS {
	return template.CSS("scale(" + strconv.FormatFloat(f, 'f', -1, 64) + ")")
}
