package content

import "strings"

// ColorScheme is the key of one of the fixed site palettes.
type ColorScheme string

const (
	Professional ColorScheme = "professional"
	Warm         ColorScheme = "warm"
	Modern       ColorScheme = "modern"
	Nature       ColorScheme = "nature"
	Luxury       ColorScheme = "luxury"
	Creative     ColorScheme = "creative"
)

// DefaultColorScheme is preselected in the builder and used for unknown keys.
const DefaultColorScheme = Professional

// Palette holds the three colors applied to a generated site, as CSS hex values.
type Palette struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
}

// ColorSchemeOption describes a palette for the scheme selector.
type ColorSchemeOption struct {
	Value   ColorScheme `json:"value"`
	Label   string      `json:"label"`
	Colors  string      `json:"colors"`
	Palette Palette     `json:"palette"`
}

var colorSchemeOptions = []ColorSchemeOption{
	{Professional, "Professional Blue", "Blue & Gray", PaletteFor(Professional)},
	{Warm, "Warm & Inviting", "Orange & Brown", PaletteFor(Warm)},
	{Modern, "Modern Purple", "Purple & Pink", PaletteFor(Modern)},
	{Nature, "Natural Green", "Green & Earth", PaletteFor(Nature)},
	{Luxury, "Luxury Gold", "Gold & Black", PaletteFor(Luxury)},
	{Creative, "Creative Rainbow", "Multi-color", PaletteFor(Creative)},
}

// ColorSchemes returns the selectable schemes in display order.
func ColorSchemes() []ColorSchemeOption {
	out := make([]ColorSchemeOption, len(colorSchemeOptions))
	copy(out, colorSchemeOptions)
	return out
}

// ParseColorScheme normalizes a raw form value. An empty value selects the default scheme.
func ParseColorScheme(raw string) ColorScheme {
	key := strings.ToLower(strings.TrimSpace(raw))
	if key == "" {
		return DefaultColorScheme
	}
	return ColorScheme(key)
}

// Label returns the human-readable name of the scheme, or "" if it is unknown.
func (c ColorScheme) Label() string {
	for _, opt := range colorSchemeOptions {
		if opt.Value == c {
			return opt.Label
		}
	}
	return ""
}

// PaletteFor returns the palette of a scheme, falling back to the professional palette.
func PaletteFor(c ColorScheme) Palette {
	switch c {
	case Warm:
		return Palette{Primary: "#ea580c", Secondary: "#92400e", Accent: "#f97316"}
	case Modern:
		return Palette{Primary: "#7c3aed", Secondary: "#a855f7", Accent: "#c084fc"}
	case Nature:
		return Palette{Primary: "#059669", Secondary: "#047857", Accent: "#10b981"}
	case Luxury:
		return Palette{Primary: "#d97706", Secondary: "#92400e", Accent: "#f59e0b"}
	case Creative:
		return Palette{Primary: "#dc2626", Secondary: "#7c2d12", Accent: "#f59e0b"}
	default:
		return Palette{Primary: "#2563eb", Secondary: "#64748b", Accent: "#0ea5e9"}
	}
}
