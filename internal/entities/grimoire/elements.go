package grimoire

// elementIcons maps folded element tokens, in both Portuguese and English,
// to their display icon
var elementIcons = map[string]string{
	"fogo":        "🔥",
	"fire":        "🔥",
	"agua":        "💧",
	"water":       "💧",
	"terra":       "🌱",
	"earth":       "🌱",
	"ar":          "🌬️",
	"vento":       "🌬️",
	"wind":        "🌬️",
	"raio":        "⚡",
	"lightning":   "⚡",
	"electric":    "⚡",
	"luz":         "☀️",
	"light":       "☀️",
	"escuridao":   "🌑",
	"escuro":      "🌑",
	"dark":        "🌑",
	"arcano":      "🔮",
	"dimensional": "🌀",
	"tempo":       "⌛",
	"status":      "💠",
}

// ElementIcon returns the icon for an already folded element token
func ElementIcon(token string) (string, bool) {
	icon, ok := elementIcons[token]
	return icon, ok
}

// IsKnownElement reports whether the folded token names an element.
// The unknown sentinel is not a known element.
func IsKnownElement(token string) bool {
	_, ok := elementIcons[token]
	return ok
}

// KnownElements returns every folded element token
func KnownElements() []string {
	out := make([]string, 0, len(elementIcons))
	for token := range elementIcons {
		out = append(out, token)
	}
	return out
}
