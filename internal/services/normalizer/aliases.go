package normalizer

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/KirkDiggler/grimoire-api/internal/entities/grimoire"
)

// Raw key aliases per canonical field, tried in order
var (
	nameAliases        = []string{"title", "titulo", "título", "name", "nome"}
	elementAliases     = []string{"element", "elemento"}
	descriptionAliases = []string{"description", "descricao", "descrição", "desc"}
	categoryAliases    = []string{"categories", "categorias", "category", "categoria", "tags"}
	effectAliases      = []string{"effect", "efeito"}
	costAliases        = []string{"cost", "custo", "mana"}
	cooldownAliases    = []string{"cooldown", "cd", "recarga"}
	durationAliases    = []string{"duration", "duracao", "duração"}
	limitationAliases  = []string{"limitations", "limitacoes", "limitações"}
	mediaAliases       = []string{"media_url", "media", "gif", "image", "imagem"}
)

var categorySeparators = regexp.MustCompile(`[,;|\n]+`)

// firstPresent returns the value of the first alias present on raw with a
// usable value. Exact keys are tried first, then keys that only differ from an
// alias in case or accents.
func firstPresent(raw grimoire.RawRecord, aliases ...string) (any, bool) {
	if len(raw) == 0 {
		return nil, false
	}

	for _, alias := range aliases {
		if v, ok := raw[alias]; ok && present(v) {
			return v, true
		}
	}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, alias := range aliases {
		want := Fold(alias)
		for _, k := range keys {
			if Fold(k) == want && present(raw[k]) {
				return raw[k], true
			}
		}
	}

	return nil, false
}

// firstString is firstPresent coerced to a trimmed string
func firstString(raw grimoire.RawRecord, aliases ...string) string {
	v, ok := firstPresent(raw, aliases...)
	if !ok {
		return ""
	}
	return asString(v)
}

func present(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(t) != ""
	case []any, []string:
		return len(asList(t)) > 0
	case map[string]any:
		return false
	default:
		return true
	}
}

// asString stringifies scalar values. Lists are joined with commas.
func asString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case bool:
		return strconv.FormatBool(t)
	case []any, []string:
		return strings.Join(asList(t), ", ")
	case map[string]any:
		return ""
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}

// asList returns the non-empty entries of a list value, or the value itself
// as a single entry
func asList(v any) []string {
	var out []string
	switch t := v.(type) {
	case nil:
		return nil
	case []string:
		for _, s := range t {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	case []any:
		for _, item := range t {
			if s := asString(item); s != "" {
				out = append(out, s)
			}
		}
	default:
		if s := asString(t); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// categoryEntries splits a category string on separators; list entries are kept whole
func categoryEntries(v any) []string {
	if s, ok := v.(string); ok {
		var out []string
		for _, part := range categorySeparators.Split(s, -1) {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
		return out
	}
	return asList(v)
}
