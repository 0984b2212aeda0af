package normalizer

import (
	"net/url"
	"path"
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// mediaExtensions are the file extensions accepted as spell media
var mediaExtensions = map[string]bool{
	".gif":  true,
	".mp4":  true,
	".webm": true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
}

// breakTags become a newline when stripped so the visual line structure survives
var breakTags = map[atom.Atom]bool{
	atom.P:          true,
	atom.Div:        true,
	atom.Br:         true,
	atom.Li:         true,
	atom.Ul:         true,
	atom.Ol:         true,
	atom.H1:         true,
	atom.H2:         true,
	atom.H3:         true,
	atom.H4:         true,
	atom.H5:         true,
	atom.H6:         true,
	atom.Hr:         true,
	atom.Tr:         true,
	atom.Table:      true,
	atom.Blockquote: true,
	atom.Pre:        true,
}

var (
	bareURLPattern = regexp.MustCompile(`https?://[^\s'"<>]+`)
	blankLines     = regexp.MustCompile(`\n{3,}`)
	spaceRuns      = regexp.MustCompile(`[ \t]{2,}`)
)

// Sanitize strips markup from s. Break tags turn into newlines, images and
// script bodies are dropped, entities are unescaped. Every line is trimmed and
// runs of blank lines collapse to a single blank line. A < with no > after
// it on the same line is kept as text.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	z := html.NewTokenizer(strings.NewReader(escapeStrayBrackets(s)))
	skip := 0
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}

		switch tt {
		case html.TextToken:
			if skip == 0 {
				b.Write(z.Text())
			}
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			a := atom.Lookup(name)
			if (a == atom.Script || a == atom.Style) && tt == html.StartTagToken {
				skip++
			}
			if breakTags[a] {
				b.WriteByte('\n')
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			a := atom.Lookup(name)
			if (a == atom.Script || a == atom.Style) && skip > 0 {
				skip--
			}
			if breakTags[a] {
				b.WriteByte('\n')
			}
		}
	}

	return normalizeLines(b.String())
}

// escapeStrayBrackets rewrites every < that is not closed later on its line
// to &lt; so the tokenizer reads it as text instead of an open tag
func escapeStrayBrackets(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		tail := strings.LastIndexByte(line, '>') + 1
		if strings.IndexByte(line[tail:], '<') < 0 {
			continue
		}
		lines[i] = line[:tail] + strings.ReplaceAll(line[tail:], "<", "&lt;")
	}
	return strings.Join(lines, "\n")
}

// normalizeLines unifies line endings, trims every line, squeezes space runs
// left by removed inline tags and collapses blank runs
func normalizeLines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = spaceRuns.ReplaceAllString(strings.TrimSpace(line), " ")
	}

	s = strings.Join(lines, "\n")
	s = blankLines.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// ExtractMedia finds the first image or animation URL in raw, unsanitized text.
// An <img src> wins over a bare link anywhere in the text.
func ExtractMedia(s string) string {
	if s == "" {
		return ""
	}

	z := html.NewTokenizer(strings.NewReader(escapeStrayBrackets(s)))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}
		if tt != html.StartTagToken && tt != html.SelfClosingTagToken {
			continue
		}

		name, hasAttr := z.TagName()
		if atom.Lookup(name) != atom.Img || !hasAttr {
			continue
		}
		for {
			key, val, more := z.TagAttr()
			if string(key) == "src" {
				src := strings.TrimSpace(string(val))
				if isMediaURL(src) {
					return src
				}
			}
			if !more {
				break
			}
		}
	}

	for _, candidate := range bareURLPattern.FindAllString(s, -1) {
		candidate = strings.TrimRight(candidate, ".,;:!?)]}")
		if isMediaURL(candidate) {
			return candidate
		}
	}

	return ""
}

func isMediaURL(raw string) bool {
	if raw == "" {
		return false
	}

	u, err := url.Parse(raw)
	if err != nil || u.Path == "" {
		return false
	}

	return mediaExtensions[strings.ToLower(path.Ext(u.Path))]
}
