package export

import (
	"regexp"
	"strings"
	"time"
)

// Layout is a pure function from (report text, metadata) to a
// page-structured document; rendering backends consume the Document and
// never look at the raw markup.

type Meta struct {
	Title         string
	Subtitle      string
	RecipientName *string
	GeneratedAt   time.Time
}

// Span is a run of text with one emphasis state.
type Span struct {
	Text string
	Bold bool
}

type Line []Span

type Page struct {
	Lines []Line
}

type Document struct {
	Title         string
	Subtitle      string
	RecipientLine string // empty when no recipient
	Footer        string
	Pages         []Page
}

const (
	// Wrapped body line width in characters and fixed page capacities.
	// Breaks happen at these offsets, never at semantic boundaries.
	bodyLineWidth  = 92
	linesFirstPage = 34 // the title block eats into page one
	linesPerPage   = 44
)

var (
	boldRe      = regexp.MustCompile(`\*\*(.*?)\*\*`)
	strikeMdRe  = regexp.MustCompile(`~~(.*?)~~`)
	strikeTagRe = regexp.MustCompile(`(?i)</?(s|del)>`)
)

func DefaultMeta(recipient *string) Meta {
	return Meta{
		Title:         "Relationnel",
		Subtitle:      "Rapport de vos socles relationnels",
		RecipientName: recipient,
		GeneratedAt:   time.Now(),
	}
}

// BuildDocument lays the report content out into fixed-capacity pages.
// Bold markers become emphasised spans, leftover strike markers are
// dropped, and every source line break survives as a line break.
func BuildDocument(content string, meta Meta) Document {
	doc := Document{
		Title:    meta.Title,
		Subtitle: meta.Subtitle,
		Footer:   "Généré le " + meta.GeneratedAt.Format("02/01/2006") + " par Relationnel",
	}
	if meta.RecipientName != nil && strings.TrimSpace(*meta.RecipientName) != "" {
		doc.RecipientLine = "Généré pour " + strings.TrimSpace(*meta.RecipientName)
	}

	content = strikeMdRe.ReplaceAllString(content, "$1")
	content = strikeTagRe.ReplaceAllString(content, "")
	content = strings.ReplaceAll(content, "\r\n", "\n")

	var lines []Line
	for _, raw := range strings.Split(content, "\n") {
		lines = append(lines, wrapSpans(parseSpans(raw), bodyLineWidth)...)
	}

	doc.Pages = paginate(lines)
	return doc
}

// parseSpans splits one source line into bold/plain runs.
func parseSpans(line string) Line {
	var spans Line
	rest := line
	for {
		loc := boldRe.FindStringSubmatchIndex(rest)
		if loc == nil {
			break
		}
		if loc[0] > 0 {
			spans = append(spans, Span{Text: rest[:loc[0]]})
		}
		spans = append(spans, Span{Text: rest[loc[2]:loc[3]], Bold: true})
		rest = rest[loc[1]:]
	}
	if rest != "" || len(spans) == 0 {
		spans = append(spans, Span{Text: rest})
	}
	return spans
}

// wrapSpans re-flows one logical line into physical lines of at most
// width runes, preferring to break at a space.
func wrapSpans(spans Line, width int) []Line {
	var (
		out     []Line
		current Line
		used    int
	)
	flush := func() {
		out = append(out, current)
		current = nil
		used = 0
	}

	for _, sp := range spans {
		text := sp.Text
		for len([]rune(text)) > width-used {
			if width-used <= 0 {
				flush()
				continue
			}
			runes := []rune(text)
			cut := width - used
			// look back for a space to break on
			brk := cut
			for brk > 0 && runes[brk-1] != ' ' {
				brk--
			}
			if brk == 0 {
				brk = cut
			}
			current = append(current, Span{Text: strings.TrimRight(string(runes[:brk]), " "), Bold: sp.Bold})
			flush()
			text = strings.TrimLeft(string(runes[brk:]), " ")
		}
		if text != "" || len(spans) == 1 {
			current = append(current, Span{Text: text, Bold: sp.Bold})
			used += len([]rune(text))
		}
	}
	if len(current) > 0 {
		flush()
	}
	if len(out) == 0 {
		out = append(out, Line{Span{}})
	}
	return out
}

// paginate cuts the line list at fixed offsets.
func paginate(lines []Line) []Page {
	var pages []Page
	capacity := linesFirstPage
	for len(lines) > 0 {
		n := capacity
		if n > len(lines) {
			n = len(lines)
		}
		pages = append(pages, Page{Lines: lines[:n]})
		lines = lines[n:]
		capacity = linesPerPage
	}
	if len(pages) == 0 {
		pages = append(pages, Page{})
	}
	return pages
}
