package html

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/editable/internal/core/domain"
	"github.com/custodia-labs/editable/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.TracingNormaliser = (*Normaliser)(nil)

// minPasses is the pass budget of an empty input. Longer inputs get one
// extra pass per byte, since a pass that changes anything rewrites a tag.
const minPasses = 8

// nbsp is the content of a canonical empty paragraph.
const nbsp = "\u00a0"

// Normaliser canonicalises editor markup.
type Normaliser struct {
	rules []rule
}

// New creates a new HTML normaliser.
func New() *Normaliser {
	return &Normaliser{rules: defaultRules()}
}

// rule is one named rewrite stage.
type rule struct {
	name  string
	apply func(string) string
}

// Normalise returns the canonical form of markup.
func (n *Normaliser) Normalise(markup string) string {
	out := markup
	for i := 0; i < minPasses+len(markup); i++ {
		next := n.pass(out)
		if next == out {
			break
		}
		out = next
	}
	return out
}

// Rules returns the rule names in application order.
func (n *Normaliser) Rules() []string {
	names := make([]string, len(n.rules))
	for i, r := range n.rules {
		names[i] = r.name
	}
	return names
}

// Trace applies a single pass and records the output of every rule.
func (n *Normaliser) Trace(markup string) []domain.RuleStep {
	steps := make([]domain.RuleStep, 0, len(n.rules))
	for _, r := range n.rules {
		markup = r.apply(markup)
		steps = append(steps, domain.RuleStep{Rule: r.name, Output: markup})
	}
	return steps
}

func (n *Normaliser) pass(markup string) string {
	for _, r := range n.rules {
		markup = r.apply(markup)
	}
	return markup
}

// Pre-compiled regular expressions, grouped by rule.
var (
	webkitPlaceholder = regexp.MustCompile(`(?i)<br class="webkit-block-placeholder">`)
	appleSpanOpen     = regexp.MustCompile(`(?i)<span class="Apple-style-span">`)
	appleClassAttr    = regexp.MustCompile(`(?i) class="Apple-style-span"`)
	emptyStyleSpan    = regexp.MustCompile(`(?i)<span style="">`)

	paddedBreakPara = regexp.MustCompile(`(?i)<p>\s*<br\s*/?>\s*</p>`)
	blankPara       = regexp.MustCompile(`(?i)<p>(?:&nbsp;|\s|\x{00a0})*</p>`)

	breakBeforeParaClose = regexp.MustCompile(`(?i)(?:\s*<br\s*/?>)+\s*</p>`)
	anyBreak             = regexp.MustCompile(`(?i)<br\s*/?>`)

	leadingBreaks  = regexp.MustCompile(`^\s*(?:<br />\s*)+`)
	trailingBreaks = regexp.MustCompile(`(?:\s*<br />)+\s*$`)

	breakAfterOpen = regexp.MustCompile(`(?i)>(?:<br />)+`)

	breakBeforeBlockClose = regexp.MustCompile(`(?i)(?:<br />\s*)+</(h[1-6]|li|p)\b`)

	emptyElement = regexp.MustCompile(`<([a-zA-Z][a-zA-Z0-9]*)(\s[^<>]*)?>\s*</([a-zA-Z][a-zA-Z0-9]*)\s*>`)

	boldSpanOpen   = regexp.MustCompile(`(?i)<span style="font-weight: bold;">`)
	italicSpanOpen = regexp.MustCompile(`(?i)<span style="font-style: italic;">`)
	legacyBold     = regexp.MustCompile(`(?i)<b(\s+|>)`)
	legacyBoldEnd  = regexp.MustCompile(`(?i)</b(\s+|>)`)
	legacyItal     = regexp.MustCompile(`(?i)<i(\s+|>)`)
	legacyItalEnd  = regexp.MustCompile(`(?i)</i(\s+|>)`)

	tagName  = regexp.MustCompile(`<[^>\s]*`)
	startTag = regexp.MustCompile(`<([a-zA-Z][a-zA-Z0-9:-]*)([^<>]*)>`)
	attr     = regexp.MustCompile(`(\s+)([^\s"'=<>/]+)(?:(\s*=\s*)("[^"]*"|'[^']*'|[^\s"'<>]+))?`)
)

func defaultRules() []rule {
	return []rule{
		{"vendor-artifacts", stripVendorArtifacts},
		{"empty-paragraphs", normaliseEmptyParagraphs},
		{"break-tags", canonicaliseBreaks},
		{"boundary-breaks", trimBoundaryBreaks},
		{"redundant-breaks", replaceWith(breakAfterOpen, ">")},
		{"pre-closing-breaks", replaceWith(breakBeforeBlockClose, "</$1")},
		{"empty-elements", pruneEmptyElements},
		{"semantic-tags", promoteSemanticTags},
		{"tag-case", lowerTagNames},
		{"attribute-case", rewriteAttributes(lowerName)},
		{"attribute-quotes", rewriteAttributes(quoteValue)},
		{"trim", strings.TrimSpace},
	}
}

func replaceWith(re *regexp.Regexp, repl string) func(string) string {
	return func(s string) string {
		return re.ReplaceAllString(s, repl)
	}
}

// stripVendorArtifacts removes WebKit placeholder markup, keeping the
// content of any unwrapped span.
func stripVendorArtifacts(s string) string {
	s = webkitPlaceholder.ReplaceAllString(s, "<br />")
	s = rewrapElements(s, appleSpanOpen, spanTag, "", "")
	s = appleClassAttr.ReplaceAllString(s, "")
	return rewrapElements(s, emptyStyleSpan, spanTag, "", "")
}

func normaliseEmptyParagraphs(s string) string {
	s = paddedBreakPara.ReplaceAllString(s, "<p>"+nbsp+"</p>")
	return blankPara.ReplaceAllString(s, "<p>"+nbsp+"</p>")
}

func canonicaliseBreaks(s string) string {
	s = breakBeforeParaClose.ReplaceAllString(s, "</p>")
	return anyBreak.ReplaceAllString(s, "<br />")
}

func trimBoundaryBreaks(s string) string {
	s = leadingBreaks.ReplaceAllString(s, "")
	return trailingBreaks.ReplaceAllString(s, "")
}

// pruneEmptyElements deletes opening/closing pairs with only whitespace
// between them until none remain. Pairs whose names differ, and
// self-closed openers, are kept.
func pruneEmptyElements(s string) string {
	for {
		next := emptyElement.ReplaceAllStringFunc(s, func(m string) string {
			sub := emptyElement.FindStringSubmatch(m)
			if !strings.EqualFold(sub[1], sub[3]) || strings.HasSuffix(sub[2], "/") {
				return m
			}
			return ""
		})
		if next == s {
			return s
		}
		s = next
	}
}

func promoteSemanticTags(s string) string {
	s = rewrapElements(s, boldSpanOpen, spanTag, "<strong>", "</strong>")
	s = rewrapElements(s, italicSpanOpen, spanTag, "<em>", "</em>")
	s = legacyBold.ReplaceAllString(s, "<strong$1")
	s = legacyBoldEnd.ReplaceAllString(s, "</strong$1")
	s = legacyItal.ReplaceAllString(s, "<em$1")
	return legacyItalEnd.ReplaceAllString(s, "</em$1")
}

func lowerTagNames(s string) string {
	return tagName.ReplaceAllStringFunc(s, strings.ToLower)
}

// rewriteAttributes applies fn to every attribute of every start tag.
// Text between attributes is copied verbatim.
func rewriteAttributes(fn func(name, eq, value string) (string, string)) func(string) string {
	return func(s string) string {
		return startTag.ReplaceAllStringFunc(s, func(tag string) string {
			sub := startTag.FindStringSubmatchIndex(tag)
			rest := tag[sub[4]:sub[5]]
			var b strings.Builder
			b.Grow(len(tag) + 8)
			b.WriteString(tag[:sub[4]])
			last := 0
			for _, m := range attr.FindAllStringSubmatchIndex(rest, -1) {
				b.WriteString(rest[last:m[0]])
				b.WriteString(rest[m[2]:m[3]])
				name := rest[m[4]:m[5]]
				var eq, value string
				if m[6] >= 0 {
					eq, value = rest[m[6]:m[7]], rest[m[8]:m[9]]
				}
				name, value = fn(name, eq, value)
				b.WriteString(name)
				b.WriteString(eq)
				b.WriteString(value)
				last = m[1]
			}
			b.WriteString(rest[last:])
			b.WriteString(">")
			return b.String()
		})
	}
}

func lowerName(name, _, value string) (string, string) {
	return strings.ToLower(name), value
}

func quoteValue(name, eq, value string) (string, string) {
	if eq == "" || value == "" || value[0] == '"' || value[0] == '\'' {
		return name, value
	}
	return name, `"` + value + `"`
}
