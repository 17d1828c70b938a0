// Package orca turns a questionnaire's answers into an ORCA input
// document. The catalog in fields.go declares the questions; Generate maps
// a translated answer set onto an Input; Render serializes it.
package orca

import (
	"fmt"
	"strings"
)

// Names of the inline sections. Everything else added to an Input renders
// as a named %block.
const (
	SectionComment  = "#"
	SectionKeywords = "!"
	SectionMaxcore  = "maxcore"
	SectionGeometry = "*"
)

// Input is an ordered ORCA input document: sections hold emitted tokens in
// the order they were added, and named blocks render in the order they
// were first touched. The empty string is the null token; Render skips it,
// so callers can add conditional tokens without guarding each one.
type Input struct {
	order    []string
	sections map[string][]string
}

// NewInput returns an empty document.
func NewInput() *Input {
	return &Input{sections: make(map[string][]string)}
}

// Add appends tokens to a section, creating the section on first use.
func (in *Input) Add(section string, tokens ...string) {
	if _, ok := in.sections[section]; !ok {
		in.order = append(in.order, section)
		in.sections[section] = []string{}
	}
	in.sections[section] = append(in.sections[section], tokens...)
}

// Addf appends one formatted token.
func (in *Input) Addf(section, format string, args ...any) {
	in.Add(section, fmt.Sprintf(format, args...))
}

// Tokens returns the tokens of a section, null tokens included.
func (in *Input) Tokens(section string) []string {
	toks := in.sections[section]
	out := make([]string, len(toks))
	copy(out, toks)
	return out
}

// Sections returns every section name in first-touch order.
func (in *Input) Sections() []string {
	out := make([]string, len(in.order))
	copy(out, in.order)
	return out
}

// Render serializes the document. Comment lines come first, then the
// keyword line (the bare prefix when no keywords are set), a %maxcore
// directive when one was set, and the geometry line after a blank line.
// Named blocks follow in first-touch order, one token per line, each
// preceded by a blank line and closed with "end"; a block whose tokens are
// all null is omitted entirely. Rendering the same document twice yields
// identical bytes.
func (in *Input) Render() string {
	var lines []string

	for _, tok := range nonNull(in.sections[SectionComment]) {
		lines = append(lines, "# "+tok)
	}

	if kw := nonNull(in.sections[SectionKeywords]); len(kw) > 0 {
		lines = append(lines, "! "+strings.Join(kw, " "))
	} else {
		lines = append(lines, "!")
	}

	if mc := nonNull(in.sections[SectionMaxcore]); len(mc) > 0 {
		lines = append(lines, "%maxcore "+strings.Join(mc, " "))
	}

	lines = append(lines, "\n*"+strings.Join(nonNull(in.sections[SectionGeometry]), " "))

	for _, name := range in.order {
		switch name {
		case SectionComment, SectionKeywords, SectionMaxcore, SectionGeometry:
			continue
		}
		toks := nonNull(in.sections[name])
		if len(toks) == 0 {
			continue
		}
		lines = append(lines, "\n%"+name)
		for _, tok := range toks {
			lines = append(lines, " "+tok)
		}
		lines = append(lines, "end")
	}

	return strings.Join(lines, "\n")
}

func nonNull(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}
