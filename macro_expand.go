package cdecl

import "strings"

// macro_expand.go implements §4.6's expansion algorithm: parameter
// substitution with pre-expansion caching, `#` stringification, `##`
// token pasting, `__VA_ARGS__`/`__VA_OPT__`, the self-reference guard
// ("expanding set" -- a macro painted blue while it is being expanded
// is not expanded again inside its own body, C99 6.10.3.4), and
// recursive rescanning of the result.
type expandState struct {
	table     *MacroTable
	line      int
	expanding map[string]bool // the "blue paint" self-reference guard
	trace     *expandTrace
}

func newExpandState(t *MacroTable, line int) *expandState {
	return &expandState{table: t, line: line, expanding: map[string]bool{}, trace: newExpandTrace()}
}

// Expand fully macro-expands `input` and returns the result plus the
// indented trace built along the way (§4.6.4).
func Expand(t *MacroTable, line int, input string) (string, string) {
	st := newExpandState(t, line)
	toks := lexPPTokens(input)
	out := st.expandTokens(toks, 0)
	return joinPPTokens(out), st.trace.String()
}

// expandTokens performs one left-to-right pass over toks, expanding
// each macro invocation it finds and re-scanning the result in place
// (§4.6's "six-step pipeline": identify invocation, collect arguments,
// pre-expand each argument, substitute into the body honoring `#`/`##`,
// paint the macro name blue for the duration, rescan).
func (st *expandState) expandTokens(toks []PPToken, depth int) []PPToken {
	var out []PPToken
	i := 0
	for i < len(toks) {
		t := toks[i]
		if t.Kind != PPIdent {
			out = append(out, t)
			i++
			continue
		}
		if t.Text == "__LINE__" {
			out = append(out, PPToken{Kind: PPNumber, Text: itoa(st.line)})
			i++
			continue
		}
		m, ok := st.table.Lookup(t.Text)
		if !ok || st.expanding[t.Text] {
			out = append(out, t)
			i++
			continue
		}
		if m.Dynamic != nil {
			out = append(out, PPToken{Kind: PPString, Text: m.Dynamic(st.line)})
			i++
			continue
		}
		if !m.IsFunction {
			st.trace.enter(m.Name, joinPPTokens(m.Body))
			st.expanding[t.Text] = true
			expanded := st.expandTokens(m.Body, depth+1)
			delete(st.expanding, t.Text)
			st.trace.exit()
			out = append(out, expanded...)
			i++
			continue
		}
		// Function-like: only an invocation if `(` follows (skipping
		// intervening whitespace tokens), per C99 6.10.3.
		j := i + 1
		for j < len(toks) && toks[j].Kind == PPSpace {
			j++
		}
		if j >= len(toks) || toks[j].Text != "(" {
			out = append(out, t)
			i++
			continue
		}
		args, after, ok := collectArgs(toks, j+1)
		if !ok {
			out = append(out, t)
			i++
			continue
		}
		body := st.substitute(m, args)
		st.trace.enter(m.Name, joinPPTokens(body))
		st.expanding[t.Text] = true
		expanded := st.expandTokens(body, depth+1)
		delete(st.expanding, t.Text)
		st.trace.exit()
		out = append(out, expanded...)
		i = after
	}
	return out
}

// collectArgs reads the comma-separated, paren-balanced argument list
// starting just after a function-like macro's `(`. Returns the index
// just past the matching `)`.
func collectArgs(toks []PPToken, start int) (args [][]PPToken, after int, ok bool) {
	depth := 0
	var cur []PPToken
	i := start
	for i < len(toks) {
		t := toks[i]
		if t.Kind == PPPunct && t.Text == "(" {
			depth++
			cur = append(cur, t)
			i++
			continue
		}
		if t.Kind == PPPunct && t.Text == ")" {
			if depth == 0 {
				args = append(args, trimSpaceToks(cur))
				return args, i + 1, true
			}
			depth--
			cur = append(cur, t)
			i++
			continue
		}
		if t.Kind == PPPunct && t.Text == "," && depth == 0 {
			args = append(args, trimSpaceToks(cur))
			cur = nil
			i++
			continue
		}
		cur = append(cur, t)
		i++
	}
	return nil, start, false
}

func trimSpaceToks(toks []PPToken) []PPToken {
	i, j := 0, len(toks)
	for i < j && toks[i].Kind == PPSpace {
		i++
	}
	for j > i && toks[j-1].Kind == PPSpace {
		j--
	}
	return toks[i:j]
}

// substitute builds the replacement token list for a function-like
// macro invocation, handling `#param` stringification, `a##b` pasting,
// and `__VA_ARGS__`/`__VA_OPT__` before substituting each remaining
// parameter with its (separately pre-expanded) argument (§4.6.2-4.6.3).
func (st *expandState) substitute(m *Macro, args [][]PPToken) []PPToken {
	named := len(m.Params)
	variadicArgs := ([]PPToken)(nil)
	if m.Variadic && len(args) > named {
		var joined []PPToken
		for i := named; i < len(args); i++ {
			if i > named {
				joined = append(joined, PPToken{Kind: PPPunct, Text: ","}, PPToken{Kind: PPSpace, Text: " "})
			}
			joined = append(joined, args[i]...)
		}
		variadicArgs = joined
	}

	preExpanded := make(map[string][]PPToken, named)
	for i, p := range m.Params {
		if i < len(args) {
			preExpanded[p] = st.expandTokens(args[i], 1000) // pre-expand per §4.6.2, guard depth unused here
		}
	}

	var out []PPToken
	body := m.Body
	for i := 0; i < len(body); i++ {
		t := body[i]

		if t.Kind == PPPunct && t.Text == "#" && i+1 < len(body) {
			next := body[i+1]
			if next.Kind == PPIdent {
				var raw []PPToken
				if next.Text == "__VA_ARGS__" {
					raw = variadicArgs
				} else if a, ok := findArg(m.Params, args, next.Text); ok {
					raw = a
				}
				out = append(out, PPToken{Kind: PPString, Text: stringize(raw)})
				i++
				continue
			}
		}

		if t.Kind == PPIdent && t.Text == "__VA_OPT__" && i+1 < len(body) && body[i+1].Text == "(" {
			depth := 0
			j := i + 1
			var inner []PPToken
			for ; j < len(body); j++ {
				if body[j].Text == "(" {
					depth++
					if depth == 1 {
						continue
					}
				}
				if body[j].Text == ")" {
					depth--
					if depth == 0 {
						break
					}
				}
				inner = append(inner, body[j])
			}
			if len(variadicArgs) > 0 {
				out = append(out, inner...)
			}
			i = j
			continue
		}

		if t.Kind == PPIdent && t.Text == "__VA_ARGS__" {
			out = append(out, variadicArgs...)
			continue
		}

		if t.Kind == PPIdent {
			if sub, ok := preExpanded[t.Text]; ok {
				if pastesNext(body, i) || pastesPrev(body, i) {
					if raw, ok2 := findArg(m.Params, args, t.Text); ok2 {
						out = append(out, raw...)
						continue
					}
				}
				out = append(out, sub...)
				continue
			}
		}

		out = append(out, t)
	}

	return pasteTokens(out)
}

func findArg(params []string, args [][]PPToken, name string) ([]PPToken, bool) {
	for i, p := range params {
		if p == name && i < len(args) {
			return args[i], true
		}
	}
	return nil, false
}

func pastesNext(body []PPToken, i int) bool {
	j := i + 1
	for j < len(body) && body[j].Kind == PPSpace {
		j++
	}
	return j < len(body) && body[j].Text == "##"
}

func pastesPrev(body []PPToken, i int) bool {
	j := i - 1
	for j >= 0 && body[j].Kind == PPSpace {
		j--
	}
	return j >= 0 && body[j].Text == "##"
}

func stringize(toks []PPToken) string {
	var b strings.Builder
	b.WriteByte('"')
	prevSpace := false
	for _, t := range toks {
		if t.Kind == PPSpace {
			prevSpace = true
			continue
		}
		if prevSpace && b.Len() > 1 {
			b.WriteByte(' ')
		}
		prevSpace = false
		if t.Kind == PPString || t.Kind == PPChar {
			b.WriteString(strings.ReplaceAll(strings.ReplaceAll(t.Text, `\`, `\\`), `"`, `\"`))
		} else {
			b.WriteString(t.Text)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// pasteTokens resolves every `##` operator left in toks by
// concatenating its neighbors into one token (§4.6.3); the pasted
// result is re-lexed so e.g. `foo ## bar` becomes one identifier
// token, not two adjacent ones.
func pasteTokens(toks []PPToken) []PPToken {
	var out []PPToken
	i := 0
	for i < len(toks) {
		if toks[i].Kind != PPSpace && i+1 < len(toks) && isPastePunct(toks, i+1) {
			left := toks[i]
			j := i + 1
			for j < len(toks) && toks[j].Kind == PPSpace {
				j++
			}
			j++ // skip "##"
			for j < len(toks) && toks[j].Kind == PPSpace {
				j++
			}
			if j < len(toks) {
				pasted := lexPPTokens(left.Text + toks[j].Text)
				out = append(out, pasted...)
				i = j + 1
				continue
			}
		}
		out = append(out, toks[i])
		i++
	}
	return out
}

func isPastePunct(toks []PPToken, from int) bool {
	j := from
	for j < len(toks) && toks[j].Kind == PPSpace {
		j++
	}
	return j < len(toks) && toks[j].Kind == PPPunct && toks[j].Text == "##"
}
