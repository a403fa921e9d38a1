package cdecl

// macro_token.go is the preprocessor's own token model (§4.6), distinct
// from scan.go's declaration-grammar Token: a macro body is a plain
// sequence of pp-tokens (identifiers, punctuators, numbers, string
// literals, and whitespace where it's significant for stringification)
// rather than a typed declarator vocabulary.
type PPTokenKind int

const (
	PPIdent PPTokenKind = iota
	PPNumber
	PPString
	PPChar
	PPPunct
	PPSpace // one run of horizontal whitespace, preserved for `#` stringification
	PPOther
)

type PPToken struct {
	Kind PPTokenKind
	Text string
}

// lexPPTokens splits `s` into preprocessor tokens. Grounded on
// base_parser.go's rune-cursor scanning style, reused here for the C
// token grammar rather than the grammar-definition language the
// teacher built it for.
func lexPPTokens(s string) []PPToken {
	rs := []rune(s)
	var out []PPToken
	i := 0
	for i < len(rs) {
		r := rs[i]
		switch {
		case r == ' ' || r == '\t':
			j := i
			for j < len(rs) && (rs[j] == ' ' || rs[j] == '\t') {
				j++
			}
			out = append(out, PPToken{Kind: PPSpace, Text: string(rs[i:j])})
			i = j

		case isIdentStart(r):
			j := i
			for j < len(rs) && isIdentCont(rs[j]) {
				j++
			}
			out = append(out, PPToken{Kind: PPIdent, Text: string(rs[i:j])})
			i = j

		case r >= '0' && r <= '9':
			j := i
			for j < len(rs) && (isIdentCont(rs[j]) || rs[j] == '.') {
				j++
			}
			out = append(out, PPToken{Kind: PPNumber, Text: string(rs[i:j])})
			i = j

		case r == '"':
			j := i + 1
			for j < len(rs) && rs[j] != '"' {
				if rs[j] == '\\' {
					j++
				}
				j++
			}
			if j < len(rs) {
				j++
			}
			out = append(out, PPToken{Kind: PPString, Text: string(rs[i:j])})
			i = j

		case r == '\'':
			j := i + 1
			for j < len(rs) && rs[j] != '\'' {
				if rs[j] == '\\' {
					j++
				}
				j++
			}
			if j < len(rs) {
				j++
			}
			out = append(out, PPToken{Kind: PPChar, Text: string(rs[i:j])})
			i = j

		case hasRunePrefix(rs, i, "##"):
			out = append(out, PPToken{Kind: PPPunct, Text: "##"})
			i += 2

		default:
			out = append(out, PPToken{Kind: PPPunct, Text: string(r)})
			i++
		}
	}
	return out
}

func isIdentStart(r rune) bool {
	return r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isIdentCont(r rune) bool {
	return isIdentStart(r) || (r >= '0' && r <= '9')
}

func hasRunePrefix(rs []rune, i int, lit string) bool {
	litRs := []rune(lit)
	if i+len(litRs) > len(rs) {
		return false
	}
	for k, r := range litRs {
		if rs[i+k] != r {
			return false
		}
	}
	return true
}

// joinPPTokens re-renders a token slice back to source text, the
// inverse of lexPPTokens.
func joinPPTokens(toks []PPToken) string {
	var b []byte
	for _, t := range toks {
		b = append(b, t.Text...)
	}
	return string(b)
}
