package cdecl

import "strings"

// parse_english.go parses the pseudo-English sentence grammar (§1,
// §4.2): "declare <name> as <storage-words> <type-phrase>", where a
// type-phrase is built from the closed-class connectives in
// keywords.go (EnglishPointerTo, EnglishArrayOf, ...) wrapping a base
// noun. Like parse_gibberish.go this is hand-written recursive
// descent, reading outside-in this time (English names the outermost
// constructor first, unlike gibberish's inside-out declarator), which
// maps directly onto Arena node construction without needing the
// depth-precedence games ast_compose.go plays for gibberish.
type englishParser struct {
	words []string
	spans []Span
	pos   int
	td    *TypedefTable
	a     *Arena
}

func newEnglishParser(line []byte, td *TypedefTable, a *Arena) *englishParser {
	toks := Tokenize(line)
	var words []string
	var spans []Span
	for _, t := range toks {
		if t.Kind == TokEOF {
			continue
		}
		words = append(words, strings.ToLower(t.Text))
		spans = append(spans, t.Span)
	}
	return &englishParser{words: words, spans: spans, td: td, a: a}
}

func (p *englishParser) eof() bool { return p.pos >= len(p.words) }

func (p *englishParser) word(off int) string {
	if p.pos+off >= len(p.words) {
		return ""
	}
	return p.words[p.pos+off]
}

func (p *englishParser) span() Span {
	if p.pos >= len(p.spans) {
		if len(p.spans) == 0 {
			return Span{}
		}
		return p.spans[len(p.spans)-1]
	}
	return p.spans[p.pos]
}

// matchPhrase greedily matches a space-joined multi-word connective
// and advances past it. It does no longest-first search of its own:
// where two phrases share a first word ("pointer to member of" and
// "pointer to"), the caller tries the longer one first.
func (p *englishParser) matchPhrase(phrase string) bool {
	words := strings.Fields(phrase)
	for i, w := range words {
		if p.word(i) != w {
			return false
		}
	}
	p.pos += len(words)
	return true
}

// ParseEnglishDeclaration parses "declare <name> as <type-phrase>" and
// returns the resulting declarator plus the declared name.
func ParseEnglishDeclaration(line []byte, td *TypedefTable, a *Arena) (NodeID, string, *Diagnostic) {
	p := newEnglishParser(line, td, a)
	if !p.matchPhrase(EnglishDeclare) {
		d := errf("english", p.span(), "", "expected `declare`")
		return NoNode, "", &d
	}
	if p.eof() {
		d := errf("english", p.span(), "", "expected a name")
		return NoNode, "", &d
	}
	name := p.word(0)
	p.pos++
	if !p.matchPhrase(EnglishAs) {
		d := errf("english", p.span(), "", "expected `as`")
		return NoNode, "", &d
	}
	decl, d := p.parseTypePhrase(0)
	if d != nil {
		return NoNode, "", d
	}
	if !p.eof() {
		d := errf("english", p.span(), "", "unexpected trailing words: %s", strings.Join(p.words[p.pos:], " "))
		return NoNode, "", &d
	}
	return decl, name, nil
}

// parseTypePhrase parses one recursive type-phrase, depth being the
// pointer/reference/array/function nesting level reached so far. It
// is recorded on each Arena node (CheckWarnings reads it) and takes
// no part in precedence: English has no parenthesization ambiguity to
// resolve, unlike gibberish.
func (p *englishParser) parseTypePhrase(depth int) (NodeID, *Diagnostic) {
	qual := p.parseQualifierWords()
	sp := p.span()

	switch {
	case p.matchPhrase(EnglishPointerToMem):
		owner := p.readScopedName()
		inner, d := p.parseTypePhrase(depth + 1)
		if d != nil {
			return NoNode, d
		}
		return p.a.NewPointerToMember(inner, owner, qual, depth, sp), nil

	case p.matchPhrase(EnglishPointerTo):
		inner, d := p.parseTypePhrase(depth + 1)
		if d != nil {
			return NoNode, d
		}
		return p.a.NewPointer(inner, qual, depth, sp), nil

	case p.matchPhrase(EnglishRvalueRefTo):
		inner, d := p.parseTypePhrase(depth + 1)
		if d != nil {
			return NoNode, d
		}
		return p.a.NewRvalueReference(inner, depth, sp), nil

	case p.matchPhrase(EnglishReferenceTo):
		inner, d := p.parseTypePhrase(depth + 1)
		if d != nil {
			return NoNode, d
		}
		return p.a.NewReference(inner, depth, sp), nil

	case p.matchPhrase(EnglishVariableArray):
		inner, d := p.parseTypePhrase(depth + 1)
		if d != nil {
			return NoNode, d
		}
		return p.a.NewArray(inner, ArrayVariableLength, false, qual, depth, sp), nil

	case p.matchPhrase(EnglishArrayOf):
		size := ArrayUnspecified
		if n, ok := p.readNumber(); ok {
			size = n
			p.matchPhrase("of")
		}
		inner, d := p.parseTypePhrase(depth + 1)
		if d != nil {
			return NoNode, d
		}
		return p.a.NewArray(inner, size, false, qual, depth, sp), nil

	case p.matchPhrase(EnglishConstructorOf):
		owner := p.readScopedName()
		params, d := p.parseEnglishParams()
		if d != nil {
			return NoNode, d
		}
		return p.a.NewConstructor(owner, params, qual, sp), nil

	case p.matchPhrase(EnglishDestructorOf):
		owner := p.readScopedName()
		return p.a.NewDestructor(owner, qual, sp), nil

	case p.matchPhrase(EnglishConversionOp):
		owner := p.readScopedName()
		p.matchPhrase(EnglishAs)
		target, d := p.parseTypePhrase(depth + 1)
		if d != nil {
			return NoNode, d
		}
		return p.a.NewUserDefinedConversion(owner, target, qual, sp), nil

	case p.matchPhrase(EnglishFunctionOf) || p.matchPhrase(EnglishBlock):
		isBlock := p.words[p.pos-1] == "block"
		params, d := p.parseEnglishParams()
		if d != nil {
			return NoNode, d
		}
		var ret NodeID = NoNode
		if p.matchPhrase(EnglishReturning) {
			ret, d = p.parseTypePhrase(depth + 1)
			if d != nil {
				return NoNode, d
			}
		} else {
			ret = p.a.NewBuiltin(BaseT(BaseVoid), ScopedName{}, depth+1, sp)
		}
		variadic := hasVariadicParam(params)
		if variadic {
			params = params[:len(params)-1]
		}
		if isBlock {
			return p.a.NewAppleBlock(ret, params, depth, sp), nil
		}
		return p.a.NewFunction(ret, params, variadic, qual, depth, sp), nil
	}

	return p.parseBaseType(qual, depth, sp)
}

func hasVariadicParam(params []Param) bool {
	for _, p := range params {
		if p.Name == "..." {
			return true
		}
	}
	return false
}

// parseEnglishParams parses "taking <p1>, <p2>, ..." or
// "no parameters", stopping before "returning".
func (p *englishParser) parseEnglishParams() ([]Param, *Diagnostic) {
	if p.matchPhrase(EnglishNoParams) {
		return nil, nil
	}
	if !p.matchPhrase(EnglishTaking) {
		return nil, nil
	}
	var params []Param
	for {
		if p.matchPhrase(EnglishVariadic) {
			params = append(params, Param{Name: "..."})
			break
		}
		decl, d := p.parseTypePhrase(0)
		if d != nil {
			return nil, d
		}
		params = append(params, Param{Type: decl})
		if p.word(0) == "," {
			p.pos++
			continue
		}
		if p.matchPhrase("and") {
			continue
		}
		break
	}
	return params, nil
}

// parseQualifierWords consumes any leading storage/qualifier English
// words (e.g. "constant", "static") before a type-phrase's connective
// or base noun.
func (p *englishParser) parseQualifierWords() TypeBits {
	bits := newTypeBits()
	for {
		w := p.word(0)
		if s, ok := englishStorageWords[w]; ok {
			add(&bits, StT(s), "english", p.span())
			p.pos++
			continue
		}
		if a, ok := englishAttrWords[w]; ok {
			add(&bits, AtT(a), "english", p.span())
			p.pos++
			continue
		}
		break
	}
	return bits
}

// parseBaseType consumes the base-type noun phrase (possibly several
// words: "unsigned long long integer") and, if it names a known
// typedef, resolves it directly.
func (p *englishParser) parseBaseType(qual TypeBits, depth int, sp Span) (NodeID, *Diagnostic) {
	bits := qual
	var ecsuKind BaseBit
	var haveECSU bool
	var ecsuName ScopedName

	for !p.eof() {
		w := p.word(0)
		if b, ok := englishBaseWords[w]; ok {
			if isEcsuKind(b) {
				ecsuKind = b
				haveECSU = true
				p.pos++
				if !p.eof() && p.word(0) != "" {
					ecsuName = NewScopedName(p.word(0))
					p.pos++
				}
				continue
			}
			add(&bits, BaseT(b), "english", p.span())
			p.pos++
			continue
		}
		if def, ok := p.td.Lookup(w); ok {
			bits = def.Bits
			p.pos++
			break
		}
		break
	}

	if haveECSU {
		bits.Base.Set(uint(ecsuKind))
	}
	bits = normalize(bits)
	if haveECSU {
		return p.a.NewECSU(ecsuKindToNode(ecsuKind), ecsuName, bits, depth, sp), nil
	}
	if legal := check(bits); legal.Empty() {
		d := errf("english", sp, "", "`%s` is not a valid type", nameEnglish(bits))
		return NoNode, &d
	}
	return p.a.NewBuiltin(bits, ScopedName{}, depth, sp), nil
}

func ecsuKindToNode(b BaseBit) NodeKind {
	switch b {
	case BaseEnum:
		return NodeEnum
	case BaseClass:
		return NodeClass
	case BaseStruct:
		return NodeStruct
	case BaseUnion:
		return NodeUnion
	default:
		return NodeBuiltin
	}
}

func (p *englishParser) readScopedName() ScopedName {
	if p.eof() {
		return ScopedName{}
	}
	name := NewScopedName(p.word(0))
	p.pos++
	return name
}

func (p *englishParser) readNumber() (int, bool) {
	w := p.word(0)
	n := 0
	matched := false
	for _, r := range w {
		if r < '0' || r > '9' {
			if matched {
				break
			}
			return 0, false
		}
		n = n*10 + int(r-'0')
		matched = true
	}
	if matched {
		p.pos++
		return n, true
	}
	return 0, false
}
