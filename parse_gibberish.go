package cdecl

import (
	"fmt"
	"strconv"
)

// parse_gibberish.go is a recursive-descent parser for a C/C++
// declaration, in the tradition of the "cdecl" family's own gibberish
// grammar: a specifier sequence followed by one declarator, where the
// declarator itself is read inside-out (§4.2.1-§4.2.4). Grounded on
// base_parser.go's single-token-lookahead, cursor-driven style, but
// hand-written recursive descent rather than PEG-compiled, since our
// grammar is fixed and small enough not to need a generator.
type gibberishParser struct {
	toks []Token
	pos  int
	td   *TypedefTable
	a    *Arena
}

func newGibberishParser(line []byte, td *TypedefTable, a *Arena) *gibberishParser {
	return &gibberishParser{toks: Tokenize(line), td: td, a: a}
}

func (p *gibberishParser) peek() Token  { return p.toks[p.pos] }
func (p *gibberishParser) peekAt(n int) Token {
	if p.pos+n >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.pos+n]
}
func (p *gibberishParser) advance() Token { t := p.toks[p.pos]; if p.pos < len(p.toks)-1 { p.pos++ }; return t }

func (p *gibberishParser) atPunct(s string) bool {
	t := p.peek()
	return (t.Kind == TokPunct && t.Text == s) || (t.Kind == TokEllipsis && s == "...")
}

// baseSpec is what the specifier sequence hands the declarator parser:
// the flattened bits, plus -- when the sequence named a tag type
// (struct/class/enum/union) -- the node kind and tag name the base
// node needs, since TypeBits alone has nowhere to carry a tag name
// (§4.2.1).
type baseSpec struct {
	bits      TypeBits
	haveECSU  bool
	ecsuKind  NodeKind
	ecsuName  ScopedName
	alignment Alignment
}

// ParseGibberishDeclaration parses a full `type-specifier declarator`
// (an optional trailing `;` is tolerated and ignored, matching the
// REPL's copy-paste-from-source convenience).
func ParseGibberishDeclaration(line []byte, td *TypedefTable, a *Arena) (NodeID, string, *Diagnostic) {
	p := newGibberishParser(line, td, a)
	base, d := p.parseSpecifierSeq()
	if d != nil {
		return NoNode, "", d
	}
	decl, name, d := p.parseDeclarator(base, 0)
	if d != nil {
		return NoNode, "", d
	}
	if base.alignment.Kind != AlignNone {
		a.SetAlignment(decl, base.alignment)
	}
	if p.atPunct(";") {
		p.advance()
	}
	if p.peek().Kind != TokEOF {
		d := errf("gibberish", p.peek().Span, "", "unexpected token `%s`", p.peek().Text)
		return NoNode, "", &d
	}
	return decl, name, nil
}

// parseSpecifierSeq consumes the leading run of base/storage/attribute
// keywords and an optional ECSU tag or typedef name (§4.2.1).
func (p *gibberishParser) parseSpecifierSeq() (baseSpec, *Diagnostic) {
	bits := newTypeBits()
	var ecsuName ScopedName
	var haveECSU bool
	var ecsuKind BaseBit
	var alignment Alignment

	for {
		t := p.peek()
		if t.Kind != TokIdent {
			break
		}
		if t.Text == "alignas" {
			p.advance()
			al, d := p.parseAlignasOperand()
			if d != nil {
				return baseSpec{bits: bits}, d
			}
			alignment = al
			continue
		}
		if b, ok := gibberishBaseKeywords[t.Text]; ok {
			if isEcsuKind(b) {
				ecsuKind = b
				haveECSU = true
				p.advance()
				if p.peek().Kind == TokIdent {
					ecsuName = NewScopedName(p.advance().Text)
				}
				continue
			}
			p.advance()
			if d := add(&bits, BaseT(b), "gibberish", t.Span); d != nil {
				return baseSpec{bits: bits}, d
			}
			continue
		}
		if s, ok := gibberishStorageKeywords[t.Text]; ok {
			p.advance()
			if d := add(&bits, StT(s), "gibberish", t.Span); d != nil {
				return baseSpec{bits: bits}, d
			}
			continue
		}
		if def, ok := p.td.Lookup(t.Text); ok {
			p.advance()
			bits = def.Bits
			break
		}
		break
	}

	if haveECSU {
		bits.Base.Set(uint(ecsuKind))
	}
	bits = normalize(bits)
	if legal := check(bits); legal.Empty() {
		d := errf("gibberish", Span{}, "", "`%s` is not a valid type specifier combination", nameC(bits))
		return baseSpec{bits: bits}, &d
	}
	if alignment.Kind != AlignNone && bits.HasStorage(StorageRegister) {
		d := errf("gibberish", Span{}, "", "`alignas` may not combine with `register`")
		return baseSpec{bits: bits}, &d
	}
	return baseSpec{
		bits: bits, haveECSU: haveECSU, ecsuKind: ecsuKindToNode(ecsuKind),
		ecsuName: ecsuName, alignment: alignment,
	}, nil
}

// parseAlignasOperand parses `alignas`'s parenthesized operand: either
// an integer constant, which must be a power of two, or a single base
// type name (§4.3.1). Only a plain base-keyword operand is accepted,
// not an arbitrary declarator -- `alignas(struct Foo)` and similar are
// not produced by either printer and aren't exercised anywhere else in
// this grammar.
func (p *gibberishParser) parseAlignasOperand() (Alignment, *Diagnostic) {
	if !p.atPunct("(") {
		d := errf("gibberish", p.peek().Span, "", "expected `(` after `alignas`")
		return Alignment{}, &d
	}
	open := p.advance()
	if p.peek().Kind == TokNumber {
		tok := p.advance()
		n, err := strconv.Atoi(tok.Text)
		if err != nil || n <= 0 || n&(n-1) != 0 {
			d := errf("gibberish", tok.Span, "", "`alignas` integer operand must be a power of two")
			return Alignment{}, &d
		}
		if !p.atPunct(")") {
			d := errf("gibberish", open.Span, "", "expected `)`")
			return Alignment{}, &d
		}
		p.advance()
		return Alignment{Kind: AlignInteger, Value: n}, nil
	}
	if p.peek().Kind == TokIdent {
		if b, ok := gibberishBaseKeywords[p.peek().Text]; ok && !isEcsuKind(b) {
			tok := p.advance()
			opBits := newTypeBits()
			add(&opBits, BaseT(b), "gibberish", tok.Span)
			typeNode := p.a.NewBuiltin(normalize(opBits), ScopedName{}, 0, tok.Span)
			if !p.atPunct(")") {
				d := errf("gibberish", open.Span, "", "expected `)`")
				return Alignment{}, &d
			}
			p.advance()
			return Alignment{Kind: AlignType, Type: typeNode}, nil
		}
	}
	d := errf("gibberish", p.peek().Span, "", "expected an integer constant or type name in `alignas(...)`")
	return Alignment{}, &d
}

// parseDeclarator parses one declarator: prefix operators and the
// core are parsed first (parsePrefix), then the `[]`/`()` suffix
// chain is applied exactly once, outermost, via parseSuffixes. This
// ordering matters: `[]`/`()` bind to the identifier tighter than a
// bare, unparenthesized `*`/`&`/`&&` does (§4.2.2-§4.2.3), so
// `int *f()` is "function returning pointer", not "pointer to
// function" -- the suffix chain must wrap the prefix chain, not the
// other way around. addArray/addFunction still use `depth` to honor
// parentheses that reverse this default.
func (p *gibberishParser) parseDeclarator(base baseSpec, depth int) (NodeID, string, *Diagnostic) {
	outer, leaf, name, d := p.parsePrefix(base, depth)
	if d != nil {
		return NoNode, "", d
	}
	result, d := p.parseSuffixes(outer, depth)
	if d != nil {
		return NoNode, "", d
	}
	// Resolve the leaf: a bare identifier is either a previously defined
	// typedef name (patched to a NodeTypedefRef carrying that typedef's
	// bits) or the name being declared, in which case the placeholder is
	// promoted to the actual base node the specifier sequence named --
	// NodeBuiltin for an ordinary base type, or the tagged ECSU kind for
	// `struct Foo x`, since a tag type needs its own node kind and name,
	// not just bits (§4.2.1, §4.2.4). Either way the placeholder's own
	// identifier text (the name being declared) is discarded here; it
	// was already captured into the separate `name` return value above,
	// not stored on the node. A parenthesized sub-declarator's leaf was
	// already resolved by its own recursive parseDeclarator call (leaf
	// == NoNode here).
	if leaf != NoNode && p.a.Kind(leaf) == NodeNamePlaceholder {
		if _, isTypedef := patchPlaceholder(p.a, leaf, p.td); !isTypedef {
			if base.haveECSU {
				p.a.nodes[leaf].kind = base.ecsuKind
				p.a.SetName(leaf, base.ecsuName)
			} else {
				p.a.nodes[leaf].kind = NodeBuiltin
				p.a.SetName(leaf, ScopedName{})
			}
			p.a.SetBits(leaf, base.bits)
		}
		// The leaf's bits were only just patched above, so an
		// array/function directly wrapping it (addArray/addFunction's
		// own migration runs before this point, while the leaf was
		// still an unresolved placeholder with no bits to move) needs
		// its storage-bit migration retried now that the leaf has a
		// real base kind and the specifier sequence's bits attached.
		if parent := p.a.Parent(leaf); parent != NoNode {
			switch p.a.Kind(parent) {
			case NodeArray, NodeFunction, NodeAppleBlock:
				migrateStorageToWrapper(p.a, leaf, parent)
			}
		}
	}
	return result, name, nil
}

// parsePrefix parses pointer-to-member/`*`/`&&`/`&` prefixes and the
// innermost core -- a bare identifier, an abstract (nameless) slot,
// or a fully parenthesized sub-declarator -- without consuming any
// trailing `[]`/`()` suffixes, which parseDeclarator applies
// afterward, once, at the outermost level. Returns the leaf node
// still needing its base bits patched (NoNode if a nested
// parseDeclarator call already patched it).
func (p *gibberishParser) parsePrefix(base baseSpec, depth int) (outer NodeID, leaf NodeID, name string, d *Diagnostic) {
	// Pointer-to-member: `ScopedName::*`.
	if p.peek().Kind == TokIdent && p.peekAt(1).Kind == TokPunct && p.peekAt(1).Text == "::" && p.peekAt(2).Kind == TokPunct && p.peekAt(2).Text == "*" {
		owner := NewScopedName(p.advance().Text)
		p.advance() // ::
		star := p.advance() // *
		inner, leaf, name, d := p.parsePrefix(base, depth)
		if d != nil {
			return NoNode, NoNode, "", d
		}
		return p.a.NewPointerToMember(inner, owner, newTypeBits(), depth, star.Span), leaf, name, nil
	}

	if p.atPunct("*") {
		star := p.advance()
		qual := p.parseTrailingQualifiers()
		inner, leaf, name, d := p.parsePrefix(base, depth)
		if d != nil {
			return NoNode, NoNode, "", d
		}
		return p.a.NewPointer(inner, qual, depth, star.Span), leaf, name, nil
	}
	if p.atPunct("&&") {
		amp := p.advance()
		inner, leaf, name, d := p.parsePrefix(base, depth)
		if d != nil {
			return NoNode, NoNode, "", d
		}
		return p.a.NewRvalueReference(inner, depth, amp.Span), leaf, name, nil
	}
	if p.atPunct("&") {
		amp := p.advance()
		inner, leaf, name, d := p.parsePrefix(base, depth)
		if d != nil {
			return NoNode, NoNode, "", d
		}
		return p.a.NewReference(inner, depth, amp.Span), leaf, name, nil
	}
	if p.atPunct("(") {
		open := p.advance()
		inner, name, d := p.parseDeclarator(base, depth+1)
		if d != nil {
			return NoNode, NoNode, "", d
		}
		if !p.atPunct(")") {
			d := errf("gibberish", open.Span, "", "expected `)`")
			return NoNode, NoNode, "", &d
		}
		p.advance()
		// inner's leaf was already patched by the recursive
		// parseDeclarator call above; nothing left to resolve here.
		return inner, NoNode, name, nil
	}

	// Core: identifier (the name) or nothing (abstract declarator).
	var core NodeID
	var name2 string
	if p.peek().Kind == TokIdent {
		id := p.advance()
		core = p.a.NewNamePlaceholder(id.Text, depth, id.Span)
		name2 = id.Text
	} else if base.haveECSU {
		core = p.a.NewECSU(base.ecsuKind, base.ecsuName, base.bits, depth, p.peek().Span)
	} else {
		core = p.a.NewBuiltin(base.bits, ScopedName{}, depth, p.peek().Span)
	}
	return core, core, name2, nil
}

// parseSuffixes consumes the `[]`/`()` chain following a declarator,
// applying each to `result` via addArray/addFunction so parenthesized
// prefixes nest at the right depth (§4.2.2-§4.2.3).
func (p *gibberishParser) parseSuffixes(core NodeID, depth int) (NodeID, *Diagnostic) {
	result := core
	for {
		if p.atPunct("[") {
			open := p.advance()
			size := ArrayUnspecified
			nonEmpty := false
			if p.peek().Kind == TokIdent && p.peek().Text == "static" {
				p.advance()
				nonEmpty = true
			}
			if p.atPunct("*") {
				p.advance()
				size = ArrayVariableLength
			} else if p.peek().Kind == TokNumber {
				n := p.advance()
				fmt.Sscanf(n.Text, "%d", &size)
			}
			if !p.atPunct("]") {
				d := errf("gibberish", open.Span, "", "expected `]`")
				return NoNode, &d
			}
			p.advance()
			result = p.a.addArray(result, size, nonEmpty, newTypeBits(), depth, open.Span)
			continue
		}
		if p.atPunct("(") {
			open := p.advance()
			params, variadic, d := p.parseParams()
			if d != nil {
				return NoNode, d
			}
			if !p.atPunct(")") {
				d := errf("gibberish", open.Span, "", "expected `)`")
				return NoNode, &d
			}
			p.advance()
			fnQual := p.parseTrailingQualifiers()
			result = p.a.addFunction(result, params, variadic, fnQual, depth, open.Span)
			continue
		}
		break
	}
	return result, nil
}

func (p *gibberishParser) parseParams() ([]Param, bool, *Diagnostic) {
	var params []Param
	if p.atPunct(")") {
		return nil, false, nil
	}
	if p.peek().Kind == TokIdent && p.peek().Text == "void" && p.peekAt(1).Kind == TokPunct && p.peekAt(1).Text == ")" {
		p.advance()
		return nil, false, nil
	}
	for {
		if p.peek().Kind == TokEllipsis {
			p.advance()
			return params, true, nil
		}
		base, d := p.parseSpecifierSeq()
		if d != nil {
			return nil, false, d
		}
		decl, name, d := p.parseDeclarator(base, 0)
		if d != nil {
			return nil, false, d
		}
		params = append(params, Param{Name: name, Type: decl})
		if p.atPunct(",") {
			p.advance()
			continue
		}
		break
	}
	return params, false, nil
}

// parseTrailingQualifiers consumes cv-qualifiers/ref-qualifiers that
// may follow `*` (pointer qualifiers) or a function parameter list
// (member-function qualifiers), folding them into one TypeBits value
// via add(). add()'s diagnostic is not reported here, so a repeated
// qualifier is accepted and kept once.
func (p *gibberishParser) parseTrailingQualifiers() TypeBits {
	bits := newTypeBits()
	for {
		t := p.peek()
		if t.Kind != TokIdent {
			if p.atPunct("&&") {
				p.advance()
				add(&bits, StT(StorageRefRValue), "gibberish", t.Span)
				continue
			}
			if p.atPunct("&") {
				p.advance()
				add(&bits, StT(StorageRefLValue), "gibberish", t.Span)
				continue
			}
			break
		}
		if s, ok := gibberishStorageKeywords[t.Text]; ok && isQualifierOrMemberOnly(s) {
			p.advance()
			add(&bits, StT(s), "gibberish", t.Span)
			continue
		}
		break
	}
	return bits
}

func isQualifierOrMemberOnly(s StorageBit) bool {
	for _, q := range qualifierBits {
		if q == s {
			return true
		}
	}
	for _, m := range memberOnlyStorage {
		if m == s {
			return true
		}
	}
	return false
}
