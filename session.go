package cdecl

import (
	"strconv"
	"strings"
)

// Session ties the three persistent tables (§5: typedefs, macros,
// options) to one Eval entry point, the way api.go's
// GrammarFromBytes/GrammarFromFile wire a Config through the grammar
// pipeline's stages. Eval is the real external surface (§6): the REPL
// in cmd/cdecl is a thin loop that reads a line and calls Eval.
type Session struct {
	Options  *Options
	Typedefs *TypedefTable
	Macros   *MacroTable
}

func NewSession() *Session {
	return &Session{
		Options:  NewOptions(),
		Typedefs: NewTypedefTable(),
		Macros:   NewMacroTable(),
	}
}

// Result is everything one Eval call produced: any diagnostics, the
// primary text output (an explanation, a declaration, an expansion),
// and an optional debug tree dump.
type Result struct {
	Diagnostics Diagnostics
	Output      string
	Debug       string
	Quit        bool
}

// Eval interprets one command line per §6's command grammar and
// returns its result. A command is evaluated against its own fresh
// Arena (§5: one arena per command); only the typedef/macro/options
// tables persist across calls.
func (s *Session) Eval(line string) Result {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return Result{}
	}
	fields := strings.Fields(trimmed)
	cmd := strings.ToLower(fields[0])

	switch {
	case cmd == "quit" || cmd == "exit" || cmd == "q":
		return Result{Quit: true}

	case cmd == "help" || cmd == "?":
		return Result{Output: helpText}

	case cmd == "set":
		return s.evalSet(fields[1:])

	case cmd == "show":
		return s.evalShow(fields[1:])

	case cmd == "typedef" || cmd == "using":
		return s.evalTypedef(trimmed)

	case cmd == "define" || strings.HasPrefix(trimmed, "#define"):
		return s.evalDefine(trimmed)

	case cmd == "undef" || strings.HasPrefix(trimmed, "#undef"):
		return s.evalUndef(fields)

	case cmd == "expand":
		return s.evalExpand(strings.TrimSpace(strings.TrimPrefix(trimmed, fields[0])))

	case cmd == "explain":
		return s.evalExplain(strings.TrimSpace(strings.TrimPrefix(trimmed, fields[0])))

	case cmd == "declare":
		return s.evalDeclare(trimmed)

	case cmd == "cast":
		return s.evalCast(strings.TrimSpace(strings.TrimPrefix(trimmed, fields[0])))

	default:
		// Bare input with no recognized verb: `explain` for something
		// that reads like a declaration, `declare` for an English
		// sentence -- a convenience most cdecl-family tools offer. The
		// English grammar always starts with the `declare` keyword, so
		// splicing it onto the front is what lets "x as pointer to int"
		// (no verb at all) parse the same as a fully spelled-out command.
		if strings.Contains(trimmed, " as ") {
			return s.evalDeclare(EnglishDeclare + " " + trimmed)
		}
		return s.evalExplain(trimmed)
	}
}

const helpText = `commands:
  declare <name> as <english-type>   translate English to a declaration
  explain <declaration>              translate a declaration to English
  cast <expression> into <type>      explain a cast expression
  typedef <declaration>              define a typedef
  define <name> <body>               define a preprocessor macro
  undef <name>                       remove a macro definition
  expand <text>                      macro-expand text and show the trace
  set <option> | set no<option>      change a boolean setting
  set lang <dialect>                 change the selected dialect
  show                                show current settings
  show typedefs | show macros        list defined names
  quit                                exit`

func (s *Session) evalSet(args []string) Result {
	if len(args) == 0 {
		return Result{Diagnostics: Diagnostics{errf("set", Span{}, "", "usage: set <option>")}}
	}
	if args[0] == "lang" && len(args) > 1 {
		if d, ok := ParseDialect(args[1]); ok {
			s.Options.SetDialect(d)
			return Result{Output: "dialect set to " + d.String()}
		}
		return Result{Diagnostics: Diagnostics{errf("set", Span{}, "", "unknown dialect `%s`", args[1])}}
	}
	name := args[0]
	val := true
	if strings.HasPrefix(name, "no") && IsBoolSetting(strings.TrimPrefix(name, "no")) {
		name = strings.TrimPrefix(name, "no")
		val = false
	}
	if !IsBoolSetting(name) {
		return Result{Diagnostics: Diagnostics{errf("set", Span{}, "", "unknown setting `%s`", args[0])}}
	}
	s.Options.SetBool(name, val)
	return Result{Output: name + " = " + strconv.FormatBool(val)}
}

func (s *Session) evalShow(args []string) Result {
	if len(args) > 0 {
		switch args[0] {
		case "typedefs":
			return Result{Output: strings.Join(s.Typedefs.Names(), "\n")}
		case "macros":
			return Result{Output: strings.Join(s.Macros.Names(), "\n")}
		}
	}
	var b strings.Builder
	for _, v := range settingViews() {
		b.WriteString(v.name)
		b.WriteString(" = ")
		switch v.typ {
		case settingBool:
			b.WriteString(strconv.FormatBool(v.getB(s.Options)))
		case settingDialect:
			b.WriteString(v.getD(s.Options).String())
		}
		b.WriteByte('\n')
	}
	return Result{Output: strings.TrimRight(b.String(), "\n")}
}

func (s *Session) evalExplain(text string) Result {
	a := NewArena()
	decl, name, d := ParseGibberishDeclaration([]byte(text), s.Typedefs, a)
	if d != nil {
		return Result{Diagnostics: Diagnostics{*d}}
	}
	a.SetRoot(decl)
	if sd := CheckStructural(a, decl); sd != nil {
		return Result{Diagnostics: Diagnostics{*sd}}
	}
	if td := CheckTyping(a, decl, s.Options.Dialect); td != nil {
		return Result{Diagnostics: Diagnostics{*td}}
	}
	if md := CheckMainSignature(a, decl, name, s.Options.Dialect); md != nil {
		return Result{Diagnostics: Diagnostics{*md}}
	}
	warnings := CheckWarnings(a, decl, s.Options.Dialect)
	ep := NewEnglishPrinter(s.Options)
	out := ep.Print(a, decl, name)
	r := Result{Output: out, Diagnostics: warnings}
	if s.Options.Debug {
		r.Debug = DumpTree(a, decl, s.Options.Color)
	}
	return r
}

func (s *Session) evalDeclare(text string) Result {
	a := NewArena()
	decl, name, d := ParseEnglishDeclaration([]byte(text), s.Typedefs, a)
	if d != nil {
		return Result{Diagnostics: Diagnostics{*d}}
	}
	a.SetRoot(decl)
	if sd := CheckStructural(a, decl); sd != nil {
		return Result{Diagnostics: Diagnostics{*sd}}
	}
	if td := CheckTyping(a, decl, s.Options.Dialect); td != nil {
		return Result{Diagnostics: Diagnostics{*td}}
	}
	if md := CheckMainSignature(a, decl, name, s.Options.Dialect); md != nil {
		return Result{Diagnostics: Diagnostics{*md}}
	}
	warnings := CheckWarnings(a, decl, s.Options.Dialect)
	gp := NewGibberishPrinter(s.Options)
	out := gp.Print(a, decl, name) + ";"
	r := Result{Output: out, Diagnostics: warnings}
	if s.Options.Debug {
		r.Debug = DumpTree(a, decl, s.Options.Color)
	}
	return r
}

func (s *Session) evalCast(text string) Result {
	parts := strings.SplitN(text, " into ", 2)
	if len(parts) != 2 {
		return Result{Diagnostics: Diagnostics{errf("cast", Span{}, "", "usage: cast <expr> into <type>")}}
	}
	a := NewArena()
	decl, _, d := ParseGibberishDeclaration([]byte(parts[1]), s.Typedefs, a)
	if d != nil {
		return Result{Diagnostics: Diagnostics{*d}}
	}
	ep := NewEnglishPrinter(s.Options)
	out := EnglishDeclare + " " + strings.TrimSpace(parts[0]) + " " + EnglishAs + " " + ep.Print(a, decl, "")
	return Result{Output: out}
}

func (s *Session) evalTypedef(text string) Result {
	rest := strings.TrimSpace(strings.TrimPrefix(text, strings.Fields(text)[0]))
	a := NewArena()
	decl, name, d := ParseGibberishDeclaration([]byte(rest), s.Typedefs, a)
	if d != nil {
		return Result{Diagnostics: Diagnostics{*d}}
	}
	if name == "" {
		return Result{Diagnostics: Diagnostics{errf("typedef", Span{}, "", "a typedef must name a type")}}
	}
	entry := &TypedefEntry{Name: name, Arena: a, Decl: decl, Bits: a.Bits(decl)}
	if td := s.Typedefs.Define(entry); td != nil {
		return Result{Diagnostics: Diagnostics{*td}}
	}
	return Result{Output: "defined " + name}
}

func (s *Session) evalDefine(text string) Result {
	rest := strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(text, "#define"), "define"))
	name, paramsText, body, isFn := splitMacroHead(rest)
	if name == "" {
		return Result{Diagnostics: Diagnostics{errf("define", Span{}, "", "usage: define NAME[(params)] body")}}
	}
	m := &Macro{Name: name, IsFunction: isFn, Body: lexPPTokens(body)}
	if isFn {
		params, variadic := parseMacroParams(paramsText)
		m.Params, m.Variadic = params, variadic
	}
	s.Macros.Define(m)
	return Result{Output: "defined " + name}
}

func splitMacroHead(rest string) (name, params, body string, isFunction bool) {
	rest = strings.TrimSpace(rest)
	i := 0
	for i < len(rest) && (isIdentCont(rune(rest[i])) || rest[i] == '_') {
		i++
	}
	name = rest[:i]
	if i < len(rest) && rest[i] == '(' {
		close := strings.IndexByte(rest[i:], ')')
		if close >= 0 {
			params = rest[i+1 : i+close]
			body = strings.TrimSpace(rest[i+close+1:])
			return name, params, body, true
		}
	}
	body = strings.TrimSpace(rest[i:])
	return name, "", body, false
}

func parseMacroParams(s string) (params []string, variadic bool) {
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if p == "..." {
			variadic = true
			continue
		}
		if strings.HasSuffix(p, "...") {
			variadic = true
			params = append(params, strings.TrimSuffix(p, "..."))
			continue
		}
		params = append(params, p)
	}
	return params, variadic
}

func (s *Session) evalUndef(fields []string) Result {
	if len(fields) < 2 {
		return Result{Diagnostics: Diagnostics{errf("undef", Span{}, "", "usage: undef NAME")}}
	}
	s.Macros.Undef(fields[1])
	return Result{Output: "undefined " + fields[1]}
}

func (s *Session) evalExpand(text string) Result {
	out, trace := Expand(s.Macros, 1, text)
	return Result{Output: out, Debug: trace}
}
