package cdecl

import "fmt"

// Options is the REPL's persistent settings record (§6.4's `set`/
// `show` surface). It plays the role the teacher's Config plays for
// the grammar/compiler stages, but as a concrete struct rather than a
// generic path->value map: the option set is fixed and small enough
// that typed fields read better than string-keyed lookups, while the
// get/set-by-name indirection `set`/`show` still need is provided by
// the settingViews table below, built the same way config.go builds its
// cfgVal (typed union + panic on a type mismatch, since a mismatch
// here is a programming error, not user input).
type Options struct {
	Dialect      Dialect
	EastConst    bool // prints `int const` instead of `const int`
	ExplainByDefault bool
	Digraphs     bool
	Trigraphs    bool
	Color        bool
	Debug        bool // dump the AST after every command
	Echo         bool // echo each command before its output (non-interactive input)
	AutoComplete bool // Non-goal in this build (§1); not in settingViews, so `set`/`show` do not reach it
}

// NewOptions returns the defaults the REPL starts with (§6.4).
func NewOptions() *Options {
	return &Options{
		Dialect:   DialectCpp17,
		EastConst: false,
		Digraphs:  false,
		Trigraphs: false,
		Color:     true,
		Debug:     false,
		Echo:      false,
	}
}

type settingValType int

const (
	settingUndefined settingValType = iota
	settingBool
	settingDialect
)

func (t settingValType) String() string {
	switch t {
	case settingBool:
		return "bool"
	case settingDialect:
		return "dialect"
	default:
		return "undefined"
	}
}

// settingView is a uniform (name, type, get, set) handle onto one
// Options field, used by the `set` and `show` commands so they don't
// need a switch over every field name at the call site.
type settingView struct {
	name string
	typ  settingValType
	getB func(*Options) bool
	setB func(*Options, bool)
	getD func(*Options) Dialect
	setD func(*Options, Dialect)
}

func settingViews() []settingView {
	return []settingView{
		{name: "lang", typ: settingDialect,
			getD: func(o *Options) Dialect { return o.Dialect },
			setD: func(o *Options, d Dialect) { o.Dialect = d }},
		{name: "east-const", typ: settingBool,
			getB: func(o *Options) bool { return o.EastConst },
			setB: func(o *Options, v bool) { o.EastConst = v }},
		{name: "explain-by-default", typ: settingBool,
			getB: func(o *Options) bool { return o.ExplainByDefault },
			setB: func(o *Options, v bool) { o.ExplainByDefault = v }},
		{name: "digraphs", typ: settingBool,
			getB: func(o *Options) bool { return o.Digraphs },
			setB: func(o *Options, v bool) { o.Digraphs = v }},
		{name: "trigraphs", typ: settingBool,
			getB: func(o *Options) bool { return o.Trigraphs },
			setB: func(o *Options, v bool) { o.Trigraphs = v }},
		{name: "color", typ: settingBool,
			getB: func(o *Options) bool { return o.Color },
			setB: func(o *Options, v bool) { o.Color = v }},
		{name: "debug", typ: settingBool,
			getB: func(o *Options) bool { return o.Debug },
			setB: func(o *Options, v bool) { o.Debug = v }},
		{name: "echo", typ: settingBool,
			getB: func(o *Options) bool { return o.Echo },
			setB: func(o *Options, v bool) { o.Echo = v }},
	}
}

func findSetting(name string) (settingView, bool) {
	for _, v := range settingViews() {
		if v.name == name {
			return v, true
		}
	}
	return settingView{}, false
}

// SetBool implements `set <name>`/`set no<name>` for a boolean
// setting; it panics on an unknown or mistyped name the same way
// config.go's cfgVal does, since that indicates a bug in the `set`
// command's own parsing, not bad user input (bad user input is
// rejected before SetBool is called).
func (o *Options) SetBool(name string, v bool) {
	sv, ok := findSetting(name)
	if !ok {
		panic(fmt.Sprintf("no such setting `%s`", name))
	}
	if sv.typ != settingBool {
		panic(fmt.Sprintf("setting `%s` is `%s`, not `bool`", name, sv.typ))
	}
	sv.setB(o, v)
}

func (o *Options) GetBool(name string) bool {
	sv, ok := findSetting(name)
	if !ok {
		panic(fmt.Sprintf("no such setting `%s`", name))
	}
	if sv.typ != settingBool {
		panic(fmt.Sprintf("setting `%s` is `%s`, not `bool`", name, sv.typ))
	}
	return sv.getB(o)
}

func (o *Options) SetDialect(d Dialect) { o.Dialect = d }
func (o *Options) GetDialect() Dialect  { return o.Dialect }

// IsBoolSetting reports whether name names a boolean setting, letting
// the `set`/`show` command tell a bad name from a bad value.
func IsBoolSetting(name string) bool {
	sv, ok := findSetting(name)
	return ok && sv.typ == settingBool
}
