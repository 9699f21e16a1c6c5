// Package wrap decides whether an identifier (table name, column name)
// needs dialect-specific delimiters when rendered into SQL.
//
// A Style either wraps every identifier, or only those that collide with
// a reserved keyword of the target database:
//
//	wrap.Backtick.Quote("order")                      // `order`
//	wrap.NewReserved(`"`, `"`, "ORDER").Quote("name") // name
//
// Styles are immutable values and safe to share across goroutines.
package wrap

import (
	"maps"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mickamy/keywordwrap/internal/strutil"
)

// Wildcard is passed through unquoted so that "*" and "t.*" keep working.
const Wildcard = "*"

// Style describes how a dialect delimits identifiers.
type Style struct {
	prefix        string
	suffix        string
	caseSensitive bool
	reserved      map[string]struct{}
	identity      bool
}

var (
	// None never quotes. Used by DB2, Informix, ClickHouse and the like.
	None = Style{identity: true}

	// Backtick quotes with `...`. Used by MySQL, MariaDB, H2.
	Backtick = New("`", "`")

	// DoubleQuote quotes with "...". Used by PostgreSQL, SQLite, Derby, Oracle.
	DoubleQuote = New(`"`, `"`)

	// SquareBracket quotes with [...]. Used by SQL Server.
	SquareBracket = New("[", "]")
)

// New returns a Style that wraps every identifier with prefix and suffix.
func New(prefix, suffix string) Style {
	return NewStyle(false, prefix, suffix)
}

// NewReserved returns a Style that wraps only identifiers matching one of
// the given keywords. Matching ignores case. With no keywords the Style
// behaves like New.
func NewReserved(prefix, suffix string, keywords ...string) Style {
	return NewStyle(false, prefix, suffix, keywords...)
}

// NewStyle returns a Style with every knob exposed. When caseSensitive is
// true identifiers are always wrapped, since the database would otherwise
// fold their case.
func NewStyle(caseSensitive bool, prefix, suffix string, keywords ...string) Style {
	reserved := make(map[string]struct{}, len(keywords))
	for _, k := range keywords {
		reserved[upper(k)] = struct{}{}
	}
	return Style{
		prefix:        prefix,
		suffix:        suffix,
		caseSensitive: caseSensitive,
		reserved:      reserved,
	}
}

// Quote returns ident wrapped in the Style's delimiters when required.
// Blank identifiers and the wildcard are returned unchanged. Quote does
// not escape delimiters inside ident, and quoting an already quoted
// identifier wraps it again.
func (s Style) Quote(ident string) string {
	if s.identity || strutil.IsBlank(ident) || ident == Wildcard {
		return ident
	}
	if s.caseSensitive || len(s.reserved) == 0 || s.IsReserved(ident) {
		return s.prefix + ident + s.suffix
	}
	return ident
}

// IsReserved reports whether ident is one of the Style's keywords,
// ignoring case.
func (s Style) IsReserved(ident string) bool {
	if len(s.reserved) == 0 {
		return false
	}
	_, ok := s.reserved[upper(ident)]
	return ok
}

// Prefix returns the opening delimiter.
func (s Style) Prefix() string { return s.prefix }

// Suffix returns the closing delimiter.
func (s Style) Suffix() string { return s.suffix }

// CaseSensitive reports whether every identifier is wrapped to keep its case.
func (s Style) CaseSensitive() bool { return s.caseSensitive }

// Reserved returns the upper-cased keywords in sorted order.
func (s Style) Reserved() []string {
	return slices.Sorted(maps.Keys(s.reserved))
}

// Quote is shorthand for s.Quote(ident).
func Quote(s Style, ident string) string {
	return s.Quote(ident)
}

// A Caser keeps internal state, so each goroutine borrows its own.
var casers = sync.Pool{
	New: func() any {
		c := cases.Upper(language.English)
		return &c
	},
}

// upper folds with English rules regardless of the process locale.
func upper(s string) string {
	if isASCII(s) {
		return strings.ToUpper(s)
	}
	c := casers.Get().(*cases.Caser)
	defer casers.Put(c)
	return c.String(s)
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
