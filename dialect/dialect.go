package dialect

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/mickamy/keywordwrap/wrap"
)

// Dialect abstracts how a database engine renders identifiers and bind
// parameters.
type Dialect interface {
	// Name returns the canonical dialect name, e.g. "mysql".
	Name() string

	// Placeholder returns the bind parameter placeholder for the given
	// 1-based index. MySQL returns "?" regardless of index; PostgreSQL
	// returns "$1", "$2", etc.
	Placeholder(index int) string

	// QuoteIdent quotes an identifier (table name, column name) when the
	// dialect requires it. Blank names and "*" are returned unchanged.
	QuoteIdent(name string) string

	// Style returns the quoting rules backing QuoteIdent.
	Style() wrap.Style
}

var (
	// MySQL is the Dialect for MySQL / MariaDB.
	MySQL Dialect = engine{"mysql", wrap.Backtick, question}

	// PostgreSQL is the Dialect for PostgreSQL.
	PostgreSQL Dialect = engine{"postgresql", wrap.DoubleQuote, dollar}

	// SQLite is the Dialect for SQLite.
	SQLite Dialect = engine{"sqlite", wrap.DoubleQuote, question}

	// SQLServer is the Dialect for Microsoft SQL Server.
	SQLServer Dialect = engine{"sqlserver", wrap.SquareBracket, atP}

	// Oracle folds unquoted names to upper case, so only reserved words
	// are quoted.
	Oracle Dialect = engine{"oracle", wrap.NewReserved(`"`, `"`, oracleReserved...), colon}

	// ClickHouse is the Dialect for ClickHouse.
	ClickHouse Dialect = engine{"clickhouse", wrap.None, question}

	// DB2 is the Dialect for IBM DB2.
	DB2 Dialect = engine{"db2", wrap.None, question}
)

var registry = map[string]Dialect{
	"mysql":      MySQL,
	"mariadb":    MySQL,
	"postgresql": PostgreSQL,
	"postgres":   PostgreSQL,
	"pg":         PostgreSQL,
	"sqlite":     SQLite,
	"sqlite3":    SQLite,
	"sqlserver":  SQLServer,
	"mssql":      SQLServer,
	"oracle":     Oracle,
	"clickhouse": ClickHouse,
	"db2":        DB2,
}

// Lookup returns the Dialect registered under name or one of its aliases.
// Matching ignores case.
func Lookup(name string) (Dialect, error) {
	d, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDialect, name)
	}
	return d, nil
}

// Names returns every name accepted by Lookup, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// QuoteQualified quotes each dot-separated part of name on its own, so
// "public.order" becomes "public"."order" and "u.*" keeps its wildcard.
func QuoteQualified(d Dialect, name string) string {
	parts := strings.Split(name, ".")
	for i, p := range parts {
		parts[i] = d.QuoteIdent(p)
	}
	return strings.Join(parts, ".")
}

// QuoteColumns joins column names with dialect-aware quoting.
func QuoteColumns(d Dialect, cols []string) string {
	quoted := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = d.QuoteIdent(c)
	}
	return strings.Join(quoted, ", ")
}

type engine struct {
	name        string
	style       wrap.Style
	placeholder func(index int) string
}

func (e engine) Name() string                  { return e.name }
func (e engine) Placeholder(index int) string  { return e.placeholder(index) }
func (e engine) QuoteIdent(name string) string { return e.style.Quote(name) }
func (e engine) Style() wrap.Style             { return e.style }

func question(_ int) string   { return "?" }
func dollar(index int) string { return "$" + strconv.Itoa(index) }
func atP(index int) string    { return "@p" + strconv.Itoa(index) }
func colon(index int) string  { return ":" + strconv.Itoa(index) }
