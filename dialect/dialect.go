// Package dialect describes per-database deviations from the ANSI SQL
// grammar the core parser implements, and the hooks a dialect can install
// to parse the forms that aren't deviations so much as genuinely new
// grammar (BigQuery ASSERT, Databricks CACHE TABLE, and so on).
//
// The core parser never imports a concrete dialect; it only depends on
// this package's Dialect type and the Host interface below. Concrete
// dialects live in dialects.go and hooks.go.
package dialect

import (
	"github.com/freeeve/sqlfront/ast"
	"github.com/freeeve/sqlfront/token"
)

// Host is the subset of parser behavior exposed to dialect hooks. It
// exists so hooks can consume tokens and build AST nodes without this
// package importing the parser package, which imports dialect to look
// up the active Dialect - importing back would be a cycle.
type Host interface {
	CurToken() token.Item
	PeekToken() token.Item
	Advance()
	CurIs(t token.Token) bool
	Expect(t token.Token) bool
	ParseExpr() ast.Expr
	ParseStatement() ast.Statement
	ParseTableName() *ast.TableName
	Errorf(format string, args ...interface{})
}

// ParseStatementHook lets a dialect recognize a statement form the ANSI
// grammar doesn't. It runs after the ANSI dispatch fails to match the
// current token and before that's reported as a syntax error. Returning
// ok=false leaves the token stream untouched.
type ParseStatementHook func(h Host) (stmt ast.Statement, ok bool)

// ParsePrefixHook lets a dialect parse a primary expression the ANSI
// grammar doesn't recognize, keyed off whatever token currently leads.
type ParsePrefixHook func(h Host) (expr ast.Expr, ok bool)

// ParseInfixHook lets a dialect continue an expression with a
// dialect-specific operator or suffix once a left operand is in hand.
type ParseInfixHook func(h Host, left ast.Expr) (expr ast.Expr, ok bool)

// NextPrecedenceHook lets a dialect assign a binding power to an operator
// token the ANSI precedence table doesn't know about.
type NextPrecedenceHook func(t token.Token) (prec int, ok bool)

// Dialect describes one SQL dialect's lexical and syntactic deviations
// from the ANSI baseline: capability flags that record what the dialect
// supports, plus optional hooks for forms that need extra grammar. The
// lexer and parser read only the hooks; the capability flags are listed
// by `sqlfront dialects` but do not change how input is lexed or parsed
// (for example, SupportsQualify does not make a QUALIFY clause parse).
type Dialect struct {
	Name string

	// Lexical capabilities.
	DollarQuotedStrings bool // PostgreSQL $$...$$ / $tag$...$tag$
	NationalStrings     bool // N'...'
	HexStrings          bool // X'...' / 0x...
	BacktickIdentifiers bool // MySQL `ident`
	BracketIdentifiers  bool // MSSQL [ident]
	AtParams            bool // @name (MSSQL, MySQL user vars)
	DollarParams        bool // $1, $2 (PostgreSQL)

	// Syntactic capabilities.
	SupportsQualify     bool // QUALIFY clause (Snowflake, BigQuery, Databricks)
	SupportsFilter      bool // FILTER (WHERE ...) on aggregates
	SupportsIlike       bool // ILIKE operator
	SupportsTopClause   bool // SELECT TOP n (MSSQL)
	SupportsReturning   bool // RETURNING clause
	SupportsOnConflict  bool // ON CONFLICT (PostgreSQL, SQLite)
	SupportsOnDuplicate bool // ON DUPLICATE KEY UPDATE (MySQL)

	// Hooks consulted by the core parser and expression parser.
	ParseStatementHook ParseStatementHook
	ParsePrefixHook    ParsePrefixHook
	ParseInfixHook     ParseInfixHook
	NextPrecedenceHook NextPrecedenceHook
}

// registry holds every dialect Register has seen, keyed by lowercase name.
var registry = map[string]*Dialect{}

// defaultDialect is returned by Default. Register sets it when a dialect
// named "ansi" is registered.
var defaultDialect *Dialect

// Register adds a dialect to the registry under its Name, lowercased.
// Registering a dialect named "ansi" also sets it as the default.
func Register(d *Dialect) {
	registry[lower(d.Name)] = d
	if lower(d.Name) == "ansi" {
		defaultDialect = d
	}
}

// Lookup returns the registered dialect with the given name, or nil.
func Lookup(name string) *Dialect {
	return registry[lower(name)]
}

// Default returns the fallback dialect (ANSI) used when none is set.
func Default() *Dialect {
	return defaultDialect
}

// All returns every registered dialect.
func All() []*Dialect {
	out := make([]*Dialect, 0, len(registry))
	for _, d := range registry {
		out = append(out, d)
	}
	return out
}

func lower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
