package dialect

// ANSI is the baseline dialect: no lexical extensions, no extra hooks.
// Every other dialect is defined as ANSI's capability set plus its own
// deviations, since a dialect's SQL is still mostly ANSI SQL.
var ANSI = &Dialect{Name: "ansi"}

// Postgres enables dollar-quoted strings, dollar params, ON CONFLICT,
// RETURNING, and the PostgreSQL-only ::type cast (handled directly by
// the core parser off the DCOLON token, so no hook is needed here).
var Postgres = &Dialect{
	Name:                "postgres",
	DollarQuotedStrings: true,
	DollarParams:        true,
	SupportsReturning:   true,
	SupportsOnConflict:  true,
	SupportsIlike:       true,
	SupportsFilter:      true,
}

// MySQL enables backtick identifiers, @-params, and ON DUPLICATE KEY UPDATE.
var MySQL = &Dialect{
	Name:                "mysql",
	BacktickIdentifiers: true,
	AtParams:            true,
	SupportsOnDuplicate: true,
}

// MSSQL enables bracket identifiers, @-params, and SELECT TOP n.
var MSSQL = &Dialect{
	Name:               "mssql",
	BracketIdentifiers: true,
	AtParams:           true,
	SupportsTopClause:  true,
}

// BigQuery enables backtick-quoted identifiers for fully qualified table
// paths, QUALIFY, and the ASSERT statement (wired via ParseStatementHook;
// see hooks.go).
var BigQuery = &Dialect{
	Name:                "bigquery",
	BacktickIdentifiers: true,
	SupportsQualify:     true,
	ParseStatementHook:  assertStatementHook,
}

// Snowflake enables QUALIFY and dollar-quoted strings (used for stored
// procedure bodies).
var Snowflake = &Dialect{
	Name:                "snowflake",
	DollarQuotedStrings: true,
	SupportsQualify:     true,
	SupportsIlike:       true,
}

// Redshift enables ILIKE. Unlike PostgreSQL it enables neither
// dollar-quoted strings nor $n parameters, and it has no QUALIFY and no
// ON CONFLICT.
var Redshift = &Dialect{
	Name:              "redshift",
	SupportsReturning: false,
	SupportsIlike:     true,
}

// SQLite enables ON CONFLICT and RETURNING (both supported since 3.35).
var SQLite = &Dialect{
	Name:               "sqlite",
	SupportsReturning:  true,
	SupportsOnConflict: true,
}

// Hive has no lexical extensions beyond ANSI worth flagging here; its
// deviations (e.g. backtick identifiers) are shared with MySQL's lexical
// conventions.
var Hive = &Dialect{
	Name:                "hive",
	BacktickIdentifiers: true,
}

// ClickHouse enables backtick identifiers and the CACHE/UNCACHE TABLE
// pair also used by Databricks (wired via ParseStatementHook; see
// hooks.go).
var ClickHouse = &Dialect{
	Name:                "clickhouse",
	BacktickIdentifiers: true,
	ParseStatementHook:  cacheStatementHook,
}

// DuckDB is PostgreSQL-derived for string/identifier lexical rules.
var DuckDB = &Dialect{
	Name:                "duckdb",
	DollarQuotedStrings: true,
	SupportsQualify:     true,
}

// Databricks (Spark SQL) enables QUALIFY and CACHE/UNCACHE TABLE.
var Databricks = &Dialect{
	Name:                "databricks",
	BacktickIdentifiers: true,
	SupportsQualify:     true,
	ParseStatementHook:  cacheStatementHook,
}

// Oracle has no dollar/backtick/bracket lexical extensions; its
// deviations are almost entirely in keyword vocabulary already covered
// by the shared token table (MINUS as an EXCEPT synonym, CONNECT BY,
// FLASHBACK, MODEL, and PL/SQL keywords all tokenize already).
var Oracle = &Dialect{
	Name: "oracle",
}

func init() {
	for _, d := range []*Dialect{
		ANSI, Postgres, MySQL, MSSQL, BigQuery, Snowflake, Redshift,
		SQLite, Hive, ClickHouse, DuckDB, Databricks, Oracle,
	} {
		Register(d)
	}
}
