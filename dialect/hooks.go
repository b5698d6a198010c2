package dialect

import (
	"github.com/freeeve/sqlfront/ast"
	"github.com/freeeve/sqlfront/token"
)

// assertStatementHook recognizes BigQuery's ASSERT expr [AS 'message'].
func assertStatementHook(h Host) (ast.Statement, bool) {
	if !h.CurIs(token.ASSERT) {
		return nil, false
	}
	pos := h.CurToken().Pos
	h.Advance()

	cond := h.ParseExpr()
	if cond == nil {
		return nil, true
	}

	stmt := &ast.AssertStmt{StartPos: pos, Cond: cond}
	if h.CurIs(token.AS) {
		h.Advance()
		stmt.Message = h.ParseExpr()
	}
	stmt.EndPos = h.CurToken().Pos
	return stmt, true
}

// cacheStatementHook recognizes ClickHouse/Databricks CACHE TABLE name
// [AS query] and UNCACHE TABLE [IF EXISTS] name.
func cacheStatementHook(h Host) (ast.Statement, bool) {
	switch {
	case h.CurIs(token.CACHE):
		pos := h.CurToken().Pos
		h.Advance()
		if !h.Expect(token.TABLE) {
			return nil, true
		}
		stmt := &ast.CacheStmt{StartPos: pos, Table: h.ParseTableName()}
		if h.CurIs(token.AS) {
			h.Advance()
			stmt.As = h.ParseStatement()
		}
		stmt.EndPos = h.CurToken().Pos
		return stmt, true

	case h.CurIs(token.UNCACHE):
		pos := h.CurToken().Pos
		h.Advance()
		if !h.Expect(token.TABLE) {
			return nil, true
		}
		stmt := &ast.UncacheStmt{StartPos: pos}
		if h.CurIs(token.IF) {
			h.Advance()
			h.Expect(token.EXISTS)
			stmt.IfExists = true
		}
		stmt.Table = h.ParseTableName()
		stmt.EndPos = h.CurToken().Pos
		return stmt, true
	}
	return nil, false
}
