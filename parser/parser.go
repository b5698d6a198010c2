// Package parser provides a recursive descent SQL parser.
package parser

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/freeeve/sqlfront/ast"
	"github.com/freeeve/sqlfront/dialect"
	"github.com/freeeve/sqlfront/lexer"
	"github.com/freeeve/sqlfront/token"
)

// DefaultRecursionLimit bounds how deeply parseExprPrec/parseStatement may
// recurse before the parser gives up with "recursion limit exceeded"
// instead of overflowing the goroutine stack on adversarial input.
const DefaultRecursionLimit = 50

// Parser is a recursive descent SQL parser.
type Parser struct {
	lexer   *lexer.Lexer
	errors  []ParseError
	cur     token.Item // current token
	dialect *dialect.Dialect

	recursionLimit int
	depth          int
}

// SetRecursionLimit overrides the default recursion depth (50) that
// parseExprPrec and parseStatement enforce.
func (p *Parser) SetRecursionLimit(n int) {
	p.recursionLimit = n
}

// enterRecursion acquires one unit of recursion depth. It returns false
// (recording an error) once the limit is reached; callers must bail out
// without parsing further in that case. Every successful acquisition is
// released by the caller's deferred leaveRecursion, on every exit path.
func (p *Parser) enterRecursion() bool {
	p.depth++
	if p.depth > p.recursionLimit {
		p.errorf("recursion limit exceeded")
		p.depth--
		return false
	}
	return true
}

func (p *Parser) leaveRecursion() {
	p.depth--
}

// SetDialect installs the dialect whose hooks the parser consults for
// forms the ANSI grammar alone doesn't cover. A nil
// dialect (the default) parses pure ANSI SQL plus the handful of common
// vendor extensions built directly into the grammar.
func (p *Parser) SetDialect(d *dialect.Dialect) {
	p.dialect = d
}

// Dialect returns the parser's active dialect, or nil if none was set.
func (p *Parser) Dialect() *dialect.Dialect {
	return p.dialect
}

// The following exported methods implement dialect.Host, letting a
// dialect's hooks drive the parser without the dialect package importing
// the parser package.

// CurToken returns the current token.
func (p *Parser) CurToken() token.Item { return p.cur }

// PeekToken returns the next token without consuming it.
func (p *Parser) PeekToken() token.Item { return p.peek() }

// Advance consumes the current token.
func (p *Parser) Advance() { p.advance() }

// CurIs reports whether the current token has the given type.
func (p *Parser) CurIs(t token.Token) bool { return p.curIs(t) }

// Expect consumes the current token if it matches t, else records an error.
func (p *Parser) Expect(t token.Token) bool { return p.expect(t) }

// ParseExpr parses a single expression.
func (p *Parser) ParseExpr() ast.Expr { return p.parseExpr() }

// ParseStatement parses a single statement via the normal ANSI dispatch.
func (p *Parser) ParseStatement() ast.Statement { return p.parseStatement() }

// ParseTableName parses a possibly-qualified table name.
func (p *Parser) ParseTableName() *ast.TableName { return p.parseTableName() }

// Errorf records a parse error at the current position.
func (p *Parser) Errorf(format string, args ...interface{}) { p.errorf(format, args...) }

// ParseError represents a parse error with position.
type ParseError struct {
	Pos     token.Pos
	Message string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("line %d, column %d: %s", e.Pos.Line, e.Pos.Column, e.Message)
}

// New creates a new parser for the given input.
func New(input string) *Parser {
	p := &Parser{
		lexer:          lexer.New(input),
		recursionLimit: DefaultRecursionLimit,
	}
	p.advance() // Prime the first token
	return p
}

var parserPool = sync.Pool{
	New: func() any { return &Parser{} },
}

// Get returns a parser from the pool for the given input.
// Call Put(p) when done to return it to the pool.
func Get(input string) *Parser {
	p := parserPool.Get().(*Parser)
	p.lexer = lexer.Get(input)
	p.errors = p.errors[:0]
	p.cur = token.Item{}
	p.dialect = nil
	p.recursionLimit = DefaultRecursionLimit
	p.depth = 0
	p.advance()
	return p
}

// Put returns the parser and its lexer to the pool.
func Put(p *Parser) {
	if p.lexer != nil {
		lexer.Put(p.lexer)
		p.lexer = nil
	}
	p.dialect = nil
	p.depth = 0
	parserPool.Put(p)
}

// Parse parses a single statement.
func (p *Parser) Parse() (ast.Statement, error) {
	p.skipComments()
	if p.curIs(token.EOF) {
		return nil, nil
	}
	stmt := p.parseStatement()
	if len(p.errors) > 0 {
		return nil, p.errors[0]
	}
	// Verify all input was consumed (allow trailing semicolons and comments)
	p.skipComments()
	for p.curIs(token.SEMICOLON) {
		p.advance()
		p.skipComments()
	}
	if !p.curIs(token.EOF) {
		p.errorf("unexpected token %v after statement", p.cur.Type)
		return nil, p.errors[0]
	}
	return stmt, nil
}

// ParseAll parses all statements until EOF.
func (p *Parser) ParseAll() ([]ast.Statement, error) {
	var stmts []ast.Statement
	for !p.curIs(token.EOF) {
		p.skipComments()
		if p.curIs(token.EOF) {
			break
		}
		stmt := p.parseStatement()
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
		// Skip optional semicolons between statements
		for p.curIs(token.SEMICOLON) {
			p.advance()
		}
		p.skipComments()
	}
	if len(p.errors) > 0 {
		return stmts, p.errors[0]
	}
	return stmts, nil
}

// Token navigation methods

func (p *Parser) advance() {
	p.cur = p.lexer.Next()
}

func (p *Parser) curIs(t token.Token) bool {
	return p.cur.Type == t
}

// curIsIdent returns true if the current token can be used as an identifier.
// This includes both IDENT tokens and keywords (which can be used as identifiers
// in certain contexts like table/column names).
func (p *Parser) curIsIdent() bool {
	return p.cur.Type == token.IDENT || p.cur.Type.IsKeyword()
}

// curIdentValue returns the identifier value of the current token.
// Works for both IDENT tokens and keywords used as identifiers.
func (p *Parser) curIdentValue() string {
	return p.cur.Value
}

func (p *Parser) curIsKeyword(keywords ...token.Token) bool {
	for _, kw := range keywords {
		if p.cur.Type == kw {
			return true
		}
	}
	return false
}

func (p *Parser) peek() token.Item {
	return p.lexer.Peek()
}

func (p *Parser) peekIs(t token.Token) bool {
	return p.peek().Type == t
}

func (p *Parser) expect(t token.Token) bool {
	if p.curIs(t) {
		p.advance()
		return true
	}
	p.errorf("expected %v, got %v", t, p.cur.Type)
	return false
}

func (p *Parser) skipComments() {
	for p.curIs(token.COMMENT) {
		p.advance()
	}
}

func (p *Parser) errorf(format string, args ...interface{}) {
	p.errors = append(p.errors, ParseError{
		Pos:     p.cur.Pos,
		Message: fmt.Sprintf(format, args...),
	})
}

// parseStatement dispatches to the appropriate statement parser.
func (p *Parser) parseStatement() ast.Statement {
	switch p.cur.Type {
	case token.SELECT:
		return p.parseSelectOrSetOp()
	case token.INSERT, token.REPLACE:
		return p.parseInsert()
	case token.UPDATE:
		return p.parseUpdate()
	case token.DELETE:
		return p.parseDelete()
	case token.CREATE:
		return p.parseCreate()
	case token.ALTER:
		return p.parseAlter()
	case token.DROP:
		return p.parseDrop()
	case token.WITH:
		return p.parseWith()
	case token.TRUNCATE:
		return p.parseTruncate()
	case token.EXPLAIN, token.ANALYZE:
		return p.parseExplain()
	case token.MERGE:
		return p.parseMerge()
	case token.START, token.BEGIN:
		return p.parseStartTransaction()
	case token.COMMIT:
		return p.parseCommit()
	case token.ROLLBACK:
		return p.parseRollback()
	case token.SAVEPOINT:
		return p.parseSavepoint()
	case token.SET:
		return p.parseSet()
	case token.GRANT:
		return p.parseGrant()
	case token.REVOKE:
		return p.parseRevoke()
	case token.DISCARD:
		return p.parseDiscard()
	case token.CLOSE:
		return p.parseClose()
	case token.SHOW:
		return p.parseShow()
	case token.LPAREN:
		if !p.enterRecursion() {
			return nil
		}
		defer p.leaveRecursion()
		return p.parseParenthesizedStatement()
	default:
		if p.dialect != nil && p.dialect.ParseStatementHook != nil {
			if stmt, ok := p.dialect.ParseStatementHook(p); ok {
				return stmt
			}
		}
		p.errorf("unexpected token %v at start of statement", p.cur.Type)
		p.advance() // Skip to recover
		return nil
	}
}

// parseWith handles WITH clause (CTEs).
func (p *Parser) parseWith() ast.Statement {
	withClause := p.parseWithClause()

	p.skipComments()
	switch p.cur.Type {
	case token.SELECT:
		stmt := p.parseSelectOrSetOp()
		switch s := stmt.(type) {
		case *ast.SelectStmt:
			s.With = withClause
		case *ast.SetOp:
			s.With = withClause
		}
		return stmt
	case token.INSERT, token.REPLACE:
		stmt := p.parseInsert()
		if stmt != nil {
			stmt.With = withClause
		}
		return stmt
	case token.UPDATE:
		stmt := p.parseUpdate()
		if stmt != nil {
			stmt.With = withClause
		}
		return stmt
	case token.DELETE:
		stmt := p.parseDelete()
		if stmt != nil {
			stmt.With = withClause
		}
		return stmt
	default:
		p.errorf("expected SELECT, INSERT, UPDATE, or DELETE after WITH")
		return nil
	}
}

func (p *Parser) parseWithClause() *ast.WithClause {
	p.advance() // consume WITH

	with := &ast.WithClause{}

	if p.curIs(token.RECURSIVE) {
		with.Recursive = true
		p.advance()
	}

	for {
		cte := p.parseCTE()
		if cte != nil {
			with.CTEs = append(with.CTEs, cte)
		}

		if !p.curIs(token.COMMA) {
			break
		}
		p.advance() // consume comma
	}

	return with
}

func (p *Parser) parseCTE() *ast.CTE {
	if !p.curIs(token.IDENT) {
		p.errorf("expected CTE name")
		return nil
	}

	cte := &ast.CTE{
		Name: p.cur.Value,
	}
	p.advance()

	// Optional column list
	if p.curIs(token.LPAREN) {
		cte.Columns = p.parseColumnNameList()
	}

	if !p.expect(token.AS) {
		return nil
	}

	if !p.expect(token.LPAREN) {
		return nil
	}

	cte.Query = p.parseStatement()

	if !p.expect(token.RPAREN) {
		return nil
	}

	return cte
}

func (p *Parser) parseColumnNameList() []string {
	p.advance() // consume (

	var names []string
	for {
		if !p.curIs(token.IDENT) {
			break
		}
		names = append(names, p.cur.Value)
		p.advance()

		if !p.curIs(token.COMMA) {
			break
		}
		p.advance() // consume comma
	}

	p.expect(token.RPAREN)
	return names
}

func (p *Parser) parseCreate() ast.Statement {
	pos := p.cur.Pos
	p.advance() // consume CREATE

	orReplace := false
	if p.curIs(token.OR) {
		p.advance()
		if !p.expect(token.REPLACE) {
			return nil
		}
		orReplace = true
	}

	materialized := false
	if p.curIs(token.MATERIALIZED) {
		materialized = true
		p.advance()
	}

	// Skip TEMPORARY/TEMP
	if p.curIs(token.TEMPORARY) || p.curIs(token.TEMP) {
		p.advance()
	}

	switch p.cur.Type {
	case token.TABLE:
		return p.parseCreateTable(pos)
	case token.INDEX, token.UNIQUE:
		return p.parseCreateIndex(pos)
	case token.VIEW:
		return p.parseCreateView(pos, orReplace, materialized)
	case token.SCHEMA:
		return p.parseCreateSchema(pos)
	case token.DATABASE:
		return p.parseCreateDatabase(pos)
	case token.ROLE:
		return p.parseCreateRole(pos)
	case token.TYPE:
		return p.parseCreateType(pos)
	default:
		p.errorf("expected TABLE, INDEX, VIEW, SCHEMA, DATABASE, ROLE, or TYPE after CREATE")
		return nil
	}
}

func (p *Parser) parseCreateView(pos token.Pos, orReplace, materialized bool) ast.Statement {
	p.advance() // consume VIEW

	stmt := &ast.CreateViewStmt{StartPos: pos, OrReplace: orReplace, Materialized: materialized}

	if p.curIs(token.IF) {
		p.advance()
		if p.expect(token.NOT) && p.expect(token.EXISTS) {
			stmt.IfNotExists = true
		}
	}

	stmt.Name = p.parseTableName()

	if p.curIs(token.LPAREN) {
		stmt.Columns = p.parseColumnNameList()
	}

	if !p.expect(token.AS) {
		return nil
	}
	stmt.Query = p.parseSelectOrSetOp()
	stmt.EndPos = p.cur.Pos
	return stmt
}

func (p *Parser) parseCreateSchema(pos token.Pos) ast.Statement {
	p.advance() // consume SCHEMA

	stmt := &ast.CreateSchemaStmt{StartPos: pos}

	if p.curIs(token.IF) {
		p.advance()
		if p.expect(token.NOT) && p.expect(token.EXISTS) {
			stmt.IfNotExists = true
		}
	}

	if p.curIsIdent() {
		stmt.Name = p.curIdentValue()
		p.advance()
	}

	if p.curIs(token.AUTHORIZATION) {
		p.advance()
		if p.curIsIdent() {
			stmt.Authorization = p.curIdentValue()
			p.advance()
		}
	}

	stmt.EndPos = p.cur.Pos
	return stmt
}

func (p *Parser) parseCreateDatabase(pos token.Pos) ast.Statement {
	p.advance() // consume DATABASE

	stmt := &ast.CreateDatabaseStmt{StartPos: pos}

	if p.curIs(token.IF) {
		p.advance()
		if p.expect(token.NOT) && p.expect(token.EXISTS) {
			stmt.IfNotExists = true
		}
	}

	if p.curIsIdent() {
		stmt.Name = p.curIdentValue()
		p.advance()
	}

	stmt.EndPos = p.cur.Pos
	return stmt
}

func (p *Parser) parseCreateRole(pos token.Pos) ast.Statement {
	p.advance() // consume ROLE

	stmt := &ast.CreateRoleStmt{StartPos: pos}
	if p.curIsIdent() {
		stmt.Name = p.curIdentValue()
		p.advance()
	}
	stmt.EndPos = p.cur.Pos
	return stmt
}

func (p *Parser) parseCreateType(pos token.Pos) ast.Statement {
	p.advance() // consume TYPE

	stmt := &ast.CreateTypeStmt{StartPos: pos}
	if p.curIsIdent() {
		stmt.Name = p.curIdentValue()
		p.advance()
	}

	if p.curIs(token.AS) {
		p.advance()
		if p.curIs(token.ENUM) {
			p.advance()
			stmt.IsEnum = true
			if p.expect(token.LPAREN) {
				for {
					if p.curIs(token.STRING) {
						stmt.Labels = append(stmt.Labels, p.cur.Value)
						p.advance()
					}
					if !p.curIs(token.COMMA) {
						break
					}
					p.advance()
				}
				p.expect(token.RPAREN)
			}
		}
	}

	stmt.EndPos = p.cur.Pos
	return stmt
}

func (p *Parser) parseCreateTable(pos token.Pos) ast.Statement {
	p.advance() // consume TABLE

	stmt := &ast.CreateTableStmt{StartPos: pos}

	if p.curIs(token.IF) {
		p.advance()
		if p.curIs(token.NOT) {
			p.advance()
			if p.curIs(token.EXISTS) {
				stmt.IfNotExists = true
				p.advance()
			}
		}
	}

	stmt.Table = p.parseTableName()

	// Check for CREATE TABLE AS SELECT
	if p.curIs(token.AS) {
		p.advance()
		stmt.As = p.parseSelectOrSetOp()
		stmt.EndPos = p.cur.Pos
		return stmt
	}

	if !p.expect(token.LPAREN) {
		return nil
	}

	// Parse column definitions and table constraints
	for !p.curIs(token.RPAREN) && !p.curIs(token.EOF) {
		if p.curIs(token.PRIMARY) || p.curIs(token.FOREIGN) ||
			p.curIs(token.UNIQUE) || p.curIs(token.CHECK) || p.curIs(token.CONSTRAINT) {
			constraint := p.parseTableConstraint()
			if constraint != nil {
				stmt.Constraints = append(stmt.Constraints, constraint)
			}
		} else {
			col := p.parseColumnDef()
			if col != nil {
				stmt.Columns = append(stmt.Columns, col)
			}
		}

		if !p.curIs(token.COMMA) {
			break
		}
		p.advance()
	}

	p.expect(token.RPAREN)

	// Parse table options (ENGINE, CHARSET, etc.)
	stmt.Options = p.parseTableOptions()

	stmt.EndPos = p.cur.Pos
	return stmt
}

func (p *Parser) parseColumnDef() *ast.ColumnDef {
	if !p.curIs(token.IDENT) {
		p.errorf("expected column name")
		return nil
	}

	col := &ast.ColumnDef{
		Name: p.cur.Value,
	}
	p.advance()

	col.Type = p.parseDataType()
	col.Constraints = p.parseColumnConstraints()

	return col
}

func (p *Parser) parseDataType() *ast.DataType {
	dt := &ast.DataType{}

	// Get base type name
	if p.cur.Type.IsKeyword() || p.curIs(token.IDENT) {
		dt.Name = p.cur.Value
		p.advance()
	} else {
		p.errorf("expected data type")
		return dt
	}

	// Handle multi-word types like DOUBLE PRECISION, CHARACTER VARYING
	if p.curIs(token.PRECISION) || p.curIs(token.VARYING) {
		dt.Name += " " + p.cur.Value
		p.advance()
	}

	// Parse length/precision
	if p.curIs(token.LPAREN) {
		p.advance()
		if p.curIs(token.INT) {
			n := parseInt(p.cur.Value)
			dt.Length = &n
			p.advance()

			if p.curIs(token.COMMA) {
				p.advance()
				if p.curIs(token.INT) {
					s := parseInt(p.cur.Value)
					dt.Precision = dt.Length
					dt.Scale = &s
					p.advance()
				}
			}
		}
		p.expect(token.RPAREN)
	}

	// Parse modifiers
	for {
		switch p.cur.Type {
		case token.UNSIGNED:
			dt.Unsigned = true
			p.advance()
		case token.SIGNED:
			p.advance()
		case token.ZEROFILL:
			p.advance()
		case token.CHARACTER, token.CHAR:
			if p.peekIs(token.SET) || p.peekIs(token.CHARSET) {
				p.advance()
				p.advance()
				if p.curIs(token.IDENT) || p.curIs(token.STRING) {
					dt.Charset = p.cur.Value
					p.advance()
				}
			} else {
				return dt
			}
		case token.COLLATE:
			p.advance()
			if p.curIs(token.IDENT) || p.curIs(token.STRING) {
				dt.Collation = p.cur.Value
				p.advance()
			}
		case token.ARRAY:
			dt.Array = true
			p.advance()
		case token.LBRACKET:
			// PostgreSQL array syntax: type[]
			p.advance()
			p.expect(token.RBRACKET)
			dt.Array = true
		default:
			return dt
		}
	}
}

func (p *Parser) parseColumnConstraints() []*ast.ColumnConstraint {
	var constraints []*ast.ColumnConstraint

	for {
		var constraint *ast.ColumnConstraint

		// Optional CONSTRAINT name
		name := ""
		if p.curIs(token.CONSTRAINT) {
			p.advance()
			if p.curIs(token.IDENT) {
				name = p.cur.Value
				p.advance()
			}
		}

		switch p.cur.Type {
		case token.NOT:
			p.advance()
			if p.curIs(token.NULL) {
				p.advance()
				constraint = &ast.ColumnConstraint{
					Name:    name,
					Type:    ast.ConstraintNotNull,
					NotNull: true,
				}
			}
		case token.NULL:
			p.advance()
			// NULL is the default, no constraint needed
		case token.PRIMARY:
			p.advance()
			p.expect(token.KEY)
			constraint = &ast.ColumnConstraint{
				Name: name,
				Type: ast.ConstraintPrimaryKey,
			}
		case token.UNIQUE:
			p.advance()
			constraint = &ast.ColumnConstraint{
				Name: name,
				Type: ast.ConstraintUnique,
			}
		case token.DEFAULT:
			p.advance()
			constraint = &ast.ColumnConstraint{
				Name:    name,
				Type:    ast.ConstraintDefault,
				Default: p.parseExpr(),
			}
		case token.CHECK:
			p.advance()
			p.expect(token.LPAREN)
			constraint = &ast.ColumnConstraint{
				Name:  name,
				Type:  ast.ConstraintCheck,
				Check: p.parseExpr(),
			}
			p.expect(token.RPAREN)
		case token.REFERENCES:
			p.advance()
			constraint = &ast.ColumnConstraint{
				Name:       name,
				Type:       ast.ConstraintForeignKey,
				References: p.parseForeignKeyRef(),
			}
		case token.AUTO_INCREMENT, token.AUTOINCREMENT:
			p.advance()
			// MySQL/SQLite auto increment - treated as column property
		case token.GENERATED:
			p.advance()
			constraint = p.parseGeneratedConstraint(name)
		default:
			return constraints
		}

		if constraint != nil {
			constraints = append(constraints, constraint)
		}
	}
}

func (p *Parser) parseGeneratedConstraint(name string) *ast.ColumnConstraint {
	gen := &ast.GeneratedColumn{}

	// GENERATED ALWAYS AS (expr) [STORED | VIRTUAL]
	if p.curIs(token.ALWAYS) {
		p.advance()
	}

	if p.curIs(token.AS) {
		p.advance()
	}

	p.expect(token.LPAREN)
	gen.Expr = p.parseExpr()
	p.expect(token.RPAREN)

	if p.curIs(token.STORED) {
		gen.Stored = true
		p.advance()
	} else if p.curIs(token.VIRTUAL) {
		p.advance()
	}

	return &ast.ColumnConstraint{
		Name:      name,
		Type:      ast.ConstraintGenerated,
		Generated: gen,
	}
}

func (p *Parser) parseForeignKeyRef() *ast.ForeignKeyRef {
	ref := &ast.ForeignKeyRef{
		Table: p.parseTableName(),
	}

	if p.curIs(token.LPAREN) {
		ref.Columns = p.parseColumnNameList()
	}

	// ON DELETE / ON UPDATE
	for p.curIs(token.ON) {
		p.advance()
		var action *ast.RefAction
		switch p.cur.Type {
		case token.DELETE:
			p.advance()
			a := p.parseRefAction()
			ref.OnDelete = a
			action = &ref.OnDelete
		case token.UPDATE:
			p.advance()
			a := p.parseRefAction()
			ref.OnUpdate = a
			action = &ref.OnUpdate
		}
		_ = action
	}

	return ref
}

func (p *Parser) parseRefAction() ast.RefAction {
	switch p.cur.Type {
	case token.CASCADE:
		p.advance()
		return ast.RefCascade
	case token.RESTRICT:
		p.advance()
		return ast.RefRestrict
	case token.SET:
		p.advance()
		if p.curIs(token.NULL) {
			p.advance()
			return ast.RefSetNull
		} else if p.curIs(token.DEFAULT) {
			p.advance()
			return ast.RefSetDefault
		}
	case token.NO:
		p.advance()
		p.expect(token.ACTION)
		return ast.RefNoAction
	}
	return ast.RefNoAction
}

func (p *Parser) parseTableConstraint() *ast.TableConstraint {
	tc := &ast.TableConstraint{}

	// Optional CONSTRAINT name
	if p.curIs(token.CONSTRAINT) {
		p.advance()
		if p.curIs(token.IDENT) {
			tc.Name = p.cur.Value
			p.advance()
		}
	}

	switch p.cur.Type {
	case token.PRIMARY:
		p.advance()
		p.expect(token.KEY)
		tc.Type = ast.ConstraintPrimaryKey
		if p.curIs(token.LPAREN) {
			tc.Columns = p.parseColumnNameList()
		}
	case token.UNIQUE:
		p.advance()
		tc.Type = ast.ConstraintUnique
		if p.curIs(token.KEY) {
			p.advance()
		}
		if p.curIs(token.LPAREN) {
			tc.Columns = p.parseColumnNameList()
		}
	case token.FOREIGN:
		p.advance()
		p.expect(token.KEY)
		tc.Type = ast.ConstraintForeignKey
		if p.curIs(token.LPAREN) {
			tc.Columns = p.parseColumnNameList()
		}
		p.expect(token.REFERENCES)
		tc.References = p.parseForeignKeyRef()
	case token.CHECK:
		p.advance()
		tc.Type = ast.ConstraintCheck
		p.expect(token.LPAREN)
		tc.Check = p.parseExpr()
		p.expect(token.RPAREN)
	}

	return tc
}

func (p *Parser) parseTableOptions() []*ast.TableOption {
	var opts []*ast.TableOption

	for {
		switch p.cur.Type {
		case token.ENGINE:
			p.advance()
			if p.curIs(token.EQ) {
				p.advance()
			}
			if p.curIs(token.IDENT) {
				opts = append(opts, &ast.TableOption{Name: "ENGINE", Value: p.cur.Value})
				p.advance()
			}
		case token.CHARSET, token.CHARACTER:
			p.advance()
			if p.curIs(token.SET) {
				p.advance()
			}
			if p.curIs(token.EQ) {
				p.advance()
			}
			if p.curIs(token.IDENT) {
				opts = append(opts, &ast.TableOption{Name: "CHARSET", Value: p.cur.Value})
				p.advance()
			}
		case token.COLLATE:
			p.advance()
			if p.curIs(token.EQ) {
				p.advance()
			}
			if p.curIs(token.IDENT) {
				opts = append(opts, &ast.TableOption{Name: "COLLATE", Value: p.cur.Value})
				p.advance()
			}
		case token.COMMENT_KW:
			p.advance()
			if p.curIs(token.EQ) {
				p.advance()
			}
			if p.curIs(token.STRING) {
				opts = append(opts, &ast.TableOption{Name: "COMMENT", Value: p.cur.Value})
				p.advance()
			}
		case token.AUTO_INCREMENT:
			p.advance()
			if p.curIs(token.EQ) {
				p.advance()
			}
			if p.curIs(token.INT) {
				opts = append(opts, &ast.TableOption{Name: "AUTO_INCREMENT", Value: p.cur.Value})
				p.advance()
			}
		default:
			return opts
		}
	}
}

func (p *Parser) parseCreateIndex(pos token.Pos) ast.Statement {
	stmt := &ast.CreateIndexStmt{StartPos: pos}

	if p.curIs(token.UNIQUE) {
		stmt.Unique = true
		p.advance()
	}

	p.expect(token.INDEX)

	if p.curIs(token.CONCURRENTLY) {
		stmt.Concurrent = true
		p.advance()
	}

	if p.curIs(token.IF) {
		p.advance()
		if p.curIs(token.NOT) {
			p.advance()
			if p.curIs(token.EXISTS) {
				stmt.IfNotExists = true
				p.advance()
			}
		}
	}

	if p.curIs(token.IDENT) {
		stmt.Name = p.cur.Value
		p.advance()
	}

	p.expect(token.ON)
	stmt.Table = p.parseTableName()

	// USING method
	if p.curIs(token.USING) {
		p.advance()
		if p.curIs(token.IDENT) {
			stmt.Using = p.cur.Value
			p.advance()
		}
	}

	// Column list
	p.expect(token.LPAREN)
	for !p.curIs(token.RPAREN) && !p.curIs(token.EOF) {
		col := &ast.IndexColumn{}
		if p.curIsIdent() {
			col.Column = p.curIdentValue()
			p.advance()
		} else if p.curIs(token.LPAREN) {
			// Expression index (must be parenthesized)
			col.Expr = p.parseExpr()
		} else {
			p.errorf("expected column name or expression")
			return nil
		}

		if p.curIs(token.DESC) {
			col.Desc = true
			p.advance()
		} else if p.curIs(token.ASC) {
			p.advance()
		}

		if p.curIs(token.NULLS) {
			p.advance()
			if p.curIs(token.FIRST) {
				col.Nulls = "FIRST"
				p.advance()
			} else if p.curIs(token.LAST) {
				col.Nulls = "LAST"
				p.advance()
			}
		}

		stmt.Columns = append(stmt.Columns, col)

		if !p.curIs(token.COMMA) {
			break
		}
		p.advance()
	}
	p.expect(token.RPAREN)

	// WHERE clause for partial index
	if p.curIs(token.WHERE) {
		p.advance()
		stmt.Where = p.parseExpr()
	}

	stmt.EndPos = p.cur.Pos
	return stmt
}

func (p *Parser) parseAlter() ast.Statement {
	pos := p.cur.Pos
	p.advance() // consume ALTER

	switch p.cur.Type {
	case token.VIEW:
		return p.parseAlterView(pos)
	case token.INDEX:
		return p.parseAlterIndex(pos)
	case token.TABLE:
		p.advance()
	default:
		p.errorf("expected TABLE, VIEW, or INDEX after ALTER")
		return nil
	}

	stmt := &ast.AlterTableStmt{
		StartPos: pos,
		Table:    p.parseTableName(),
	}

	// Parse alter actions
	for {
		action := p.parseAlterTableAction()
		if action != nil {
			stmt.Actions = append(stmt.Actions, action)
		}

		if !p.curIs(token.COMMA) {
			break
		}
		p.advance()
	}

	stmt.EndPos = p.cur.Pos
	return stmt
}

func (p *Parser) parseAlterView(pos token.Pos) ast.Statement {
	p.advance() // consume VIEW

	stmt := &ast.AlterViewStmt{StartPos: pos, Name: p.parseTableName()}

	if p.curIs(token.RENAME) {
		p.advance()
		p.expect(token.TO)
		if p.curIsIdent() {
			stmt.RenameTo = p.curIdentValue()
			p.advance()
		}
	} else if p.expect(token.AS) {
		stmt.Query = p.parseSelectOrSetOp()
	}

	stmt.EndPos = p.cur.Pos
	return stmt
}

func (p *Parser) parseAlterIndex(pos token.Pos) ast.Statement {
	p.advance() // consume INDEX

	stmt := &ast.AlterIndexStmt{StartPos: pos}
	if p.curIsIdent() {
		stmt.Name = p.curIdentValue()
		p.advance()
	}

	if p.expect(token.RENAME) {
		p.expect(token.TO)
		if p.curIsIdent() {
			stmt.RenameTo = p.curIdentValue()
			p.advance()
		}
	}

	stmt.EndPos = p.cur.Pos
	return stmt
}

func (p *Parser) parseAlterTableAction() ast.AlterTableAction {
	switch p.cur.Type {
	case token.ADD:
		p.advance()
		if p.curIs(token.COLUMN) {
			p.advance()
		}
		if p.curIs(token.CONSTRAINT) || p.curIs(token.PRIMARY) ||
			p.curIs(token.FOREIGN) || p.curIs(token.UNIQUE) || p.curIs(token.CHECK) {
			return &ast.AddConstraint{Constraint: p.parseTableConstraint()}
		}
		return &ast.AddColumn{Column: p.parseColumnDef()}

	case token.DROP:
		p.advance()
		if p.curIs(token.COLUMN) {
			p.advance()
			action := &ast.DropColumn{}
			if p.curIs(token.IF) {
				p.advance()
				p.expect(token.EXISTS)
				action.IfExists = true
			}
			if p.curIsIdent() {
				action.Name = p.curIdentValue()
				p.advance()
			}
			if p.curIs(token.CASCADE) {
				action.Cascade = true
				p.advance()
			}
			return action
		}
		if p.curIs(token.CONSTRAINT) {
			p.advance()
			action := &ast.DropConstraint{}
			if p.curIs(token.IF) {
				p.advance()
				p.expect(token.EXISTS)
				action.IfExists = true
			}
			if p.curIsIdent() {
				action.Name = p.curIdentValue()
				p.advance()
			}
			if p.curIs(token.CASCADE) {
				action.Cascade = true
				p.advance()
			}
			return action
		}

	case token.RENAME:
		p.advance()
		if p.curIs(token.COLUMN) {
			p.advance()
			action := &ast.RenameColumn{}
			if p.curIsIdent() {
				action.OldName = p.curIdentValue()
				p.advance()
			}
			p.expect(token.TO)
			if p.curIsIdent() {
				action.NewName = p.curIdentValue()
				p.advance()
			}
			return action
		}
		if p.curIs(token.TO) {
			p.advance()
			return &ast.RenameTable{NewName: p.parseTableName()}
		}

	case token.MODIFY, token.ALTER:
		p.advance()
		if p.curIs(token.COLUMN) {
			p.advance()
		}
		action := &ast.ModifyColumn{}
		if p.curIsIdent() {
			action.Name = p.curIdentValue()
			p.advance()
		}
		// Various modifications
		if p.curIs(token.SET) {
			p.advance()
			if p.curIs(token.NOT) {
				p.advance()
				p.expect(token.NULL)
				action.SetNotNull = true
			} else if p.curIs(token.DEFAULT) {
				p.advance()
				action.SetDefault = p.parseExpr()
			}
		} else if p.curIs(token.DROP) {
			p.advance()
			if p.curIs(token.NOT) {
				p.advance()
				p.expect(token.NULL)
				action.DropNotNull = true
			} else if p.curIs(token.DEFAULT) {
				p.advance()
				action.DropDefault = true
			}
		} else {
			// MySQL MODIFY COLUMN name type - parse type and constraints directly
			colDef := &ast.ColumnDef{Name: action.Name}
			colDef.Type = p.parseDataType()
			colDef.Constraints = p.parseColumnConstraints()
			action.NewDef = colDef
		}
		return action
	}

	return nil
}

func (p *Parser) parseDrop() ast.Statement {
	pos := p.cur.Pos
	p.advance() // consume DROP

	switch p.cur.Type {
	case token.TABLE:
		return p.parseDropTable(pos)
	case token.INDEX:
		return p.parseDropIndex(pos)
	default:
		p.errorf("expected TABLE or INDEX after DROP")
		return nil
	}
}

func (p *Parser) parseDropTable(pos token.Pos) ast.Statement {
	p.advance() // consume TABLE

	stmt := &ast.DropTableStmt{StartPos: pos}

	if p.curIs(token.IF) {
		p.advance()
		p.expect(token.EXISTS)
		stmt.IfExists = true
	}

	// Parse table names
	for {
		stmt.Tables = append(stmt.Tables, p.parseTableName())
		if !p.curIs(token.COMMA) {
			break
		}
		p.advance()
	}

	if p.curIs(token.CASCADE) {
		stmt.Cascade = true
		p.advance()
	}

	stmt.EndPos = p.cur.Pos
	return stmt
}

func (p *Parser) parseDropIndex(pos token.Pos) ast.Statement {
	p.advance() // consume INDEX

	stmt := &ast.DropIndexStmt{StartPos: pos}

	if p.curIs(token.CONCURRENTLY) {
		stmt.Concurrent = true
		p.advance()
	}

	if p.curIs(token.IF) {
		p.advance()
		p.expect(token.EXISTS)
		stmt.IfExists = true
	}

	if p.curIs(token.IDENT) {
		stmt.Name = p.cur.Value
		p.advance()
	}

	// MySQL: DROP INDEX name ON table
	if p.curIs(token.ON) {
		p.advance()
		stmt.Table = p.parseTableName()
	}

	if p.curIs(token.CASCADE) {
		stmt.Cascade = true
		p.advance()
	}

	stmt.EndPos = p.cur.Pos
	return stmt
}

func (p *Parser) parseTruncate() ast.Statement {
	pos := p.cur.Pos
	p.advance() // consume TRUNCATE

	if p.curIs(token.TABLE) {
		p.advance()
	}

	stmt := &ast.TruncateStmt{StartPos: pos}

	// Parse table names
	for {
		stmt.Tables = append(stmt.Tables, p.parseTableName())
		if !p.curIs(token.COMMA) {
			break
		}
		p.advance()
	}

	if p.curIs(token.CASCADE) {
		stmt.Cascade = true
		p.advance()
	}

	stmt.EndPos = p.cur.Pos
	return stmt
}

// parseParenthesizedStatement handles statements that start with parentheses,
// like (SELECT ...) UNION (SELECT ...).
func (p *Parser) parseParenthesizedStatement() ast.Statement {
	pos := p.cur.Pos
	p.advance() // consume '('

	// Parse inner statement
	inner := p.parseStatement()
	if inner == nil {
		return nil
	}

	if !p.expect(token.RPAREN) {
		return nil
	}

	// Only SELECT/set-op results can be further combined or re-wrapped.
	switch inner.(type) {
	case *ast.SelectStmt, *ast.SetOp:
	default:
		return inner
	}

	// Check for set operations (UNION, INTERSECT, EXCEPT) continuing the chain.
	if p.curIs(token.UNION) || p.curIs(token.INTERSECT) || p.curIs(token.EXCEPT) {
		result := p.continueSetOpChain(inner)
		return p.attachSelectTail(result)
	}

	if sel, ok := inner.(*ast.SelectStmt); ok {
		sel.StartPos = pos
	}

	return inner
}

func (p *Parser) parseExplain() ast.Statement {
	pos := p.cur.Pos

	stmt := &ast.ExplainStmt{StartPos: pos}

	if p.curIs(token.EXPLAIN) {
		p.advance()
	}

	// Parse options
	for {
		switch p.cur.Type {
		case token.ANALYZE:
			stmt.Analyze = true
			p.advance()
		case token.VERBOSE:
			stmt.Verbose = true
			p.advance()
		case token.FORMAT:
			p.advance()
			if p.curIs(token.IDENT) {
				stmt.Format = p.cur.Value
				p.advance()
			}
		case token.LPAREN:
			// PostgreSQL style: EXPLAIN (ANALYZE, VERBOSE, ...)
			p.advance()
			for !p.curIs(token.RPAREN) && !p.curIs(token.EOF) {
				switch p.cur.Type {
				case token.ANALYZE:
					stmt.Analyze = true
				case token.VERBOSE:
					stmt.Verbose = true
				case token.FORMAT:
					p.advance()
					if p.curIs(token.IDENT) {
						stmt.Format = p.cur.Value
					}
				}
				p.advance()
				if p.curIs(token.COMMA) {
					p.advance()
				}
			}
			p.expect(token.RPAREN)
		default:
			goto parseStmt
		}
	}

parseStmt:
	stmt.Stmt = p.parseStatement()
	stmt.EndPos = p.cur.Pos
	return stmt
}

// parseMerge handles MERGE [INTO] target USING source ON cond <WHEN clauses...>.
func (p *Parser) parseMerge() ast.Statement {
	pos := p.cur.Pos
	p.advance() // consume MERGE

	if p.curIs(token.INTO) {
		p.advance()
	}

	stmt := &ast.MergeStmt{StartPos: pos}
	stmt.Target = p.parseTableExpr()

	if !p.expect(token.USING) {
		return nil
	}
	stmt.Source = p.parseTableExpr()

	if !p.expect(token.ON) {
		return nil
	}
	stmt.On = p.parseExpr()

	for p.curIs(token.WHEN) {
		when := p.parseMergeWhenClause()
		if when == nil {
			break
		}
		stmt.Whens = append(stmt.Whens, when)
	}

	stmt.EndPos = p.cur.Pos
	return stmt
}

func (p *Parser) parseMergeWhenClause() *ast.MergeWhenClause {
	p.advance() // consume WHEN

	when := &ast.MergeWhenClause{}
	if p.curIs(token.NOT) {
		p.advance()
		when.NotMatched = true
	}
	if !p.expect(token.MATCHED) {
		return nil
	}

	if p.curIs(token.AND) {
		p.advance()
		when.AndCond = p.parseExpr()
	}

	if !p.expect(token.THEN) {
		return nil
	}

	switch p.cur.Type {
	case token.UPDATE:
		p.advance()
		p.expect(token.SET)
		when.Action.Kind = ast.MergeUpdate
		for {
			col := &ast.ColName{StartPos: p.cur.Pos}
			if p.curIsIdent() {
				col.Parts = []string{p.curIdentValue()}
				p.advance()
			}
			col.EndPos = p.cur.Pos
			p.expect(token.EQ)
			when.Action.Updates = append(when.Action.Updates, &ast.UpdateExpr{Column: col, Expr: p.parseExpr()})
			if !p.curIs(token.COMMA) {
				break
			}
			p.advance()
		}
	case token.DELETE:
		p.advance()
		when.Action.Kind = ast.MergeDelete
	case token.INSERT:
		p.advance()
		when.Action.Kind = ast.MergeInsert
		if p.curIs(token.LPAREN) {
			when.Action.Columns = p.parseColumnNameList()
		}
		if p.expect(token.VALUES) && p.expect(token.LPAREN) {
			when.Action.Values = p.parseExprList()
			p.expect(token.RPAREN)
		}
	default:
		p.errorf("expected UPDATE, DELETE, or INSERT after THEN in MERGE")
		return nil
	}

	return when
}

// parseStartTransaction handles START TRANSACTION and BEGin [WORK|TRANSACTION]
// [<modes>,...]. BEGIN is normalized into the same AST node.
func (p *Parser) parseStartTransaction() ast.Statement {
	pos := p.cur.Pos
	isStart := p.curIs(token.START)
	p.advance() // consume START or BEGIN

	if isStart {
		p.expect(token.TRANSACTION)
	} else if p.curIs(token.WORK) || p.curIs(token.TRANSACTION) {
		p.advance()
	}

	stmt := &ast.StartTransactionStmt{StartPos: pos}
	stmt.Modes = p.parseTransactionModes()
	stmt.EndPos = p.cur.Pos
	return stmt
}

// parseTransactionModes parses the comma- or whitespace-separated mode list
// shared by START TRANSACTION and SET TRANSACTION.
func (p *Parser) parseTransactionModes() []ast.TransactionMode {
	var modes []ast.TransactionMode
	for {
		var mode ast.TransactionMode
		matched := true
		switch {
		case p.curIs(token.READ) && p.peekIs(token.ONLY):
			p.advance()
			p.advance()
			mode.ReadOnly = true
		case p.curIs(token.READ) && p.peekIs(token.WRITE):
			p.advance()
			p.advance()
			mode.ReadWrite = true
		case p.curIs(token.ISOLATION):
			p.advance()
			p.expect(token.LEVEL)
			mode.IsolationLevel = p.parseIsolationLevel()
		default:
			matched = false
		}
		if !matched {
			break
		}
		modes = append(modes, mode)
		if p.curIs(token.COMMA) {
			p.advance()
		}
	}
	return modes
}

func (p *Parser) parseIsolationLevel() string {
	switch p.cur.Type {
	case token.READ:
		p.advance()
		if p.curIs(token.UNCOMMITTED) {
			p.advance()
			return "READ UNCOMMITTED"
		}
		if p.curIs(token.COMMITTED) {
			p.advance()
			return "READ COMMITTED"
		}
		return "READ"
	case token.REPEATABLE:
		p.advance()
		p.expect(token.READ)
		return "REPEATABLE READ"
	case token.SERIALIZABLE:
		p.advance()
		return "SERIALIZABLE"
	default:
		p.errorf("expected isolation level after ISOLATION LEVEL")
		return ""
	}
}

func (p *Parser) parseCommit() ast.Statement {
	pos := p.cur.Pos
	p.advance() // consume COMMIT

	stmt := &ast.CommitStmt{StartPos: pos}
	if p.curIs(token.AND) {
		p.advance()
		if p.curIs(token.NO) {
			p.advance()
			stmt.NoChain = true
		} else {
			stmt.Chain = true
		}
		p.expect(token.CHAIN)
	}
	if p.curIs(token.WORK) || p.curIs(token.TRANSACTION) {
		p.advance()
	}
	stmt.EndPos = p.cur.Pos
	return stmt
}

func (p *Parser) parseRollback() ast.Statement {
	pos := p.cur.Pos
	p.advance() // consume ROLLBACK

	stmt := &ast.RollbackStmt{StartPos: pos}
	if p.curIs(token.AND) {
		p.advance()
		if p.curIs(token.NO) {
			p.advance()
			stmt.NoChain = true
		} else {
			stmt.Chain = true
		}
		p.expect(token.CHAIN)
	}
	if p.curIs(token.WORK) || p.curIs(token.TRANSACTION) {
		p.advance()
	}
	if p.curIs(token.TO) {
		p.advance()
		if p.curIs(token.SAVEPOINT) {
			p.advance()
		}
		if p.curIsIdent() {
			stmt.To = p.curIdentValue()
			p.advance()
		}
	}
	stmt.EndPos = p.cur.Pos
	return stmt
}

func (p *Parser) parseSavepoint() ast.Statement {
	pos := p.cur.Pos
	p.advance() // consume SAVEPOINT

	stmt := &ast.SavepointStmt{StartPos: pos}
	if p.curIsIdent() {
		stmt.Name = p.curIdentValue()
		p.advance()
	}
	stmt.EndPos = p.cur.Pos
	return stmt
}

// parseSet handles SET TRANSACTION <modes>, SET TIME ZONE value, and
// SET [SESSION|LOCAL|GLOBAL] name = value.
func (p *Parser) parseSet() ast.Statement {
	pos := p.cur.Pos
	p.advance() // consume SET

	if p.curIs(token.TRANSACTION) {
		p.advance()
		stmt := &ast.SetTransactionStmt{StartPos: pos}
		stmt.Modes = p.parseTransactionModes()
		stmt.EndPos = p.cur.Pos
		return stmt
	}

	if p.curIs(token.TIME) {
		p.advance()
		p.expect(token.ZONE)
		stmt := &ast.SetTimeZoneStmt{StartPos: pos, Value: p.parseExpr()}
		stmt.EndPos = p.cur.Pos
		return stmt
	}

	stmt := &ast.SetVariableStmt{StartPos: pos}
	switch p.cur.Type {
	case token.SESSION, token.LOCAL, token.GLOBAL:
		stmt.Scope = p.cur.Type.String()
		p.advance()
	}
	if p.curIsIdent() {
		stmt.Name = p.curIdentValue()
		p.advance()
	}
	if p.curIs(token.EQ) || p.curIs(token.TO) {
		p.advance()
	}
	stmt.Value = p.parseExpr()
	stmt.EndPos = p.cur.Pos
	return stmt
}

// parsePrivilegeList parses a GRANT/REVOKE comma-separated privilege list
// (e.g. "SELECT, INSERT" or "ALL [PRIVILEGES]").
func (p *Parser) parsePrivilegeList() []string {
	var privs []string
	for {
		if p.curIs(token.ALL) {
			p.advance()
			if p.curIs(token.PRIVILEGES) {
				p.advance()
			}
			privs = append(privs, "ALL")
		} else if p.curIsIdent() {
			privs = append(privs, p.curIdentValue())
			p.advance()
		} else {
			break
		}
		if !p.curIs(token.COMMA) {
			break
		}
		p.advance()
	}
	return privs
}

func (p *Parser) parseGranteeList() []string {
	var grantees []string
	for {
		if p.curIsIdent() {
			grantees = append(grantees, p.curIdentValue())
			p.advance()
		} else {
			break
		}
		if !p.curIs(token.COMMA) {
			break
		}
		p.advance()
	}
	return grantees
}

func (p *Parser) parseGrant() ast.Statement {
	pos := p.cur.Pos
	p.advance() // consume GRANT

	stmt := &ast.GrantStmt{StartPos: pos}
	stmt.Privileges = p.parsePrivilegeList()

	if p.expect(token.ON) {
		stmt.On = p.parseTableName()
	}
	if p.expect(token.TO) {
		stmt.Grantees = p.parseGranteeList()
	}
	if p.curIs(token.WITH) {
		p.advance()
		if p.expect(token.GRANT) && p.expect(token.OPTION) {
			stmt.WithGrant = true
		}
	}
	stmt.EndPos = p.cur.Pos
	return stmt
}

func (p *Parser) parseRevoke() ast.Statement {
	pos := p.cur.Pos
	p.advance() // consume REVOKE

	stmt := &ast.RevokeStmt{StartPos: pos}
	stmt.Privileges = p.parsePrivilegeList()

	if p.expect(token.ON) {
		stmt.On = p.parseTableName()
	}
	if p.expect(token.FROM) {
		stmt.Grantees = p.parseGranteeList()
	}
	stmt.EndPos = p.cur.Pos
	return stmt
}

func (p *Parser) parseDiscard() ast.Statement {
	pos := p.cur.Pos
	p.advance() // consume DISCARD

	stmt := &ast.DiscardStmt{StartPos: pos}
	switch p.cur.Type {
	case token.ALL:
		stmt.What = "ALL"
		p.advance()
	case token.PLANS:
		stmt.What = "PLANS"
		p.advance()
	case token.SEQUENCES:
		stmt.What = "SEQUENCES"
		p.advance()
	case token.TEMP, token.TEMPORARY:
		stmt.What = "TEMP"
		p.advance()
	default:
		p.errorf("expected ALL, PLANS, SEQUENCES, or TEMP after DISCARD")
	}
	stmt.EndPos = p.cur.Pos
	return stmt
}

func (p *Parser) parseClose() ast.Statement {
	pos := p.cur.Pos
	p.advance() // consume CLOSE

	stmt := &ast.CloseStmt{StartPos: pos}
	if p.curIs(token.ALL) {
		stmt.All = true
		p.advance()
	} else if p.curIsIdent() {
		stmt.Cursor = p.curIdentValue()
		p.advance()
	}
	stmt.EndPos = p.cur.Pos
	return stmt
}

func (p *Parser) parseShow() ast.Statement {
	pos := p.cur.Pos
	p.advance() // consume SHOW

	if !p.expect(token.FUNCTIONS) {
		return nil
	}
	stmt := &ast.ShowFunctionsStmt{StartPos: pos}
	if p.curIs(token.LIKE) {
		p.advance()
		if p.curIs(token.STRING) {
			stmt.Like = p.cur.Value
			p.advance()
		}
	}
	stmt.EndPos = p.cur.Pos
	return stmt
}

func (p *Parser) parseTableName() *ast.TableName {
	if !p.curIsIdent() {
		p.errorf("expected table name")
		return nil
	}

	pos := p.cur.Pos
	parts := []string{p.curIdentValue()}
	p.advance()

	// Collect all parts (catalog.schema.table)
	for p.curIs(token.DOT) {
		p.advance()
		if !p.curIsIdent() {
			p.errorf("expected identifier after '.'")
			return nil
		}
		parts = append(parts, p.curIdentValue())
		p.advance()
	}

	tn := ast.GetTableName()
	tn.StartPos = pos
	tn.EndPos = p.cur.Pos
	tn.Parts = parts
	return tn
}

func parseInt(s string) int {
	// Use strconv to properly handle overflow
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		// On overflow or error, return max int to avoid negative values
		return int(^uint(0) >> 1)
	}
	// Clamp to int range
	if n > int64(int(^uint(0)>>1)) {
		return int(^uint(0) >> 1)
	}
	if n < int64(-int(^uint(0)>>1)-1) {
		return -int(^uint(0)>>1) - 1
	}
	return int(n)
}
