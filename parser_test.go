package lox

import (
	"fmt"
	"testing"
)

func parseSource(t *testing.T, src string) ([]Stmt, []string) {
	t.Helper()
	var errs []string
	s := NewScanner(src, func(line int, msg string) {
		errs = append(errs, fmt.Sprintf("[line %d] Error: %s", line, msg))
	})
	tokens := s.ScanTokens()
	p := NewParser(tokens, func(tok Token, msg string) {
		where := "at end"
		if tok.Type != EOF {
			where = fmt.Sprintf("at '%s'", tok.Lexeme)
		}
		errs = append(errs, fmt.Sprintf("[line %d] Error %s: %s", tok.Line, where, msg))
	})
	stmts := p.Parse()
	return stmts, errs
}

func TestParse_ExpressionPrecedence(t *testing.T) {
	stmts, errs := parseSource(t, "print 1 + 2 * 3;")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(stmts) != 1 {
		t.Fatalf("want 1 statement, got %d", len(stmts))
	}
	print, ok := stmts[0].(*PrintStmt)
	if !ok {
		t.Fatalf("want *PrintStmt, got %T", stmts[0])
	}
	add, ok := print.Expr.(*BinaryExpr)
	if !ok || add.Op.Type != PLUS {
		t.Fatalf("outer node = %#v, want a PLUS binary", print.Expr)
	}
	mul, ok := add.Right.(*BinaryExpr)
	if !ok || mul.Op.Type != STAR {
		t.Fatalf("right operand = %#v, want a STAR binary (precedence)", add.Right)
	}
}

func TestParse_ForDesugaring(t *testing.T) {
	stmts, errs := parseSource(t, "for (var i = 0; i < 3; i = i + 1) print i;")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	outer, ok := stmts[0].(*BlockStmt)
	if !ok {
		t.Fatalf("want outer *BlockStmt wrapping the initializer, got %T", stmts[0])
	}
	if len(outer.Statements) != 2 {
		t.Fatalf("want [initializer, while], got %d statements", len(outer.Statements))
	}
	if _, ok := outer.Statements[0].(*VarStmt); !ok {
		t.Fatalf("first statement = %T, want *VarStmt", outer.Statements[0])
	}
	whileStmt, ok := outer.Statements[1].(*WhileStmt)
	if !ok {
		t.Fatalf("second statement = %T, want *WhileStmt", outer.Statements[1])
	}
	body, ok := whileStmt.Body.(*BlockStmt)
	if !ok {
		t.Fatalf("while body = %T, want *BlockStmt wrapping [body, increment]", whileStmt.Body)
	}
	if len(body.Statements) != 2 {
		t.Fatalf("while body wants [print, increment], got %d", len(body.Statements))
	}
	if _, ok := body.Statements[1].(*ExpressionStmt); !ok {
		t.Fatalf("second body statement = %T, want the increment *ExpressionStmt", body.Statements[1])
	}
}

func TestParse_ForDesugaring_DefaultCondition(t *testing.T) {
	stmts, errs := parseSource(t, "for (;;) print 1;")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	whileStmt, ok := stmts[0].(*WhileStmt)
	if !ok {
		t.Fatalf("want *WhileStmt (no initializer to wrap in), got %T", stmts[0])
	}
	lit, ok := whileStmt.Condition.(*LiteralExpr)
	if !ok || lit.Value != true {
		t.Fatalf("condition = %#v, want Literal(true)", whileStmt.Condition)
	}
}

func TestParse_InvalidAssignmentTarget_NonFatal(t *testing.T) {
	stmts, errs := parseSource(t, "1 + 2 = 3; print \"still here\";")
	if len(errs) != 1 || errs[0] != "[line 1] Error at '=': Invalid assignment target." {
		t.Fatalf("errs = %v", errs)
	}
	if len(stmts) != 2 {
		t.Fatalf("parsing must continue past the bad assignment target, got %d stmts", len(stmts))
	}
	if _, ok := stmts[1].(*PrintStmt); !ok {
		t.Fatalf("second statement = %T, want *PrintStmt", stmts[1])
	}
}

func TestParse_PanicModeRecovery(t *testing.T) {
	stmts, errs := parseSource(t, "var a = ; print \"after\";")
	if len(errs) == 0 {
		t.Fatalf("want at least one error")
	}
	if len(stmts) != 1 {
		t.Fatalf("want synchronize to skip the faulted declaration and keep the next, got %d stmts", len(stmts))
	}
	if _, ok := stmts[0].(*PrintStmt); !ok {
		t.Fatalf("surviving statement = %T, want *PrintStmt", stmts[0])
	}
}

func TestParse_MissingSemicolon(t *testing.T) {
	_, errs := parseSource(t, "print 1")
	if len(errs) != 1 || errs[0] != "[line 1] Error at end: Expect ';' after value." {
		t.Fatalf("errs = %v", errs)
	}
}

func TestParse_FunctionDeclaration(t *testing.T) {
	stmts, errs := parseSource(t, "fun add(a, b) { return a + b; }")
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	fn, ok := stmts[0].(*FunctionStmt)
	if !ok {
		t.Fatalf("want *FunctionStmt, got %T", stmts[0])
	}
	if fn.Name.Lexeme != "add" || len(fn.Params) != 2 {
		t.Fatalf("fn = %+v", fn)
	}
	if _, ok := fn.Body[0].(*ReturnStmt); !ok {
		t.Fatalf("body[0] = %T, want *ReturnStmt", fn.Body[0])
	}
}
