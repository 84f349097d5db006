package lox

import "fmt"

// RuntimeError is raised by the evaluator or an Environment operation,
// carrying the offending token for line info. It unwinds via panic/recover
// up to Interpreter.Run rather than threading a (Value, error) result
// through every recursive eval call.
type RuntimeError struct {
	Token Token
	Msg   string
}

func (e *RuntimeError) Error() string { return e.Msg }

// Report formats e the way the driver prints a runtime error: "MSG\n[line
// L]", distinct from the compile-time "[line L] Error ...: MSG" shape used
// by the scanner/parser/resolver.
func (e *RuntimeError) Report() string {
	return fmt.Sprintf("%s\n[line %d]", e.Msg, e.Token.Line)
}

// Reporter accumulates the had-error / had-runtime-error flags and
// centralizes the exact diagnostic string format for every tier: lexical,
// syntactic, and runtime.
type Reporter struct {
	HadError        bool
	HadRuntimeError bool
	stderr          func(string)
	stdout          func(string)
}

// NewReporter creates a Reporter writing compile-time diagnostics via
// writeErr and runtime diagnostics via writeOut — compile-time errors go
// to stderr, while runtime error text is printed via the same stream as
// program output.
func NewReporter(writeErr, writeOut func(string)) *Reporter {
	return &Reporter{stderr: writeErr, stdout: writeOut}
}

// Reset clears both flags, used between REPL lines so one bad line doesn't
// end the session.
func (r *Reporter) Reset() {
	r.HadError = false
	r.HadRuntimeError = false
}

// Lex reports a scanner diagnostic.
func (r *Reporter) Lex(line int, msg string) {
	r.HadError = true
	r.stderr(fmt.Sprintf("[line %d] Error: %s", line, msg))
}

// Syntax reports a parser or resolver diagnostic, formatted per the
// "at end" vs "at 'LEXEME'" rule.
func (r *Reporter) Syntax(tok Token, msg string) {
	r.HadError = true
	where := "at end"
	if tok.Type != EOF {
		where = fmt.Sprintf("at '%s'", tok.Lexeme)
	}
	r.stderr(fmt.Sprintf("[line %d] Error %s: %s", tok.Line, where, msg))
}

// Runtime reports an uncaught RuntimeError.
func (r *Reporter) Runtime(err *RuntimeError) {
	r.HadRuntimeError = true
	r.stdout(err.Report())
}
