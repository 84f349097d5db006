package lox

// Run drives one full scan → parse → resolve → evaluate pass over source
// against interp, routing every diagnostic through reporter. The caller
// controls interp's lifetime: the file driver creates one Interpreter for
// a single Run call, while the REPL creates one Interpreter up front and
// calls Run again for every line, so that a `var` defined on one line
// stays visible on the next.
func Run(source string, reporter *Reporter, interp *Interpreter) {
	scanner := NewScanner(source, func(line int, msg string) {
		reporter.Lex(line, msg)
	})
	tokens := scanner.ScanTokens()
	if reporter.HadError {
		return
	}

	parser := NewParser(tokens, func(tok Token, msg string) {
		reporter.Syntax(tok, msg)
	})
	stmts := parser.Parse()
	if reporter.HadError {
		return
	}

	resolver := NewResolver(func(tok Token, msg string) {
		reporter.Syntax(tok, msg)
	})
	depths := resolver.Resolve(stmts)
	if reporter.HadError {
		return
	}

	if err := interp.Run(stmts, depths); err != nil {
		if rerr, ok := err.(*RuntimeError); ok {
			reporter.Runtime(rerr)
		}
	}
}
