package grammar

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/fatih/color"

	"clarion/internal/ast"
)

var contractParser = participle.MustBuild[Contract](
	participle.Lexer(ClarionLexer),
	participle.Elide("Whitespace", "Comment"),
)

// ParseContract parses contract source into symbolic expressions with
// pre-order IDs already assigned. The returned expressions are ready for
// the analysis pass pipeline.
func ParseContract(filename, source string) ([]*ast.SymbolicExpression, error) {
	contract, err := contractParser.ParseString(filename, source)
	if err != nil {
		return nil, err
	}

	expressions, err := Convert(contract.Expressions)
	if err != nil {
		return nil, err
	}

	if err := ast.AssignExpressionIDs(expressions); err != nil {
		return nil, err
	}
	return expressions, nil
}

// ReportParseError prints a friendly caret-style parse error message.
func ReportParseError(src string, err error) {
	pe, ok := err.(participle.Error)
	if !ok {
		color.Red("Unexpected error: %s", err)
		return
	}

	pos := pe.Position()
	lines := strings.Split(src, "\n")
	if pos.Line <= 0 || pos.Line > len(lines) {
		color.Red("Syntax error at unknown location: %s", err)
		return
	}

	line := lines[pos.Line-1]
	caret := strings.Repeat(" ", pos.Column-1) + "^"

	color.Red("Syntax error in %s at line %d, column %d:", pos.Filename, pos.Line, pos.Column)
	fmt.Println(line)
	color.HiRed(caret)
	fmt.Printf("→ %s\n", pe.Message())
}
