// Package astdump renders a Program's arena-allocated AST as a plain,
// serializable tree for the `lox ast` subcommand: it walks the AST once
// into an exportable shape rather than letting callers poke at arena
// internals directly.
package astdump

import (
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"lox/internal/ast"
	"lox/internal/source"
)

// Node is one flattened AST node: its kind name, the source line it
// starts on, a handful of scalar Fields (operator lexemes, names,
// literal values), and nested Children in evaluation order.
type Node struct {
	Kind     string            `msgpack:"kind" json:"kind"`
	Line     uint32            `msgpack:"line" json:"line"`
	Fields   map[string]string `msgpack:"fields,omitempty" json:"fields,omitempty"`
	Children []Node            `msgpack:"children,omitempty" json:"children,omitempty"`
}

// Dump walks every top-level statement of prog into a slice of Node,
// resolving line numbers for nodes (like a literal) whose payload carries
// no token of its own against fs.
func Dump(prog *ast.Program, fs *source.FileSet) []Node {
	d := &dumper{exprs: prog.Exprs, stmts: prog.Stmts, fs: fs}
	nodes := make([]Node, 0, len(prog.Statements))
	for _, id := range prog.Statements {
		nodes = append(nodes, d.stmt(id))
	}
	return nodes
}

// EncodeMsgpack writes Dump(prog, fs)'s tree to w as msgpack.
func EncodeMsgpack(w io.Writer, prog *ast.Program, fs *source.FileSet) error {
	return msgpack.NewEncoder(w).Encode(Dump(prog, fs))
}

type dumper struct {
	exprs *ast.Exprs
	stmts *ast.Stmts
	fs    *source.FileSet
}
