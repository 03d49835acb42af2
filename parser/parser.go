// Package parser reads valve scan reports into core nodes.
//
// Each report line has the form
//
//	Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
//	Valve HH has flow rate=22; tunnel leads to valve GG
//
// Line breaks carry no meaning to the grammar: a neighbor list ends at the first
// token that is not a comma, which is always the next "Valve".
package parser

import (
	"errors"
	"fmt"
	"io"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/katalvlaran/volcanium/core"
)

// DefaultStart is the valve both agents start from.
const DefaultStart = "AA"

// ErrEmptyReport is returned when the input holds no valve line.
var ErrEmptyReport = errors.New("parser: report contains no valves")

// Report is the parsed form of a whole scan report.
type Report struct {
	Valves []*Valve `@@*`
}

// Valve is one report line.
type Valve struct {
	Pos lexer.Position

	ID      string   `"Valve" @Ident "has" "flow" "rate" "="`
	Rate    uint64   `@Int ";"`
	Tunnels []string `( "tunnels" "lead" "to" "valves" | "tunnel" "leads" "to" "valve" ) @Ident ( "," @Ident )*`
}

var reportLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Ident", Pattern: `[A-Za-z]+`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Punct", Pattern: `[=;,]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var reportParser = participle.MustBuild[Report](
	participle.Lexer(reportLexer),
	participle.Elide("Whitespace"),
)

// Parse reads a full report from r.
func Parse(r io.Reader) ([]core.Node, error) {
	rep, err := reportParser.Parse("", r)
	if err != nil {
		return nil, fmt.Errorf("parser: %w", err)
	}

	return rep.Nodes()
}

// ParseString parses a report held in memory.
func ParseString(s string) ([]core.Node, error) {
	rep, err := reportParser.ParseString("", s)
	if err != nil {
		return nil, fmt.Errorf("parser: %w", err)
	}

	return rep.Nodes()
}

// ParseGraph parses r and builds the graph in one step.
func ParseGraph(r io.Reader, opts ...core.GraphOption) (*core.Graph, error) {
	nodes, err := Parse(r)
	if err != nil {
		return nil, err
	}

	return core.NewGraph(nodes, opts...)
}

// Nodes converts the report into core nodes in line order.
func (rep *Report) Nodes() ([]core.Node, error) {
	if rep == nil || len(rep.Valves) == 0 {
		return nil, ErrEmptyReport
	}
	nodes := make([]core.Node, len(rep.Valves))
	for i, v := range rep.Valves {
		nodes[i] = core.Node{
			ID:        v.ID,
			Weight:    v.Rate,
			Neighbors: append([]string(nil), v.Tunnels...),
		}
	}

	return nodes, nil
}
