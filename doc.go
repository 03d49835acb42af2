// Package volcanium computes how much pressure can be released from a network
// of valves and tunnels within a time limit, for one agent or for two agents
// working side by side.
//
// Every step costs one minute: walking a tunnel or opening a valve. An opened
// valve releases its rate every remaining minute, so opening it with r minutes
// left is worth r·rate.
//
// The pipeline is split into small subpackages:
//
//	core/     — immutable valve graph (dense indices, neighbor lists, rates)
//	builder/  — deterministic graph construction for tests, examples and benchmarks
//	parser/   — scan report grammar (participle)
//	dijkstra/ — generic shortest-path engine (all reachable, or nearest goal)
//	distance/ — hop distances from every valve to every reward-bearing valve
//	bitmask/  — one bit per reward-bearing valve; fails fast on overflow
//	search/   — explicit-stack enumeration of opening orders → best table
//	combine/  — best pair of disjoint opened sets (naive, sorted, parallel)
//	solver/   — Solve(graph, start, budgets) wiring the above
//	config/   — YAML run configuration under the XDG config directory
//	cli/      — cobra command behind cmd/volcanium
//
// Quick start:
//
//	g, _ := parser.ParseGraph(os.Stdin)
//	res, _ := solver.Solve(g, "AA", solver.DefaultBudgets())
//	fmt.Println(res.Single, res.Pair)
package volcanium
