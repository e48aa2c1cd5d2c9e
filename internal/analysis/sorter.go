package analysis

import (
	"sort"
	"strings"

	"clarion/internal/ast"
)

// DefinitionSorter orders top-level definitions by dependency so the type
// checker can walk them regardless of declaration order, and rejects
// dependency cycles. A trait whose methods reference another local trait
// depends on it; two traits referencing each other form a cycle that
// would make structural comparison non-terminating, so the cycle is
// rejected here, before any type recursion could loop.
type DefinitionSorter struct {
	nameToIndex map[string]int
	edges       [][]int
}

// RunDefinitionSorter computes the record's TopLevelOrdering, failing with
// a circular-reference error when the definition graph has a cycle.
func RunDefinitionSorter(analysis *ContractAnalysis) *CheckError {
	sorter := &DefinitionSorter{
		nameToIndex: make(map[string]int),
		edges:       make([][]int, len(analysis.Expressions)),
	}
	return sorter.run(analysis)
}

func (s *DefinitionSorter) run(analysis *ContractAnalysis) *CheckError {
	for index, expression := range analysis.Expressions {
		if name, ok := definedName(expression); ok {
			s.nameToIndex[name] = index
		}
	}

	for index, expression := range analysis.Expressions {
		seen := make(map[int]struct{})
		s.collectDependencies(index, expression, seen)
		targets := make([]int, 0, len(seen))
		for target := range seen {
			targets = append(targets, target)
		}
		sort.Ints(targets)
		s.edges[index] = targets
	}

	ordering, cycle := topologicalSort(s.edges)
	if cycle != nil {
		names := make([]string, 0, len(cycle))
		for _, index := range cycle {
			if name, ok := definedName(analysis.Expressions[index]); ok {
				names = append(names, name)
			}
		}
		return ErrCircularReference(strings.Join(names, ", ")).
			WithExpression(analysis.Expressions[cycle[0]])
	}

	analysis.TopLevelOrdering = ordering
	return nil
}

// definedName extracts the name a top-level define form binds, if any.
func definedName(expression *ast.SymbolicExpression) (string, bool) {
	items, ok := expression.MatchList()
	if !ok || len(items) < 2 {
		return "", false
	}
	head, ok := items[0].MatchAtom()
	if !ok {
		return "", false
	}
	switch head {
	case "define-public", "define-private", "define-read-only":
		signature, ok := items[1].MatchList()
		if !ok || len(signature) == 0 {
			return "", false
		}
		return signature[0].MatchAtom()
	case "define-data-var", "define-map", "define-fungible-token",
		"define-non-fungible-token", "define-trait", "use-trait":
		return items[1].MatchAtom()
	default:
		return "", false
	}
}

// collectDependencies records every defined name the subtree mentions,
// by atom or by trait reference.
func (s *DefinitionSorter) collectDependencies(origin int, expression *ast.SymbolicExpression, seen map[int]struct{}) {
	switch expression.Kind {
	case ast.AtomExpr:
		s.markDependency(origin, expression.Atom, seen)
	case ast.TraitRefExpr:
		s.markDependency(origin, expression.Trait, seen)
	case ast.ListExpr:
		for _, item := range expression.List {
			s.collectDependencies(origin, item, seen)
		}
	}
}

func (s *DefinitionSorter) markDependency(origin int, name string, seen map[int]struct{}) {
	target, ok := s.nameToIndex[name]
	if !ok || target == origin {
		return
	}
	seen[target] = struct{}{}
}

// topologicalSort returns a dependency-first ordering, or the members of
// a cycle when one exists. Plain three-state DFS.
func topologicalSort(edges [][]int) ([]int, []int) {
	const (
		unvisited = iota
		visiting
		visited
	)
	state := make([]int, len(edges))
	ordering := make([]int, 0, len(edges))
	stack := make([]int, 0)

	var walk func(node int) []int
	walk = func(node int) []int {
		state[node] = visiting
		stack = append(stack, node)
		for _, target := range edges[node] {
			switch state[target] {
			case visiting:
				// Back edge: everything from target's stack position on
				// participates in the cycle.
				for i, member := range stack {
					if member == target {
						return append([]int(nil), stack[i:]...)
					}
				}
				return append([]int(nil), stack...)
			case unvisited:
				if cycle := walk(target); cycle != nil {
					return cycle
				}
			}
		}
		stack = stack[:len(stack)-1]
		state[node] = visited
		ordering = append(ordering, node)
		return nil
	}

	for node := range edges {
		if state[node] == unvisited {
			if cycle := walk(node); cycle != nil {
				return nil, cycle
			}
		}
	}
	return ordering, nil
}
