package model

import "fmt"

// Decl is one entry of the resolved emission order: either a type alias or an
// interface, never both.
type Decl struct {
	Alias     *TypeAlias
	Interface *Interface
}

// Name returns the declared name of the entity
func (d Decl) Name() string {
	if d.Alias != nil {
		return d.Alias.Name
	}
	return d.Interface.Name
}

type declNode struct {
	decl    Decl
	depList []string
	pending map[string]struct{}
}

// ResolveOrder computes a deterministic emission order over the alias and
// interface universe such that every entity appears after all entities named
// in its dependency set. It repeatedly extracts the wave of entities whose
// dependencies are already satisfied (aliases first, then interfaces, each in
// input order) and prunes the emitted names from the remaining sets.
//
// The input slices are not mutated; dependency bookkeeping happens on copies.
// An iteration that emits nothing while entities remain is fatal: either a
// dependency names an undeclared entity, or the graph contains a true cycle.
func ResolveOrder(aliases []TypeAlias, interfaces []Interface) ([]Decl, error) {
	aliasNodes := make([]*declNode, 0, len(aliases))
	for i := range aliases {
		aliasNodes = append(aliasNodes, newDeclNode(Decl{Alias: &aliases[i]}, aliases[i].Dependencies))
	}
	ifaceNodes := make([]*declNode, 0, len(interfaces))
	for i := range interfaces {
		ifaceNodes = append(ifaceNodes, newDeclNode(Decl{Interface: &interfaces[i]}, interfaces[i].Dependencies))
	}

	order := make([]Decl, 0, len(aliasNodes)+len(ifaceNodes))
	for len(aliasNodes) > 0 || len(ifaceNodes) > 0 {
		var wave []string

		aliasNodes, wave = emitReady(aliasNodes, wave, &order)
		ifaceNodes, wave = emitReady(ifaceNodes, wave, &order)

		if len(wave) == 0 {
			return nil, blockedError(append(aliasNodes, ifaceNodes...))
		}

		for _, node := range aliasNodes {
			for _, name := range wave {
				delete(node.pending, name)
			}
		}
		for _, node := range ifaceNodes {
			for _, name := range wave {
				delete(node.pending, name)
			}
		}
	}
	return order, nil
}

func newDeclNode(decl Decl, deps []string) *declNode {
	pending := make(map[string]struct{}, len(deps))
	for _, d := range deps {
		pending[d] = struct{}{}
	}
	return &declNode{decl: decl, depList: deps, pending: pending}
}

// emitReady stably partitions nodes into satisfied and blocked, appends the
// satisfied ones to the order in input order and returns the blocked rest
func emitReady(nodes []*declNode, wave []string, order *[]Decl) ([]*declNode, []string) {
	blocked := nodes[:0]
	for _, node := range nodes {
		if len(node.pending) == 0 {
			*order = append(*order, node.decl)
			wave = append(wave, node.decl.Name())
			continue
		}
		blocked = append(blocked, node)
	}
	return blocked, wave
}

// blockedError distinguishes a dangling external reference from a true
// dependency cycle among the permanently blocked entities
func blockedError(remaining []*declNode) error {
	names := make(map[string]struct{}, len(remaining))
	for _, node := range remaining {
		names[node.decl.Name()] = struct{}{}
	}

	for _, node := range remaining {
		for _, dep := range node.depList {
			if _, live := node.pending[dep]; !live {
				continue
			}
			if _, declared := names[dep]; !declared {
				return fmt.Errorf("unresolvable external reference: %q depends on undeclared name %q", node.decl.Name(), dep)
			}
		}
	}

	first := remaining[0].decl.Name()
	return fmt.Errorf("dependency cycle detected involving %q (%d entities unresolved)", first, len(remaining))
}
