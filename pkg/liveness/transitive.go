package liveness

import (
	"fmt"

	"github.com/WeyeTech/DeprecatedControllerRemover/pkg/model"
)

// FindTransitivelyUnused walks call edges outward from the seed of
// confirmed-dead methods and returns every method that loses its last caller
// along the way. The seed itself is not returned.
//
// The worklist keeps a remaining-usage counter per method, initialized from
// its external reference count. Dequeuing a method enqueued by a dead caller
// decrements its counter; when the counter reaches zero the method is dead
// and its own callees are enqueued. A method with references from outside the
// shrinking removal set keeps a positive counter and is never marked.
func (a *Analyzer) FindTransitivelyUnused(seed []model.Symbol) ([]model.Symbol, error) {
	type workItem struct {
		sym model.Symbol
		// fromDeadCaller is false only for seed entries, which are already
		// confirmed unreferenced and need no decrement.
		fromDeadCaller bool
	}

	queue := make([]workItem, 0, len(seed))
	seedSet := make(map[model.ID]bool, len(seed))
	for _, s := range seed {
		if s.Kind != model.KindMethod {
			continue
		}
		queue = append(queue, workItem{sym: s})
		seedSet[s.ID()] = true
	}

	remaining := make(map[model.ID]int)
	dead := make(map[model.ID]bool)
	var out []model.Symbol

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]
		id := item.sym.ID()

		if dead[id] {
			continue
		}

		if _, seen := remaining[id]; !seen {
			count, err := a.ExternalReferenceCount(item.sym)
			if err != nil {
				return nil, err
			}
			remaining[id] = count
		}

		if item.fromDeadCaller && remaining[id] > 0 {
			remaining[id]--
		}
		if remaining[id] > 0 {
			continue
		}
		if !removableMethod(item.sym) {
			continue
		}

		dead[id] = true
		if !seedSet[id] {
			a.logger.Logf("liveness: %s is transitively unreachable", item.sym.QualifiedName)
			out = append(out, item.sym)
		}

		callees, err := a.Callees(item.sym)
		if err != nil {
			return nil, err
		}
		for _, callee := range callees {
			if callee.ID() == id {
				// self-recursion never keeps a method alive
				continue
			}
			queue = append(queue, workItem{sym: callee, fromDeadCaller: true})
		}
	}

	return out, nil
}

// MaturedCallees filters a watch set of previously-recorded callees down to
// the methods that now have zero external references, i.e. whose last caller
// has since been removed. Symbols no longer present in the model are dropped.
func (a *Analyzer) MaturedCallees(watch []model.Symbol) ([]model.Symbol, error) {
	var out []model.Symbol
	for _, sym := range watch {
		if sym.Kind != model.KindMethod || !removableMethod(sym) {
			continue
		}
		valid, err := a.codeModel.IsValid(sym)
		if err != nil {
			return nil, fmt.Errorf("failed to check %s: %w", sym.QualifiedName, err)
		}
		if !valid {
			continue
		}
		unused, err := a.isUnused(sym)
		if err != nil {
			return nil, err
		}
		if unused {
			out = append(out, sym)
		}
	}
	return out, nil
}

// Callees resolves the call expressions of a method body to method symbols,
// one entry per call site. Unresolved calls are dropped: a target the model
// cannot see is never removed on this method's account.
func (a *Analyzer) Callees(method model.Symbol) ([]model.Symbol, error) {
	calls, err := a.codeModel.Calls(method)
	if err != nil {
		return nil, fmt.Errorf("failed to read calls of %s: %w", method.QualifiedName, err)
	}

	var out []model.Symbol
	for _, call := range calls {
		target, err := a.codeModel.ResolveCall(call)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve call to %s: %w", call.Callee, err)
		}
		if target == nil || target.Kind != model.KindMethod {
			continue
		}
		out = append(out, *target)
	}
	return out, nil
}
