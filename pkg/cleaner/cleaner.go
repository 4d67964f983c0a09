// Package cleaner is the fixpoint cleanup driver: it orchestrates bounded
// analyze+remove passes over a source tree until no new removals occur,
// asking for confirmation exactly once per run.
package cleaner

import (
	"context"
	"fmt"
	"sync"

	"github.com/WeyeTech/DeprecatedControllerRemover/pkg/applier"
	"github.com/WeyeTech/DeprecatedControllerRemover/pkg/classifier"
	"github.com/WeyeTech/DeprecatedControllerRemover/pkg/dependencies"
	"github.com/WeyeTech/DeprecatedControllerRemover/pkg/liveness"
	"github.com/WeyeTech/DeprecatedControllerRemover/pkg/model"
	"github.com/WeyeTech/DeprecatedControllerRemover/pkg/planner"
)

// State is the driver's lifecycle state.
type State string

// Driver states. One operation owns the model from Analyzing through Applying.
const (
	StateIdle                 State = "idle"
	StateAnalyzing            State = "analyzing"
	StateAwaitingConfirmation State = "awaiting-confirmation"
	StateApplying             State = "applying"
)

// Cleaner exposes the cleanup operations.
type Cleaner interface {
	// AnalyzeDeprecatedControllers runs the read-only deprecated-method
	// analysis over the scope. Nothing is mutated.
	AnalyzeDeprecatedControllers(ctx context.Context, scope model.Scope) (*Analysis, error)
	// RunDeprecatedControllerCleanup removes unreferenced deprecated
	// controller methods and the methods that become unreachable as a result.
	RunDeprecatedControllerCleanup(ctx context.Context, scope model.Scope) (*Report, error)
	// RunMarkedFileCleanup removes unused imports, fields and classes from
	// sentinel-marked files, clearing the sentinel on success.
	RunMarkedFileCleanup(ctx context.Context, scope model.Scope) (*Report, error)
	// State reports the driver's current lifecycle state.
	State() State
}

// passConfig selects the finding categories one operation acts on.
type passConfig struct {
	imports bool
	fields  bool
	classes bool
	methods bool
}

type realCleaner struct {
	deps     *dependencies.Dependencies
	analyzer *liveness.Analyzer
	applier  *applier.Applier

	// runMu serializes operations: the model is exclusively owned while a
	// pass is running.
	runMu sync.Mutex

	stateMu sync.RWMutex
	state   State
}

// NewCleaner creates the driver from a validated dependency container.
func NewCleaner(deps *dependencies.Dependencies) (Cleaner, error) {
	if deps == nil {
		deps = dependencies.New()
	}
	if err := deps.Validate(); err != nil {
		return nil, err
	}

	cls := classifier.New(deps.Config)
	return &realCleaner{
		deps:     deps,
		analyzer: liveness.NewAnalyzer(deps.CodeModel, deps.Refs, cls, deps.Logger),
		applier:  applier.NewApplier(deps.CodeModel, deps.Logger),
		state:    StateIdle,
	}, nil
}

func (c *realCleaner) State() State {
	c.stateMu.RLock()
	defer c.stateMu.RUnlock()
	return c.state
}

func (c *realCleaner) setState(state State) {
	c.stateMu.Lock()
	defer c.stateMu.Unlock()
	c.state = state
}

// AnalyzeDeprecatedControllers runs the read-only analysis.
func (c *realCleaner) AnalyzeDeprecatedControllers(
	ctx context.Context, scope model.Scope) (*Analysis, error) {
	if !c.runMu.TryLock() {
		return nil, ErrCleanupAlreadyRunning
	}
	defer c.runMu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.setState(StateAnalyzing)
	defer c.setState(StateIdle)

	c.deps.CodeModel.Refresh()
	return c.analyze(scope, passConfig{methods: true})
}

// RunDeprecatedControllerCleanup runs the full deprecated-method cleanup.
func (c *realCleaner) RunDeprecatedControllerCleanup(
	ctx context.Context, scope model.Scope) (*Report, error) {
	if !c.runMu.TryLock() {
		return nil, ErrCleanupAlreadyRunning
	}
	defer c.runMu.Unlock()
	defer c.setState(StateIdle)

	report, _, err := c.runCleanup(ctx, scope,
		passConfig{methods: true}, "controller cleanup")
	return report, err
}

// RunMarkedFileCleanup cleans the sentinel-marked files in scope.
func (c *realCleaner) RunMarkedFileCleanup(
	ctx context.Context, scope model.Scope) (*Report, error) {
	if !c.runMu.TryLock() {
		return nil, ErrCleanupAlreadyRunning
	}
	defer c.runMu.Unlock()
	defer c.setState(StateIdle)

	marked, err := c.deps.Marker.ListMarkedFiles(scope)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrModelRead, err)
	}
	if len(marked) == 0 {
		c.deps.Logger.Logf("marked cleanup: no marked files in scope")
		return newReport(), nil
	}

	restricted := model.Scope{Root: scope.Root, Files: marked}
	report, declined, err := c.runCleanup(ctx, restricted,
		passConfig{imports: true, fields: true, classes: true}, "marked cleanup")
	if err != nil || declined {
		return report, err
	}

	if err := c.deps.Marker.Unmark(marked); err != nil {
		return report, err
	}
	return report, nil
}

// runCleanup is the shared fixpoint loop: analyze, confirm once, then apply
// in bounded passes until a pass removes nothing. Each pass starts from a
// fresh model snapshot; symbol identities never cross a pass boundary.
//
// Methods whose callers get removed are not deleted in the same pass. Their
// callees go on a watch set instead, and a later pass removes the ones whose
// external reference count has actually dropped to zero against the fresh
// snapshot. The closure still resolves within the pass bound for realistic
// call depths, and every deletion is justified by the model state it is
// applied to, never by a prediction.
func (c *realCleaner) runCleanup(
	ctx context.Context, scope model.Scope, cfg passConfig, name string,
) (report *Report, declined bool, _ error) {
	report = newReport()

	c.setState(StateAnalyzing)
	c.deps.CodeModel.Refresh()
	analysis, err := c.analyze(scope, cfg)
	if err != nil {
		return report, false, err
	}
	if analysis.Empty() {
		c.deps.Logger.Logf("%s: nothing to remove", name)
		return report, false, nil
	}

	c.setState(StateAwaitingConfirmation)
	confirmed, err := c.deps.Prompt.PromptForConfirmation(analysis.Summary(), true)
	if err != nil {
		return report, false, fmt.Errorf("%w: %v", ErrConfirmation, err)
	}
	if !confirmed {
		c.deps.Logger.Logf("%s: cancelled", name)
		return report, true, nil
	}

	c.setState(StateApplying)
	var watch []model.Symbol
	for pass := 1; pass <= c.deps.Config.MaxPasses; pass++ {
		// cancellation is honored between passes only; a started pass
		// finishes applying its batch
		if err := ctx.Err(); err != nil {
			return report, false, err
		}

		if pass > 1 {
			c.deps.CodeModel.Refresh()
			analysis, err = c.analyze(scope, cfg)
			if err != nil {
				return report, false, err
			}
		}

		matured, err := c.analyzer.MaturedCallees(watch)
		if err != nil {
			return report, false, err
		}

		batch := planner.Plan(analysis.Files, matured)
		if batch.Empty() {
			break
		}

		c.deps.Logger.Logf("%s: pass %d removes %d symbols", name, pass, batch.Total())

		added, err := c.calleeWatch(batch)
		if err != nil {
			return report, false, err
		}

		removed := c.applyBatch(batch, report)
		if removed == 0 {
			break
		}
		report.PassesRun++
		watch = nextWatch(watch, added, batch)
	}

	c.deps.Logger.Logf("%s: removed %d symbols in %d passes",
		name, report.TotalRemoved(), report.PassesRun)
	return report, false, nil
}

// analyze runs the read-only analysis over the scope, keeping only the
// categories the operation acts on.
func (c *realCleaner) analyze(scope model.Scope, cfg passConfig) (*Analysis, error) {
	files, err := c.deps.CodeModel.ListFiles(scope)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrModelRead, err)
	}

	analysis := &Analysis{}
	var seeds []model.Symbol
	for _, file := range files {
		findings, err := c.analyzer.AnalyzeFile(file)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrModelRead, err)
		}
		if !cfg.imports {
			findings.UnusedImports = nil
		}
		if !cfg.fields {
			findings.UnusedFields = nil
		}
		if !cfg.classes {
			findings.UnusedClasses = nil
		}
		if !cfg.methods {
			findings.DeprecatedMethods = nil
		}
		if findings.Empty() {
			continue
		}
		analysis.Files = append(analysis.Files, findings)
		seeds = append(seeds, findings.DeprecatedMethods...)
	}

	if cfg.methods && len(seeds) > 0 {
		transitive, err := c.analyzer.FindTransitivelyUnused(seeds)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrModelRead, err)
		}
		analysis.TransitiveMethods = transitive
	}
	return analysis, nil
}

// applyBatch applies one pass's removals in containment-safe order, members
// before classes, and accumulates the outcome into the report.
func (c *realCleaner) applyBatch(batch planner.Batch, report *Report) int {
	removed := 0
	apply := func(category classifier.Category, symbols []model.Symbol) {
		if len(symbols) == 0 {
			return
		}
		result := c.applier.Apply(symbols)
		report.Removed[category] += result.Removed
		report.Skipped += result.Skipped
		report.Failures = append(report.Failures, result.Failures...)
		removed += result.Removed
	}

	apply(classifier.CategoryUnusedImport, batch.Imports)
	apply(classifier.CategoryUnusedField, batch.Fields)
	apply(classifier.CategoryDeprecatedMethod, batch.DeprecatedMethods)
	apply(classifier.CategoryDeprecatedMethod, batch.TransitiveMethods)
	apply(classifier.CategoryUnusedClass, batch.Classes)
	return removed
}

// calleeWatch collects the callees of every method about to be removed, so
// later passes can check whether they lost their last caller.
func (c *realCleaner) calleeWatch(batch planner.Batch) ([]model.Symbol, error) {
	var out []model.Symbol
	methods := make([]model.Symbol, 0,
		len(batch.DeprecatedMethods)+len(batch.TransitiveMethods))
	methods = append(methods, batch.DeprecatedMethods...)
	methods = append(methods, batch.TransitiveMethods...)

	for _, method := range methods {
		callees, err := c.analyzer.Callees(method)
		if err != nil {
			return nil, err
		}
		out = append(out, callees...)
	}
	return out, nil
}

// nextWatch carries the watch set into the next pass: deduplicated, minus
// everything the finished pass just removed.
func nextWatch(current, added []model.Symbol, batch planner.Batch) []model.Symbol {
	gone := make(map[model.ID]bool)
	for _, sym := range batch.Symbols() {
		gone[sym.ID()] = true
	}

	seen := make(map[model.ID]bool)
	var out []model.Symbol
	for _, sym := range append(append([]model.Symbol{}, current...), added...) {
		id := sym.ID()
		if gone[id] || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, sym)
	}
	return out
}
