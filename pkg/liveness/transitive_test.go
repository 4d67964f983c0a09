//go:build unit

package liveness

import (
	"testing"

	"github.com/WeyeTech/DeprecatedControllerRemover/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func callTo(caller model.Symbol, callee string, line int) model.CallExpr {
	return model.CallExpr{Caller: caller.ID(), File: caller.File, Line: line, Callee: callee}
}

func refFrom(target, enclosing model.Symbol, line int) model.ReferenceSite {
	return model.ReferenceSite{
		Target:          target.ID(),
		File:            enclosing.File,
		Line:            line,
		EnclosingMethod: enclosing.ID(),
	}
}

// A (dead seed) calls B whose only caller is A; B calls C whose only caller
// is B. Both B and C lose their last caller transitively.
func TestFindTransitivelyUnused_Chain(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockModel := model.NewMockCodeModel(ctrl)
	mockRefs := model.NewMockReferenceIndex(ctrl)
	analyzer := NewAnalyzer(mockModel, mockRefs, nil, nil)

	a := method("X.java", "com.example.X", "a")
	b := method("X.java", "com.example.X", "b")
	c := method("X.java", "com.example.X", "c")

	mockRefs.EXPECT().References(a).Return(nil, nil)
	mockRefs.EXPECT().References(b).Return([]model.ReferenceSite{refFrom(b, a, 10)}, nil)
	mockRefs.EXPECT().References(c).Return([]model.ReferenceSite{refFrom(c, b, 20)}, nil)

	mockModel.EXPECT().Calls(a).Return([]model.CallExpr{callTo(a, "b", 10)}, nil)
	mockModel.EXPECT().Calls(b).Return([]model.CallExpr{callTo(b, "c", 20)}, nil)
	mockModel.EXPECT().Calls(c).Return(nil, nil)

	mockModel.EXPECT().ResolveCall(callTo(a, "b", 10)).Return(&b, nil)
	mockModel.EXPECT().ResolveCall(callTo(b, "c", 20)).Return(&c, nil)

	unused, err := analyzer.FindTransitivelyUnused([]model.Symbol{a})
	require.NoError(t, err)

	assert.Equal(t, []model.Symbol{b, c}, unused)
}

// A method with a caller outside the removal set keeps a positive remaining
// count and is never marked.
func TestFindTransitivelyUnused_ExternallyReferencedStaysLive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockModel := model.NewMockCodeModel(ctrl)
	mockRefs := model.NewMockReferenceIndex(ctrl)
	analyzer := NewAnalyzer(mockModel, mockRefs, nil, nil)

	a := method("X.java", "com.example.X", "a")
	shared := method("X.java", "com.example.X", "shared")
	live := method("Y.java", "com.example.Y", "live")

	mockRefs.EXPECT().References(a).Return(nil, nil)
	mockRefs.EXPECT().References(shared).Return([]model.ReferenceSite{
		refFrom(shared, a, 10),
		refFrom(shared, live, 5),
	}, nil)

	mockModel.EXPECT().Calls(a).Return([]model.CallExpr{callTo(a, "shared", 10)}, nil)
	mockModel.EXPECT().ResolveCall(callTo(a, "shared", 10)).Return(&shared, nil)

	unused, err := analyzer.FindTransitivelyUnused([]model.Symbol{a})
	require.NoError(t, err)

	assert.Empty(t, unused)
}

// Unresolved call targets are ignored: nothing outside the analyzed scope is
// ever removed.
func TestFindTransitivelyUnused_UnresolvedCallIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockModel := model.NewMockCodeModel(ctrl)
	mockRefs := model.NewMockReferenceIndex(ctrl)
	analyzer := NewAnalyzer(mockModel, mockRefs, nil, nil)

	a := method("X.java", "com.example.X", "a")

	mockRefs.EXPECT().References(a).Return(nil, nil)
	mockModel.EXPECT().Calls(a).Return([]model.CallExpr{callTo(a, "frameworkHook", 10)}, nil)
	mockModel.EXPECT().ResolveCall(callTo(a, "frameworkHook", 10)).Return(nil, nil)

	unused, err := analyzer.FindTransitivelyUnused([]model.Symbol{a})
	require.NoError(t, err)

	assert.Empty(t, unused)
}

// An override that loses its last caller is still never marked, and its
// callees are not visited through it.
func TestFindTransitivelyUnused_OverrideNeverMarked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockModel := model.NewMockCodeModel(ctrl)
	mockRefs := model.NewMockReferenceIndex(ctrl)
	analyzer := NewAnalyzer(mockModel, mockRefs, nil, nil)

	a := method("X.java", "com.example.X", "a")
	override := method("X.java", "com.example.X", "handle")
	override.Overrides = true

	mockRefs.EXPECT().References(a).Return(nil, nil)
	mockRefs.EXPECT().References(override).Return([]model.ReferenceSite{refFrom(override, a, 10)}, nil)

	mockModel.EXPECT().Calls(a).Return([]model.CallExpr{callTo(a, "handle", 10)}, nil)
	mockModel.EXPECT().ResolveCall(callTo(a, "handle", 10)).Return(&override, nil)

	unused, err := analyzer.FindTransitivelyUnused([]model.Symbol{a})
	require.NoError(t, err)

	assert.Empty(t, unused)
}

// Self-recursive calls are not followed and do not decrement the method's
// own counter.
func TestFindTransitivelyUnused_SelfRecursionExcluded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockModel := model.NewMockCodeModel(ctrl)
	mockRefs := model.NewMockReferenceIndex(ctrl)
	analyzer := NewAnalyzer(mockModel, mockRefs, nil, nil)

	a := method("X.java", "com.example.X", "a")
	b := method("X.java", "com.example.X", "b")

	mockRefs.EXPECT().References(a).Return(nil, nil)
	// b's only external caller is a; its self-call does not count
	mockRefs.EXPECT().References(b).Return([]model.ReferenceSite{
		refFrom(b, a, 10),
		refFrom(b, b, 21),
	}, nil)

	mockModel.EXPECT().Calls(a).Return([]model.CallExpr{callTo(a, "b", 10)}, nil)
	mockModel.EXPECT().Calls(b).Return([]model.CallExpr{callTo(b, "b", 21)}, nil)
	mockModel.EXPECT().ResolveCall(callTo(a, "b", 10)).Return(&b, nil)
	mockModel.EXPECT().ResolveCall(callTo(b, "b", 21)).Return(&b, nil)

	unused, err := analyzer.FindTransitivelyUnused([]model.Symbol{a})
	require.NoError(t, err)

	assert.Equal(t, []model.Symbol{b}, unused)
}

// Non-method seeds are ignored.
func TestFindTransitivelyUnused_EmptySeed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockModel := model.NewMockCodeModel(ctrl)
	mockRefs := model.NewMockReferenceIndex(ctrl)
	analyzer := NewAnalyzer(mockModel, mockRefs, nil, nil)

	field := model.Symbol{Kind: model.KindField, QualifiedName: "com.example.X#f", File: "X.java"}

	unused, err := analyzer.FindTransitivelyUnused([]model.Symbol{field})
	require.NoError(t, err)

	assert.Empty(t, unused)
}

// Watch entries mature only once their external reference count actually
// drops to zero against the fresh snapshot; vanished symbols and overrides
// are dropped.
func TestMaturedCallees(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockModel := model.NewMockCodeModel(ctrl)
	mockRefs := model.NewMockReferenceIndex(ctrl)
	analyzer := NewAnalyzer(mockModel, mockRefs, nil, nil)

	caller := method("X.java", "com.example.X", "caller")
	ripe := method("X.java", "com.example.X", "ripe")
	busy := method("X.java", "com.example.X", "busy")
	gone := method("X.java", "com.example.X", "gone")
	override := method("X.java", "com.example.X", "render")
	override.Overrides = true

	mockModel.EXPECT().IsValid(ripe).Return(true, nil)
	mockRefs.EXPECT().References(ripe).Return(nil, nil)
	mockModel.EXPECT().IsValid(busy).Return(true, nil)
	mockRefs.EXPECT().References(busy).
		Return([]model.ReferenceSite{refFrom(busy, caller, 12)}, nil)
	mockModel.EXPECT().IsValid(gone).Return(false, nil)

	matured, err := analyzer.MaturedCallees(
		[]model.Symbol{ripe, busy, gone, override})
	require.NoError(t, err)

	assert.Equal(t, []model.Symbol{ripe}, matured)
}
