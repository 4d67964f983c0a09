//go:build unit

package planner

import (
	"testing"

	"github.com/WeyeTech/DeprecatedControllerRemover/pkg/classifier"
	"github.com/WeyeTech/DeprecatedControllerRemover/pkg/liveness"
	"github.com/WeyeTech/DeprecatedControllerRemover/pkg/model"
	"github.com/stretchr/testify/assert"
)

func TestPlan_GroupsByCategory(t *testing.T) {
	imp := model.Symbol{Kind: model.KindImport, QualifiedName: "java.io.IOException", File: "A.java"}
	field := model.Symbol{
		Kind: model.KindField, QualifiedName: "com.example.A#x", File: "A.java",
		Modifiers: model.Modifiers{Final: true, Private: true},
	}
	class := model.Symbol{Kind: model.KindClass, QualifiedName: "com.example.Leftover", File: "Leftover.java"}
	dep := model.Symbol{Kind: model.KindMethod, QualifiedName: "com.example.A#old", File: "A.java"}
	trans := model.Symbol{Kind: model.KindMethod, QualifiedName: "com.example.A#helper", File: "A.java"}

	batch := Plan([]liveness.FileFindings{
		{
			File:              "A.java",
			UnusedImports:     []model.Symbol{imp},
			UnusedFields:      []model.Symbol{field},
			DeprecatedMethods: []model.Symbol{dep},
		},
		{
			File:          "Leftover.java",
			UnusedClasses: []model.Symbol{class},
		},
	}, []model.Symbol{trans})

	assert.Equal(t, 5, batch.Total())
	assert.False(t, batch.Empty())
	assert.Equal(t, []model.Symbol{imp}, batch.Imports)
	assert.Equal(t, []model.Symbol{field}, batch.Fields)
	assert.Equal(t, []model.Symbol{class}, batch.Classes)
	assert.Equal(t, []model.Symbol{dep}, batch.DeprecatedMethods)
	assert.Equal(t, []model.Symbol{trans}, batch.TransitiveMethods)

	counts := batch.Counts()
	assert.Equal(t, 1, counts[classifier.CategoryUnusedImport])
	assert.Equal(t, 2, counts[classifier.CategoryDeprecatedMethod])
}

func TestPlan_DeduplicatesByIdentity(t *testing.T) {
	dep := model.Symbol{Kind: model.KindMethod, QualifiedName: "com.example.A#old", File: "A.java"}

	batch := Plan([]liveness.FileFindings{
		{File: "A.java", DeprecatedMethods: []model.Symbol{dep}},
	}, []model.Symbol{dep})

	// The seed method appearing in both lists is planned once
	assert.Equal(t, 1, batch.Total())
	assert.Empty(t, batch.TransitiveMethods)
}

func TestPlan_DefenseInDepthExclusions(t *testing.T) {
	override := model.Symbol{Kind: model.KindMethod, QualifiedName: "com.example.A#o", File: "A.java", Overrides: true}
	ifaceMember := model.Symbol{Kind: model.KindMethod, QualifiedName: "com.example.A#i", File: "A.java", InterfaceMember: true}
	publicField := model.Symbol{
		Kind: model.KindField, QualifiedName: "com.example.A#p", File: "A.java",
		Modifiers: model.Modifiers{Public: true},
	}
	staticField := model.Symbol{
		Kind: model.KindField, QualifiedName: "com.example.A#s", File: "A.java",
		Modifiers: model.Modifiers{Static: true},
	}
	annotatedField := model.Symbol{
		Kind: model.KindField, QualifiedName: "com.example.A#a", File: "A.java",
		Annotations: []string{"Autowired"},
	}

	batch := Plan([]liveness.FileFindings{
		{
			File:              "A.java",
			UnusedFields:      []model.Symbol{publicField, staticField, annotatedField},
			DeprecatedMethods: []model.Symbol{override},
		},
	}, []model.Symbol{ifaceMember})

	// Even if earlier stages let them through, the planner drops them all
	assert.True(t, batch.Empty())
}

func TestBatch_Symbols_ClassesLast(t *testing.T) {
	field := model.Symbol{Kind: model.KindField, QualifiedName: "com.example.A#x", File: "A.java",
		Modifiers: model.Modifiers{Final: true, Private: true}}
	class := model.Symbol{Kind: model.KindClass, QualifiedName: "com.example.A", File: "A.java"}

	batch := Plan([]liveness.FileFindings{
		{File: "A.java", UnusedFields: []model.Symbol{field}, UnusedClasses: []model.Symbol{class}},
	}, nil)

	syms := batch.Symbols()
	assert.Equal(t, []model.Symbol{field, class}, syms)
}
