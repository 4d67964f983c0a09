//go:build unit

package classifier

import (
	"testing"

	"github.com/WeyeTech/DeprecatedControllerRemover/pkg/config"
	"github.com/WeyeTech/DeprecatedControllerRemover/pkg/model"
	"github.com/stretchr/testify/assert"
)

func controllerFile() model.FileSymbols {
	return model.FileSymbols{
		File: "UserController.java",
		Classes: []model.Symbol{
			{
				Kind:          model.KindClass,
				Name:          "UserController",
				QualifiedName: "com.example.UserController",
				File:          "UserController.java",
				Annotations:   []string{"RestController"},
			},
		},
	}
}

func plainFile() model.FileSymbols {
	return model.FileSymbols{
		File: "Helper.java",
		Classes: []model.Symbol{
			{
				Kind:          model.KindClass,
				Name:          "Helper",
				QualifiedName: "com.example.Helper",
				File:          "Helper.java",
			},
		},
	}
}

func TestClassify_DeprecatedMethod_ByAnnotation(t *testing.T) {
	c := New(nil)

	sym := model.Symbol{
		Kind:            model.KindMethod,
		Name:            "listUsers",
		QualifiedName:   "com.example.UserController#listUsers",
		File:            "UserController.java",
		ContainingClass: "com.example.UserController",
		Annotations:     []string{"Deprecated"},
	}

	assert.Equal(t, CategoryDeprecatedMethod, c.Classify(sym, controllerFile()))
}

func TestClassify_DeprecatedMethod_ByDocTag(t *testing.T) {
	c := New(nil)

	sym := model.Symbol{
		Kind:                model.KindMethod,
		Name:                "listUsers",
		QualifiedName:       "com.example.UserController#listUsers",
		File:                "UserController.java",
		ContainingClass:     "com.example.UserController",
		HasDeprecatedDocTag: true,
	}

	assert.Equal(t, CategoryDeprecatedMethod, c.Classify(sym, controllerFile()))
}

func TestClassify_DeprecatedMethod_ByNameSubstring(t *testing.T) {
	c := New(nil)

	sym := model.Symbol{
		Kind:            model.KindMethod,
		Name:            "getDeprecatedReport",
		QualifiedName:   "com.example.UserController#getDeprecatedReport",
		File:            "UserController.java",
		ContainingClass: "com.example.UserController",
	}

	assert.Equal(t, CategoryDeprecatedMethod, c.Classify(sym, controllerFile()))
}

func TestClassify_DeprecatedMethod_NotInControllerClass(t *testing.T) {
	c := New(nil)

	// Deprecated, but the containing class carries no controller annotation
	sym := model.Symbol{
		Kind:            model.KindMethod,
		Name:            "compute",
		QualifiedName:   "com.example.Helper#compute",
		File:            "Helper.java",
		ContainingClass: "com.example.Helper",
		Annotations:     []string{"Deprecated"},
	}

	assert.Equal(t, CategoryNone, c.Classify(sym, plainFile()))
}

func TestClassify_Import(t *testing.T) {
	c := New(nil)

	imp := model.Symbol{Kind: model.KindImport, Name: "IOException", QualifiedName: "java.io.IOException", File: "A.java"}
	assert.Equal(t, CategoryUnusedImport, c.Classify(imp, model.FileSymbols{}))

	wildcard := model.Symbol{Kind: model.KindImport, QualifiedName: "java.util.*", File: "A.java", Wildcard: true}
	assert.Equal(t, CategoryNone, c.Classify(wildcard, model.FileSymbols{}))
}

func TestIsAlwaysRedundantImport(t *testing.T) {
	assert.True(t, IsAlwaysRedundantImport(model.Symbol{Kind: model.KindImport, QualifiedName: "java.lang.String"}))
	assert.False(t, IsAlwaysRedundantImport(model.Symbol{Kind: model.KindImport, QualifiedName: "java.util.List"}))
	assert.False(t, IsAlwaysRedundantImport(model.Symbol{Kind: model.KindField, QualifiedName: "java.lang.String"}))
}

func TestClassify_Field_FinalPrivatePolicy(t *testing.T) {
	c := New(nil) // default policy: final-private

	tests := []struct {
		name string
		sym  model.Symbol
		want Category
	}{
		{
			"final private",
			model.Symbol{Kind: model.KindField, Modifiers: model.Modifiers{Final: true, Private: true}},
			CategoryUnusedField,
		},
		{
			"private non-final",
			model.Symbol{Kind: model.KindField, Modifiers: model.Modifiers{Private: true}},
			CategoryNone,
		},
		{
			"public",
			model.Symbol{Kind: model.KindField, Modifiers: model.Modifiers{Public: true, Final: true}},
			CategoryNone,
		},
		{
			"static",
			model.Symbol{Kind: model.KindField, Modifiers: model.Modifiers{Static: true, Final: true, Private: true}},
			CategoryNone,
		},
		{
			"annotated",
			model.Symbol{
				Kind:        model.KindField,
				Modifiers:   model.Modifiers{Final: true, Private: true},
				Annotations: []string{"Deprecated"},
			},
			CategoryNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.sym, model.FileSymbols{}))
		})
	}
}

func TestClassify_Field_NonPublicPolicy(t *testing.T) {
	cfg := config.NewManager().DefaultConfig()
	cfg.FieldPolicy = config.FieldPolicyNonPublic
	c := New(cfg)

	// Non-final private field is a candidate under the looser policy
	sym := model.Symbol{Kind: model.KindField, Modifiers: model.Modifiers{Private: true}}
	assert.Equal(t, CategoryUnusedField, c.Classify(sym, model.FileSymbols{}))

	// Static still excluded
	static := model.Symbol{Kind: model.KindField, Modifiers: model.Modifiers{Static: true}}
	assert.Equal(t, CategoryNone, c.Classify(static, model.FileSymbols{}))
}

func TestClassify_Class_EmptyOnlyPolicy(t *testing.T) {
	c := New(nil) // default policy: empty-only

	empty := model.Symbol{Kind: model.KindClass, Name: "Leftover"}
	assert.Equal(t, CategoryUnusedClass, c.Classify(empty, model.FileSymbols{}))

	withField := model.Symbol{Kind: model.KindClass, Name: "Leftover", FieldCount: 1}
	assert.Equal(t, CategoryNone, c.Classify(withField, model.FileSymbols{}))

	withNested := model.Symbol{Kind: model.KindClass, Name: "Leftover", NestedClassCount: 1}
	assert.Equal(t, CategoryNone, c.Classify(withNested, model.FileSymbols{}))
}

func TestClassify_Class_NoMethodsPolicy(t *testing.T) {
	cfg := config.NewManager().DefaultConfig()
	cfg.ClassPolicy = config.ClassPolicyNoMethods
	c := New(cfg)

	withField := model.Symbol{Kind: model.KindClass, Name: "Leftover", FieldCount: 2}
	assert.Equal(t, CategoryUnusedClass, c.Classify(withField, model.FileSymbols{}))

	withMethod := model.Symbol{Kind: model.KindClass, Name: "Leftover", MethodCount: 1}
	assert.Equal(t, CategoryNone, c.Classify(withMethod, model.FileSymbols{}))
}

func TestClassify_Class_ControllerAlwaysPreserved(t *testing.T) {
	c := New(nil)

	byName := model.Symbol{Kind: model.KindClass, Name: "LegacyController"}
	assert.Equal(t, CategoryNone, c.Classify(byName, model.FileSymbols{}))

	byAnnotation := model.Symbol{Kind: model.KindClass, Name: "Legacy", Annotations: []string{"Controller"}}
	assert.Equal(t, CategoryNone, c.Classify(byAnnotation, model.FileSymbols{}))

	byQualifiedAnnotation := model.Symbol{
		Kind:        model.KindClass,
		Name:        "Legacy",
		Annotations: []string{"org.springframework.stereotype.Controller"},
	}
	assert.Equal(t, CategoryNone, c.Classify(byQualifiedAnnotation, model.FileSymbols{}))
}
