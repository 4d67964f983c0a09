//go:build unit

package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymbol_ID_StableAcrossCopies(t *testing.T) {
	sym := Symbol{
		Kind:          KindMethod,
		Name:          "oldEndpoint",
		QualifiedName: "com.example.UserController#oldEndpoint",
		File:          "src/UserController.java",
	}

	other := sym
	other.Annotations = []string{"Deprecated"}

	// Identity depends on kind, file, and qualified name only
	assert.Equal(t, sym.ID(), other.ID())
	assert.Equal(t, ID("method|src/UserController.java|com.example.UserController#oldEndpoint"), sym.ID())
}

func TestSymbol_ID_DistinguishesKinds(t *testing.T) {
	method := Symbol{Kind: KindMethod, QualifiedName: "com.example.A#x", File: "A.java"}
	field := Symbol{Kind: KindField, QualifiedName: "com.example.A#x", File: "A.java"}

	assert.NotEqual(t, method.ID(), field.ID())
}

func TestSimpleName(t *testing.T) {
	assert.Equal(t, "Deprecated", SimpleName("java.lang.Deprecated"))
	assert.Equal(t, "Deprecated", SimpleName("Deprecated"))
	assert.Equal(t, "RestController", SimpleName("org.springframework.web.bind.annotation.RestController"))
}

func TestSymbol_HasAnnotation(t *testing.T) {
	tests := []struct {
		name        string
		annotations []string
		query       string
		want        bool
	}{
		{"exact simple", []string{"Deprecated"}, "Deprecated", true},
		{"exact qualified", []string{"java.lang.Deprecated"}, "java.lang.Deprecated", true},
		{"simple vs qualified", []string{"Deprecated"}, "java.lang.Deprecated", true},
		{"qualified vs simple", []string{"org.springframework.stereotype.Controller"}, "Controller", true},
		{"no match", []string{"Autowired"}, "Deprecated", false},
		{"none", nil, "Deprecated", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sym := Symbol{Annotations: tt.annotations}
			assert.Equal(t, tt.want, sym.HasAnnotation(tt.query))
		})
	}
}

func TestSymbol_HasAnyAnnotation(t *testing.T) {
	sym := Symbol{Annotations: []string{"org.springframework.web.bind.annotation.RestController"}}

	assert.True(t, sym.HasAnyAnnotation([]string{"Controller", "RestController"}))
	assert.False(t, sym.HasAnyAnnotation([]string{"Service", "Repository"}))
}
