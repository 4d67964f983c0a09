//go:build unit

package dependencies

import (
	"testing"

	"github.com/WeyeTech/DeprecatedControllerRemover/pkg/fs"
	"github.com/WeyeTech/DeprecatedControllerRemover/pkg/javasource"
	"github.com/WeyeTech/DeprecatedControllerRemover/pkg/marker"
	"github.com/stretchr/testify/assert"
)

func TestNew_SetsDefaults(t *testing.T) {
	deps := New()

	assert.NotNil(t, deps.FS)
	assert.NotNil(t, deps.Logger)
	assert.NotNil(t, deps.Prompt)
	assert.NotNil(t, deps.Config)
	assert.Nil(t, deps.CodeModel)
	assert.Nil(t, deps.Refs)
	assert.Nil(t, deps.Marker)
}

func TestValidate_ReportsFirstMissingDependency(t *testing.T) {
	deps := New()
	assert.ErrorIs(t, deps.Validate(), ErrCodeModelMissing)

	deps.FS = nil
	assert.ErrorIs(t, deps.Validate(), ErrFSMissing)
}

func TestWithChaining(t *testing.T) {
	filesystem := fs.NewFS()
	provider := javasource.NewProvider(filesystem, ".", nil)

	deps := New().
		WithFS(filesystem).
		WithCodeModel(provider).
		WithRefs(provider).
		WithMarker(marker.NewCoordinator(filesystem, provider, nil))

	assert.NoError(t, deps.Validate())
	assert.Same(t, provider, deps.CodeModel)
	assert.Same(t, provider, deps.Refs)
}
