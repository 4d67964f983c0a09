// Package dependencies provides a centralized dependency container for the
// cleanup engine. It groups the shared ports together and offers a fluent API
// for configuration.
package dependencies

import (
	"errors"

	"github.com/WeyeTech/DeprecatedControllerRemover/pkg/config"
	"github.com/WeyeTech/DeprecatedControllerRemover/pkg/fs"
	"github.com/WeyeTech/DeprecatedControllerRemover/pkg/logger"
	"github.com/WeyeTech/DeprecatedControllerRemover/pkg/marker"
	"github.com/WeyeTech/DeprecatedControllerRemover/pkg/model"
	"github.com/WeyeTech/DeprecatedControllerRemover/pkg/prompt"
)

// Validation errors for missing dependencies.
var (
	ErrFSMissing        = errors.New("fs dependency is required but not set")
	ErrLoggerMissing    = errors.New("logger dependency is required but not set")
	ErrPromptMissing    = errors.New("prompt dependency is required but not set")
	ErrConfigMissing    = errors.New("config dependency is required but not set")
	ErrCodeModelMissing = errors.New("code model dependency is required but not set")
	ErrRefsMissing      = errors.New("reference index dependency is required but not set")
	ErrMarkerMissing    = errors.New("marker coordinator dependency is required but not set")
)

// Dependencies holds shared dependencies across the application.
type Dependencies struct {
	FS        fs.FS
	Logger    logger.Logger
	Prompt    prompt.Confirmer
	Config    *config.Config
	CodeModel model.CodeModel
	Refs      model.ReferenceIndex
	Marker    marker.Coordinator
}

// New creates a new Dependencies instance with sensible defaults.
func New() *Dependencies {
	return &Dependencies{
		FS:     fs.NewFS(),
		Logger: logger.NewNoopLogger(),
		Prompt: prompt.NewPrompt(),
		Config: config.NewManager().DefaultConfig(),
		// CodeModel, Refs and Marker need a source root and are set via
		// With* methods
	}
}

// WithFS sets the filesystem and returns the instance for chaining.
func (d *Dependencies) WithFS(filesystem fs.FS) *Dependencies {
	d.FS = filesystem
	return d
}

// WithLogger sets the logger and returns the instance for chaining.
func (d *Dependencies) WithLogger(log logger.Logger) *Dependencies {
	d.Logger = log
	return d
}

// WithPrompt sets the confirmer and returns the instance for chaining.
func (d *Dependencies) WithPrompt(confirmer prompt.Confirmer) *Dependencies {
	d.Prompt = confirmer
	return d
}

// WithConfig sets the configuration and returns the instance for chaining.
func (d *Dependencies) WithConfig(cfg *config.Config) *Dependencies {
	d.Config = cfg
	return d
}

// WithCodeModel sets the code model port and returns the instance for chaining.
func (d *Dependencies) WithCodeModel(cm model.CodeModel) *Dependencies {
	d.CodeModel = cm
	return d
}

// WithRefs sets the reference index port and returns the instance for chaining.
func (d *Dependencies) WithRefs(refs model.ReferenceIndex) *Dependencies {
	d.Refs = refs
	return d
}

// WithMarker sets the marker coordinator and returns the instance for chaining.
func (d *Dependencies) WithMarker(coordinator marker.Coordinator) *Dependencies {
	d.Marker = coordinator
	return d
}

// Validate checks that all required dependencies are set.
func (d *Dependencies) Validate() error {
	if d.FS == nil {
		return ErrFSMissing
	}
	if d.Logger == nil {
		return ErrLoggerMissing
	}
	if d.Prompt == nil {
		return ErrPromptMissing
	}
	if d.Config == nil {
		return ErrConfigMissing
	}
	if d.CodeModel == nil {
		return ErrCodeModelMissing
	}
	if d.Refs == nil {
		return ErrRefsMissing
	}
	if d.Marker == nil {
		return ErrMarkerMissing
	}
	return nil
}
