package configloader

import "github.com/yaklabco/mdnote/pkg/config"

// Overrides holds values set by CLI flags. Nil fields leave the configuration unchanged.
type Overrides struct {
	Flavor      *string
	LogLevel    *string
	DataDir     *string
	Backend     *string
	StoragePath *string
	View        *string
	FontSize    *int
	PersistUndo *bool
	Color       *string
	Ephemeral   bool
}

// merge applies overrides on top of base and returns the result. base is not modified.
func merge(base *config.Config, o *Overrides) *config.Config {
	if base == nil {
		base = config.NewConfig()
	}
	result := base.Clone()
	if o == nil {
		return result
	}

	setIf(&result.LogLevel, o.LogLevel)
	setIf(&result.DataDir, o.DataDir)
	setIf(&result.Storage.Backend, o.Backend)
	setIf(&result.Storage.Path, o.StoragePath)
	setIf(&result.Editor.View, o.View)
	setIf(&result.Editor.FontSize, o.FontSize)
	setIf(&result.Editor.PersistUndo, o.PersistUndo)

	if o.Flavor != nil {
		result.Flavor = config.Flavor(*o.Flavor)
	}
	if o.Color != nil {
		result.Color = config.ColorMode(*o.Color)
	}
	if o.Ephemeral {
		result.Ephemeral = true
	}

	return result
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
