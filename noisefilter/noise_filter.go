package noisefilter

import "github.com/CodMac/go-code-explorer/model"

// NoiseFilter recognizes names of a language's runtime and primitive types
// that never become analysis classes.
type NoiseFilter interface {
	IsNoise(qualifiedName string) bool
}

var noiseFilterMap = make(map[model.Language]NoiseFilter)

func RegisterNoiseFilter(lang model.Language, noiseFilter NoiseFilter) {
	noiseFilterMap[lang] = noiseFilter
}

// GetNoiseFilter returns the filter of lang, or a DefaultNoiseFilter when
// none is registered.
func GetNoiseFilter(lang model.Language) NoiseFilter {
	noiseFilter, ok := noiseFilterMap[lang]
	if !ok {
		return &DefaultNoiseFilter{}
	}

	return noiseFilter
}

// DefaultNoiseFilter treats nothing as noise.
type DefaultNoiseFilter struct{}

func (d *DefaultNoiseFilter) IsNoise(qn string) bool { return false }
