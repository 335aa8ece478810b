package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder collects partial configs from each source in priority order.
// Merging is first-non-zero-wins, so a source appended earlier shadows the
// later ones.
type configBuilder struct {
	layers []*StructuredConfig
	err    error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{layers: make([]*StructuredConfig, 0, 3)}
}

func (b *configBuilder) withEnv() *configBuilder {
	layer := &StructuredConfig{}
	if err := parseEnv(layer); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.layers = append(b.layers, layer)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	b.layers = append(b.layers, ParseFlags())
	return b
}

// withJSON loads the optional JSON file. Its path can arrive from any source
// already collected, so this layer must be appended last.
func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, layer := range b.layers {
		if layer.JSONFilePath != "" {
			jsonPath = layer.JSONFilePath
		}
	}
	if jsonPath == "" {
		return b
	}

	layer, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.layers = append(b.layers, layer)
	return b
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error building config: %w", b.err)
	}

	merged := new(StructuredConfig)
	for _, layer := range b.layers {
		if err := mergo.Merge(merged, layer); err != nil {
			return nil, fmt.Errorf("error merging config layers: %w", err)
		}
	}

	return merged, merged.validate()
}
