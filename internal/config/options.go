package config

import (
	"fmt"

	"github.com/rs/zerolog"

	"aas-refmap/internal/index"
	"aas-refmap/internal/match"
	"aas-refmap/internal/reference"
	"aas-refmap/internal/tree"
	"aas-refmap/internal/treemap"
)

// ContainmentKinds parses Mapper.ContainmentKinds.
func (c *Config) ContainmentKinds() ([]reference.KeyKind, error) {
	kinds := make([]reference.KeyKind, 0, len(c.Mapper.ContainmentKinds))

	for _, name := range c.Mapper.ContainmentKinds {
		k, err := reference.ParseKind(name)
		if err != nil {
			return nil, err
		}

		kinds = append(kinds, k)
	}

	return kinds, nil
}

// HintsFunc returns the per-kind style hints lookup, or nil without hints.
func (c *Config) HintsFunc() (func(tree.Node) treemap.Hints, error) {
	if len(c.Mapper.Hints) == 0 {
		return nil, nil
	}

	byKind := make(map[reference.KeyKind]treemap.Hints, len(c.Mapper.Hints))

	for name, hints := range c.Mapper.Hints {
		k, err := reference.ParseKind(name)
		if err != nil {
			return nil, err
		}

		byKind[k] = hints
	}

	return func(n tree.Node) treemap.Hints {
		return byKind[n.Kind()]
	}, nil
}

// MapperOptions builds mapper options from the configuration. The caller
// supplies the index and the artifact factory.
func MapperOptions[A any](c *Config, idx *index.Index, factory treemap.ArtifactFactory[A], logger zerolog.Logger) (treemap.Options[A], error) {
	opts := treemap.Options[A]{
		Index:      idx,
		Factory:    factory,
		MaxDepth:   c.Mapper.MaxDepth,
		WrapColumn: c.Mapper.WrapColumn,
		ShowValues: c.Mapper.ShowValues,
		Logger:     &logger,
	}

	include, err := c.IncludePredicate(logger)
	if err != nil {
		return opts, fmt.Errorf("mapper.include: %w", err)
	}

	opts.Include = include

	if list := match.ParseSuppressionList(c.Mapper.Suppress); !list.IsEmpty() {
		opts.Suppress = list.Matches
	}

	if opts.ContainmentKinds, err = c.ContainmentKinds(); err != nil {
		return opts, fmt.Errorf("mapper.containment_kinds: %w", err)
	}

	if opts.Hints, err = c.HintsFunc(); err != nil {
		return opts, fmt.Errorf("mapper.hints: %w", err)
	}

	return opts, nil
}
