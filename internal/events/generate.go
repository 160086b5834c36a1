package events

import "time"

// GenerateStart is emitted once inputs are discovered, before any parsing.
type GenerateStart struct {
	ConfigHash uint64
	Schemas    []string
	Documents  []string
}

// GenerateFinish is emitted when a run ends, successfully or not.
type GenerateFinish struct {
	Types      int
	Operations int
	Err        error
	Duration   time.Duration
}

// SelectionComposed is emitted for every selection set whose type was
// composed from fragments.
type SelectionComposed struct {
	Definition string
	Path       string
	Type       string
}
