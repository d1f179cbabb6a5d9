// Package types defines the records exchanged with the natal-chart engine:
// stems, branches and pillars, star archetypes and their five-virtue
// positions, inauspicious-period groups, compatibility verdicts, the Engine
// and ReadingStore interfaces, configuration, and the standard errors.
//
// Every record here is immutable once the engine returns it. Callers render
// them; they never re-derive intermediate indices.
package types
