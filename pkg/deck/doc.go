// Package deck defines the presentation model and turns its slides into
// positioned placements.
//
// A Deck is plain declarative content: a title, a theme identifier, and a
// list of slides. Normalize cleans the content (grammar, caps, duplicate
// detection) and Composer lays each slide out against a theme and grid,
// emitting validation findings alongside the placements. Nothing in this
// package draws; renderers consume the Placement list.
package deck
