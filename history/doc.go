// Package history keeps a journal of process transitions in a bolt
// database.
//
// Transitions are grouped into episodes. An episode begins when a watched
// process starts while none were running and ends when the last one stops.
package history
