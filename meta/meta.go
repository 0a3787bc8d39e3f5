// meta/meta.go
package meta

// DEFAULT_SIZE defines the number of stones when none is given.
const DEFAULT_SIZE = 7

// DEFAULT_DEPTH defines the search depth; 0 searches to the end of the game.
const DEFAULT_DEPTH = 0

// MAX_TURNS bounds a self-play game.
const MAX_TURNS = 300
