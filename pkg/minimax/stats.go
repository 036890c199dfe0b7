package minimax

import "time"

// Counters gathered during a single Solve call. Nodes counts every state the
// solver entered (the root included), Terminals the subset that were
// evaluated with the utility function, Cutoffs the abandoned sibling loops.
type SearchStats struct {
	Nodes     int
	Terminals int
	Cutoffs   int
	Elapsed   time.Duration
}
