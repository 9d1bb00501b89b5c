package algorithm

import "fmt"

// InvariantError reports an index the cursor should never produce. Step
// functions panic with it; it signals a bug, not a recoverable condition.
type InvariantError struct {
	Op    string
	Index int
	Len   int
}

func (e InvariantError) Error() string {
	return fmt.Sprintf("algorithm: %s index %d out of range for length %d", e.Op, e.Index, e.Len)
}

func checkIndex(op string, i, n int) {
	if i < 0 || i >= n {
		panic(InvariantError{Op: op, Index: i, Len: n})
	}
}
