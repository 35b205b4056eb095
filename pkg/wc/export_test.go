package wc

// Bump lets the tests reach the table cell counter.
func Bump(row []float32, col int) bool { return bump(row, col) }

// Capped marks chain i as having hit MaxExact.
func (c *Counts) Capped(i int) { c.capped[i] = true }
