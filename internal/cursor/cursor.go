// Package cursor tracks the selected position in a list whose length may
// change between operations.
package cursor

import "fmt"

// Cursor is an optional index. The zero value selects nothing.
type Cursor struct {
	index int
	valid bool
}

// At returns a cursor selecting index.
func At(index int) Cursor {
	return Cursor{index: index, valid: true}
}

// Selected returns the selected index and whether there is one.
func (c Cursor) Selected() (int, bool) {
	return c.index, c.valid
}

// InRange reports whether the cursor selects a valid index of a list of n
// elements.
func (c Cursor) InRange(n int) bool {
	return c.valid && c.index >= 0 && c.index < n
}

// SelectFirst selects index 0 without looking at the list length, so on an
// empty list it is out of range until a record is added.
func (c *Cursor) SelectFirst() {
	*c = At(0)
}

// Clear drops the selection.
func (c *Cursor) Clear() {
	*c = Cursor{}
}

// MoveDown advances the selection over a list of n elements, wrapping from
// the last element to the first. n == 0 leaves the cursor untouched.
func (c *Cursor) MoveDown(n int) {
	if n <= 0 {
		return
	}
	if !c.valid || c.index < 0 || c.index >= n-1 {
		*c = At(0)
		return
	}
	*c = At(c.index + 1)
}

// MoveUp moves the selection back over a list of n elements, wrapping from
// the first element to the last. n == 0 leaves the cursor untouched.
func (c *Cursor) MoveUp(n int) {
	if n <= 0 {
		return
	}
	if !c.valid || c.index <= 0 || c.index >= n {
		*c = At(n - 1)
		return
	}
	*c = At(c.index - 1)
}

// RemoveSelectedAdjust updates the cursor after the selected element was
// removed; remaining is the list length after the removal.
func (c *Cursor) RemoveSelectedAdjust(remaining int) {
	if !c.valid {
		return
	}
	switch {
	case c.index > 0:
		*c = At(c.index - 1)
	case remaining <= 0:
		c.Clear()
	default:
		*c = At(0)
	}
}

func (c Cursor) String() string {
	if !c.valid {
		return "None"
	}
	return fmt.Sprintf("Some(%d)", c.index)
}
