package session

import (
	"github.com/kamstrup/intmap"
	"github.com/plus3/blockfall/shape"
)

// maxClear is the most rows one lock can complete: a piece spans at most
// four rows.
const maxClear = 4

// Stats summarizes a game in progress.
type Stats struct {
	Spawned     map[shape.Kind]int // pieces spawned per template
	Locks       int
	RowsCleared int
	Clears      map[int]int // clear events keyed by rows cleared at once
}

type counters struct {
	spawned     *intmap.Map[shape.Kind, int]
	clears      *intmap.Map[int, int]
	locks       int
	rowsCleared int
}

func newCounters() *counters {
	return &counters{
		spawned: intmap.New[shape.Kind, int](8),
		clears:  intmap.New[int, int](maxClear),
	}
}

func (c *counters) reset() {
	c.spawned.Clear()
	c.clears.Clear()
	c.locks = 0
	c.rowsCleared = 0
}

func (c *counters) spawn(k shape.Kind) {
	n, _ := c.spawned.Get(k)
	c.spawned.Put(k, n+1)
}

func (c *counters) lock(rows int) {
	c.locks++
	if rows == 0 {
		return
	}
	c.rowsCleared += rows
	n, _ := c.clears.Get(rows)
	c.clears.Put(rows, n+1)
}

func (c *counters) snapshot(templates []shape.Template) Stats {
	st := Stats{
		Spawned:     make(map[shape.Kind]int, len(templates)),
		Locks:       c.locks,
		RowsCleared: c.rowsCleared,
		Clears:      make(map[int]int, maxClear),
	}
	for _, tmpl := range templates {
		if n, ok := c.spawned.Get(tmpl.Kind); ok {
			st.Spawned[tmpl.Kind] = n
		}
	}
	for rows := 1; rows <= maxClear; rows++ {
		if n, ok := c.clears.Get(rows); ok {
			st.Clears[rows] = n
		}
	}
	return st
}
