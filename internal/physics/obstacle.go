package physics

// Obstacle is the bounding box of one live hazard.
type Obstacle struct {
	ID uint64
	Rect
	Owner any // Task that owns the obstacle
}

// NewObstacle creates an unregistered obstacle.
func NewObstacle(row, col, rows, cols float64, owner any) *Obstacle {
	return &Obstacle{
		Rect:  Rect{Row: row, Col: col, Rows: rows, Cols: cols},
		Owner: owner,
	}
}

// Registry holds the obstacles that are live this tick, in registration order.
// It is not safe for concurrent use; tasks touch it only on their own turn.
type Registry struct {
	obstacles []*Obstacle
	nextID    uint64
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Add registers an obstacle, assigning it an ID if it has none.
func (r *Registry) Add(ob *Obstacle) {
	if ob.ID == 0 {
		r.nextID++
		ob.ID = r.nextID
	}
	r.obstacles = append(r.obstacles, ob)
}

// Remove unregisters an obstacle. Removing an absent obstacle is a no-op.
func (r *Registry) Remove(ob *Obstacle) {
	for i, o := range r.obstacles {
		if o == ob {
			copy(r.obstacles[i:], r.obstacles[i+1:])
			r.obstacles[len(r.obstacles)-1] = nil
			r.obstacles = r.obstacles[:len(r.obstacles)-1]
			return
		}
	}
}

// Contains reports whether the obstacle is registered.
func (r *Registry) Contains(ob *Obstacle) bool {
	for _, o := range r.obstacles {
		if o == ob {
			return true
		}
	}
	return false
}

// Len returns the number of registered obstacles.
func (r *Registry) Len() int {
	return len(r.obstacles)
}

// All returns a copy of the registered obstacles in registration order.
func (r *Registry) All() []*Obstacle {
	out := make([]*Obstacle, len(r.obstacles))
	copy(out, r.obstacles)
	return out
}

// FindColliding returns the first obstacle, in registration order, that
// overlaps the query box, or nil. Sizes below one cell are treated as one.
func (r *Registry) FindColliding(row, col, rows, cols float64) *Obstacle {
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	query := Rect{Row: row, Col: col, Rows: rows, Cols: cols}
	for _, ob := range r.obstacles {
		if ob.Overlaps(query) {
			return ob
		}
	}
	return nil
}
