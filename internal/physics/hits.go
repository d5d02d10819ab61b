package physics

import "github.com/kamstrup/intmap"

// Blast says which side of a collision spawns the explosion.
type Blast int

const (
	// ObstacleExplodes means the obstacle owner spawns the explosion when it
	// drains the hit (shots).
	ObstacleExplodes Blast = iota
	// StrikerExploded means the striker already produced the explosion and
	// the obstacle owner only has to disappear (the ship).
	StrikerExploded
)

// Hit is one confirmed collision waiting to be drained by the obstacle owner.
type Hit struct {
	Obstacle *Obstacle
	Blast    Blast
}

// HitSet is the set of obstacles hit during the current or previous tick.
// Entries are keyed by obstacle ID, so recording the same obstacle twice
// keeps the first record and the owner drains it exactly once.
type HitSet struct {
	hits *intmap.Map[uint64, Hit]
}

// NewHitSet creates an empty hit set.
func NewHitSet() *HitSet {
	return &HitSet{hits: intmap.New[uint64, Hit](16)}
}

// Record marks the obstacle as hit. It returns false if the obstacle was
// already recorded.
func (s *HitSet) Record(ob *Obstacle, blast Blast) bool {
	if _, ok := s.hits.Get(ob.ID); ok {
		return false
	}
	s.hits.Put(ob.ID, Hit{Obstacle: ob, Blast: blast})
	return true
}

// Has reports whether the obstacle has an undrained hit.
func (s *HitSet) Has(ob *Obstacle) bool {
	_, ok := s.hits.Get(ob.ID)
	return ok
}

// Take drains the hit for the obstacle, if any.
func (s *HitSet) Take(ob *Obstacle) (Hit, bool) {
	hit, ok := s.hits.Get(ob.ID)
	if ok {
		s.hits.Del(ob.ID)
	}
	return hit, ok
}

// Len returns the number of undrained hits.
func (s *HitSet) Len() int {
	return s.hits.Len()
}
