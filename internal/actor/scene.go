package actor

import "slices"

// Scene holds the live actors of a level in insertion order.
type Scene struct {
	actors []*Actor
	nextID ID
}

// NewScene creates an empty scene.
func NewScene() *Scene {
	return &Scene{}
}

// Add appends an actor and assigns it an ID if it has none.
func (s *Scene) Add(a *Actor) {
	if a.ID == 0 {
		s.nextID++
		a.ID = s.nextID
	}
	s.actors = append(s.actors, a)
}

// Remove deletes an actor. It reports whether the actor was present,
// so a second removal of the same actor returns false.
func (s *Scene) Remove(a *Actor) bool {
	i := slices.Index(s.actors, a)
	if i < 0 {
		return false
	}
	s.actors = slices.Delete(s.actors, i, i+1)
	return true
}

// Contains reports whether the actor is in the scene.
func (s *Scene) Contains(a *Actor) bool {
	return slices.Contains(s.actors, a)
}

// Actors returns a snapshot of the actors in insertion order.
// Adding or removing actors does not affect a returned snapshot.
func (s *Scene) Actors() []*Actor {
	return slices.Clone(s.actors)
}

// Count returns the number of actors of the given kind.
func (s *Scene) Count(kind Kind) int {
	n := 0
	for _, a := range s.actors {
		if a.Kind == kind {
			n++
		}
	}
	return n
}

// Len returns the number of actors.
func (s *Scene) Len() int {
	return len(s.actors)
}

// Clear removes every actor. IDs keep increasing across clears.
func (s *Scene) Clear() {
	clear(s.actors)
	s.actors = s.actors[:0]
}
