package core

// Size describes the bounding area particles live in, in simulation units.
type Size struct {
	W float64
	H float64
}

// Empty reports whether the area has no extent on either axis.
func (s Size) Empty() bool { return s.W <= 0 || s.H <= 0 }
