package model

import "fmt"

// Entry is one piece together with its square.
type Entry struct {
	Piece  Piece
	Square Square
}

// Registry associates every placed piece with a square. It is backed by a
// rank-indexed array, which gives deterministic iteration without relying on
// insertion order. Distinct pieces may share a square as long as they are of
// different categories.
type Registry struct {
	present [NumPieces]bool
	squares [NumPieces]Square
}

func NewRegistry() *Registry {
	return &Registry{}
}

func (r *Registry) Get(p Piece) (Square, bool) {
	rank := p.Rank()
	return r.squares[rank], r.present[rank]
}

// Set moves an already placed piece. The piece set is closed and fully
// populated at construction, so setting an absent piece is a programming
// error.
func (r *Registry) Set(p Piece, sq Square) {
	rank := p.Rank()
	if !r.present[rank] {
		panic(fmt.Sprintf("registry: set of absent piece %s", p))
	}
	r.squares[rank] = sq
}

// Put places a piece, present or not. Used while building a registry.
func (r *Registry) Put(p Piece, sq Square) {
	rank := p.Rank()
	r.present[rank] = true
	r.squares[rank] = sq
}

func (r *Registry) Len() int {
	n := 0
	for _, ok := range r.present {
		if ok {
			n++
		}
	}
	return n
}

// Pairs returns all entries in rank order.
func (r *Registry) Pairs() []Entry {
	entries := make([]Entry, 0, NumPieces)
	for rank := 0; rank < NumPieces; rank++ {
		if r.present[rank] {
			entries = append(entries, Entry{Piece: PieceByRank(rank), Square: r.squares[rank]})
		}
	}
	return entries
}

// Union merges two registries, b's entries winning on collision. The decoder
// uses it to combine the target and robot sub-maps, which are disjoint by
// construction.
func Union(a, b *Registry) *Registry {
	u := NewRegistry()
	for rank := 0; rank < NumPieces; rank++ {
		if a.present[rank] {
			u.present[rank] = true
			u.squares[rank] = a.squares[rank]
		}
		if b.present[rank] {
			u.present[rank] = true
			u.squares[rank] = b.squares[rank]
		}
	}
	return u
}

// Clone returns a copy, used to keep the previous session state around while
// an import is attempted.
func (r *Registry) Clone() *Registry {
	c := *r
	return &c
}

// RobotAt reports whether any robot occupies the square.
func (r *Registry) RobotAt(sq Square) bool {
	for _, c := range Colors {
		if pos, ok := r.Get(RobotPiece(c)); ok && pos == sq {
			return true
		}
	}
	return false
}
