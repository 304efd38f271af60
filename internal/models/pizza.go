package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Pizza is a base plus an ordered sequence of pieces. Every piece's side must
// list the pizza's name among its allowed pizzas; a composition that violates
// this is rejected and the pizza is never created.
type Pizza struct {
	name   string
	base   Base
	pieces []*Piece
	price  decimal.Decimal
}

// NewPizza validates the side-membership invariant over all pieces and, on
// success, returns the pizza with its price computed. At least one piece is
// required; a zero-piece pizza would make piece replication impossible.
func NewPizza(name string, base Base, pieces []*Piece) (*Pizza, error) {
	if len(pieces) == 0 {
		return nil, fmt.Errorf("pizza %q needs at least one piece: %w", name, ErrInvalidComposition)
	}
	for _, piece := range pieces {
		if !piece.Side().AllowsPizza(name) {
			return nil, fmt.Errorf("side %q on pizza %q: %w", piece.Side().Name, name, ErrInvariantViolation)
		}
	}

	pz := &Pizza{
		name:   name,
		base:   base,
		pieces: append([]*Piece(nil), pieces...),
	}
	pz.recompute()
	return pz, nil
}

func (pz *Pizza) recompute() {
	total := pz.base.Price
	for _, piece := range pz.pieces {
		total = total.Add(piece.Price())
	}
	pz.price = total
}

// Name returns the pizza's name.
func (pz *Pizza) Name() string {
	return pz.name
}

// Base returns the pizza's base.
func (pz *Pizza) Base() Base {
	return pz.base
}

// Pieces returns the pieces in order. The slice is a copy; the pieces are
// the live ones.
func (pz *Pizza) Pieces() []*Piece {
	return append([]*Piece(nil), pz.pieces...)
}

// PieceCount returns the number of pieces.
func (pz *Pizza) PieceCount() int {
	return len(pz.pieces)
}

// Price returns the derived price: base price plus the sum of all piece
// prices.
func (pz *Pizza) Price() decimal.Decimal {
	return pz.price
}

// SetBase replaces the base and recomputes the price.
func (pz *Pizza) SetBase(base Base) {
	pz.base = base
	pz.recompute()
}

func (pz *Pizza) checkIndex(position int) error {
	if position < 0 || position >= len(pz.pieces) {
		return fmt.Errorf("piece position %d out of range [0,%d): %w", position, len(pz.pieces), ErrInvalidArgument)
	}
	return nil
}

// SetPieceIngredients replaces the ingredient list of the piece at the given
// position and recomputes the price.
func (pz *Pizza) SetPieceIngredients(position int, ingredients []Ingredient) error {
	if err := pz.checkIndex(position); err != nil {
		return err
	}
	pz.pieces[position].SetIngredients(ingredients)
	pz.recompute()
	return nil
}

// SetPieceSide replaces the side of the piece at the given position. The
// side-membership invariant is re-checked first; on violation the pizza is
// left untouched.
func (pz *Pizza) SetPieceSide(position int, side SideVariant) error {
	if err := pz.checkIndex(position); err != nil {
		return err
	}
	if !side.AllowsPizza(pz.name) {
		return fmt.Errorf("side %q on pizza %q: %w", side.Name, pz.name, ErrInvariantViolation)
	}
	pz.pieces[position].SetSide(side)
	pz.recompute()
	return nil
}

// ResizePieces grows or shrinks the piece sequence to count. Growth fills the
// new slots with copies of the last existing piece; shrinking truncates from
// the end.
func (pz *Pizza) ResizePieces(count int) error {
	if count <= 0 {
		return fmt.Errorf("piece count %d must be positive: %w", count, ErrInvalidArgument)
	}

	if count <= len(pz.pieces) {
		pz.pieces = pz.pieces[:count]
	} else {
		last := pz.pieces[len(pz.pieces)-1]
		for len(pz.pieces) < count {
			pz.pieces = append(pz.pieces, last.Clone())
		}
	}
	pz.recompute()
	return nil
}

// Clone returns a deep copy of the pizza. Pieces are cloned, so mutating the
// original afterwards never changes the copy's price.
func (pz *Pizza) Clone() *Pizza {
	pieces := make([]*Piece, len(pz.pieces))
	for i, piece := range pz.pieces {
		pieces[i] = piece.Clone()
	}
	return &Pizza{
		name:   pz.name,
		base:   pz.base,
		pieces: pieces,
		price:  pz.price,
	}
}
