package models

import "github.com/shopspring/decimal"

// Piece is one side variant plus an ordered list of ingredients. Its price is
// derived and recomputed eagerly on every mutation, so reads never pay for a
// sum and the stored price can never go stale.
type Piece struct {
	side        SideVariant
	ingredients []Ingredient
	price       decimal.Decimal
}

// NewPiece creates a piece from a side and its ingredients. Any combination
// is structurally valid at this level; whether the side fits a pizza is
// checked when the pizza is assembled.
func NewPiece(side SideVariant, ingredients []Ingredient) *Piece {
	p := &Piece{
		side:        side,
		ingredients: append([]Ingredient(nil), ingredients...),
	}
	p.recompute()
	return p
}

func (p *Piece) recompute() {
	total := p.side.Price
	for _, ing := range p.ingredients {
		total = total.Add(ing.Price)
	}
	p.price = total
}

// Side returns the piece's side variant.
func (p *Piece) Side() SideVariant {
	return p.side
}

// Ingredients returns a copy of the ingredient list in order.
func (p *Piece) Ingredients() []Ingredient {
	return append([]Ingredient(nil), p.ingredients...)
}

// Price returns the derived price: side price plus the sum of all
// ingredient prices.
func (p *Piece) Price() decimal.Decimal {
	return p.price
}

// SetIngredients replaces the ingredient list and recomputes the price.
func (p *Piece) SetIngredients(ingredients []Ingredient) {
	p.ingredients = append([]Ingredient(nil), ingredients...)
	p.recompute()
}

// SetSide replaces the side variant and recomputes the price.
func (p *Piece) SetSide(side SideVariant) {
	p.side = side
	p.recompute()
}

// DoubleIngredients appends a copy of the current ingredient list to itself,
// doubling the count. Each call doubles again: two calls on [A B] yield
// [A B A B A B A B].
func (p *Piece) DoubleIngredients() {
	p.ingredients = append(p.ingredients, p.ingredients...)
	p.recompute()
}

// Clone returns a deep copy of the piece. The side is copied by value; the
// ingredient list is copied so the clone never aliases the source's mutable
// state.
func (p *Piece) Clone() *Piece {
	return &Piece{
		side:        p.side,
		ingredients: append([]Ingredient(nil), p.ingredients...),
		price:       p.price,
	}
}
