// Package builder assembles pizzas from catalog entries: a staged
// PizzaBuilder that resolves names and validates before producing a pizza,
// and an Assembler offering the named construction strategies on top of it.
package builder

import (
	"fmt"

	"pizzeria/internal/catalog"
	"pizzeria/internal/models"
)

// PizzaBuilder is a mutable, single-use staging object for building exactly
// one pizza. Chained calls record the first name-resolution failure and
// Build reports it, so call sites keep the fluent shape without dropping
// errors. The doubling flag is deferred: it is applied to every accumulated
// piece at Build time, whatever the call order was.
type PizzaBuilder struct {
	name    string
	catalog *catalog.Catalog
	base    *models.Base
	pieces  []*models.Piece
	double  bool
	err     error
}

// New creates a builder for a pizza with the given name, resolving component
// names against the catalog.
func New(name string, cat *catalog.Catalog) *PizzaBuilder {
	return &PizzaBuilder{name: name, catalog: cat}
}

// WithBase resolves the named base from the catalog.
func (b *PizzaBuilder) WithBase(name string) *PizzaBuilder {
	if b.err != nil {
		return b
	}
	base, err := b.catalog.Base(name)
	if err != nil {
		b.err = err
		return b
	}
	b.base = &base
	return b
}

// AddPieces resolves the side and each ingredient by name and appends a new
// piece.
func (b *PizzaBuilder) AddPieces(sideName string, ingredientNames ...string) *PizzaBuilder {
	if b.err != nil {
		return b
	}
	side, err := b.catalog.Side(sideName)
	if err != nil {
		b.err = err
		return b
	}
	ingredients, err := b.catalog.Ingredients(ingredientNames...)
	if err != nil {
		b.err = err
		return b
	}
	b.pieces = append(b.pieces, models.NewPiece(side, ingredients))
	return b
}

// AddPieceFromTemplate appends a deep copy of an existing piece, so the new
// pizza never aliases the source's mutable ingredient list.
func (b *PizzaBuilder) AddPieceFromTemplate(piece *models.Piece) *PizzaBuilder {
	if b.err != nil {
		return b
	}
	b.pieces = append(b.pieces, piece.Clone())
	return b
}

// WithDoubleIngredients records whether every piece gets its ingredients
// doubled at Build time.
func (b *PizzaBuilder) WithDoubleIngredients(double bool) *PizzaBuilder {
	if b.err != nil {
		return b
	}
	b.double = double
	return b
}

// Build finalizes the pizza. A recorded resolution failure is returned
// first; a builder with no base or no pieces fails with
// ErrInvalidComposition; the side-membership check of models.NewPizza
// propagates unchanged.
func (b *PizzaBuilder) Build() (*models.Pizza, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.base == nil || len(b.pieces) == 0 {
		return nil, fmt.Errorf("pizza %q needs a base and at least one piece: %w", b.name, models.ErrInvalidComposition)
	}

	if b.double {
		for _, piece := range b.pieces {
			piece.DoubleIngredients()
		}
	}
	return models.NewPizza(b.name, *b.base, b.pieces)
}
