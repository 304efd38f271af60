// Package catalog holds the loaded, validated set of available components:
// ingredients, bases, side variants and pizza templates, each keyed by unique
// name. A catalog is built once at startup and read-mostly afterwards; the
// mutating operations are not internally synchronized.
package catalog

import (
	"fmt"

	"github.com/shopspring/decimal"

	"pizzeria/internal/models"
)

// ClassicBaseName is the base every catalog must carry; it anchors the base
// price ceiling.
const ClassicBaseName = "Classic"

// basePriceCeiling caps every base at 1.2 times the Classic base's price.
var basePriceCeiling = decimal.RequireFromString("1.2")

// Source supplies the raw component lists a catalog is built from, typically
// parsed from menu data files.
type Source interface {
	Load() ([]models.Ingredient, []models.Base, []models.SideVariant, error)
}

// Catalog is the in-memory component store. Lookups are exact-match and
// case-sensitive; duplicate insertions follow last-insertion-wins.
type Catalog struct {
	ingredients collection[models.Ingredient]
	bases       collection[models.Base]
	sides       collection[models.SideVariant]
	templates   collection[*models.Pizza]
}

// New builds a catalog from component lists and validates the base prices:
// a base named Classic must exist and no base may cost more than 1.2 times
// its price. On violation no catalog is returned at all; a failed load never
// leaves a partially populated catalog behind.
func New(ingredients []models.Ingredient, bases []models.Base, sides []models.SideVariant) (*Catalog, error) {
	c := &Catalog{
		ingredients: newCollection("ingredient", func(i models.Ingredient) string { return i.Name }),
		bases:       newCollection("base", func(b models.Base) string { return b.Name }),
		sides:       newCollection("side", func(s models.SideVariant) string { return s.Name }),
		templates:   newCollection("pizza", func(p *models.Pizza) string { return p.Name() }),
	}

	for _, ing := range ingredients {
		c.ingredients.add(ing)
	}
	for _, base := range bases {
		c.bases.add(base)
	}
	for _, side := range sides {
		c.sides.add(side)
	}

	if err := c.validateBases(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadFrom loads component lists from a source and builds a validated
// catalog. Any source failure aborts the whole load.
func LoadFrom(src Source) (*Catalog, error) {
	ingredients, bases, sides, err := src.Load()
	if err != nil {
		return nil, err
	}
	return New(ingredients, bases, sides)
}

func (c *Catalog) validateBases() error {
	classic, err := c.bases.get(ClassicBaseName)
	if err != nil {
		return fmt.Errorf("base %q missing: %w", ClassicBaseName, models.ErrCatalogLoad)
	}

	limit := classic.Price.Mul(basePriceCeiling)
	for _, base := range c.bases.all() {
		if base.Price.GreaterThan(limit) {
			return fmt.Errorf("base %q price %s exceeds ceiling %s: %w",
				base.Name, base.Price, limit, models.ErrCatalogLoad)
		}
	}
	return nil
}

// Ingredients resolves ingredient names in request order.
func (c *Catalog) Ingredients(names ...string) ([]models.Ingredient, error) {
	return c.ingredients.lookup(names...)
}

// Ingredient resolves a single ingredient by name.
func (c *Catalog) Ingredient(name string) (models.Ingredient, error) {
	return c.ingredients.get(name)
}

// ListIngredients returns every ingredient in insertion order.
func (c *Catalog) ListIngredients() []models.Ingredient {
	return c.ingredients.all()
}

// Bases resolves base names in request order.
func (c *Catalog) Bases(names ...string) ([]models.Base, error) {
	return c.bases.lookup(names...)
}

// Base resolves a single base by name.
func (c *Catalog) Base(name string) (models.Base, error) {
	return c.bases.get(name)
}

// ListBases returns every base in insertion order.
func (c *Catalog) ListBases() []models.Base {
	return c.bases.all()
}

// Sides resolves side-variant names in request order.
func (c *Catalog) Sides(names ...string) ([]models.SideVariant, error) {
	return c.sides.lookup(names...)
}

// Side resolves a single side variant by name.
func (c *Catalog) Side(name string) (models.SideVariant, error) {
	return c.sides.get(name)
}

// ListSides returns every side variant in insertion order.
func (c *Catalog) ListSides() []models.SideVariant {
	return c.sides.all()
}

// Templates resolves pizza template names in request order.
func (c *Catalog) Templates(names ...string) ([]*models.Pizza, error) {
	return c.templates.lookup(names...)
}

// Template resolves a single pizza template by name.
func (c *Catalog) Template(name string) (*models.Pizza, error) {
	return c.templates.get(name)
}

// ListTemplates returns every pizza template in insertion order.
func (c *Catalog) ListTemplates() []*models.Pizza {
	return c.templates.all()
}

// AddIngredient inserts or replaces an ingredient.
func (c *Catalog) AddIngredient(ing models.Ingredient) {
	c.ingredients.add(ing)
}

// AddBase inserts or replaces a base.
func (c *Catalog) AddBase(base models.Base) {
	c.bases.add(base)
}

// AddSide inserts or replaces a side variant.
func (c *Catalog) AddSide(side models.SideVariant) {
	c.sides.add(side)
}

// AddTemplate inserts or replaces a pizza template.
func (c *Catalog) AddTemplate(pz *models.Pizza) {
	c.templates.add(pz)
}

// RemoveIngredient deletes an ingredient by name.
func (c *Catalog) RemoveIngredient(name string) error {
	return c.ingredients.remove(name)
}

// RemoveBase deletes a base by name.
func (c *Catalog) RemoveBase(name string) error {
	return c.bases.remove(name)
}

// RemoveSide deletes a side variant by name.
func (c *Catalog) RemoveSide(name string) error {
	return c.sides.remove(name)
}

// RemoveTemplate deletes a pizza template by name.
func (c *Catalog) RemoveTemplate(name string) error {
	return c.templates.remove(name)
}

// UpdateIngredient applies mutate to the named ingredient in place.
func (c *Catalog) UpdateIngredient(name string, mutate func(*models.Ingredient)) error {
	return c.ingredients.update(name, mutate)
}

// UpdateBase applies mutate to the named base in place.
func (c *Catalog) UpdateBase(name string, mutate func(*models.Base)) error {
	return c.bases.update(name, mutate)
}

// UpdateSide applies mutate to the named side variant in place.
func (c *Catalog) UpdateSide(name string, mutate func(*models.SideVariant)) error {
	return c.sides.update(name, mutate)
}
