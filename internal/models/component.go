package models

import "github.com/shopspring/decimal"

// Component is a named, priced catalog entry. Ingredients, bases and side
// variants all share this shape.
type Component struct {
	Name  string
	Price decimal.Decimal
}

// SameComponent reports whether two components refer to the same catalog
// entity. Identity is by name only; prices are ignored. This is the
// comparison used for base-compatibility checks and nothing else. Regular
// struct equality stays untouched for collections.
func SameComponent(a, b Component) bool {
	return a.Name == b.Name
}

// Ingredient is a component that can be placed on a piece of pizza.
type Ingredient struct {
	Component
}

// NewIngredient creates an ingredient with the given name and price.
func NewIngredient(name string, price decimal.Decimal) Ingredient {
	return Ingredient{Component{Name: name, Price: price}}
}

// Base is the dough a whole pizza is built on.
type Base struct {
	Component
}

// NewBase creates a base with the given name and price.
func NewBase(name string, price decimal.Decimal) Base {
	return Base{Component{Name: name, Price: price}}
}

// SideVariant is a component additionally tagged with the pizza names it may
// legally be paired with.
type SideVariant struct {
	Component
	AllowedPizzas []string
}

// NewSideVariant creates a side variant allowed for the given pizza names.
func NewSideVariant(name string, price decimal.Decimal, allowedPizzas ...string) SideVariant {
	return SideVariant{
		Component:     Component{Name: name, Price: price},
		AllowedPizzas: allowedPizzas,
	}
}

// AllowsPizza reports whether this side may be served on the named pizza.
func (s SideVariant) AllowsPizza(pizzaName string) bool {
	for _, name := range s.AllowedPizzas {
		if name == pizzaName {
			return true
		}
	}
	return false
}
