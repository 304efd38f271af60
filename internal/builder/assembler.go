package builder

import (
	"fmt"
	"time"

	"pizzeria/internal/catalog"
	"pizzeria/internal/models"
	"pizzeria/internal/monitoring"
)

// Strategy labels used for build metrics.
const (
	StrategyTemplate = "template"
	StrategyCombined = "combined"
	StrategyCustom   = "custom"
)

// Assembler offers the named pizza construction strategies and owns the
// in-memory order log. All strategies resolve names through the catalog and
// delegate to the PizzaBuilder.
type Assembler struct {
	catalog *catalog.Catalog
	metrics *monitoring.Collector
	orders  []*models.Order
}

// NewAssembler creates an assembler over the given catalog. A nil collector
// gets replaced with a fresh one.
func NewAssembler(cat *catalog.Catalog, metrics *monitoring.Collector) *Assembler {
	if metrics == nil {
		metrics = monitoring.NewCollector()
	}
	return &Assembler{catalog: cat, metrics: metrics}
}

func (a *Assembler) finish(strategy string, pz *models.Pizza, err error) (*models.Pizza, error) {
	if err != nil {
		a.metrics.BuildFailed(strategy)
		return nil, err
	}
	a.metrics.PizzaBuilt(strategy)
	return pz, nil
}

// FromTemplate replicates a catalog template: the template's base is reused
// and its first piece is copied pieces times. The doubling flag applies
// uniformly to all replicated pieces.
func (a *Assembler) FromTemplate(pizzaName string, pieces int, double bool) (*models.Pizza, error) {
	if pieces <= 0 {
		a.metrics.BuildFailed(StrategyTemplate)
		return nil, fmt.Errorf("piece count %d must be positive: %w", pieces, models.ErrInvalidArgument)
	}

	template, err := a.catalog.Template(pizzaName)
	if err != nil {
		a.metrics.BuildFailed(StrategyTemplate)
		return nil, err
	}

	b := New(pizzaName, a.catalog).
		WithBase(template.Base().Name).
		WithDoubleIngredients(double)

	first := template.Pieces()[0]
	for i := 0; i < pieces; i++ {
		b.AddPieceFromTemplate(first)
	}

	pz, err := b.Build()
	return a.finish(StrategyTemplate, pz, err)
}

// Combined builds a pizza out of existing templates. totalPieces must divide
// evenly across the sources and all sources must share the same base,
// compared by name. Each source contributes totalPieces/len(sourceNames)
// pieces taken in order; a source with fewer pieces than its share wraps
// around, so piece i is taken at index i modulo the source's piece count.
func (a *Assembler) Combined(pizzaName string, totalPieces int, sourceNames ...string) (*models.Pizza, error) {
	if len(sourceNames) == 0 {
		a.metrics.BuildFailed(StrategyCombined)
		return nil, fmt.Errorf("combined pizza needs at least one source: %w", models.ErrInvalidArgument)
	}
	if totalPieces <= 0 || totalPieces%len(sourceNames) != 0 {
		a.metrics.BuildFailed(StrategyCombined)
		return nil, fmt.Errorf("piece count %d not divisible across %d sources: %w",
			totalPieces, len(sourceNames), models.ErrInvalidArgument)
	}

	sources, err := a.catalog.Templates(sourceNames...)
	if err != nil {
		a.metrics.BuildFailed(StrategyCombined)
		return nil, err
	}

	base := sources[0].Base()
	for _, source := range sources[1:] {
		if !models.SameComponent(base.Component, source.Base().Component) {
			a.metrics.BuildFailed(StrategyCombined)
			return nil, fmt.Errorf("pizza %q uses base %q, want %q: %w",
				source.Name(), source.Base().Name, base.Name, models.ErrInvalidBaseConsistency)
		}
	}

	b := New(pizzaName, a.catalog).WithBase(base.Name)
	share := totalPieces / len(sources)
	for _, source := range sources {
		pieces := source.Pieces()
		for i := 0; i < share; i++ {
			b.AddPieceFromTemplate(pieces[i%len(pieces)])
		}
	}

	pz, err := b.Build()
	return a.finish(StrategyCombined, pz, err)
}

// Custom builds a fully custom pizza from parallel arrays: one piece per
// position, sideNames[i] paired with ingredientNames[i].
func (a *Assembler) Custom(pizzaName, baseName string, sideNames []string, ingredientNames [][]string) (*models.Pizza, error) {
	if len(sideNames) != len(ingredientNames) {
		a.metrics.BuildFailed(StrategyCustom)
		return nil, fmt.Errorf("%d sides but %d ingredient lists: %w",
			len(sideNames), len(ingredientNames), models.ErrInvalidArgument)
	}

	b := New(pizzaName, a.catalog).WithBase(baseName)
	for i, sideName := range sideNames {
		b.AddPieces(sideName, ingredientNames[i]...)
	}

	pz, err := b.Build()
	return a.finish(StrategyCustom, pz, err)
}

// PlaceOrder creates an order from finished pizzas and appends it to the
// order log.
func (a *Assembler) PlaceOrder(pizzas []*models.Pizza, comment string, guestCount int, deferredAt *time.Time) (*models.Order, error) {
	order, err := models.NewOrder(pizzas, comment, guestCount, deferredAt)
	if err != nil {
		return nil, err
	}
	a.orders = append(a.orders, order)
	a.metrics.OrderPlaced(order.Price())
	return order, nil
}

// Orders returns the placed orders in placement order.
func (a *Assembler) Orders() []*models.Order {
	return append([]*models.Order(nil), a.orders...)
}
