package builder

import (
	"testing"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pizzeria/internal/catalog"
	"pizzeria/internal/models"
	"pizzeria/internal/monitoring"
)

// assemblerCatalog builds a catalog with three Classic-base templates
// (Margherita 1 piece, Pepperoni 2 pieces, Quattro 1 piece) and one
// Thin-base template (Crispy).
func assemblerCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	allowed := []string{"Margherita", "Pepperoni", "Quattro", "Crispy", "Trio", "HalfHalf"}
	cat, err := catalog.New(
		[]models.Ingredient{
			models.NewIngredient("Cheese", d("1.00")),
			models.NewIngredient("Tomato", d("0.75")),
			models.NewIngredient("Pepperoni", d("1.50")),
		},
		[]models.Base{
			models.NewBase("Classic", d("5.00")),
			models.NewBase("Thin", d("5.90")),
		},
		[]models.SideVariant{
			models.NewSideVariant("Plain", d("0.50"), allowed...),
			models.NewSideVariant("Cheesy", d("0.80"), allowed...),
		},
	)
	require.NoError(t, err)

	addTemplate(t, cat, "Margherita", "Classic", [][]string{{"Cheese", "Tomato"}})
	addTemplate(t, cat, "Pepperoni", "Classic", [][]string{{"Pepperoni"}, {"Pepperoni", "Cheese"}})
	addTemplate(t, cat, "Quattro", "Classic", [][]string{{"Cheese"}})
	addTemplate(t, cat, "Crispy", "Thin", [][]string{{"Cheese"}})
	return cat
}

func addTemplate(t *testing.T, cat *catalog.Catalog, name, baseName string, ingredientLists [][]string) {
	t.Helper()

	b := New(name, cat).WithBase(baseName)
	for _, ingredients := range ingredientLists {
		b.AddPieces("Plain", ingredients...)
	}
	pz, err := b.Build()
	require.NoError(t, err)
	cat.AddTemplate(pz)
}

func TestFromTemplateReplicatesFirstPiece(t *testing.T) {
	asm := NewAssembler(assemblerCatalog(t), nil)

	pz, err := asm.FromTemplate("Margherita", 4, false)
	require.NoError(t, err)

	assert.Equal(t, 4, pz.PieceCount())
	for _, piece := range pz.Pieces() {
		assert.Equal(t, "Cheese", piece.Ingredients()[0].Name)
	}
	// 5.00 + 4 × (0.50+1.00+0.75)
	assert.True(t, pz.Price().Equal(d("14.00")), "got %s", pz.Price())
}

func TestFromTemplateDoublesUniformly(t *testing.T) {
	asm := NewAssembler(assemblerCatalog(t), nil)

	pz, err := asm.FromTemplate("Margherita", 2, true)
	require.NoError(t, err)

	for _, piece := range pz.Pieces() {
		assert.Len(t, piece.Ingredients(), 4)
	}
	// 5.00 + 2 × (0.50 + 2×1.75)
	assert.True(t, pz.Price().Equal(d("13.00")), "got %s", pz.Price())
}

func TestFromTemplateRejectsNonPositiveCount(t *testing.T) {
	asm := NewAssembler(assemblerCatalog(t), nil)

	for _, count := range []int{0, -2} {
		pz, err := asm.FromTemplate("Margherita", count, false)
		assert.Nil(t, pz)
		assert.ErrorIs(t, err, models.ErrInvalidArgument)
	}
}

func TestFromTemplateUnknownTemplate(t *testing.T) {
	asm := NewAssembler(assemblerCatalog(t), nil)

	pz, err := asm.FromTemplate("Diavola", 2, false)
	assert.Nil(t, pz)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestCombinedRequiresDivisiblePieceCount(t *testing.T) {
	asm := NewAssembler(assemblerCatalog(t), nil)

	pz, err := asm.Combined("Trio", 4, "Margherita", "Pepperoni", "Quattro")
	assert.Nil(t, pz)
	assert.ErrorIs(t, err, models.ErrInvalidArgument)
}

func TestCombinedApportionsEvenly(t *testing.T) {
	asm := NewAssembler(assemblerCatalog(t), nil)

	pz, err := asm.Combined("Trio", 6, "Margherita", "Pepperoni", "Quattro")
	require.NoError(t, err)

	assert.Equal(t, 6, pz.PieceCount())
	assert.Equal(t, "Classic", pz.Base().Name)

	// Two pieces per source, in source order. Margherita and Quattro wrap
	// their single piece; Pepperoni contributes its first two in order.
	pieces := pz.Pieces()
	assert.Equal(t, "Cheese", pieces[0].Ingredients()[0].Name)
	assert.Equal(t, "Cheese", pieces[1].Ingredients()[0].Name)
	assert.Len(t, pieces[2].Ingredients(), 1)
	assert.Len(t, pieces[3].Ingredients(), 2)
	assert.Equal(t, "Cheese", pieces[4].Ingredients()[0].Name)

	// 5.00 + 2×2.25 + (2.00 + 3.00) + 2×1.50
	assert.True(t, pz.Price().Equal(d("17.50")), "got %s", pz.Price())
}

func TestCombinedRequiresSharedBase(t *testing.T) {
	asm := NewAssembler(assemblerCatalog(t), nil)

	pz, err := asm.Combined("HalfHalf", 4, "Margherita", "Crispy")
	assert.Nil(t, pz)
	assert.ErrorIs(t, err, models.ErrInvalidBaseConsistency)
}

func TestCombinedRequiresSources(t *testing.T) {
	asm := NewAssembler(assemblerCatalog(t), nil)

	pz, err := asm.Combined("Trio", 6)
	assert.Nil(t, pz)
	assert.ErrorIs(t, err, models.ErrInvalidArgument)
}

func TestCustomPairsSidesWithIngredients(t *testing.T) {
	asm := NewAssembler(assemblerCatalog(t), nil)

	pz, err := asm.Custom("Quattro", "Classic",
		[]string{"Plain", "Cheesy"},
		[][]string{{"Cheese"}, {"Pepperoni", "Tomato"}})
	require.NoError(t, err)

	require.Equal(t, 2, pz.PieceCount())
	assert.Equal(t, "Plain", pz.Pieces()[0].Side().Name)
	assert.Equal(t, "Cheesy", pz.Pieces()[1].Side().Name)
	// 5.00 + (0.50+1.00) + (0.80+1.50+0.75)
	assert.True(t, pz.Price().Equal(d("9.55")), "got %s", pz.Price())
}

func TestCustomRejectsMismatchedArrays(t *testing.T) {
	asm := NewAssembler(assemblerCatalog(t), nil)

	pz, err := asm.Custom("Quattro", "Classic",
		[]string{"Plain", "Cheesy"},
		[][]string{{"Cheese"}})
	assert.Nil(t, pz)
	assert.ErrorIs(t, err, models.ErrInvalidArgument)
}

func TestPlaceOrderAppendsToLog(t *testing.T) {
	asm := NewAssembler(assemblerCatalog(t), nil)

	pz, err := asm.FromTemplate("Margherita", 2, false)
	require.NoError(t, err)

	order, err := asm.PlaceOrder([]*models.Pizza{pz}, "no rush", 2, nil)
	require.NoError(t, err)

	require.Len(t, asm.Orders(), 1)
	assert.Equal(t, order.ID, asm.Orders()[0].ID)

	_, err = asm.PlaceOrder(nil, "", 2, nil)
	assert.ErrorIs(t, err, models.ErrInvalidArgument)
	assert.Len(t, asm.Orders(), 1)
}

func TestPlacedOrderSurvivesTemplateMutation(t *testing.T) {
	cat := assemblerCatalog(t)
	asm := NewAssembler(cat, nil)

	pz, err := asm.FromTemplate("Margherita", 2, false)
	require.NoError(t, err)
	order, err := asm.PlaceOrder([]*models.Pizza{pz}, "", 1, nil)
	require.NoError(t, err)
	want := order.Price()

	template, err := cat.Template("Margherita")
	require.NoError(t, err)
	require.NoError(t, template.ResizePieces(8))
	require.NoError(t, pz.ResizePieces(8))

	assert.True(t, order.Price().Equal(want), "order price changed after mutation")
}

func TestAssemblerRecordsMetrics(t *testing.T) {
	metrics := monitoring.NewCollector()
	asm := NewAssembler(assemblerCatalog(t), metrics)

	pz, err := asm.FromTemplate("Margherita", 2, false)
	require.NoError(t, err)
	_, err = asm.FromTemplate("Diavola", 2, false)
	require.Error(t, err)
	_, err = asm.PlaceOrder([]*models.Pizza{pz}, "", 2, nil)
	require.NoError(t, err)

	assert.Equal(t, 1.0, counterValue(t, metrics, "pizzas_built_total", StrategyTemplate))
	assert.Equal(t, 1.0, counterValue(t, metrics, "pizza_build_failures_total", StrategyTemplate))
	assert.Equal(t, 1.0, counterValue(t, metrics, "orders_placed_total", ""))
}

func counterValue(t *testing.T, metrics *monitoring.Collector, name, strategy string) float64 {
	t.Helper()

	families, err := metrics.Gather()
	require.NoError(t, err)

	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		for _, metric := range family.GetMetric() {
			if strategy == "" || hasLabel(metric, "strategy", strategy) {
				return metric.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func hasLabel(metric *dto.Metric, name, value string) bool {
	for _, label := range metric.GetLabel() {
		if label.GetName() == name && label.GetValue() == value {
			return true
		}
	}
	return false
}
