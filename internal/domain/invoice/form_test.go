package invoice

import (
	"testing"

	"github.com/billfold/billfold/internal/domain/product"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormAddProduct(t *testing.T) {
	form := NewForm()
	form.AddProduct(testProduct(), 3)

	require.Len(t, form.Lines, 1)
	assert.Equal(t, 3, form.Lines[0].Quantity)
	assert.Nil(t, form.Lines[0].ExistingLineID)
}

func TestFormQuantityClampedToOne(t *testing.T) {
	form := NewForm()
	form.AddProduct(testProduct(), 0)
	form.AddProduct(testProduct(), -5)
	assert.Equal(t, 1, form.Lines[0].Quantity)
	assert.Equal(t, 1, form.Lines[1].Quantity)

	form.SetQuantity(0, 4)
	assert.Equal(t, 4, form.Lines[0].Quantity)
	form.SetQuantity(0, 0)
	assert.Equal(t, 1, form.Lines[0].Quantity)

	// Out-of-range indexes are ignored.
	form.SetQuantity(99, 5)
	form.SetQuantity(-1, 5)
}

func TestFormRemoveUnpersistedLineLeavesNoRecord(t *testing.T) {
	form := NewForm()
	form.AddProduct(testProduct(), 2)
	form.RemoveLine(0)

	assert.Empty(t, form.Lines)
	assert.Empty(t, form.DeletedLines())
	assert.True(t, form.IsEmpty())
}

func TestFormRemovePersistedLineRecordsDestroy(t *testing.T) {
	inv := &Invoice{
		ID:       5,
		Customer: testCustomer(),
		Deadline: "2024-12-31",
		Lines: []*Line{
			{ID: 21, Quantity: 2, Product: testProduct()},
			{ID: 22, Quantity: 1, Product: product.Product{
				ID: 2, Label: "Product 2", Unit: "hour", VATRate: "10", UnitPrice: "50",
			}},
		},
	}

	form := NewFormFromInvoice(inv)
	require.Len(t, form.Lines, 2)
	require.NotNil(t, form.Lines[0].ExistingLineID)
	assert.Equal(t, 21, *form.Lines[0].ExistingLineID)
	assert.Equal(t, "2024-12-31", form.DueDate)

	form.RemoveLine(1)

	require.Len(t, form.DeletedLines(), 1)
	deleted := form.DeletedLines()[0]
	assert.Equal(t, 22, deleted.LineID)
	assert.Equal(t, 2, deleted.ProductID)
	assert.Equal(t, "Product 2", deleted.Label)
	assert.Equal(t, "hour", deleted.Unit)
	assert.Equal(t, "10", deleted.VATRate)
	assert.Equal(t, "50", deleted.UnitPrice)
}

func TestFormDeletionLogKeepsRemovalOrder(t *testing.T) {
	inv := &Invoice{
		Customer: testCustomer(),
		Lines: []*Line{
			{ID: 1, Quantity: 1, Product: testProduct()},
			{ID: 2, Quantity: 1, Product: testProduct()},
			{ID: 3, Quantity: 1, Product: testProduct()},
		},
	}

	form := NewFormFromInvoice(inv)
	form.RemoveLine(2) // line id 3
	form.RemoveLine(0) // line id 1

	require.Len(t, form.DeletedLines(), 2)
	assert.Equal(t, 3, form.DeletedLines()[0].LineID)
	assert.Equal(t, 1, form.DeletedLines()[1].LineID)
}

func TestFormWithOnlyDeletionsIsNotEmpty(t *testing.T) {
	inv := &Invoice{
		Customer: testCustomer(),
		Lines:    []*Line{{ID: 1, Quantity: 1, Product: testProduct()}},
	}

	form := NewFormFromInvoice(inv)
	form.RemoveLine(0)

	// A pending destroy instruction still needs to reach the server.
	assert.Empty(t, form.Lines)
	assert.False(t, form.IsEmpty())

	form.ClearDeletedLines()
	assert.True(t, form.IsEmpty())
}
