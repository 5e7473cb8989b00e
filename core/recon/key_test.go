package recon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestCompositeKey_Normalization tests trimming, lowercasing, and whitespace collapsing.
func TestCompositeKey_Normalization(t *testing.T) {
	tests := []struct {
		name     string
		row      Row
		columns  []string
		expected string
	}{
		{
			name:     "plain value",
			row:      Row{"InvoiceNo": "INV-1"},
			columns:  []string{"InvoiceNo"},
			expected: "inv-1",
		},
		{
			name:     "trailing whitespace collapses to same key",
			row:      Row{"InvoiceNo": "INV-1  "},
			columns:  []string{"InvoiceNo"},
			expected: "inv-1",
		},
		{
			name:     "internal whitespace runs collapse to single space",
			row:      Row{"Name": "  Acme   Corp  Ltd "},
			columns:  []string{"Name"},
			expected: "acme corp ltd",
		},
		{
			name:     "multiple columns join in order",
			row:      Row{"InvoiceNo": "INV-1", "Branch": "North"},
			columns:  []string{"InvoiceNo", "Branch"},
			expected: "inv-1 | north",
		},
		{
			name:     "column order matters",
			row:      Row{"InvoiceNo": "INV-1", "Branch": "North"},
			columns:  []string{"Branch", "InvoiceNo"},
			expected: "north | inv-1",
		},
		{
			name:     "missing column contributes empty part",
			row:      Row{"InvoiceNo": "INV-1"},
			columns:  []string{"InvoiceNo", "Branch"},
			expected: "inv-1 | ",
		},
		{
			name:     "all blank parts produce empty key",
			row:      Row{"InvoiceNo": "   ", "Branch": ""},
			columns:  []string{"InvoiceNo", "Branch"},
			expected: "",
		},
		{
			name:     "absent columns produce empty key",
			row:      Row{"Other": "x"},
			columns:  []string{"InvoiceNo"},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CompositeKey(tt.row, tt.columns))
		})
	}
}

// TestCompositeKey_Idempotence tests that normalizing an already-normalized key is stable.
func TestCompositeKey_Idempotence(t *testing.T) {
	row := Row{"InvoiceNo": "  INV-1 ", "Branch": "NORTH  WEST"}
	columns := []string{"InvoiceNo", "Branch"}

	once := CompositeKey(row, columns)
	again := CompositeKey(Row{"InvoiceNo": once}, []string{"InvoiceNo"})
	// The joined key contains the separator; normalizing it again must not change it.
	assert.Equal(t, once, again)
}

// TestCompositeKey_CaseAndWhitespaceCollapse tests that equivalent keys collide.
func TestCompositeKey_CaseAndWhitespaceCollapse(t *testing.T) {
	a := CompositeKey(Row{"InvoiceNo": "INV-1 "}, []string{"InvoiceNo"})
	b := CompositeKey(Row{"InvoiceNo": "inv-1"}, []string{"InvoiceNo"})
	assert.Equal(t, a, b)
}

// TestCompositeKey_IndependentColumnCounts tests that sides with different
// key column counts can still produce identical key strings.
func TestCompositeKey_IndependentColumnCounts(t *testing.T) {
	left := CompositeKey(Row{"Combined": "inv-1 | north"}, []string{"Combined"})
	right := CompositeKey(Row{"InvoiceNo": "INV-1", "Branch": "North"}, []string{"InvoiceNo", "Branch"})
	assert.Equal(t, left, right)
}
