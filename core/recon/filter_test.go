package recon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResults() []RowResult {
	return []RowResult{
		{
			Status:  StatusMatched,
			Key:     "inv-1",
			Left:    Row{"Inv": "INV-1", "Vendor": "Acme"},
			Right:   Row{"Inv": "INV-1", "Vendor": "Acme"},
			Reasons: []string{},
		},
		{
			Status:  StatusMismatched,
			Key:     "inv-2",
			Left:    Row{"Inv": "INV-2", "Vendor": "Globex"},
			Right:   Row{"Inv": "INV-2", "Vendor": "Globex"},
			Reasons: []string{"Amount differs by 5.00 (tolerance 0)"},
		},
		{
			Status:  StatusMissingInRight,
			Key:     "inv-3",
			Left:    Row{"Inv": "INV-3", "Vendor": "Initech"},
			Reasons: []string{ReasonNoRightMatch},
		},
	}
}

// TestFilterRows_ByStatus tests narrowing by a single status.
func TestFilterRows_ByStatus(t *testing.T) {
	out := FilterRows(sampleResults(), StatusMismatched, "")
	require.Len(t, out, 1)
	assert.Equal(t, "inv-2", out[0].Key)

	// Empty status keeps everything.
	assert.Len(t, FilterRows(sampleResults(), "", ""), 3)
}

// TestFilterRows_BySearch tests the free-text search across key, reasons,
// and row previews.
func TestFilterRows_BySearch(t *testing.T) {
	// Match on key.
	out := FilterRows(sampleResults(), "", "inv-3")
	require.Len(t, out, 1)
	assert.Equal(t, StatusMissingInRight, out[0].Status)

	// Match on reason text, case-insensitive.
	out = FilterRows(sampleResults(), "", "AMOUNT DIFFERS")
	require.Len(t, out, 1)
	assert.Equal(t, "inv-2", out[0].Key)

	// Match on a field value.
	out = FilterRows(sampleResults(), "", "globex")
	require.Len(t, out, 1)
	assert.Equal(t, "inv-2", out[0].Key)

	// No match.
	assert.Empty(t, FilterRows(sampleResults(), "", "hooli"))
}

// TestFilterRows_StatusAndSearchCombine tests that both filters apply.
func TestFilterRows_StatusAndSearchCombine(t *testing.T) {
	out := FilterRows(sampleResults(), StatusMatched, "acme")
	require.Len(t, out, 1)
	assert.Equal(t, "inv-1", out[0].Key)

	assert.Empty(t, FilterRows(sampleResults(), StatusMatched, "globex"))
}

// TestPreview_Truncation tests the deterministic preview and its cap.
func TestPreview_Truncation(t *testing.T) {
	assert.Equal(t, "", Preview(nil))
	assert.Equal(t, "a=1, b=2", Preview(Row{"b": "2", "a": "1"}))

	long := Row{"col": string(make([]byte, 500))}
	p := Preview(long)
	assert.LessOrEqual(t, len([]rune(p)), previewLimit+1)
}
