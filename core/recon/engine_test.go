package recon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func invoiceConfig() Config {
	return Config{
		Left:  DatasetConfig{KeyColumns: []string{"Inv"}, AmountColumn: "Amt"},
		Right: DatasetConfig{KeyColumns: []string{"Inv"}, AmountColumn: "Amt"},
	}
}

// TestReconcile_ConfigError tests that empty key columns abort the run.
func TestReconcile_ConfigError(t *testing.T) {
	_, err := Reconcile(nil, nil, Config{
		Left:  DatasetConfig{KeyColumns: []string{}},
		Right: DatasetConfig{KeyColumns: []string{"Inv"}},
	})
	assert.ErrorIs(t, err, ErrNoKeyColumns)

	_, err = Reconcile(nil, nil, Config{
		Left:  DatasetConfig{KeyColumns: []string{"Inv"}},
		Right: DatasetConfig{},
	})
	assert.ErrorIs(t, err, ErrNoKeyColumns)
}

// TestReconcile_MissingInRight tests a left row with no right counterpart.
func TestReconcile_MissingInRight(t *testing.T) {
	left := []Row{{"Inv": "1", "Amt": "100"}}

	res, err := Reconcile(left, []Row{}, invoiceConfig())
	require.NoError(t, err)

	require.Len(t, res.Rows, 1)
	assert.Equal(t, StatusMissingInRight, res.Rows[0].Status)
	assert.Equal(t, "1", res.Rows[0].Key)
	assert.NotNil(t, res.Rows[0].Left)
	assert.Nil(t, res.Rows[0].Right)
	assert.Equal(t, []string{ReasonNoRightMatch}, res.Rows[0].Reasons)

	assert.Equal(t, 1, res.Summary.MissingInRight)
	assert.Equal(t, 0, res.Summary.Matched)
	assert.Equal(t, 0, res.Summary.Mismatched)
	assert.Equal(t, 0, res.Summary.MissingInLeft)
	assert.Equal(t, 0, res.Summary.DuplicateKey)
}

// TestReconcile_MissingInLeft tests a residual right row with no left counterpart.
func TestReconcile_MissingInLeft(t *testing.T) {
	right := []Row{{"Inv": "1", "Amt": "100"}}

	res, err := Reconcile([]Row{}, right, invoiceConfig())
	require.NoError(t, err)

	require.Len(t, res.Rows, 1)
	assert.Equal(t, StatusMissingInLeft, res.Rows[0].Status)
	assert.Nil(t, res.Rows[0].Left)
	assert.NotNil(t, res.Rows[0].Right)
	assert.Equal(t, []string{ReasonNoLeftMatch}, res.Rows[0].Reasons)
	assert.Equal(t, 1, res.Summary.MissingInLeft)
}

// TestReconcile_MatchedWithinTolerance tests that equal amounts in different
// textual forms match with no reasons.
func TestReconcile_MatchedWithinTolerance(t *testing.T) {
	left := []Row{{"Inv": "1", "Amt": "100"}}
	right := []Row{{"Inv": "1", "Amt": "100.00"}}

	res, err := Reconcile(left, right, invoiceConfig())
	require.NoError(t, err)

	require.Len(t, res.Rows, 1)
	assert.Equal(t, StatusMatched, res.Rows[0].Status)
	assert.Empty(t, res.Rows[0].Reasons)
	assert.Equal(t, 1, res.Summary.Matched)
}

// TestReconcile_AmountMismatch tests that a difference beyond tolerance is flagged.
func TestReconcile_AmountMismatch(t *testing.T) {
	cfg := invoiceConfig()
	cfg.AmountTolerance = 0.01

	left := []Row{{"Inv": "1", "Amt": "100"}}
	right := []Row{{"Inv": "1", "Amt": "100.02"}}

	res, err := Reconcile(left, right, cfg)
	require.NoError(t, err)

	require.Len(t, res.Rows, 1)
	assert.Equal(t, StatusMismatched, res.Rows[0].Status)
	require.Len(t, res.Rows[0].Reasons, 1)
	assert.Contains(t, res.Rows[0].Reasons[0], "0.02")
	assert.Contains(t, res.Rows[0].Reasons[0], "tolerance 0.01")
	assert.Equal(t, 1, res.Summary.Mismatched)
}

// TestReconcile_ToleranceBoundary tests that the comparison is strictly
// greater-than: a difference exactly at the tolerance passes.
func TestReconcile_ToleranceBoundary(t *testing.T) {
	cfg := invoiceConfig()
	cfg.AmountTolerance = 0.01

	left := []Row{{"Inv": "1", "Amt": "100.00"}}
	right := []Row{{"Inv": "1", "Amt": "100.01"}}

	res, err := Reconcile(left, right, cfg)
	require.NoError(t, err)
	assert.Equal(t, StatusMatched, res.Rows[0].Status)

	// Just past the boundary flips to mismatched.
	right = []Row{{"Inv": "1", "Amt": "100.011"}}
	res, err = Reconcile(left, right, cfg)
	require.NoError(t, err)
	assert.Equal(t, StatusMismatched, res.Rows[0].Status)
}

// TestReconcile_AmountUnparseable tests that a bad amount is a reason, not an error.
func TestReconcile_AmountUnparseable(t *testing.T) {
	left := []Row{{"Inv": "1", "Amt": "N/A"}}
	right := []Row{{"Inv": "1", "Amt": "100"}}

	res, err := Reconcile(left, right, invoiceConfig())
	require.NoError(t, err)

	assert.Equal(t, StatusMismatched, res.Rows[0].Status)
	assert.Equal(t, []string{ReasonAmountUnparseable}, res.Rows[0].Reasons)
}

// TestReconcile_DateComparison tests date normalization across formats and
// mismatch reporting.
func TestReconcile_DateComparison(t *testing.T) {
	cfg := Config{
		Left:  DatasetConfig{KeyColumns: []string{"Inv"}, DateColumn: "Date"},
		Right: DatasetConfig{KeyColumns: []string{"Inv"}, DateColumn: "BookedOn"},
	}

	// Same calendar date in different formats matches.
	left := []Row{{"Inv": "1", "Date": "01/12/2025"}}
	right := []Row{{"Inv": "1", "BookedOn": "2025-12-01"}}
	res, err := Reconcile(left, right, cfg)
	require.NoError(t, err)
	assert.Equal(t, StatusMatched, res.Rows[0].Status)

	// Different dates mismatch with both normalized forms in the reason.
	right = []Row{{"Inv": "1", "BookedOn": "2025-12-02"}}
	res, err = Reconcile(left, right, cfg)
	require.NoError(t, err)
	assert.Equal(t, StatusMismatched, res.Rows[0].Status)
	require.Len(t, res.Rows[0].Reasons, 1)
	assert.Equal(t, "Date differs (2025-12-01 vs 2025-12-02)", res.Rows[0].Reasons[0])

	// Unparseable date is a reason, not an error.
	right = []Row{{"Inv": "1", "BookedOn": "soon"}}
	res, err = Reconcile(left, right, cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{ReasonDateUnparseable}, res.Rows[0].Reasons)
}

// TestReconcile_DuplicateDetection tests that the first bucket entry is
// consumed and the second surfaces as a duplicate-key residual.
func TestReconcile_DuplicateDetection(t *testing.T) {
	left := []Row{{"Inv": "A", "Amt": "10"}}
	right := []Row{
		{"Inv": "A", "Amt": "10"},
		{"Inv": "A", "Amt": "20"},
	}

	res, err := Reconcile(left, right, invoiceConfig())
	require.NoError(t, err)
	require.Len(t, res.Rows, 2)

	// The left row consumes the first candidate. The duplicate-key note makes
	// the pairing mismatched even though the amounts agree.
	pair := res.Rows[0]
	assert.Equal(t, StatusMismatched, pair.Status)
	assert.Equal(t, "10", pair.Right["Amt"])
	assert.Equal(t, ReasonDuplicateKey, pair.Reasons[0])

	residual := res.Rows[1]
	assert.Equal(t, StatusDuplicateKey, residual.Status)
	assert.Nil(t, residual.Left)
	assert.Equal(t, "20", residual.Right["Amt"])
	assert.Equal(t, []string{ReasonDuplicateKey}, residual.Reasons)

	assert.Equal(t, 1, res.Summary.Mismatched)
	assert.Equal(t, 1, res.Summary.DuplicateKey)
}

// TestReconcile_BucketExhausted tests a left row arriving after its bucket
// has been fully consumed.
func TestReconcile_BucketExhausted(t *testing.T) {
	left := []Row{
		{"Inv": "A", "Amt": "10"},
		{"Inv": "A", "Amt": "10"},
	}
	right := []Row{{"Inv": "A", "Amt": "10"}}

	res, err := Reconcile(left, right, invoiceConfig())
	require.NoError(t, err)
	require.Len(t, res.Rows, 2)

	assert.Equal(t, StatusMatched, res.Rows[0].Status)

	exhausted := res.Rows[1]
	assert.Equal(t, StatusDuplicateKey, exhausted.Status)
	assert.NotNil(t, exhausted.Left)
	// Paired with the first bucket entry for display, read-only.
	assert.Equal(t, "10", exhausted.Right["Amt"])
	assert.Equal(t, []string{ReasonBucketExhausted}, exhausted.Reasons)
}

// TestReconcile_BlankKeysExcluded tests that all-blank-key rows vanish from
// both sides without affecting any status counts.
func TestReconcile_BlankKeysExcluded(t *testing.T) {
	left := []Row{
		{"Inv": "  ", "Amt": "1"},
		{"Inv": "1", "Amt": "100"},
	}
	right := []Row{
		{"Inv": "", "Amt": "2"},
		{"Inv": "1", "Amt": "100"},
	}

	res, err := Reconcile(left, right, invoiceConfig())
	require.NoError(t, err)

	require.Len(t, res.Rows, 1)
	assert.Equal(t, StatusMatched, res.Rows[0].Status)

	// Input totals still count the excluded rows.
	assert.Equal(t, 2, res.Summary.LeftCount)
	assert.Equal(t, 2, res.Summary.RightCount)
	assert.Equal(t, 1, res.Summary.Matched)
}

// TestReconcile_OrderingAndPartition tests the observable ordering contract
// and the partition identities over a mixed scenario.
func TestReconcile_OrderingAndPartition(t *testing.T) {
	left := []Row{
		{"Inv": "3", "Amt": "30"},
		{"Inv": "1", "Amt": "10"},
		{"Inv": "9", "Amt": "90"},
	}
	right := []Row{
		{"Inv": "5", "Amt": "50"},
		{"Inv": "1", "Amt": "10"},
		{"Inv": "3", "Amt": "31"},
	}

	res, err := Reconcile(left, right, invoiceConfig())
	require.NoError(t, err)
	require.Len(t, res.Rows, 4)

	// Left-scan results in left input order, residuals after.
	assert.Equal(t, "3", res.Rows[0].Key)
	assert.Equal(t, StatusMismatched, res.Rows[0].Status)
	assert.Equal(t, "1", res.Rows[1].Key)
	assert.Equal(t, StatusMatched, res.Rows[1].Status)
	assert.Equal(t, "9", res.Rows[2].Key)
	assert.Equal(t, StatusMissingInRight, res.Rows[2].Status)
	assert.Equal(t, "5", res.Rows[3].Key)
	assert.Equal(t, StatusMissingInLeft, res.Rows[3].Status)

	// Left partition: matched + mismatched + missingInRight covers all left rows.
	s := res.Summary
	assert.Equal(t, 3, s.Matched+s.Mismatched+s.MissingInRight)
	// Right partition: consumed pairs + missingInLeft + duplicates covers all right rows.
	assert.Equal(t, 3, s.Matched+s.Mismatched+s.MissingInLeft+s.DuplicateKey)
}

// TestReconcile_ResidualOrder tests that residuals follow bucket insertion
// order, not map iteration order.
func TestReconcile_ResidualOrder(t *testing.T) {
	right := []Row{
		{"Inv": "z"},
		{"Inv": "a"},
		{"Inv": "m"},
	}

	cfg := Config{
		Left:  DatasetConfig{KeyColumns: []string{"Inv"}},
		Right: DatasetConfig{KeyColumns: []string{"Inv"}},
	}

	res, err := Reconcile([]Row{}, right, cfg)
	require.NoError(t, err)
	require.Len(t, res.Rows, 3)
	assert.Equal(t, "z", res.Rows[0].Key)
	assert.Equal(t, "a", res.Rows[1].Key)
	assert.Equal(t, "m", res.Rows[2].Key)
}

// TestReconcile_KeyOnlyComparison tests that without amount or date columns
// configured, pairing alone decides matched.
func TestReconcile_KeyOnlyComparison(t *testing.T) {
	cfg := Config{
		Left:  DatasetConfig{KeyColumns: []string{"Inv"}},
		Right: DatasetConfig{KeyColumns: []string{"Inv"}},
	}

	left := []Row{{"Inv": "1", "Amt": "100"}}
	right := []Row{{"Inv": "1", "Amt": "999"}}

	res, err := Reconcile(left, right, cfg)
	require.NoError(t, err)
	assert.Equal(t, StatusMatched, res.Rows[0].Status)
}

// TestReconcile_OneSidedAmountColumn tests that amounts are only compared
// when both sides declare a column.
func TestReconcile_OneSidedAmountColumn(t *testing.T) {
	cfg := Config{
		Left:  DatasetConfig{KeyColumns: []string{"Inv"}, AmountColumn: "Amt"},
		Right: DatasetConfig{KeyColumns: []string{"Inv"}},
	}

	left := []Row{{"Inv": "1", "Amt": "100"}}
	right := []Row{{"Inv": "1"}}

	res, err := Reconcile(left, right, cfg)
	require.NoError(t, err)
	assert.Equal(t, StatusMatched, res.Rows[0].Status)
}
