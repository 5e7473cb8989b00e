package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"recon-manager/core/config"
	"recon-manager/core/database"
	"recon-manager/core/logger"
	"recon-manager/core/recon"
	"recon-manager/core/storage"
	"recon-manager/feature/datasets"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Dataset sources (one per side)
	leftFile    string
	rightFile   string
	leftObject  string
	rightObject string
	leftTable   string
	rightTable  string

	// Run configuration
	leftKey           string
	rightKey          string
	amountColumn      string
	dateColumn        string
	leftAmountColumn  string
	rightAmountColumn string
	leftDateColumn    string
	rightDateColumn   string
	tolerance         float64

	// Output shaping
	statusFilterFlag string
	searchFlag       string
	limitFlag        int
	outputFormat     string
)

// reconcileCmd is the parent command for all reconcile operations.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Reconcile two tabular datasets",
	Long: `Reconcile two datasets against a composite key to detect matched,
mismatched, missing, and duplicate-key rows.`,
}

// reconcileRunCmd performs a reconciliation run from the command line.
var reconcileRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a reconciliation and print the results",
	Long: `Run a reconciliation between two datasets.

Each side comes from exactly one source: a local CSV file (--left / --right),
an object in the configured bucket (--left-object / --right-object), or a
database table (--left-table / --right-table).

Examples:
  # Two local files, single key column
  recon-manager reconcile run --left invoices.csv --right bank.csv \
    --left-key InvoiceNo --right-key "Invoice No" --amount-column Amount

  # Storage object against a database table, with tolerance
  recon-manager reconcile run --left-object ledger/left.csv --right-table payments \
    --left-key InvoiceNo,Vendor --right-key invoice_no,vendor --tolerance 0.01

  # Only mismatches, as JSON
  recon-manager reconcile run --left a.csv --right b.csv \
    --left-key id --right-key id --status mismatched --output json`,
	RunE: runReconcile,
}

func init() {
	reconcileCmd.AddCommand(reconcileRunCmd)

	flags := reconcileRunCmd.Flags()
	flags.StringVar(&leftFile, "left", "", "Left dataset CSV file")
	flags.StringVar(&rightFile, "right", "", "Right dataset CSV file")
	flags.StringVar(&leftObject, "left-object", "", "Left dataset object name in the configured bucket")
	flags.StringVar(&rightObject, "right-object", "", "Right dataset object name in the configured bucket")
	flags.StringVar(&leftTable, "left-table", "", "Left dataset database table")
	flags.StringVar(&rightTable, "right-table", "", "Right dataset database table")

	flags.StringVar(&leftKey, "left-key", "", "Left key columns, comma separated (required)")
	flags.StringVar(&rightKey, "right-key", "", "Right key columns, comma separated (required)")
	flags.StringVar(&amountColumn, "amount-column", "", "Amount column on both sides")
	flags.StringVar(&dateColumn, "date-column", "", "Date column on both sides")
	flags.StringVar(&leftAmountColumn, "left-amount-column", "", "Left amount column (overrides --amount-column)")
	flags.StringVar(&rightAmountColumn, "right-amount-column", "", "Right amount column (overrides --amount-column)")
	flags.StringVar(&leftDateColumn, "left-date-column", "", "Left date column (overrides --date-column)")
	flags.StringVar(&rightDateColumn, "right-date-column", "", "Right date column (overrides --date-column)")
	flags.Float64Var(&tolerance, "tolerance", 0, "Absolute amount tolerance")

	flags.StringVar(&statusFilterFlag, "status", "", "Only print rows with this status")
	flags.StringVar(&searchFlag, "search", "", "Only print rows matching this text")
	flags.IntVar(&limitFlag, "limit", 0, "Maximum rows printed (0 = all)")
	flags.StringVar(&outputFormat, "output", "table", "Output format: table or json")

	RootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	runCfg := recon.Config{
		Left: recon.DatasetConfig{
			KeyColumns:   splitKeyColumns(leftKey),
			AmountColumn: pick(leftAmountColumn, amountColumn),
			DateColumn:   pick(leftDateColumn, dateColumn),
		},
		Right: recon.DatasetConfig{
			KeyColumns:   splitKeyColumns(rightKey),
			AmountColumn: pick(rightAmountColumn, amountColumn),
			DateColumn:   pick(rightDateColumn, dateColumn),
		},
		AmountTolerance: tolerance,
	}
	if tolerance < 0 {
		return fmt.Errorf("tolerance must be non-negative")
	}
	if len(runCfg.Left.KeyColumns) == 0 || len(runCfg.Right.KeyColumns) == 0 {
		return fmt.Errorf("both --left-key and --right-key are required")
	}

	sources := newSourceResolver(cfg)
	left, err := sources.load(ctx, "left", leftFile, leftObject, leftTable)
	if err != nil {
		return err
	}
	right, err := sources.load(ctx, "right", rightFile, rightObject, rightTable)
	if err != nil {
		return err
	}

	l.Info("Running reconciliation",
		zap.Int("left_rows", len(left.Rows)),
		zap.Int("right_rows", len(right.Rows)),
	)

	result, err := recon.Reconcile(left.Rows, right.Rows, runCfg)
	if err != nil {
		return err
	}

	status := recon.Status(statusFilterFlag)
	switch status {
	case "", recon.StatusMatched, recon.StatusMismatched, recon.StatusMissingInLeft,
		recon.StatusMissingInRight, recon.StatusDuplicateKey:
	default:
		return fmt.Errorf("unknown status: %s", statusFilterFlag)
	}

	rows := recon.FilterRows(result.Rows, status, searchFlag)
	if limitFlag > 0 && limitFlag < len(rows) {
		rows = rows[:limitFlag]
	}

	switch outputFormat {
	case "json":
		return printJSON(rows, result.Summary)
	case "table":
		return printTable(rows, result.Summary)
	default:
		return fmt.Errorf("unknown output format: %s", outputFormat)
	}
}

// sourceResolver lazily opens the storage and database connections so a run
// on two local files never touches either.
type sourceResolver struct {
	cfg    *config.Config
	client storage.Client
}

func newSourceResolver(cfg *config.Config) *sourceResolver {
	return &sourceResolver{cfg: cfg}
}

func (r *sourceResolver) load(ctx context.Context, side, file, object, table string) (*datasets.Table, error) {
	switch {
	case file != "":
		t, err := datasets.ParseCSVFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s dataset: %w", side, err)
		}
		return t, nil

	case object != "":
		if r.client == nil {
			client, err := storage.NewClient(r.cfg.Storage)
			if err != nil {
				return nil, fmt.Errorf("failed to connect to storage: %w", err)
			}
			r.client = client
		}
		t, err := datasets.FetchObject(ctx, r.client, r.cfg.Storage.Bucket, object)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch %s dataset: %w", side, err)
		}
		return t, nil

	case table != "":
		db, err := database.Connect(r.cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		headers, rows, err := database.FetchRows(ctx, db, table)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s dataset: %w", side, err)
		}
		return &datasets.Table{Headers: headers, Rows: rows}, nil

	default:
		return nil, fmt.Errorf("missing %s dataset: use --%s, --%s-object, or --%s-table", side, side, side, side)
	}
}

func printJSON(rows []recon.RowResult, summary recon.Summary) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Rows    []recon.RowResult `json:"rows"`
		Summary recon.Summary     `json:"summary"`
	}{Rows: rows, Summary: summary})
}

func printTable(rows []recon.RowResult, summary recon.Summary) error {
	table := tablewriter.NewTable(os.Stdout)
	table.Header("STATUS", "KEY", "LEFT", "RIGHT", "REASONS")
	for _, rr := range rows {
		err := table.Append(
			string(rr.Status),
			rr.Key,
			recon.Preview(rr.Left),
			recon.Preview(rr.Right),
			strings.Join(rr.Reasons, "; "),
		)
		if err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Printf("\n%d left rows, %d right rows\n", summary.LeftCount, summary.RightCount)
	fmt.Printf("matched=%d mismatched=%d missing_in_left=%d missing_in_right=%d duplicate_key=%d\n",
		summary.Matched, summary.Mismatched, summary.MissingInLeft,
		summary.MissingInRight, summary.DuplicateKey)
	return nil
}

func splitKeyColumns(raw string) []string {
	var cols []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			cols = append(cols, p)
		}
	}
	return cols
}

func pick(specific, shared string) string {
	if specific != "" {
		return specific
	}
	return shared
}
