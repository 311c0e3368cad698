package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"finledger/internal/models"
	"finledger/internal/records"
	"finledger/internal/report"
)

// openView dispatches to the record view behind a navigation target. Callers
// go through navigate, which inserts the step-up prompt for protected
// destinations.
func (a *App) openView(ctx context.Context, dest string) error {
	switch dest {
	case "expenses":
		return a.recordsView(ctx, models.KindExpense)
	case "history":
		return a.recordsView(ctx, models.KindTransaction)
	default:
		fmt.Println("Unknown view:", dest)
		return nil
	}
}

// recordsView mounts a filtered view over one fetched snapshot: a single
// fetch attempt, then an interactive filter/export loop. A fetch failure is
// inline and recoverable; it clears nothing and redirects nowhere.
func (a *App) recordsView(ctx context.Context, kind models.Kind) error {
	v := records.NewView(kind)

	fmt.Println("Loading...")
	err := v.Load(ctx, func(ctx context.Context) ([]models.Record, error) {
		token, err := a.store.Token(ctx)
		if err != nil {
			return nil, err
		}
		if kind == models.KindExpense {
			return a.client.FetchExpensesByEmail(ctx, token, a.user.Email)
		}
		return a.client.FetchHistory(ctx, token)
	})
	if err != nil {
		a.log.Warn(ctx, "record fetch failed", "kind", string(kind), "err", err)
		fmt.Println("Error: failed to fetch records:", err)
		return nil
	}

	a.renderRecords(v)
	return a.viewLoop(ctx, v)
}

// viewLoop drives the filter controls of a mounted view until 'back'.
func (a *App) viewLoop(ctx context.Context, v *records.View) error {
	classWord := "category"
	if v.Kind() == models.KindTransaction {
		classWord = "type"
	}

	for {
		fmt.Printf("Commands: date YYYY-MM-DD | %s <value> | clear | list | export | back\n", classWord)
		line, err := getSimpleText(a.reader, "filter", os.Stdout)
		if err != nil {
			return err
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "date":
			if len(parts) < 2 {
				fmt.Println("Usage: date YYYY-MM-DD")
				continue
			}
			d, err := records.ParseDate(parts[1])
			if err != nil {
				fmt.Println(err)
				continue
			}
			v.SetDate(d)
			a.renderRecords(v)

		case classWord:
			if len(parts) < 2 {
				fmt.Printf("Usage: %s <value>\n", classWord)
				continue
			}
			v.SetClass(parts[1])
			a.renderRecords(v)

		case "clear":
			v.ClearFilters()
			a.renderRecords(v)

		case "list":
			a.renderRecords(v)

		case "export":
			path, err := report.ExportFile(a.config.ExportDir, v.Kind(), v.Records())
			if err != nil {
				fmt.Println("Export failed:", err)
				continue
			}
			fmt.Println("Report written to", path)

		case "back":
			return nil

		default:
			fmt.Println("Unknown command:", parts[0])
		}
	}
}

func (a *App) renderRecords(v *records.View) {
	recs := v.Records()
	if len(recs) == 0 {
		if v.Kind() == models.KindTransaction {
			fmt.Println("No transactions found.")
		} else {
			fmt.Println("No expenses found.")
		}
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(report.Header(v.Kind()), "\t"))
	for _, r := range recs {
		fmt.Fprintln(w, strings.Join(report.Row(v.Kind(), r), "\t"))
	}
	w.Flush()
}
