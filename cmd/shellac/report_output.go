package main

import (
	"fmt"
	"io"
	"strconv"

	"shellac/internal/importer"
)

func renderReport(out io.Writer, id int64, report *importer.Report) {
	title := report.Release.Title
	if report.DryRun {
		fmt.Fprintf(out, "release %d %q (dry run):\n", id, title)
	} else {
		fmt.Fprintf(out, "release %d %q:\n", id, title)
	}

	rows := make([][]string, 0, len(report.Outcomes))
	for _, outcome := range report.Outcomes {
		status := "ok"
		if outcome.Err != nil {
			status = outcome.Err.Error()
		}
		rows = append(rows, []string{
			outcome.Table,
			strconv.Itoa(outcome.Inserted),
			strconv.Itoa(outcome.Skipped),
			status,
		})
	}
	fmt.Fprintln(out, renderTable(out,
		[]string{"Table", "Inserted", "Skipped", "Status"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignRight, alignLeft}))

	verb := "inserted"
	if report.DryRun {
		verb = "would insert"
	}
	fmt.Fprintf(out, "%s %d row(s) across %d table(s)\n", verb, report.Inserted(), len(report.Outcomes))
}
