package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/sqlfixture"
)

// FormatTableData renders one table dump: a header naming the table, the
// aligned contents, and a dim row-count trailer. NULL values render dim so
// they stand apart from the literal string "NULL".
func FormatTableData(data *sqlfixture.TableData) string {
	var b strings.Builder
	b.WriteString(Header(data.Table))
	b.WriteString("\n")

	if len(data.Rows) == 0 {
		b.WriteString(Dim("(empty)"))
		b.WriteString("\n")
		return b.String()
	}

	rows := make([][]string, len(data.Rows))
	for i, row := range data.Rows {
		cells := make([]string, len(row))
		for j, cell := range row {
			if cell == "NULL" {
				cells[j] = Dim("NULL")
			} else {
				cells[j] = cell
			}
		}
		rows[i] = cells
	}
	b.WriteString(RenderTable(data.Columns, rows))

	label := fmt.Sprintf("(%d rows)", len(data.Rows))
	if len(data.Rows) == 1 {
		label = "(1 row)"
	}
	b.WriteString(Dim(label))
	b.WriteString("\n")
	return b.String()
}

// FormatTableList renders table names one per line.
func FormatTableList(tables []string) string {
	if len(tables) == 0 {
		return Dim("(no tables)") + "\n"
	}
	var b strings.Builder
	for _, table := range tables {
		b.WriteString(table)
		b.WriteString("\n")
	}
	return b.String()
}
