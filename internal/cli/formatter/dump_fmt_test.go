package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/sqlfixture"
)

func TestFormatTableData_RendersHeaderRowsAndCount(t *testing.T) {
	data := &sqlfixture.TableData{
		Table:   "people",
		Columns: []string{"id", "name"},
		Rows:    [][]string{{"1", "ada"}, {"2", "NULL"}},
	}

	out := stripANSI(FormatTableData(data))
	assert.Contains(t, out, "PEOPLE")
	assert.Contains(t, out, "id  name")
	assert.Contains(t, out, "ada")
	assert.Contains(t, out, "NULL")
	assert.Contains(t, out, "(2 rows)")
}

func TestFormatTableData_SingularRowCount(t *testing.T) {
	data := &sqlfixture.TableData{
		Table:   "people",
		Columns: []string{"id"},
		Rows:    [][]string{{"1"}},
	}

	assert.Contains(t, stripANSI(FormatTableData(data)), "(1 row)")
}

func TestFormatTableData_EmptyTable(t *testing.T) {
	data := &sqlfixture.TableData{Table: "people", Columns: []string{"id"}}

	out := stripANSI(FormatTableData(data))
	assert.Contains(t, out, "PEOPLE")
	assert.Contains(t, out, "(empty)")
}

func TestFormatTableList(t *testing.T) {
	assert.Equal(t, "apple\nzebra\n", stripANSI(FormatTableList([]string{"apple", "zebra"})))
	assert.Contains(t, stripANSI(FormatTableList(nil)), "(no tables)")
}
