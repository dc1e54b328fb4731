package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/pennywise-app/pennywise/internal/model"
)

func exportFixture() []model.Expense {
	return []model.Expense{
		{
			ID:          "a1",
			Amount:      1234.5,
			Category:    model.CategoryFood,
			Description: "Dinner, drinks, dessert",
			Date:        time.Date(2024, 1, 15, 19, 0, 0, 0, time.UTC),
		},
		{
			ID:          "b2",
			Amount:      20,
			Category:    model.CategoryTransportation,
			Description: "Bus pass",
			Date:        time.Date(2024, 1, 12, 8, 0, 0, 0, time.UTC),
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, exportFixture()))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, "Date,Category,Amount,Description", lines[0])
	assert.Equal(t, "1/15/24,Food,1234.50,Dinner; drinks; dessert", lines[1],
		"commas in descriptions become semicolons, amounts get two decimals")
	assert.Equal(t, "1/12/24,Transportation,20.00,Bus pass", lines[2])
}

func TestWriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, "Date,Category,Amount,Description\n", buf.String())
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, exportFixture()))

	// The export reads back with the persistence schema intact.
	var got []model.Expense
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, exportFixture(), got)

	assert.Contains(t, buf.String(), "\n  ", "output is indented for humans")
	assert.Contains(t, buf.String(), "2024-01-15T19:00:00Z", "dates are ISO-8601")
}

func TestWriteJSON_EmptyIsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, exportFixture()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Expenses")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"Date", "Category", "Amount", "Description"}, rows[0])
	assert.Equal(t, "1/15/24", rows[1][0])
	assert.Equal(t, "Food", rows[1][1])
	assert.Equal(t, "1234.5", rows[1][2])
	assert.Equal(t, "Dinner, drinks, dessert", rows[1][3], "XLSX needs no comma substitution")
}

func TestToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, ToFile(path, FormatCSV, exportFixture()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "Date,Category,Amount,Description\n"))
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Format
		wantErr bool
	}{
		{name: "csv", input: "csv", want: FormatCSV},
		{name: "json uppercase", input: "JSON", want: FormatJSON},
		{name: "xlsx", input: "xlsx", want: FormatXLSX},
		{name: "unknown", input: "pdf", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
