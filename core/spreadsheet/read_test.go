package spreadsheet

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"stock-check/core/register"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func workbook(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		r := row
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &r))
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return &buf
}

func TestReadXLSX(t *testing.T) {
	buf := workbook(t, [][]any{
		{"Serialnumber", "State", "Name", "lastuser", "Ativo"},
		{"ABC12345", "Estoque", "NB-01", "IT", 9856},
		{},
		{"XYZ98765", "Ativo", "NB-02", "joao.silva", nil},
	})

	table, err := ReadTable(buf, "Lansweeper.XLSX")
	require.NoError(t, err)

	assert.Equal(t, []string{"Serialnumber", "State", "Name", "lastuser", "Ativo"}, table.Header)
	require.Len(t, table.Rows, 2, "blank rows are dropped")
	assert.Equal(t, "ABC12345", table.Rows[0]["Serialnumber"])
	assert.Equal(t, "9856", table.Rows[0]["Ativo"])
	assert.Nil(t, table.Rows[1]["Ativo"])

	idx, err := register.Build("Lansweeper.xlsx", table)
	require.NoError(t, err)
	rec, ok := idx.FindByAssetTag("9856")
	assert.True(t, ok)
	assert.Equal(t, "ABC12345", rec.Serial)
}

func TestReadXLSX_Corrupt(t *testing.T) {
	_, err := ReadTable(strings.NewReader("not a zip"), "register.xlsx")
	assert.ErrorIs(t, err, ErrUnreadable)
	assert.ErrorContains(t, err, "failed to open workbook")
}

func TestReadCSV(t *testing.T) {
	t.Run("Semicolon", func(t *testing.T) {
		data := "\ufeffSerialnumber;State;Name;lastuser\nABC12345;Em estoque;NB-01;IT\n;stock;blank;\n"
		table, err := ReadTable(strings.NewReader(data), "export.csv")
		require.NoError(t, err)

		assert.Equal(t, "Serialnumber", table.Header[0], "byte order mark is stripped")
		require.Len(t, table.Rows, 2)
		assert.Equal(t, "Em estoque", table.Rows[0]["State"])
		assert.Nil(t, table.Rows[1]["Serialnumber"])
	})

	t.Run("Comma With Short Rows", func(t *testing.T) {
		data := "Serialnumber,State,Name,lastuser\n\"QWE,55\",stock,NB-03\n"
		table, err := ReadCSV(strings.NewReader(data))
		require.NoError(t, err)
		require.Len(t, table.Rows, 1)
		assert.Equal(t, "QWE,55", table.Rows[0]["Serialnumber"])
		assert.Nil(t, table.Rows[0]["lastuser"])
	})
}

func TestReadTable_Unsupported(t *testing.T) {
	_, err := ReadTable(strings.NewReader(""), "register.pdf")
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}
