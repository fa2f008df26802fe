package importer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func workbook(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		r := row
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &r))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestReadRows(t *testing.T) {
	buf := workbook(t, [][]interface{}{
		{"First Name", "Last Name", "Grade"},
		{" Ann ", "Lee", 9},
		{"", "", ""},
		{"Ben", "Cho"},
	})

	rows, err := ReadRows(buf)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, 2, rows[0].Number)
	assert.Equal(t, "Ann", rows[0].Get("First Name"))
	assert.Equal(t, "9", rows[0].Get("grade"))

	assert.Equal(t, 4, rows[1].Number)
	assert.Equal(t, "", rows[1].Get("Grade"))
}

func TestReadRowsEmptyWorkbook(t *testing.T) {
	_, err := ReadRows(workbook(t, nil))
	assert.ErrorIs(t, err, ErrEmptyWorkbook)
}

func TestReadRowsRejectsGarbage(t *testing.T) {
	_, err := ReadRows(bytes.NewBufferString("not a workbook"))
	assert.Error(t, err)
}

func TestNormalizeHeader(t *testing.T) {
	assert.Equal(t, "guardian_email", NormalizeHeader("  Guardian   Email "))
}
