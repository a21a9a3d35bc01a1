package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintTable(t *testing.T) {
	var buf bytes.Buffer

	headers := []string{"PATH", "MEMBERS"}
	rows := [][]string{
		{"/Projects", "2"},
		{"/A", "10"},
	}

	printTable(&buf, headers, rows)

	want := "PATH       MEMBERS\n" +
		"/Projects  2\n" +
		"/A         10\n"
	assert.Equal(t, want, buf.String())
}

func TestPrintTable_NoRows(t *testing.T) {
	var buf bytes.Buffer

	printTable(&buf, []string{"PATH"}, nil)
	assert.Equal(t, "PATH\n", buf.String())
}

func TestStatusf(t *testing.T) {
	old := flagQuiet
	t.Cleanup(func() { flagQuiet = old })

	var buf bytes.Buffer

	flagQuiet = false
	statusf(&buf, "%d folders\n", 3)
	assert.Equal(t, "3 folders\n", buf.String())

	buf.Reset()

	flagQuiet = true
	statusf(&buf, "%d folders\n", 3)
	assert.Empty(t, buf.String())
}
