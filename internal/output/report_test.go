package output

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateReport(t *testing.T) {
	var buf bytes.Buffer
	if err := GenerateReport(&buf, buildTestReport(t), "console-lite"); err != nil {
		t.Fatalf("GenerateReport error: %v", err)
	}
	if !strings.Contains(buf.String(), "TAX SUMMARY FY 2025-26") {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
}

func TestGenerateReport_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := GenerateReport(&buf, buildTestReport(t), "pdf")
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
	msg := err.Error()
	for _, want := range []string{"unsupported output format", `"pdf"`, "Try one of:", "console-lite", "yml"} {
		if !strings.Contains(msg, want) {
			t.Errorf("error %q missing %q", msg, want)
		}
	}
	assert.Zero(t, buf.Len())
}

func TestSaveReport(t *testing.T) {
	prev := nowFunc
	nowFunc = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	t.Cleanup(func() { nowFunc = prev })

	dir := t.TempDir()
	path, err := SaveReport(buildTestReport(t), "verbose", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "tax_report_2025_26_20260102_030405.txt"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "INCOME TAX COMPUTATION")

	path, err = SaveReport(buildTestReport(t), "csv-detailed", dir)
	require.NoError(t, err)
	assert.Equal(t, ".csv", filepath.Ext(path))

	_, err = SaveReport(buildTestReport(t), "docx", dir)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}
