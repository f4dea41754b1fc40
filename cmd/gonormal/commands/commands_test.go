package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/gonormal/report"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	root := NewRootCommand("test")
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestVersion(t *testing.T) {
	t.Parallel()

	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "gonormal test\n", out)
}

func TestSimulateLettersAndDescribe(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out", "letters.csv")

	out, _, err := execute(t, "simulate", "letters", "--output", path, "--seed", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote 1,186 days")

	out, _, err = execute(t, "describe", "--file", path, "--column", "Letters", "--format", "json")
	require.NoError(t, err)

	var results []report.Result
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "Letters", results[0].Column)
	assert.Equal(t, 1186, results[0].Summary.N)
	assert.InDelta(t, 3.0, results[0].Summary.Mean, 0.25)
	assert.InDelta(t, 0.05, results[0].Alpha, 0)
}

func TestSimulateLettersFlags(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "letters.csv")
	_, _, err := execute(t, "simulate", "letters",
		"--output", path, "--lambda", "1.5", "--start", "1910-01-01", "--end", "1910-01-10")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 11, bytes.Count(data, []byte("\n")))
	assert.True(t, bytes.HasPrefix(data, []byte("Date,Letters\n1910-01-01,")))
}

func TestSimulateLettersInvalid(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "simulate", "letters", "--lambda", "-1",
		"--output", filepath.Join(t.TempDir(), "x.csv"))
	require.Error(t, err)

	_, _, err = execute(t, "simulate", "letters", "--start", "1912-01-01", "--end", "1911-01-01",
		"--output", filepath.Join(t.TempDir(), "x.csv"))
	require.Error(t, err)
}

func TestSimulateBooksAndDescribeGroup(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "margin.csv")

	out, _, err := execute(t, "simulate", "books", "--output", path, "--count", "4000", "--seed", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote 4,000 books")
	assert.Contains(t, out, "mean whitespace_cm2")
	assert.Contains(t, out, "Simpson's paradox")

	out, _, err = execute(t, "describe", "--file", path,
		"--column", "whitespace_percentage", "--column", "whitespace_cm2",
		"--where", "genre=Lyric")
	require.NoError(t, err)
	assert.Contains(t, out, "whitespace_percentage")
	assert.Contains(t, out, "whitespace_cm2")
	assert.Contains(t, out, "jarque-bera")
}

func TestDescribeYAMLWithAlpha(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "sample.csv")
	require.NoError(t, os.WriteFile(path, []byte("value\n1\n2\n3\n4\n5\n6\n7\n8\n9\n"), 0o600))

	out, _, err := execute(t, "describe", "-f", path, "-c", "value", "--format", "yaml", "--alpha", "0.1")
	require.NoError(t, err)
	assert.Contains(t, out, "column: value")
	assert.Contains(t, out, "alpha: 0.1")
	assert.Contains(t, out, "normal: true")
}

func TestDescribeErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "sample.csv")
	require.NoError(t, os.WriteFile(path, []byte("y,label\n1,a\n2,b\nx,c\n"), 0o600))

	tests := []struct {
		name string
		args []string
	}{
		{"missing column flag", []string{"describe", "--file", path}},
		{"unknown column", []string{"describe", "--file", path, "--column", "z"}},
		{"text value", []string{"describe", "--file", path, "--column", "y"}},
		{"non-numeric column", []string{"describe", "--file", path, "--column", "label"}},
		{"bad format", []string{"describe", "--file", path, "--column", "y", "--format", "xml"}},
		{"bad alpha", []string{"describe", "--file", path, "--column", "y", "--alpha", "2"}},
		{"bad where", []string{"describe", "--file", path, "--column", "y", "--where", "label"}},
		{"missing file", []string{"describe", "--file", filepath.Join(dir, "absent.csv"), "--column", "y"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
		})
	}
}

func TestDescribeEmptySelection(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "sample.csv")
	require.NoError(t, os.WriteFile(path, []byte("genre,y\nLyric,1\nLyric,2\n"), 0o600))

	_, _, err := execute(t, "describe", "--file", path, "--column", "y", "--where", "genre=Prose")
	require.Error(t, err)
}

func TestPlot(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	data := filepath.Join(dir, "letters.csv")
	chart := filepath.Join(dir, "charts", "letters.html")

	_, _, err := execute(t, "simulate", "letters", "--output", data)
	require.NoError(t, err)

	out, _, err := execute(t, "plot", "--file", data, "--column", "Letters", "--lambda", "3", "--output", chart)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote histogram of Letters")

	html, err := os.ReadFile(chart)
	require.NoError(t, err)
	assert.Contains(t, string(html), "Poisson pmf")
}

func TestPlotLeavesNoChartOnError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	data := filepath.Join(dir, "sample.csv")
	chart := filepath.Join(dir, "empty.html")
	require.NoError(t, os.WriteFile(data, []byte("y\nNA\n\n"), 0o600))

	_, _, err := execute(t, "plot", "--file", data, "--column", "y", "--output", chart)
	require.Error(t, err)

	_, statErr := os.Stat(chart)
	assert.True(t, os.IsNotExist(statErr), "chart should not exist, stat returned %v", statErr)
}

func TestDescribeSeveralColumns(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "sample.csv")
	content := "genre,a,b\nLyric,1,10\nProse,2,20\nLyric,3,\nLyric,5,40\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	out, _, err := execute(t, "describe", "--file", path, "-c", "b", "-c", "a",
		"--where", "genre=Lyric", "--format", "json")
	require.NoError(t, err)

	var results []report.Result
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 2)
	assert.Equal(t, "b", results[0].Column)
	assert.Equal(t, 2, results[0].Summary.N)
	assert.Equal(t, 25.0, results[0].Summary.Mean)
	assert.Equal(t, "a", results[1].Column)
	assert.Equal(t, 3, results[1].Summary.N)
	assert.Equal(t, 3.0, results[1].Summary.Mean)
}

func TestJSONLogging(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "letters.csv")
	_, logs, err := execute(t, "simulate", "letters", "--output", path, "--log-format", "json")
	require.NoError(t, err)

	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(logs), &record))
	assert.Equal(t, "simulated letters", record["msg"])
	assert.InDelta(t, 1186.0, record["days"], 0)
}

func TestConfigFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	output := filepath.Join(dir, "letters.csv")
	configPath := filepath.Join(dir, "gonormal.yaml")
	content := "letters:\n  start_date: \"1909-01-01\"\n  end_date: \"1909-01-31\"\n  output: " + output + "\n"
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))

	out, _, err := execute(t, "--config", configPath, "simulate", "letters")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote 31 days to "+output)
}
