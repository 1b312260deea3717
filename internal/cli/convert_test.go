package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConvertDefaultOutputPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	prevWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(prevWD) })

	in := filepath.Join(dir, "trips.txt")
	record := "37.7749, -122.4194, San Francisco, 15012024, 20012024\n"
	if err := os.WriteFile(in, []byte(record), 0644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	rootCmd.SetArgs([]string{"convert", in})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("convert returned error: %v", err)
	}

	// Without -o the document lands next to the input with the
	// extension swapped, not at another command's registered default.
	data, err := os.ReadFile(filepath.Join(dir, "trips.geojson"))
	if err != nil {
		t.Fatalf("input-derived output missing: %v", err)
	}
	if !strings.Contains(string(data), `"FeatureCollection"`) {
		t.Errorf("output is not a GeoJSON document:\n%s", data)
	}
	if _, err := os.Stat("output.geojson"); err == nil {
		t.Error("document landed in output.geojson instead of the input-derived path")
	}
}
