package cflow2d

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteReadGridFileRoundTrips(t *testing.T) {
	m := uniformMesh(4, 3)
	path := filepath.Join(t.TempDir(), "grid.dat")
	if err := WriteGridFile(path, m); err != nil {
		t.Fatalf("WriteGridFile: %v", err)
	}
	got, err := ReadGridFile(path)
	if err != nil {
		t.Fatalf("ReadGridFile: %v", err)
	}
	if got.Imx != m.Imx || got.Jmx != m.Jmx {
		t.Fatalf("dimensions = (%d,%d), want (%d,%d)", got.Imx, got.Jmx, m.Imx, m.Jmx)
	}
	for i := 0; i < m.Imx; i++ {
		for j := 0; j < m.Jmx; j++ {
			if got.GridX[i][j] != m.GridX[i][j] || got.GridY[i][j] != m.GridY[i][j] {
				t.Fatalf("vertex (%d,%d) = (%v,%v), want (%v,%v)", i, j, got.GridX[i][j], got.GridY[i][j], m.GridX[i][j], m.GridY[i][j])
			}
		}
	}
}

func TestReadGridFileRejectsTruncatedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.dat")
	writeFile(t, path, "3 3\n0 0\n1 0\n")
	if _, err := ReadGridFile(path); err == nil {
		t.Fatal("expected an error reading a truncated grid file")
	}
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("writeFile(%s): %v", path, err)
	}
}
