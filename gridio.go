package cflow2d

import (
	"bufio"
	"fmt"
	"os"
)

// ReadGridFile reads a structured vertex grid from the plain-text grid
// format (spec §6 grid file): a first line "imx jmx", followed by imx*jmx
// lines of "x y" in row-major order with j varying fastest (i.e. all jmx
// vertices of column i=0, then all of column i=1, ...).
func ReadGridFile(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, newErr(IOError, "gridio", "ReadGridFile", "could not open grid file", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 1024*1024), 16*1024*1024)

	if !sc.Scan() {
		return nil, newErr(IOError, "gridio", "ReadGridFile", "empty grid file", nil)
	}
	var imx, jmx int
	if _, err := fmt.Sscanf(sc.Text(), "%d %d", &imx, &jmx); err != nil {
		return nil, newErr(IOError, "gridio", "ReadGridFile", "malformed dimension line", err)
	}

	m := NewMesh(imx, jmx)
	for i := 0; i < imx; i++ {
		for j := 0; j < jmx; j++ {
			if !sc.Scan() {
				return nil, newErr(IOError, "gridio", "ReadGridFile", "grid file truncated", nil)
			}
			var x, y float64
			if _, err := fmt.Sscanf(sc.Text(), "%g %g", &x, &y); err != nil {
				return nil, newErr(IOError, "gridio", "ReadGridFile", "malformed vertex line", err)
			}
			m.GridX[i][j] = x
			m.GridY[i][j] = y
		}
	}
	if err := sc.Err(); err != nil {
		return nil, newErr(IOError, "gridio", "ReadGridFile", "error scanning grid file", err)
	}
	return m, nil
}

// WriteGridFile writes a Mesh back out in the same format ReadGridFile
// expects, used by tests for grid round-tripping.
func WriteGridFile(path string, m *Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return newErr(IOError, "gridio", "WriteGridFile", "could not create grid file", err)
	}
	defer f.Close()
	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%d %d\n", m.Imx, m.Jmx)
	for i := 0; i < m.Imx; i++ {
		for j := 0; j < m.Jmx; j++ {
			fmt.Fprintf(w, "%g %g\n", m.GridX[i][j], m.GridY[i][j])
		}
	}
	return w.Flush()
}
