package cflow2d

import (
	"bufio"
	"fmt"
	"os"
)

// WriteCheckpoint writes the current state as a legacy ASCII VTK
// STRUCTURED_GRID file (spec §6 checkpoint format): point coordinates from
// the mesh, then cell data (Velocity as a vector, Density and Pressure as
// scalars). The write is atomic: the file is built at path+".part" and
// renamed into place only once complete, so a reader never observes a
// half-written checkpoint.
func WriteCheckpoint(path string, m *Mesh, s *State) error {
	tmp := path + ".part"
	f, err := os.Create(tmp)
	if err != nil {
		return newErr(IOError, "vtk", "WriteCheckpoint", "could not create checkpoint file", err)
	}

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, "# vtk DataFile Version 3.0")
	fmt.Fprintln(w, "cflow2d checkpoint")
	fmt.Fprintln(w, "ASCII")
	fmt.Fprintln(w, "DATASET STRUCTURED_GRID")
	fmt.Fprintf(w, "DIMENSIONS %d %d 1\n", m.Imx, m.Jmx)
	fmt.Fprintf(w, "POINTS %d float\n", m.Imx*m.Jmx)
	for j := 0; j < m.Jmx; j++ {
		for i := 0; i < m.Imx; i++ {
			fmt.Fprintf(w, "%g %g 0\n", m.GridX[i][j], m.GridY[i][j])
		}
	}

	numCells := (m.Imx - 1) * (m.Jmx - 1)
	fmt.Fprintf(w, "CELL_DATA %d\n", numCells)

	fmt.Fprintln(w, "VECTORS Velocity float")
	for j := 1; j <= s.Jmx-1; j++ {
		for i := 1; i <= s.Imx-1; i++ {
			fmt.Fprintf(w, "%g %g 0\n", s.U(i, j), s.V(i, j))
		}
	}

	fmt.Fprintln(w, "SCALARS Density float 1")
	fmt.Fprintln(w, "LOOKUP_TABLE default")
	for j := 1; j <= s.Jmx-1; j++ {
		for i := 1; i <= s.Imx-1; i++ {
			fmt.Fprintf(w, "%g\n", s.Rho(i, j))
		}
	}

	fmt.Fprintln(w, "SCALARS Pressure float 1")
	fmt.Fprintln(w, "LOOKUP_TABLE default")
	for j := 1; j <= s.Jmx-1; j++ {
		for i := 1; i <= s.Imx-1; i++ {
			fmt.Fprintf(w, "%g\n", s.P(i, j))
		}
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return newErr(IOError, "vtk", "WriteCheckpoint", "error flushing checkpoint file", err)
	}
	if err := f.Close(); err != nil {
		return newErr(IOError, "vtk", "WriteCheckpoint", "error closing checkpoint file", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return newErr(IOError, "vtk", "WriteCheckpoint", "could not rename checkpoint into place", err)
	}
	return nil
}

// ReadCheckpoint loads the Velocity/Density/Pressure cell data a prior
// WriteCheckpoint produced back into s, for restart (state_load_file,
// spec §6). The mesh itself is assumed already loaded and matching.
func ReadCheckpoint(path string, s *State) error {
	f, err := os.Open(path)
	if err != nil {
		return newErr(IOError, "vtk", "ReadCheckpoint", "could not open checkpoint file", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 1024*1024), 16*1024*1024)

	var section string
	i, j := 1, 1
	advance := func() {
		i++
		if i > s.Imx-1 {
			i = 1
			j++
		}
	}

	for sc.Scan() {
		line := sc.Text()
		switch {
		case line == "VECTORS Velocity float":
			section = "velocity"
			i, j = 1, 1
			continue
		case line == "SCALARS Density float 1":
			section = "density-header"
			continue
		case line == "SCALARS Pressure float 1":
			section = "pressure-header"
			continue
		case line == "LOOKUP_TABLE default":
			if section == "density-header" {
				section = "density"
				i, j = 1, 1
			} else if section == "pressure-header" {
				section = "pressure"
				i, j = 1, 1
			}
			continue
		}

		switch section {
		case "velocity":
			var u, v, w float64
			if _, err := fmt.Sscanf(line, "%g %g %g", &u, &v, &w); err == nil {
				s.SetU(i, j, u)
				s.SetV(i, j, v)
				advance()
			}
		case "density":
			var rho float64
			if _, err := fmt.Sscanf(line, "%g", &rho); err == nil {
				s.SetRho(i, j, rho)
				advance()
			}
		case "pressure":
			var p float64
			if _, err := fmt.Sscanf(line, "%g", &p); err == nil {
				s.SetP(i, j, p)
				advance()
			}
		}
	}
	if err := sc.Err(); err != nil {
		return newErr(IOError, "vtk", "ReadCheckpoint", "error scanning checkpoint file", err)
	}
	return nil
}
