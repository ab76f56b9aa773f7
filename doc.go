// Package cflow2d implements a 2-D cell-centered finite-volume solver for
// the compressible Euler and Navier-Stokes equations on a structured
// curvilinear mesh, using flux-vector-splitting schemes (Van Leer,
// LDFSS(0)) and explicit time integration (forward Euler, classic RK4).
package cflow2d
