// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ele implements integration of weak forms over regions of cells
package ele

import (
	"github.com/PaddySchmidt/gomat/shp"
	"github.com/PaddySchmidt/gomat/tsr"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Region holds shape functions and their gradients at all integration points of a set of cells
//  Note: entry q = e * Npts + p holds point p of element e
type Region struct {
	tsr.Batch                // number of points and elements
	Shape     *shp.Shape     // shape of all cells
	Ips       []shp.Ipoint   // integration points
	H         [][]float64    // [npts][nverts] shape functions
	DhdX      [][][3]float64 // [q][nverts] gradients of shape functions w.r.t undeformed coordinates
	DV        []float64      // [q] differential volumes J w
}

// NewRegion computes shape functions, gradients and volumes of cells
//  X -- [nele][ndim][nverts] undeformed coordinates of vertices of each cell
func NewRegion(shape *shp.Shape, ips []shp.Ipoint, X [][][]float64) (o *Region, err error) {
	if shape == nil {
		return nil, chk.Err("region requires a shape")
	}
	if len(ips) == 0 || len(X) == 0 {
		return nil, chk.Err("region requires integration points and cells. nips = %d, nele = %d", len(ips), len(X))
	}
	shape = shape.GetCopy()
	o = &Region{Batch: tsr.Batch{Npts: len(ips), Nele: len(X)}, Shape: shape, Ips: ips}
	o.H = make([][]float64, len(ips))
	o.DhdX = make([][][3]float64, o.Size())
	o.DV = make([]float64, o.Size())
	for e, x := range X {
		for _, row := range x {
			if len(row) != shape.Nverts {
				return nil, chk.Err("cell %d: coordinates of %d vertices are required by %s", e, shape.Nverts, shape.Type)
			}
		}
		for p, ip := range ips {
			if err = shape.CalcAtIp(x, ip, true); err != nil {
				return nil, chk.Err("cell %d, point %d:\n%v", e, p, err)
			}
			if shape.J <= 0 {
				return nil, chk.Err("cell %d, point %d: Jacobian must be positive. J = %g", e, p, shape.J)
			}
			q := o.Index(p, e)
			if e == 0 {
				o.H[p] = append([]float64{}, shape.S...)
			}
			o.DhdX[q] = make([][3]float64, shape.Nverts)
			for a := 0; a < shape.Nverts; a++ {
				copy(o.DhdX[q][a][:], shape.G[a])
			}
			o.DV[q] = shape.J * ip[3]
		}
	}
	return
}

// Volumes returns the volume of each cell
func (o *Region) Volumes() (vol []float64) {
	vol = make([]float64, o.Nele)
	for e := 0; e < o.Nele; e++ {
		for p := 0; p < o.Npts; p++ {
			vol[e] += o.DV[o.Index(p, e)]
		}
	}
	return
}

// DefGrad computes the deformation gradient F = I + Σa ua ⊗ ∂ha/∂X
//  u -- [nele][nverts][3] displacements of vertices of each cell
func (o *Region) DefGrad(u [][][3]float64) (F *tsr.Field2, err error) {
	if len(u) != o.Nele {
		return nil, &tsr.ShapeError{What: "displacements", Expected: io.Sf("%d cells", o.Nele), Got: io.Sf("%d cells", len(u))}
	}
	F = tsr.Identity(o.Batch)
	for e, ue := range u {
		if len(ue) != o.Shape.Nverts {
			return nil, &tsr.ShapeError{What: io.Sf("displacements of cell %d", e), Expected: io.Sf("%d vertices", o.Shape.Nverts), Got: io.Sf("%d vertices", len(ue))}
		}
		for p := 0; p < o.Npts; p++ {
			q := o.Index(p, e)
			for a, g := range o.DhdX[q] {
				for i := 0; i < 3; i++ {
					for j := 0; j < 3; j++ {
						F.V[q][i][j] += ue[a][i] * g[j]
					}
				}
			}
		}
	}
	return
}
