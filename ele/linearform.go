// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/PaddySchmidt/gomat/tsr"
	"github.com/cpmech/gosl/chk"
	"golang.org/x/sync/errgroup"
)

// WeakForm computes the integrand at all points of a region for the gradient of one test function
//  Note: in parallel mode, weak forms are called concurrently
type WeakForm func(dv *tsr.Field2) (*tsr.Scalar, error)

// StressForm returns the weak form P : ∇v of a stress field
func StressForm(P *tsr.Field2) WeakForm {
	return func(dv *tsr.Field2) (*tsr.Scalar, error) {
		return tsr.DdotField(P, dv)
	}
}

// LinearForm integrates weak forms over a region
type LinearForm struct {
	Region *Region // region
}

// NewLinearForm returns a new linear form
func NewLinearForm(region *Region) *LinearForm {
	return &LinearForm{region}
}

// Integrate computes values[a][i][e] = Σp wf(eᵢ ⊗ ∂ha/∂X) dV
//  parallel -- integrate each pair (a, i) in its own goroutine
//  nworkers -- maximum number of goroutines; use zero for no limit
//  Note: points are summed in the same order in both modes
func (o *LinearForm) Integrate(wf WeakForm, parallel bool, nworkers int) (values [][][]float64, err error) {
	nverts := o.Region.Shape.Nverts
	values = make([][][]float64, nverts)
	for a := range values {
		values[a] = make([][]float64, 3)
		for i := range values[a] {
			values[a][i] = make([]float64, o.Region.Nele)
		}
	}
	if !parallel {
		for a := 0; a < nverts; a++ {
			for i := 0; i < 3; i++ {
				if err = o.integrate(values[a][i], wf, a, i); err != nil {
					return nil, err
				}
			}
		}
		return
	}
	var g errgroup.Group
	if nworkers > 0 {
		g.SetLimit(nworkers)
	}
	for a := 0; a < nverts; a++ {
		for i := 0; i < 3; i++ {
			g.Go(func() error {
				return o.integrate(values[a][i], wf, a, i)
			})
		}
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}
	return
}

// integrate computes the values of all elements for test function a along direction i
func (o *LinearForm) integrate(res []float64, wf WeakForm, a, i int) error {
	r := o.Region
	dv := tsr.NewField2(r.Batch)
	for q := range dv.V {
		for j := 0; j < 3; j++ {
			dv.V[q][i][j] = r.DhdX[q][a][j]
		}
	}
	w, err := wf(dv)
	if err != nil {
		return chk.Err("vertex %d, direction %d:\n%v", a, i, err)
	}
	if w == nil {
		return chk.Err("vertex %d, direction %d: weak form returned no values", a, i)
	}
	if err = r.Batch.Check("weak form", w.Batch); err != nil {
		return err
	}
	for e := 0; e < r.Nele; e++ {
		sum := 0.0
		for p := 0; p < r.Npts; p++ {
			q := r.Index(p, e)
			sum += w.V[q] * r.DV[q]
		}
		res[e] = sum
	}
	return nil
}
