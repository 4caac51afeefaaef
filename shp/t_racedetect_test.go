// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_race01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("Test race01")

	nchan := 2
	done := make(chan error, nchan)

	shapes := make([]*Shape, nchan)
	for i := 0; i < nchan; i++ {
		shapes[i] = Get("tet4", i+1)
	}
	io.Pforan("shapes = %v\n", shapes)

	for i := 0; i < nchan; i++ {
		go func(shape *Shape) {
			done <- shape.CalcAtR(tstX, []float64{0.25, 0.25, 0.25}, true)
		}(shapes[i])
	}

	for i := 0; i < nchan; i++ {
		if err := <-done; err != nil {
			tst.Errorf("test failed: %v\n", err)
		}
	}
	chk.Float64(tst, "J", 1e-15, shapes[0].J, shapes[1].J)
}
