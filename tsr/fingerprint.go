// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tsr

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint returns a content hash of a field, including its trailing dimensions
//  Note: the result is never zero; zero keys mean "do not memoise"
func Fingerprint(f *Field2) uint64 {
	d := xxhash.New()
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(f.Npts))
	d.Write(buf[:])
	binary.LittleEndian.PutUint64(buf[:], uint64(f.Nele))
	d.Write(buf[:])
	for q := range f.V {
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				binary.LittleEndian.PutUint64(buf[:], math.Float64bits(f.V[q][i][j]))
				d.Write(buf[:])
			}
		}
	}
	return nonzero(d.Sum64())
}

// SubKey derives the key of a quantity computed from the input identified by key
//  Note: SubKey(0, tag) == 0
func SubKey(key uint64, tag string) uint64 {
	if key == 0 {
		return 0
	}
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], key)
	d := xxhash.New()
	d.Write(buf[:])
	d.WriteString(tag)
	return nonzero(d.Sum64())
}

func nonzero(h uint64) uint64 {
	if h == 0 {
		return 1
	}
	return h
}
