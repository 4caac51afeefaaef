// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tsr

import (
	"fmt"

	"github.com/cpmech/gosl/chk"
)

// Batch holds the trailing dimensions of batched tensors
//  Note: point p of element e is stored at q = e*Npts + p
type Batch struct {
	Npts int // number of integration points per element
	Nele int // number of elements
}

// Size returns the number of entries in batch
func (o Batch) Size() int { return o.Npts * o.Nele }

// Index returns the flat index of point p in element e
func (o Batch) Index(p, e int) int { return e*o.Npts + p }

// Check returns a *ShapeError if other does not match this batch
func (o Batch) Check(what string, other Batch) error {
	if o != other {
		return &ShapeError{What: what, Expected: o.String(), Got: other.String()}
	}
	return nil
}

// String returns a representation of the trailing dimensions
func (o Batch) String() string { return fmt.Sprintf("(%d points, %d elements)", o.Npts, o.Nele) }

// ShapeError reports inconsistent trailing dimensions or vector lengths
type ShapeError struct {
	What     string // what was being checked
	Expected string // expected shape
	Got      string // given shape
}

// Error implements error
func (o *ShapeError) Error() string {
	return fmt.Sprintf("shape mismatch in %s: expected %s but got %s", o.What, o.Expected, o.Got)
}

// Scalar holds a scalar per batch entry
type Scalar struct {
	Batch
	V []float64
}

// Field2 holds a second order tensor per batch entry
type Field2 struct {
	Batch
	V []Ten2
}

// Field4 holds a fourth order tensor per batch entry
type Field4 struct {
	Batch
	V []Ten4
}

// NewScalar allocates a zero scalar field
func NewScalar(b Batch) *Scalar {
	return &Scalar{b, make([]float64, b.Size())}
}

// NewField2 allocates a zero second order tensor field
func NewField2(b Batch) *Field2 {
	return &Field2{b, make([]Ten2, b.Size())}
}

// NewField4 allocates a zero fourth order tensor field
func NewField4(b Batch) *Field4 {
	return &Field4{b, make([]Ten4, b.Size())}
}

// Fill returns a field with a copy of a at every entry
func Fill(b Batch, a Ten2) *Field2 {
	o := NewField2(b)
	for q := range o.V {
		o.V[q] = a
	}
	return o
}

// Identity returns the identity tensor replicated over b
func Identity(b Batch) *Field2 {
	return Fill(b, Eye())
}

// GetCopy returns a deep copy of this field
func (o *Field2) GetCopy() *Field2 {
	c := &Field2{o.Batch, make([]Ten2, len(o.V))}
	copy(c.V, o.V)
	return c
}

// IsZero tells whether all entries are zero
func (o *Field4) IsZero() bool {
	for q := range o.V {
		if !IsZero4(&o.V[q]) {
			return false
		}
	}
	return true
}

// batched operations /////////////////////////////////////////////////////////////////////////////

// TrField returns the trace at every entry
func TrField(a *Field2) *Scalar {
	s := NewScalar(a.Batch)
	for q := range a.V {
		s.V[q] = Tr(&a.V[q])
	}
	return s
}

// DetField returns the determinant at every entry
func DetField(a *Field2) *Scalar {
	s := NewScalar(a.Batch)
	for q := range a.V {
		s.V[q] = Det(&a.V[q])
	}
	return s
}

// InvField returns the inverse at every entry
func InvField(a *Field2) (ai *Field2, err error) {
	ai = NewField2(a.Batch)
	for q := range a.V {
		_, err = Inv(&ai.V[q], &a.V[q])
		if err != nil {
			return nil, chk.Err("entry %d: %v", q, err)
		}
	}
	return
}

// DotField returns a · b at every entry
func DotField(a, b *Field2) (*Field2, error) {
	if err := a.Check("DotField", b.Batch); err != nil {
		return nil, err
	}
	c := NewField2(a.Batch)
	for q := range a.V {
		c.V[q] = Dot(&a.V[q], &b.V[q])
	}
	return c, nil
}

// DotTField returns a · bᵗ at every entry
func DotTField(a, b *Field2) (*Field2, error) {
	if err := a.Check("DotTField", b.Batch); err != nil {
		return nil, err
	}
	c := NewField2(a.Batch)
	for q := range a.V {
		c.V[q] = DotT(&a.V[q], &b.V[q])
	}
	return c, nil
}

// DdotField returns a : b at every entry
func DdotField(a, b *Field2) (*Scalar, error) {
	if err := a.Check("DdotField", b.Batch); err != nil {
		return nil, err
	}
	s := NewScalar(a.Batch)
	for q := range a.V {
		s.V[q] = Ddot(&a.V[q], &b.V[q])
	}
	return s, nil
}

// DevField returns dev(a) at every entry
func DevField(a *Field2) *Field2 {
	c := NewField2(a.Batch)
	for q := range a.V {
		c.V[q] = Dev(&a.V[q])
	}
	return c
}

// AddField2 returns the entrywise sum of all fields
func AddField2(fields ...*Field2) (*Field2, error) {
	if len(fields) == 0 {
		return nil, chk.Err("AddField2 requires at least one field")
	}
	res := fields[0].GetCopy()
	for k, f := range fields[1:] {
		if err := res.Check(fmt.Sprintf("AddField2 (term %d)", k+1), f.Batch); err != nil {
			return nil, err
		}
		for q := range f.V {
			AddTo(&res.V[q], 1, &f.V[q])
		}
	}
	return res, nil
}

// AddField4 returns the entrywise sum of all fields
func AddField4(fields ...*Field4) (*Field4, error) {
	if len(fields) == 0 {
		return nil, chk.Err("AddField4 requires at least one field")
	}
	res := NewField4(fields[0].Batch)
	for k, f := range fields {
		if err := res.Check(fmt.Sprintf("AddField4 (term %d)", k), f.Batch); err != nil {
			return nil, err
		}
		for q := range f.V {
			AddTo4(&res.V[q], 1, &f.V[q])
		}
	}
	return res, nil
}
