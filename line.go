// Copyright 2026 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package chipsim

import "github.com/pkg/errors"

// A Line is a named signal wire of fixed bit width. A Line carries either a
// driven value or floats (tri-state): floating is a state of its own, distinct
// from every driven bit pattern, and is how a component relinquishes a shared
// bus. Reading a floating line returns the last driven value.
//
type Line struct {
	name string
	bits int
	mask uint64
	v    uint64
	z    bool
	ds   []*Driver
}

// NewLine returns a new line of the given width. Lines start driven low.
// NewLine panics if bits is not in the 1 to 64 range.
//
func NewLine(name string, bits int) *Line {
	if bits < 1 || bits > 64 {
		panic("line " + name + ": bit width out of range")
	}
	mask := ^uint64(0)
	if bits < 64 {
		mask = 1<<uint(bits) - 1
	}
	return &Line{name: name, bits: bits, mask: mask}
}

// Name returns the line name.
//
func (l *Line) Name() string { return l.name }

// Bits returns the line width in bits.
//
func (l *Line) Bits() int { return l.bits }

// Check validates the line width against the width expected by the component
// being wired to it. This is a one time setup check: components call it in
// their constructors, never per pass. Check reports an error for a nil line
// so that constructors can validate optional wiring in one place.
//
func (l *Line) Check(bits int) error {
	if l == nil {
		return errors.Errorf("line not wired (%d bits expected)", bits)
	}
	if l.bits != bits {
		return errors.Errorf("line %s: expected %d bits, got %d", l.name, bits, l.bits)
	}
	return nil
}

// Get returns the line value, masked to the line width.
//
func (l *Line) Get() uint64 { return l.v }

// GetBool returns true if the line value is non zero.
//
func (l *Line) GetBool() bool { return l.v != 0 }

// Set drives the line with the given value. Bits beyond the line width are
// discarded. Set clears the floating state.
//
func (l *Line) Set(v uint64) {
	l.v = v & l.mask
	l.z = false
}

// SetBool drives the line high or low. Set clears the floating state.
//
func (l *Line) SetBool(b bool) {
	if b {
		l.Set(1)
	} else {
		l.Set(0)
	}
}

// Float releases the line: no component is driving it. The last driven value
// remains readable, which mimics the residual charge seen on a real bus.
//
func (l *Line) Float() { l.z = true }

// Floating returns true if the line is not driven by any component.
//
func (l *Line) Floating() bool { return l.z }

// A Driver is one component's handle on a shared line. Set and Float act on
// this driver's claim only: the line is floating when no driver asserts it,
// and carries the value of the first wired asserting driver otherwise (two
// drivers asserting the same line at once is a wiring bug).
//
// Components wire a Driver per bidirectional pin at construction; plain Set
// and Float on the Line itself are for lines with a single owner.
//
type Driver struct {
	l  *Line
	on bool
	v  uint64
}

// Driver allocates a new driver handle on the line. A fresh driver does not
// assert the line.
//
func (l *Line) Driver() *Driver {
	d := &Driver{l: l}
	l.ds = append(l.ds, d)
	return d
}

// Set asserts the line with the given value on behalf of this driver.
//
func (d *Driver) Set(v uint64) {
	d.on = true
	d.v = v
	d.l.resolve()
}

// SetBool asserts the line high or low on behalf of this driver.
//
func (d *Driver) SetBool(b bool) {
	if b {
		d.Set(1)
	} else {
		d.Set(0)
	}
}

// Float withdraws this driver's claim on the line.
//
func (d *Driver) Float() {
	d.on = false
	d.l.resolve()
}

func (l *Line) resolve() {
	for _, d := range l.ds {
		if d.on {
			l.v = d.v & l.mask
			l.z = false
			return
		}
	}
	l.z = true
}
