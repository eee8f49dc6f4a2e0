// Copyright 2026 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package keyboard

import (
	"github.com/db47h/chipsim"
	"github.com/pkg/errors"
)

const numRows = 10

// NoRow is the scan cursor value when no row line is selected. This happens
// during initialization or while the row select input is still settling.
const NoRow = numRows

// The shift key has a fixed position in the matrix.
const (
	shiftRow = 8
	shiftCol = 0
)

// Pins lists the signal lines a Keyboard is wired to.
//
type Pins struct {
	KeyIn    *chipsim.Line // character code, 16 bits
	KeyAvail *chipsim.Line // key available strobe
	Row      *chipsim.Line // one hot row select, 10 bits
	Clock    *chipsim.Line // key input clock; KeyAvail is checked on the rising edge

	Columns *chipsim.Line // column readback for the selected row, 8 bits, active low
}

// A Keyboard emulates a scan matrix keyboard as seen by the software that
// strobes one row at a time and reads back a column byte.
//
// Key presses arrive as character codes on KeyIn, latched into a FIFO queue
// on the rising edge of Clock when KeyAvail is asserted. The queue is drained
// one code per scan sweep: when the row select transitions to row 0 the
// matrix is rebuilt for the next pending code. One empty sweep is forced
// between two consecutive codes so that the scanning software sees a key
// release between them instead of one held key (the anti repeat gate).
//
// Codes with no entry in the binding table are dropped at dequeue time and
// yield an empty sweep.
//
type Keyboard struct {
	label  string
	matrix Matrix
	pins   Pins

	clk     chipsim.EdgeDetector
	queue   []uint16
	state   [numRows + 1]uint8
	row     int
	lastRow int
	sent    bool // a code was dequeued on the previous sweep
}

// New returns a new keyboard emulator using the given binding table. Line
// widths are validated here once, a mismatch is fatal to the instance.
//
func New(label string, m Matrix, pins Pins) (*Keyboard, error) {
	if m == nil {
		return nil, errors.Errorf("%s: nil key binding table", label)
	}
	for _, lw := range []struct {
		l    *chipsim.Line
		bits int
		name string
	}{
		{pins.KeyIn, 16, "KEY_IN"},
		{pins.KeyAvail, 1, "KEY_AVAIL"},
		{pins.Row, numRows, "ROW"},
		{pins.Clock, 1, "CLOCK"},
		{pins.Columns, 8, "Columns"},
	} {
		if err := lw.l.Check(lw.bits); err != nil {
			return nil, errors.Wrapf(err, "%s: pin %s", label, lw.name)
		}
	}
	return &Keyboard{
		label:   label,
		matrix:  m,
		pins:    pins,
		clk:     chipsim.NewEdgeDetector(chipsim.Rising),
		row:     NoRow,
		lastRow: -1,
	}, nil
}

// Label returns the instance label.
//
func (k *Keyboard) Label() string { return k.label }

// Pending returns the number of queued character codes.
//
func (k *Keyboard) Pending() int { return len(k.queue) }

// ReadInputs latches new key codes on the rising clock edge and tracks the
// scan cursor derived from the row select input. Both happen in the same
// pass order as declared here: a code latched in a pass is visible to that
// same pass's row 0 transition.
//
func (k *Keyboard) ReadInputs() error {
	if _, fire := k.clk.Sample(k.pins.Clock.GetBool()); fire {
		if k.pins.KeyAvail.GetBool() {
			k.queue = append(k.queue, uint16(k.pins.KeyIn.Get()))
		}
	}

	row := scanRow(k.pins.Row.Get())
	if row == k.lastRow {
		return nil
	}
	k.lastRow = row
	k.row = row
	if row != 0 {
		return nil
	}

	// start of a new sweep: rebuild the matrix
	k.state = [numRows + 1]uint8{}

	// anti repeat gate: force one empty sweep after every dequeue
	if k.sent {
		k.sent = false
		return nil
	}
	if len(k.queue) == 0 {
		return nil
	}
	code := k.queue[0]
	k.queue = k.queue[1:]
	if key, ok := k.matrix.Key(code); ok {
		k.state[key.Row] |= 1 << uint(key.Col)
		if key.Shift {
			k.state[shiftRow] |= 1 << shiftCol
		}
	}
	k.sent = true
	return nil
}

// WriteOutputs drives the column byte for the selected row. Columns are
// active low, so an idle row reads back as all ones, and so does the NoRow
// cursor.
//
func (k *Keyboard) WriteOutputs() error {
	k.pins.Columns.Set(uint64(^k.state[k.row]))
	return nil
}

// scanRow converts the one hot row select value to a row number. The lowest
// set bit wins when several are set, NoRow when none is.
func scanRow(v uint64) int {
	for i := 0; i < numRows; i++ {
		if v&(1<<uint(i)) != 0 {
			return i
		}
	}
	return NoRow
}
