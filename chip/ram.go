// Copyright 2026 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package chip

import (
	"math/rand"

	"github.com/db47h/chipsim"
	"github.com/pkg/errors"
)

// RAMPins lists the signal lines a RAM is wired to. Data is the bidirectional
// data bus. There is no clock: a RAM is level sensitive.
//
type RAMPins struct {
	Addr *chipsim.Line // address, addrBits wide
	CS   *chipsim.Line // chip select, active high
	WE   *chipsim.Line // write enable, active high
	OE   *chipsim.Line // output enable, active high

	Data *chipsim.Line // data bus, bits wide, bidirectional
}

// A RAM is a single port memory with a select input, allowing bigger memories
// to be assembled from smaller ones behind an address decoder. Cells are
// filled with random values at construction, like the power on content of a
// real memory array.
//
// A pass with CS and WE asserted stores the data bus value at the addressed
// cell during the read phase. The RAM drives the data bus only when CS and OE
// are asserted and WE is not; in every other combination the bus floats.
//
type RAM struct {
	label    string
	bits     int
	addrBits int
	mem      []uint64
	pins     RAMPins
	data     *chipsim.Driver // claim on the shared data bus

	addr int
	cs   bool
	oe   bool
	we   bool
}

// NewRAM returns a new RAM of 1<<addrBits cells of the given data width. Line
// widths are validated here once, a mismatch is fatal to the instance.
//
func NewRAM(label string, bits, addrBits int, pins RAMPins) (*RAM, error) {
	if bits < 1 || bits > 64 {
		return nil, errors.Errorf("%s: data width %d out of range", label, bits)
	}
	if addrBits < 1 || addrBits > 24 {
		return nil, errors.Errorf("%s: address width %d out of range", label, addrBits)
	}
	err := checkLines(label, []lineWidth{
		{pins.Addr, addrBits, "A"},
		{pins.CS, 1, "CS"},
		{pins.WE, 1, "WE"},
		{pins.OE, 1, "OE"},
		{pins.Data, bits, "D"},
	})
	if err != nil {
		return nil, err
	}
	m := &RAM{
		label:    label,
		bits:     bits,
		addrBits: addrBits,
		mem:      make([]uint64, 1<<uint(addrBits)),
		pins:     pins,
		data:     pins.Data.Driver(),
	}
	mask := ^uint64(0)
	if bits < 64 {
		mask = 1<<uint(bits) - 1
	}
	for i := range m.mem {
		m.mem[i] = rand.Uint64() & mask
	}
	return m, nil
}

// Label returns the instance label.
//
func (m *RAM) Label() string { return m.label }

// Size returns the cell count.
//
func (m *RAM) Size() int { return len(m.mem) }

// DataBits returns the data width in bits.
//
func (m *RAM) DataBits() int { return m.bits }

// AddrBits returns the address width in bits.
//
func (m *RAM) AddrBits() int { return m.addrBits }

// Peek returns the content of the given cell without going through the bus.
//
func (m *RAM) Peek(addr int) uint64 { return m.mem[addr] }

// Poke stores v at the given cell without going through the bus. Used by ROM
// style image loaders and tests.
//
func (m *RAM) Poke(addr int, v uint64) { m.mem[addr] = v }

// ReadInputs samples the control lines and performs a store when a write
// cycle is in progress.
//
func (m *RAM) ReadInputs() error {
	m.cs = m.pins.CS.GetBool()
	if !m.cs {
		return nil
	}
	m.addr = int(m.pins.Addr.Get())
	m.oe = m.pins.OE.GetBool()
	m.we = m.pins.WE.GetBool()
	if m.we {
		m.mem[m.addr] = m.pins.Data.Get()
	}
	return nil
}

// WriteOutputs drives the data bus with the addressed cell when selected for
// read, and floats it otherwise.
//
func (m *RAM) WriteOutputs() error {
	if m.cs && m.oe && !m.we {
		m.data.Set(m.mem[m.addr])
	} else {
		m.data.Float()
	}
	return nil
}
