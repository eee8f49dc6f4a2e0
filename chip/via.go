// Copyright 2026 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package chip

import (
	"github.com/db47h/chipsim"
	"github.com/pkg/errors"
)

// VIAInput is the input snapshot handed to a VIAStepper for one clock
// transition. Fields carry the electrical wire levels unmodified: a 6522
// class core deals with its own select line polarities.
//
type VIAInput struct {
	Data  uint8
	CS1   bool
	CS2   bool // level of the active low ~CS2 wire
	RS    uint8
	RW    bool // high = read
	Phi2  bool
	Reset bool
	PA    uint8
	PB    uint8
	CA1   bool
	CA2   bool
	CB1   bool
	CB2   bool
}

// VIAOutput is the snapshot of all VIA driven values. The CA2Mode and CB2Mode
// flags assert output mode for the bidirectional handshake lines: when clear
// the bridge floats the line so an external peripheral can drive it.
//
type VIAOutput struct {
	Data    uint8
	IRQ     bool // level of the active low ~IRQ wire
	PA      uint8
	PADir   uint8 // per bit port A direction, 1 = output
	PB      uint8
	PBDir   uint8 // per bit port B direction, 1 = output
	CA2     bool
	CA2Mode bool
	CB2     bool
	CB2Mode bool
}

// A VIAStepper runs one clock transition of a 6522 class peripheral interface
// core.
//
type VIAStepper interface {
	Step(VIAInput) (VIAOutput, error)
}

// VIAPins lists the signal lines a VIA bridge is wired to. Data, CA2 and CB2
// are bidirectional.
//
type VIAPins struct {
	CS1  *chipsim.Line // chip select 1, active high
	CS2  *chipsim.Line // chip select 2, active low
	RS   *chipsim.Line // register select, 4 bits
	RW   *chipsim.Line // read/write, high = read
	RES  *chipsim.Line // reset, active low
	PHI2 *chipsim.Line // clock input
	CA1  *chipsim.Line // port A handshake input
	CB1  *chipsim.Line // port B handshake input
	PAIn *chipsim.Line // port A sample, 8 bits
	PBIn *chipsim.Line // port B sample, 8 bits

	Data *chipsim.Line // data bus, 8 bits, bidirectional
	CA2  *chipsim.Line // port A handshake, bidirectional
	CB2  *chipsim.Line // port B handshake, bidirectional

	IRQ   *chipsim.Line // interrupt request, active low
	PA    *chipsim.Line // port A drive, 8 bits
	PADir *chipsim.Line // port A direction flags, 8 bits
	PB    *chipsim.Line // port B drive, 8 bits
	PBDir *chipsim.Line // port B direction flags, 8 bits
}

// A VIA bridges a 6522 class peripheral interface core to the signal graph.
// The core steps on the rising edge of PHI2, after the CPU has settled its
// lines on the preceding low half cycle. The input snapshot is refreshed
// every pass so that data bus arbitration follows the select lines even
// between clock edges.
//
type VIA struct {
	label string
	core  VIAStepper
	pins  VIAPins

	clk  chipsim.EdgeDetector
	data *chipsim.Driver // claims on the bidirectional lines
	ca2  *chipsim.Driver
	cb2  *chipsim.Driver
	in   VIAInput
	out  VIAOutput
}

// NewVIA returns a new VIA bridge driving the given core through the given
// pins. Line widths are validated here once, a mismatch is fatal to the
// instance.
//
func NewVIA(label string, core VIAStepper, pins VIAPins) (*VIA, error) {
	if core == nil {
		return nil, errors.Errorf("%s: nil VIA core", label)
	}
	err := checkLines(label, []lineWidth{
		{pins.CS1, 1, "CS1"},
		{pins.CS2, 1, "~CS2"},
		{pins.RS, 4, "RS"},
		{pins.RW, 1, "R/~W"},
		{pins.RES, 1, "~RESET"},
		{pins.PHI2, 1, "PHI2"},
		{pins.CA1, 1, "CA1"},
		{pins.CB1, 1, "CB1"},
		{pins.PAIn, 8, "PA_in"},
		{pins.PBIn, 8, "PB_in"},
		{pins.Data, 8, "D"},
		{pins.CA2, 1, "CA2"},
		{pins.CB2, 1, "CB2"},
		{pins.IRQ, 1, "~IRQ"},
		{pins.PA, 8, "PA"},
		{pins.PADir, 8, "PA_DIR"},
		{pins.PB, 8, "PB"},
		{pins.PBDir, 8, "PB_DIR"},
	})
	if err != nil {
		return nil, err
	}
	return &VIA{
		label: label,
		core:  core,
		pins:  pins,
		clk:   chipsim.NewEdgeDetector(chipsim.Rising),
		data:  pins.Data.Driver(),
		ca2:   pins.CA2.Driver(),
		cb2:   pins.CB2.Driver(),
	}, nil
}

// Label returns the instance label used to tag step failures.
//
func (b *VIA) Label() string { return b.label }

// ReadInputs samples the input lines and runs the core if the clock made its
// rising transition since the previous pass.
//
func (b *VIA) ReadInputs() error {
	b.in = VIAInput{
		Data:  uint8(b.pins.Data.Get()),
		CS1:   b.pins.CS1.GetBool(),
		CS2:   b.pins.CS2.GetBool(),
		RS:    uint8(b.pins.RS.Get()),
		RW:    b.pins.RW.GetBool(),
		Phi2:  b.pins.PHI2.GetBool(),
		Reset: b.pins.RES.GetBool(),
		PA:    uint8(b.pins.PAIn.Get()),
		PB:    uint8(b.pins.PBIn.Get()),
		CA1:   b.pins.CA1.GetBool(),
		CA2:   b.pins.CA2.GetBool(),
		CB1:   b.pins.CB1.GetBool(),
		CB2:   b.pins.CB2.GetBool(),
	}

	_, fire := b.clk.Sample(b.in.Phi2)
	if !fire {
		return nil
	}
	out, err := b.core.Step(b.in)
	if err != nil {
		return errors.Wrapf(err, "%s: VIA step", b.label)
	}
	b.out = out
	return nil
}

// WriteOutputs projects the last core output onto the output lines.
//
func (b *VIA) WriteOutputs() error {
	b.pins.IRQ.SetBool(b.out.IRQ)
	b.pins.PA.Set(uint64(b.out.PA))
	b.pins.PADir.Set(uint64(b.out.PADir))
	b.pins.PB.Set(uint64(b.out.PB))
	b.pins.PBDir.Set(uint64(b.out.PBDir))

	// handshake lines belong to the chip only when the core asserts output
	// mode for them
	if b.out.CA2Mode {
		b.ca2.SetBool(b.out.CA2)
	} else {
		b.ca2.Float()
	}
	if b.out.CB2Mode {
		b.cb2.SetBool(b.out.CB2)
	} else {
		b.cb2.Float()
	}

	// drive the data bus only when selected during a read cycle, judged on
	// the sampled input levels of this pass
	if b.in.RW && b.in.CS1 && !b.in.CS2 {
		b.data.Set(uint64(b.out.Data))
	} else {
		b.data.Float()
	}
	return nil
}
