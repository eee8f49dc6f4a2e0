// Copyright 2026 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package chip

import (
	"github.com/db47h/chipsim"
	"github.com/pkg/errors"
)

// CPUInput is the input snapshot handed to a CPUStepper for one clock
// transition. All fields are active high regardless of the polarity of the
// wire they were sampled from.
//
type CPUInput struct {
	Ready bool
	Reset bool
	NMI   bool
	IRQ   bool
	Data  uint8
}

// CPUOutput is the snapshot of all CPU driven values. It is produced once per
// triggering clock edge and re-projected onto the output lines every write
// phase until the next edge.
//
type CPUOutput struct {
	Addr uint16
	Data uint8
	RW   bool // high during read cycles, low during write cycles
	Sync bool // high during instruction fetch cycles
}

// A CPUStepper runs one clock transition of a 6502 class CPU core. Steppers
// are opaque: deterministic, no side effects beyond the returned snapshot.
//
type CPUStepper interface {
	Step(CPUInput) (CPUOutput, error)
}

// CPUPins lists the signal lines a CPU bridge is wired to. Data is the
// bidirectional data bus: sampled in the read phase, driven or floated in the
// write phase.
//
type CPUPins struct {
	RDY  *chipsim.Line // ready, active high
	RES  *chipsim.Line // reset, active low
	NMI  *chipsim.Line // non maskable interrupt, active low
	IRQ  *chipsim.Line // interrupt request, active low
	PHI0 *chipsim.Line // clock input

	Data *chipsim.Line // data bus, 8 bits, bidirectional
	Addr *chipsim.Line // address bus, 16 bits
	RW   *chipsim.Line // read/write, high = read
	Sync *chipsim.Line // instruction fetch marker
	PHI1 *chipsim.Line // inverted clock for external components
	PHI2 *chipsim.Line // buffered clock for external components
}

// 6502 control line polarities: the core wants active high levels while the
// reset and interrupt wires are active low.
var cpuPolarity = struct{ rdy, res, nmi, irq Polarity }{
	rdy: ActiveHigh,
	res: ActiveLow,
	nmi: ActiveLow,
	irq: ActiveLow,
}

// A CPU bridges a 6502 class core to the signal graph. The core steps on the
// falling edge of PHI0; between edges the output lines hold their last driven
// values. The data bus belongs to the CPU only during write cycles and floats
// during read cycles, when the addressed device drives it instead.
//
type CPU struct {
	label string
	core  CPUStepper
	pins  CPUPins

	clk  chipsim.EdgeDetector
	data *chipsim.Driver // claim on the shared data bus
	in   CPUInput
	out  CPUOutput
}

// NewCPU returns a new CPU bridge driving the given core through the given
// pins. Line widths are validated here once, a mismatch is fatal to the
// instance.
//
func NewCPU(label string, core CPUStepper, pins CPUPins) (*CPU, error) {
	if core == nil {
		return nil, errors.Errorf("%s: nil CPU core", label)
	}
	err := checkLines(label, []lineWidth{
		{pins.RDY, 1, "RDY"},
		{pins.RES, 1, "~RESET"},
		{pins.NMI, 1, "~NMI"},
		{pins.IRQ, 1, "~IRQ"},
		{pins.PHI0, 1, "PHI0"},
		{pins.Data, 8, "D"},
		{pins.Addr, 16, "AD"},
		{pins.RW, 1, "R/~W"},
		{pins.Sync, 1, "SYNC"},
		{pins.PHI1, 1, "PHI1"},
		{pins.PHI2, 1, "PHI2"},
	})
	if err != nil {
		return nil, err
	}
	return &CPU{
		label: label,
		core:  core,
		pins:  pins,
		clk:   chipsim.NewEdgeDetector(chipsim.Falling),
		data:  pins.Data.Driver(),
	}, nil
}

// Label returns the instance label used to tag step failures.
//
func (b *CPU) Label() string { return b.label }

// ReadInputs samples the input lines and runs the core if the clock made its
// falling transition since the previous pass.
//
func (b *CPU) ReadInputs() error {
	changed, fire := b.clk.Sample(b.pins.PHI0.GetBool())
	if !changed {
		return nil
	}

	b.in = CPUInput{
		Ready: cpuPolarity.rdy.Sample(b.pins.RDY),
		Reset: cpuPolarity.res.Sample(b.pins.RES),
		NMI:   cpuPolarity.nmi.Sample(b.pins.NMI),
		IRQ:   cpuPolarity.irq.Sample(b.pins.IRQ),
		Data:  uint8(b.pins.Data.Get()),
	}

	if !fire {
		return nil
	}
	out, err := b.core.Step(b.in)
	if err != nil {
		return errors.Wrapf(err, "%s: CPU step", b.label)
	}
	b.out = out
	return nil
}

// WriteOutputs projects the last core output onto the output lines.
//
func (b *CPU) WriteOutputs() error {
	b.pins.Addr.Set(uint64(b.out.Addr))
	b.pins.Sync.SetBool(b.out.Sync)
	b.pins.RW.SetBool(b.out.RW)

	// the data bus is ours only during write cycles
	if !b.out.RW {
		b.data.Set(uint64(b.out.Data))
	} else {
		b.data.Float()
	}

	b.pins.PHI2.SetBool(b.clk.Level())
	b.pins.PHI1.SetBool(!b.clk.Level())
	return nil
}
