package chip_test

import (
	"testing"

	sim "github.com/db47h/chipsim"
	"github.com/db47h/chipsim/chip"
)

type ramHarness struct {
	addr, cs, we, oe, data *sim.Line
	ram                    *chip.RAM
}

func newRAMHarness(t *testing.T, bits, addrBits int) *ramHarness {
	t.Helper()
	h := &ramHarness{
		addr: sim.NewLine("A", addrBits),
		cs:   sim.NewLine("CS", 1),
		we:   sim.NewLine("WE", 1),
		oe:   sim.NewLine("OE", 1),
		data: sim.NewLine("D", bits),
	}
	var err error
	h.ram, err = chip.NewRAM("ram0", bits, addrBits, chip.RAMPins{
		Addr: h.addr, CS: h.cs, WE: h.we, OE: h.oe, Data: h.data,
	})
	if err != nil {
		t.Fatal(err)
	}
	return h
}

func (h *ramHarness) pass(t *testing.T) {
	t.Helper()
	if err := h.ram.ReadInputs(); err != nil {
		t.Fatal(err)
	}
	if err := h.ram.WriteOutputs(); err != nil {
		t.Fatal(err)
	}
}

// The data bus is driven if and only if CS and OE are asserted and WE is not.
// Exhaustive over the 8 combinations.
func TestRAM_data_bus_arbitration(t *testing.T) {
	h := newRAMHarness(t, 8, 4)

	for i := 0; i < 8; i++ {
		cs := i&1 != 0
		oe := i&2 != 0
		we := i&4 != 0

		h.cs.SetBool(cs)
		h.oe.SetBool(oe)
		h.we.SetBool(we)
		h.pass(t)

		driven := cs && oe && !we
		if got := !h.data.Floating(); got != driven {
			t.Errorf("cs=%v oe=%v we=%v: driven=%v, want %v", cs, oe, we, got, driven)
		}
	}
}

func TestRAM_write_then_read(t *testing.T) {
	h := newRAMHarness(t, 8, 4)

	// write cycle: the host drives the bus
	h.addr.Set(0xc)
	h.cs.SetBool(true)
	h.we.SetBool(true)
	h.data.Set(0x77)
	h.pass(t)
	if !h.data.Floating() {
		t.Fatal("bus driven during a write cycle")
	}

	// read cycle at the same address
	h.we.SetBool(false)
	h.oe.SetBool(true)
	h.pass(t)
	if h.data.Floating() {
		t.Fatal("bus floating during a read cycle")
	}
	if got := h.data.Get(); got != 0x77 {
		t.Fatalf("read back %#x, want 0x77", got)
	}
}

func TestRAM_deselected_ignores_bus(t *testing.T) {
	h := newRAMHarness(t, 8, 4)
	h.ram.Poke(3, 0x11)

	// WE asserted but CS low: no store
	h.addr.Set(3)
	h.we.SetBool(true)
	h.data.Set(0xee)
	h.pass(t)
	if got := h.ram.Peek(3); got != 0x11 {
		t.Fatalf("deselected RAM stored %#x", got)
	}
}

func TestRAM_power_on_content(t *testing.T) {
	h := newRAMHarness(t, 8, 6)
	if h.ram.Size() != 64 || h.ram.DataBits() != 8 || h.ram.AddrBits() != 6 {
		t.Fatalf("geometry: size=%d bits=%d addrBits=%d", h.ram.Size(), h.ram.DataBits(), h.ram.AddrBits())
	}
	// random fill stays within the data width
	for i := 0; i < h.ram.Size(); i++ {
		if v := h.ram.Peek(i); v > 0xff {
			t.Fatalf("cell %d out of range: %#x", i, v)
		}
	}
}

func TestRAM_peek_poke(t *testing.T) {
	h := newRAMHarness(t, 8, 4)
	h.ram.Poke(9, 0x42)
	if got := h.ram.Peek(9); got != 0x42 {
		t.Fatalf("peek returned %#x", got)
	}
}

func TestNewRAM_configuration(t *testing.T) {
	h := newRAMHarness(t, 8, 4)

	pins := chip.RAMPins{Addr: h.addr, CS: h.cs, WE: h.we, OE: h.oe, Data: h.data}
	if _, err := chip.NewRAM("bad", 16, 4, pins); err == nil {
		t.Fatal("expected width mismatch error for D")
	}
	if _, err := chip.NewRAM("bad", 0, 4, pins); err == nil {
		t.Fatal("expected data width range error")
	}
	if _, err := chip.NewRAM("bad", 8, 0, pins); err == nil {
		t.Fatal("expected address width range error")
	}
	pins.OE = nil
	if _, err := chip.NewRAM("bad", 8, 4, pins); err == nil {
		t.Fatal("expected error for unwired pin")
	}
}
