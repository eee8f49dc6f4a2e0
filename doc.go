/*
Package chipsim provides the plumbing to hook clock driven chip models into an
event driven logic simulation built around discrete signal lines.

The simulation model is a flat set of Lines evaluated in passes: every Node
first samples its input lines (read phase), then every Node drives its output
lines (write phase). Chip bridges in the chip sub-package translate this level
sensitive world into the edge triggered, bus arbitrating behavior of a real
chip, calling an opaque chip core exactly once per clock transition and
tri-stating shared buses they do not own. The keyboard sub-package emulates a
scan matrix keyboard fed by an asynchronous key code stream.

*/
package chipsim
