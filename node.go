// Copyright 2026 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package chipsim

// A Node is a component taking part in the two phase evaluation pass.
//
// ReadInputs is the read phase: a node samples its input lines and may update
// its internal state, but must not drive any output line. WriteOutputs is the
// write phase: a node projects its internal state onto its output lines and
// must not mutate that state. The Circuit runs the read phase of every node
// before the write phase of any node, so all nodes observe a consistent
// signal snapshot within one pass.
//
type Node interface {
	ReadInputs() error
	WriteOutputs() error
}

// Edge selects the clock transition that triggers a clocked component.
//
type Edge int

// Clock edge polarities.
const (
	Rising Edge = iota
	Falling
)

// An EdgeDetector remembers a clock line's level across evaluation passes and
// reports level transitions. The initial remembered level is the inactive
// level for the configured edge, so the first active transition fires even if
// it happens on the very first pass.
//
type EdgeDetector struct {
	edge Edge
	last bool
}

// NewEdgeDetector returns a detector for the given triggering edge.
//
func NewEdgeDetector(edge Edge) EdgeDetector {
	return EdgeDetector{edge: edge, last: edge == Falling}
}

// Sample feeds the detector the clock level of the current pass. changed
// reports whether the level differs from the previous pass, fire whether that
// change is the triggering transition. Sampling an unchanged level is
// idempotent.
//
func (d *EdgeDetector) Sample(level bool) (changed, fire bool) {
	if level == d.last {
		return false, false
	}
	d.last = level
	if d.edge == Rising {
		return true, level
	}
	return true, !level
}

// Level returns the last sampled clock level.
//
func (d *EdgeDetector) Level() bool { return d.last }
