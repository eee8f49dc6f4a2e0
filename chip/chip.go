// Copyright 2026 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package chip implements clocked bridges between opaque chip cores and the
// signal graph.
//
// A bridge owns the full translation for one chip instance: it samples its
// input lines every pass, converts active low wires to the core's active high
// convention through a per chip polarity table, runs the core at most once
// per clock transition and only on the chip's triggering edge, and projects
// the last core output onto the output lines every write phase. Shared buses
// are floated unless the chip's arbitration rule says it owns the bus this
// pass.
//
package chip

import (
	"github.com/db47h/chipsim"
	"github.com/pkg/errors"
)

// Polarity tells the sampler whether a wire level is inverted on its way into
// a core input snapshot.
//
type Polarity bool

// Line polarities. An active low wire carries logic zero when asserted.
const (
	ActiveHigh Polarity = false
	ActiveLow  Polarity = true
)

// Sample reads the line as an active high level.
//
func (p Polarity) Sample(l *chipsim.Line) bool {
	if p == ActiveLow {
		return !l.GetBool()
	}
	return l.GetBool()
}

// checkLines validates the declared width of a set of wired lines. Called
// once from bridge constructors, never per pass.
//
func checkLines(label string, lines []lineWidth) error {
	for _, lw := range lines {
		if err := lw.l.Check(lw.bits); err != nil {
			return errors.Wrapf(err, "%s: pin %s", label, lw.name)
		}
	}
	return nil
}

type lineWidth struct {
	l    *chipsim.Line
	bits int
	name string
}
