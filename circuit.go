// Copyright 2026 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package chipsim

import "github.com/pkg/errors"

// A Circuit runs a set of nodes through the two phase evaluation pass.
//
// Scheduling is cooperative and single threaded: a pass either completes or
// the first node error aborts it. There is no local recovery, a faulted chip
// cannot be assumed to hold valid state.
//
type Circuit struct {
	ns     []Node
	passes uint
}

// NewCircuit builds a new circuit from the given nodes. Nodes keep the given
// order in both phases.
//
func NewCircuit(nodes ...Node) (*Circuit, error) {
	if len(nodes) == 0 {
		return nil, errors.New("empty node list")
	}
	return &Circuit{ns: nodes}, nil
}

// Step runs one evaluation pass: the read phase of every node, then the write
// phase of every node.
//
func (c *Circuit) Step() error {
	for _, n := range c.ns {
		if err := n.ReadInputs(); err != nil {
			return err
		}
	}
	for _, n := range c.ns {
		if err := n.WriteOutputs(); err != nil {
			return err
		}
	}
	c.passes++
	return nil
}

// Run runs n evaluation passes, stopping at the first error.
//
func (c *Circuit) Run(n int) error {
	for ; n > 0; n-- {
		if err := c.Step(); err != nil {
			return err
		}
	}
	return nil
}

// Passes returns the number of completed evaluation passes.
//
func (c *Circuit) Passes() uint { return c.passes }

// Size returns the node count in the circuit.
//
func (c *Circuit) Size() int { return len(c.ns) }
