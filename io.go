// Copyright 2026 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package chipsim

type input struct {
	l  *Line
	fn func() uint64
	v  uint64
}

func (i *input) ReadInputs() error {
	i.v = i.fn()
	return nil
}

func (i *input) WriteOutputs() error {
	i.l.Set(i.v)
	return nil
}

// Input creates a function based input node: fn is sampled in the read phase
// and its value drives l in the write phase, so downstream nodes see it on
// the next pass.
//
func Input(l *Line, fn func() uint64) Node {
	return &input{l: l, fn: fn}
}

// InputBool creates a 1 bit function based input node.
//
func InputBool(l *Line, fn func() bool) Node {
	return &input{l: l, fn: func() uint64 {
		if fn() {
			return 1
		}
		return 0
	}}
}

type output struct {
	l  *Line
	fn func(uint64)
}

func (o *output) ReadInputs() error {
	o.fn(o.l.Get())
	return nil
}

func (o *output) WriteOutputs() error { return nil }

// Output creates an output or probe node. fn is called with the line value on
// every read phase.
//
func Output(l *Line, fn func(uint64)) Node {
	return &output{l: l, fn: fn}
}
