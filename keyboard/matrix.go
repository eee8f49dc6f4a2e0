// Copyright 2026 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package keyboard emulates the electrical row scanning behavior of a matrix
// keyboard, fed by an asynchronous stream of character codes.
//
package keyboard

// A Key locates one physical key in the scan matrix.
//
type Key struct {
	Name  string // informational only
	Row   int    // matrix row, 0 to 9
	Col   int    // matrix column, 0 to 7
	Shift bool   // key is reached through the shift key
}

// A Matrix maps character codes to matrix keys. Codes without a mapping
// report ok false and are silently ignored by the scanner.
//
type Matrix interface {
	Key(code uint16) (k Key, ok bool)
}
