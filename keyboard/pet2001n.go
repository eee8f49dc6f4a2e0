// Copyright 2026 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package keyboard

// matrix positions of the letter keys, 'a' to 'z'. Upper case letters share
// the position and go through shift.
var petLetters = [26]struct{ row, col int }{
	{4, 0}, // a
	{6, 2}, // b
	{6, 1}, // c
	{4, 1}, // d
	{2, 1}, // e
	{5, 1}, // f
	{4, 2}, // g
	{5, 2}, // h
	{3, 3}, // i
	{4, 3}, // j
	{5, 3}, // k
	{4, 4}, // l
	{6, 3}, // m
	{7, 2}, // n
	{2, 4}, // o
	{3, 4}, // p
	{2, 0}, // q
	{3, 1}, // r
	{5, 0}, // s
	{2, 2}, // t
	{2, 3}, // u
	{7, 1}, // v
	{3, 0}, // w
	{7, 0}, // x
	{3, 2}, // y
	{6, 0}, // z
}

type petMatrix map[uint16]Key

func (m petMatrix) Key(code uint16) (Key, bool) {
	k, ok := m[code]
	return k, ok
}

// PET2001N returns the key binding table of the PET 2001N / CBM 3000 series
// graphics keyboard.
//
// The key input dialogs feeding this table cannot generate most PET special
// keys, so those are mapped to CTRL+key sequences:
//
//	| PET key  | code        |
//	|----------|-------------|
//	| HOME     | 0x06 CTRL-F |
//	| CLR      | 0x07 CTRL-G |
//	| DEL      | 0x08 CTRL-H |
//	| INST     | 0x09 CTRL-I |
//	| ←        | 0x0c CTRL-L |
//	| RVS      | 0x0f CTRL-O |
//	| RVS OFF  | 0x10 CTRL-P |
//	| ↑        | 0x15 CTRL-U |
//	| RUN/STOP | 0x1b ESC    |
//
// The cursor keys use the codes 0x11 to 0x14 emitted for them by the host
// keyboard dialog.
//
func PET2001N() Matrix {
	m := petMatrix{
		0x00: {"", 0, 0, false},

		0x06: {"HOME", 0, 6, false},
		0x07: {"CLR", 0, 6, true},
		0x08: {"DEL", 1, 7, false},
		0x09: {"INST", 1, 7, true},

		0x0a: {"RETURN", 6, 5, false},

		0x0c: {"←", 0, 5, false},

		0x0f: {"RVS", 9, 0, false},
		0x10: {"OFF", 9, 0, true},
		0x11: {"CRSR UP", 1, 6, true},
		0x12: {"CRSR DOWN", 1, 6, false},
		0x13: {"CRSR LEFT", 0, 7, true},
		0x14: {"CRSR RIGHT", 0, 7, false},
		0x15: {"↑", 2, 5, false},

		0x1b: {"RUN/STOP", 9, 4, false},

		0x20: {"SPACE", 9, 2, false},
		0x21: {"!", 0, 0, false},
		0x22: {"\"", 1, 0, false},
		0x23: {"#", 0, 1, false},
		0x24: {"$", 1, 1, false},
		0x25: {"%", 0, 2, false},
		0x26: {"&", 0, 3, false},
		0x27: {"'", 1, 2, false},
		0x28: {"(", 0, 4, false},
		0x29: {")", 1, 4, false},

		0x2a: {"*", 5, 7, false},
		0x2b: {"+", 7, 7, false},
		0x2c: {",", 7, 3, false},
		0x2d: {"-", 8, 7, false},
		0x2e: {".", 9, 6, false},
		0x2f: {"/", 3, 7, false},

		0x30: {"0", 8, 6, false},
		0x31: {"1", 6, 6, false},
		0x32: {"2", 7, 6, false},
		0x33: {"3", 6, 7, false},
		0x34: {"4", 4, 6, false},
		0x35: {"5", 5, 6, false},
		0x36: {"6", 4, 7, false},
		0x37: {"7", 2, 6, false},
		0x38: {"8", 3, 6, false},
		0x39: {"9", 2, 7, false},

		0x3a: {":", 5, 4, false},
		0x3b: {";", 6, 4, false},
		0x3c: {"<", 9, 3, false},
		0x3d: {"=", 9, 7, false},
		0x3e: {">", 8, 4, false},
		0x3f: {"?", 7, 4, false},
		0x40: {"@", 8, 1, true},

		0x5b: {"[", 9, 1, false},
		0x5c: {"\\", 1, 3, false},
		0x5d: {"]", 8, 2, false},

		0x7f: {"DEL", 1, 7, false},
	}
	for i, p := range petLetters {
		m[uint16('A'+i)] = Key{string(rune('A' + i)), p.row, p.col, true}
		m[uint16('a'+i)] = Key{string(rune('a' + i)), p.row, p.col, false}
	}
	return m
}
