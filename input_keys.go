// input_keys.go - Logical keys, key matrix scans and queued commands

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package main

import "strings"

// Key is a logical key on the emulated keyboard. Left and up have no key of
// their own: they are right and down with the shift qualifier.
type Key uint8

const (
	KeyNone Key = iota
	KeyCursorRight
	KeyCursorDown
	KeyPlus
	KeyMinus
	KeyEqual // alternative grow key for host keyboards without a plus key
	KeyHome
	KeyUnknown // any key the grid does not react to

	KEY_COUNT
)

// repeatKeys lists the keys that auto-repeat, in scan order
var repeatKeys = [...]Key{KeyCursorRight, KeyCursorDown, KeyPlus, KeyMinus, KeyEqual}

var keyNames = [KEY_COUNT]string{
	KeyNone:        "none",
	KeyCursorRight: "right",
	KeyCursorDown:  "down",
	KeyPlus:        "plus",
	KeyMinus:       "minus",
	KeyEqual:       "equal",
	KeyHome:        "home",
	KeyUnknown:     "unknown",
}

func (k Key) String() string {
	if k < KEY_COUNT {
		return keyNames[k]
	}
	return "invalid"
}

// Repeatable reports whether holding k produces synthetic repeats
func (k Key) Repeatable() bool {
	for _, rk := range repeatKeys {
		if rk == k {
			return true
		}
	}
	return false
}

// Directional reports whether k honours the shift qualifier
func (k Key) Directional() bool {
	return k == KeyCursorRight || k == KeyCursorDown
}

// ParseKey maps a key name (as used by scripts) to a Key. Unrecognised names
// map to KeyUnknown so they travel through the queue like a stray key press.
func ParseKey(name string) Key {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "right", "crsr_right":
		return KeyCursorRight
	case "down", "crsr_down":
		return KeyCursorDown
	case "plus", "+":
		return KeyPlus
	case "minus", "-":
		return KeyMinus
	case "equal", "=":
		return KeyEqual
	case "home":
		return KeyHome
	}
	return KeyUnknown
}

// KeyScan is one poll of the key matrix. It is a plain value so polling
// never allocates.
type KeyScan struct {
	Held  [KEY_COUNT]bool
	Shift bool

	// Fresh down transition since the previous poll, KeyNone if there was none
	Pressed      Key
	PressedShift bool
}

// Command is the single entry of the debouncer queue
type Command struct {
	Key   Key
	Shift bool
	Down  bool
}

func (c Command) String() string {
	if c.Shift {
		return c.Key.String() + "+shift"
	}
	return c.Key.String()
}

// KeyMatrix is the raw key state poll primitive of a host backend
type KeyMatrix interface {
	Poll() KeyScan
}
