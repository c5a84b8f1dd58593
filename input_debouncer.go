// input_debouncer.go - Tick driven key repeat with a single slot command queue

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

/*
input_debouncer.go - Key Debouncer

Tick() runs once per display refresh on the tick source's goroutine. It must
never block and never allocate: the only state it shares with the main loop
is the one slot command channel.

Per tick:
1. Poll the key matrix
2. Queue occupied → drop this tick's input (the repeat countdown is frozen)
3. Fresh down transition → enqueue it, start the long initial delay
4. Tracked key released → track the first repeatable key still down, in
   scan order, without restarting the countdown
5. Count down; at zero enqueue a repeat of the tracked key and restart with
   the short interval

The resulting feel is press → 20 ticks → one repeat every 5 ticks.
*/

package main

// Debouncer turns key matrix polls into queued commands
type Debouncer struct {
	matrix KeyMatrix
	queue  chan Command

	// Repeat state, owned by the tick goroutine
	held      Key
	countdown int
}

// NewDebouncer creates a debouncer reading from matrix
func NewDebouncer(matrix KeyMatrix) *Debouncer {
	return &Debouncer{
		matrix: matrix,
		queue:  make(chan Command, 1),
	}
}

// Commands is the consumer side of the queue. A receive is take-and-clear.
func (d *Debouncer) Commands() <-chan Command {
	return d.queue
}

// Pending reports whether a command is waiting
func (d *Debouncer) Pending() bool {
	return len(d.queue) > 0
}

// Tick polls the matrix and enqueues at most one command
func (d *Debouncer) Tick() {
	scan := d.matrix.Poll()

	// Single producer: a non-empty queue cannot drain to full behind our back
	if len(d.queue) > 0 {
		return
	}

	if scan.Pressed != KeyNone {
		d.enqueue(Command{Key: scan.Pressed, Shift: scan.PressedShift, Down: true})
		d.held = KeyNone
		if scan.Pressed.Repeatable() {
			d.held = scan.Pressed
		}
		d.countdown = REPEAT_INITIAL_DELAY
		return
	}

	if d.held == KeyNone || !scan.Held[d.held] {
		d.held = firstHeld(&scan)
	}

	if d.countdown > 0 {
		d.countdown--
	}
	if d.held == KeyNone || d.countdown > 0 {
		return
	}
	d.enqueue(Command{
		Key:   d.held,
		Shift: d.held.Directional() && scan.Shift,
		Down:  true,
	})
	d.countdown = REPEAT_INTERVAL
}

// firstHeld returns the first repeatable key down in scan, KeyNone if none
func firstHeld(scan *KeyScan) Key {
	for _, k := range repeatKeys {
		if scan.Held[k] {
			return k
		}
	}
	return KeyNone
}

func (d *Debouncer) enqueue(cmd Command) {
	select {
	case d.queue <- cmd:
	default:
	}
}
