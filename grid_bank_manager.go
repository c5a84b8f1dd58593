// grid_bank_manager.go - Active/inactive bank roles and refresh synchronised swaps

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

import "sync/atomic"

// BankManager owns the two frame banks. Exactly one is active (scanned out)
// at any time; drawing only ever targets the inactive one.
type BankManager struct {
	banks   [2]*FrameBank
	active  atomic.Int32
	display Display
	swaps   atomic.Uint64
}

// NewBankManager creates both banks zeroed, bank 0 active
func NewBankManager(display Display) *BankManager {
	return &BankManager{
		banks:   [2]*FrameBank{NewFrameBank(0), NewFrameBank(1)},
		display: display,
	}
}

// Bank returns bank id (0 or 1)
func (m *BankManager) Bank(id int) *FrameBank {
	return m.banks[id&1]
}

// Active returns the bank currently bound to the display
func (m *BankManager) Active() *FrameBank {
	return m.banks[m.active.Load()]
}

// Inactive returns the drawable bank
func (m *BankManager) Inactive() *FrameBank {
	return m.banks[m.active.Load()^1]
}

// Swap waits for the next refresh boundary, then makes the inactive bank
// the active one and binds it to the display
func (m *BankManager) Swap() error {
	if err := m.display.WaitForRefresh(); err != nil {
		return err
	}
	return m.flip()
}

// flip exchanges the roles without waiting. Only used before the display
// has shown a frame.
func (m *BankManager) flip() error {
	next := m.active.Load() ^ 1
	if err := m.display.Bind(m.banks[next]); err != nil {
		return err
	}
	m.active.Store(next)
	m.swaps.Add(1)
	return nil
}

// Swaps returns the number of role changes so far
func (m *BankManager) Swaps() uint64 {
	return m.swaps.Load()
}
