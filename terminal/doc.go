// Package terminal is the tcell front end: it turns key presses into
// navigation intents and draws published world snapshots.
//
// Layout: row 0 is a header, the grid starts at row 1 and the status line
// sits directly below the grid. Cells that do not fit the terminal are
// clipped; the simulation grid never follows the terminal size.
package terminal
