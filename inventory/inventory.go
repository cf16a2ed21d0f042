// This file is part of Cheat Console.
//
// Cheat Console is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Cheat Console is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Cheat Console.  If not, see <https://www.gnu.org/licenses/>.

// Package inventory holds the player's possessions. Currently that is only
// the amount of currency available to spend.
package inventory

import (
	"fmt"

	"github.com/izhv/cheatconsole/logger"
)

const logTag = "inventory"

// Inventory is the player's inventory. It is not safe for concurrent use.
type Inventory struct {
	perm     logger.Permission
	currency int
}

// NewInventory is the preferred method of initialisation for the Inventory
// type. Changes to the inventory are logged subject to the permission.
func NewInventory(perm logger.Permission, currency int) *Inventory {
	return &Inventory{
		perm:     perm,
		currency: currency,
	}
}

func (inv *Inventory) String() string {
	return fmt.Sprintf("currency: %d", inv.currency)
}

// Currency returns the amount of currency available.
func (inv *Inventory) Currency() int {
	return inv.currency
}

// SetCurrency changes the amount of currency available.
func (inv *Inventory) SetCurrency(currency int) {
	inv.currency = currency
	logger.Logf(inv.perm, logTag, "currency set to %d", currency)
}
