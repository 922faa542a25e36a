package entity

import "gridsnake/game/types"

// Food is a consumable placed on a free cell.
type Food struct {
	Cell types.Cell
}
