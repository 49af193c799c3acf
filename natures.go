package pokegpt

import (
	"strings"

	"github.com/samber/lo"
)

// Nature nudges one stat up ten percent and another down ten percent. The
// five neutral natures boost and hinder the same stat, which cancels to
// exactly 1 rather than 0.99.
type Nature struct {
	Name     string
	Boosted  StatName
	Hindered StatName
}

// Multiplier resolves this nature's effect on one stat. HP is never touched.
func (n Nature) Multiplier(stat StatName) float64 {
	if n.Boosted == n.Hindered {
		return 1
	}

	switch stat {
	case n.Boosted:
		return 1.1
	case n.Hindered:
		return 0.9
	}

	return 1
}

var (
	NATURE_HARDY   = Nature{"hardy", STAT_ATTACK, STAT_ATTACK}
	NATURE_LONELY  = Nature{"lonely", STAT_ATTACK, STAT_DEFENSE}
	NATURE_BRAVE   = Nature{"brave", STAT_ATTACK, STAT_SPEED}
	NATURE_ADAMANT = Nature{"adamant", STAT_ATTACK, STAT_SPATTACK}
	NATURE_NAUGHTY = Nature{"naughty", STAT_ATTACK, STAT_SPDEF}

	NATURE_BOLD    = Nature{"bold", STAT_DEFENSE, STAT_ATTACK}
	NATURE_DOCILE  = Nature{"docile", STAT_DEFENSE, STAT_DEFENSE}
	NATURE_RELAXED = Nature{"relaxed", STAT_DEFENSE, STAT_SPEED}
	NATURE_IMPISH  = Nature{"impish", STAT_DEFENSE, STAT_SPATTACK}
	NATURE_LAX     = Nature{"lax", STAT_DEFENSE, STAT_SPDEF}

	NATURE_TIMID   = Nature{"timid", STAT_SPEED, STAT_ATTACK}
	NATURE_HASTY   = Nature{"hasty", STAT_SPEED, STAT_DEFENSE}
	NATURE_SERIOUS = Nature{"serious", STAT_SPEED, STAT_SPEED}
	NATURE_JOLLY   = Nature{"jolly", STAT_SPEED, STAT_SPATTACK}
	NATURE_NAIVE   = Nature{"naive", STAT_SPEED, STAT_SPDEF}

	NATURE_MODEST  = Nature{"modest", STAT_SPATTACK, STAT_ATTACK}
	NATURE_MILD    = Nature{"mild", STAT_SPATTACK, STAT_DEFENSE}
	NATURE_QUIET   = Nature{"quiet", STAT_SPATTACK, STAT_SPEED}
	NATURE_BASHFUL = Nature{"bashful", STAT_SPATTACK, STAT_SPATTACK}
	NATURE_RASH    = Nature{"rash", STAT_SPATTACK, STAT_SPDEF}

	NATURE_CALM    = Nature{"calm", STAT_SPDEF, STAT_ATTACK}
	NATURE_GENTLE  = Nature{"gentle", STAT_SPDEF, STAT_DEFENSE}
	NATURE_SASSY   = Nature{"sassy", STAT_SPDEF, STAT_SPEED}
	NATURE_CAREFUL = Nature{"careful", STAT_SPDEF, STAT_SPATTACK}
	NATURE_QUIRKY  = Nature{"quirky", STAT_SPDEF, STAT_SPDEF}
)

// NATURES lists all twenty-five in the standard grid order.
var NATURES = [...]Nature{
	NATURE_HARDY, NATURE_LONELY, NATURE_BRAVE, NATURE_ADAMANT, NATURE_NAUGHTY,
	NATURE_BOLD, NATURE_DOCILE, NATURE_RELAXED, NATURE_IMPISH, NATURE_LAX,
	NATURE_TIMID, NATURE_HASTY, NATURE_SERIOUS, NATURE_JOLLY, NATURE_NAIVE,
	NATURE_MODEST, NATURE_MILD, NATURE_QUIET, NATURE_BASHFUL, NATURE_RASH,
	NATURE_CALM, NATURE_GENTLE, NATURE_SASSY, NATURE_CAREFUL, NATURE_QUIRKY,
}

// NatureByName finds a nature by name, ignoring case.
func NatureByName(name string) (Nature, bool) {
	trimmed := strings.TrimSpace(name)
	return lo.Find(NATURES[:], func(n Nature) bool {
		return strings.EqualFold(n.Name, trimmed)
	})
}
