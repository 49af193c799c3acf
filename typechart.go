package pokegpt

import "fmt"

// A matchupChart maps attacking type to defending type to multiplier. Pairs
// that are absent resolve to the neutral 1, which covers both "nothing
// special here" and types that do not exist yet in an era.
type matchupChart map[ElementType]map[ElementType]float64

// Effectiveness resolves the combined type multiplier for an attacking type
// against a defender's type pair under a generation's chart. Mono-typed
// defenders pass TYPELESS in the second slot. The result is the product of
// the two single-slot lookups, with 0 short-circuiting to exactly 0.
func Effectiveness(gen Generation, attackType ElementType, defenderType1 ElementType, defenderType2 ElementType) (float64, error) {
	if !gen.Valid() {
		return 0, fmt.Errorf("%w: generation ordinal %d out of range", ErrFormat, int(gen))
	}

	if attackType == TYPE_FLYING_DELTA {
		return 0, fmt.Errorf("%w: %s only defends", ErrUnknownType, attackType)
	}
	if !knownType(attackType) {
		return 0, fmt.Errorf("%w: attacking type %s", ErrUnknownType, attackType)
	}
	if !knownType(defenderType1) {
		return 0, fmt.Errorf("%w: defending type %s", ErrUnknownType, defenderType1)
	}
	if !knownType(defenderType2) {
		return 0, fmt.Errorf("%w: defending type %s", ErrUnknownType, defenderType2)
	}

	chart := chartFor(gen)
	first := singleEffectiveness(chart, attackType, defenderType1)
	if first == 0 {
		return 0, nil
	}

	second := singleEffectiveness(chart, attackType, defenderType2)
	if second == 0 {
		return 0, nil
	}

	return first * second, nil
}

// Era buckets are checked in order: I, then II-V, then everything after.
func chartFor(gen Generation) matchupChart {
	switch {
	case Must(gen.Matches("I")):
		return typeChartGen1
	case Must(gen.Matches("II-V")):
		return typeChartClassic
	default:
		return typeChartModern
	}
}

func singleEffectiveness(chart matchupChart, attackType ElementType, defenderType ElementType) float64 {
	if defenderType == TYPE_FLYING_DELTA {
		// Strong winds blunt anything super effective against Flying
		base := singleEffectiveness(chart, attackType, TYPE_FLYING)
		if base > 1 {
			return 1
		}

		return base
	}

	multiplier, ok := chart[attackType][defenderType]
	if !ok {
		return 1
	}

	return multiplier
}

// WeatherPowerMultiplier scales a move's power for the active weather. Sun
// and rain push Fire and Water around, and the extreme variants null the
// opposing element outright. Every other pairing is neutral.
func WeatherPowerMultiplier(weather Weather, moveType ElementType) float64 {
	switch moveType {
	case TYPE_FIRE:
		switch weather {
		case WEATHER_SUN, WEATHER_EXTREME_SUN:
			return 1.5
		case WEATHER_RAIN:
			return .5
		case WEATHER_HEAVY_RAIN:
			return 0
		}
	case TYPE_WATER:
		switch weather {
		case WEATHER_RAIN, WEATHER_HEAVY_RAIN:
			return 1.5
		case WEATHER_SUN:
			return .5
		case WEATHER_EXTREME_SUN:
			return 0
		}
	}

	return 1
}

// The first era's chart, before Dark, Steel and Fairy existed. Its oddballs:
// Ice does not melt against Fire, Bug and Poison maul each other, Ghosts
// cannot touch Psychics, and Electric is already grounded out.
var typeChartGen1 = matchupChart{
	TYPE_NORMAL: {
		TYPE_ROCK: .5,

		TYPE_GHOST: 0,
	},
	TYPE_FIRE: {
		TYPE_GRASS: 2,
		TYPE_ICE:   2,
		TYPE_BUG:   2,

		TYPE_FIRE:   .5,
		TYPE_WATER:  .5,
		TYPE_ROCK:   .5,
		TYPE_DRAGON: .5,
	},
	TYPE_WATER: {
		TYPE_FIRE:   2,
		TYPE_GROUND: 2,
		TYPE_ROCK:   2,

		TYPE_WATER:  .5,
		TYPE_GRASS:  .5,
		TYPE_DRAGON: .5,
	},
	TYPE_ELECTRIC: {
		TYPE_WATER:  2,
		TYPE_FLYING: 2,

		TYPE_ELECTRIC: .5,
		TYPE_GRASS:    .5,
		TYPE_DRAGON:   .5,

		TYPE_GROUND: 0,
	},
	TYPE_GRASS: {
		TYPE_WATER:  2,
		TYPE_GROUND: 2,
		TYPE_ROCK:   2,

		TYPE_FIRE:   .5,
		TYPE_GRASS:  .5,
		TYPE_POISON: .5,
		TYPE_FLYING: .5,
		TYPE_BUG:    .5,
		TYPE_DRAGON: .5,
	},
	TYPE_ICE: {
		TYPE_GRASS:  2,
		TYPE_GROUND: 2,
		TYPE_FLYING: 2,
		TYPE_DRAGON: 2,

		TYPE_WATER: .5,
		TYPE_ICE:   .5,
	},
	TYPE_FIGHTING: {
		TYPE_NORMAL: 2,
		TYPE_ICE:    2,
		TYPE_ROCK:   2,

		TYPE_POISON:  .5,
		TYPE_FLYING:  .5,
		TYPE_PSYCHIC: .5,
		TYPE_BUG:     .5,

		TYPE_GHOST: 0,
	},
	TYPE_POISON: {
		TYPE_GRASS: 2,
		TYPE_BUG:   2,

		TYPE_POISON: .5,
		TYPE_GROUND: .5,
		TYPE_ROCK:   .5,
		TYPE_GHOST:  .5,
	},
	TYPE_GROUND: {
		TYPE_FIRE:     2,
		TYPE_ELECTRIC: 2,
		TYPE_POISON:   2,
		TYPE_ROCK:     2,

		TYPE_GRASS: .5,
		TYPE_BUG:   .5,

		TYPE_FLYING: 0,
	},
	TYPE_FLYING: {
		TYPE_GRASS:    2,
		TYPE_FIGHTING: 2,
		TYPE_BUG:      2,

		TYPE_ELECTRIC: .5,
		TYPE_ROCK:     .5,
	},
	TYPE_PSYCHIC: {
		TYPE_FIGHTING: 2,
		TYPE_POISON:   2,

		TYPE_PSYCHIC: .5,
	},
	TYPE_BUG: {
		TYPE_GRASS:   2,
		TYPE_POISON:  2,
		TYPE_PSYCHIC: 2,

		TYPE_FIRE:     .5,
		TYPE_FIGHTING: .5,
		TYPE_FLYING:   .5,
		TYPE_GHOST:    .5,
	},
	TYPE_ROCK: {
		TYPE_FIRE:   2,
		TYPE_ICE:    2,
		TYPE_FLYING: 2,
		TYPE_BUG:    2,

		TYPE_FIGHTING: .5,
		TYPE_GROUND:   .5,
	},
	TYPE_GHOST: {
		TYPE_GHOST: 2,

		TYPE_PSYCHIC: 0,
	},
	TYPE_DRAGON: {
		TYPE_DRAGON: 2,
	},
}

// The middle eras' chart, generations II through V: Dark and Steel are in,
// the first era's quirks are fixed, and Steel still resists Ghost and Dark.
var typeChartClassic = matchupChart{
	TYPE_NORMAL: {
		TYPE_ROCK:  .5,
		TYPE_STEEL: .5,

		TYPE_GHOST: 0,
	},
	TYPE_FIRE: {
		TYPE_GRASS: 2,
		TYPE_ICE:   2,
		TYPE_BUG:   2,
		TYPE_STEEL: 2,

		TYPE_FIRE:   .5,
		TYPE_WATER:  .5,
		TYPE_ROCK:   .5,
		TYPE_DRAGON: .5,
	},
	TYPE_WATER: {
		TYPE_FIRE:   2,
		TYPE_GROUND: 2,
		TYPE_ROCK:   2,

		TYPE_WATER:  .5,
		TYPE_GRASS:  .5,
		TYPE_DRAGON: .5,
	},
	TYPE_ELECTRIC: {
		TYPE_WATER:  2,
		TYPE_FLYING: 2,

		TYPE_ELECTRIC: .5,
		TYPE_GRASS:    .5,
		TYPE_DRAGON:   .5,

		TYPE_GROUND: 0,
	},
	TYPE_GRASS: {
		TYPE_WATER:  2,
		TYPE_GROUND: 2,
		TYPE_ROCK:   2,

		TYPE_FIRE:   .5,
		TYPE_GRASS:  .5,
		TYPE_POISON: .5,
		TYPE_FLYING: .5,
		TYPE_BUG:    .5,
		TYPE_DRAGON: .5,
		TYPE_STEEL:  .5,
	},
	TYPE_ICE: {
		TYPE_GRASS:  2,
		TYPE_GROUND: 2,
		TYPE_FLYING: 2,
		TYPE_DRAGON: 2,

		TYPE_FIRE:  .5,
		TYPE_WATER: .5,
		TYPE_ICE:   .5,
		TYPE_STEEL: .5,
	},
	TYPE_FIGHTING: {
		TYPE_NORMAL: 2,
		TYPE_ICE:    2,
		TYPE_ROCK:   2,
		TYPE_DARK:   2,
		TYPE_STEEL:  2,

		TYPE_POISON:  .5,
		TYPE_FLYING:  .5,
		TYPE_PSYCHIC: .5,
		TYPE_BUG:     .5,

		TYPE_GHOST: 0,
	},
	TYPE_POISON: {
		TYPE_GRASS: 2,

		TYPE_POISON: .5,
		TYPE_GROUND: .5,
		TYPE_ROCK:   .5,
		TYPE_GHOST:  .5,

		TYPE_STEEL: 0,
	},
	TYPE_GROUND: {
		TYPE_FIRE:     2,
		TYPE_ELECTRIC: 2,
		TYPE_POISON:   2,
		TYPE_ROCK:     2,
		TYPE_STEEL:    2,

		TYPE_GRASS: .5,
		TYPE_BUG:   .5,

		TYPE_FLYING: 0,
	},
	TYPE_FLYING: {
		TYPE_GRASS:    2,
		TYPE_FIGHTING: 2,
		TYPE_BUG:      2,

		TYPE_ELECTRIC: .5,
		TYPE_ROCK:     .5,
		TYPE_STEEL:    .5,
	},
	TYPE_PSYCHIC: {
		TYPE_FIGHTING: 2,
		TYPE_POISON:   2,

		TYPE_PSYCHIC: .5,
		TYPE_STEEL:   .5,

		TYPE_DARK: 0,
	},
	TYPE_BUG: {
		TYPE_GRASS:   2,
		TYPE_PSYCHIC: 2,
		TYPE_DARK:    2,

		TYPE_FIRE:     .5,
		TYPE_FIGHTING: .5,
		TYPE_POISON:   .5,
		TYPE_FLYING:   .5,
		TYPE_GHOST:    .5,
		TYPE_STEEL:    .5,
	},
	TYPE_ROCK: {
		TYPE_FIRE:   2,
		TYPE_ICE:    2,
		TYPE_FLYING: 2,
		TYPE_BUG:    2,

		TYPE_FIGHTING: .5,
		TYPE_GROUND:   .5,
		TYPE_STEEL:    .5,
	},
	TYPE_GHOST: {
		TYPE_PSYCHIC: 2,
		TYPE_GHOST:   2,

		TYPE_DARK:  .5,
		TYPE_STEEL: .5,

		TYPE_NORMAL: 0,
	},
	TYPE_DRAGON: {
		TYPE_DRAGON: 2,

		TYPE_STEEL: .5,
	},
	TYPE_DARK: {
		TYPE_PSYCHIC: 2,
		TYPE_GHOST:   2,

		TYPE_FIGHTING: .5,
		TYPE_DARK:     .5,
		TYPE_STEEL:    .5,
	},
	TYPE_STEEL: {
		TYPE_ICE:  2,
		TYPE_ROCK: 2,

		TYPE_FIRE:     .5,
		TYPE_WATER:    .5,
		TYPE_ELECTRIC: .5,
		TYPE_STEEL:    .5,
	},
}

// The modern chart, generation VI onward: Fairy arrives and Steel drops its
// Ghost and Dark resistances.
var typeChartModern = matchupChart{
	TYPE_NORMAL: {
		TYPE_ROCK:  .5,
		TYPE_STEEL: .5,

		TYPE_GHOST: 0,
	},
	TYPE_FIRE: {
		TYPE_GRASS: 2,
		TYPE_ICE:   2,
		TYPE_BUG:   2,
		TYPE_STEEL: 2,

		TYPE_FIRE:   .5,
		TYPE_WATER:  .5,
		TYPE_ROCK:   .5,
		TYPE_DRAGON: .5,
	},
	TYPE_WATER: {
		TYPE_FIRE:   2,
		TYPE_GROUND: 2,
		TYPE_ROCK:   2,

		TYPE_WATER:  .5,
		TYPE_GRASS:  .5,
		TYPE_DRAGON: .5,
	},
	TYPE_ELECTRIC: {
		TYPE_WATER:  2,
		TYPE_FLYING: 2,

		TYPE_ELECTRIC: .5,
		TYPE_GRASS:    .5,
		TYPE_DRAGON:   .5,

		TYPE_GROUND: 0,
	},
	TYPE_GRASS: {
		TYPE_WATER:  2,
		TYPE_GROUND: 2,
		TYPE_ROCK:   2,

		TYPE_FIRE:   .5,
		TYPE_GRASS:  .5,
		TYPE_POISON: .5,
		TYPE_FLYING: .5,
		TYPE_BUG:    .5,
		TYPE_DRAGON: .5,
		TYPE_STEEL:  .5,
	},
	TYPE_ICE: {
		TYPE_GRASS:  2,
		TYPE_GROUND: 2,
		TYPE_FLYING: 2,
		TYPE_DRAGON: 2,

		TYPE_FIRE:  .5,
		TYPE_WATER: .5,
		TYPE_ICE:   .5,
		TYPE_STEEL: .5,
	},
	TYPE_FIGHTING: {
		TYPE_NORMAL: 2,
		TYPE_ICE:    2,
		TYPE_ROCK:   2,
		TYPE_DARK:   2,
		TYPE_STEEL:  2,

		TYPE_POISON:  .5,
		TYPE_FLYING:  .5,
		TYPE_PSYCHIC: .5,
		TYPE_BUG:     .5,
		TYPE_FAIRY:   .5,

		TYPE_GHOST: 0,
	},
	TYPE_POISON: {
		TYPE_GRASS: 2,
		TYPE_FAIRY: 2,

		TYPE_POISON: .5,
		TYPE_GROUND: .5,
		TYPE_ROCK:   .5,
		TYPE_GHOST:  .5,

		TYPE_STEEL: 0,
	},
	TYPE_GROUND: {
		TYPE_FIRE:     2,
		TYPE_ELECTRIC: 2,
		TYPE_POISON:   2,
		TYPE_ROCK:     2,
		TYPE_STEEL:    2,

		TYPE_GRASS: .5,
		TYPE_BUG:   .5,

		TYPE_FLYING: 0,
	},
	TYPE_FLYING: {
		TYPE_GRASS:    2,
		TYPE_FIGHTING: 2,
		TYPE_BUG:      2,

		TYPE_ELECTRIC: .5,
		TYPE_ROCK:     .5,
		TYPE_STEEL:    .5,
	},
	TYPE_PSYCHIC: {
		TYPE_FIGHTING: 2,
		TYPE_POISON:   2,

		TYPE_PSYCHIC: .5,
		TYPE_STEEL:   .5,

		TYPE_DARK: 0,
	},
	TYPE_BUG: {
		TYPE_GRASS:   2,
		TYPE_PSYCHIC: 2,
		TYPE_DARK:    2,

		TYPE_FIRE:     .5,
		TYPE_FIGHTING: .5,
		TYPE_POISON:   .5,
		TYPE_FLYING:   .5,
		TYPE_GHOST:    .5,
		TYPE_STEEL:    .5,
		TYPE_FAIRY:    .5,
	},
	TYPE_ROCK: {
		TYPE_FIRE:   2,
		TYPE_ICE:    2,
		TYPE_FLYING: 2,
		TYPE_BUG:    2,

		TYPE_FIGHTING: .5,
		TYPE_GROUND:   .5,
		TYPE_STEEL:    .5,
	},
	TYPE_GHOST: {
		TYPE_PSYCHIC: 2,
		TYPE_GHOST:   2,

		TYPE_DARK: .5,

		TYPE_NORMAL: 0,
	},
	TYPE_DRAGON: {
		TYPE_DRAGON: 2,

		TYPE_STEEL: .5,

		TYPE_FAIRY: 0,
	},
	TYPE_DARK: {
		TYPE_PSYCHIC: 2,
		TYPE_GHOST:   2,

		TYPE_FIGHTING: .5,
		TYPE_DARK:     .5,
		TYPE_FAIRY:    .5,
	},
	TYPE_STEEL: {
		TYPE_ICE:   2,
		TYPE_ROCK:  2,
		TYPE_FAIRY: 2,

		TYPE_FIRE:     .5,
		TYPE_WATER:    .5,
		TYPE_ELECTRIC: .5,
		TYPE_STEEL:    .5,
	},
	TYPE_FAIRY: {
		TYPE_FIGHTING: 2,
		TYPE_DRAGON:   2,
		TYPE_DARK:     2,

		TYPE_FIRE:   .5,
		TYPE_POISON: .5,
		TYPE_STEEL:  .5,
	},
}
