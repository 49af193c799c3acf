package pokegpt

import (
	"fmt"
	"strings"
)

// ElementType enumerates every elemental typing the engine knows about.
// Equality is plain value equality, so types work as map keys and switch
// tags everywhere.
//
// TYPELESS fills the second slot of mono-typed creatures and gives typeless
// moves a neutral matchup row. TYPE_FLYING_DELTA is the defensive stand-in
// for Flying while strong winds are up; it never attacks.
type ElementType int

const (
	TYPELESS ElementType = iota
	TYPE_NORMAL
	TYPE_FIRE
	TYPE_WATER
	TYPE_ELECTRIC
	TYPE_GRASS
	TYPE_ICE
	TYPE_FIGHTING
	TYPE_POISON
	TYPE_GROUND
	TYPE_FLYING
	TYPE_PSYCHIC
	TYPE_BUG
	TYPE_ROCK
	TYPE_GHOST
	TYPE_DRAGON
	TYPE_DARK
	TYPE_STEEL
	TYPE_FAIRY
	TYPE_FLYING_DELTA
)

var typeNames = map[ElementType]string{
	TYPELESS:          "Typeless",
	TYPE_NORMAL:       "Normal",
	TYPE_FIRE:         "Fire",
	TYPE_WATER:        "Water",
	TYPE_ELECTRIC:     "Electric",
	TYPE_GRASS:        "Grass",
	TYPE_ICE:          "Ice",
	TYPE_FIGHTING:     "Fighting",
	TYPE_POISON:       "Poison",
	TYPE_GROUND:       "Ground",
	TYPE_FLYING:       "Flying",
	TYPE_PSYCHIC:      "Psychic",
	TYPE_BUG:          "Bug",
	TYPE_ROCK:         "Rock",
	TYPE_GHOST:        "Ghost",
	TYPE_DRAGON:       "Dragon",
	TYPE_DARK:         "Dark",
	TYPE_STEEL:        "Steel",
	TYPE_FAIRY:        "Fairy",
	TYPE_FLYING_DELTA: "Flying (Delta)",
}

func (t ElementType) String() string {
	name, ok := typeNames[t]
	if !ok {
		return fmt.Sprintf("ElementType(%d)", int(t))
	}

	return name
}

func knownType(t ElementType) bool {
	_, ok := typeNames[t]
	return ok
}

// TypeFromName resolves a display name back to its constant, ignoring case.
// Unknown names wrap ErrUnknownType.
func TypeFromName(name string) (ElementType, error) {
	trimmed := strings.TrimSpace(name)
	for t, display := range typeNames {
		if strings.EqualFold(display, trimmed) {
			return t, nil
		}
	}

	return TYPELESS, fmt.Errorf("%w: %q", ErrUnknownType, name)
}

// Weather enumerates the field weather states the damage pipeline can see.
// Only the sun and rain families touch move power; the rest ride along so a
// full field state can be represented without a second enum somewhere else.
type Weather int

const (
	WEATHER_NONE Weather = iota
	WEATHER_SUN
	WEATHER_RAIN
	WEATHER_SANDSTORM
	WEATHER_HAIL
	WEATHER_SNOW
	WEATHER_FOG
	WEATHER_EXTREME_SUN
	WEATHER_HEAVY_RAIN
	WEATHER_STRONG_WINDS
)

var weatherNames = map[Weather]string{
	WEATHER_NONE:         "None",
	WEATHER_SUN:          "Sun",
	WEATHER_RAIN:         "Rain",
	WEATHER_SANDSTORM:    "Sandstorm",
	WEATHER_HAIL:         "Hail",
	WEATHER_SNOW:         "Snow",
	WEATHER_FOG:          "Fog",
	WEATHER_EXTREME_SUN:  "Extreme Sun",
	WEATHER_HEAVY_RAIN:   "Heavy Rain",
	WEATHER_STRONG_WINDS: "Strong Winds",
}

func (w Weather) String() string {
	name, ok := weatherNames[w]
	if !ok {
		return fmt.Sprintf("Weather(%d)", int(w))
	}

	return name
}

// WeatherFromName resolves a display name back to its constant, ignoring
// case. Unknown names report an error so callers cannot quietly battle in
// made-up weather.
func WeatherFromName(name string) (Weather, error) {
	trimmed := strings.TrimSpace(name)
	for w, display := range weatherNames {
		if strings.EqualFold(display, trimmed) {
			return w, nil
		}
	}

	return WEATHER_NONE, fmt.Errorf("unknown weather %q", name)
}
