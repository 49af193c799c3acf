package pokegpt

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/go-logr/logr"
)

var resolveLogger = func() logr.Logger {
	return internalLogger.WithName("resolve")
}

// DamageClass splits damaging moves into the two damage categories.
type DamageClass int

const (
	DAMAGETYPE_PHYSICAL DamageClass = iota
	DAMAGETYPE_SPECIAL
)

func (c DamageClass) String() string {
	if c == DAMAGETYPE_PHYSICAL {
		return "physical"
	}

	return "special"
}

// Status is the slice of the status zoo the damage pipeline can see. Only
// burn changes damage; the rest belongs to a turn engine, which this
// package is not.
type Status int

const (
	STATUS_NONE Status = iota
	STATUS_BURN
)

// Move is a damaging move snapshot.
type Move struct {
	Name  string
	Type  ElementType
	Power int
	Class DamageClass
}

// Creature is a full creature snapshot: identity, spreads and battle state
// in one flat value. Build one by hand or through CreatureBuilder; either
// way the spreads get clamped on the way through the pipeline.
type Creature struct {
	Name  string
	Level int

	// Type1 is never TYPELESS on a real creature. Type2 is TYPELESS for
	// mono-typed ones, and the two are never the same real type.
	Type1 ElementType
	Type2 ElementType

	Base StatBlock
	IVs  StatBlock
	EVs  StatBlock

	Nature Nature

	Ability string
	Item    string

	Status Status
	Stages StageBlock
}

// FieldState is everything about the battlefield one damage evaluation can
// care about.
type FieldState struct {
	Weather Weather

	// Screens up on the defending side
	Reflect     bool
	LightScreen bool

	// The move strikes more than one target this turn
	MultiTarget bool
}

// Trait and item names the resolver recognizes, lowercase. Unknown names
// contribute nothing, the same way absent chart pairs resolve neutral.
const (
	ABILITY_ADAPTABILITY = "adaptability"
	ABILITY_SNIPER       = "sniper"
	ABILITY_GUTS         = "guts"
	ABILITY_TINTED_LENS  = "tinted-lens"

	ITEM_LIFE_ORB     = "life-orb"
	ITEM_EXPERT_BELT  = "expert-belt"
	ITEM_MUSCLE_BAND  = "muscle-band"
	ITEM_WISE_GLASSES = "wise-glasses"
)

// Report is the full account of one move use: the computed stat sheets, the
// resolved multipliers and the damage value itself.
type Report struct {
	Gen Generation

	AttackerStats StatBlock
	DefenderStats StatBlock

	Move Move

	TypeEffectiveness float64
	WeatherPower      float64

	AttackStageMultiplier  float64
	DefenseStageMultiplier float64

	Result DamageResult

	// Damage floored for display
	Damage int
}

// EffectiveStats computes a creature's stat sheet from its spreads: full HP
// and the five non-HP stats floored after the nature multiplier.
func EffectiveStats(c Creature) StatBlock {
	stats := StatBlock{Hp: HP(c.Base.Hp, c.IVs.Hp, c.EVs.Hp, c.Level)}
	for _, stat := range CORE_STATS[1:] {
		value := NonHP(stat, c.Base.Get(stat), c.IVs.Get(stat), c.EVs.Get(stat), c.Level, c.Nature.Multiplier(stat))
		stats.Set(stat, int(math.Floor(value)))
	}

	return stats
}

// Resolve runs the whole pipeline for one move use: stat sheets, stage
// multipliers, matchup and weather lookups, trait and item flags, then the
// damage chain for the generation's formula family. A nil rng locks the
// random factor to 1 so the evaluation is fully deterministic.
func Resolve(gen Generation, attacker Creature, defender Creature, move Move, field FieldState, crit bool, rng *rand.Rand) (Report, error) {
	if !gen.Valid() {
		return Report{}, fmt.Errorf("%w: generation ordinal %d out of range", ErrFormat, int(gen))
	}

	if !knownType(move.Type) || move.Type == TYPE_FLYING_DELTA {
		return Report{}, fmt.Errorf("%w: move type %s", ErrUnknownType, move.Type)
	}
	if !knownType(attacker.Type1) || !knownType(attacker.Type2) {
		return Report{}, fmt.Errorf("%w: attacker %s has an unrecognized typing", ErrUnknownType, attacker.Name)
	}

	attackerStats := EffectiveStats(attacker)
	defenderStats := EffectiveStats(defender)

	attackStat, defenseStat := STAT_ATTACK, STAT_DEFENSE
	if move.Class == DAMAGETYPE_SPECIAL {
		attackStat, defenseStat = STAT_SPATTACK, STAT_SPDEF
	}

	attackerStages := NewStages(attacker.Stages)
	defenderStages := NewStages(defender.Stages)

	attackStageMult, err := MultiplierFor(gen, attackStat, float64(attackerStages.Get(attackStat)))
	if err != nil {
		return Report{}, err
	}
	defenseStageMult, err := MultiplierFor(gen, defenseStat, float64(defenderStages.Get(defenseStat)))
	if err != nil {
		return Report{}, err
	}

	defenderType1, defenderType2 := defenderFieldTypes(defender, field.Weather)
	effectiveness, err := Effectiveness(gen, move.Type, defenderType1, defenderType2)
	if err != nil {
		return Report{}, err
	}

	weatherPower := WeatherPowerMultiplier(field.Weather, move.Type)

	physical := move.Class == DAMAGETYPE_PHYSICAL

	in := DamageInput{
		Level:                  levelRule.clamp("level", attacker.Level),
		Power:                  move.Power,
		Attack:                 float64(attackerStats.Get(attackStat)),
		Defense:                float64(defenderStats.Get(defenseStat)),
		AttackStageMultiplier:  attackStageMult,
		DefenseStageMultiplier: defenseStageMult,
		TypeEffectiveness:      effectiveness,
		WeatherPower:           weatherPower,
		Stab:                   hasStab(attacker, move),
		Adaptability:           attacker.Ability == ABILITY_ADAPTABILITY,
		Crit:                   crit,
		Sniper:                 attacker.Ability == ABILITY_SNIPER,
		Physical:               physical,
		Burned:                 attacker.Status == STATUS_BURN,
		Guts:                   attacker.Ability == ABILITY_GUTS,
		Screen:                 (physical && field.Reflect) || (!physical && field.LightScreen),
		MultiTarget:            field.MultiTarget,
		ItemPower:              itemPower(attacker.Item, move.Class),
		ExpertBelt:             attacker.Item == ITEM_EXPERT_BELT,
		TintedLens:             attacker.Ability == ABILITY_TINTED_LENS,
	}

	result, err := Damage(gen, in, rng)
	if err != nil {
		return Report{}, err
	}

	report := Report{
		Gen:                    gen,
		AttackerStats:          attackerStats,
		DefenderStats:          defenderStats,
		Move:                   move,
		TypeEffectiveness:      effectiveness,
		WeatherPower:           weatherPower,
		AttackStageMultiplier:  attackStageMult,
		DefenseStageMultiplier: defenseStageMult,
		Result:                 result,
		Damage:                 int(math.Floor(result.Damage)),
	}

	resolveLogger().V(1).Info("resolved move use",
		"gen", gen.String(),
		"attacker", attacker.Name,
		"defender", defender.Name,
		"move", move.Name,
		"effectiveness", effectiveness,
		"damage", report.Damage)

	return report, nil
}

// Strong winds shield Flying defenders: the delta variant swaps in so the
// chart caps super effective hits back to neutral.
func defenderFieldTypes(defender Creature, weather Weather) (ElementType, ElementType) {
	type1, type2 := defender.Type1, defender.Type2
	if weather == WEATHER_STRONG_WINDS {
		if type1 == TYPE_FLYING {
			type1 = TYPE_FLYING_DELTA
		}
		if type2 == TYPE_FLYING {
			type2 = TYPE_FLYING_DELTA
		}
	}

	return type1, type2
}

func hasStab(attacker Creature, move Move) bool {
	if move.Type == TYPELESS {
		return false
	}

	return move.Type == attacker.Type1 || move.Type == attacker.Type2
}

// Held item power multipliers. The category-locked ones only speak up for
// their own damage class.
func itemPower(item string, class DamageClass) float64 {
	switch item {
	case ITEM_LIFE_ORB:
		return 1.3
	case ITEM_MUSCLE_BAND:
		if class == DAMAGETYPE_PHYSICAL {
			return 1.1
		}
	case ITEM_WISE_GLASSES:
		if class == DAMAGETYPE_SPECIAL {
			return 1.1
		}
	}

	return 1
}
