package pokegpt

import (
	"fmt"
	"math/rand/v2"

	"github.com/go-logr/logr"
)

var damageLogger = func() logr.Logger {
	return internalLogger.WithName("damage")
}

// DamageInput carries one fully resolved attack: effective stats, stage and
// matchup multipliers already looked up, battle state reduced to flags. The
// damage chain never sees raw battle state.
//
// TypeEffectiveness and WeatherPower are literal: 0 there means the hit is
// nulled outright, so neutral is 1, not the zero value. NeutralDamageInput
// hands back an input with every multiplier already neutral.
type DamageInput struct {
	Level int
	Power int

	// Effective attacking and defending stats for the move's category,
	// before stage multipliers.
	Attack  float64
	Defense float64

	// Stage multipliers for the two stats above, 1 when unstaged.
	AttackStageMultiplier  float64
	DefenseStageMultiplier float64

	TypeEffectiveness float64
	WeatherPower      float64

	Stab bool
	// Adaptability-style trait deepening same-type attacks to x2
	Adaptability bool

	Crit bool
	// Sniper-style trait promoting the crit multiplier one rung
	Sniper bool

	Physical bool
	Burned   bool
	// Guts-style trait shrugging off the burn attack penalty
	Guts bool

	// A screen covers the defending side for this move's category
	Screen bool
	// The move hits more than one target
	MultiTarget bool

	// Held item power multiplier, 1 when no item applies
	ItemPower float64
	// Expert-belt-style item pushing super effective hits higher
	ExpertBelt bool
	// Tinted-lens-style trait doubling resisted hits
	TintedLens bool
}

// NeutralDamageInput builds an input with every multiplier neutral, ready
// for callers to flip just the flags they care about.
func NeutralDamageInput(level int, power int, attack float64, defense float64) DamageInput {
	return DamageInput{
		Level:                  level,
		Power:                  power,
		Attack:                 attack,
		Defense:                defense,
		AttackStageMultiplier:  1,
		DefenseStageMultiplier: 1,
		TypeEffectiveness:      1,
		WeatherPower:           1,
		ItemPower:              1,
	}
}

// withDefaults maps fields whose zero value has no physical meaning onto
// neutral, so hand-built inputs that skip them still behave. Type and
// weather multipliers stay literal since 0 is a real immunity there.
func (in DamageInput) withDefaults() DamageInput {
	if in.AttackStageMultiplier <= 0 {
		in.AttackStageMultiplier = 1
	}
	if in.DefenseStageMultiplier <= 0 {
		in.DefenseStageMultiplier = 1
	}
	if in.ItemPower <= 0 {
		in.ItemPower = 1
	}

	return in
}

// DamageMultipliers is the audit trail for one damage evaluation: every
// multiplier the chain applied, in application order.
type DamageMultipliers struct {
	Targets float64
	Weather float64
	Crit    float64
	Random  float64
	Stab    float64
	Type    float64
	Burn    float64
	Screen  float64
	Item    float64
	Ability float64
}

// DamageResult carries the fractional damage value plus the skeleton base
// and the applied multipliers. Callers floor Damage for display.
type DamageResult struct {
	Damage      float64
	Base        float64
	Multipliers DamageMultipliers
}

// The two formula families differ only in their fixed ratios. Everything
// else about the chain is shared.
type damageFamily struct {
	name         string
	critBoost    float64
	critPromoted float64
	spread       float64
}

var classicFamily = damageFamily{name: "classic", critBoost: 2, critPromoted: 3, spread: .5}
var modernFamily = damageFamily{name: "modern", critBoost: 1.5, critPromoted: 2.25, spread: .75}

// Damage picks the formula family for a generation: the classic chain
// through generation V and the modern chain from VI on. Generation I rides
// the classic chain with its own tables upstream; the flags it never had
// simply stay off.
func Damage(gen Generation, in DamageInput, rng *rand.Rand) (DamageResult, error) {
	if !gen.Valid() {
		return DamageResult{}, fmt.Errorf("%w: generation ordinal %d out of range", ErrFormat, int(gen))
	}

	if Must(gen.Matches("I-V")) {
		return DamageClassic(in, rng), nil
	}

	return DamageModern(in, rng), nil
}

// DamageClassic evaluates the generation II through V family: crits double
// damage and a sniper-style trait triples it, spread moves halve, screens
// halve but give way entirely to crits.
func DamageClassic(in DamageInput, rng *rand.Rand) DamageResult {
	return damageChain(in, rng, classicFamily)
}

// DamageModern evaluates the generation VI onward family: crits are x1.5
// with the promoted rung at x2.25, and spread moves soften to x0.75.
func DamageModern(in DamageInput, rng *rand.Rand) DamageResult {
	return damageChain(in, rng, modernFamily)
}

func damageChain(in DamageInput, rng *rand.Rand, family damageFamily) DamageResult {
	in = in.withDefaults()
	logger := damageLogger().WithValues("family", family.name)

	// Hard zeros end the chain before any arithmetic happens
	if in.Power <= 0 || in.TypeEffectiveness == 0 || in.WeatherPower == 0 {
		logger.V(1).Info("nulled hit",
			"power", in.Power,
			"typeEffectiveness", in.TypeEffectiveness,
			"weatherPower", in.WeatherPower)
		return DamageResult{Multipliers: DamageMultipliers{
			Targets: 1,
			Weather: in.WeatherPower,
			Crit:    1,
			Random:  1,
			Stab:    1,
			Type:    in.TypeEffectiveness,
			Burn:    1,
			Screen:  1,
			Item:    1,
			Ability: 1,
		}}
	}

	// A crit washes out adverse stages on both ends: the attacker's drops
	// and the defender's boosts stop applying, favorable stages stay.
	attackStage := in.AttackStageMultiplier
	defenseStage := in.DefenseStageMultiplier
	if in.Crit {
		if attackStage < 1 {
			attackStage = 1
		}
		if defenseStage > 1 {
			defenseStage = 1
		}
	}

	// Stats bottom out at 1
	a := max(in.Attack*attackStage, 1)
	d := max(in.Defense*defenseStage, 1)

	base := (float64(2*in.Level)/5+2)*float64(in.Power)*(a/d)/50 + 2

	var m DamageMultipliers

	m.Targets = 1
	if in.MultiTarget {
		m.Targets = family.spread
	}

	m.Weather = in.WeatherPower

	m.Crit = 1
	if in.Crit {
		m.Crit = family.critBoost
		if in.Sniper {
			m.Crit = family.critPromoted
		}
	}

	m.Random = 1
	if rng != nil {
		m.Random = float64(85+rng.IntN(16)) / 100
	}

	m.Stab = 1
	if in.Stab {
		m.Stab = 1.5
		if in.Adaptability {
			m.Stab = 2
		}
	}

	m.Type = in.TypeEffectiveness

	m.Burn = 1
	if in.Physical && in.Burned && !in.Guts {
		m.Burn = .5
	}

	m.Screen = 1
	if in.Screen && !in.Crit {
		m.Screen = .5
		if in.MultiTarget {
			m.Screen = 2.0 / 3.0
		}
	}

	m.Item = in.ItemPower
	if in.ExpertBelt && in.TypeEffectiveness > 1 {
		m.Item *= 1.2
	}

	m.Ability = 1
	if in.TintedLens && in.TypeEffectiveness < 1 {
		m.Ability *= 2
	}

	damage := base * m.Targets * m.Weather * m.Crit * m.Random * m.Stab * m.Type * m.Burn * m.Screen * m.Item * m.Ability

	logger.V(1).Info("damage chain",
		"base", base,
		"targets", m.Targets,
		"weather", m.Weather,
		"crit", m.Crit,
		"random", m.Random,
		"stab", m.Stab,
		"type", m.Type,
		"burn", m.Burn,
		"screen", m.Screen,
		"item", m.Item,
		"ability", m.Ability,
		"damage", damage)

	return DamageResult{Damage: damage, Base: base, Multipliers: m}
}
