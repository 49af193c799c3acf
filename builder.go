package pokegpt

import (
	"math/rand/v2"

	"github.com/go-logr/logr"
	"github.com/samber/lo"
)

var builderLogger = func() logr.Logger {
	return internalLogger.WithName("builder")
}

// CreatureBuilder assembles a Creature from a base record, filling blanks
// with sensible or random values. Randomness comes only from the injected
// rng, so seeded builds reproduce exactly.
type CreatureBuilder struct {
	creature Creature
	rng      *rand.Rand
	err      error
}

func NewCreatureBuilder(name string, type1 ElementType, type2 ElementType, base StatBlock, rng *rand.Rand) *CreatureBuilder {
	// A doubled-up dual typing collapses to mono
	if type2 == type1 {
		type2 = TYPELESS
	}

	return &CreatureBuilder{
		creature: Creature{
			Name:   name,
			Level:  1,
			Type1:  type1,
			Type2:  type2,
			Base:   base,
			Nature: NATURE_HARDY,
		},
		rng: rng,
	}
}

func (cb *CreatureBuilder) SetLevel(level int) *CreatureBuilder {
	cb.creature.Level = levelRule.clamp("level", level)
	return cb
}

// SetRandomLevel rolls a level in [low, high).
func (cb *CreatureBuilder) SetRandomLevel(low int, high int) *CreatureBuilder {
	if high <= low {
		return cb.SetLevel(low)
	}

	return cb.SetLevel(low + cb.rng.IntN(high-low))
}

func (cb *CreatureBuilder) SetIVs(ivs StatBlock) *CreatureBuilder {
	cb.creature.IVs = NewIVs(ivs)

	builderLogger().V(1).Info("setting ivs",
		"hp", cb.creature.IVs.Hp,
		"attack", cb.creature.IVs.Attack,
		"def", cb.creature.IVs.Def,
		"spattack", cb.creature.IVs.SpAttack,
		"spdef", cb.creature.IVs.SpDef,
		"speed", cb.creature.IVs.Speed)

	return cb
}

func (cb *CreatureBuilder) SetPerfectIVs() *CreatureBuilder {
	cb.creature.IVs = StatBlock{
		Hp:       MAX_IV,
		Attack:   MAX_IV,
		Def:      MAX_IV,
		SpAttack: MAX_IV,
		SpDef:    MAX_IV,
		Speed:    MAX_IV,
	}

	builderLogger().V(1).Info("setting perfect ivs")

	return cb
}

func (cb *CreatureBuilder) SetRandomIVs() *CreatureBuilder {
	var ivs StatBlock
	for _, stat := range CORE_STATS {
		ivs.Set(stat, cb.rng.IntN(MAX_IV+1))
	}

	cb.creature.IVs = ivs
	builderLogger().V(1).Info("setting random ivs")

	return cb
}

// SetEVs validates like NewEVs does: per-stat values clamp, a total past
// the shared cap is an error that surfaces from Build.
func (cb *CreatureBuilder) SetEVs(evs StatBlock) *CreatureBuilder {
	validated, err := NewEVs(evs)
	if err != nil {
		cb.err = err
		return cb
	}

	cb.creature.EVs = validated

	builderLogger().V(1).Info("setting evs",
		"hp", validated.Hp,
		"attack", validated.Attack,
		"def", validated.Def,
		"spattack", validated.SpAttack,
		"spdef", validated.SpDef,
		"speed", validated.Speed)

	return cb
}

// SetRandomEVs deals the whole 510 pool out at random without pushing any
// one stat past 252.
func (cb *CreatureBuilder) SetRandomEVs() *CreatureBuilder {
	pool := MAX_TOTAL_EV
	var evs StatBlock

	for pool > 0 {
		stat := CORE_STATS[cb.rng.IntN(len(CORE_STATS))]
		room := MAX_EV - evs.Get(stat)
		if room == 0 {
			continue
		}

		grant := cb.rng.IntN(min(room, pool)) + 1
		evs.Set(stat, evs.Get(stat)+grant)
		pool -= grant
	}

	cb.creature.EVs = evs
	builderLogger().V(1).Info("setting random evs", "total", evs.Total())

	return cb
}

func (cb *CreatureBuilder) SetNature(nature Nature) *CreatureBuilder {
	cb.creature.Nature = nature
	return cb
}

func (cb *CreatureBuilder) SetRandomNature() *CreatureBuilder {
	cb.creature.Nature = NATURES[cb.rng.IntN(len(NATURES))]
	return cb
}

func (cb *CreatureBuilder) SetAbility(ability string) *CreatureBuilder {
	cb.creature.Ability = ability
	return cb
}

func (cb *CreatureBuilder) SetRandomAbility(possibleAbilities []string) *CreatureBuilder {
	candidates := lo.Filter(possibleAbilities, func(ability string, _ int) bool {
		return ability != ""
	})
	if len(candidates) == 0 {
		builderLogger().Info("this creature was given no abilities to randomize with", "name", cb.creature.Name)
		return cb
	}

	cb.creature.Ability = candidates[cb.rng.IntN(len(candidates))]

	return cb
}

func (cb *CreatureBuilder) SetItem(item string) *CreatureBuilder {
	cb.creature.Item = item
	return cb
}

func (cb *CreatureBuilder) SetStatus(status Status) *CreatureBuilder {
	cb.creature.Status = status
	return cb
}

func (cb *CreatureBuilder) SetStages(stages StageBlock) *CreatureBuilder {
	cb.creature.Stages = NewStages(stages)
	return cb
}

// Build hands the assembled creature over, or the first error any setter
// hit along the way.
func (cb *CreatureBuilder) Build() (Creature, error) {
	if cb.err != nil {
		return Creature{}, cb.err
	}

	builderLogger().V(1).Info("building creature", "name", cb.creature.Name)

	return cb.creature, nil
}
