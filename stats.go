package pokegpt

import (
	"fmt"

	"github.com/go-logr/logr"
)

var statLogger = func() logr.Logger {
	return internalLogger.WithName("stats")
}

// StatName discriminates the stat axes, battle-only axes included. Value
// equality makes these usable as map keys and switch tags everywhere.
type StatName int

const (
	STAT_HP StatName = iota
	STAT_ATTACK
	STAT_DEFENSE
	STAT_SPATTACK
	STAT_SPDEF
	STAT_SPEED
	STAT_ACCURACY
	STAT_EVASION
	STAT_CRIT
)

var statNames = map[StatName]string{
	STAT_HP:       "hp",
	STAT_ATTACK:   "attack",
	STAT_DEFENSE:  "defense",
	STAT_SPATTACK: "special-attack",
	STAT_SPDEF:    "special-defense",
	STAT_SPEED:    "speed",
	STAT_ACCURACY: "accuracy",
	STAT_EVASION:  "evasion",
	STAT_CRIT:     "crit",
}

func (s StatName) String() string {
	name, ok := statNames[s]
	if !ok {
		return fmt.Sprintf("StatName(%d)", int(s))
	}

	return name
}

// CORE_STATS are the six persistent stats every creature carries.
var CORE_STATS = [...]StatName{STAT_HP, STAT_ATTACK, STAT_DEFENSE, STAT_SPATTACK, STAT_SPDEF, STAT_SPEED}

// STAGED_STATS are the seven staged quantities, in display order. The crit
// stage rides in StageBlock too but resolves to a chance, not a multiplier.
var STAGED_STATS = [...]StatName{STAT_ATTACK, STAT_DEFENSE, STAT_SPATTACK, STAT_SPDEF, STAT_SPEED, STAT_ACCURACY, STAT_EVASION}

const (
	MAX_IV       = 31
	MAX_EV       = 252
	MAX_TOTAL_EV = 510

	MIN_LEVEL = 1
	MAX_LEVEL = 100
)

// StatBlock holds one value per core stat. The same shape stands in for
// base stats, IV spreads, EV spreads and computed stat sheets.
type StatBlock struct {
	Hp       int
	Attack   int
	Def      int
	SpAttack int
	SpDef    int
	Speed    int
}

func (b StatBlock) Get(stat StatName) int {
	switch stat {
	case STAT_HP:
		return b.Hp
	case STAT_ATTACK:
		return b.Attack
	case STAT_DEFENSE:
		return b.Def
	case STAT_SPATTACK:
		return b.SpAttack
	case STAT_SPDEF:
		return b.SpDef
	case STAT_SPEED:
		return b.Speed
	}

	return 0
}

func (b *StatBlock) Set(stat StatName, value int) {
	switch stat {
	case STAT_HP:
		b.Hp = value
	case STAT_ATTACK:
		b.Attack = value
	case STAT_DEFENSE:
		b.Def = value
	case STAT_SPATTACK:
		b.SpAttack = value
	case STAT_SPDEF:
		b.SpDef = value
	case STAT_SPEED:
		b.Speed = value
	}
}

func (b StatBlock) Total() int {
	return b.Hp + b.Attack + b.Def + b.SpAttack + b.SpDef + b.Speed
}

// StageBlock holds the in-battle stage for each staged quantity plus the
// crit stage. The zero value means no stages, which is the common case.
type StageBlock struct {
	Attack   int
	Def      int
	SpAttack int
	SpDef    int
	Speed    int
	Accuracy int
	Evasion  int
	Crit     int
}

func (b StageBlock) Get(stat StatName) int {
	switch stat {
	case STAT_ATTACK:
		return b.Attack
	case STAT_DEFENSE:
		return b.Def
	case STAT_SPATTACK:
		return b.SpAttack
	case STAT_SPDEF:
		return b.SpDef
	case STAT_SPEED:
		return b.Speed
	case STAT_ACCURACY:
		return b.Accuracy
	case STAT_EVASION:
		return b.Evasion
	case STAT_CRIT:
		return b.Crit
	}

	return 0
}

// A spreadRule is the validation policy for one kind of per-stat value.
// Per-stat violations clamp with a warning; only the EV rule's shared total
// is a hard error, since silently shaving EVs would change which build the
// caller asked for.
type spreadRule struct {
	kind string
	low  int
	high int
	// 0 means the rule does not cap the total
	sumCap int
}

var (
	ivRule        = spreadRule{kind: "iv", low: 0, high: MAX_IV}
	evRule        = spreadRule{kind: "ev", low: 0, high: MAX_EV, sumCap: MAX_TOTAL_EV}
	levelRule     = spreadRule{kind: "level", low: MIN_LEVEL, high: MAX_LEVEL}
	stageRule     = spreadRule{kind: "stage", low: MIN_STAGE, high: MAX_STAGE}
	critStageRule = spreadRule{kind: "crit stage", low: 0, high: MAX_CRIT_STAGE}
)

func (r spreadRule) clamp(label string, value int) int {
	if value < r.low || value > r.high {
		clamped := min(max(value, r.low), r.high)
		statLogger().Info("clamping out-of-range value",
			"kind", r.kind, "stat", label, "value", value, "clamped", clamped)
		return clamped
	}

	return value
}

func (r spreadRule) clampBlock(block StatBlock) StatBlock {
	return StatBlock{
		Hp:       r.clamp(STAT_HP.String(), block.Hp),
		Attack:   r.clamp(STAT_ATTACK.String(), block.Attack),
		Def:      r.clamp(STAT_DEFENSE.String(), block.Def),
		SpAttack: r.clamp(STAT_SPATTACK.String(), block.SpAttack),
		SpDef:    r.clamp(STAT_SPDEF.String(), block.SpDef),
		Speed:    r.clamp(STAT_SPEED.String(), block.Speed),
	}
}

// NewIVs clamps every value onto the 0..31 window. Clamping an already
// legal spread hands back the identical spread.
func NewIVs(ivs StatBlock) StatBlock {
	return ivRule.clampBlock(ivs)
}

// NewEVs clamps every value onto the 0..252 window and then enforces the
// shared 510 cap across all six. A spread whose per-stat values are legal
// but whose total is not wraps ErrEvTotal.
func NewEVs(evs StatBlock) (StatBlock, error) {
	clamped := evRule.clampBlock(evs)
	if total := clamped.Total(); total > evRule.sumCap {
		return StatBlock{}, fmt.Errorf("%w: total %d is greater than the max allowed %d", ErrEvTotal, total, evRule.sumCap)
	}

	return clamped, nil
}

// NewStages clamps every stage onto its grid: -6..6 for the staged stats
// and 0..4 for the crit stage.
func NewStages(stages StageBlock) StageBlock {
	return StageBlock{
		Attack:   stageRule.clamp(STAT_ATTACK.String(), stages.Attack),
		Def:      stageRule.clamp(STAT_DEFENSE.String(), stages.Def),
		SpAttack: stageRule.clamp(STAT_SPATTACK.String(), stages.SpAttack),
		SpDef:    stageRule.clamp(STAT_SPDEF.String(), stages.SpDef),
		Speed:    stageRule.clamp(STAT_SPEED.String(), stages.Speed),
		Accuracy: stageRule.clamp(STAT_ACCURACY.String(), stages.Accuracy),
		Evasion:  stageRule.clamp(STAT_EVASION.String(), stages.Evasion),
		Crit:     critStageRule.clamp(STAT_CRIT.String(), stages.Crit),
	}
}

// HP computes the effective hit points stat. Out-of-window IVs, EVs and
// levels clamp first, same as everywhere else.
//
//	floor(0.01 * (2*base + iv + floor(0.25*ev)) * level) + level + 10
//
// All-integer math keeps the floors exact.
func HP(base int, iv int, ev int, level int) int {
	iv = ivRule.clamp(STAT_HP.String(), iv)
	ev = evRule.clamp(STAT_HP.String(), ev)
	level = levelRule.clamp("level", level)

	return (2*base+iv+ev/4)*level/100 + level + 10
}

// NonHP computes an effective non-HP stat. The nature multiplier applies
// last and the result is handed back unfloored so callers can decide how to
// round for display.
//
//	natureMultiplier * (floor(0.01 * (2*base + iv + floor(0.25*ev)) * level) + 5)
func NonHP(stat StatName, base int, iv int, ev int, level int, natureMultiplier float64) float64 {
	iv = ivRule.clamp(stat.String(), iv)
	ev = evRule.clamp(stat.String(), ev)
	level = levelRule.clamp("level", level)

	return natureMultiplier * float64((2*base+iv+ev/4)*level/100+5)
}
