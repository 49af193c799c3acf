package pokegpt

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectiveStats(t *testing.T) {
	stats := EffectiveStats(testAttacker())
	assert.Equal(t, StatBlock{Hp: 176, Attack: 152, Def: 120, SpAttack: 152, SpDef: 120, Speed: 120}, stats)

	stats = EffectiveStats(testDefender())
	assert.Equal(t, StatBlock{Hp: 176, Attack: 120, Def: 100, SpAttack: 120, SpDef: 100, Speed: 120}, stats)

	// A nature skews the floored non-HP stats but never touches HP
	adamant := testAttacker()
	adamant.Nature = NATURE_ADAMANT
	stats = EffectiveStats(adamant)
	assert.Equal(t, 176, stats.Hp)
	assert.Equal(t, 167, stats.Attack)
	assert.Equal(t, 136, stats.SpAttack)
}

func TestResolveEndToEnd(t *testing.T) {
	report, err := Resolve(GEN_9, testAttacker(), testDefender(), testMove(), FieldState{}, false, nil)
	require.NoError(t, err)

	assert.Equal(t, GEN_9, report.Gen)
	assert.Equal(t, 152, report.AttackerStats.Attack)
	assert.Equal(t, 100, report.DefenderStats.Def)
	assert.Equal(t, 1.0, report.TypeEffectiveness)
	assert.Equal(t, 1.0, report.WeatherPower)
	assert.Equal(t, 1.0, report.AttackStageMultiplier)
	assert.Equal(t, 1.0, report.DefenseStageMultiplier)
	assert.Equal(t, 1.5, report.Result.Multipliers.Stab)
	assert.InDelta(t, 93.288, report.Result.Damage, 1e-9)
	assert.Equal(t, 93, report.Damage)
}

func TestResolveSpecialUsesSpecialPair(t *testing.T) {
	move := Move{Name: "mist beam", Type: TYPE_WATER, Power: 90, Class: DAMAGETYPE_SPECIAL}

	// The fixture spreads make SpAttack/SpDef mirror Attack/Def exactly, so
	// the special number matches the physical one
	report, err := Resolve(GEN_9, testAttacker(), testDefender(), move, FieldState{}, false, nil)
	require.NoError(t, err)
	assert.Equal(t, 93, report.Damage)
}

func TestResolveStages(t *testing.T) {
	attacker := testAttacker()
	attacker.Stages.Attack = 2
	report, err := Resolve(GEN_9, attacker, testDefender(), testMove(), FieldState{}, false, nil)
	require.NoError(t, err)
	assert.Equal(t, 2.0, report.AttackStageMultiplier)
	assert.Equal(t, 183, report.Damage)

	defender := testDefender()
	defender.Stages.Def = 2
	report, err = Resolve(GEN_9, testAttacker(), defender, testMove(), FieldState{}, false, nil)
	require.NoError(t, err)
	assert.Equal(t, 2.0, report.DefenseStageMultiplier)
	assert.Equal(t, 48, report.Damage)

	// Out of range stages get pulled back to the rim, not rejected
	wild := testAttacker()
	wild.Stages.Attack = 40
	report, err = Resolve(GEN_9, wild, testDefender(), testMove(), FieldState{}, false, nil)
	require.NoError(t, err)
	assert.Equal(t, 4.0, report.AttackStageMultiplier)
}

func TestResolveStageTableByGeneration(t *testing.T) {
	attacker := testAttacker()
	attacker.Stages.Attack = -5

	report, err := Resolve(GEN_1, attacker, testDefender(), testMove(), FieldState{}, false, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.28, report.AttackStageMultiplier)

	report, err = Resolve(GEN_9, attacker, testDefender(), testMove(), FieldState{}, false, nil)
	require.NoError(t, err)
	assert.InDelta(t, 2.0/7.0, report.AttackStageMultiplier, 1e-12)
}

func TestResolveStrongWinds(t *testing.T) {
	defender := testDefender()
	defender.Type1 = TYPE_FLYING

	jab := Move{Name: "thunder jab", Type: TYPE_ELECTRIC, Power: 90, Class: DAMAGETYPE_PHYSICAL}

	report, err := Resolve(GEN_9, testAttacker(), defender, jab, FieldState{}, false, nil)
	require.NoError(t, err)
	assert.Equal(t, 2.0, report.TypeEffectiveness)

	windy := FieldState{Weather: WEATHER_STRONG_WINDS}
	report, err = Resolve(GEN_9, testAttacker(), defender, jab, windy, false, nil)
	require.NoError(t, err)
	assert.Equal(t, 1.0, report.TypeEffectiveness)

	// Resisted hits stay resisted; the winds only cap the super effective ones
	leaf := Move{Name: "leaf cutter", Type: TYPE_GRASS, Power: 90, Class: DAMAGETYPE_PHYSICAL}
	report, err = Resolve(GEN_9, testAttacker(), defender, leaf, windy, false, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.5, report.TypeEffectiveness)
}

func TestResolveBurn(t *testing.T) {
	burned := testAttacker()
	burned.Status = STATUS_BURN

	report, err := Resolve(GEN_9, burned, testDefender(), testMove(), FieldState{}, false, nil)
	require.NoError(t, err)
	assert.Equal(t, 46, report.Damage)

	burned.Ability = ABILITY_GUTS
	report, err = Resolve(GEN_9, burned, testDefender(), testMove(), FieldState{}, false, nil)
	require.NoError(t, err)
	assert.Equal(t, 93, report.Damage)

	burned.Ability = ""
	special := Move{Name: "mist beam", Type: TYPE_WATER, Power: 90, Class: DAMAGETYPE_SPECIAL}
	report, err = Resolve(GEN_9, burned, testDefender(), special, FieldState{}, false, nil)
	require.NoError(t, err)
	assert.Equal(t, 93, report.Damage)
}

func TestResolveScreens(t *testing.T) {
	reflect := FieldState{Reflect: true}
	report, err := Resolve(GEN_9, testAttacker(), testDefender(), testMove(), reflect, false, nil)
	require.NoError(t, err)
	assert.Equal(t, 46, report.Damage)

	// Light screen does nothing against a physical hit
	light := FieldState{LightScreen: true}
	report, err = Resolve(GEN_9, testAttacker(), testDefender(), testMove(), light, false, nil)
	require.NoError(t, err)
	assert.Equal(t, 93, report.Damage)

	special := Move{Name: "mist beam", Type: TYPE_WATER, Power: 90, Class: DAMAGETYPE_SPECIAL}
	report, err = Resolve(GEN_9, testAttacker(), testDefender(), special, light, false, nil)
	require.NoError(t, err)
	assert.Equal(t, 46, report.Damage)

	// A crit sails through the screen
	report, err = Resolve(GEN_9, testAttacker(), testDefender(), testMove(), reflect, true, nil)
	require.NoError(t, err)
	assert.Equal(t, 139, report.Damage)
}

func TestResolveCritByGeneration(t *testing.T) {
	report, err := Resolve(GEN_5, testAttacker(), testDefender(), testMove(), FieldState{}, true, nil)
	require.NoError(t, err)
	assert.Equal(t, 2.0, report.Result.Multipliers.Crit)
	assert.Equal(t, 186, report.Damage)

	report, err = Resolve(GEN_9, testAttacker(), testDefender(), testMove(), FieldState{}, true, nil)
	require.NoError(t, err)
	assert.Equal(t, 1.5, report.Result.Multipliers.Crit)
	assert.Equal(t, 139, report.Damage)
}

func TestResolveItems(t *testing.T) {
	attacker := testAttacker()

	attacker.Item = ITEM_LIFE_ORB
	report, err := Resolve(GEN_9, attacker, testDefender(), testMove(), FieldState{}, false, nil)
	require.NoError(t, err)
	assert.Equal(t, 121, report.Damage)

	attacker.Item = ITEM_MUSCLE_BAND
	report, err = Resolve(GEN_9, attacker, testDefender(), testMove(), FieldState{}, false, nil)
	require.NoError(t, err)
	assert.Equal(t, 102, report.Damage)

	// Wise glasses sit out a physical move
	attacker.Item = ITEM_WISE_GLASSES
	report, err = Resolve(GEN_9, attacker, testDefender(), testMove(), FieldState{}, false, nil)
	require.NoError(t, err)
	assert.Equal(t, 93, report.Damage)

	// Expert belt needs a super effective hit to say anything
	attacker.Item = ITEM_EXPERT_BELT
	report, err = Resolve(GEN_9, attacker, testDefender(), testMove(), FieldState{}, false, nil)
	require.NoError(t, err)
	assert.Equal(t, 93, report.Damage)

	attacker.Item = "leftovers"
	report, err = Resolve(GEN_9, attacker, testDefender(), testMove(), FieldState{}, false, nil)
	require.NoError(t, err)
	assert.Equal(t, 93, report.Damage)
}

func TestResolveWeatherPower(t *testing.T) {
	rain := FieldState{Weather: WEATHER_RAIN}
	report, err := Resolve(GEN_9, testAttacker(), testDefender(), testMove(), rain, false, nil)
	require.NoError(t, err)
	assert.Equal(t, 1.5, report.WeatherPower)
	assert.Equal(t, 139, report.Damage)

	sun := FieldState{Weather: WEATHER_SUN}
	report, err = Resolve(GEN_9, testAttacker(), testDefender(), testMove(), sun, false, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.5, report.WeatherPower)
	assert.Equal(t, 46, report.Damage)

	// Extreme sun washes a water move out entirely
	extreme := FieldState{Weather: WEATHER_EXTREME_SUN}
	report, err = Resolve(GEN_9, testAttacker(), testDefender(), testMove(), extreme, false, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, report.WeatherPower)
	assert.Equal(t, 0, report.Damage)
}

func TestResolveMultiTarget(t *testing.T) {
	field := FieldState{MultiTarget: true}

	report, err := Resolve(GEN_9, testAttacker(), testDefender(), testMove(), field, false, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.75, report.Result.Multipliers.Targets)
	assert.Equal(t, 69, report.Damage)

	report, err = Resolve(GEN_5, testAttacker(), testDefender(), testMove(), field, false, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.5, report.Result.Multipliers.Targets)
	assert.Equal(t, 46, report.Damage)
}

func TestResolveTypelessMove(t *testing.T) {
	move := Move{Name: "struggle", Type: TYPELESS, Power: 90, Class: DAMAGETYPE_PHYSICAL}

	report, err := Resolve(GEN_9, testAttacker(), testDefender(), move, FieldState{}, false, nil)
	require.NoError(t, err)
	assert.Equal(t, 1.0, report.TypeEffectiveness)
	assert.Equal(t, 1.0, report.Result.Multipliers.Stab)
	assert.Equal(t, 62, report.Damage)
}

func TestResolveRandomized(t *testing.T) {
	rng := seededRNG()
	for range iterCount {
		report, err := Resolve(GEN_9, testAttacker(), testDefender(), testMove(), FieldState{}, false, rng)
		require.NoError(t, err)
		checkDamageRange(t, report.Damage, 79, 93)
		assert.Equal(t, report.Damage, int(math.Floor(report.Result.Damage)))
	}
}

func TestResolveErrors(t *testing.T) {
	_, err := Resolve(Generation(0), testAttacker(), testDefender(), testMove(), FieldState{}, false, nil)
	require.ErrorIs(t, err, ErrFormat)

	_, err = Resolve(Generation(10), testAttacker(), testDefender(), testMove(), FieldState{}, false, nil)
	require.ErrorIs(t, err, ErrFormat)

	badMove := testMove()
	badMove.Type = ElementType(99)
	_, err = Resolve(GEN_9, testAttacker(), testDefender(), badMove, FieldState{}, false, nil)
	require.ErrorIs(t, err, ErrUnknownType)

	// The delta variant is a defensive fiction; no move carries it
	deltaMove := testMove()
	deltaMove.Type = TYPE_FLYING_DELTA
	_, err = Resolve(GEN_9, testAttacker(), testDefender(), deltaMove, FieldState{}, false, nil)
	require.ErrorIs(t, err, ErrUnknownType)

	badAttacker := testAttacker()
	badAttacker.Type1 = ElementType(99)
	_, err = Resolve(GEN_9, badAttacker, testDefender(), testMove(), FieldState{}, false, nil)
	require.ErrorIs(t, err, ErrUnknownType)

	badDefender := testDefender()
	badDefender.Type2 = ElementType(99)
	_, err = Resolve(GEN_9, testAttacker(), badDefender, testMove(), FieldState{}, false, nil)
	require.ErrorIs(t, err, ErrUnknownType)
}

func TestItemPower(t *testing.T) {
	assert.Equal(t, 1.3, itemPower(ITEM_LIFE_ORB, DAMAGETYPE_PHYSICAL))
	assert.Equal(t, 1.3, itemPower(ITEM_LIFE_ORB, DAMAGETYPE_SPECIAL))
	assert.Equal(t, 1.1, itemPower(ITEM_MUSCLE_BAND, DAMAGETYPE_PHYSICAL))
	assert.Equal(t, 1.0, itemPower(ITEM_MUSCLE_BAND, DAMAGETYPE_SPECIAL))
	assert.Equal(t, 1.1, itemPower(ITEM_WISE_GLASSES, DAMAGETYPE_SPECIAL))
	assert.Equal(t, 1.0, itemPower(ITEM_WISE_GLASSES, DAMAGETYPE_PHYSICAL))
	assert.Equal(t, 1.0, itemPower("", DAMAGETYPE_PHYSICAL))
	assert.Equal(t, 1.0, itemPower("leftovers", DAMAGETYPE_SPECIAL))
}
