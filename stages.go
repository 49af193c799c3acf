package pokegpt

import (
	"fmt"
	"math"

	"github.com/go-logr/logr"
)

var stageLogger = func() logr.Logger {
	return internalLogger.WithName("stages")
}

const (
	MIN_STAGE      = -6
	MAX_STAGE      = 6
	MAX_CRIT_STAGE = 4
)

// The first era kept one fixed table for every staged quantity, approximated
// ratios and all. Indexed stage+6.
var stageTableGen1 = [13]float64{0.25, 0.28, 0.33, 0.4, 0.5, 0.66, 1, 1.5, 2, 2.5, 3, 3.5, 4}

// Accuracy tables for the middle eras, indexed stage+6. They run on thirds
// rather than the core halves, and the +4 entry was retuned after era II.
var accuracyTableGen2 = [13]float64{0.33, 0.36, 0.43, 0.5, 0.6, 0.75, 1, 1.33, 1.66, 2, 2.33, 2.66, 3}
var accuracyTableGen34 = [13]float64{0.33, 0.36, 0.43, 0.5, 0.6, 0.75, 1, 1.33, 1.66, 2, 2.5, 2.66, 3}

// Crit chance by crit stage 0 through 4. Generation I tied crit rate to base
// speed instead of stages, so it has no ladder at all.
var critLadderGen2 = [5]float64{17.0 / 256, 1.0 / 8, 1.0 / 4, 85.0 / 256, 1.0 / 2}
var critLadderGen35 = [5]float64{1.0 / 16, 1.0 / 8, 1.0 / 4, 1.0 / 3, 1.0 / 2}
var critLadderGen6 = [5]float64{1.0 / 16, 1.0 / 8, 1.0 / 2, 1, 1}
var critLadderModern = [5]float64{1.0 / 24, 1.0 / 8, 1.0 / 2, 1, 1}

// MultiplierFor resolves the stage multiplier for one staged quantity under
// one generation's tables. Stages arrive as floats because callers may have
// been doing arithmetic on them: fractional stages floor onto the integer
// grid, and stages past +-6 clamp with a warning. HP has no stage and the
// crit stage maps to a chance rather than a multiplier, so both are refused.
func MultiplierFor(gen Generation, stat StatName, stage float64) (float64, error) {
	if !gen.Valid() {
		return 0, fmt.Errorf("%w: generation ordinal %d out of range", ErrFormat, int(gen))
	}

	switch stat {
	case STAT_HP:
		return 0, fmt.Errorf("%w: hp has no stage", ErrStage)
	case STAT_CRIT:
		return 0, fmt.Errorf("%w: the crit stage maps to a chance, see CritChance", ErrStage)
	case STAT_ATTACK, STAT_DEFENSE, STAT_SPATTACK, STAT_SPDEF, STAT_SPEED, STAT_ACCURACY, STAT_EVASION:
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownStat, int(stat))
	}

	s, err := floorStage(stat, stage, MIN_STAGE, MAX_STAGE)
	if err != nil {
		return 0, err
	}

	// Evasion reads the climb scale with the stage sign flipped: a defender
	// at +2 evasion divides the hit chance the way -2 accuracy would.
	lookup := s
	if stat == STAT_EVASION {
		lookup = -s
	}

	if Must(gen.Matches("I")) {
		return stageTableGen1[lookup+6], nil
	}

	switch stat {
	case STAT_ACCURACY, STAT_EVASION:
		return accuracyMultiplier(gen, lookup), nil
	default:
		return coreStageMultiplier(lookup), nil
	}
}

// AllMultipliers resolves the whole multiplier set for a stage block in one
// call. The crit stage is not included; it is a chance, not a multiplier.
func AllMultipliers(gen Generation, stages StageBlock) (map[StatName]float64, error) {
	multipliers := make(map[StatName]float64, len(STAGED_STATS))
	for _, stat := range STAGED_STATS {
		multiplier, err := MultiplierFor(gen, stat, float64(stages.Get(stat)))
		if err != nil {
			return nil, err
		}
		multipliers[stat] = multiplier
	}

	return multipliers, nil
}

// CritChance resolves a crit stage to a probability under one generation's
// ladder. Generation I derives crits from base speed rather than stages, so
// asking for its ladder is an error instead of a guess.
func CritChance(gen Generation, critStage float64) (float64, error) {
	if !gen.Valid() {
		return 0, fmt.Errorf("%w: generation ordinal %d out of range", ErrFormat, int(gen))
	}

	if Must(gen.Matches("I")) {
		return 0, fmt.Errorf("%w: generation I has no crit stages", ErrStage)
	}

	s, err := floorStage(STAT_CRIT, critStage, 0, MAX_CRIT_STAGE)
	if err != nil {
		return 0, err
	}

	switch {
	case Must(gen.Matches("II")):
		return critLadderGen2[s], nil
	case Must(gen.Matches("III-V")):
		return critLadderGen35[s], nil
	case Must(gen.Matches("VI")):
		return critLadderGen6[s], nil
	default:
		return critLadderModern[s], nil
	}
}

// The rational ramp shared by every staged stat after the first era.
func coreStageMultiplier(s int) float64 {
	return float64(2+max(0, s)) / float64(2-min(0, s))
}

func accuracyMultiplier(gen Generation, s int) float64 {
	switch {
	case Must(gen.Matches("II")):
		return accuracyTableGen2[s+6]
	case Must(gen.Matches("III-IV")):
		return accuracyTableGen34[s+6]
	default:
		return float64(3+max(0, s)) / float64(3-min(0, s))
	}
}

// floorStage validates a possibly fractional stage and floors it onto the
// integer grid. Non-finite or unrepresentable values are hard errors; values
// off the ends of the grid clamp with a warning.
func floorStage(stat StatName, stage float64, low int, high int) (int, error) {
	if math.IsNaN(stage) || math.IsInf(stage, 0) {
		return 0, fmt.Errorf("%w: %s stage %v is not finite", ErrStage, stat, stage)
	}

	floored := math.Floor(stage)
	if floored < math.MinInt32 || floored > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %s stage %v does not fit the stage grid", ErrStage, stat, floored)
	}

	s := int(floored)
	if s < low || s > high {
		clamped := min(max(s, low), high)
		stageLogger().Info("clamping out-of-range stage", "stat", stat.String(), "stage", s, "clamped", clamped)
		s = clamped
	}

	return s, nil
}
