package dex

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"strconv"

	pokegpt "github.com/tacowhisperer/pokeGPT"
	"golang.org/x/sync/errgroup"
)

// Default file names DefaultLoader expects inside its fs.FS.
const (
	BaseStatsFile = "basestats.csv"
	TraitsFile    = "traits.json"
	DatasetFile   = "dex.json"
)

// BaseRow is one row of the base stat source table.
type BaseRow struct {
	Name string
	Base pokegpt.StatBlock
}

// TraitRow carries the typing and abilities half of the dataset, keyed by
// creature name in the source file.
type TraitRow struct {
	Types     []string `json:"types"`
	Abilities []string `json:"abilities"`
}

// MergeReport counts what happened during a merge so callers can log or
// reject a suspicious join.
type MergeReport struct {
	Matched         int
	UnmatchedStats  []string
	UnmatchedTraits []string
}

// LoadBaseStats parses a csv file with a header row and the columns:
// Name, HP, Attack, Defense, SpecialAttack, SpecialDefense, Speed
// in that order. All stat values must be valid integers.
func LoadBaseStats(fileBytes []byte) ([]BaseRow, error) {
	csvReader := csv.NewReader(bytes.NewBuffer(fileBytes))
	csvReader.Read()
	rows, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("invalid base stat csv: %w", err)
	}

	logger := internalLogger.WithName("basestat_parsing")
	baseRows := make([]BaseRow, 0, len(rows))

	for i, row := range rows {
		if len(row) != 7 {
			return nil, fmt.Errorf("base stat row %d has %d columns, want 7", i+1, len(row))
		}

		name := row[0]
		var stats [6]int
		for col := 1; col < 7; col++ {
			value, err := strconv.ParseInt(row[col], 10, 16)
			if err != nil {
				logger.Error(err, "invalid stat value", "row", i+1, "column", col, "name", name)
				return nil, err
			}
			stats[col-1] = int(value)
		}

		logger.V(1).Info("loaded base stats", "name", name,
			"hp", stats[0], "attack", stats[1], "def", stats[2],
			"spattack", stats[3], "spdef", stats[4], "speed", stats[5])

		baseRows = append(baseRows, BaseRow{
			Name: name,
			Base: pokegpt.StatBlock{
				Hp:       stats[0],
				Attack:   stats[1],
				Def:      stats[2],
				SpAttack: stats[3],
				SpDef:    stats[4],
				Speed:    stats[5],
			},
		})
	}

	internalLogger.Info("loaded base stat rows", "count", len(baseRows))

	return baseRows, nil
}

// LoadTraits parses json mapping creature names to their typing and
// abilities.
func LoadTraits(fileBytes []byte) (map[string]TraitRow, error) {
	traits := make(map[string]TraitRow)
	if err := json.Unmarshal(fileBytes, &traits); err != nil {
		return nil, fmt.Errorf("invalid trait json: %w", err)
	}

	internalLogger.Info("loaded trait rows", "count", len(traits))

	return traits, nil
}

// Merge joins the two source tables on normalized names. Rows present in
// only one table land in the report's unmatched lists and are skipped; a
// trait row naming a type the engine does not know fails the whole merge,
// since guessing a typing would corrupt every matchup downstream.
func Merge(stats []BaseRow, traits map[string]TraitRow) ([]CreatureRecord, MergeReport, error) {
	normalizedTraits := make(map[string]TraitRow, len(traits))
	for name, row := range traits {
		normalizedTraits[NormalizeName(name)] = row
	}

	var report MergeReport
	records := make([]CreatureRecord, 0, len(stats))
	claimed := make(map[string]bool, len(stats))

	for _, row := range stats {
		key := NormalizeName(row.Name)
		trait, ok := normalizedTraits[key]
		if !ok {
			report.UnmatchedStats = append(report.UnmatchedStats, row.Name)
			continue
		}
		claimed[key] = true

		types, err := resolveTypes(row.Name, trait.Types)
		if err != nil {
			return nil, MergeReport{}, err
		}

		records = append(records, CreatureRecord{
			Name:      DisplayName(row.Name),
			Types:     types,
			Abilities: trait.Abilities,
			Base:      row.Base,
		})
	}

	for name := range normalizedTraits {
		if !claimed[name] {
			report.UnmatchedTraits = append(report.UnmatchedTraits, name)
		}
	}
	report.Matched = len(records)

	internalLogger.Info("merged dataset",
		"matched", report.Matched,
		"unmatched_stats", len(report.UnmatchedStats),
		"unmatched_traits", len(report.UnmatchedTraits))

	return records, report, nil
}

func resolveTypes(name string, typeNames []string) ([2]pokegpt.ElementType, error) {
	if len(typeNames) == 0 || len(typeNames) > 2 {
		return [2]pokegpt.ElementType{}, fmt.Errorf("creature %q has %d types, want 1 or 2", name, len(typeNames))
	}

	type1, err := pokegpt.TypeFromName(typeNames[0])
	if err != nil {
		return [2]pokegpt.ElementType{}, fmt.Errorf("creature %q: %w", name, err)
	}

	type2 := pokegpt.TYPELESS
	if len(typeNames) == 2 {
		type2, err = pokegpt.TypeFromName(typeNames[1])
		if err != nil {
			return [2]pokegpt.ElementType{}, fmt.Errorf("creature %q: %w", name, err)
		}
	}

	if type2 == type1 {
		type2 = pokegpt.TYPELESS
	}

	return [2]pokegpt.ElementType{type1, type2}, nil
}

// The merged dataset serializes with type names as strings so the file
// stays readable and diffs cleanly.
type datasetRecord struct {
	Name      string       `json:"name"`
	Types     []string     `json:"types"`
	Abilities []string     `json:"abilities"`
	Stats     datasetStats `json:"stats"`
}

type datasetStats struct {
	Hp       int `json:"hp"`
	Attack   int `json:"attack"`
	Defense  int `json:"defense"`
	SpAttack int `json:"spattack"`
	SpDef    int `json:"spdef"`
	Speed    int `json:"speed"`
}

// EncodeDataset renders merged records into the dataset json consumed by
// LoadDataset. Mono typings serialize with a single entry.
func EncodeDataset(records []CreatureRecord) ([]byte, error) {
	out := make([]datasetRecord, 0, len(records))
	for _, record := range records {
		types := []string{record.Types[0].String()}
		if record.Types[1] != pokegpt.TYPELESS {
			types = append(types, record.Types[1].String())
		}

		out = append(out, datasetRecord{
			Name:      record.Name,
			Types:     types,
			Abilities: record.Abilities,
			Stats: datasetStats{
				Hp:       record.Base.Hp,
				Attack:   record.Base.Attack,
				Defense:  record.Base.Def,
				SpAttack: record.Base.SpAttack,
				SpDef:    record.Base.SpDef,
				Speed:    record.Base.Speed,
			},
		})
	}

	return json.MarshalIndent(out, "", "  ")
}

// LoadDataset parses a prepared dataset file back into records.
func LoadDataset(fileBytes []byte) ([]CreatureRecord, error) {
	var parsed []datasetRecord
	if err := json.Unmarshal(fileBytes, &parsed); err != nil {
		return nil, fmt.Errorf("invalid dataset json: %w", err)
	}

	records := make([]CreatureRecord, 0, len(parsed))
	for _, entry := range parsed {
		types, err := resolveTypes(entry.Name, entry.Types)
		if err != nil {
			return nil, err
		}

		records = append(records, CreatureRecord{
			Name:      entry.Name,
			Types:     types,
			Abilities: entry.Abilities,
			Base: pokegpt.StatBlock{
				Hp:       entry.Stats.Hp,
				Attack:   entry.Stats.Attack,
				Def:      entry.Stats.Defense,
				SpAttack: entry.Stats.SpAttack,
				SpDef:    entry.Stats.SpDef,
				Speed:    entry.Stats.Speed,
			},
		})
	}

	internalLogger.Info("loaded prepared dataset", "count", len(records))

	return records, nil
}

// DefaultLoader reads both source tables out of files, in parallel, and
// hands back the merged registry. Unmatched rows are logged and dropped
// rather than failing the load.
func DefaultLoader(files fs.FS) (*Registry, error) {
	var statRows []BaseRow
	var traitRows map[string]TraitRow

	var group errgroup.Group

	group.Go(func() error {
		statBytes, err := readFile(files, BaseStatsFile)
		if err != nil {
			return err
		}

		statRows, err = LoadBaseStats(statBytes)
		return err
	})
	group.Go(func() error {
		traitBytes, err := readFile(files, TraitsFile)
		if err != nil {
			return err
		}

		traitRows, err = LoadTraits(traitBytes)
		return err
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	records, report, err := Merge(statRows, traitRows)
	if err != nil {
		return nil, err
	}

	for _, name := range report.UnmatchedStats {
		internalLogger.Info("base stat row has no trait row", "name", name)
	}
	for _, name := range report.UnmatchedTraits {
		internalLogger.Info("trait row has no base stat row", "name", name)
	}

	return NewRegistry(records), nil
}

func readFile(files fs.FS, path string) ([]byte, error) {
	file, err := files.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return io.ReadAll(file)
}
