package dex

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pokegpt "github.com/tacowhisperer/pokeGPT"
)

const testStatCsv = `Name,HP,Attack,Defense,SpecialAttack,SpecialDefense,Speed
Charmander,39,52,43,60,50,65
Gyarados,95,125,79,60,100,81
Orphaned,10,10,10,10,10,10
`

const testTraitJson = `{
	"charmander": {"types": ["Fire"], "abilities": ["blaze"]},
	"gyarados": {"types": ["Water", "Flying"], "abilities": ["intimidate"]},
	"ghost row": {"types": ["Ghost"], "abilities": []}
}`

func TestLoadBaseStats(t *testing.T) {
	rows, err := LoadBaseStats([]byte(testStatCsv))
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Charmander", rows[0].Name)
	assert.Equal(t, pokegpt.StatBlock{Hp: 39, Attack: 52, Def: 43, SpAttack: 60, SpDef: 50, Speed: 65}, rows[0].Base)
}

func TestLoadBaseStatsRejectsBadValues(t *testing.T) {
	_, err := LoadBaseStats([]byte("Name,HP,Attack,Defense,SpecialAttack,SpecialDefense,Speed\nBad,x,1,1,1,1,1\n"))
	assert.Error(t, err)

	_, err = LoadBaseStats([]byte("Name,HP\nBad,1\n"))
	assert.Error(t, err)
}

func TestLoadTraits(t *testing.T) {
	traits, err := LoadTraits([]byte(testTraitJson))
	require.NoError(t, err)
	require.Len(t, traits, 3)

	assert.Equal(t, []string{"Water", "Flying"}, traits["gyarados"].Types)
}

func TestMerge(t *testing.T) {
	rows := pokegpt.Must(LoadBaseStats([]byte(testStatCsv)))
	traits := pokegpt.Must(LoadTraits([]byte(testTraitJson)))

	records, report, err := Merge(rows, traits)
	require.NoError(t, err)

	assert.Equal(t, 2, report.Matched)
	assert.Equal(t, []string{"Orphaned"}, report.UnmatchedStats)
	assert.Equal(t, []string{"ghost row"}, report.UnmatchedTraits)

	registry := NewRegistry(records)
	record, ok := registry.FindByName("charmander")
	require.True(t, ok)
	assert.Equal(t, pokegpt.TYPE_FIRE, record.Types[0])
	assert.Equal(t, pokegpt.TYPELESS, record.Types[1])
}

func TestMergeRejectsUnknownType(t *testing.T) {
	rows := []BaseRow{{Name: "Glitch", Base: pokegpt.StatBlock{Hp: 1}}}
	traits := map[string]TraitRow{"glitch": {Types: []string{"Bird"}}}

	_, _, err := Merge(rows, traits)
	assert.ErrorIs(t, err, pokegpt.ErrUnknownType)
}

func TestDatasetRoundTrip(t *testing.T) {
	encoded, err := EncodeDataset(testRecords())
	require.NoError(t, err)

	decoded, err := LoadDataset(encoded)
	require.NoError(t, err)

	assert.Equal(t, testRecords(), decoded)
}

func TestDefaultLoader(t *testing.T) {
	files := fstest.MapFS{
		BaseStatsFile: &fstest.MapFile{Data: []byte(testStatCsv)},
		TraitsFile:    &fstest.MapFile{Data: []byte(testTraitJson)},
	}

	registry, err := DefaultLoader(files)
	require.NoError(t, err)

	assert.Equal(t, 2, registry.Len())

	_, ok := registry.FindByName("orphaned")
	assert.False(t, ok)
}

func TestDefaultLoaderMissingFile(t *testing.T) {
	files := fstest.MapFS{
		BaseStatsFile: &fstest.MapFile{Data: []byte(testStatCsv)},
	}

	_, err := DefaultLoader(files)
	assert.Error(t, err)
}
