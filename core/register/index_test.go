package register_test

import (
	"errors"
	"testing"

	"stock-check/core/register"
	"stock-check/core/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTable() register.Table {
	return register.Table{
		Header: []string{"Serialnumber", "State", "Name", "lastuser", "Ativo", "Model"},
		Rows: []register.Row{
			{"Serialnumber": "ABC12345", "State": "stock", "Name": "NB-STOCK-01", "lastuser": "IT-Room", "Ativo": nil, "Model": "T14"},
			{"Serialnumber": "XYZ98765", "State": "Ativo", "Name": "NB-USER-02", "lastuser": "joao.silva", "Ativo": "1001", "Model": "T14"},
			{"Serialnumber": "JQHP813", "State": "Estoque", "Name": "NB-STOCK-03", "lastuser": "IT-Room", "Ativo": 9856.0, "Model": "E14"},
			{"Serialnumber": "abc12345", "State": "broken", "Name": "NB-DUP-04", "lastuser": "maria.souza", "Ativo": "2002", "Model": "T14"},
			{"Serialnumber": "OLD11111", "State": "sold", "Name": "NB-OLD-05", "lastuser": "legacy.user", "Ativo": "9856.0", "Model": "X1"},
			{"Serialnumber": "  ", "State": "stock", "Name": "blank", "lastuser": "", "Ativo": nil, "Model": ""},
		},
	}
}

func TestBuild(t *testing.T) {
	idx, err := register.Build("lansweeper.xlsx", sampleTable())
	require.NoError(t, err)

	assert.Equal(t, "lansweeper.xlsx", idx.Filename())
	assert.NotEmpty(t, idx.ID())
	assert.Equal(t, 6, idx.Len(), "blank serial rows are kept")
	assert.True(t, idx.HasAssetTags())

	records := idx.Records()
	assert.Equal(t, "ABC12345", records[0].Serial)
	assert.Equal(t, "9856", records[2].AssetTag)
	assert.Equal(t, state.Stock, records[2].State)
	assert.Equal(t, "Estoque", records[2].RawState)
	assert.Empty(t, records[5].Serial)
	assert.Equal(t, state.Stock, records[5].State)
}

func TestBuild_BlankSerialIsNotIndexed(t *testing.T) {
	table := register.Table{
		Header: []string{"Serialnumber", "State", "Name", "lastuser", "Ativo"},
		Rows: []register.Row{
			{"Serialnumber": "ABC12345", "State": "stock", "Name": "NB-01", "lastuser": "IT", "Ativo": "1001"},
			{"Serialnumber": nil, "State": "stock", "Name": "NB-02", "lastuser": "IT", "Ativo": "2002"},
		},
	}
	idx, err := register.Build("r.xlsx", table)
	require.NoError(t, err)

	assert.Equal(t, 2, idx.Len())
	assert.Equal(t, 2, idx.CountByState(state.Stock))
	assert.Empty(t, idx.Collisions())

	_, ok := idx.FindBySerial("")
	assert.False(t, ok)
	_, ok = idx.FindByAssetTag("2002")
	assert.False(t, ok)
}

func TestBuild_MissingColumns(t *testing.T) {
	table := register.Table{
		Header: []string{"Serialnumber", "Name"},
		Rows:   []register.Row{{"Serialnumber": "ABC", "Name": "x"}},
	}

	idx, err := register.Build("bad.xlsx", table)
	assert.Nil(t, idx)

	var missing *register.MissingColumnsError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, []string{"State", "lastuser"}, missing.Columns)
	assert.Contains(t, err.Error(), "State, lastuser")
}

func TestBuild_HeaderMatchingIsLenient(t *testing.T) {
	table := register.Table{
		Header: []string{" serialnumber ", "STATE", "name", "LastUser"},
		Rows:   []register.Row{{" serialnumber ": "S-1", "STATE": "ativo", "name": "host", "LastUser": "user"}},
	}

	idx, err := register.Build("x.csv", table)
	require.NoError(t, err)
	assert.False(t, idx.HasAssetTags())

	rec, ok := idx.FindBySerial("s-1")
	require.True(t, ok)
	assert.Equal(t, state.Active, rec.State)
	assert.Equal(t, "host", rec.Hostname)
	assert.Equal(t, "user", rec.LastUser)
}

func TestBuild_Empty(t *testing.T) {
	t.Run("No rows", func(t *testing.T) {
		_, err := register.Build("empty.xlsx", register.Table{Header: register.RequiredColumns})
		assert.ErrorIs(t, err, register.ErrEmptyRegister)
	})

	t.Run("Only blank serials", func(t *testing.T) {
		table := register.Table{
			Header: register.RequiredColumns,
			Rows:   []register.Row{{"Serialnumber": "", "State": "stock"}},
		}
		_, err := register.Build("blank.xlsx", table)
		assert.ErrorIs(t, err, register.ErrEmptyRegister)
	})
}

func TestFindBySerial(t *testing.T) {
	idx, err := register.Build("r.xlsx", sampleTable())
	require.NoError(t, err)

	rec, ok := idx.FindBySerial("xyz98765")
	require.True(t, ok)
	assert.Equal(t, "XYZ98765", rec.Serial)
	assert.Equal(t, state.Active, rec.State)

	_, ok = idx.FindBySerial("NOTFOUND")
	assert.False(t, ok)
}

func TestFindBySerial_DuplicateFirstWins(t *testing.T) {
	idx, err := register.Build("r.xlsx", sampleTable())
	require.NoError(t, err)

	rec, ok := idx.FindBySerial("ABC12345")
	require.True(t, ok)
	assert.Equal(t, "NB-STOCK-01", rec.Hostname)

	collisions := idx.Collisions()
	require.Len(t, collisions, 1)
	assert.Equal(t, register.Collision{Serial: "abc12345", KeptRow: 0, ShadowRow: 3}, collisions[0])
}

func TestFindByAssetTag(t *testing.T) {
	idx, err := register.Build("r.xlsx", sampleTable())
	require.NoError(t, err)

	t.Run("Float cell matches integer query", func(t *testing.T) {
		rec, ok := idx.FindByAssetTag("9856")
		require.True(t, ok)
		assert.Equal(t, "JQHP813", rec.Serial, "first row with the tag wins")
	})

	t.Run("String cell", func(t *testing.T) {
		rec, ok := idx.FindByAssetTag("1001")
		require.True(t, ok)
		assert.Equal(t, "XYZ98765", rec.Serial)
	})

	t.Run("Float query", func(t *testing.T) {
		rec, ok := idx.FindByAssetTag("1001.0")
		require.True(t, ok)
		assert.Equal(t, "XYZ98765", rec.Serial)
	})

	t.Run("Missing", func(t *testing.T) {
		_, ok := idx.FindByAssetTag("4242")
		assert.False(t, ok)
		_, ok = idx.FindByAssetTag("")
		assert.False(t, ok)
	})
}

func TestFindByAssetTag_NoColumn(t *testing.T) {
	table := register.Table{
		Header: register.RequiredColumns,
		Rows:   []register.Row{{"Serialnumber": "1001", "State": "stock", "Name": "n", "lastuser": "u"}},
	}
	idx, err := register.Build("r.xlsx", table)
	require.NoError(t, err)

	_, ok := idx.FindByAssetTag("1001")
	assert.False(t, ok)
}

func TestCountByState(t *testing.T) {
	idx, err := register.Build("r.xlsx", sampleTable())
	require.NoError(t, err)

	assert.Equal(t, 3, idx.CountByState(state.Stock), "blank serial rows count towards their state")
	assert.Equal(t, 1, idx.CountByState(state.Active))
	assert.Equal(t, 1, idx.CountByState(state.Broken))
	assert.Equal(t, 1, idx.CountByState(state.Sold))
	assert.Equal(t, 0, idx.CountByState(state.Stolen))

	counts := idx.StateCounts()
	counts[state.Stock] = 99
	assert.Equal(t, 3, idx.CountByState(state.Stock), "StateCounts returns a copy")
}

func TestAdjustmentList(t *testing.T) {
	idx, err := register.Build("r.xlsx", sampleTable())
	require.NoError(t, err)

	list := idx.AdjustmentList()
	require.Len(t, list, 1)
	assert.Equal(t, "XYZ98765", list[0].Serial)
}
