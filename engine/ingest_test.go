package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/batchtree/value"
)

func TestAddBatch(t *testing.T) {
	e := buildEngine(t, structural)
	err := e.AddBatch(mustParse(t, `<Values>
		<Batch index="1">
			<Member name="age" type="int">20</Member>
			<Member name="grade" type="double">3.5</Member>
		</Batch>
		<Batch index="2">
			<Member name="age" type="int">20</Member>
		</Batch>
	</Values>`))
	require.NoError(t, err)

	assert.Equal(t, []uint32{1, 2}, e.BatchIndices())

	vals, err := e.ItemValues("age")
	require.NoError(t, err)
	assert.Equal(t, map[uint32]value.Value{1: value.Int(20), 2: value.Int(20)}, vals)
}

func TestAddBatchDeduplicates(t *testing.T) {
	e := buildEngine(t, structural)
	require.NoError(t, e.AddBatch(mustParse(t, `<Values>
		<Batch index="1"><Member name="age" type="int">20</Member></Batch>
		<Batch index="2"><Member name="age" type="int">20</Member></Batch>
		<Batch index="3"><Member name="age" type="int">21</Member></Batch>
	</Values>`)))

	// Equal values across batches share a single member.
	age := e.Root().Children()[0].Children()[0]
	require.Len(t, age.members, 2)
	assert.Equal(t, uint64(2), age.members[0].batches.GetCardinality())
	assert.Equal(t, uint64(1), age.members[1].batches.GetCardinality())
}

func TestAddBatchTypes(t *testing.T) {
	e := buildEngine(t, structural)
	require.NoError(t, e.AddBatch(mustParse(t, `<Values>
		<Batch index="7">
			<Member name="age" type="int">42trailing</Member>
			<Member name="grade" type="double">2.5</Member>
			<Member name="teacher" type="string">ms. smith</Member>
		</Batch>
	</Values>`)))

	vals, err := e.ItemValues("age")
	require.NoError(t, err)
	assert.Equal(t, value.Int(42), vals[7])

	vals, err = e.ItemValues("grade")
	require.NoError(t, err)
	assert.Equal(t, value.Float(2.5), vals[7])

	vals, err = e.ItemValues("teacher")
	require.NoError(t, err)
	assert.Equal(t, value.String("ms. smith"), vals[7])
}

func TestAddBatchUsedIndex(t *testing.T) {
	e := buildEngine(t, structural)
	err := e.AddBatch(mustParse(t, `<Values>
		<Batch index="1">
			<Member name="age" type="int">20</Member>
			<Member name="age" type="int">21</Member>
		</Batch>
	</Values>`))
	require.ErrorIs(t, err, ErrUsedIndex)

	var used *UsedIndexError
	require.ErrorAs(t, err, &used)
	assert.Equal(t, uint32(1), used.Batch)
	assert.Equal(t, "age", used.Item)

	// The failing block never joins the registry.
	assert.Empty(t, e.BatchIndices())
}

func TestAddBatchUnknownName(t *testing.T) {
	e := buildEngine(t, structural)
	err := e.AddBatch(mustParse(t, `<Values>
		<Batch index="1"><Member name="nonexistent" type="int">1</Member></Batch>
	</Values>`))
	require.ErrorIs(t, err, ErrIllegalID)
}

func TestAddBatchMissingAttributes(t *testing.T) {
	e := buildEngine(t, structural)

	err := e.AddBatch(mustParse(t, `<Values>
		<Batch index="1"><Member type="int">1</Member></Batch>
	</Values>`))
	var attrErr *MissingAttributeError
	require.ErrorAs(t, err, &attrErr)
	assert.Equal(t, "name", attrErr.Attr)

	err = e.AddBatch(mustParse(t, `<Values>
		<Batch index="1"><Member name="age">1</Member></Batch>
	</Values>`))
	require.ErrorAs(t, err, &attrErr)
	assert.Equal(t, "type", attrErr.Attr)

	err = e.AddBatch(mustParse(t, `<Values>
		<Batch index="1"><Member name="age" type="bool">1</Member></Batch>
	</Values>`))
	require.ErrorIs(t, err, ErrMissingAttribute, "unusable type attribute")
}

func TestAddBatchIllegalBlockIndex(t *testing.T) {
	e := buildEngine(t, structural)
	err := e.AddBatch(mustParse(t, `<Values>
		<Batch><Member name="age" type="int">1</Member></Batch>
	</Values>`))
	require.ErrorIs(t, err, ErrIllegalIndex)

	err = e.AddBatch(mustParse(t, `<Values>
		<Batch index="zero"><Member name="age" type="int">1</Member></Batch>
	</Values>`))
	require.ErrorIs(t, err, ErrIllegalIndex)
}

func TestAddBatchBlockCommitSemantics(t *testing.T) {
	e := buildEngine(t, structural)
	err := e.AddBatch(mustParse(t, `<Values>
		<Batch index="1"><Member name="age" type="int">20</Member></Batch>
		<Batch index="2">
			<Member name="grade" type="double">3.5</Member>
			<Member name="nonexistent" type="int">1</Member>
		</Batch>
		<Batch index="3"><Member name="age" type="int">21</Member></Batch>
	</Values>`))
	require.ErrorIs(t, err, ErrIllegalID)

	// Block 1 committed before the failure; block 3 never ran.
	assert.Equal(t, []uint32{1}, e.BatchIndices())

	// The failing block's earlier member stays in place, unregistered.
	grade := e.Root().Children()[0].Children()[1]
	require.Len(t, grade.members, 1)
	assert.True(t, grade.members[0].batches.Contains(2))
}

func TestAddBatchEmptyBlockRegisters(t *testing.T) {
	e := buildEngine(t, structural)
	require.NoError(t, e.AddBatch(mustParse(t, `<Values><Batch index="5"/></Values>`)))
	assert.Equal(t, []uint32{5}, e.BatchIndices())
}

func TestAddBatchNilInput(t *testing.T) {
	e := buildEngine(t, structural)
	require.ErrorIs(t, e.AddBatch(nil), ErrNullInput)
}
