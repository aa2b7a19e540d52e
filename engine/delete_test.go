package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/batchtree/value"
)

func TestDeleteBatch(t *testing.T) {
	e := buildEngine(t, structural)
	require.NoError(t, e.AddBatch(mustParse(t, `<Values>
		<Batch index="1"><Member name="age" type="int">20</Member></Batch>
		<Batch index="2"><Member name="age" type="int">20</Member></Batch>
		<Batch index="3"><Member name="age" type="int">21</Member></Batch>
	</Values>`)))

	require.NoError(t, e.DeleteBatch(2))

	assert.Equal(t, []uint32{1, 3}, e.BatchIndices())

	_, err := e.BatchValues(2)
	require.ErrorIs(t, err, ErrUnregisteredIndex)

	vals, err := e.ItemValues("age")
	require.NoError(t, err)
	assert.Equal(t, map[uint32]value.Value{1: value.Int(20), 3: value.Int(21)}, vals)

	// Batch 2 shared its member with batch 1, so the member survives.
	age := e.Root().Children()[0].Children()[0]
	assert.Len(t, age.members, 2)
}

func TestDeleteBatchEvictsMembers(t *testing.T) {
	e := buildEngine(t, structural)
	require.NoError(t, e.AddBatch(mustParse(t, `<Values>
		<Batch index="1"><Member name="age" type="int">20</Member></Batch>
		<Batch index="2"><Member name="grade" type="double">3.5</Member></Batch>
	</Values>`)))

	require.NoError(t, e.DeleteBatch(2))

	// The member existed only for batch 2 and must be gone, not marked.
	grade := e.Root().Children()[0].Children()[1]
	assert.Empty(t, grade.members)

	vals, err := e.ItemValues("grade")
	require.NoError(t, err)
	assert.Empty(t, vals)
}

func TestDeleteBatchIdempotence(t *testing.T) {
	e := buildEngine(t, structural)
	require.NoError(t, e.AddBatch(mustParse(t, `<Values>
		<Batch index="1"><Member name="age" type="int">20</Member></Batch>
	</Values>`)))

	require.NoError(t, e.DeleteBatch(1))
	err := e.DeleteBatch(1)
	require.ErrorIs(t, err, ErrUnregisteredIndex)

	// The second call is a pure no-op.
	assert.Empty(t, e.BatchIndices())
}

func TestDeleteBatchUnknown(t *testing.T) {
	e := buildEngine(t, structural)
	require.ErrorIs(t, e.DeleteBatch(42), ErrUnregisteredIndex)
}
