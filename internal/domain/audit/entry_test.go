package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "praxis/internal/domain/audit/valueobjects"
)

func newValidEntry(t *testing.T) *Entry {
	t.Helper()
	e, err := NewEntry(1, 5, "pmo_lead", vo.ActionEscalateTask, "work_item", "7", nil, nil, "")
	require.NoError(t, err)
	return e
}

func TestNewEntry(t *testing.T) {
	e := newValidEntry(t)

	assert.NotEmpty(t, e.ID())
	assert.NotEmpty(t, e.CorrelationID(), "correlation id is generated when absent")
	assert.Empty(t, e.RecordHash(), "hash is assigned at chain time")
	assert.Zero(t, e.Seq())
}

func TestNewEntry_InvalidInput(t *testing.T) {
	_, err := NewEntry(0, 5, "admin", vo.ActionEscalateTask, "work_item", "7", nil, nil, "")
	assert.Error(t, err, "missing org")

	_, err = NewEntry(1, 0, "admin", vo.ActionEscalateTask, "work_item", "7", nil, nil, "")
	assert.Error(t, err, "missing actor")

	_, err = NewEntry(1, 5, "admin", vo.Action("DELETE_EVERYTHING"), "work_item", "7", nil, nil, "")
	assert.Error(t, err, "actions outside the closed set are rejected")

	_, err = NewEntry(1, 5, "admin", vo.ActionEscalateTask, "", "7", nil, nil, "")
	assert.Error(t, err, "missing resource type")
}

func TestChain_LinksToGenesis(t *testing.T) {
	e := newValidEntry(t)

	e.Chain(1, GenesisHash)

	assert.Equal(t, uint64(1), e.Seq())
	assert.Equal(t, GenesisHash, e.PrevHash())
	assert.Len(t, e.RecordHash(), 64, "sha256 hex digest")
	assert.Equal(t, e.ExpectedHash(GenesisHash), e.RecordHash())
}

func TestChain_TamperBreaksVerification(t *testing.T) {
	first := newValidEntry(t)
	first.Chain(1, GenesisHash)

	second := newValidEntry(t)
	second.Chain(2, first.RecordHash())

	// Verified against the true predecessor the hashes line up.
	assert.Equal(t, second.RecordHash(), second.ExpectedHash(first.RecordHash()))

	// A mutated predecessor hash no longer reproduces the stored hash.
	assert.NotEqual(t, second.RecordHash(), second.ExpectedHash("0000"))
}

func TestComputeHash_Deterministic(t *testing.T) {
	e := newValidEntry(t)

	h1 := e.ExpectedHash(GenesisHash)
	h2 := e.ExpectedHash(GenesisHash)
	assert.Equal(t, h1, h2)

	other := newValidEntry(t)
	assert.NotEqual(t, h1, other.ExpectedHash(GenesisHash), "distinct ids hash differently")
}

func TestAction_ClosedSet(t *testing.T) {
	_, err := vo.NewAction("ESCALATE_TASK")
	require.NoError(t, err)

	_, err = vo.NewAction("escalate_task")
	assert.Error(t, err, "case sensitive")

	_, err = vo.NewAction("")
	assert.Error(t, err)
}
