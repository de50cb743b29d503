package bank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ynabfmt/ynabfmt/internal/model"
)

func TestRegistry_GetUnknown(t *testing.T) {
	r := NewRegistry()
	_, ok := r.Get("nonexistent")
	assert.False(t, ok)
}

func TestRegistry_LookupUnknown(t *testing.T) {
	_, err := DefaultRegistry().Lookup("hsbc")
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrUnknownBank)
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry()
	r.Register(Profile{ID: "test", Style: StylePassthrough})
	p, ok := r.Get("test")
	require.True(t, ok)
	assert.Equal(t, "test", p.ID)
}

func TestRegistry_CaseInsensitive(t *testing.T) {
	r := DefaultRegistry()
	_, ok := r.Get("OCBC")
	assert.True(t, ok)
	_, ok = r.Get(" Sc_Bank ")
	assert.True(t, ok)
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	r := NewRegistry()
	r.Register(Profile{ID: "dup"})
	assert.Panics(t, func() { r.Register(Profile{ID: "DUP"}) })
}

func TestRegistry_PositionalOrder(t *testing.T) {
	positional := DefaultRegistry().Positional()
	require.Len(t, positional, 2)
	assert.Equal(t, UOBDeposit, positional[0].ID)
	assert.Equal(t, UOBCard, positional[1].ID)
}

func TestRegistry_ProfilesAreCopied(t *testing.T) {
	headers := []string{"A", "B"}
	r := NewRegistry()
	r.Register(Profile{ID: "x", PositionalHeaders: headers})
	headers[0] = "changed"

	p, _ := r.Get("x")
	assert.Equal(t, "A", p.PositionalHeaders[0])
}

func TestDefaultRegistry_Pathways(t *testing.T) {
	r := DefaultRegistry()

	for _, id := range []string{OCBC, OCBCCard, SCBank, AmexCard, DBS, UOB, CitibankCard} {
		p, ok := r.Get(id)
		require.True(t, ok, id)
		assert.True(t, p.SupportsText(), "%s should support text", id)
	}
	for _, id := range []string{UOBDeposit, UOBCard} {
		p, ok := r.Get(id)
		require.True(t, ok, id)
		assert.False(t, p.SupportsText(), "%s should be spreadsheet only", id)
		assert.True(t, p.SupportsSheet(), id)
	}
	assert.Equal(t, []string{OCBC, OCBCCard, SCBank, AmexCard, DBS, UOB, UOBDeposit, UOBCard, CitibankCard}, r.IDs())
}

func TestProfile_FieldFor(t *testing.T) {
	p, _ := DefaultRegistry().Get(SCBank)

	tests := []struct {
		header string
		want   model.Field
	}{
		{"Date", model.FieldDate},
		{"DESCRIPTION", model.FieldPayee},
		{"SGD Amount", model.FieldOutflow},
		{"Foreign Currency Amount", model.FieldMemo},
		{"Description", model.FieldUnrecognized},
		{"", model.FieldUnrecognized},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, p.FieldFor(tt.header), "FieldFor(%q)", tt.header)
	}
}

func TestStyleString(t *testing.T) {
	assert.Equal(t, "continuation-merge", StyleContinuation.String())
	assert.Equal(t, "style(99)", Style(99).String())
}
