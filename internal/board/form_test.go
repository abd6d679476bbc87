package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputFormSubmitAddsAndClears(t *testing.T) {
	st, active, _ := newTestBoard(t)
	f := NewInputForm(st)
	f.Title = "  Build site "
	f.Description = "desc"
	f.People = "3"

	p, err := f.Submit()
	require.NoError(t, err)
	assert.Equal(t, "Build site", p.Title)
	assert.Equal(t, 3, p.People)
	assert.Equal(t, []string{"Build site"}, titles(active))

	assert.Empty(t, f.Title)
	assert.Empty(t, f.Description)
	assert.Empty(t, f.People)
}

func TestInputFormRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name                string
		title, desc, people string
	}{
		{name: "missing title", title: "", desc: "d", people: "3"},
		{name: "blank description", title: "t", desc: "   ", people: "3"},
		{name: "people not a number", title: "t", desc: "d", people: "three"},
		{name: "people too few", title: "t", desc: "d", people: "1"},
		{name: "people too many", title: "t", desc: "d", people: "5"},
		{name: "people empty", title: "t", desc: "d", people: ""},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			st, _, _ := newTestBoard(t)
			f := NewInputForm(st)
			f.Title, f.Description, f.People = tt.title, tt.desc, tt.people

			_, err := f.Submit()
			require.ErrorIs(t, err, ErrInvalidInput)
			assert.Zero(t, st.Len())
			assert.Equal(t, tt.title, f.Title, "inputs are kept after a rejected submit")
			assert.Equal(t, tt.people, f.People)
		})
	}
}

func TestInputFormPeopleBoundsInclusiveRange(t *testing.T) {
	for _, people := range []string{"2", "3", "4"} {
		st, _, _ := newTestBoard(t)
		f := NewInputForm(st)
		f.Title, f.Description, f.People = "t", "d", people
		_, err := f.Submit()
		require.NoError(t, err, "people=%s", people)
	}
}
