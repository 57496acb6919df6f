package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch_NoParams(t *testing.T) {
	records := sampleRecords()
	got := Search(records, Params{})
	assert.Len(t, got, len(records))
}

func TestSearch_SingleClauses(t *testing.T) {
	t.Run("first name is substring containment", func(t *testing.T) {
		got := Search(sampleRecords(), Params{FirstName: "illy"})
		assert.ElementsMatch(t, []string{"Billy", "Milly"}, firstNames(got))
	})

	t.Run("last name is substring containment", func(t *testing.T) {
		got := Search(sampleRecords(), Params{LastName: "Jol"})
		require.Len(t, got, 1)
		assert.Equal(t, "Angelina", got[0].Person.FirstName)
	})

	t.Run("role matches exactly after parsing", func(t *testing.T) {
		got := Search(sampleRecords(), Params{Role: "pupil"})
		assert.Len(t, got, 3)
	})

	t.Run("unparseable role passes vacuously", func(t *testing.T) {
		got := Search(sampleRecords(), Params{Role: "Wizard"})
		assert.Len(t, got, len(sampleRecords()))
	})

	t.Run("school name is substring containment", func(t *testing.T) {
		got := Search(sampleRecords(), Params{SchoolName: "Southbank"})
		assert.Len(t, got, 2)
	})

	t.Run("year group is exact equality", func(t *testing.T) {
		got := Search(sampleRecords(), Params{YearGroup: intPtr(1)})
		require.Len(t, got, 1)
		assert.Equal(t, "Billy", got[0].Person.FirstName)
	})

	t.Run("class name matches any enrolled class exactly", func(t *testing.T) {
		got := Search(sampleRecords(), Params{ClassName: "Mathematics"})
		assert.ElementsMatch(t, []string{"Johnny", "Angelina"}, firstNames(got))

		got = Search(sampleRecords(), Params{ClassName: "Math"})
		assert.Empty(t, got)
	})
}

func TestSearch_Conjunction(t *testing.T) {
	t.Run("clauses narrow conjunctively", func(t *testing.T) {
		got := Search(sampleRecords(), Params{LastName: "Bobson", YearGroup: intPtr(11)})
		require.Len(t, got, 1)
		assert.Equal(t, "Milly", got[0].Person.FirstName)
	})

	t.Run("contradictory clauses yield nothing", func(t *testing.T) {
		got := Search(sampleRecords(), Params{Role: "Teacher", YearGroup: intPtr(13)})
		assert.Empty(t, got)
	})

	t.Run("vacuous role combined with a real clause", func(t *testing.T) {
		got := Search(sampleRecords(), Params{Role: "Wizard", LastName: "Depp"})
		require.Len(t, got, 1)
		assert.Equal(t, "Johnny", got[0].Person.FirstName)
	})

	t.Run("result is the intersection regardless of clause order", func(t *testing.T) {
		a := Search(sampleRecords(), Params{Role: "Pupil", SchoolName: "Southbank"})
		b := Search(Search(sampleRecords(), Params{SchoolName: "Southbank"}), Params{Role: "Pupil"})
		assert.Equal(t, firstNames(a), firstNames(b))
	})
}

func TestSearch_YearGroupOnRecordsWithoutOne(t *testing.T) {
	got := Search(sampleRecords(), Params{YearGroup: intPtr(13)})
	require.Len(t, got, 1)
	assert.Equal(t, "Angelina", got[0].Person.FirstName)
}
