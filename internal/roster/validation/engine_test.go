package validation

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rollbook/internal/roster/models"
	id "rollbook/pkg/domain"
	dErrors "rollbook/pkg/domain-errors"
)

func validTeacher() models.Person {
	return models.Person{
		ID:        id.NewPersonID(),
		FirstName: "Johnny",
		LastName:  "Depp",
		Role:      models.RoleTeacher,
		SchoolID:  id.NewSchoolID(),
	}
}

func validPupil() models.Person {
	dob := time.Date(2005, 1, 9, 0, 0, 0, 0, time.UTC)
	yg := 13
	return models.Person{
		ID:          id.NewPersonID(),
		FirstName:   "Angelina",
		LastName:    "Jolie",
		Role:        models.RolePupil,
		DateOfBirth: &dob,
		YearGroup:   &yg,
		SchoolID:    id.NewSchoolID(),
	}
}

func failedFields(report Report) []string {
	fields := make([]string, 0, len(report.Failures))
	for _, f := range report.Failures {
		fields = append(fields, f.Field)
	}
	return fields
}

func TestValidate_ValidCandidates(t *testing.T) {
	engine := New()
	ctx := context.Background()

	t.Run("teacher with no dob or year group passes", func(t *testing.T) {
		report := engine.Validate(ctx, validTeacher())
		assert.True(t, report.Valid(), "failures: %v", report.Failures)
	})

	t.Run("pupil with dob and year group in range passes", func(t *testing.T) {
		report := engine.Validate(ctx, validPupil())
		assert.True(t, report.Valid(), "failures: %v", report.Failures)
	})
}

func TestValidate_Names(t *testing.T) {
	engine := New()
	ctx := context.Background()

	tests := []struct {
		name      string
		mutate    func(*models.Person)
		wantField string
	}{
		{"missing first name", func(p *models.Person) { p.FirstName = "" }, "first_name"},
		{"first name too short", func(p *models.Person) { p.FirstName = "J" }, "first_name"},
		{"first name too long", func(p *models.Person) { p.FirstName = strings.Repeat("a", 21) }, "first_name"},
		{"missing last name", func(p *models.Person) { p.LastName = "" }, "last_name"},
		{"last name too short", func(p *models.Person) { p.LastName = "Do" }, "last_name"},
		{"last name too long", func(p *models.Person) { p.LastName = strings.Repeat("a", 31) }, "last_name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validTeacher()
			tt.mutate(&p)
			report := engine.Validate(ctx, p)
			require.False(t, report.Valid())
			assert.Contains(t, failedFields(report), tt.wantField)
		})
	}

	t.Run("boundary lengths pass", func(t *testing.T) {
		p := validTeacher()
		p.FirstName = strings.Repeat("a", 3)
		p.LastName = strings.Repeat("b", 30)
		assert.True(t, engine.Validate(ctx, p).Valid())

		p.FirstName = strings.Repeat("a", 20)
		p.LastName = strings.Repeat("b", 3)
		assert.True(t, engine.Validate(ctx, p).Valid())
	})

	t.Run("lengths count runes not bytes", func(t *testing.T) {
		p := validTeacher()
		p.FirstName = "Åsa" // 3 runes, 4 bytes
		assert.True(t, engine.Validate(ctx, p).Valid(), "three-rune name must pass the minimum")

		p = validTeacher()
		p.FirstName = strings.Repeat("ä", 20) // 20 runes, 40 bytes
		assert.True(t, engine.Validate(ctx, p).Valid(), "twenty-rune name must pass the maximum")

		p = validTeacher()
		p.LastName = "Öz" // 2 runes, still too short
		report := engine.Validate(ctx, p)
		require.False(t, report.Valid())
		assert.Contains(t, failedFields(report), "last_name")
	})
}

func TestValidate_RoleShapes(t *testing.T) {
	engine := New()
	ctx := context.Background()

	t.Run("unknown role fails", func(t *testing.T) {
		p := validTeacher()
		p.Role = models.Role("Janitor")
		report := engine.Validate(ctx, p)
		require.False(t, report.Valid())
		assert.Contains(t, failedFields(report), "role")
	})

	t.Run("teacher with dob fails", func(t *testing.T) {
		p := validTeacher()
		dob := time.Date(2010, 6, 1, 0, 0, 0, 0, time.UTC)
		p.DateOfBirth = &dob
		report := engine.Validate(ctx, p)
		require.False(t, report.Valid())
		assert.Contains(t, failedFields(report), "date_of_birth")
	})

	t.Run("teacher with year group fails", func(t *testing.T) {
		p := validTeacher()
		yg := 7
		p.YearGroup = &yg
		report := engine.Validate(ctx, p)
		require.False(t, report.Valid())
		assert.Contains(t, failedFields(report), "year_group")
	})

	t.Run("pupil without dob fails", func(t *testing.T) {
		p := validPupil()
		p.DateOfBirth = nil
		report := engine.Validate(ctx, p)
		require.False(t, report.Valid())
		assert.Contains(t, failedFields(report), "date_of_birth")
	})

	t.Run("pupil without year group fails", func(t *testing.T) {
		p := validPupil()
		p.YearGroup = nil
		report := engine.Validate(ctx, p)
		require.False(t, report.Valid())
		assert.Contains(t, failedFields(report), "year_group")
	})
}

func TestValidate_PupilRanges(t *testing.T) {
	engine := New()
	ctx := context.Background()

	setDOB := func(p *models.Person, y int, m time.Month, d int) {
		dob := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
		p.DateOfBirth = &dob
	}

	t.Run("dob window is inclusive", func(t *testing.T) {
		p := validPupil()
		setDOB(&p, 2005, 1, 1)
		assert.True(t, engine.Validate(ctx, p).Valid())

		setDOB(&p, 2018, 12, 31)
		assert.True(t, engine.Validate(ctx, p).Valid())
	})

	t.Run("dob outside window fails", func(t *testing.T) {
		p := validPupil()
		setDOB(&p, 2004, 12, 31)
		assert.False(t, engine.Validate(ctx, p).Valid())

		setDOB(&p, 2019, 1, 1)
		assert.False(t, engine.Validate(ctx, p).Valid())
	})

	t.Run("year group bounds are inclusive", func(t *testing.T) {
		p := validPupil()
		for _, yg := range []int{1, 13} {
			yg := yg
			p.YearGroup = &yg
			assert.True(t, engine.Validate(ctx, p).Valid(), "year group %d", yg)
		}
		for _, yg := range []int{0, 14} {
			yg := yg
			p.YearGroup = &yg
			assert.False(t, engine.Validate(ctx, p).Valid(), "year group %d", yg)
		}
	})
}

func TestValidate_SchoolReference(t *testing.T) {
	ctx := context.Background()

	t.Run("zero school id fails", func(t *testing.T) {
		engine := New()
		p := validTeacher()
		p.SchoolID = id.SchoolID{}
		report := engine.Validate(ctx, p)
		require.False(t, report.Valid())
		assert.Contains(t, failedFields(report), "school_id")
	})

	t.Run("existence rule rejects unknown school", func(t *testing.T) {
		engine := New(WithSchoolExists(func(context.Context, id.SchoolID) bool { return false }))
		report := engine.Validate(ctx, validTeacher())
		require.False(t, report.Valid())
		assert.Contains(t, failedFields(report), "school_id")
	})

	t.Run("existence rule accepts known school", func(t *testing.T) {
		engine := New(WithSchoolExists(func(context.Context, id.SchoolID) bool { return true }))
		assert.True(t, engine.Validate(ctx, validTeacher()).Valid())
	})
}

func TestValidate_FailuresAccumulate(t *testing.T) {
	engine := New()
	ctx := context.Background()

	p := models.Person{
		FirstName: "J",
		LastName:  "D",
		Role:      models.Role("Nobody"),
	}
	report := engine.Validate(ctx, p)
	require.False(t, report.Valid())

	fields := failedFields(report)
	assert.Contains(t, fields, "first_name")
	assert.Contains(t, fields, "last_name")
	assert.Contains(t, fields, "role")
	assert.Contains(t, fields, "school_id")
}

func TestReport_Violations(t *testing.T) {
	var report Report
	assert.Nil(t, report.Violations())

	report.fail("first_name", "too short")
	violations := report.Violations()
	require.Len(t, violations, 1)
	assert.Equal(t, dErrors.FieldViolation{Field: "first_name", Message: "too short"}, violations[0])
}
