package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"rollbook/internal/roster/models"
	id "rollbook/pkg/domain"
	"rollbook/pkg/platform/sentinel"
)

type MemoryStoreSuite struct {
	suite.Suite
	ctx         context.Context
	schools     *InMemorySchoolStore
	classes     *InMemoryClassStore
	people      *InMemoryPersonStore
	enrollments *InMemoryEnrollmentStore
}

func TestMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(MemoryStoreSuite))
}

func (s *MemoryStoreSuite) SetupTest() {
	s.ctx = context.Background()
	s.schools = NewInMemorySchoolStore()
	s.classes = NewInMemoryClassStore()
	s.people = NewInMemoryPersonStore()
	s.enrollments = NewInMemoryEnrollmentStore()
}

func (s *MemoryStoreSuite) newSchool(name string) models.School {
	school := models.School{ID: id.NewSchoolID(), Name: name, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	s.Require().NoError(s.schools.Create(s.ctx, &school))
	return school
}

func (s *MemoryStoreSuite) newClass(name string) models.Class {
	class := models.Class{ID: id.NewClassID(), Name: name, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	s.Require().NoError(s.classes.Create(s.ctx, &class))
	return class
}

func (s *MemoryStoreSuite) newPerson(schoolID id.SchoolID, lastName string) models.Person {
	person := models.Person{
		ID:        id.NewPersonID(),
		FirstName: "Test",
		LastName:  lastName,
		Role:      models.RoleTeacher,
		SchoolID:  schoolID,
	}
	s.Require().NoError(s.people.Create(s.ctx, &person))
	return person
}

func (s *MemoryStoreSuite) TestSchoolLifecycle() {
	school := s.newSchool("Northgate High")

	found, err := s.schools.FindByID(s.ctx, school.ID)
	s.Require().NoError(err)
	s.Equal("Northgate High", found.Name)

	exists, err := s.schools.Exists(s.ctx, school.ID)
	s.Require().NoError(err)
	s.True(exists)

	school.Name = "Northgate Academy"
	s.Require().NoError(s.schools.Update(s.ctx, &school))
	found, err = s.schools.FindByID(s.ctx, school.ID)
	s.Require().NoError(err)
	s.Equal("Northgate Academy", found.Name)

	s.Require().NoError(s.schools.Delete(s.ctx, school.ID))
	_, err = s.schools.FindByID(s.ctx, school.ID)
	s.ErrorIs(err, sentinel.ErrNotFound)

	exists, err = s.schools.Exists(s.ctx, school.ID)
	s.Require().NoError(err)
	s.False(exists)
}

func (s *MemoryStoreSuite) TestSchoolNotFound() {
	_, err := s.schools.FindByID(s.ctx, id.NewSchoolID())
	s.ErrorIs(err, sentinel.ErrNotFound)

	s.ErrorIs(s.schools.Update(s.ctx, &models.School{ID: id.NewSchoolID()}), sentinel.ErrNotFound)
	s.ErrorIs(s.schools.Delete(s.ctx, id.NewSchoolID()), sentinel.ErrNotFound)
}

func (s *MemoryStoreSuite) TestClassFindByIDsDropsMissing() {
	math := s.newClass("Mathematics")
	art := s.newClass("Art")

	found, err := s.classes.FindByIDs(s.ctx, []id.ClassID{math.ID, id.NewClassID(), art.ID})
	s.Require().NoError(err)
	s.Len(found, 2)

	names := []string{found[0].Name, found[1].Name}
	s.ElementsMatch([]string{"Mathematics", "Art"}, names)
}

func (s *MemoryStoreSuite) TestPersonIsolation() {
	school := s.newSchool("Northgate High")
	yg := 9
	dob := time.Date(2010, 3, 4, 0, 0, 0, 0, time.UTC)
	person := models.Person{
		ID:          id.NewPersonID(),
		FirstName:   "Milly",
		LastName:    "Bobson",
		Role:        models.RolePupil,
		DateOfBirth: &dob,
		YearGroup:   &yg,
		SchoolID:    school.ID,
	}
	s.Require().NoError(s.people.Create(s.ctx, &person))

	// Mutating a fetched copy must not affect the stored record.
	found, err := s.people.FindByID(s.ctx, person.ID)
	s.Require().NoError(err)
	*found.YearGroup = 12
	found.LastName = "Changed"

	again, err := s.people.FindByID(s.ctx, person.ID)
	s.Require().NoError(err)
	s.Equal("Bobson", again.LastName)
	s.Equal(9, *again.YearGroup)
}

func (s *MemoryStoreSuite) TestPersonListBySchool() {
	north := s.newSchool("Northgate High")
	south := s.newSchool("Southbank Primary")
	s.newPerson(north.ID, "Depp")
	s.newPerson(north.ID, "Jolie")
	s.newPerson(south.ID, "Bobson")

	people, err := s.people.ListBySchool(s.ctx, north.ID)
	s.Require().NoError(err)
	s.Len(people, 2)
}

func (s *MemoryStoreSuite) TestEnrollmentLifecycle() {
	school := s.newSchool("Northgate High")
	math := s.newClass("Mathematics")
	art := s.newClass("Art")
	person := s.newPerson(school.ID, "Depp")

	batch := []models.Enrollment{
		{ClassID: math.ID, PersonID: person.ID},
		{ClassID: art.ID, PersonID: person.ID},
	}
	s.Require().NoError(s.enrollments.CreateBatch(s.ctx, batch))

	byPerson, err := s.enrollments.ListByPerson(s.ctx, person.ID)
	s.Require().NoError(err)
	s.Len(byPerson, 2)

	// Duplicate pairs are absorbed.
	s.Require().NoError(s.enrollments.CreateBatch(s.ctx, batch[:1]))
	all, err := s.enrollments.List(s.ctx)
	s.Require().NoError(err)
	s.Len(all, 2)

	s.Require().NoError(s.enrollments.DeleteByClass(s.ctx, math.ID))
	byPerson, err = s.enrollments.ListByPerson(s.ctx, person.ID)
	s.Require().NoError(err)
	s.Len(byPerson, 1)

	s.Require().NoError(s.enrollments.DeleteByPerson(s.ctx, person.ID))
	all, err = s.enrollments.List(s.ctx)
	s.Require().NoError(err)
	s.Empty(all)
}
