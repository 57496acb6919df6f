//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"

	"rollbook/internal/roster/models"
	"rollbook/internal/roster/store"
	id "rollbook/pkg/domain"
	"rollbook/pkg/platform/sentinel"
	"rollbook/pkg/platform/tx"
	"rollbook/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	ctx         context.Context
	postgres    *containers.PostgresContainer
	schools     *store.PostgresSchoolStore
	classes     *store.PostgresClassStore
	people      *store.PostgresPersonStore
	enrollments *store.PostgresEnrollmentStore
	runner      *tx.SQLRunner
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.ctx = context.Background()
	s.postgres = containers.NewPostgresContainer(s.T(), store.Schema)
	s.schools = store.NewPostgresSchoolStore(s.postgres.DB)
	s.classes = store.NewPostgresClassStore(s.postgres.DB)
	s.people = store.NewPostgresPersonStore(s.postgres.DB)
	s.enrollments = store.NewPostgresEnrollmentStore(s.postgres.DB)
	s.runner = tx.NewSQLRunner(s.postgres.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(s.ctx, "enrollments", "people", "classes", "schools"))
}

func (s *PostgresStoreSuite) newSchool(name string) models.School {
	now := time.Now().UTC().Truncate(time.Microsecond)
	school := models.School{ID: id.NewSchoolID(), Name: name, CreatedAt: now, UpdatedAt: now}
	s.Require().NoError(s.schools.Create(s.ctx, &school))
	return school
}

func (s *PostgresStoreSuite) newClass(name string) models.Class {
	now := time.Now().UTC().Truncate(time.Microsecond)
	class := models.Class{ID: id.NewClassID(), Name: name, CreatedAt: now, UpdatedAt: now}
	s.Require().NoError(s.classes.Create(s.ctx, &class))
	return class
}

func (s *PostgresStoreSuite) newPupil(schoolID id.SchoolID, lastName string) models.Person {
	now := time.Now().UTC().Truncate(time.Microsecond)
	dob := time.Date(2010, 5, 20, 0, 0, 0, 0, time.UTC)
	yg := 7
	person := models.Person{
		ID:          id.NewPersonID(),
		FirstName:   "Test",
		LastName:    lastName,
		Role:        models.RolePupil,
		DateOfBirth: &dob,
		YearGroup:   &yg,
		SchoolID:    schoolID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.Require().NoError(s.people.Create(s.ctx, &person))
	return person
}

func (s *PostgresStoreSuite) TestSchoolRoundTrip() {
	school := s.newSchool("Northgate High")

	found, err := s.schools.FindByID(s.ctx, school.ID)
	s.Require().NoError(err)
	s.Equal(school.Name, found.Name)
	s.True(school.CreatedAt.Equal(found.CreatedAt))

	s.ErrorIs(s.schools.Create(s.ctx, &school), sentinel.ErrConflict)

	_, err = s.schools.FindByID(s.ctx, id.NewSchoolID())
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestPersonNullableFields() {
	school := s.newSchool("Northgate High")

	now := time.Now().UTC().Truncate(time.Microsecond)
	teacher := models.Person{
		ID:        id.NewPersonID(),
		FirstName: "Johnny",
		LastName:  "Depp",
		Role:      models.RoleTeacher,
		SchoolID:  school.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.Require().NoError(s.people.Create(s.ctx, &teacher))

	found, err := s.people.FindByID(s.ctx, teacher.ID)
	s.Require().NoError(err)
	s.Nil(found.DateOfBirth)
	s.Nil(found.YearGroup)

	pupil := s.newPupil(school.ID, "Jolie")
	found, err = s.people.FindByID(s.ctx, pupil.ID)
	s.Require().NoError(err)
	s.Require().NotNil(found.DateOfBirth)
	s.True(found.DateOfBirth.Equal(*pupil.DateOfBirth))
	s.Require().NotNil(found.YearGroup)
	s.Equal(7, *found.YearGroup)
}

func (s *PostgresStoreSuite) TestClassFindByIDsDropsMissing() {
	math := s.newClass("Mathematics")
	art := s.newClass("Art")

	found, err := s.classes.FindByIDs(s.ctx, []id.ClassID{math.ID, id.NewClassID(), art.ID})
	s.Require().NoError(err)
	s.Len(found, 2)
}

func (s *PostgresStoreSuite) TestEnrollmentConflictAbsorbed() {
	school := s.newSchool("Northgate High")
	math := s.newClass("Mathematics")
	person := s.newPupil(school.ID, "Jolie")

	batch := []models.Enrollment{{ClassID: math.ID, PersonID: person.ID}}
	s.Require().NoError(s.enrollments.CreateBatch(s.ctx, batch))
	s.Require().NoError(s.enrollments.CreateBatch(s.ctx, batch))

	all, err := s.enrollments.List(s.ctx)
	s.Require().NoError(err)
	s.Len(all, 1)
}

func (s *PostgresStoreSuite) TestTransactionRollsBackAtomically() {
	school := s.newSchool("Northgate High")
	person := s.newPupil(school.ID, "Jolie")

	err := s.runner.RunInTx(s.ctx, func(ctx context.Context) error {
		if err := s.enrollments.DeleteByPerson(ctx, person.ID); err != nil {
			return err
		}
		if err := s.people.Delete(ctx, person.ID); err != nil {
			return err
		}
		// Referencing a missing class aborts the whole transaction.
		_, err := s.classes.FindByID(ctx, id.NewClassID())
		return err
	})
	s.ErrorIs(err, sentinel.ErrNotFound)

	// The deletes rolled back.
	_, err = s.people.FindByID(s.ctx, person.ID)
	s.NoError(err)
}

func (s *PostgresStoreSuite) TestListBySchool() {
	north := s.newSchool("Northgate High")
	south := s.newSchool("Southbank Primary")
	s.newPupil(north.ID, "Depp")
	s.newPupil(north.ID, "Jolie")
	s.newPupil(south.ID, "Bobson")

	people, err := s.people.ListBySchool(s.ctx, north.ID)
	s.Require().NoError(err)
	s.Len(people, 2)
}
