package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"rollbook/internal/roster/service/mocks"
	id "rollbook/pkg/domain"
	dErrors "rollbook/pkg/domain-errors"
)

// Store failures must surface as failed envelopes with masked messages, never
// as panics or leaked driver errors.
func TestRoster_StoreFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	schools := mocks.NewMockSchoolStore(ctrl)
	classes := mocks.NewMockClassStore(ctrl)
	people := mocks.NewMockPersonStore(ctrl)
	enrollments := mocks.NewMockEnrollmentStore(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	roster := New(schools, classes, people, enrollments, WithLogger(logger))

	ctx := context.Background()
	boom := errors.New("pq: connection refused")

	t.Run("list people surfaces internal failure", func(t *testing.T) {
		people.EXPECT().List(gomock.Any()).Return(nil, boom)
		schools.EXPECT().List(gomock.Any()).Return(nil, nil).AnyTimes()
		classes.EXPECT().List(gomock.Any()).Return(nil, nil).AnyTimes()
		enrollments.EXPECT().List(gomock.Any()).Return(nil, nil).AnyTimes()

		res := roster.ListPeople(ctx, "", "")
		require.False(t, res.Success)
		assert.Equal(t, "unexpected error", res.Message)
		assert.True(t, dErrors.HasCode(res.Err(), dErrors.CodeInternal))
	})

	t.Run("get person masks store error detail", func(t *testing.T) {
		people.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(nil, boom)

		res := roster.GetPerson(ctx, id.NewPersonID())
		require.False(t, res.Success)
		assert.Equal(t, "unexpected error", res.Message)
		assert.NotContains(t, res.Message, "pq:")
	})

	t.Run("delete school aborts when people listing fails", func(t *testing.T) {
		schoolID := id.NewSchoolID()
		schools.EXPECT().FindByID(gomock.Any(), schoolID).Return(nil, nil)
		people.EXPECT().ListBySchool(gomock.Any(), schoolID).Return(nil, boom)

		res := roster.DeleteSchool(ctx, schoolID)
		require.False(t, res.Success)
		assert.True(t, dErrors.HasCode(res.Err(), dErrors.CodeInternal))
	})
}
