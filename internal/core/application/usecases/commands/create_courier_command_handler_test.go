package commands_test

import (
	"errors"
	"testing"

	"mealdrop/internal/core/application/usecases/commands"
	"mealdrop/internal/core/domain/model/events"
	"mealdrop/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreateCourierCommand(t *testing.T) {
	t.Run("should create valid command", func(t *testing.T) {
		accountID := kernel.NewUUID()

		cmd, err := commands.NewCreateCourierCommand(accountID, "Ada Wong")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, cmd.AccountID().IsEqual(accountID))
		assert.Equal(t, "Ada Wong", cmd.FullName())
		assert.NoError(t, cmd.CourierID().Validate())
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := commands.NewCreateCourierCommand(kernel.NewUUID(), "")

		assert.ErrorIs(t, err, commands.ErrFullNameIsRequired)
	})

	t.Run("zero value command should not validate", func(t *testing.T) {
		var cmd commands.CreateCourierCommand

		assert.ErrorIs(t, cmd.Validate(), commands.ErrCreateCourierCommandIsNotConstructed)
	})
}

func TestCreateCourierCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewCreateCourierCommand(kernel.NewUUID(), "Ada Wong")
	require.NoError(t, err)

	mockRepo := new(MockCourierRepository)
	mockUoW := new(MockCourierUoW)
	mockFactory := new(MockCourierUoWFactory)
	publisher := &RecordingPublisher{}

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("CourierRepository").Return(mockRepo).Once(),
		mockRepo.On("Add", ctx, mock.AnythingOfType("*courier.Courier")).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateCourierCommandHandler(mockFactory, publisher)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []events.Kind{events.KindCourierAdded}, publisher.Kinds())
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestCreateCourierCommandHandler_Handle_RepositoryError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewCreateCourierCommand(kernel.NewUUID(), "Ada Wong")
	require.NoError(t, err)

	repoErr := errors.New("insert failed")
	mockRepo := new(MockCourierRepository)
	mockUoW := new(MockCourierUoW)
	mockFactory := new(MockCourierUoWFactory)
	publisher := &RecordingPublisher{}

	mockUoW.On("Begin", ctx).Return(nil).Once()
	mockUoW.On("CourierRepository").Return(mockRepo).Once()
	mockRepo.On("Add", ctx, mock.AnythingOfType("*courier.Courier")).Return(repoErr).Once()
	mockUoW.On("Rollback", ctx).Return(nil).Once()
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateCourierCommandHandler(mockFactory, publisher)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, repoErr)
	assert.Empty(t, publisher.Kinds())
	mockUoW.AssertNotCalled(t, "Commit", ctx)
}

func TestCreateCourierCommandHandler_Handle_UnconstructedCommand(t *testing.T) {
	mockFactory := new(MockCourierUoWFactory)
	handler := commands.NewCreateCourierCommandHandler(mockFactory, &RecordingPublisher{})

	err := handler.Handle(t.Context(), commands.CreateCourierCommand{})

	assert.ErrorIs(t, err, commands.ErrCreateCourierCommandIsNotConstructed)
	mockFactory.AssertNotCalled(t, "Create")
}
