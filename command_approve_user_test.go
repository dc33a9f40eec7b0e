package identity_test

import (
	"context"
	"testing"
	"time"

	identity "github.com/castellan/go-identity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestApproveUserHandler(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)

	manager := identity.NewRepositoryManager(db)
	repo := manager.Users()

	hash, err := identity.HashPassword("password123")
	require.NoError(t, err)

	pending := seedUser(t, repo, &identity.User{
		FirstName: "Alice",
		LastName:  "Brown",
		Username:  "abrown0301",
		Email:     "alice@example.com",
		Password:  hash,
	})

	t.Run("Approval opens the gate and notifies", func(t *testing.T) {
		notifier := new(MockNotifier)
		notified := make(chan struct{}, 1)
		notifier.On("Notify", mock.Anything, "alice@example.com", mock.AnythingOfType("string"), mock.AnythingOfType("string")).
			Run(func(args mock.Arguments) {
				notified <- struct{}{}
			}).Return(nil).Once()

		handler := identity.NewApproveUserHandler(manager, notifier)

		start := time.Now()
		err := handler.Execute(ctx, identity.ApproveUserMessage{UserID: pending.ID.String()})
		require.NoError(t, err)

		// the lookup must not contend with the approval transaction, even on
		// a single-connection store
		assert.Less(t, time.Since(start), 5*time.Second)

		user, err := repo.GetByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		assert.True(t, user.Approved)

		select {
		case <-notified:
		case <-time.After(5 * time.Second):
			t.Fatal("account was never notified")
		}

		notifier.AssertExpectations(t)
	})

	t.Run("Rejection closes the gate and notifies", func(t *testing.T) {
		notifier := new(MockNotifier)
		notified := make(chan struct{}, 1)
		notifier.On("Notify", mock.Anything, "alice@example.com", mock.AnythingOfType("string"), mock.AnythingOfType("string")).
			Run(func(args mock.Arguments) {
				notified <- struct{}{}
			}).Return(nil).Once()

		handler := identity.NewRejectUserHandler(manager, notifier)

		err := handler.Execute(ctx, identity.RejectUserMessage{
			UserID: pending.ID.String(),
			Reason: "unverifiable details",
		})
		require.NoError(t, err)

		user, err := repo.GetByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		assert.False(t, user.Approved)

		select {
		case <-notified:
		case <-time.After(5 * time.Second):
			t.Fatal("account was never notified")
		}

		notifier.AssertExpectations(t)
	})

	t.Run("Bad id is rejected", func(t *testing.T) {
		handler := identity.NewApproveUserHandler(manager, new(MockNotifier))

		err := handler.Execute(ctx, identity.ApproveUserMessage{UserID: "not-a-uuid"})
		assert.Error(t, err)
	})

	t.Run("Cancelled context never executes", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		handler := identity.NewApproveUserHandler(manager, new(MockNotifier))

		err := handler.Execute(cancelled, identity.ApproveUserMessage{UserID: pending.ID.String()})
		assert.Error(t, err)
	})

	t.Run("Unknown user fails", func(t *testing.T) {
		handler := identity.NewApproveUserHandler(manager, new(MockNotifier))

		err := handler.Execute(ctx, identity.ApproveUserMessage{
			UserID: "9b2e3c60-0000-4000-8000-000000000000",
		})
		assert.Error(t, err)
	})
}
