package identity_test

import (
	"context"

	identity "github.com/castellan/go-identity"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserStore implements identity.UserStore
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*identity.User)
	return user, args.Error(1)
}

func (m *MockUserStore) GetByUsername(ctx context.Context, username string) (*identity.User, error) {
	args := m.Called(ctx, username)
	user, _ := args.Get(0).(*identity.User)
	return user, args.Error(1)
}

func (m *MockUserStore) UsernamesByPrefix(ctx context.Context, prefix string) ([]string, error) {
	args := m.Called(ctx, prefix)
	names, _ := args.Get(0).([]string)
	return names, args.Error(1)
}

func (m *MockUserStore) Create(ctx context.Context, record *identity.User) (*identity.User, error) {
	args := m.Called(ctx, record)
	user, _ := args.Get(0).(*identity.User)
	return user, args.Error(1)
}

func (m *MockUserStore) UpdatePassword(ctx context.Context, id uuid.UUID, credential string) error {
	args := m.Called(ctx, id, credential)
	return args.Error(0)
}

// MockNotifier implements identity.Notifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(ctx context.Context, recipient, subject, body string) error {
	args := m.Called(ctx, recipient, subject, body)
	return args.Error(0)
}
