package mocks

import (
	"context"

	"github.com/ansmoore/UrentScoutsBot/internal/domain"
	"github.com/ansmoore/UrentScoutsBot/internal/ports"
	"github.com/stretchr/testify/mock"
)

type MockNotifier struct {
	mock.Mock
}

var _ ports.Notifier = (*MockNotifier)(nil)

// NewMockNotifier registers expectation assertions on test cleanup.
func NewMockNotifier(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockNotifier {
	m := &MockNotifier{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockNotifier) Notify(ctx context.Context, message domain.Notification) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MockNotifier) ShowMenu(ctx context.Context, menu domain.Menu) error {
	args := m.Called(ctx, menu)
	return args.Error(0)
}
