package trivia

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tf-trivia/internal/llm"
)

// MockBackend is a mock implementation of Backend using testify/mock.
type MockBackend struct {
	mock.Mock
}

func (m *MockBackend) Available() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockBackend) Invoke(ctx context.Context, req llm.WireRequest) ([]byte, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
