package api

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type mockQuestions struct{ mock.Mock }

func (m *mockQuestions) Generate(ctx context.Context) string {
	return m.Called(ctx).String(0)
}

type mockGrader struct{ mock.Mock }

func (m *mockGrader) Grade(ctx context.Context, question, answer string) string {
	return m.Called(ctx, question, answer).String(0)
}

type mockProber struct{ mock.Mock }

func (m *mockProber) Probe(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}
