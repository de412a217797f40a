package mocks

import (
	"context"

	"github.com/Behyna/otp-services/otpgateway/internal/model"
	"github.com/stretchr/testify/mock"
)

type VerificationRepository struct {
	mock.Mock
}

func (m *VerificationRepository) Create(ctx context.Context, verification *model.Verification) error {
	args := m.Called(ctx, verification)
	return args.Error(0)
}

func (m *VerificationRepository) GetByRequestID(ctx context.Context, requestID string) (*model.Verification, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Verification), args.Error(1)
}

func (m *VerificationRepository) GetBySessionID(ctx context.Context, sessionID string, limit, offset int) ([]model.Verification, error) {
	args := m.Called(ctx, sessionID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Verification), args.Error(1)
}

func (m *VerificationRepository) UpdateStatus(ctx context.Context, requestID string, status model.VerificationStatus) error {
	args := m.Called(ctx, requestID, status)
	return args.Error(0)
}
