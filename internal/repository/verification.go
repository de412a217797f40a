package repository

import (
	"context"
	"errors"

	"github.com/Behyna/otp-services/otpgateway/internal/model"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var ErrVerificationNotFound = errors.New("VERIFICATION_NOT_FOUND")
var ErrVerificationDuplicate = errors.New("VERIFICATION_DUPLICATE")

type VerificationRepository interface {
	Create(ctx context.Context, verification *model.Verification) error
	GetByRequestID(ctx context.Context, requestID string) (*model.Verification, error)
	GetBySessionID(ctx context.Context, sessionID string, limit, offset int) ([]model.Verification, error)
	UpdateStatus(ctx context.Context, requestID string, status model.VerificationStatus) error
}

type Verification struct {
	db *gorm.DB
}

func NewVerificationRepository(db *gorm.DB) VerificationRepository {
	return &Verification{db: db}
}

func (v *Verification) Create(ctx context.Context, verification *model.Verification) error {
	err := v.db.WithContext(ctx).Create(verification).Error
	if err == nil {
		return nil
	}

	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return ErrVerificationDuplicate
	}

	return err
}

func (v *Verification) GetByRequestID(ctx context.Context, requestID string) (*model.Verification, error) {
	var verification model.Verification

	err := v.db.WithContext(ctx).Where("request_id = ?", requestID).First(&verification).Error
	if err == nil {
		return &verification, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrVerificationNotFound
	}

	return nil, err
}

func (v *Verification) GetBySessionID(ctx context.Context, sessionID string, limit, offset int) ([]model.Verification, error) {
	var verifications []model.Verification

	err := v.db.WithContext(ctx).Where("session_id = ?", sessionID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&verifications).Error
	if err != nil {
		return nil, err
	}

	return verifications, nil
}

func (v *Verification) UpdateStatus(ctx context.Context, requestID string, status model.VerificationStatus) error {
	result := v.db.WithContext(ctx).Model(&model.Verification{}).
		Where("request_id = ?", requestID).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrVerificationNotFound
	}

	return nil
}
