package service

import (
	"context"
	"errors"

	"github.com/Behyna/otp-services/otpgateway/internal/cache"
	"github.com/Behyna/otp-services/otpgateway/internal/config"
	"github.com/Behyna/otp-services/otpgateway/internal/constants"
	"github.com/Behyna/otp-services/otpgateway/internal/model"
	"github.com/Behyna/otp-services/otpgateway/internal/repository"
	"github.com/Behyna/otp-services/otpgateway/pkg/httpclient"
	"github.com/Behyna/otp-services/otpgateway/pkg/otpgateway"
	"go.uber.org/zap"
)

const defaultListLimit = 50

type VerificationService interface {
	CheckAbility(ctx context.Context, cmd CheckAbilityCommand) (bool, error)
	StartVerification(ctx context.Context, cmd StartVerificationCommand) (StartVerificationResult, error)
	ConfirmCode(ctx context.Context, cmd ConfirmCodeCommand) (ConfirmCodeResult, error)
	RevokeVerification(ctx context.Context, cmd RevokeCommand) (map[string]any, error)
	ListVerifications(ctx context.Context, cmd ListVerificationsCommand) (ListVerificationsResult, error)
}

type verification struct {
	repo   repository.VerificationRepository
	cache  cache.Cache
	client httpclient.HTTPClient
	cfg    config.Gateway
	logger *zap.Logger
}

func NewVerificationService(repo repository.VerificationRepository, sessionCache cache.Cache,
	client httpclient.HTTPClient, cfg *config.Config, logger *zap.Logger) VerificationService {
	return &verification{repo: repo, cache: sessionCache, client: client, cfg: cfg.Gateway, logger: logger}
}

// gatewayClient builds a fresh client scoped to one logical session. The
// client itself is not safe for concurrent use, so every call gets its own.
func (s *verification) gatewayClient(sessionID string) *otpgateway.Client {
	store := cache.NewSessionStore(s.cache, sessionID, s.cfg.SessionTTL)
	cfg := otpgateway.Config{
		BaseURL: s.cfg.BaseURL,
		Token:   s.cfg.Token,
		Timeout: s.cfg.Timeout,
	}
	return otpgateway.NewClient(cfg, s.client, store)
}

func (s *verification) CheckAbility(ctx context.Context, cmd CheckAbilityCommand) (bool, error) {
	client := s.gatewayClient(cmd.SessionID)

	able, err := client.CheckSendAbility(ctx, cmd.PhoneNumber)
	if err != nil {
		if errors.Is(err, otpgateway.ErrMissingPhoneNumber) {
			return false, NewServiceError(constants.ErrCodeMissingPhoneNumber, err)
		}

		s.logger.Warn("Ability check failed",
			zap.Error(err),
			zap.String("sessionID", cmd.SessionID))
		return false, NewServiceError(constants.ErrCodeGatewayError, err)
	}

	return able, nil
}

func (s *verification) StartVerification(ctx context.Context, cmd StartVerificationCommand) (StartVerificationResult, error) {
	client := s.gatewayClient(cmd.SessionID)

	if cmd.CodeLength != 0 {
		if err := client.SetCodeLength(cmd.CodeLength); err != nil {
			return StartVerificationResult{}, NewServiceError(constants.ErrCodeInvalidParameter, err)
		}
	}
	if cmd.TTL != 0 {
		if err := client.SetTTL(cmd.TTL); err != nil {
			return StartVerificationResult{}, NewServiceError(constants.ErrCodeInvalidParameter, err)
		}
	}
	if cmd.Code != "" {
		client.SetCode(cmd.Code)
	}
	if cmd.SenderUsername != "" {
		client.SetSenderUsername(cmd.SenderUsername)
	}
	if cmd.CallbackURL != "" {
		client.SetCallbackURL(cmd.CallbackURL)
	}
	if cmd.Payload != "" {
		client.SetPayload(cmd.Payload)
	}

	raw, err := client.SendOTP(ctx, cmd.PhoneNumber)
	if err != nil {
		if errors.Is(err, otpgateway.ErrMissingPhoneNumber) {
			return StartVerificationResult{}, NewServiceError(constants.ErrCodeMissingPhoneNumber, err)
		}

		s.logger.Warn("Verification send failed",
			zap.Error(err),
			zap.String("sessionID", cmd.SessionID))
		return StartVerificationResult{}, NewServiceError(constants.ErrCodeGatewayError, err)
	}

	result := StartVerificationResult{Raw: raw}

	requestID, ok := client.RequestID(ctx)
	if !ok {
		s.logger.Warn("Gateway did not accept verification",
			zap.String("sessionID", cmd.SessionID))
		return result, nil
	}

	result.RequestID = requestID
	if cost, ok := client.RequestCost(); ok {
		result.RequestCost = &cost
	}
	if balance, ok := client.RemainingBalance(); ok {
		result.RemainingBalance = &balance
	}

	record := &model.Verification{
		RequestID:   requestID,
		SessionID:   cmd.SessionID,
		PhoneNumber: cmd.PhoneNumber,
		Status:      model.VerificationStatusSent,
		CodeLength:  client.CodeLength(),
		Cost:        result.RequestCost,
	}

	if err := s.repo.Create(ctx, record); err != nil && !errors.Is(err, repository.ErrVerificationDuplicate) {
		s.logger.Error("Failed to persist verification",
			zap.Error(err),
			zap.String("requestID", requestID))
		return result, NewServiceError(constants.ErrCodeInternalError, ErrDatabase)
	}

	s.logger.Info("Verification started",
		zap.String("sessionID", cmd.SessionID),
		zap.String("requestID", requestID))

	return result, nil
}

func (s *verification) ConfirmCode(ctx context.Context, cmd ConfirmCodeCommand) (ConfirmCodeResult, error) {
	client := s.gatewayClient(cmd.SessionID)

	verifyResult, err := client.VerifyCode(ctx, otpgateway.VerifyOptions{RequestID: cmd.RequestID, Code: cmd.Code})
	if err != nil {
		if errors.Is(err, otpgateway.ErrMissingRequestID) {
			return ConfirmCodeResult{}, NewServiceError(constants.ErrCodeMissingRequestID, err)
		}

		s.logger.Warn("Verification check failed",
			zap.Error(err),
			zap.String("sessionID", cmd.SessionID))
		return ConfirmCodeResult{}, NewServiceError(constants.ErrCodeGatewayError, err)
	}

	result := ConfirmCodeResult{Outcome: verifyResult.Outcome, Status: verifyResult.Status, Raw: verifyResult.Raw}

	status, mapped := auditStatus(verifyResult.Outcome)
	if !mapped {
		return result, nil
	}

	requestID := cmd.RequestID
	if requestID == "" {
		requestID, _ = client.RequestID(ctx)
	}

	if err := s.repo.UpdateStatus(ctx, requestID, status); err != nil && !errors.Is(err, repository.ErrVerificationNotFound) {
		s.logger.Error("Failed to update verification status",
			zap.Error(err),
			zap.String("requestID", requestID))
	}

	return result, nil
}

func (s *verification) RevokeVerification(ctx context.Context, cmd RevokeCommand) (map[string]any, error) {
	client := s.gatewayClient(cmd.SessionID)

	requestID, _ := client.RequestID(ctx)

	result, err := client.RevokeCode(ctx)
	if err != nil {
		if errors.Is(err, otpgateway.ErrMissingRequestID) {
			return nil, NewServiceError(constants.ErrCodeMissingRequestID, err)
		}

		s.logger.Warn("Verification revoke failed",
			zap.Error(err),
			zap.String("sessionID", cmd.SessionID))
		return nil, NewServiceError(constants.ErrCodeGatewayError, err)
	}

	if err := s.repo.UpdateStatus(ctx, requestID, model.VerificationStatusRevoked); err != nil &&
		!errors.Is(err, repository.ErrVerificationNotFound) {
		s.logger.Error("Failed to mark verification revoked",
			zap.Error(err),
			zap.String("requestID", requestID))
	}

	s.logger.Info("Verification revoked",
		zap.String("sessionID", cmd.SessionID),
		zap.String("requestID", requestID))

	return result, nil
}

func (s *verification) ListVerifications(ctx context.Context, cmd ListVerificationsCommand) (ListVerificationsResult, error) {
	limit := cmd.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	verifications, err := s.repo.GetBySessionID(ctx, cmd.SessionID, limit, cmd.Offset)
	if err != nil {
		s.logger.Error("Failed to list verifications",
			zap.Error(err),
			zap.String("sessionID", cmd.SessionID))
		return ListVerificationsResult{}, NewServiceError(constants.ErrCodeInternalError, ErrDatabase)
	}

	return ListVerificationsResult{Verifications: verifications}, nil
}

func auditStatus(outcome otpgateway.Outcome) (model.VerificationStatus, bool) {
	switch outcome {
	case otpgateway.OutcomeValid:
		return model.VerificationStatusValid, true
	case otpgateway.OutcomeInvalid:
		return model.VerificationStatusInvalid, true
	case otpgateway.OutcomeExpired:
		return model.VerificationStatusExpired, true
	case otpgateway.OutcomeAttemptsExceeded:
		return model.VerificationStatusAttemptsExceeded, true
	default:
		return "", false
	}
}
