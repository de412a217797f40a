package v1

import (
	"time"

	"github.com/Behyna/otp-services/otpgateway/internal/constants"
	"github.com/Behyna/otp-services/otpgateway/internal/service"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Handler struct {
	logger  *zap.Logger
	service service.VerificationService
}

func NewHandler(logger *zap.Logger, service service.VerificationService) *Handler {
	return &Handler{logger: logger, service: service}
}

func (h *Handler) Pong(c *fiber.Ctx) error {
	return c.SendString("pong")
}

func (h *Handler) CheckAbility(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var request CheckAbilityRequest
	if err := c.BodyParser(&request); err != nil {
		return h.invalidBody(c, err)
	}

	able, err := h.service.CheckAbility(ctx, service.CheckAbilityCommand{
		SessionID:   request.SessionID,
		PhoneNumber: request.PhoneNumber,
	})
	if err != nil {
		return err
	}

	return c.JSON(CheckAbilityResponse{Able: able})
}

func (h *Handler) SendOTP(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var request SendOTPRequest
	if err := c.BodyParser(&request); err != nil {
		return h.invalidBody(c, err)
	}

	cmd := service.StartVerificationCommand{
		SessionID:      request.SessionID,
		PhoneNumber:    request.PhoneNumber,
		CodeLength:     request.CodeLength,
		TTL:            request.TTL,
		Code:           request.Code,
		SenderUsername: request.SenderUsername,
		CallbackURL:    request.CallbackURL,
		Payload:        request.Payload,
	}

	result, err := h.service.StartVerification(ctx, cmd)
	if err != nil {
		h.logger.Error("Failed to start verification",
			zap.Error(err),
			zap.String("sessionID", request.SessionID),
			zap.String("phoneNumber", request.PhoneNumber),
		)
		return err
	}

	h.logger.Info("Verification request accepted",
		zap.String("sessionID", request.SessionID),
		zap.String("requestID", result.RequestID),
	)

	return c.Status(fiber.StatusCreated).JSON(SendOTPResponse{
		RequestID:        result.RequestID,
		RequestCost:      result.RequestCost,
		RemainingBalance: result.RemainingBalance,
		Raw:              result.Raw,
	})
}

func (h *Handler) VerifyCode(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var request VerifyCodeRequest
	if err := c.BodyParser(&request); err != nil {
		return h.invalidBody(c, err)
	}

	result, err := h.service.ConfirmCode(ctx, service.ConfirmCodeCommand{
		SessionID: request.SessionID,
		RequestID: request.RequestID,
		Code:      request.Code,
	})
	if err != nil {
		return err
	}

	return c.JSON(VerifyCodeResponse{
		Outcome: string(result.Outcome),
		Status:  result.Status,
		Raw:     result.Raw,
	})
}

func (h *Handler) Revoke(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var request RevokeRequest
	if err := c.BodyParser(&request); err != nil {
		return h.invalidBody(c, err)
	}

	result, err := h.service.RevokeVerification(ctx, service.RevokeCommand{SessionID: request.SessionID})
	if err != nil {
		return err
	}

	return c.JSON(RevokeResponse{Result: result})
}

func (h *Handler) ListVerifications(c *fiber.Ctx) error {
	ctx := c.UserContext()

	cmd := service.ListVerificationsCommand{
		SessionID: c.Query("session_id"),
		Limit:     c.QueryInt("limit"),
		Offset:    c.QueryInt("offset"),
	}

	result, err := h.service.ListVerifications(ctx, cmd)
	if err != nil {
		return err
	}

	response := ListVerificationsResponse{
		Verifications: make([]VerificationResponse, 0, len(result.Verifications)),
		Total:         len(result.Verifications),
	}
	for _, verification := range result.Verifications {
		response.Verifications = append(response.Verifications, VerificationResponse{
			RequestID:   verification.RequestID,
			PhoneNumber: verification.PhoneNumber,
			Status:      string(verification.Status),
			CodeLength:  verification.CodeLength,
			Cost:        verification.Cost,
			CreatedAt:   verification.CreatedAt.Format(time.RFC3339),
		})
	}

	return c.JSON(response)
}

func (h *Handler) invalidBody(c *fiber.Ctx, err error) error {
	h.logger.Warn("Failed to parse body",
		zap.Error(err),
		zap.String("body", string(c.Body())))
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"code":    constants.ErrCodeInvalidRequestBody,
		"message": constants.GetErrorMessage(constants.ErrCodeInvalidRequestBody),
	})
}
