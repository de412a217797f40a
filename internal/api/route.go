package api

import (
	v1 "github.com/Behyna/otp-services/otpgateway/internal/api/v1"
	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, handler *v1.Handler) {
	app.Get("/ping", handler.Pong)

	app.Post("/v1/otp/ability", handler.CheckAbility)
	app.Post("/v1/otp/send", handler.SendOTP)
	app.Post("/v1/otp/verify", handler.VerifyCode)
	app.Post("/v1/otp/revoke", handler.Revoke)
	app.Get("/v1/otp/verifications", handler.ListVerifications)
}
