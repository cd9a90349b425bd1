package controller

import (
	"braik-ai-be/internal/pkg/serverutils"
	"braik-ai-be/internal/repository/contract"

	"github.com/gofiber/fiber/v2"
)

// requestScope derives the repository scope of a request from its
// authenticated email. Routes without the JWT middleware fall back to
// the shared guest scope.
func requestScope(ctx *fiber.Ctx) contract.Scope {
	email := serverutils.Email(ctx)
	if email == "" {
		return contract.GuestScope()
	}
	return contract.UserScope(email)
}
