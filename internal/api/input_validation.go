package api

import (
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
)

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
var passwordLengthRegex = regexp.MustCompile(`^.{8,}$`)
var passwordUpperRegex = regexp.MustCompile(`\p{Lu}`)
var passwordLowerRegex = regexp.MustCompile(`\p{Ll}`)
var passwordDigitRegex = regexp.MustCompile(`\d`)

func parseCredentials(c *fiber.Ctx) (credentialsInput, error) {
	credentials := credentialsInput{}
	if err := c.BodyParser(&credentials); err != nil {
		return credentialsInput{}, err
	}
	credentials.Email = normalizeEmail(credentials.Email)
	return credentials, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateRegistrationCredentials(credentials credentialsInput) string {
	if !emailRegex.MatchString(credentials.Email) {
		return "invalid email"
	}
	if !passwordLengthRegex.MatchString(credentials.Password) {
		return "password must be at least 8 characters"
	}
	if !passwordUpperRegex.MatchString(credentials.Password) ||
		!passwordLowerRegex.MatchString(credentials.Password) ||
		!passwordDigitRegex.MatchString(credentials.Password) {
		return "password must mix upper and lower case letters and digits"
	}
	return ""
}
