package globals

import (
	"context"
	"os"
)

var JwtSecret = []byte(jwtSecret())

func jwtSecret() string {
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return s
	}
	return "nivaas_dev_secret"
}

// Context keys
type ContextKey string

const RoleKey ContextKey = "role"
const UserIDKey ContextKey = "userId"
const PhoneKey ContextKey = "phoneNumber"

var Ctx = context.Background()
