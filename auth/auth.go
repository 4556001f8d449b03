package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"nivaas/db"
	"nivaas/globals"
	"nivaas/middleware"
	"nivaas/models"
	"nivaas/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const tokenTTL = 30 * 24 * time.Hour

// Login handles POST /api/login. The phone number is the whole identity:
// the user document is upserted and a token issued with no credential check.
func Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var input struct {
		PhoneNumber string `json:"phoneNumber"`
		Name        string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	phone := strings.TrimSpace(input.PhoneNumber)
	if !utils.IsValidPhoneNumber(phone) {
		utils.RespondWithError(w, http.StatusBadRequest, "A valid phone number is required")
		return
	}

	user, err := upsertUser(ctx, phone, input.Name)
	if err != nil {
		utils.RespondWithErrorDetail(w, http.StatusInternalServerError, "Failed to save user", err)
		return
	}

	token, err := generateToken(user)
	if err != nil {
		utils.RespondWithErrorDetail(w, http.StatusInternalServerError, "Failed to generate token", err)
		return
	}

	utils.SendResponse(w, http.StatusOK, map[string]any{
		"token": token,
		"user":  user,
	}, "Login successful", nil)
}

// Me handles GET /api/me and returns the profile for the token's phone number.
func Me(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	phone, _ := r.Context().Value(globals.PhoneKey).(string)
	if phone == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	var user models.User
	if err := db.UserCollection.FindOne(ctx, bson.M{"phoneNumber": phone}).Decode(&user); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"data":    user,
	})
}

func upsertUser(ctx context.Context, phone, name string) (models.User, error) {
	now := time.Now()
	set := bson.M{"lastLogin": now}
	if strings.TrimSpace(name) != "" {
		set["name"] = strings.TrimSpace(name)
	}
	update := bson.M{
		"$set": set,
		"$setOnInsert": bson.M{
			"userid":      utils.GetUUID(),
			"phoneNumber": phone,
			"createdAt":   now,
		},
	}

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var user models.User
	err := db.UserCollection.FindOneAndUpdate(ctx, bson.M{"phoneNumber": phone}, update, opts).Decode(&user)
	return user, err
}

func generateToken(user models.User) (string, error) {
	claims := &middleware.Claims{
		PhoneNumber: user.PhoneNumber,
		UserID:      user.UserID,
		Role:        "user",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(globals.JwtSecret)
}
