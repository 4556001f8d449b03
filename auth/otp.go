package auth

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"nivaas/db"
	"nivaas/rdx"
	"nivaas/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

const otpTTL = 5 * time.Minute

// RequestOTP handles POST /api/login/otp. The code is stored hashed in Redis
// with a short TTL; delivery is delegated to the SMS gateway (logged in dev).
func RequestOTP(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		PhoneNumber string `json:"phoneNumber"`
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

	code := utils.GenerateRandomDigitString(6)
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondWithErrorDetail(w, http.StatusInternalServerError, "Failed to prepare OTP", err)
		return
	}
	if err := rdx.RdxSetWithTTL("otp:"+phone, string(hash), otpTTL); err != nil {
		utils.RespondWithErrorDetail(w, http.StatusInternalServerError, "Failed to store OTP", err)
		return
	}

	// TODO: hand the code to the SMS gateway once one is provisioned.
	log.Printf("OTP for %s: %s", phone, code)

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "OTP sent",
	})
}

// VerifyOTP handles POST /api/login/verify: checks the code, marks the user
// verified, and issues a token like a plain login.
func VerifyOTP(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var input struct {
		PhoneNumber string `json:"phoneNumber"`
		OTP         string `json:"otp"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	phone := strings.TrimSpace(input.PhoneNumber)

	storedHash, err := rdx.RdxGet("otp:" + phone)
	if err != nil || storedHash == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid or expired OTP")
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(input.OTP)) != nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid or expired OTP")
		return
	}
	rdx.RdxDel("otp:" + phone)

	user, err := upsertUser(ctx, phone, "")
	if err != nil {
		utils.RespondWithErrorDetail(w, http.StatusInternalServerError, "Failed to save user", err)
		return
	}
	if _, err := db.UserCollection.UpdateOne(ctx,
		bson.M{"phoneNumber": phone},
		bson.M{"$set": bson.M{"verified": true}},
	); err != nil {
		utils.RespondWithErrorDetail(w, http.StatusInternalServerError, "Failed to verify user", err)
		return
	}
	user.Verified = true

	token, err := generateToken(user)
	if err != nil {
		utils.RespondWithErrorDetail(w, http.StatusInternalServerError, "Failed to generate token", err)
		return
	}

	utils.SendResponse(w, http.StatusOK, map[string]any{
		"token": token,
		"user":  user,
	}, "Phone number verified", nil)
}
