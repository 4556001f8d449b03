package utils

import (
	rndm "math/rand"
	"mime/multipart"
	"net/http"
	"os"
	"regexp"
	"strings"
)

// --- Random String and ID Generators ---

var digitRunes = []rune("0123456789")

// GenerateRandomDigitString creates a random numeric string of length n.
func GenerateRandomDigitString(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = digitRunes[rndm.Intn(len(digitRunes))]
	}
	return string(b)
}

// --- String Helpers ---

func ContainsIgnoreCase(str, substr string) bool {
	return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
}

// --- Identifier Validation ---

var hexIDRe = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// IsValidObjectID reports whether id looks like a 24-char hex Mongo ObjectID.
// Checked before querying so malformed ids never reach the driver as cast errors.
func IsValidObjectID(id string) bool {
	return hexIDRe.MatchString(id)
}

// IsValidPhoneNumber accepts 10-15 digits with an optional leading +.
func IsValidPhoneNumber(phone string) bool {
	phone = strings.TrimSpace(phone)
	if strings.HasPrefix(phone, "+") {
		phone = phone[1:]
	}
	if len(phone) < 10 || len(phone) > 15 {
		return false
	}
	for _, c := range phone {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// --- Image Validation ---

var SupportedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
	"image/bmp":  true,
	"image/tiff": true,
}

func ValidateImageFileType(w http.ResponseWriter, header *multipart.FileHeader) bool {
	mimeType := header.Header.Get("Content-Type")
	if !SupportedImageTypes[mimeType] {
		http.Error(w, "Invalid file type. Supported formats: JPEG, PNG, WebP, GIF, BMP, TIFF.", http.StatusBadRequest)
		return false
	}
	return true
}

func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}

// SplitTags takes a comma-separated string and returns a cleaned []string
func SplitTags(input string) []string {
	if input == "" {
		return []string{}
	}
	parts := strings.Split(input, ",")
	var tags []string
	seen := make(map[string]bool)

	for _, p := range parts {
		tag := strings.TrimSpace(p)
		if tag == "" {
			continue
		}
		if !seen[tag] {
			tags = append(tags, tag)
			seen[tag] = true
		}
	}
	return tags
}
