package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// jwtSecretKey signs every token we issue. It is loaded from the
// JWT_SECRET environment variable; the fallback only exists so local
// development works without a .env file.
func jwtSecretKey() []byte {
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		return []byte(secret)
	}
	return []byte("LOCAL_DEV_ONLY_SECRET_KEY")
}

// GenerateToken creates a new JWT for a given user ID.
func GenerateToken(userID int64) (string, error) {
	// "sub" (Subject) is the standard claim for the user ID.
	// Tokens expire after 72 hours.
	claims := jwt.MapClaims{
		"sub": userID,
		"exp": time.Now().Add(time.Hour * 72).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(jwtSecretKey())
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ValidateToken parses and validates a JWT token string.
// It returns the user ID (subject) if the token is valid.
func ValidateToken(tokenString string) (int64, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure the token was signed with the same algorithm we use.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecretKey(), nil
	})
	if err != nil {
		return 0, err // expired, malformed, bad signature
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		userIDFloat, ok := claims["sub"].(float64)
		if !ok {
			return 0, errors.New("invalid subject claim")
		}
		// JSON numbers arrive as float64
		return int64(userIDFloat), nil
	}

	return 0, errors.New("invalid token")
}
