package handlers

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// verifyToken checks the Bearer token of a request and returns the user id
// it was issued for. Tokens are HMAC-signed by the external identity
// collaborator with the shared JWT_SECRET.
func verifyToken(r *http.Request) (int, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return 0, fmt.Errorf("missing authorization header")
	}
	tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
	if !found {
		return 0, fmt.Errorf("authorization header is not a bearer token")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil {
		return 0, err
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return 0, err
	}
	userID, err := strconv.Atoi(subject)
	if err != nil || userID <= 0 {
		return 0, fmt.Errorf("token subject is not a valid user id")
	}

	return userID, nil
}
