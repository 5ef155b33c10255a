package configs

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const AccessTokenExpirationTime = 24 * time.Hour

type JWTClaim struct {
	Id       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

func GenerateJWT(id, email, username string) (string, int64, error) {
	expirationTime := time.Now().Add(AccessTokenExpirationTime)
	jwtKey := LoadEnvFor("SECRET")

	claims := JWTClaim{
		Id:       id,
		Username: username,
		Email:    email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(jwtKey))
	if err != nil {
		return "", 0, err
	}

	return tokenString, expirationTime.Unix(), nil
}

func ValidateToken(signedToken string) (*JWTClaim, error) {
	token, err := jwt.ParseWithClaims(signedToken, &JWTClaim{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(LoadEnvFor("SECRET")), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*JWTClaim)
	if !ok || !token.Valid {
		return nil, errors.New("couldn't parse claims")
	}

	return claims, nil
}

// ExtractToken pulls the bearer token from the Authorization header.
func ExtractToken(c *gin.Context) string {
	bearerToken := c.GetHeader("Authorization")
	if len(strings.Split(bearerToken, " ")) == 2 {
		return strings.Split(bearerToken, " ")[1]
	}
	return ""
}

// CurrentUserId resolves the authenticated user's object id from the request token.
func CurrentUserId(c *gin.Context) (primitive.ObjectID, error) {
	tokenString := ExtractToken(c)
	if tokenString == "" {
		return primitive.NilObjectID, errors.New("request does not contain an access token")
	}

	claims, err := ValidateToken(tokenString)
	if err != nil {
		return primitive.NilObjectID, err
	}

	userId, err := primitive.ObjectIDFromHex(claims.Id)
	if err != nil {
		return primitive.NilObjectID, errors.Wrap(err, "invalid user id in token")
	}

	return userId, nil
}
