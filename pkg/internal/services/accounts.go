package services

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"

	"github.com/inkwelldev/inkwell/pkg/internal/database"
	"github.com/inkwelldev/inkwell/pkg/internal/models"
)

func GetAccountWithID(id uint) (models.Account, error) {
	var account models.Account
	if err := database.C.Where("id = ?", id).First(&account).Error; err != nil {
		return account, fmt.Errorf("unable to get account by id: %v", err)
	}
	return account, nil
}

func GetAccountWithName(name string) (models.Account, error) {
	var account models.Account
	if err := database.C.Where("name = ?", name).First(&account).Error; err != nil {
		return account, fmt.Errorf("unable to get account by name: %v", err)
	}
	return account, nil
}

func NewAccount(name, nick string) (models.Account, error) {
	account := models.Account{
		Name: name,
		Nick: nick,
	}

	if err := database.C.Create(&account).Error; err != nil {
		return account, err
	}
	return account, nil
}

// MintAccessToken signs a short-lived access token for the account. Tokens
// are normally issued by the identity service; this one is for tooling and
// tests that have no identity service around.
func MintAccessToken(account models.Account) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   strconv.Itoa(int(account.ID)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(viper.GetString("security.jwt_secret")))
}

func VerifyAccessToken(raw string) (models.Account, error) {
	token, err := jwt.ParseWithClaims(raw, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		return []byte(viper.GetString("security.jwt_secret")), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Account{}, fmt.Errorf("unable to parse access token: %v", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return models.Account{}, fmt.Errorf("unexpected access token claims")
	}
	id, err := strconv.Atoi(claims.Subject)
	if err != nil {
		return models.Account{}, fmt.Errorf("invalid access token subject: %v", err)
	}

	return GetAccountWithID(uint(id))
}
