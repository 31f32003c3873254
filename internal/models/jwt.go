package models

import "github.com/golang-jwt/jwt/v5"

type Claims struct {
	Identity string `json:"identity"`
	Name     string `json:"name"`
	jwt.RegisteredClaims
}
