package utils

import "math/rand"

const tokenCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateRandomToken returns a short alphanumeric code, used for OAuth
// state values.
func GenerateRandomToken(length int) string {
	token := make([]byte, length)
	for i := range token {
		token[i] = tokenCharset[rand.Intn(len(tokenCharset))]
	}
	return string(token)
}
