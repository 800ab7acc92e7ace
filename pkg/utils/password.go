package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword bcrypt，cost 10（DefaultCost），每次调用自带随机盐
func HashPassword(pw string) string {
	b, _ := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	return string(b)
}

func CheckPassword(pw, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(pw)) == nil
}
