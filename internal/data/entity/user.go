package entity

type UserRole string

const (
	RoleUser  UserRole = "USER"
	RoleAdmin UserRole = "ADMIN"
)

type User struct {
	Base
	FullName     string   `db:"full_name"`
	Email        string   `db:"email"`
	PasswordHash string   `db:"password"`
	Role         UserRole `db:"role"`
	// Base64 encoded reference image untuk biometric login
	BiometricData *string `db:"biometric_data"`
}

// HasBiometric reports whether a biometric reference is enrolled
func (u *User) HasBiometric() bool {
	return u.BiometricData != nil && *u.BiometricData != ""
}
