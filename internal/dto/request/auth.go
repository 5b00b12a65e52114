package request

type RegisterRequest struct {
	FullName string `json:"fullName" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type BiometricLoginRequest struct {
	Email       string `json:"email" validate:"required,email"`
	ImageBase64 string `json:"imageBase64" validate:"required"`
}

type RegisterFaceRequest struct {
	ImageBase64 string `json:"imageBase64" validate:"required"`
}
