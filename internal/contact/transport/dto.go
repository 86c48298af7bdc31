package transport

type EnquiryRequest struct {
	Name    string `json:"name" validate:"required,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"omitempty,max=20"`
	Company string `json:"company" validate:"omitempty,max=100"`
	Message string `json:"message" validate:"required,max=2000"`
}

type EnquiryResponse struct {
	Received bool `json:"received"`
}
