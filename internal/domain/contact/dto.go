package contact

type CreateInquiryInput struct {
	Name    string `json:"name" binding:"required,min=2,max=100" example:"Awa Diop"`
	Email   string `json:"email" binding:"required,email" example:"awa@example.com"`
	Message string `json:"message" binding:"required,min=10,max=5000" example:"I would like a quote for an online shop"`
}

type UpdateStatusInput struct {
	Status string `json:"status" binding:"required,oneof=new read replied" example:"read"`
}
