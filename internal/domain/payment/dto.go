package payment

type ConfirmInput struct {
	Package string `json:"package" binding:"required,oneof=basic standard premium" example:"standard"`
	Method  string `json:"method" binding:"required,oneof=stripe orange wave" example:"wave"`
}

type PackageDTO struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	PriceXOF    int64  `json:"price_xof"`
	MaxPages    int    `json:"max_pages,omitempty"`
}

type MethodDTO struct {
	ID    Method `json:"id"`
	Label string `json:"label"`
}

type CatalogDTO struct {
	Currency string       `json:"currency"`
	Packages []PackageDTO `json:"packages"`
	Methods  []MethodDTO  `json:"methods"`
}

type Receipt struct {
	Payment Payment `json:"payment"`
	Message string  `json:"message"`
}
