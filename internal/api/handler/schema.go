package handler

// --- Auth ---

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// --- Inventory ---

type itemRequest struct {
	Name         string  `json:"name"          validate:"required"`
	SKU          string  `json:"sku"           validate:"required"`
	Category     string  `json:"category"`
	Quantity     int     `json:"quantity"      validate:"gte=0"`
	UnitPrice    float64 `json:"unit_price"    validate:"gte=0"`
	ReorderLevel int     `json:"reorder_level" validate:"gte=0"`
}

type adjustRequest struct {
	Delta int `json:"delta" validate:"required"`
}

// --- Restock ---

type restockRequest struct {
	ItemID   string `json:"item_id"  validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
	Supplier string `json:"supplier"`
}

// --- Messages ---

type messageRequest struct {
	Receiver string `json:"receiver" validate:"required"`
	Text     string `json:"text"     validate:"required,max=2000"`
}

// --- Email ---

type emailRequest struct {
	To      string `json:"to"      validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Text    string `json:"text"    validate:"required"`
}
