package models

// OrderLine is a selected product with its quantity.
// Amount is always at least 1 while the line is stored.
type OrderLine struct {
	ProductID string  `json:"productId"`
	Amount    int     `json:"amount"`
	Product   Product `json:"product"`
}

// OrderOptions holds checkout flags carried alongside the order lines.
// They are not interpreted by the ledger.
type OrderOptions struct {
	DoNotCall            bool   `json:"doNotCall"`
	NoNapkins            bool   `json:"noNapkins"`
	CutleryCount         int    `json:"cutleryCount" validate:"gte=0,lte=50"`
	TrainingCutleryCount int    `json:"trainingCutleryCount" validate:"gte=0,lte=50"`
	AddComment           bool   `json:"addComment"`
	Comment              string `json:"comment" validate:"max=1000"`
}

// OrderProduct represents a single item in a submitted order
type OrderProduct struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Price      int64  `json:"price"`
	Amount     int    `json:"amount"`
	CategoryID string `json:"categoryID"`
}

// OrderRequest is the checkout payload produced from a cart
type OrderRequest struct {
	OrderID              string         `json:"orderId"`
	Products             []OrderProduct `json:"products"`
	TotalPrice           int64          `json:"totalPrice"`
	DoNotCall            bool           `json:"doNotCall"`
	NoNapkins            bool           `json:"noNapkins"`
	CutleryCount         int            `json:"cutleryCount"`
	TrainingCutleryCount int            `json:"trainingCutleryCount"`
	Comment              string         `json:"comment"`
}
