package handler

type orderItemRequest struct {
	Product  string  `json:"product"  validate:"required"`
	Quantity int     `json:"quantity" validate:"required,gt=0"`
	Price    float64 `json:"price"    validate:"required,gt=0"`
}

type createOrderRequest struct {
	Items []orderItemRequest `json:"items" validate:"required,min=1,dive"`
}
