package transport

type CreateProductRequest struct {
	Name     string `json:"name"`
	Price    *int64 `json:"price"`
	Category string `json:"category"`
	ImageURL string `json:"image_url"`
	Stock    int    `json:"stock"`
}

type UpdateProductRequest struct {
	Name     *string `json:"name"`
	Price    *int64  `json:"price"`
	Category *string `json:"category"`
	ImageURL *string `json:"image_url"`
	Stock    *int    `json:"stock"`
}

type CategoryRequest struct {
	Name string `json:"name"`
}

type CreateOrderItem struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

type CreateOrderRequest struct {
	Items []CreateOrderItem `json:"items"`
}

type GenerateImageRequest struct {
	ProductName string `json:"product_name"`
}

type GenerateImageResponse struct {
	ImageURL string `json:"image_url"`
	Msg      string `json:"msg,omitempty"`
}

type AddItemRequest struct {
	ProductID uint `json:"product_id"`
}

type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type CheckoutRequest struct {
	PaymentMethod string `json:"payment_method"`
	CashReceived  string `json:"cash_received"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}
