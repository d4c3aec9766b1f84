package domain

// Order представляет собой заказ клиента
type Order struct {
	ID          int     `json:"id" db:"id"`
	ProductName string  `json:"productName" db:"product_name"`
	Amount      float64 `json:"amount" db:"amount"`
	CustomerID  int     `json:"customerId" db:"customer_id"`
}

// OrderRequest представляет запрос на создание/обновление заказа
type OrderRequest struct {
	ID          int     `json:"id"`
	ProductName string  `json:"productName" binding:"required" validate:"required"`
	Amount      float64 `json:"amount"`
	CustomerID  int     `json:"customerId"`
}
