package domain

// CustomerOrder проекция для отчетных выборок (не хранится в БД).
// Для выборки "клиенты с заказами" заполняется только CustomerName.
type CustomerOrder struct {
	CustomerName string  `json:"customerName" db:"customer_name"`
	Product      string  `json:"product,omitempty" db:"product"`
	Price        float64 `json:"price,omitempty" db:"price"`
}
