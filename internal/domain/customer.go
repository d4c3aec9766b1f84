package domain

// Customer представляет собой модель клиента
type Customer struct {
	ID        int    `json:"id" db:"id"`
	FirstName string `json:"firstName" db:"first_name"`
	LastName  string `json:"lastName" db:"last_name"`
	Email     string `json:"email" db:"email"`
}

// CustomerRequest представляет запрос на создание/обновление клиента
type CustomerRequest struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName" binding:"required,max=50" validate:"required,max=50"`
	LastName  string `json:"lastName" binding:"required,max=50" validate:"required,max=50"`
	Email     string `json:"email" binding:"required,email,max=100" validate:"required,email,max=100"`
}

// CustomerPatch представляет частичное обновление клиента.
// Применяются только непустые (не nil) поля.
type CustomerPatch struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
}
