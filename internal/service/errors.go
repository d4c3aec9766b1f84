package service

import "errors"

var (
	// ErrCustomerNotFound заказ ссылается на несуществующего клиента
	ErrCustomerNotFound = errors.New("customer not found")
)
