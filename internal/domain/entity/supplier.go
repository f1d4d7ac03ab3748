package entity

import "time"

// Supplier representa un proveedor (fuente de abastecimiento en el backend).
type Supplier struct {
	ID            string
	Name          string
	ContactPerson string
	Email         string
	Phone         string
	Address       string
	CreatedAt     time.Time
}
