package repository

import "github.com/joansel25/farmacia-api/internal/domain/entity"

// CategoryRepository define el puerto de persistencia para Category.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	Update(category *entity.Category) error
	List(limit, offset int) ([]*entity.Category, error)
	Delete(id string) error
}

// SupplierRepository define el puerto de persistencia para Supplier.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	Update(supplier *entity.Supplier) error
	List(limit, offset int) ([]*entity.Supplier, error)
	Delete(id string) error
}

// ClientRepository define el puerto de persistencia para Client.
type ClientRepository interface {
	Create(client *entity.Client) error
	GetByID(id string) (*entity.Client, error)
	Update(client *entity.Client) error
	List(limit, offset int) ([]*entity.Client, error)
	Delete(id string) error
}

// EmployeeRepository define el puerto de persistencia para Employee.
type EmployeeRepository interface {
	Create(employee *entity.Employee) error
	GetByID(id string) (*entity.Employee, error)
	Update(employee *entity.Employee) error
	List(limit, offset int) ([]*entity.Employee, error)
	Delete(id string) error
}
