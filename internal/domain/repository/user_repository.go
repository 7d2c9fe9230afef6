package repository

import "github.com/tu-usuario/sales-auth-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
// Las lecturas devuelven (nil, nil) cuando no hay documento que coincida.
type UserRepository interface {
	Create(user *entity.User) error
	FindByID(id string) (*entity.User, error)
	// FindByIdentifier busca por igualdad exacta de email O userName (login).
	FindByIdentifier(identifier string) (*entity.User, error)
	// FindByEmailOrUserName detecta identidades duplicadas antes de crear.
	FindByEmailOrUserName(email, userName string) (*entity.User, error)
	List() ([]*entity.User, error)
	// Save persiste el documento completo (último write gana; ver nota en el
	// adaptador sobre appends concurrentes al libro de ventas).
	Save(user *entity.User) error
	Delete(id string) error
}
