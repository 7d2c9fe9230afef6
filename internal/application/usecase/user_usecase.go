package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/sales-auth-api/internal/application/dto"
	"github.com/tu-usuario/sales-auth-api/internal/domain"
	"github.com/tu-usuario/sales-auth-api/internal/domain/entity"
	"github.com/tu-usuario/sales-auth-api/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// UserUseCase administración de cuentas: alta, listado y baja.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Create hashea el password con bcrypt y persiste un usuario nuevo.
// Devuelve ErrUserAlreadyExists si el email o el userName ya están tomados,
// y ErrInvalidInput si el rol no pertenece al conjunto cerrado.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) error {
	if !entity.ValidRole(in.Role) {
		return domain.ErrInvalidInput
	}
	existing, err := uc.repo.FindByEmailOrUserName(in.Email, in.UserName)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.ErrUserAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		UserName:     in.UserName,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return uc.repo.Create(user)
}

// List devuelve todos los usuarios sin el password hash. Sin paginación:
// el panel de administración consume la tabla completa.
func (uc *UserUseCase) List() ([]dto.UserResponse, error) {
	users, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *entityToUserResponse(u))
	}
	return out, nil
}

// Delete elimina un usuario por ID. Busca y borra en dos operaciones: si dos
// llamadas compiten por el mismo ID, la segunda recibe ErrUserNotFound.
func (uc *UserUseCase) Delete(id string) error {
	user, err := uc.repo.FindByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	return uc.repo.Delete(id)
}

func entityToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	history := make([]dto.SaleEntryResponse, 0, len(u.SaleHistory))
	for _, e := range u.SaleHistory {
		history = append(history, dto.SaleEntryResponse{
			Value:         e.Value,
			Date:          e.Date,
			TotalExpenses: e.TotalExpenses,
			NetProfit:     e.NetProfit,
			Revenue:       e.Revenue,
		})
	}
	return &dto.UserResponse{
		ID:          u.ID,
		UserName:    u.UserName,
		Email:       u.Email,
		Role:        u.Role,
		LastLoginAt: u.LastLoginAt,
		Sale:        u.Sale,
		SaleHistory: history,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
