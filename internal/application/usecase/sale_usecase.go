package usecase

import (
	"time"

	"github.com/tu-usuario/sales-auth-api/internal/application/dto"
	"github.com/tu-usuario/sales-auth-api/internal/domain"
	"github.com/tu-usuario/sales-auth-api/internal/domain/entity"
	"github.com/tu-usuario/sales-auth-api/internal/domain/repository"
)

// SaleUseCase libro de ventas por usuario: lectura y append.
type SaleUseCase struct {
	repo repository.UserRepository
}

// NewSaleUseCase construye el caso de uso del libro de ventas.
func NewSaleUseCase(repo repository.UserRepository) *SaleUseCase {
	return &SaleUseCase{repo: repo}
}

// Get devuelve la caché Sale y el historial completo del usuario.
func (uc *SaleUseCase) Get(id string) (*dto.SaleResponse, error) {
	user, err := uc.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toSaleResponse(user), nil
}

// Append agrega una entrada al historial y extiende la caché Sale, y persiste
// el documento completo en un solo Save. Carga-muta-guarda sin aislamiento:
// dos appends concurrentes al mismo usuario pueden pisarse (último write
// gana), igual que en el API original.
func (uc *SaleUseCase) Append(id string, in dto.SaleUpdate) (*dto.SaleResponse, error) {
	user, err := uc.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	user.AppendSale(in.Value, in.TotalExpenses, in.NetProfit, in.Revenue, time.Now())
	if err := uc.repo.Save(user); err != nil {
		return nil, err
	}
	return toSaleResponse(user), nil
}

func toSaleResponse(u *entity.User) *dto.SaleResponse {
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
	return &dto.SaleResponse{
		Success:     true,
		Sale:        u.Sale,
		SaleHistory: history,
	}
}
