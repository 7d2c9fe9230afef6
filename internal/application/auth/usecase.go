package auth

import (
	"github.com/tu-usuario/sales-auth-api/internal/application/dto"
	"github.com/tu-usuario/sales-auth-api/internal/domain"
	"github.com/tu-usuario/sales-auth-api/internal/domain/entity"
	"github.com/tu-usuario/sales-auth-api/internal/domain/repository"
	"github.com/tu-usuario/sales-auth-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens de sesión.
type JWTConfig struct {
	Secret  string
	ExpDays int
	Issuer  string
}

// AuthUseCase caso de uso de autenticación: login y perfil del token.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica identifier (email o userName), rol y password, y emite el
// token de sesión. El rol se compara ANTES que el password: con rol y password
// ambos incorrectos, el error que gana es ErrRoleMismatch. Ese orden es parte
// del contrato del API y no debe cambiarse.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByIdentifier(in.Identifier)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if user.Role != in.Role {
		return nil, domain.ErrRoleMismatch
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpDays)
	if err != nil {
		return nil, err
	}
	// No se persiste nada en el login: LastLoginAt queda intacto a propósito.
	return &dto.LoginResponse{
		Success: true,
		Message: "Login successful",
		User:    toUserSummary(user),
		Token:   token,
	}, nil
}

// Me devuelve el perfil del usuario autenticado (subject del token).
func (uc *AuthUseCase) Me(userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return toUserResponse(user), nil
}

func toUserSummary(u *entity.User) dto.UserSummary {
	return dto.UserSummary{
		ID:        u.ID,
		UserName:  u.UserName,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

func toUserResponse(u *entity.User) *dto.UserResponse {
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
