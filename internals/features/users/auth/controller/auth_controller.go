// controller/auth_controller.go
package controller

import (
	"time"

	"aulapro_backend/internals/configs"
	"aulapro_backend/internals/features/users/auth/dto"
	"aulapro_backend/internals/features/users/auth/model"
	helper "aulapro_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

var validate = validator.New()

const tokenTTL = 12 * time.Hour

// POST /api/auth/login
// La respuesta es idéntica para usuario inexistente y password malo.
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Cuerpo inválido")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationMap(err))
	}

	var user model.UsuarioModel
	err := ctrl.DB.
		Where("lower(usuario_username) = lower(?) AND usuario_is_active = TRUE", req.Username).
		First(&user).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Credenciales inválidas")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.UsuarioPassword), []byte(req.Password)) != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Credenciales inválidas")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": user.UsuarioID.String(),
		"role":    user.UsuarioRole,
		"iat":     now.Unix(),
		"exp":     now.Add(tokenTTL).Unix(),
	}
	var estID *string
	if user.UsuarioEstablecimientoID != nil {
		s := user.UsuarioEstablecimientoID.String()
		claims["establecimiento_id"] = s
		estID = &s
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error emitiendo token")
	}

	// cookie además del body, para clientes navegador
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    signed,
		Expires:  now.Add(tokenTTL),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return helper.JsonOK(c, "Sesión iniciada", dto.LoginResponse{
		AccessToken:       signed,
		TokenType:         "Bearer",
		ExpiresIn:         int64(tokenTTL.Seconds()),
		Role:              user.UsuarioRole,
		EstablecimientoID: estID,
	})
}

// POST /api/auth/logout
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return helper.JsonOK(c, "Sesión cerrada", nil)
}
