package imsapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jhoicas/ims-client/internal/domain"
	"github.com/jhoicas/ims-client/internal/domain/entity"
	"github.com/jhoicas/ims-client/internal/domain/inventory"
	"github.com/jhoicas/ims-client/internal/domain/repository"
)

// AuthRepository implementación de repository.AuthRepository sobre /auth.
type AuthRepository struct {
	c *Client
}

func NewAuthRepository(c *Client) *AuthRepository {
	return &AuthRepository{c: c}
}

var _ repository.AuthRepository = (*AuthRepository)(nil)

// Login intercambia el PIN por el token de la API remota.
// La respuesta trae el token junto a los datos del usuario, planos o bajo "user".
func (r *AuthRepository) Login(ctx context.Context, pin string) (*repository.LoginResult, error) {
	body, err := r.c.do(ctx, http.MethodPost, "/auth/login", nil, map[string]string{"pin": pin})
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	rec, err := decodeRecord(body, "")
	if err != nil {
		return nil, err
	}
	token := inventory.Text(rec["token"])
	if token == "" {
		return nil, fmt.Errorf("login: respuesta sin token: %w", domain.ErrUpstream)
	}

	user, _ := decodeRecord(body, "user")
	return &repository.LoginResult{Token: token, Profile: profileFrom(user)}, nil
}

func (r *AuthRepository) GetProfile(ctx context.Context) (*entity.Profile, error) {
	body, err := r.c.do(ctx, http.MethodGet, "/auth/profile", nil, nil)
	if err != nil {
		return nil, fmt.Errorf("obtener perfil: %w", err)
	}
	rec, err := decodeRecord(body, "user")
	if err != nil {
		return nil, err
	}
	p := profileFrom(rec)
	return &p, nil
}

func (r *AuthRepository) UpdateProfile(ctx context.Context, in entity.Profile) (*entity.Profile, error) {
	payload := map[string]string{"fullName": in.FullName, "email": in.Email}
	body, err := r.c.do(ctx, http.MethodPut, "/auth/profile", nil, payload)
	if err != nil {
		return nil, fmt.Errorf("actualizar perfil: %w", err)
	}
	rec, err := decodeRecord(body, "user")
	if err != nil {
		return nil, err
	}
	p := profileFrom(rec)
	return &p, nil
}

func (r *AuthRepository) UpdatePIN(ctx context.Context, currentPIN, newPIN string) error {
	payload := map[string]string{"currentPin": currentPIN, "newPin": newPIN}
	if _, err := r.c.do(ctx, http.MethodPut, "/auth/pin", nil, payload); err != nil {
		return fmt.Errorf("cambiar PIN: %w", err)
	}
	return nil
}

func profileFrom(rec inventory.RawRecord) entity.Profile {
	id := inventory.Text(rec["_id"])
	if id == "" {
		id = inventory.Text(rec["id"])
	}
	name := inventory.Text(rec["fullName"])
	if name == "" {
		name = inventory.Text(rec["name"])
	}
	return entity.Profile{ID: id, FullName: name, Email: inventory.Text(rec["email"])}
}
