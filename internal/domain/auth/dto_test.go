package auth

import (
	"errors"
	"testing"

	"github.com/dayflow-hr/hrms-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterRequest_Validate(t *testing.T) {
	valid := RegisterRequest{
		Name:        "  Jane Doe ",
		Email:       " Jane@Acme.COM ",
		Password:    "secret1",
		CompanyName: "Acme Corp",
		Phone:       "+91 98765 43210",
	}
	require.NoError(t, valid.Validate())
	assert.Equal(t, "Jane Doe", valid.Name)
	assert.Equal(t, "jane@acme.com", valid.Email)

	cases := []struct {
		name  string
		req   RegisterRequest
		field string
	}{
		{"short name", RegisterRequest{Name: "J", Email: "j@a.io", Password: "secret1", CompanyName: "Acme"}, "name"},
		{"bad email", RegisterRequest{Name: "Jo", Email: "nope", Password: "secret1", CompanyName: "Acme"}, "email"},
		{"short password", RegisterRequest{Name: "Jo", Email: "j@a.io", Password: "12345", CompanyName: "Acme"}, "password"},
		{"short company", RegisterRequest{Name: "Jo", Email: "j@a.io", Password: "secret1", CompanyName: "A"}, "company_name"},
		{"short phone", RegisterRequest{Name: "Jo", Email: "j@a.io", Password: "secret1", CompanyName: "Acme", Phone: "12345"}, "phone"},
	}
	for _, c := range cases {
		err := c.req.Validate()
		var verrs validator.ValidationErrors
		require.True(t, errors.As(err, &verrs), c.name)
		assert.Contains(t, verrs.ToMap(), c.field, c.name)
	}
}

func TestLoginRequest_Identifier(t *testing.T) {
	assert.Equal(t, "jane@acme.com", LoginRequest{Email: "Jane@Acme.com"}.Identifier())
	assert.Equal(t, "ACJADO20240001", LoginRequest{Email: "acjado20240001"}.Identifier())

	empty := LoginRequest{Email: "  "}
	assert.Error(t, empty.Validate())
}
