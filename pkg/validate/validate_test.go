package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type registerForm struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=4"`
	Nickname string `json:"nickname" validate:"nullable,max=10"`
	Role     string `json:"role" validate:"nullable,in=user,admin"`
	Age      int    `json:"age" validate:"nullable,between=18,120"`
}

func TestStructPassesValidInput(t *testing.T) {
	errs := Struct(&registerForm{
		Email:    "a@b.co",
		Password: "secret",
		Role:     "admin",
		Age:      30,
	})
	assert.False(t, HasErrors(errs), "unexpected errors: %v", errs)
}

func TestStructRequired(t *testing.T) {
	errs := Struct(&registerForm{})
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "password")
	assert.NotContains(t, errs, "nickname", "nullable fields may be empty")
}

func TestStructEmail(t *testing.T) {
	errs := Struct(&registerForm{Email: "not-an-email", Password: "secret"})
	assert.Contains(t, errs, "email")
}

func TestStructMin(t *testing.T) {
	errs := Struct(&registerForm{Email: "a@b.co", Password: "abc"})
	assert.Contains(t, errs, "password")
}

func TestStructIn(t *testing.T) {
	errs := Struct(&registerForm{Email: "a@b.co", Password: "secret", Role: "root"})
	assert.Contains(t, errs, "role")

	errs = Struct(&registerForm{Email: "a@b.co", Password: "secret", Role: "user"})
	assert.NotContains(t, errs, "role")
}

func TestStructBetween(t *testing.T) {
	errs := Struct(&registerForm{Email: "a@b.co", Password: "secret", Age: 12})
	assert.Contains(t, errs, "age")

	errs = Struct(&registerForm{Email: "a@b.co", Password: "secret", Age: 64})
	assert.NotContains(t, errs, "age")
}

func TestStructMaxString(t *testing.T) {
	errs := Struct(&registerForm{Email: "a@b.co", Password: "secret", Nickname: "waaaaaaaaaaytoolong"})
	assert.Contains(t, errs, "nickname")
}

func TestSplitRulesKeepsListParams(t *testing.T) {
	assert.Equal(t, []string{"required", "in=a,b,c", "max=3"}, splitRules("required,in=a,b,c,max=3"))
	assert.Equal(t, []string{"between=1,5"}, splitRules("between=1,5"))
}
