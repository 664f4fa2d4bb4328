//go:build unit

package user_test

import (
	"testing"

	"storefront-checkout/internal/domain/user"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmp.AllowUnexported(user.User{}, user.Email{}),
	cmpopts.EquateEmpty(),
}

func TestUser(t *testing.T) {
	t.Run("基本成功ケース", func(t *testing.T) {
		id := uuid.New()
		email, err := user.NewEmail("  Shopper@Example.com ")
		require.NoError(t, err)
		role, err := user.NewRole("")
		require.NoError(t, err)

		actual := user.NewUser(id, email, "Jane", role, true)
		expected := user.NewUser(id, mustEmail(t, "shopper@example.com"), "Jane", user.RoleCustomer, true)

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("User mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, "shopper@example.com", actual.Email().Value())
		assert.True(t, actual.IsVerified())
	})

	t.Run("ロール検証", func(t *testing.T) {
		_, err := user.NewRole("operator")
		assert.ErrorIs(t, err, user.ErrInvalidRole)

		role, err := user.NewRole("admin")
		require.NoError(t, err)
		assert.Equal(t, user.RoleAdmin, role)
	})
}

func TestCredentials(t *testing.T) {
	testCases := []struct {
		name     string
		email    string
		password string
		errIs    error
	}{
		{name: "有効な認証情報OK", email: "valid@example.com", password: "password123"},
		{name: "空のメールアドレスNG", email: "", password: "password123", errIs: user.ErrInvalidEmail},
		{name: "無効な形式NG", email: "invalid-email", password: "password123", errIs: user.ErrInvalidEmail},
		{name: "@なしNG", email: "invalidemail.com", password: "password123", errIs: user.ErrInvalidEmail},
		{name: "短いパスワードNG", email: "valid@example.com", password: "short", errIs: user.ErrPasswordTooWeak},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			creds, err := user.NewCredentials(tc.email, tc.password)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.email, creds.Email().Value())
			assert.Equal(t, tc.password, creds.Password().Value())
		})
	}
}

func TestRegistration(t *testing.T) {
	t.Run("名前はトリムされる", func(t *testing.T) {
		reg, err := user.NewRegistration("  Jane Roe ", "jane@example.com", "password123")
		require.NoError(t, err)
		assert.Equal(t, "Jane Roe", reg.Name())
	})

	t.Run("短い名前NG", func(t *testing.T) {
		_, err := user.NewRegistration("J", "jane@example.com", "password123")
		assert.ErrorIs(t, err, user.ErrInvalidName)
	})

	t.Run("メールアドレスNG", func(t *testing.T) {
		_, err := user.NewRegistration("Jane", "jane", "password123")
		assert.ErrorIs(t, err, user.ErrInvalidEmail)
	})
}

func TestVerification(t *testing.T) {
	v, err := user.NewVerification("jane@example.com", " 123456 ")
	require.NoError(t, err)
	assert.Equal(t, "123456", v.Code().Value())

	for _, code := range []string{"", "12345", "1234567", "12a456"} {
		_, err := user.NewVerification("jane@example.com", code)
		assert.ErrorIs(t, err, user.ErrInvalidVerificationCode, "code %q", code)
	}
}

func mustEmail(t *testing.T, s string) user.Email {
	t.Helper()
	e, err := user.NewEmail(s)
	require.NoError(t, err)
	return e
}
