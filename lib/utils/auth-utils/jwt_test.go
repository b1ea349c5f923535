package authutils

import (
	"testing"

	"github.com/stretchr/testify/require"

	"employee-requests-backend/config"
	"employee-requests-backend/models"
)

func TestTokenRoundTrip(t *testing.T) {
	conf := new(config.Configuration)
	conf.Auth.JWTSecret = "test-secret"
	conf.Auth.JWTExpireInSec = 3600
	config.Conf = conf

	token, err := GetToken(7, "Анна", "a@corp.ru", models.UserRoleEmployee)
	require.Nil(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.Nil(t, err)
	require.Equal(t, float64(7), claims["sub"])
	require.Equal(t, "a@corp.ru", claims["email"])
	require.Equal(t, string(models.UserRoleEmployee), claims["role"])

	t.Run("чужая подпись не принимается", func(t *testing.T) {
		conf.Auth.JWTSecret = "other-secret"
		_, err := ParseToken(token)
		require.Error(t, err)
		conf.Auth.JWTSecret = "test-secret"
	})
}
