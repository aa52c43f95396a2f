package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stay/config"
	"stay/infras/jwt"
)

func newTestService() jwt.JWT {
	cfg := &config.Config{}
	cfg.App.Name = "stay-test"
	cfg.JWT.AccessSecret = "test-secret"
	cfg.JWT.AccessExpireMin = 15

	return jwt.New(cfg)
}

func TestJWT_GenerateAndValidate(t *testing.T) {
	svc := newTestService()

	token, err := svc.GenerateToken(7)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, int64(7), claims.UserID)
	assert.NotEmpty(t, claims.TokenID)
	assert.Equal(t, "stay-test", claims.Issuer)
}

func TestJWT_ValidateGarbage(t *testing.T) {
	svc := newTestService()

	_, err := svc.ValidateToken("not-a-token")

	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestJWT_ValidateWrongSecret(t *testing.T) {
	svc := newTestService()

	token, err := svc.GenerateToken(7)
	require.NoError(t, err)

	otherCfg := &config.Config{}
	otherCfg.JWT.AccessSecret = "another-secret"
	otherCfg.JWT.AccessExpireMin = 15
	other := jwt.New(otherCfg)

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestJWT_RejectsNonPositiveUserID(t *testing.T) {
	svc := newTestService()

	token, err := svc.GenerateToken(0)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrInvalidClaim)
}

func TestExtractTokenFromHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid bearer", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "empty header", header: "", wantErr: true},
		{name: "missing prefix", header: "abc.def.ghi", wantErr: true},
		{name: "wrong scheme", header: "Basic abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := jwt.ExtractTokenFromHeader(tt.header)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, token)
		})
	}
}
