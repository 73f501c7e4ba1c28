package service

import (
	"testing"

	"chatmint-studio/internal/core/domain"
	"chatmint-studio/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	primaryAddr = "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"
	coOwnerB    = "0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359"
	coOwnerC    = "0xdbF03B407c01E7cD3CBea99509d93f8DDDC8C6FB"
	coOwnerD    = "0xD1220A0cf47c7B9Be7A2E6BA89F429762e7b9aDb"
)

func mustAddr(t *testing.T, s string) domain.WalletAddress {
	t.Helper()
	a, err := domain.ParseWalletAddress(s)
	require.NoError(t, err)
	return a
}

func assertAppError(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Code)
}

func newTestLogger() zerolog.Logger {
	return zerolog.Nop()
}
