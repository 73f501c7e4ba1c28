package dto

import (
	"reflect"
	"strings"
	"unicode"

	"chatmint-studio/internal/core/domain"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("wallet_address", validateWalletAddress)
		_ = v.RegisterValidation("eth_signature", validateSignature)
	}
}

// validateWalletAddress applies the same rules as the ownership builder.
func validateWalletAddress(fl validator.FieldLevel) bool {
	_, err := domain.ParseWalletAddress(fl.Field().String())
	return err == nil
}

// validateSignature accepts a 0x-prefixed 65-byte hex signature.
func validateSignature(fl validator.FieldLevel) bool {
	sig, err := hexutil.Decode(fl.Field().String())
	return err == nil && len(sig) == crypto.SignatureLength
}

// SanitizeStruct trims whitespace and drops control characters other than
// newline and tab from every exported string field (including *string) of a
// struct pointer.
func SanitizeStruct(v interface{}) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return
	}
	sanitizeFields(rv.Elem())
}

func sanitizeFields(rv reflect.Value) {
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanSet() {
			continue
		}
		switch f.Kind() {
		case reflect.String:
			f.SetString(sanitize(f.String()))
		case reflect.Ptr:
			if f.IsNil() {
				continue
			}
			elem := f.Elem()
			if elem.Kind() == reflect.String {
				elem.SetString(sanitize(elem.String()))
			}
		}
	}
}

func sanitize(s string) string {
	s = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' || !unicode.IsControl(r) {
			return r
		}
		return -1
	}, s)
	return strings.TrimSpace(s)
}
