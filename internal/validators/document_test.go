package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDocument(t *testing.T) {
	assert.Equal(t, "52998224725", NormalizeDocument("529.982.247-25"))
	assert.Equal(t, "11222333000181", NormalizeDocument("11.222.333/0001-81"))
	assert.Equal(t, "", NormalizeDocument("abc"))
}

func TestIsValidCPF(t *testing.T) {
	assert.True(t, IsValidCPF("529.982.247-25"))
	assert.True(t, IsValidCPF("11144477735"))

	// dígito verificador errado
	assert.False(t, IsValidCPF("529.982.247-26"))
	assert.False(t, IsValidCPF("11144477734"))

	// todos iguais passa na conta mas é inválido
	assert.False(t, IsValidCPF("11111111111"))
	assert.False(t, IsValidCPF("00000000000"))

	assert.False(t, IsValidCPF("1234567890"))
	assert.False(t, IsValidCPF(""))
}

func TestIsValidCNPJ(t *testing.T) {
	assert.True(t, IsValidCNPJ("11.222.333/0001-81"))
	assert.True(t, IsValidCNPJ("11444777000161"))

	assert.False(t, IsValidCNPJ("11.222.333/0001-82"))
	assert.False(t, IsValidCNPJ("11111111111111"))
	assert.False(t, IsValidCNPJ("112223330001"))
}

func TestFormatCPF(t *testing.T) {
	assert.Equal(t, "529.982.247-25", FormatCPF("52998224725"))
	assert.Equal(t, "123", FormatCPF("123"))
}

func TestFormatCNPJ(t *testing.T) {
	assert.Equal(t, "11.222.333/0001-81", FormatCNPJ("11222333000181"))
	assert.Equal(t, "123", FormatCNPJ("123"))
}
