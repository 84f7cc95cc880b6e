package validators

import (
	"fmt"
	"strings"
)

// NormalizeDocument strips formatting from a CPF/CNPJ, keeping digits only.
func NormalizeDocument(doc string) string {
	var b strings.Builder
	for _, r := range doc {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func IsValidCPF(doc string) bool {
	cpf := NormalizeDocument(doc)
	if len(cpf) != 11 || allSame(cpf) {
		return false
	}

	d1 := cpfDigit(cpf[:9], 10)
	if int(cpf[9]-'0') != d1 {
		return false
	}

	d2 := cpfDigit(cpf[:10], 11)
	return int(cpf[10]-'0') == d2
}

func cpfDigit(base string, startWeight int) int {
	sum := 0
	for i, r := range base {
		sum += int(r-'0') * (startWeight - i)
	}
	rem := sum * 10 % 11
	if rem == 10 {
		return 0
	}
	return rem
}

var (
	cnpjWeights1 = []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeights2 = []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

func IsValidCNPJ(doc string) bool {
	cnpj := NormalizeDocument(doc)
	if len(cnpj) != 14 || allSame(cnpj) {
		return false
	}

	if int(cnpj[12]-'0') != cnpjDigit(cnpj[:12], cnpjWeights1) {
		return false
	}
	return int(cnpj[13]-'0') == cnpjDigit(cnpj[:13], cnpjWeights2)
}

func cnpjDigit(base string, weights []int) int {
	sum := 0
	for i, r := range base {
		sum += int(r-'0') * weights[i]
	}
	rem := sum % 11
	if rem < 2 {
		return 0
	}
	return 11 - rem
}

func allSame(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}

// FormatCPF renders a normalized CPF as 000.000.000-00. Input that is not 11
// digits comes back unchanged.
func FormatCPF(cpf string) string {
	if len(cpf) != 11 {
		return cpf
	}
	return fmt.Sprintf("%s.%s.%s-%s", cpf[:3], cpf[3:6], cpf[6:9], cpf[9:])
}

// FormatCNPJ renders a normalized CNPJ as 00.000.000/0000-00.
func FormatCNPJ(cnpj string) string {
	if len(cnpj) != 14 {
		return cnpj
	}
	return fmt.Sprintf("%s.%s.%s/%s-%s", cnpj[:2], cnpj[2:5], cnpj[5:8], cnpj[8:12], cnpj[12:])
}
