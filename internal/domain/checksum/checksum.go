// Package checksum holds the pure digit-string validators used by the
// payment instruments: Luhn for card numbers and the CPF/CNPJ check-digit
// algorithms for brazilian personal and business identifiers.
package checksum

// Luhn reports whether a digit string passes the Luhn check. Digits are
// doubled from the second-from-right leftwards; doubled values above 9 have
// 9 subtracted; the total must be a multiple of 10. Non-digit input fails.
func Luhn(number string) bool {
	sum := 0
	double := false

	for i := len(number) - 1; i >= 0; i-- {
		c := number[i]
		if c < '0' || c > '9' {
			return false
		}
		digit := int(c - '0')

		if double {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}

		sum += digit
		double = !double
	}

	return sum%10 == 0
}

// CPF validates an 11-digit personal identifier: repeated-digit strings are
// rejected, then both check digits are recomputed and compared.
func CPF(cpf string) bool {
	digits, ok := toDigits(cpf, 11)
	if !ok || allSame(digits) {
		return false
	}

	dv1 := cpfDigit(digits[:9], 10)
	dv2 := cpfDigit(digits[:10], 11)

	return digits[9] == dv1 && digits[10] == dv2
}

// cpfDigit computes one CPF check digit: weighted sum with weights counting
// down from firstWeight, then 11 - (sum mod 11), mapped to 0 when >= 10.
func cpfDigit(digits []int, firstWeight int) int {
	sum := 0
	for i, d := range digits {
		sum += d * (firstWeight - i)
	}
	dv := 11 - sum%11
	if dv >= 10 {
		dv = 0
	}
	return dv
}

// CNPJ validates a 14-digit business identifier: repeated-digit strings are
// rejected, then both weighted check digits are recomputed and compared.
func CNPJ(cnpj string) bool {
	digits, ok := toDigits(cnpj, 14)
	if !ok || allSame(digits) {
		return false
	}

	dv1 := cnpjDigit(digits[:12], []int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2})
	dv2 := cnpjDigit(digits[:13], []int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2})

	return digits[12] == dv1 && digits[13] == dv2
}

func cnpjDigit(digits, weights []int) int {
	sum := 0
	for i, d := range digits {
		sum += d * weights[i]
	}
	rest := sum % 11
	if rest < 2 {
		return 0
	}
	return 11 - rest
}

func toDigits(s string, length int) ([]int, bool) {
	if len(s) != length {
		return nil, false
	}
	digits := make([]int, length)
	for i := 0; i < length; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return nil, false
		}
		digits[i] = int(c - '0')
	}
	return digits, true
}

func allSame(digits []int) bool {
	for _, d := range digits[1:] {
		if d != digits[0] {
			return false
		}
	}
	return true
}
