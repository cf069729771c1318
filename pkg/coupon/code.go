package coupon

import (
	"math/rand"
	"strconv"

	"github.com/theplant/luhn"
)

// Coupon codes are 12-digit numbers whose last digit is a Luhn check digit,
// so a mistyped code is caught before the platform is asked about it.
const codeLength = 12

// GenerateCode returns a fresh coupon code.
func GenerateCode() string {
	body := 10000000000 + rand.Intn(90000000000)
	return strconv.Itoa(body*10 + luhn.CalculateLuhn(body))
}

// ValidCode reports whether the code has the expected shape and a correct
// check digit.
func ValidCode(code string) bool {
	if len(code) != codeLength {
		return false
	}
	n, err := strconv.Atoi(code)
	if err != nil {
		return false
	}
	return luhn.Valid(n)
}
