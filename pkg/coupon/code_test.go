package coupon

import "testing"

func TestGenerateCodeIsValid(t *testing.T) {
	for i := 0; i < 100; i++ {
		code := GenerateCode()
		if len(code) != codeLength {
			t.Fatalf("code %q has length %d, want %d", code, len(code), codeLength)
		}
		if !ValidCode(code) {
			t.Fatalf("generated code %q fails its own check digit", code)
		}
	}
}

func TestValidCodeRejectsTypos(t *testing.T) {
	code := GenerateCode()

	// Flip the last digit, the check digit catches it.
	last := code[len(code)-1]
	flipped := code[:len(code)-1] + string('0'+(last-'0'+1)%10)
	if ValidCode(flipped) {
		t.Errorf("mistyped code %q passed validation", flipped)
	}
}

func TestValidCodeRejectsMalformed(t *testing.T) {
	for _, code := range []string{"", "12345", "abcdefghijkl", "1234567890123"} {
		if ValidCode(code) {
			t.Errorf("malformed code %q passed validation", code)
		}
	}
}
