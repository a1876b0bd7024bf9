package utils

import "testing"

func TestHashID_RoundTrip(t *testing.T) {
	const salt = "test-salt"

	for _, id := range []int64{1, 42, 1902345678901234567} {
		code := GenHashID(salt, id)
		if len(code) < 12 {
			t.Fatalf("code %q shorter than minimum length", code)
		}
		if got := DecodeHashID(salt, code); got != id {
			t.Fatalf("round trip %d -> %q -> %d", id, code, got)
		}
	}
}

func TestDecodeHashID_Invalid(t *testing.T) {
	if got := DecodeHashID("test-salt", "not-a-code!"); got != 0 {
		t.Fatalf("invalid code decoded to %d, want 0", got)
	}
	// 异盐生成的短码不能解出有效 ID
	code := GenHashID("other-salt", 7)
	if got := DecodeHashID("test-salt", code); got == 7 {
		t.Fatal("code from a different salt must not decode")
	}
}
