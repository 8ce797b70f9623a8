package hash

import (
	"testing"
)

func TestSHA256Hex(t *testing.T) {
	// Known SHA256 of "hello"
	want := "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"
	got := SHA256Hex("hello")
	if got != want {
		t.Errorf("SHA256Hex(\"hello\") = %s, want %s", got, want)
	}
}

func TestSHA256Hex_Empty(t *testing.T) {
	// SHA256 of empty string
	want := "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	got := SHA256Hex("")
	if got != want {
		t.Errorf("SHA256Hex(\"\") = %s, want %s", got, want)
	}
}

func TestShortHex(t *testing.T) {
	full := SHA256Hex("203.0.113.7")

	tests := []struct {
		name  string
		input string
		n     int
		want  string
	}{
		{"12 chars", "203.0.113.7", 12, full[:12]},
		{"4 chars", "203.0.113.7", 4, full[:4]},
		{"full hash if n too long", "203.0.113.7", 100, full},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ShortHex(tt.input, tt.n)
			if got != tt.want {
				t.Errorf("ShortHex(%q, %d) = %s, want %s", tt.input, tt.n, got, tt.want)
			}
		})
	}
}

func TestIteratedSHA256(t *testing.T) {
	// 1 iteration should equal a single SHA256
	oneIter := IteratedSHA256("test", 1)
	single := SHA256Hex("test")
	if oneIter != single {
		t.Errorf("IteratedSHA256(\"test\", 1) = %s, want %s", oneIter, single)
	}

	// Multiple iterations should differ from single
	multiIter := IteratedSHA256("test", 1000)
	if multiIter == single {
		t.Error("1000 iterations should differ from single iteration")
	}

	// Same input should produce same output (deterministic)
	again := IteratedSHA256("test", 1000)
	if multiIter != again {
		t.Error("IteratedSHA256 should be deterministic")
	}
}

func TestHashIP(t *testing.T) {
	ip := "192.168.1.1"
	salt := "random-salt-value"
	hash := HashIP(ip, salt)

	// Should be 64 hex chars
	if len(hash) != 64 {
		t.Errorf("HashIP length = %d, want 64", len(hash))
	}

	// Different salt should produce different hash
	otherSalt := HashIP(ip, "different-salt")
	if hash == otherSalt {
		t.Error("different salts should produce different hashes")
	}

	// Different IP should produce different hash
	otherIP := HashIP("10.0.0.1", salt)
	if hash == otherIP {
		t.Error("different IPs should produce different hashes")
	}
}
