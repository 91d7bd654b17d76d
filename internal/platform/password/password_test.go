package password

import "testing"

func TestHashAndVerify(t *testing.T) {
	hash, salt, err := Hash("correct horse battery staple")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if len(hash) != 32 {
		t.Fatalf("expected 32-byte hash, got %d", len(hash))
	}
	if len(salt) != 16 {
		t.Fatalf("expected 16-byte salt, got %d", len(salt))
	}

	if !Verify("correct horse battery staple", hash, salt) {
		t.Fatalf("expected matching password to verify")
	}
	if Verify("wrong password", hash, salt) {
		t.Fatalf("expected mismatched password to fail")
	}
}

func TestHashUsesFreshSalt(t *testing.T) {
	hash1, salt1, err := Hash("same input")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	hash2, salt2, err := Hash("same input")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}

	if string(salt1) == string(salt2) {
		t.Fatalf("expected distinct salts")
	}
	if string(hash1) == string(hash2) {
		t.Fatalf("expected distinct hashes for distinct salts")
	}
}

func TestHashRejectsEmptyPassword(t *testing.T) {
	if _, _, err := Hash(""); err == nil {
		t.Fatalf("expected error for empty password")
	}
}

func TestVerifyRejectsTamperedHash(t *testing.T) {
	hash, salt, err := Hash("original")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}

	hash[0] ^= 0xff
	if Verify("original", hash, salt) {
		t.Fatalf("expected tampered hash to fail verification")
	}
}
