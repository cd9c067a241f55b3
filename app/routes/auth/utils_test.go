package auth

import (
	"strings"
	"testing"
)

func TestGenerateValidateJWT(t *testing.T) {
	claims := JWTClaims{
		UserID:        "user-1",
		Email:         "bursar@example.com",
		FirstName:     "Ada",
		LastName:      "Obi",
		Roles:         []string{"bursar"},
		SchoolID:      "sch-1",
		GroupSchoolID: "grp-1",
	}

	token, err := GenerateJWT(claims)
	if err != nil {
		t.Fatal(err)
	}

	got, err := ValidateJWT(token)
	if err != nil {
		t.Fatal(err)
	}
	if got.UserID != "user-1" || got.Email != "bursar@example.com" {
		t.Errorf("identity = %s/%s, want user-1/bursar@example.com", got.UserID, got.Email)
	}
	if len(got.Roles) != 1 || got.Roles[0] != "bursar" {
		t.Errorf("roles = %v, want [bursar]", got.Roles)
	}
	if got.SchoolID != "sch-1" || got.GroupSchoolID != "grp-1" {
		t.Errorf("scope = %s/%s, want sch-1/grp-1", got.SchoolID, got.GroupSchoolID)
	}
}

func TestValidateJWTRejectsTampered(t *testing.T) {
	token, err := GenerateJWT(JWTClaims{UserID: "user-1"})
	if err != nil {
		t.Fatal(err)
	}

	tampered := token[:len(token)-4] + "AAAA"
	if _, err := ValidateJWT(tampered); err == nil {
		t.Error("tampered token accepted")
	}
	if _, err := ValidateJWT("not-a-token"); err == nil {
		t.Error("garbage token accepted")
	}
}

func TestNewTrxRef(t *testing.T) {
	a, b := NewTrxRef(), NewTrxRef()
	if !strings.HasPrefix(a, "SMS-") {
		t.Errorf("ref %q missing SMS- prefix", a)
	}
	if a == b {
		t.Error("consecutive refs must differ")
	}
}
