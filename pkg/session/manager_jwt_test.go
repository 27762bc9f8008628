package session

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
)

func NewTestSessionManager(t *testing.T) *SessionManagerJWT {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		t.Fatalf("unexpected error: %v", err.Error())
	}

	privPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	})
	pubDER, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err.Error())
	}
	pubPEM := pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pubDER})

	sm, err := NewSessionsJWTManager(privPEM, pubPEM)
	if err != nil {
		t.Fatalf("unexpected error: %v", err.Error())
	}

	return sm
}

func TestCreateCheckJWT(t *testing.T) {
	sm := NewTestSessionManager(t)

	ctx := context.Background()
	w := httptest.NewRecorder()
	user := &User{DisplayName: "vectoreal", ID: 34, IsAdmin: true}
	id := "480f0886-bbbb-40e8-9c2b-a47e8aa7a666"
	exp := time.Now().Add(time.Hour).Unix()

	token, err := sm.Create(ctx, w, user, id, exp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err.Error())
	}

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer "+token)

	sess, err := sm.Check(ctx, r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err.Error())
	}

	expected := &Session{
		User:           user,
		SessionID:      id,
		StandardClaims: jwt.StandardClaims{ExpiresAt: exp},
	}
	if !reflect.DeepEqual(sess, expected) {
		t.Errorf("test fail, expected %v but was %v", expected, sess)
	}
}

func TestCheckJWTExpired(t *testing.T) {
	sm := NewTestSessionManager(t)

	ctx := context.Background()
	w := httptest.NewRecorder()
	user := &User{DisplayName: "vectoreal", ID: 34}
	exp := time.Now().Add(-time.Hour).Unix()

	token, err := sm.Create(ctx, w, user, "sess-1", exp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err.Error())
	}

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer "+token)

	_, err = sm.Check(ctx, r)
	if err == nil {
		t.Fatal("expected expired token error, but was nil")
	}

	verr, ok := err.(*jwt.ValidationError)
	if !ok {
		t.Fatalf("expected jwt validation error, but was %v", err)
	}

	if verr.Errors&jwt.ValidationErrorExpired != jwt.ValidationErrorExpired {
		t.Fatalf("expected jwt expired error, but was %v", verr.Errors)
	}
}

func TestCheckJWTForeignKey(t *testing.T) {
	issuer := NewTestSessionManager(t)
	verifier := NewTestSessionManager(t)

	ctx := context.Background()
	w := httptest.NewRecorder()
	user := &User{DisplayName: "vectoreal", ID: 34}

	token, err := issuer.Create(ctx, w, user, "sess-1", time.Now().Add(time.Hour).Unix())
	if err != nil {
		t.Fatalf("unexpected error: %v", err.Error())
	}

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer "+token)

	_, err = verifier.Check(ctx, r)
	if err == nil {
		t.Fatal("expected a token signed with another key to be rejected")
	}
}
