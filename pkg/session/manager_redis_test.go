package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis"
	"github.com/dgrijalva/jwt-go"
	"github.com/elliotchance/redismock/v8"
	"github.com/go-redis/redis/v8"
	"github.com/golang/mock/gomock"
	"go.uber.org/zap"
)

var token = "signed.jwt.token"
var sessID = "480f0886-bbbb-40e8-9c2b-a47e8aa7a666"
var expiresAt = time.Date(2999, 11, 17, 20, 34, 58, 651387237, time.UTC)
var u = &User{DisplayName: "vectoreal", ID: 34}

func TestCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	jwtMock := NewMockSessionManager(ctrl)

	ctx := context.Background()
	w := httptest.NewRecorder()

	jwtMock.EXPECT().Create(ctx, w, u, sessID, expiresAt.Unix()).Return(token, nil)

	mock := redismock.NewMock()
	sm := NewSessionManagerRedis(mock, jwtMock, zap.NewNop().Sugar())

	mock.On("Set", ctx, sessID, u.ID, time.Duration(0)).Return(redis.NewStatusCmd(ctx, "set", sessID, u.ID))
	mock.On("SAdd", ctx, strconv.FormatInt(u.ID, 10), []interface{}{sessID}).Return(redis.NewIntCmd(ctx, "sadd", strconv.FormatInt(u.ID, 10), sessID))

	fact, err := sm.Create(ctx, w, u, sessID, expiresAt.Unix())
	if err != nil {
		t.Fatalf("unexpected error: %v", err.Error())
	}

	if fact != token {
		t.Errorf("expected %v but was %v", token, fact)
	}
}

func TestCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	jwtMock := NewMockSessionManager(ctrl)

	mock := redismock.NewMock()

	sm := NewSessionManagerRedis(mock, jwtMock, zap.NewNop().Sugar())
	ctx := context.Background()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	sess := &Session{
		User:           &User{ID: 34, DisplayName: "vectoreal"},
		SessionID:      sessID,
		StandardClaims: jwt.StandardClaims{ExpiresAt: 32499866098},
	}

	jwtMock.EXPECT().Check(ctx, r).Return(sess, nil)
	mock.On("Get", ctx, sessID).Return(redis.NewStringResult(strconv.FormatInt(u.ID, 10), nil))

	fact, err := sm.Check(ctx, r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err.Error())
	}

	if fact != sess {
		t.Errorf("expected %v but was %v", sess, fact)
	}
}

func TestCheckRevoked(t *testing.T) {
	ctrl := gomock.NewController(t)
	jwtMock := NewMockSessionManager(ctrl)

	mock := redismock.NewMock()
	sm := NewSessionManagerRedis(mock, jwtMock, zap.NewNop().Sugar())
	ctx := context.Background()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	sess := &Session{
		User:           &User{ID: 34, DisplayName: "vectoreal"},
		SessionID:      sessID,
		StandardClaims: jwt.StandardClaims{ExpiresAt: 32499866098},
	}

	jwtMock.EXPECT().Check(ctx, r).Return(sess, nil)
	mock.On("Get", ctx, sessID).Return(redis.NewStringResult("", redis.Nil))

	_, err := sm.Check(ctx, r)
	if err == nil {
		t.Fatal("expected revoked session to be rejected")
	}
}

func TestDestroy(t *testing.T) {
	ctrl := gomock.NewController(t)
	jwtMock := NewMockSessionManager(ctrl)
	sess := &Session{
		User:           &User{ID: 34, DisplayName: "vectoreal"},
		SessionID:      sessID,
		StandardClaims: jwt.StandardClaims{ExpiresAt: 32499866098},
	}

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := context.WithValue(r.Context(), SessionKey, sess)
	r = r.WithContext(ctx)

	mock := redismock.NewMock()
	sm := NewSessionManagerRedis(mock, jwtMock, zap.NewNop().Sugar())
	w := httptest.NewRecorder()

	jwtMock.EXPECT().Destroy(ctx, w, r).Return(nil)
	mock.On("Del", ctx, []string{sessID}).Return(redis.NewIntResult(1, nil))
	err := sm.Destroy(ctx, w, r)

	if err != nil {
		t.Errorf("unexpected error: %v", err.Error())
	}
}

func TestDestroyAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	jwtMock := NewMockSessionManager(ctrl)

	ctx := context.Background()
	mock := redismock.NewMock()
	sm := NewSessionManagerRedis(mock, jwtMock, zap.NewNop().Sugar())

	mock.On("SMembers", ctx, strconv.FormatInt(u.ID, 10)).Return(redis.NewStringSliceResult([]string{sessID}, nil))
	mock.On("Del", ctx, []string{sessID}).Return(redis.NewIntResult(1, nil))

	err := sm.DestroyAll(ctx, u)

	if err != nil {
		t.Errorf("unexpected error: %v", err.Error())
	}
}

// Full lifecycle against a real protocol-level redis and real JWT signing.
func TestSessionLifecycle(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("unexpected error: %v", err.Error())
	}
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	sm := NewSessionManagerRedis(client, NewTestSessionManager(t), zap.NewNop().Sugar())

	ctx := context.Background()
	w := httptest.NewRecorder()

	token, err := sm.Create(ctx, w, u, "sess-lifecycle", time.Now().Add(time.Hour).Unix())
	if err != nil {
		t.Fatalf("unexpected error: %v", err.Error())
	}

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer "+token)

	sess, err := sm.Check(ctx, r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err.Error())
	}
	if sess.User.ID != u.ID || sess.User.DisplayName != u.DisplayName {
		t.Fatalf("expected session for %v, got %v", u, sess.User)
	}

	r = r.WithContext(context.WithValue(r.Context(), SessionKey, sess))
	err = sm.Destroy(ctx, w, r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err.Error())
	}

	_, err = sm.Check(ctx, r)
	if err == nil {
		t.Fatal("expected a destroyed session to be rejected")
	}
}

func TestDestroyAllNoSessions(t *testing.T) {
	ctrl := gomock.NewController(t)
	jwtMock := NewMockSessionManager(ctrl)

	ctx := context.Background()
	mock := redismock.NewMock()
	sm := NewSessionManagerRedis(mock, jwtMock, zap.NewNop().Sugar())

	mock.On("SMembers", ctx, strconv.FormatInt(u.ID, 10)).Return(redis.NewStringSliceResult([]string{}, nil))

	err := sm.DestroyAll(ctx, u)
	if err != nil {
		t.Errorf("unexpected error: %v", err.Error())
	}
}
