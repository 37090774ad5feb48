package flash

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func carryCookies(t *testing.T, res *http.Response, req *http.Request) {
	t.Helper()
	for _, c := range res.Cookies() {
		if c.MaxAge >= 0 {
			req.AddCookie(c)
		}
	}
}

func TestWriteThenReadAndClear(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/tasks", nil)

	Write(rec, req, Success("タスク「買い物」を登録しました。"))

	next := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	carryCookies(t, rec.Result(), next)

	rec2 := httptest.NewRecorder()
	notice, ok := ReadAndClear(rec2, next)
	if !ok {
		t.Fatal("expected a notice")
	}
	if notice.Kind != KindSuccess {
		t.Errorf("expected kind success, got '%s'", notice.Kind)
	}
	if notice.Message != "タスク「買い物」を登録しました。" {
		t.Errorf("unexpected message: %s", notice.Message)
	}

	// the read response must expire the cookie
	cleared := false
	for _, c := range rec2.Result().Cookies() {
		if c.Name == CookieName && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("expected the flash cookie to be cleared after reading")
	}
}

func TestReadAndClear_NoCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	if _, ok := ReadAndClear(rec, req); ok {
		t.Error("expected no notice without a cookie")
	}
}

func TestReadAndClear_GarbageCookie(t *testing.T) {
	values := []string{"", "not-base64!!", "bm90LWpzb24"}

	for _, v := range values {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: v})

		if _, ok := ReadAndClear(rec, req); ok {
			t.Errorf("expected garbage cookie '%s' to be ignored", v)
		}
	}
}

func TestWrite_EmptyMessageIgnored(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	Write(rec, req, Notice{Kind: KindSuccess})

	if len(rec.Result().Cookies()) != 0 {
		t.Error("expected no cookie for an empty message")
	}
}
