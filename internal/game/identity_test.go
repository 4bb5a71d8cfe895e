package game

import (
	"net/url"
	"testing"
)

func initDataWith(userJSON string) string {
	v := url.Values{}
	v.Set("query_id", "AAH")
	v.Set("user", userJSON)
	v.Set("auth_date", "1700000000")
	v.Set("hash", "deadbeef")
	return v.Encode()
}

func TestParseInitData(t *testing.T) {
	raw := initDataWith(`{"id":42,"username":"alice","first_name":"Alice","last_name":"L","photo_url":"https://t.me/a.jpg"}`)
	id, err := ParseInitData(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if id.TelegramID != 42 || id.Username != "alice" || id.FirstName != "Alice" {
		t.Fatalf("identity = %+v", id)
	}
	if id.PhotoURL != "https://t.me/a.jpg" {
		t.Fatalf("photo url = %q", id.PhotoURL)
	}
}

func TestParseInitDataUsernameFallbacks(t *testing.T) {
	id, err := ParseInitData(initDataWith(`{"id":7,"first_name":"Bob"}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if id.Username != "Bob" {
		t.Fatalf("username = %q, want first name fallback", id.Username)
	}

	id, err = ParseInitData(initDataWith(`{"id":7}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if id.Username != "player_7" {
		t.Fatalf("username = %q, want synthesized fallback", id.Username)
	}
}

func TestParseInitDataRejectsBadInput(t *testing.T) {
	for _, raw := range []string{
		"",
		"auth_date=1&hash=x",                 // no user field
		initDataWith(`{"username":"ghost"}`), // no id
		initDataWith(`not json`),
	} {
		if _, err := ParseInitData(raw); err == nil {
			t.Fatalf("parse(%q) should fail", raw)
		}
	}
}

func TestInitDataIdentityProvider(t *testing.T) {
	p := InitDataIdentity{Raw: initDataWith(`{"id":9,"username":"carol"}`)}
	id, ok := p.Identity()
	if !ok || id.Username != "carol" {
		t.Fatalf("provider = %+v ok=%v", id, ok)
	}

	if _, ok := (InitDataIdentity{Raw: "garbage=%zz"}).Identity(); ok {
		t.Fatalf("bad init data must read as absent identity")
	}
}

func TestDemoIdentity(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	a := NewDemoIdentity()
	if a.TelegramID < 1_000_000_000 {
		t.Fatalf("demo id out of range: %d", a.TelegramID)
	}
	if a.Username == "" {
		t.Fatalf("demo identity needs a username")
	}

	b := NewDemoIdentity()
	if b.Username != a.Username {
		t.Fatalf("demo username must persist across bootstraps: %q vs %q", a.Username, b.Username)
	}
	if b.TelegramID == a.TelegramID {
		t.Fatalf("demo ids should be freshly drawn (got the same id twice)")
	}
}
