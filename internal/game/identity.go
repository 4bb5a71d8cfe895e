package game

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"net/url"
	"os"
	"strings"

	"github.com/L1VER1337/block/internal/protocol"
)

// Identity is the chat-host user identity (or a locally synthesized demo
// one). Immutable once created for the session.
type Identity struct {
	TelegramID int64
	Username   string
	FirstName  string
	LastName   string
	PhotoURL   string
}

func (id Identity) createReq() protocol.UserCreate {
	return protocol.UserCreate{
		TelegramID: id.TelegramID,
		Username:   id.Username,
		FirstName:  id.FirstName,
		LastName:   id.LastName,
		PhotoURL:   id.PhotoURL,
	}
}

// IdentityProvider is the host-identity capability handed to the
// bootstrapper: present (embedded in the chat host) or absent (demo path).
type IdentityProvider interface {
	Identity() (Identity, bool)
}

// InitDataIdentity derives the identity from a raw Telegram WebApp
// init-data string.
type InitDataIdentity struct {
	Raw string
}

func (p InitDataIdentity) Identity() (Identity, bool) {
	id, err := ParseInitData(p.Raw)
	if err != nil {
		return Identity{}, false
	}
	return id, true
}

// telegramUser is the "user" field embedded in init data.
type telegramUser struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	PhotoURL  string `json:"photo_url"`
}

// ParseInitData extracts the user identity from Telegram WebApp init data
// (an url-encoded query string with a JSON "user" field). Signature
// verification is the backend's job; the raw string travels along as the
// X-Telegram-Init-Data header.
func ParseInitData(raw string) (Identity, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Identity{}, errors.New("empty init data")
	}
	vals, err := url.ParseQuery(raw)
	if err != nil {
		return Identity{}, err
	}
	userRaw := vals.Get("user")
	if userRaw == "" {
		return Identity{}, errors.New("init data has no user field")
	}
	var tu telegramUser
	if err := json.Unmarshal([]byte(userRaw), &tu); err != nil {
		return Identity{}, err
	}
	if tu.ID == 0 {
		return Identity{}, errors.New("init data user has no id")
	}
	username := tu.Username
	if username == "" {
		username = tu.FirstName
	}
	if username == "" {
		username = fmt.Sprintf("player_%d", tu.ID)
	}
	return Identity{
		TelegramID: tu.ID,
		Username:   username,
		FirstName:  tu.FirstName,
		LastName:   tu.LastName,
		PhotoURL:   tu.PhotoURL,
	}, nil
}

// HostIdentityFromEnv wires the desktop shell the way the embedded webapp is
// wired by Telegram itself: the init-data token arrives via TELEGRAM_INIT_DATA.
// Returns nil when no host identity is available.
func HostIdentityFromEnv() IdentityProvider {
	raw := strings.TrimSpace(os.Getenv("TELEGRAM_INIT_DATA"))
	if raw == "" {
		return nil
	}
	return InitDataIdentity{Raw: raw}
}

// NewDemoIdentity synthesizes a demo identity with a fresh random numeric
// id. The username persists in the config dir so a returning demo player
// keeps their leaderboard row.
func NewDemoIdentity() Identity {
	tid := 1_000_000_000 + rand.Int63n(900_000_000)
	name := loadDemoName()
	if name == "" {
		name = fmt.Sprintf("demo_%04d", rand.Intn(10_000))
		saveDemoName(name)
	}
	return Identity{
		TelegramID: tid,
		Username:   name,
		FirstName:  "Demo",
	}
}

func demoNamePath() string { return ConfigPath("demo_name.txt") }

func saveDemoName(name string) {
	_ = os.WriteFile(demoNamePath(), []byte(strings.TrimSpace(name)), 0o644)
}

func loadDemoName() string {
	b, _ := os.ReadFile(demoNamePath())
	return strings.TrimSpace(string(b))
}
