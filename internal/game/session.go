package game

import (
	"log"

	"github.com/google/uuid"

	"github.com/L1VER1337/block/internal/protocol"
)

// UserStats is the view projection every tab consumes: the server user
// merged with the separately fetched rank. Rank 0 means "unknown".
type UserStats struct {
	Username    string
	Avatar      string
	BestScore   int
	GamesPlayed int
	TotalScore  int
	Rank        int
}

func statsFromUser(u protocol.User) UserStats {
	return UserStats{
		Username:    u.Username,
		Avatar:      u.PhotoURL,
		BestScore:   u.BestScore,
		GamesPlayed: u.GamesPlayed,
		TotalScore:  u.TotalScore,
	}
}

// BootResult is what bootstrap always produces, whatever the network did.
type BootResult struct {
	User  protocol.User
	Stats UserStats

	Demo    bool // demo identity path was taken
	Offline bool // both paths failed; fully local user
}

// Bootstrapper derives the session user once at startup: host identity if
// the provider is present, demo identity as the single retry, and a fully
// local zero-valued user as the last resort. It never fails; absent data is
// zero-valued.
type Bootstrapper struct {
	api   API
	ident IdentityProvider // nil when no host identity is available
}

func NewBootstrapper(api API, ident IdentityProvider) *Bootstrapper {
	return &Bootstrapper{api: api, ident: ident}
}

func (b *Bootstrapper) Run() BootResult {
	if b.ident != nil {
		if id, ok := b.ident.Identity(); ok {
			if res, err := b.create(id); err == nil {
				return res
			} else {
				log.Printf("boot: host identity path failed: %v", err)
			}
		} else {
			log.Printf("boot: host identity unavailable, using demo identity")
		}
	}

	demo := NewDemoIdentity()
	if res, err := b.create(demo); err == nil {
		res.Demo = true
		return res
	} else {
		log.Printf("boot: demo identity path failed: %v", err)
	}

	// Fully local: the UI must never block on the backend.
	u := protocol.User{
		ID:         "local-" + uuid.NewString(),
		TelegramID: demo.TelegramID,
		Username:   demo.Username,
	}
	return BootResult{User: u, Stats: statsFromUser(u), Demo: true, Offline: true}
}

func (b *Bootstrapper) create(id Identity) (BootResult, error) {
	u, err := b.api.CreateUser(id.createReq())
	if err != nil {
		return BootResult{}, err
	}
	return BootResult{User: u, Stats: b.mergeStats(u)}, nil
}

// mergeStats folds the rank fetch into the view projection. A rank failure
// is degradable (rank stays 0), never a reason to abandon the user record.
func (b *Bootstrapper) mergeStats(u protocol.User) UserStats {
	s := statsFromUser(u)
	if resp, err := b.api.UserStats(u.ID); err == nil {
		s.Rank = resp.Rank
	} else {
		log.Printf("boot: rank fetch failed for %s: %v", u.ID, err)
	}
	return s
}

// Resync re-fetches the user record and rank after the user changed
// server-side (a submitted score, a profile edit). Idempotent; on any
// failure the previous values stand.
func (b *Bootstrapper) Resync(id string) (BootResult, bool) {
	if isLocalID(id) {
		return BootResult{}, false
	}
	u, err := b.api.User(id)
	if err != nil {
		log.Printf("resync: user fetch failed for %s: %v", id, err)
		return BootResult{}, false
	}
	return BootResult{User: u, Stats: b.mergeStats(u)}, true
}

func isLocalID(id string) bool {
	return len(id) >= 6 && id[:6] == "local-"
}
