package game

// ---- Core enums / layout constants ----

// UI layout
const (
	menuBarH = 64
	topBarH  = 48

	pad  = 8
	btnW = 120
	btnH = 36
	rowH = 24
)

type screen int

const (
	screenLoading screen = iota
	screenHome
)

type tab int

const (
	tabDuels tab = iota
	tabLeaders
	tabGame
	tabShop
	tabProfile
)

func (t tab) label() string {
	switch t {
	case tabDuels:
		return "Duels"
	case tabLeaders:
		return "Leaders"
	case tabGame:
		return "Game"
	case tabShop:
		return "Shop"
	case tabProfile:
		return "Profile"
	}
	return "?"
}

// ---- Small utility types ----

type rect struct{ x, y, w, h int }

func (r rect) hit(mx, my int) bool {
	return mx >= r.x && mx <= r.x+r.w && my >= r.y && my <= r.y+r.h
}
