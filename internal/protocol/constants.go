package protocol

const (
	GameName = "Block Blast"

	// Logical screen size (phone portrait, the mini-app's native shape)
	ScreenW = 480
	ScreenH = 840
)
