package terminal

import (
	"unicode/utf8"

	"cube-scene/internal/commands"
	"cube-scene/internal/logger"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	BarHeight        = 40
	prompt           = "> "
	fontSize         = 20
	padding          = 8
	maxLinesOnScreen = 14
	lineHeight       = fontSize + 4
	maxLineLen       = 200
)

var (
	// Reused every frame when drawing the console to avoid per-frame color allocations.
	barColor    = rl.NewColor(40, 40, 40, 255)
	lineColor   = rl.NewColor(80, 80, 80, 255)
	historyBg   = rl.NewColor(24, 24, 24, 220)
	historyText = rl.LightGray
)

// Terminal is the console bar at the bottom of the window, shown and hidden with ESC.
// Lines starting with "cmd " run through the command registry; anything else is echoed with a hint.
// While open it owns keyboard input; mouse input keeps driving the scene.
type Terminal struct {
	log      *logger.Logger
	reg      *commands.Registry
	inputBuf string
	open     bool
}

// New returns a closed Terminal that logs to log and runs commands through reg.
func New(log *logger.Logger, reg *commands.Registry) *Terminal {
	return &Terminal{log: log, reg: reg}
}

// IsOpen reports whether the console is visible and capturing keyboard input.
func (t *Terminal) IsOpen() bool {
	return t.open
}

// Toggle opens or closes the console.
func (t *Terminal) Toggle() {
	t.open = !t.open
}

// Submit logs line and executes it if it is a command. Errors are logged, never returned.
func (t *Terminal) Submit(line string) {
	if line == "" {
		return
	}
	t.log.Log(prompt + line)
	args, isCmd := commands.Parse(line)
	if !isCmd {
		t.log.Logf(logger.Warn, "not a command: %q (try \"cmd help\")", line)
		return
	}
	if err := t.reg.Execute(args); err != nil {
		t.log.Logf(logger.Error, "%v", err)
	}
}

// Input returns the text typed so far.
func (t *Terminal) Input() string {
	return t.inputBuf
}

// Type appends text to the input line.
func (t *Terminal) Type(text string) {
	t.inputBuf += text
}

// Backspace removes the last rune of the input line.
func (t *Terminal) Backspace() {
	if t.inputBuf == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(t.inputBuf)
	t.inputBuf = t.inputBuf[:len(t.inputBuf)-size]
}

// Enter submits the input line and clears it.
func (t *Terminal) Enter() {
	line := t.inputBuf
	t.inputBuf = ""
	t.Submit(line)
}

// Update handles ESC (toggle) and, when open, typing, paste, backspace and enter. Call once per frame.
func (t *Terminal) Update() {
	if rl.IsKeyPressed(rl.KeyEscape) {
		t.Toggle()
	}
	if !t.open {
		return
	}
	// Paste: Ctrl+V (Windows/Linux) or Cmd+V (macOS)
	if rl.IsKeyPressed(rl.KeyV) && (rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) || rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper)) {
		t.Type(rl.GetClipboardText())
	} else {
		for c := rl.GetCharPressed(); c != 0; c = rl.GetCharPressed() {
			t.Type(string(rune(c)))
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) {
		t.Backspace()
	}
	if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter) {
		t.Enter()
	}
}

// Draw draws the input bar and the recent log lines above it when open.
func (t *Terminal) Draw() {
	if !t.open {
		return
	}
	screenW := int32(rl.GetScreenWidth())
	barY := int32(rl.GetScreenHeight()) - BarHeight

	histHeight := int32(maxLinesOnScreen * lineHeight)
	histY := barY - histHeight
	if histY < 0 {
		histHeight = barY
		histY = 0
	}
	if histHeight > 0 {
		rl.DrawRectangle(0, histY, screenW, histHeight, historyBg)
	}
	lines := t.log.Lines()
	start := 0
	if len(lines) > maxLinesOnScreen {
		start = len(lines) - maxLinesOnScreen
	}
	for i := start; i < len(lines); i++ {
		line := lines[i]
		if len(line) > maxLineLen {
			line = line[:maxLineLen-3] + "..."
		}
		y := histY + int32((i-start)*lineHeight+padding)
		rl.DrawText(line, padding, y, fontSize, historyText)
	}

	rl.DrawRectangle(0, barY, screenW, BarHeight, barColor)
	rl.DrawRectangle(0, barY, screenW, 1, lineColor)
	rl.DrawText(prompt+t.inputBuf+"|", padding, barY+padding, fontSize, rl.White)
}
