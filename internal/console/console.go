package console

import (
	"unicode/utf8"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/vpetrova3/my3d-modeller/internal/commands"
	"github.com/vpetrova3/my3d-modeller/internal/logger"
)

const (
	barHeight = 40
	prompt    = "> "
	fontSize  = 20
	padding   = 8
	// Log lines drawn above the input bar while the console is open.
	maxLinesOnScreen = 12
	lineHeight       = fontSize + 4
)

var (
	barColor    = rl.NewColor(40, 40, 40, 255)
	barLine     = rl.NewColor(80, 80, 80, 255)
	historyBack = rl.NewColor(24, 24, 24, 240)
)

// Console is the command input bar at the bottom of the screen, toggled with ESC.
// While open it captures the keyboard, so the editor skips its own bindings. Submitted
// lines are tokenized and dispatched through the command registry; errors are logged
// back into the visible history.
type Console struct {
	log      *logger.Logger
	reg      *commands.Registry
	inputBuf string
	open     bool
}

// New returns a closed console that logs through log and runs lines via reg.
func New(log *logger.Logger, reg *commands.Registry) *Console {
	return &Console{log: log, reg: reg}
}

// IsOpen reports whether the console is visible and capturing input.
func (c *Console) IsOpen() bool {
	return c.open
}

// Update handles ESC (toggle) and, while open, typing, backspace and enter. Call once
// per frame before the editor's own input handling.
func (c *Console) Update() {
	if rl.IsKeyPressed(rl.KeyEscape) {
		c.open = !c.open
	}
	if !c.open {
		return
	}

	for {
		ch := rl.GetCharPressed()
		if ch == 0 {
			break
		}
		c.inputBuf += string(rune(ch))
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && len(c.inputBuf) > 0 {
		_, size := utf8.DecodeLastRuneInString(c.inputBuf)
		c.inputBuf = c.inputBuf[:len(c.inputBuf)-size]
	}
	if (rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter)) && c.inputBuf != "" {
		line := c.inputBuf
		c.inputBuf = ""
		c.log.Log(prompt + line)

		if args, ok := commands.Parse(line); ok {
			if err := c.reg.Execute(args); err != nil {
				c.log.Log(err.Error())
			}
		}
	}
}

// Draw draws the input bar and the recent log history above it when open.
func (c *Console) Draw() {
	if !c.open {
		return
	}
	screenW := int32(rl.GetScreenWidth())
	screenH := int32(rl.GetScreenHeight())
	barY := screenH - barHeight

	historyHeight := int32(maxLinesOnScreen * lineHeight)
	historyY := barY - historyHeight
	if historyY < 0 {
		historyHeight = barY
		historyY = 0
	}
	if historyHeight > 0 {
		rl.DrawRectangle(0, historyY, screenW, historyHeight, historyBack)
	}

	lines := c.log.Lines()
	start := 0
	if len(lines) > maxLinesOnScreen {
		start = len(lines) - maxLinesOnScreen
	}
	for i := start; i < len(lines); i++ {
		y := historyY + int32((i-start)*lineHeight+padding)
		rl.DrawText(truncate(lines[i]), padding, y, fontSize, rl.LightGray)
	}

	rl.DrawRectangle(0, barY, screenW, barHeight, barColor)
	rl.DrawRectangle(0, barY, screenW, 1, barLine)
	rl.DrawText(prompt+c.inputBuf+"|", padding, barY+padding, fontSize, rl.White)
}

// maxLineBytes bounds one history line on screen.
const maxLineBytes = 160

// truncate shortens line to fit one history row, appending an ellipsis. The cut backs
// up to a rune boundary so multi-byte input is never split mid-sequence.
func truncate(line string) string {
	if len(line) <= maxLineBytes {
		return line
	}
	cut := maxLineBytes - 3
	for cut > 0 && !utf8.RuneStart(line[cut]) {
		cut--
	}
	return line[:cut] + "..."
}
