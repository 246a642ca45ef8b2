package bloodos

// Prompt is the shell prompt token. The console renders it in green and then
// restores light grey for user input.
const Prompt = "root~bloodos:~ "

const versionBanner = "BloodOS v2.0 - Terminal Edition"

// Parser limits. A command token longer than commandMax is cut there and its
// tail spills into the arguments.
const (
	commandMax = 31
	argsMax    = 95
)

const helpText = "\nAvailable commands:\n" +
	"  clear     - Clear screen\n" +
	"  echo      - Display message\n" +
	"  reboot    - Restart system\n" +
	"  shutdown  - Power off\n" +
	"  ver       - Show version\n" +
	"  color     - Change color\n" +
	"  ls        - List files\n" +
	"  time      - Show time\n" +
	"  date      - Show date\n" +
	"  calc      - Calculator\n" +
	"  mem       - Memory info\n" +
	"  cls       - Clear screen\n" +
	"  exit      - Exit shell\n"

// Builtin identifies one of the fixed shell commands.
type Builtin int

const (
	BuiltinUnknown Builtin = iota
	BuiltinHelp
	BuiltinClear
	BuiltinEcho
	BuiltinReboot
	BuiltinShutdown
	BuiltinVer
	BuiltinColor
	BuiltinLs
	BuiltinTime
	BuiltinDate
	BuiltinCalc
	BuiltinMem
	BuiltinExit
)

var builtins = map[string]Builtin{
	"help":     BuiltinHelp,
	"clear":    BuiltinClear,
	"cls":      BuiltinClear,
	"echo":     BuiltinEcho,
	"reboot":   BuiltinReboot,
	"shutdown": BuiltinShutdown,
	"ver":      BuiltinVer,
	"color":    BuiltinColor,
	"ls":       BuiltinLs,
	"time":     BuiltinTime,
	"date":     BuiltinDate,
	"calc":     BuiltinCalc,
	"mem":      BuiltinMem,
	"exit":     BuiltinExit,
}

// LookupBuiltin resolves a command token. Unrecognized tokens, including the
// empty token, resolve to BuiltinUnknown.
func LookupBuiltin(token string) Builtin {
	return builtins[token]
}

// Tokenize splits a line into the command token and the argument string:
// leading spaces are skipped, the token ends at the next space or at
// commandMax bytes (an overlong token spills its tail into the arguments),
// the spaces after it are skipped, and the remainder is truncated to argsMax
// bytes. No other normalization happens; the arguments keep interior spaces.
func Tokenize(line string) (command, args string) {
	i := 0
	for i < len(line) && line[i] == ' ' {
		i++
	}
	start := i
	for i < len(line) && line[i] != ' ' && i-start < commandMax {
		i++
	}
	command = line[start:i]
	for i < len(line) && line[i] == ' ' {
		i++
	}
	args = line[i:]
	if len(args) > argsMax {
		args = args[:argsMax]
	}
	return command, args
}

// outcome reports how Execute left the prompt.
type outcome int

const (
	// outcomeReprompt: the command produced its output; the caller renders
	// the next prompt.
	outcomeReprompt outcome = iota
	// outcomePrompted: the command already rendered the next prompt (exit).
	outcomePrompted
	// outcomeHalt: the command fired a reset or power-off line. No prompt
	// follows and the console must stop servicing input.
	outcomeHalt
)

// Shell interprets completed command lines against a display and a platform
// bus. It holds no state of its own: every command's effect is screen output,
// a color change, or a power line write.
type Shell struct {
	display *Display
	bus     PortBus
}

// NewShell creates a shell writing output to display and power sequences to
// bus. A nil bus falls back to NoopBus.
func NewShell(display *Display, bus PortBus) *Shell {
	if bus == nil {
		bus = NoopBus{}
	}
	return &Shell{display: display, bus: bus}
}

// Prompt renders the shell prompt: the token in green, then light grey for
// whatever the user types next.
func (s *Shell) Prompt() {
	s.display.SetColor(ColorGreen, ColorBlack)
	s.display.WriteString(Prompt)
	s.display.SetColor(ColorLightGrey, ColorBlack)
}

// Execute runs one completed command line and reports how the prompt was
// left. Output starts with a newline because the echoed Enter has already
// moved the cursor; every literal below is the console's historical output,
// kept byte-for-byte.
//
// reboot and shutdown return outcomeHalt after writing their port sequences:
// on the real machine those writes never return, so no prompt and no further
// screen output may follow.
func (s *Shell) Execute(line string) outcome {
	command, args := Tokenize(line)

	switch LookupBuiltin(command) {
	case BuiltinHelp:
		s.display.WriteString(helpText)

	case BuiltinClear:
		s.display.Clear()

	case BuiltinEcho:
		s.display.WriteString("\n")
		s.display.WriteString(args)

	case BuiltinReboot:
		s.display.WriteString("\nRebooting...")
		s.bus.OutB(PortKeyboardCmd, kbcPulseReset)
		return outcomeHalt

	case BuiltinShutdown:
		s.display.WriteString("\nShutting down...")
		s.bus.OutB(PortDebugExit, 0x00)
		s.bus.OutW(PortACPIControl, acpiPowerOff)
		return outcomeHalt

	case BuiltinVer:
		s.display.WriteString("\n" + versionBanner)

	case BuiltinColor:
		// Only a leading digit counts; anything else is silently ignored.
		if len(args) > 0 && args[0] >= '0' && args[0] <= '9' {
			s.display.SetColor(Color(args[0]-'0'), ColorBlack)
			s.display.WriteString("\nColor changed")
		}

	case BuiltinLs:
		s.display.WriteString("\nbin/    dev/    etc/    home/")
		s.display.WriteString("\nlib/    proc/   root/   tmp/")
		s.display.WriteString("\nusr/    var/    boot/   sys/")

	case BuiltinTime:
		s.display.WriteString("\n00:00:00 UTC")

	case BuiltinDate:
		s.display.WriteString("\n2024-01-01")

	case BuiltinCalc:
		s.display.WriteString("\nCalculator: Enter expression")

	case BuiltinMem:
		s.display.WriteString("\nMemory: 64MB total, 32MB free")

	case BuiltinExit:
		s.display.WriteString("\nLogging out...")
		s.display.Clear()
		s.Prompt()
		return outcomePrompted

	default:
		if command != "" {
			s.display.WriteString("\nCommand not found: ")
			s.display.WriteString(command)
			s.display.WriteString("\nType 'help' for available commands")
		}
	}

	return outcomeReprompt
}
