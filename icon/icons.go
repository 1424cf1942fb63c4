package icon

// Icon identifies a UI symbol in the registry.
type Icon int

const (
	Play Icon = iota + 1
	Pause
	Rewind
	VolumeOn
	VolumeMuted
	Fullscreen
	ExitFullscreen
	Live
	Replay
	Success
	Fail
	Progress
	Lock
)

var icons = map[Icon]*iconDef{
	Play: {
		emoji:   "▶️",
		nerd:    "", // nf-fa-play
		plain:   ">",
		squares: "🟩",
	},
	Pause: {
		emoji:   "⏸️",
		nerd:    "", // nf-fa-pause
		plain:   "||",
		squares: "🟨",
	},
	Rewind: {
		emoji:   "⏪",
		nerd:    "", // nf-fa-backward
		plain:   "<<",
		squares: "🟦",
	},
	VolumeOn: {
		emoji:   "🔊",
		nerd:    "", // nf-fa-volume_up
		plain:   "vol",
		squares: "🟩",
	},
	VolumeMuted: {
		emoji:   "🔇",
		nerd:    "", // nf-fa-volume_off
		plain:   "mute",
		squares: "🟥",
	},
	Fullscreen: {
		emoji:   "⛶",
		nerd:    "", // nf-fa-expand
		plain:   "[ ]",
		squares: "🟪",
	},
	ExitFullscreen: {
		emoji:   "🗗",
		nerd:    "", // nf-fa-compress
		plain:   "] [",
		squares: "🟪",
	},
	Live: {
		emoji:   "🔴",
		nerd:    "", // nf-fa-circle
		plain:   "LIVE",
		squares: "🟥",
	},
	Replay: {
		emoji:   "🔁",
		nerd:    "", // nf-fa-repeat
		plain:   "@",
		squares: "🟦",
	},
	Success: {
		emoji:   "🎉",
		nerd:    "", // nf-fa-check
		plain:   "+",
		squares: "🟩",
	},
	Fail: {
		emoji:   "💀",
		nerd:    "", // nf-fa-close
		plain:   "x",
		squares: "🟥",
	},
	Progress: {
		emoji:   "⏳",
		nerd:    "", // nf-fa-hourglass_start
		plain:   "*",
		squares: "🟨",
	},
	Lock: {
		emoji:   "🔒",
		nerd:    "", // nf-fa-lock
		plain:   "#",
		squares: "🟥",
	},
}
