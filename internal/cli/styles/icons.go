package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "" //  tag
	IconGitBranch = "" //  git branch
	IconCalendar  = "" //  calendar
	IconGo        = "" //  go gopher
	IconGithub    = "" //  github

	IconCheck   = "" // check
	IconX       = "" // x
	IconWarning = "" // warning
	IconInfo    = "" // info

	IconConfig   = "" // config
	IconDatabase = "" // database
	IconTrash    = "" // trash
	IconEye      = "" // eye
	IconPalette  = "" // palette

	cursorEmpty    = "  "
	cursorSelected = "▸ " // ▸ Black right-pointing small triangle
)
