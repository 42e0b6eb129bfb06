package model

type ThemeMode string

const (
	ThemeLight  ThemeMode = "light"
	ThemeDark   ThemeMode = "dark"
	ThemeSystem ThemeMode = "system"
)

type Preferences struct {
	Theme        ThemeMode `json:"theme"`
	UseSystem    bool      `json:"useSystem"`
	AvatarData   string    `json:"avatarData,omitempty"`
	CompactTable bool      `json:"compactTable"`
	EmailNotif   bool      `json:"emailNotif"`
}

// DefaultPreferences mirrors the first-run state of the settings page.
func DefaultPreferences() Preferences {
	return Preferences{
		Theme:      ThemeSystem,
		UseSystem:  true,
		EmailNotif: true,
	}
}
