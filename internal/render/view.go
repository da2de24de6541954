package render

import "time"

// SectionStyle selects how a program section is drawn.
type SectionStyle int

const (
	StyleNormal SectionStyle = iota
	StyleHoliday
	StyleEmpty
)

// View is the content area of one frame. Exactly one of Cards, Placeholder,
// Weeks or Error carries content.
type View struct {
	Header      *Header
	Cards       []Card
	Placeholder *Placeholder
	Weeks       *WeekList
	Error       *ErrorPanel
}

// Header is the week banner above the cards.
type Header struct {
	Title     string // "Semana 52 - 2025"
	DateRange string
	Updated   string
}

// Placeholder replaces the cards when a week has no days.
type Placeholder struct {
	Title string
	Text  string
}

// Card is one day of the week.
type Card struct {
	Index    int
	Name     string
	Date     string
	Holiday  bool
	Badge    string
	Delay    time.Duration
	Sections []Section
}

// Section is one program within a day.
type Section struct {
	Kind     string
	Style    SectionStyle
	Title    string
	Icon     string
	RestText string
	Workouts []WorkoutLine
	Empty    string
	Feedback *Feedback
}

// WorkoutLine is a workout title and/or its details.
type WorkoutLine struct {
	Title   string
	Details string
}

// Feedback is the collapsible coaches' note attached to a section.
type Feedback struct {
	Label   string
	Heading string
	Text    string
	Visible bool
}

// Action is a key the user can press from a panel.
type Action struct {
	Key   string
	Label string
}

// ErrorPanel is shown in place of the cards when a week fails to load.
type ErrorPanel struct {
	Title   string
	Message string
	Detail  string
	Actions []Action
}

// WeekList is the explorer of available weeks.
type WeekList struct {
	Title string
	Items []WeekItem
	Empty string
	Back  Action
}

// WeekItem is one entry of the explorer.
type WeekItem struct {
	Label   string
	Year    int
	FileRef string
	Current bool
}
