package notify

// Category classifies a local notification. It is a closed set; payload
// tags on the wire use the string form.
type Category string

const (
	CategoryReminder Category = "reminder"
	CategorySchedule Category = "schedule"
	CategoryAlert    Category = "alert"
)

// Target screens for tap-to-navigate.
const (
	ScreenReports  = "/tabs/reports"
	ScreenSchedule = "/tabs/schedule"
)
