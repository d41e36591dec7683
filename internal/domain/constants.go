package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
	SlotFormat = "3:04 PM"    // метки слотов, например "9:00 AM"
)
