package gormstore

// Persisted row shapes. Matches come from the season fixture and are not
// persisted; selections and stats reference them by id only.

type playerRow struct {
	ID        string `gorm:"primaryKey"`
	Name      string
	Role      string
	BirthYear string
	Number    string
}

type sessionRow struct {
	ID    string `gorm:"primaryKey"`
	Date  string
	Notes string
}

type attendanceRow struct {
	SessionID string `gorm:"primaryKey"`
	PlayerID  string `gorm:"primaryKey"`
	Status    string
}

type selectionRow struct {
	MatchID  string `gorm:"primaryKey"`
	PlayerID string `gorm:"primaryKey"`
}

type statRow struct {
	MatchID       string `gorm:"primaryKey"`
	PlayerID      string `gorm:"primaryKey"`
	Goals         int
	YellowCards   int
	RedCards      int
	MinutesPlayed int
}
