package user

type User struct {
	Id          int
	Uid         string
	Username    string
	DisplayName string
	Settings    Settings
}

type Settings struct {
	// Timezone is an IANA zone name; all recurrence dates for the user are
	// resolved in this zone.
	Timezone string
	// Currency is an ISO 4217 code used for display only. Amounts are
	// stored as plain cents and never converted.
	Currency string
}
