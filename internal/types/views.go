package types

// CountryGroup is one bucket of ExperienceByCountry, in first-seen order
type CountryGroup struct {
	Country    string       `json:"country"`
	Experience []Experience `json:"experience"`
}

// TimelineEntry is an experience entry with its rendered date range and duration
type TimelineEntry struct {
	Experience Experience `json:"experience"`
	Start      string     `json:"start"`
	End        string     `json:"end"`
	Duration   string     `json:"duration"`
}

// YearsOfExperience is the response body for total years
type YearsOfExperience struct {
	Years int `json:"years"`
}
