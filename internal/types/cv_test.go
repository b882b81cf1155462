//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestExperience_Country(t *testing.T) {
	tests := []struct {
		name     string
		location string
		want     string
	}{
		{name: "city and country", location: "Berlin, Germany", want: "Germany"},
		{name: "multi segment", location: "Austin, Texas, USA", want: "USA"},
		{name: "no comma", location: "Remote", want: UnknownCountry},
		{name: "empty", location: "", want: UnknownCountry},
		{name: "trailing comma", location: "Berlin,", want: UnknownCountry},
		{name: "extra whitespace", location: "Lisbon ,   Portugal  ", want: "Portugal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exp := Experience{Location: tt.location}
			assert.Equal(t, tt.want, exp.Country())
		})
	}
}

func TestExperience_IsCurrent(t *testing.T) {
	assert.True(t, Experience{}.IsCurrent())
	assert.False(t, Experience{EndDate: strPtr("2023-06")}.IsCurrent())
}

func TestProject_IsOngoing(t *testing.T) {
	assert.True(t, Project{}.IsOngoing())
	assert.False(t, Project{EndDate: strPtr("2022-01")}.IsOngoing())
}

func TestExperience_NullEndDate(t *testing.T) {
	raw := `{"id":"exp_1","company":"Acme","position":"Engineer","location":"Berlin, Germany","startDate":"2020-01","endDate":null,"description":"","achievements":[],"type":"full-time"}`

	var exp Experience
	require.NoError(t, json.Unmarshal([]byte(raw), &exp))

	assert.Nil(t, exp.EndDate)
	assert.True(t, exp.IsCurrent())
	assert.Equal(t, EmploymentFullTime, exp.Type)

	out, err := json.Marshal(exp)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"endDate":null`)
}

func TestCVRecord_UnmarshalCamelCase(t *testing.T) {
	raw := `{
		"personal": {"name": "Ada", "title": "Engineer", "headline": "h", "summary": "s", "email": "a@example.com", "location": "London, UK", "linkedIn": "https://linkedin.com/in/ada"},
		"international": {"headline": "Worked abroad", "countries": [{"name": "Germany", "role": "Lead", "years": "2019-2021", "description": "d"}]},
		"highlights": ["one"],
		"experience": [],
		"education": [],
		"skills": {"categories": [{"category": "Languages", "skills": [{"name": "Go", "proficiency": "expert", "yearsOfExperience": 6}]}]},
		"projects": [{"id": "p1", "name": "cvkit", "description": "d", "role": "Author", "technologies": ["Go"], "startDate": "2024-01", "endDate": null, "highlights": [], "featured": true}],
		"certifications": [{"id": "c1", "name": "CKA", "issuer": "CNCF", "issueDate": "2022-05", "credentialId": "X1"}],
		"languages": [{"language": "English", "proficiency": "native"}]
	}`

	var record CVRecord
	require.NoError(t, json.Unmarshal([]byte(raw), &record))

	assert.Equal(t, "https://linkedin.com/in/ada", record.Personal.LinkedIn)
	require.Len(t, record.International.Countries, 1)
	assert.Equal(t, "Germany", record.International.Countries[0].Name)
	require.Len(t, record.Skills.Categories, 1)
	assert.Equal(t, 6, record.Skills.Categories[0].Skills[0].YearsOfExperience)
	require.Len(t, record.Projects, 1)
	assert.True(t, record.Projects[0].Featured)
	assert.True(t, record.Projects[0].IsOngoing())
	assert.Nil(t, record.Certifications[0].ExpiryDate)
	assert.Equal(t, "X1", record.Certifications[0].CredentialID)
	assert.Equal(t, "native", record.Languages[0].Proficiency)
}
