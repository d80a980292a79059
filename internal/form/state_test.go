package form

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ntereshin/eventform-gateway/internal/models"
)

func TestState_SetField_ClearsOwnErrorOnly(t *testing.T) {
	s := NewState()
	s.Errors = map[string]string{
		"event_title": "Please enter an event title",
		"duration":    "Please enter duration",
	}

	err := s.SetField("event_title", "Hack Night")
	assert.NoError(t, err)

	assert.Equal(t, "Hack Night", s.Draft.EventTitle)
	assert.NotContains(t, s.Errors, "event_title")
	assert.Contains(t, s.Errors, "duration")
}

func TestState_SetField_DoesNotRevalidate(t *testing.T) {
	s := NewState()
	s.Errors = map[string]string{"duration": "Duration must be a valid positive integer"}

	// Новое значение тоже невалидно, но ошибка всё равно снимается:
	// полная проверка выполняется только при отправке.
	err := s.SetField("duration", "abc")
	assert.NoError(t, err)
	assert.NotContains(t, s.Errors, "duration")
}

func TestState_SetField_UnknownName(t *testing.T) {
	s := NewState()
	err := s.SetField("no_such_field", "x")
	assert.Error(t, err)
}

func TestState_SetCheckbox(t *testing.T) {
	s := NewState()

	err := s.SetCheckbox("eligibility_second_year", true)
	assert.NoError(t, err)
	assert.True(t, s.Draft.EligibilitySecondYear)

	err = s.SetCheckbox("is_overnight", true)
	assert.NoError(t, err)
	assert.True(t, s.Draft.IsOvernight)

	err = s.SetCheckbox("event_title", true)
	assert.Error(t, err)
}

func TestState_SetCheckbox_KeepsEligibilityError(t *testing.T) {
	s := NewState()
	s.Errors = map[string]string{"eligibility": "Please select at least one eligibility year"}

	// Ошибка допуска живёт под общим ключом и снимается только отправкой.
	err := s.SetCheckbox("eligibility_first_year", true)
	assert.NoError(t, err)
	assert.Contains(t, s.Errors, "eligibility")
}

func TestState_Reset(t *testing.T) {
	s := NewState()
	_ = s.SetField("event_title", "Hack Night")
	_ = s.SetCheckbox("eligibility_first_year", true)
	s.Errors = map[string]string{"duration": "Please enter duration"}
	s.Status = StatusError
	s.Message = "Please fill in all the required fields correctly."

	s.Reset()

	assert.Equal(t, models.ProposalDraft{}, s.Draft)
	assert.Empty(t, s.Errors)
	assert.Equal(t, StatusIdle, s.Status)
	assert.Empty(t, s.Message)
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func sampleRecord() *models.ProposalRecord {
	return &models.ProposalRecord{
		ID:                    "7d8f3a2e-0000-0000-0000-000000000001",
		CCName:                "IEEE Computer Society",
		Type:                  models.EventTypeTechTalk,
		EventTitle:            "Intro to Distributed Systems",
		ExpectedCapacity:      intPtr(150),
		Duration:              intPtr(2),
		EventStartDate:        "2026-01-10",
		EventStartTime:        "10:00",
		EventEndDate:          "2026-01-10",
		EventEndTime:          "12:00",
		ExpectedSponsorship:   intPtr(5000),
		ExpectedPrizeMoney:    nil,
		POCName:               "Arjun Mehta",
		POCRegistrationNumber: "21BCE1234",
		POCContact:            "9876543210",
		CollaboratingCC:       nil,
		PreferredVenue:        "Anna Auditorium",
		Description:           strPtr("A talk about distributed systems"),
		SpeakerName:           strPtr("Dr. Ramesh Kumar"),
		EligibilityFirstYear:  true,
		SubmittedBy:           "arjun.mehta2021@vitstudent.ac.in",
	}
}

func TestState_Hydrate_NullsBecomeZeroValues(t *testing.T) {
	s := NewState()
	s.Hydrate(sampleRecord())

	assert.Equal(t, "150", s.Draft.ExpectedCapacity)
	assert.Equal(t, "2", s.Draft.Duration)
	assert.Equal(t, "5000", s.Draft.ExpectedSponsorship)

	// null-числа и null-строки — пустые строки, чтобы инпуты всегда
	// получали определённое значение.
	assert.Equal(t, "", s.Draft.ExpectedPrizeMoney)
	assert.Equal(t, "", s.Draft.CollaboratingCC)
	assert.Equal(t, "", s.Draft.WorkshopType)

	assert.Equal(t, "A talk about distributed systems", s.Draft.Description)
	assert.Equal(t, "Dr. Ramesh Kumar", s.Draft.SpeakerName)
	assert.True(t, s.Draft.EligibilityFirstYear)
	assert.False(t, s.Draft.EligibilitySecondYear)

	assert.Empty(t, s.Errors)
	assert.Equal(t, StatusIdle, s.Status)
}
