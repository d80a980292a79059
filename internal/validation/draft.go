package validation

import (
	"regexp"
	"strconv"
	"time"

	"github.com/ntereshin/eventform-gateway/internal/models"
)

// ErrorMap — карта "имя поля → сообщение". Отсутствие ключа означает,
// что поле сейчас валидно.
type ErrorMap map[string]string

// Формат, в котором форма хранит дату и время.
const (
	dateTimeLayout = "2006-01-02T15:04"
)

var contactRegex = regexp.MustCompile(`^\d{10}$`)

// Validate проверяет черновик целиком и возвращает карту ошибок.
// Правила независимы: проверяются все, без короткого замыкания.
// Функция чистая и тотальная — никаких побочных эффектов и паник.
func Validate(d *models.ProposalDraft) ErrorMap {
	errs := make(ErrorMap)

	validateRequired(d, errs)
	validateDuration(d.Duration, errs)
	validateContact(d.POCContact, errs)
	validateByType(d, errs)
	validateEligibility(d, errs)
	validateSchedule(d, errs)

	return errs
}

// validateRequired проверяет безусловно обязательные поля.
func validateRequired(d *models.ProposalDraft, errs ErrorMap) {
	required := []struct {
		field   string
		value   string
		message string
	}{
		{"cc_name", d.CCName, "Please select a club/chapter"},
		{"type", d.Type, "Please select an event type"},
		{"event_title", d.EventTitle, "Please enter an event title"},
		{"expected_capacity", d.ExpectedCapacity, "Please enter expected capacity"},
		{"event_start_date", d.EventStartDate, "Please enter event start date"},
		{"event_start_time", d.EventStartTime, "Please enter event start time"},
		{"event_end_date", d.EventEndDate, "Please enter event end date"},
		{"event_end_time", d.EventEndTime, "Please enter event end time"},
		{"expected_sponsorship", d.ExpectedSponsorship, "Please enter expected sponsorship amount"},
		{"poc_name", d.POCName, "Please enter POC name"},
		{"poc_registration_number", d.POCRegistrationNumber, "Please enter POC registration number"},
		{"preferred_venue", d.PreferredVenue, "Please select a preferred venue"},
	}

	for _, r := range required {
		if r.value == "" {
			errs[r.field] = r.message
		}
	}
}

// validateDuration требует строго положительное целое без лишних
// символов: запись должна совпадать с канонической формой числа,
// поэтому "3.5", "3abc" и "05" отклоняются.
func validateDuration(duration string, errs ErrorMap) {
	if duration == "" {
		errs["duration"] = "Please enter duration"
		return
	}

	n, err := strconv.Atoi(duration)
	if err != nil || n <= 0 || strconv.Itoa(n) != duration {
		errs["duration"] = "Duration must be a valid positive integer"
	}
}

// validateContact требует ровно 10 цифр ASCII, без разделителей и кода страны.
func validateContact(contact string, errs ErrorMap) {
	if contact == "" {
		errs["poc_contact"] = "Please enter POC contact number"
		return
	}

	if !contactRegex.MatchString(contact) {
		errs["poc_contact"] = "Contact number must be 10 digits"
	}
}

// validateByType проверяет поля, обязательные для выбранного типа
// мероприятия. Поля невыбранных веток не проверяются вовсе.
func validateByType(d *models.ProposalDraft, errs ErrorMap) {
	switch d.Type {
	case models.EventTypeTechCompetition, models.EventTypeHackathon:
		if d.Description == "" {
			errs["description"] = "Please enter description"
		}
		if d.CompetitionStructure == "" {
			errs["competition_structure"] = "Please enter structure"
		}
		if d.CompetitionRules == "" {
			errs["competition_rules"] = "Please enter rules"
		}
		if d.JudgementCriteria == "" {
			errs["judgement_criteria"] = "Please enter judgement criteria"
		}
		if d.FAQs == "" {
			errs["faqs"] = "Please enter FAQs"
		}
		if d.TeamSize == "" {
			errs["team_size"] = "Please enter team size"
		}
	case models.EventTypeWorkshop:
		if d.Description == "" {
			errs["description"] = "Please enter description"
		}
		if d.WorkshopOutcome == "" {
			errs["workshop_outcome"] = "Please enter expected outcome"
		}
		if d.WorkshopType == "" {
			errs["workshop_type"] = "Please select workshop type"
		}
	case models.EventTypeTechTalk:
		if d.Description == "" {
			errs["description"] = "Please enter description"
		}
		if d.SpeakerName == "" {
			errs["speaker_name"] = "Please enter speaker name"
		}
	}
}

// validateEligibility требует хотя бы один отмеченный курс. Ошибка
// вешается на общий ключ eligibility, а не на отдельный чекбокс.
func validateEligibility(d *models.ProposalDraft, errs ErrorMap) {
	if !d.EligibilityFirstYear && !d.EligibilitySecondYear &&
		!d.EligibilityThirdYear && !d.EligibilityFourthYear {
		errs["eligibility"] = "Please select at least one eligibility year"
	}
}

// validateSchedule сравнивает начало и конец, если заполнены все четыре
// поля. Нарушение порядка помечает оба поля конца, но не поля начала.
// Непарсящиеся значения пропускаются: за формат отвечают виджеты.
func validateSchedule(d *models.ProposalDraft, errs ErrorMap) {
	if d.EventStartDate == "" || d.EventStartTime == "" ||
		d.EventEndDate == "" || d.EventEndTime == "" {
		return
	}

	start, errStart := time.Parse(dateTimeLayout, d.EventStartDate+"T"+d.EventStartTime)
	end, errEnd := time.Parse(dateTimeLayout, d.EventEndDate+"T"+d.EventEndTime)
	if errStart != nil || errEnd != nil {
		return
	}

	if !start.Before(end) {
		const message = "Event end date/time must be after start date/time"
		errs["event_end_date"] = message
		errs["event_end_time"] = message
	}
}
