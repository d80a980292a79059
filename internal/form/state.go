package form

import (
	"fmt"
	"strconv"

	"github.com/ntereshin/eventform-gateway/internal/models"
	"github.com/ntereshin/eventform-gateway/internal/validation"
)

// Status — состояние последней отправки формы.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusError   Status = "error"
	StatusSuccess Status = "success"
)

// State хранит текущие значения полей, последнюю вычисленную карту
// ошибок и статус отправки. Все изменения проходят через явные
// функции-переходы; никакого скрытого пересчёта по факту ввода нет.
type State struct {
	Draft   models.ProposalDraft
	Errors  validation.ErrorMap
	Status  Status
	Message string
}

// NewState возвращает состояние с пустым черновиком.
func NewState() *State {
	return &State{
		Draft:  models.ProposalDraft{},
		Errors: make(validation.ErrorMap),
		Status: StatusIdle,
	}
}

// stringFields и boolFields фиксируют полный набор ключей черновика.
// Набор одинаков для create и edit; неизвестное имя — ошибка вызова,
// а не молчаливое игнорирование.
var stringFields = map[string]func(d *models.ProposalDraft) *string{
	"cc_name":                 func(d *models.ProposalDraft) *string { return &d.CCName },
	"type":                    func(d *models.ProposalDraft) *string { return &d.Type },
	"event_title":             func(d *models.ProposalDraft) *string { return &d.EventTitle },
	"expected_capacity":       func(d *models.ProposalDraft) *string { return &d.ExpectedCapacity },
	"duration":                func(d *models.ProposalDraft) *string { return &d.Duration },
	"event_start_date":        func(d *models.ProposalDraft) *string { return &d.EventStartDate },
	"event_start_time":        func(d *models.ProposalDraft) *string { return &d.EventStartTime },
	"event_end_date":          func(d *models.ProposalDraft) *string { return &d.EventEndDate },
	"event_end_time":          func(d *models.ProposalDraft) *string { return &d.EventEndTime },
	"expected_sponsorship":    func(d *models.ProposalDraft) *string { return &d.ExpectedSponsorship },
	"expected_prize_money":    func(d *models.ProposalDraft) *string { return &d.ExpectedPrizeMoney },
	"poc_name":                func(d *models.ProposalDraft) *string { return &d.POCName },
	"poc_registration_number": func(d *models.ProposalDraft) *string { return &d.POCRegistrationNumber },
	"poc_contact":             func(d *models.ProposalDraft) *string { return &d.POCContact },
	"collaborating_cc":        func(d *models.ProposalDraft) *string { return &d.CollaboratingCC },
	"preferred_venue":         func(d *models.ProposalDraft) *string { return &d.PreferredVenue },
	"description":             func(d *models.ProposalDraft) *string { return &d.Description },
	"competition_structure":   func(d *models.ProposalDraft) *string { return &d.CompetitionStructure },
	"competition_rules":       func(d *models.ProposalDraft) *string { return &d.CompetitionRules },
	"judgement_criteria":      func(d *models.ProposalDraft) *string { return &d.JudgementCriteria },
	"faqs":                    func(d *models.ProposalDraft) *string { return &d.FAQs },
	"team_size":               func(d *models.ProposalDraft) *string { return &d.TeamSize },
	"workshop_outcome":        func(d *models.ProposalDraft) *string { return &d.WorkshopOutcome },
	"workshop_type":           func(d *models.ProposalDraft) *string { return &d.WorkshopType },
	"speaker_name":            func(d *models.ProposalDraft) *string { return &d.SpeakerName },
}

var boolFields = map[string]func(d *models.ProposalDraft) *bool{
	"is_overnight":            func(d *models.ProposalDraft) *bool { return &d.IsOvernight },
	"eligibility_first_year":  func(d *models.ProposalDraft) *bool { return &d.EligibilityFirstYear },
	"eligibility_second_year": func(d *models.ProposalDraft) *bool { return &d.EligibilitySecondYear },
	"eligibility_third_year":  func(d *models.ProposalDraft) *bool { return &d.EligibilityThirdYear },
	"eligibility_fourth_year": func(d *models.ProposalDraft) *bool { return &d.EligibilityFourthYear },
}

// SetField заменяет значение строкового поля и оптимистично убирает
// его ошибку из карты. Полная валидация при этом не перезапускается.
func (s *State) SetField(name, value string) error {
	get, ok := stringFields[name]
	if !ok {
		return fmt.Errorf("form: неизвестное поле %q", name)
	}

	*get(&s.Draft) = value
	delete(s.Errors, name)
	return nil
}

// SetCheckbox заменяет значение булева поля. Ошибка допуска живёт под
// общим ключом eligibility и здесь намеренно не очищается.
func (s *State) SetCheckbox(name string, checked bool) error {
	get, ok := boolFields[name]
	if !ok {
		return fmt.Errorf("form: неизвестное поле %q", name)
	}

	*get(&s.Draft) = checked
	delete(s.Errors, name)
	return nil
}

// Reset возвращает каждое поле к нулевому значению. Используется после
// успешного создания заявки.
func (s *State) Reset() {
	s.Draft = models.ProposalDraft{}
	s.Errors = make(validation.ErrorMap)
	s.Status = StatusIdle
	s.Message = ""
}

// Hydrate заполняет черновик из сохранённой записи. Каждый ключ
// черновика получает значение: null-числа становятся пустой строкой,
// null-строки — пустой, отсутствующие булевы — false, чтобы форма
// всегда могла отрисовать управляемые инпуты.
func (s *State) Hydrate(rec *models.ProposalRecord) {
	s.Draft = models.ProposalDraft{
		CCName:                rec.CCName,
		Type:                  rec.Type,
		EventTitle:            rec.EventTitle,
		ExpectedCapacity:      intString(rec.ExpectedCapacity),
		Duration:              intString(rec.Duration),
		EventStartDate:        rec.EventStartDate,
		EventStartTime:        rec.EventStartTime,
		EventEndDate:          rec.EventEndDate,
		EventEndTime:          rec.EventEndTime,
		ExpectedSponsorship:   intString(rec.ExpectedSponsorship),
		ExpectedPrizeMoney:    intString(rec.ExpectedPrizeMoney),
		IsOvernight:           rec.IsOvernight,
		POCName:               rec.POCName,
		POCRegistrationNumber: rec.POCRegistrationNumber,
		POCContact:            rec.POCContact,
		CollaboratingCC:       stringValue(rec.CollaboratingCC),
		PreferredVenue:        rec.PreferredVenue,
		Description:           stringValue(rec.Description),
		CompetitionStructure:  stringValue(rec.CompetitionStructure),
		CompetitionRules:      stringValue(rec.CompetitionRules),
		JudgementCriteria:     stringValue(rec.JudgementCriteria),
		FAQs:                  stringValue(rec.FAQs),
		TeamSize:              stringValue(rec.TeamSize),
		WorkshopOutcome:       stringValue(rec.WorkshopOutcome),
		WorkshopType:          stringValue(rec.WorkshopType),
		SpeakerName:           stringValue(rec.SpeakerName),
		EligibilityFirstYear:  rec.EligibilityFirstYear,
		EligibilitySecondYear: rec.EligibilitySecondYear,
		EligibilityThirdYear:  rec.EligibilityThirdYear,
		EligibilityFourthYear: rec.EligibilityFourthYear,
	}
	s.Errors = make(validation.ErrorMap)
	s.Status = StatusIdle
	s.Message = ""
}

func intString(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func stringValue(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
