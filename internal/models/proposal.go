package models

// Типы мероприятий.
const (
	EventTypeTechCompetition = "tech_competition"
	EventTypeHackathon       = "hackathon"
	EventTypeWorkshop        = "workshop"
	EventTypeTechTalk        = "tech_talk"
)

// ProposalDraft — черновик заявки в том виде, в котором его редактирует
// форма: числовые поля хранятся строками до момента отправки, чтобы
// поле могло оставаться пустым и отображаться как есть.
type ProposalDraft struct {
	CCName                string `json:"cc_name"`
	Type                  string `json:"type"`
	EventTitle            string `json:"event_title"`
	ExpectedCapacity      string `json:"expected_capacity"`
	Duration              string `json:"duration"`
	EventStartDate        string `json:"event_start_date"`
	EventStartTime        string `json:"event_start_time"`
	EventEndDate          string `json:"event_end_date"`
	EventEndTime          string `json:"event_end_time"`
	ExpectedSponsorship   string `json:"expected_sponsorship"`
	ExpectedPrizeMoney    string `json:"expected_prize_money"`
	IsOvernight           bool   `json:"is_overnight"`
	POCName               string `json:"poc_name"`
	POCRegistrationNumber string `json:"poc_registration_number"`
	POCContact            string `json:"poc_contact"`
	CollaboratingCC       string `json:"collaborating_cc"`
	PreferredVenue        string `json:"preferred_venue"`

	// Общее поле для всех типов мероприятий.
	Description string `json:"description"`

	// Поля tech_competition и hackathon.
	CompetitionStructure string `json:"competition_structure"`
	CompetitionRules     string `json:"competition_rules"`
	JudgementCriteria    string `json:"judgement_criteria"`
	FAQs                 string `json:"faqs"`
	TeamSize             string `json:"team_size"`

	// Поля workshop.
	WorkshopOutcome string `json:"workshop_outcome"`
	WorkshopType    string `json:"workshop_type"`

	// Поля tech_talk.
	SpeakerName string `json:"speaker_name"`

	// Критерии допуска: хотя бы один курс должен быть выбран.
	EligibilityFirstYear  bool `json:"eligibility_first_year"`
	EligibilitySecondYear bool `json:"eligibility_second_year"`
	EligibilityThirdYear  bool `json:"eligibility_third_year"`
	EligibilityFourthYear bool `json:"eligibility_fourth_year"`
}

// ProposalRecord — заявка в том виде, в котором её хранит backend.
// Необязательные колонки представлены указателями, чтобы отличать
// null от нулевого значения.
type ProposalRecord struct {
	ID                    string  `json:"id"`
	CCName                string  `json:"cc_name"`
	Type                  string  `json:"type"`
	EventTitle            string  `json:"event_title"`
	ExpectedCapacity      *int    `json:"expected_capacity"`
	Duration              *int    `json:"duration"`
	EventStartDate        string  `json:"event_start_date"`
	EventStartTime        string  `json:"event_start_time"`
	EventEndDate          string  `json:"event_end_date"`
	EventEndTime          string  `json:"event_end_time"`
	ExpectedSponsorship   *int    `json:"expected_sponsorship"`
	ExpectedPrizeMoney    *int    `json:"expected_prize_money"`
	IsOvernight           bool    `json:"is_overnight"`
	POCName               string  `json:"poc_name"`
	POCRegistrationNumber string  `json:"poc_registration_number"`
	POCContact            string  `json:"poc_contact"`
	CollaboratingCC       *string `json:"collaborating_cc"`
	PreferredVenue        string  `json:"preferred_venue"`
	Description           *string `json:"description"`
	CompetitionStructure  *string `json:"competition_structure"`
	CompetitionRules      *string `json:"competition_rules"`
	JudgementCriteria     *string `json:"judgement_criteria"`
	FAQs                  *string `json:"faqs"`
	TeamSize              *string `json:"team_size"`
	WorkshopOutcome       *string `json:"workshop_outcome"`
	WorkshopType          *string `json:"workshop_type"`
	SpeakerName           *string `json:"speaker_name"`
	EligibilityFirstYear  bool    `json:"eligibility_first_year"`
	EligibilitySecondYear bool    `json:"eligibility_second_year"`
	EligibilityThirdYear  bool    `json:"eligibility_third_year"`
	EligibilityFourthYear bool    `json:"eligibility_fourth_year"`

	// Заполняется сервером, клиент только читает.
	SubmittedBy string `json:"submitted_by"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// ProposalPayload — тело запроса create/update: та же заявка, но с
// приведёнными числовыми полями. ExpectedPrizeMoney остаётся
// указателем: пустое поле формы сериализуется как null, а не как 0.
type ProposalPayload struct {
	CCName                string `json:"cc_name"`
	Type                  string `json:"type"`
	EventTitle            string `json:"event_title"`
	ExpectedCapacity      int    `json:"expected_capacity"`
	Duration              int    `json:"duration"`
	EventStartDate        string `json:"event_start_date"`
	EventStartTime        string `json:"event_start_time"`
	EventEndDate          string `json:"event_end_date"`
	EventEndTime          string `json:"event_end_time"`
	ExpectedSponsorship   int    `json:"expected_sponsorship"`
	ExpectedPrizeMoney    *int   `json:"expected_prize_money"`
	IsOvernight           bool   `json:"is_overnight"`
	POCName               string `json:"poc_name"`
	POCRegistrationNumber string `json:"poc_registration_number"`
	POCContact            string `json:"poc_contact"`
	CollaboratingCC       string `json:"collaborating_cc"`
	PreferredVenue        string `json:"preferred_venue"`
	Description           string `json:"description"`
	CompetitionStructure  string `json:"competition_structure"`
	CompetitionRules      string `json:"competition_rules"`
	JudgementCriteria     string `json:"judgement_criteria"`
	FAQs                  string `json:"faqs"`
	TeamSize              string `json:"team_size"`
	WorkshopOutcome       string `json:"workshop_outcome"`
	WorkshopType          string `json:"workshop_type"`
	SpeakerName           string `json:"speaker_name"`
	EligibilityFirstYear  bool   `json:"eligibility_first_year"`
	EligibilitySecondYear bool   `json:"eligibility_second_year"`
	EligibilityThirdYear  bool   `json:"eligibility_third_year"`
	EligibilityFourthYear bool   `json:"eligibility_fourth_year"`
}
