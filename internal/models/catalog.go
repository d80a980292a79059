package models

// Option — элемент выпадающего списка формы.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Названия клубов и чаптеров, от имени которых подаются заявки.
var ClubNames = []string{
	"ACM Student Chapter",
	"Apple Developers Group",
	"Cloud Computing Club",
	"CodeChef Chapter",
	"Cybersecurity Club",
	"Google Developer Student Club",
	"IEEE Computer Society",
	"Linux Users Group",
	"Mozilla Campus Club",
	"Robotics Club",
}

var VenueOptions = []Option{
	{Value: "anna_auditorium", Label: "Anna Auditorium"},
	{Value: "channa_reddy_auditorium", Label: "Dr. Channa Reddy Auditorium"},
	{Value: "kamaraj_auditorium", Label: "Kamaraj Auditorium"},
	{Value: "mb_gallery_hall", Label: "MB Gallery Hall"},
	{Value: "sjt_gallery_hall", Label: "SJT Gallery Hall"},
	{Value: "tt_gallery_hall", Label: "TT Gallery Hall"},
	{Value: "outdoor_stage", Label: "Outdoor Stage"},
	{Value: "online", Label: "Online"},
}

var EventTypeOptions = []Option{
	{Value: EventTypeTechCompetition, Label: "Tech Competition"},
	{Value: EventTypeHackathon, Label: "Hackathon"},
	{Value: EventTypeWorkshop, Label: "Workshop"},
	{Value: EventTypeTechTalk, Label: "Tech Talk"},
}

var WorkshopTypeOptions = []Option{
	{Value: "hands_on", Label: "Hands-on"},
	{Value: "demonstration", Label: "Demonstration"},
	{Value: "hybrid", Label: "Hybrid"},
}

// ClubOptions возвращает список клубов в формате опций селекта.
func ClubOptions() []Option {
	options := make([]Option, 0, len(ClubNames))
	for _, club := range ClubNames {
		options = append(options, Option{Value: club, Label: club})
	}
	return options
}

// CollaboratorOptions возвращает варианты для collaborating_cc из того же
// списка клубов, исключая сам подающий: заявка не может коллаборировать
// сама с собой.
func CollaboratorOptions(ccName string) []Option {
	options := make([]Option, 0, len(ClubNames))
	for _, club := range ClubNames {
		if club == ccName {
			continue
		}
		options = append(options, Option{Value: club, Label: club})
	}
	return options
}

// IsEventType сообщает, входит ли значение в список известных типов.
func IsEventType(value string) bool {
	for _, opt := range EventTypeOptions {
		if opt.Value == value {
			return true
		}
	}
	return false
}
