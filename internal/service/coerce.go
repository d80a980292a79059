package service

import (
	"strconv"

	"github.com/ntereshin/eventform-gateway/internal/models"
	"github.com/ntereshin/eventform-gateway/internal/validation"
)

// buildPayload приводит числовые строки черновика к целым для отправки
// на backend. Пустое expected_prize_money становится явным null, а не
// нулём. Непарсящееся значение — ошибка поля, а не мусор в запросе.
func buildPayload(d *models.ProposalDraft) (*models.ProposalPayload, validation.ErrorMap) {
	errs := make(validation.ErrorMap)

	capacity, err := strconv.Atoi(d.ExpectedCapacity)
	if err != nil {
		errs["expected_capacity"] = "Expected capacity must be a number"
	}

	duration, err := strconv.Atoi(d.Duration)
	if err != nil {
		errs["duration"] = "Duration must be a valid positive integer"
	}

	sponsorship, err := strconv.Atoi(d.ExpectedSponsorship)
	if err != nil {
		errs["expected_sponsorship"] = "Expected sponsorship must be a number"
	}

	var prizeMoney *int
	if d.ExpectedPrizeMoney != "" {
		prize, err := strconv.Atoi(d.ExpectedPrizeMoney)
		if err != nil {
			errs["expected_prize_money"] = "Expected prize money must be a number"
		} else {
			prizeMoney = &prize
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return &models.ProposalPayload{
		CCName:                d.CCName,
		Type:                  d.Type,
		EventTitle:            d.EventTitle,
		ExpectedCapacity:      capacity,
		Duration:              duration,
		EventStartDate:        d.EventStartDate,
		EventStartTime:        d.EventStartTime,
		EventEndDate:          d.EventEndDate,
		EventEndTime:          d.EventEndTime,
		ExpectedSponsorship:   sponsorship,
		ExpectedPrizeMoney:    prizeMoney,
		IsOvernight:           d.IsOvernight,
		POCName:               d.POCName,
		POCRegistrationNumber: d.POCRegistrationNumber,
		POCContact:            d.POCContact,
		CollaboratingCC:       d.CollaboratingCC,
		PreferredVenue:        d.PreferredVenue,
		Description:           d.Description,
		CompetitionStructure:  d.CompetitionStructure,
		CompetitionRules:      d.CompetitionRules,
		JudgementCriteria:     d.JudgementCriteria,
		FAQs:                  d.FAQs,
		TeamSize:              d.TeamSize,
		WorkshopOutcome:       d.WorkshopOutcome,
		WorkshopType:          d.WorkshopType,
		SpeakerName:           d.SpeakerName,
		EligibilityFirstYear:  d.EligibilityFirstYear,
		EligibilitySecondYear: d.EligibilitySecondYear,
		EligibilityThirdYear:  d.EligibilityThirdYear,
		EligibilityFourthYear: d.EligibilityFourthYear,
	}, nil
}
