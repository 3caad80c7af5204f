package match

import (
	"parcelmatch/internal/entities"
)

func ToDomain(m *MatchDB) *entities.Match {
	if m == nil {
		return nil
	}

	match := &entities.Match{
		ID:            m.ID,
		ParcelID:      m.ParcelID,
		TripID:        m.TripID,
		Score:         m.Score,
		Status:        entities.MatchStatusType(m.Status),
		PaymentStatus: entities.PaymentStatusType(m.PaymentStatus),
		Fee: entities.FeeBreakdown{
			DeliveryFee: m.DeliveryFee,
			PlatformFee: m.PlatformFee,
			TotalAmount: m.TotalAmount,
			Currency:    m.Currency,
		},
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.PaymentIntentRef != nil {
		match.PaymentIntentRef = *m.PaymentIntentRef
	}

	return match
}

func FromDomainModify(matchModify *entities.MatchModify) *MatchModifyDB {
	if matchModify == nil {
		return nil
	}
	matchDB := &MatchModifyDB{}

	if matchModify.ID != nil {
		matchDB.ID = matchModify.ID
	}
	if matchModify.ParcelID != nil {
		matchDB.ParcelID = matchModify.ParcelID
	}
	if matchModify.TripID != nil {
		matchDB.TripID = matchModify.TripID
	}
	if matchModify.Score != nil {
		matchDB.Score = matchModify.Score
	}
	if matchModify.Status != nil {
		status := matchModify.Status.String()
		matchDB.Status = &status
	}
	if matchModify.PaymentStatus != nil {
		paymentStatus := matchModify.PaymentStatus.String()
		matchDB.PaymentStatus = &paymentStatus
	}
	if matchModify.Fee != nil {
		matchDB.DeliveryFee = &matchModify.Fee.DeliveryFee
		matchDB.PlatformFee = &matchModify.Fee.PlatformFee
		matchDB.TotalAmount = &matchModify.Fee.TotalAmount
		matchDB.Currency = &matchModify.Fee.Currency
	}
	if matchModify.PaymentIntentRef != nil {
		matchDB.PaymentIntentRef = matchModify.PaymentIntentRef
	}

	return matchDB
}

func ToDomainList(matchesDB []MatchDB) []entities.Match {
	if len(matchesDB) == 0 {
		return []entities.Match{}
	}

	result := make([]entities.Match, len(matchesDB))
	for i, matchDB := range matchesDB {
		result[i] = *ToDomain(&matchDB)
	}
	return result
}
