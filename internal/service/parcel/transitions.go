package parcel

import "parcelmatch/internal/entities"

// Таблица переходов статусов посылки. Из pending выход только через
// принятие сопоставления, прямого перехода нет.
func allowedTransitions(current entities.ParcelStatusType) []entities.ParcelStatusType {
	switch current {
	case entities.ParcelMatched:
		return []entities.ParcelStatusType{entities.ParcelPickedUp, entities.ParcelCancelled}
	case entities.ParcelPickedUp:
		return []entities.ParcelStatusType{entities.ParcelInTransit, entities.ParcelCancelled}
	case entities.ParcelInTransit:
		return []entities.ParcelStatusType{entities.ParcelDelivered, entities.ParcelCancelled}
	default:
		return nil
	}
}

func transitionAllowed(current, next entities.ParcelStatusType) bool {
	for _, allowed := range allowedTransitions(current) {
		if allowed == next {
			return true
		}
	}
	return false
}
