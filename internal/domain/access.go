package domain

// Проверки прав - явная функция над (роль, действие, владение ресурсом),
// а не иерархия ролей. Вызывающий слой сам решает, как отобразить отказ.

// AllowedStatusTransitions возвращает множество статусов, которые роль
// может устанавливать бронированию
func AllowedStatusTransitions(role Role) []BookingStatus {
	switch role {
	case RoleAdmin:
		return []BookingStatus{StatusPending, StatusConfirmed, StatusCancelled}
	case RoleOwner:
		return []BookingStatus{StatusConfirmed, StatusCancelled}
	default:
		return nil
	}
}

// CanSetBookingStatus проверяет, может ли identity установить бронированию
// статус newStatus. courtOwnerID - владелец комплекса, которому принадлежит
// корт бронирования.
//
// Владелец управляет только бронированиями своих комплексов и не может
// вернуть бронирование в pending; администратор управляет любыми.
func CanSetBookingStatus(identity Identity, courtOwnerID int64, newStatus BookingStatus) bool {
	if identity.Role == RoleOwner && identity.UserID != courtOwnerID {
		return false
	}

	for _, allowed := range AllowedStatusTransitions(identity.Role) {
		if allowed == newStatus {
			return true
		}
	}
	return false
}
