package domain

// Операционное окно площадок: единое для всех кортов и дней,
// в локальном времени комплекса
const (
	OpenHour  = 8  // 08:00
	CloseHour = 22 // 22:00

	// SlotsPerDay количество часовых слотов в операционном окне
	SlotsPerDay = CloseHour - OpenHour
)

// Ограничения на длительность бронирования (в целых часах)
const (
	MinBookingDurationHours = 1
	MaxBookingDurationHours = 4
)

// Границы допустимого часа начала бронирования
const (
	MinStartHour = 0
	MaxStartHour = 23
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses статусы, участвующие в инварианте непересечения.
// Отменённые бронирования слоты не занимают.
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}
