package create_booking

import "errors"

var (
	// ErrCourtNotFound возвращается, когда корт не найден
	ErrCourtNotFound = errors.New("create_booking: court not found")

	// ErrPastDate возвращается, когда дата бронирования раньше текущей даты
	ErrPastDate = errors.New("create_booking: booking date is in the past")

	// ErrPastBooking возвращается, когда время начала уже прошло
	// (покрывает запрос на сегодня на уже истёкший час)
	ErrPastBooking = errors.New("create_booking: booking start time is in the past")

	// ErrSlotConflict возвращается, когда интервал пересекается с существующим
	// активным бронированием. Вызывающему стоит выбрать другой слот;
	// слепой повтор того же запроса даст тот же результат.
	ErrSlotConflict = errors.New("create_booking: court is already booked for this time range")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
