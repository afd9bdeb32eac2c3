package auto_release

// Response итог прохода авто-освобождения
type Response struct {
	Released    int      // Количество освобождённых бронирований
	Examined    int      // Количество проверенных бронирований в статусе confirmed
	ReleasedIDs []string // ID освобождённых бронирований
	Message     string
}
