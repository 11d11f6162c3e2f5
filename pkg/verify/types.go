package verify

// Далее — формы JSON payload'ов backend'а.
//
// Контракт сервера не типизирован на границе: каждое поле может
// отсутствовать. Отсутствующие строки приходят как "", а там где
// важно отличать "нет значения" от нуля — указатели.

// Article — одна проверенная статья из результатов поиска.
type Article struct {
	Label        string  `json:"label"`         // real | fake | uncertain (или что-то иное)
	Title        string  `json:"title"`         // Может отсутствовать
	URL          string  `json:"url"`           // Может отсутствовать
	SourceDomain string  `json:"source_domain"` // Может отсутствовать
	Confidence   float64 `json:"confidence"`    // Доля в [0,1]
}

// Verdict — вердикт реалистичности для присланной пользователем новости.
type Verdict struct {
	Label      string   `json:"label"`      // По умолчанию "uncertain"
	Confidence *float64 `json:"confidence"` // nil → "N/A" при отображении
	Reasons    []string `json:"reasons"`    // Упорядоченный список, может быть пустым
}

// HistoryItem — запись истории пользователя (поиск или проверка).
type HistoryItem struct {
	ID        int64  `json:"id"` // Обязателен для удаления
	Type      string `json:"type"`
	Label     string `json:"label"`
	Title     string `json:"title"`
	Topic     string `json:"topic"`
	URL       string `json:"url"`
	Summary   string `json:"summary"`
	CreatedAt string `json:"created_at"`
}

// QueryResponse — ответ POST /api/news/query.
type QueryResponse struct {
	Summary  string    `json:"summary"`
	Articles []Article `json:"articles"`
}

// CheckResponse — ответ POST /api/news/check.
type CheckResponse struct {
	Verdict *Verdict `json:"verdict"`
	Summary string   `json:"summary"`
}

// DeleteResponse — ответ DELETE /api/history/delete/{id}.
type DeleteResponse struct {
	Status  string `json:"status"` // "success" либо что-то иное
	Message string `json:"message"`
}

// createUserResponse — ответ POST /api/users/create.
type createUserResponse struct {
	UserID int `json:"user_id"`
}

// queryRequest — тело POST /api/news/query.
type queryRequest struct {
	UserID *int   `json:"user_id"`
	Query  string `json:"query"`
}

// checkRequest — тело POST /api/news/check.
//
// Пустые поля сериализуются как null, не как "".
type checkRequest struct {
	UserID *int    `json:"user_id"`
	Title  *string `json:"title"`
	URL    *string `json:"url"`
	Text   *string `json:"text"`
}
