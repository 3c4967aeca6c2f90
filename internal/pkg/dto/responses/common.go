package responses

type Message struct {
	Message string `json:"message"`
}

type Error struct {
	Error string `json:"error"`
}

type Health struct {
	Status  string `json:"status"`
	Storage string `json:"storage"`
	Locker  string `json:"locker"`
	Events  string `json:"events"`
}
