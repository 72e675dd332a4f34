package homework

// Status is the review state reported by the API for a homework.
type Status string

const (
	StatusApproved  Status = "approved"
	StatusReviewing Status = "reviewing"
	StatusRejected  Status = "rejected"
)

// Verdicts maps every known status to the sentence sent to the chat.
var Verdicts = map[Status]string{
	StatusApproved:  "Работа проверена: ревьюеру всё понравилось. Ура!",
	StatusReviewing: "Работа взята на проверку ревьюером.",
	StatusRejected:  "Работа проверена: у ревьюера есть замечания.",
}

// Record is a single entry of the "homeworks" array.
// Nil fields mean the key was absent from the API response.
type Record struct {
	Name   *string `json:"homework_name"`
	Status *string `json:"status"`
}

// Response is the raw homework_statuses body. Its shape is not trusted
// until ValidateAndExtract or CurrentDate have looked at it.
type Response []byte
