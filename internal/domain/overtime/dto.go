package overtime

type AddOvertimeRequest struct {
	Date  string  `json:"date"` // YYYY-MM-DD
	Hours float64 `json:"hours"`
}

type OvertimeResponse struct {
	ID    string  `json:"id"`
	Date  string  `json:"date"`
	Hours float64 `json:"hours"`
}

func NewOvertimeResponse(ot Overtime) OvertimeResponse {
	return OvertimeResponse{
		ID:    ot.ID,
		Date:  ot.Date.Format("2006-01-02"),
		Hours: ot.Hours,
	}
}

func NewOvertimeResponses(ots []Overtime) []OvertimeResponse {
	out := make([]OvertimeResponse, 0, len(ots))
	for _, ot := range ots {
		out = append(out, NewOvertimeResponse(ot))
	}
	return out
}
