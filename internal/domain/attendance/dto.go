package attendance

type AddAttendanceRequest struct {
	Date    string `json:"date"`   // YYYY-MM-DD
	Status  string `json:"status"` // Present | Absent | Leave
	InTime  string `json:"in_time,omitempty"`  // HH:MM, optional
	OutTime string `json:"out_time,omitempty"` // HH:MM, optional
}

type AttendanceResponse struct {
	ID      string `json:"id"`
	Date    string `json:"date"`
	Status  Status `json:"status"`
	InTime  string `json:"in_time,omitempty"`
	OutTime string `json:"out_time,omitempty"`
}

func NewAttendanceResponse(att Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:     att.ID,
		Date:   att.Date.Format("2006-01-02"),
		Status: att.Status,
	}
	if att.InTime != nil {
		resp.InTime = att.InTime.Format("15:04")
	}
	if att.OutTime != nil {
		resp.OutTime = att.OutTime.Format("15:04")
	}
	return resp
}

func NewAttendanceResponses(atts []Attendance) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(atts))
	for _, att := range atts {
		out = append(out, NewAttendanceResponse(att))
	}
	return out
}
