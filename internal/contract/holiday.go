package contract

import "github.com/alexanderramin/timbang/internal/domain"

type Holiday struct {
	Date        string `json:"date"`
	Name        string `json:"name"`
	Description string `json:"description"`
	State       string `json:"state"`
}

type HolidayRefreshResponse struct {
	Stored int `json:"stored"`
}

func NewHolidays(holidays []domain.Holiday) []Holiday {
	out := make([]Holiday, 0, len(holidays))
	for _, h := range holidays {
		out = append(out, Holiday{Date: h.Date, Name: h.Name, Description: h.Description, State: string(h.State)})
	}
	return out
}
