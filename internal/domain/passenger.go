package domain

import "fmt"

type Passenger struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	PassportNumber string `json:"passport_number"`
}

func (p *Passenger) Details() string {
	return fmt.Sprintf("Passenger #%d - %s, Passport: %s", p.ID, p.Name, p.PassportNumber)
}
